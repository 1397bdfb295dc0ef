package helpers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withRetries(t *testing.T, n int) {
	t.Helper()
	prevCount, prevBase := defaultRetryCount, defaultBackoffBase
	SetDefaultRetryCount(n)
	defaultBackoffBase = time.Millisecond
	t.Cleanup(func() {
		defaultRetryCount = prevCount
		defaultBackoffBase = prevBase
	})
}

func TestDoJSON_RetriesGet(t *testing.T) {
	withRetries(t, 2)
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	var out struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, DoJSON(context.Background(), http.MethodGet, srv.URL, nil, nil, &out, time.Second))
	assert.True(t, out.OK)
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestDoJSON_MutationsAreSentOnce(t *testing.T) {
	withRetries(t, 3)
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	err := DoJSON(context.Background(), http.MethodPatch, srv.URL, nil, map[string]string{"motivo": "x"}, nil, time.Second)
	require.Error(t, err)
	assert.True(t, IsHTTPError(err, http.StatusServiceUnavailable))
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestDoJSON_ClientErrorIsNotRetried(t *testing.T) {
	withRetries(t, 3)
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("token expirado"))
	}))
	defer srv.Close()

	err := DoJSON(context.Background(), http.MethodGet, srv.URL, nil, nil, nil, time.Second)
	var he *HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, "token expirado", he.Body)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestDoJSON_HeadersAndRawOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		assert.Empty(t, r.Header.Get("X-Vazio"))
		_, _ = w.Write([]byte(`[1,2]`))
	}))
	defer srv.Close()

	var raw json.RawMessage
	headers := map[string]string{"Authorization": "Bearer abc", "X-Vazio": ""}
	require.NoError(t, DoJSON(context.Background(), http.MethodGet, srv.URL, headers, nil, &raw, time.Second))
	assert.JSONEq(t, `[1,2]`, string(raw))
}

func TestDoJSON_CancelledContextStopsRetry(t *testing.T) {
	withRetries(t, 5)
	ctx, cancel := context.WithCancel(context.Background())
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		cancel()
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	err := DoJSON(ctx, http.MethodGet, srv.URL, nil, nil, nil, time.Second)
	require.Error(t, err)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestDoRaw(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write([]byte("png-bytes"))
		case "/grande":
			_, _ = w.Write(make([]byte, 64))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	res, err := DoRaw(context.Background(), srv.URL+"/ok", nil, time.Second, 1024)
	require.NoError(t, err)
	assert.Equal(t, "image/png", res.ContentType)
	assert.Equal(t, []byte("png-bytes"), res.Body)

	_, err = DoRaw(context.Background(), srv.URL+"/grande", nil, time.Second, 16)
	assert.Error(t, err)

	_, err = DoRaw(context.Background(), srv.URL+"/sumiu", nil, time.Second, 1024)
	assert.True(t, IsHTTPError(err, http.StatusNotFound))
}

func TestBackoffIsCapped(t *testing.T) {
	withRetries(t, 0)
	defaultBackoffBase = time.Second
	assert.Equal(t, time.Second, backoffFor(0))
	assert.Equal(t, 2*time.Second, backoffFor(1))
	assert.Equal(t, maxBackoff, backoffFor(5))
}
