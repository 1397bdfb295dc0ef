package clients

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomazdalcortivo/sdpe_mid/helpers"
	"github.com/tomazdalcortivo/sdpe_mid/internal/session"
	"github.com/tomazdalcortivo/sdpe_mid/services"
)

func newTestClient(t *testing.T, h http.HandlerFunc, tokens session.TokenSource) *SDPEClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewSDPEClient(services.Config{APIBaseURL: srv.URL + "/", RequestTimeout: 2 * time.Second}, tokens)
}

func TestListProjetos_Envelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/projetos", r.URL.Path)
		assert.Equal(t, "200", r.URL.Query().Get("tamPag"))
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.Equal(t, "req-9", r.Header.Get("X-Request-Id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":[{"id":1,"nome":"Horta","status":true,"coordenadores":[{"nome":"Ana"}],"instituicaoEnsino":{"nome":"UTFPR"}},{"id":"abc","nome":"IA"}],"totalElements":2}`))
	}, session.Static("tok-1"))

	list, err := c.WithRequestID("req-9").ListProjetos(context.Background(), 200)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "1", list[0].ID.String())
	assert.Equal(t, "UTFPR", list[0].NomeInstituicao())
	require.NotNil(t, list[0].Status)
	assert.True(t, *list[0].Status)
	assert.Equal(t, "abc", list[1].ID.String())
	assert.Nil(t, list[1].Status)
	assert.Empty(t, list[1].NomeInstituicao())
}

func TestListProjetos_BareArrayAndNoToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[{"id":7,"nome":"X"}]`))
	}, session.Static(""))

	list, err := c.ListProjetos(context.Background(), 200)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "7", list[0].ID.String())
}

func TestListProjetos_EmptyEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"totalElements":0}`))
	}, nil)

	list, err := c.ListProjetos(context.Background(), 0)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestListProjetos_Unauthorized(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}, session.Static("expirado"))

	_, err := c.ListProjetos(context.Background(), 200)
	require.Error(t, err)
	assert.True(t, helpers.IsUnauthorized(err))
}

func TestSend_PatchWithBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/admin/projetos/5/rejeitar", r.URL.Path)
		b, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"motivo":"incompleto"}`, string(b))
		w.WriteHeader(http.StatusNoContent)
	}, nil)

	err := c.Send(context.Background(), http.MethodPatch, "/api/admin/projetos/5/rejeitar", nil, map[string]string{"motivo": "incompleto"})
	require.NoError(t, err)
}

func TestFetchCover(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/projetos/1/imagem":
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write([]byte{0x89, 'P', 'N', 'G'})
		default:
			http.NotFound(w, r)
		}
	}, nil)

	img, err := c.FetchCover(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "image/png", img.ContentType)
	assert.Len(t, img.Body, 4)

	_, err = c.FetchCover(context.Background(), "2")
	assert.True(t, helpers.IsHTTPError(err, http.StatusNotFound))
}

func TestLogin(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		_, _ = w.Write([]byte(`{"token":" jwt-123 "}`))
	}, nil)

	tok, err := c.Login(context.Background(), "a@b.c", "segredo")
	require.NoError(t, err)
	assert.Equal(t, "jwt-123", tok)
}
