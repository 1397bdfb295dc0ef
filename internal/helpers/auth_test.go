package helpers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/beego/beego/v2/server/web/context"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCtx(t *testing.T, headers map[string]string) *context.Context {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/secoes", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	ctx := context.NewContext()
	ctx.Reset(httptest.NewRecorder(), req)
	return ctx
}

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("qualquer"))
	require.NoError(t, err)
	return tok
}

func TestParseBearer(t *testing.T) {
	tok, err := ParseBearer("  bearer abc.def.ghi ")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", tok)

	_, err = ParseBearer("")
	assert.ErrorIs(t, err, ErrNoAuthHeader)
	_, err = ParseBearer("Basic dXNlcjpwYXNz")
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = ParseBearer("Bearer   ")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRequireRole(t *testing.T) {
	cases := []struct {
		name   string
		claims jwt.MapClaims
		want   error
	}{
		{"lista", jwt.MapClaims{"roles": []string{"COORDENADOR", "ADMIN"}}, nil},
		{"prefixo spring", jwt.MapClaims{"authorities": []map[string]string{{"authority": "ROLE_ADMIN"}}}, nil},
		{"string com virgula", jwt.MapClaims{"role": "user, admin"}, nil},
		{"keycloak", jwt.MapClaims{"realm_access": map[string]any{"roles": []string{"admin"}}}, nil},
		{"sem o papel", jwt.MapClaims{"tipo": "COORDENADOR"}, ErrForbidden},
		{"sem papeis", jwt.MapClaims{"sub": "7"}, ErrClaimNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := newCtx(t, map[string]string{"Authorization": "Bearer " + signed(t, tc.claims)})
			err := RequireRole(ctx, "ADMIN")
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRequireRole_NoOrBadToken(t *testing.T) {
	assert.ErrorIs(t, RequireRole(newCtx(t, nil), "ADMIN"), ErrNoAuthHeader)
	assert.ErrorIs(t, RequireRole(newCtx(t, map[string]string{"Authorization": "Bearer opaco"}), "ADMIN"), ErrInvalidToken)
	assert.NoError(t, RequireRole(newCtx(t, nil)))
}

func TestClaims_Cached(t *testing.T) {
	ctx := newCtx(t, map[string]string{"Authorization": "Bearer " + signed(t, jwt.MapClaims{"sub": "9"})})
	first, err := Claims(ctx)
	require.NoError(t, err)
	ctx.Request.Header.Del("Authorization")
	second, err := Claims(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, "9", second["sub"])
}

func TestRequestID(t *testing.T) {
	ctx := newCtx(t, map[string]string{RequestIDHeader: "req-1"})
	assert.Equal(t, "req-1", RequestID(ctx))
	assert.Equal(t, "req-1", ctx.ResponseWriter.Header().Get(RequestIDHeader))

	fresh := newCtx(t, nil)
	id := RequestID(fresh)
	assert.Len(t, id, 36)
	assert.Equal(t, id, RequestID(fresh))
	assert.Empty(t, RequestID(nil))
}
