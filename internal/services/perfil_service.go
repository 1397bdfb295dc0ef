package services

import (
	stdctx "context"
	"net/http"

	"github.com/beego/beego/v2/core/logs"

	"github.com/tomazdalcortivo/sdpe_mid/helpers"
	"github.com/tomazdalcortivo/sdpe_mid/internal/session"
)

// LoginPath é para onde o front deve ir quando a sessão expira.
const LoginPath = "/login"

// PerfilSource busca o perfil do usuário autenticado.
type PerfilSource interface {
	GetPerfil(ctx stdctx.Context) (map[string]any, error)
}

// Perfil busca o perfil. Em 401/403 o token armazenado é apagado e o erro vira 401,
// para que o front redirecione ao login.
func Perfil(ctx stdctx.Context, src PerfilSource, store session.Store) (map[string]any, error) {
	perfil, err := src.GetPerfil(ctx)
	if err == nil {
		return perfil, nil
	}
	if helpers.IsUnauthorized(err) {
		if store != nil {
			if clearErr := store.Clear(ctx); clearErr != nil {
				logs.Error("limpando token após %v: %v", err, clearErr)
			}
		}
		return nil, helpers.NewAppError(http.StatusUnauthorized, "sessão expirada, faça login novamente", err)
	}
	return nil, helpers.AsAppError(err, "não foi possível carregar o perfil")
}
