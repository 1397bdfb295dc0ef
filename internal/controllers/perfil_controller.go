package controllers

import (
	"net/http"

	rootcontrollers "github.com/tomazdalcortivo/sdpe_mid/controllers"
	"github.com/tomazdalcortivo/sdpe_mid/helpers"
	internaldto "github.com/tomazdalcortivo/sdpe_mid/internal/dto"
	internalhelpers "github.com/tomazdalcortivo/sdpe_mid/internal/helpers"
	internalservices "github.com/tomazdalcortivo/sdpe_mid/internal/services"
	"github.com/tomazdalcortivo/sdpe_mid/internal/session"
)

// PerfilController expõe o perfil do usuário autenticado.
type PerfilController struct {
	rootcontrollers.BaseController
}

// GetPerfil devolve o perfil. Sessão expirada gera 401 com o destino do login em Data.
// @Summary Perfil do usuário
// @Description Ex. de 401: {"Success":false,"Status":401,"Message":"sessão expirada, faça login novamente","Data":{"redirect":"/login"}}
// @Tags Perfil
// @Produce json
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 401 {object} internaldto.APIResponseDTO
// @router /v1/perfil [get]
func (c *PerfilController) GetPerfil() {
	// o token guardado só é apagado quando foi ele que o backend recusou
	var store session.Store
	if _, err := internalhelpers.BearerToken(c.Ctx); err != nil {
		store = internalservices.TokenStore()
	}

	perfil, err := internalservices.Perfil(c.Ctx.Request.Context(), internalservices.ClientFor(c.Ctx), store)
	if err != nil {
		appErr := helpers.AsAppError(err, "erro carregando o perfil")
		if appErr.Status == http.StatusUnauthorized {
			resp := internalhelpers.FailWithData(appErr.Status, appErr.Message, internaldto.RedirectDTO{Redirect: internalservices.LoginPath})
			c.WriteJSON(resp.Status, resp)
			return
		}
		resp := internalhelpers.Fail(appErr.Status, appErr.Message)
		c.WriteJSON(resp.Status, resp)
		return
	}

	resp := internalhelpers.Ok(perfil)
	c.WriteJSON(resp.Status, resp)
}
