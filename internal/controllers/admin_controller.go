package controllers

import (
	"net/http"

	rootcontrollers "github.com/tomazdalcortivo/sdpe_mid/controllers"
	"github.com/tomazdalcortivo/sdpe_mid/internal/admin"
	internalhelpers "github.com/tomazdalcortivo/sdpe_mid/internal/helpers"
	internalservices "github.com/tomazdalcortivo/sdpe_mid/internal/services"
)

// AdminController expõe o console de moderação. As rotas exigem o papel de administrador.
type AdminController struct {
	rootcontrollers.BaseController
}

// AcaoReq reexporta o payload esperado pelas ações de moderação.
type AcaoReq = admin.CommandInput

// GetSecoes lista as seções do console com as ações permitidas em cada uma.
// @Summary Seções do console
// @Tags Admin
// @Produce json
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 401 {object} internaldto.APIResponseDTO
// @Failure 403 {object} internaldto.APIResponseDTO
// @router /v1/admin/secoes [get]
func (c *AdminController) GetSecoes() {
	resp := internalhelpers.Ok(internalservices.Secoes())
	c.WriteJSON(resp.Status, resp)
}

// GetSecao seleciona a seção e devolve a lista normalizada do backend.
// @Summary Itens de uma seção
// @Description Ex.: {"Success":true,"Status":200,"Message":"OK","Data":{"secao":{"id":"contatos"},"itens":[{"id":3,"nome":"Ana"}],"total":1}}
// @Tags Admin
// @Produce json
// @Param secao path string true "Id da seção" Example("projetos-pendentes")
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 404 {object} internaldto.APIResponseDTO
// @Failure 502 {object} internaldto.APIResponseDTO
// @router /v1/admin/secoes/{secao} [get]
func (c *AdminController) GetSecao() {
	secao, err := internalhelpers.PathParam(c.Ctx, ":secao")
	if err != nil {
		c.RespondError(err, "seção inválida")
		return
	}
	client := internalservices.ClientFor(c.Ctx)

	data, err := internalservices.ListarSecao(c.Ctx.Request.Context(), client, secao)
	if err != nil {
		c.RespondError(err, "erro carregando a seção")
		return
	}
	resp := internalhelpers.Ok(data)
	c.WriteJSON(resp.Status, resp)
}

// PostAcao executa um comando de moderação.
// @Summary Executar ação de moderação
// @Description Valida o comando contra a seção, envia ao backend e devolve a lista recarregada.
// @Tags Admin
// @Accept json
// @Produce json
// @Param secao path string true "Id da seção"
// @Param body body controllers.AcaoReq true "Comando"
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
// @Failure 404 {object} internaldto.APIResponseDTO
// @Failure 502 {object} internaldto.APIResponseDTO
// @router /v1/admin/secoes/{secao}/acoes [post]
func (c *AdminController) PostAcao() {
	var req AcaoReq
	if err := c.ParseJSONBody(&req); err != nil {
		resp := internalhelpers.Fail(http.StatusBadRequest, "JSON inválido")
		c.WriteJSON(resp.Status, resp)
		return
	}

	secao, err := internalhelpers.PathParam(c.Ctx, ":secao")
	if err != nil {
		c.RespondError(err, "seção inválida")
		return
	}
	client := internalservices.ClientFor(c.Ctx)

	data, err := internalservices.ExecutarAcao(c.Ctx.Request.Context(), client, secao, req)
	if err != nil {
		c.RespondError(err, "erro executando a ação")
		return
	}

	resp := internalhelpers.Ok(data)
	if data.Aviso != "" {
		resp = internalhelpers.OkWithMessage(data.Aviso, data)
	}
	c.WriteJSON(resp.Status, resp)
}
