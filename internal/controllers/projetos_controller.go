package controllers

import (
	"net/http"
	"strconv"
	"time"

	rootcontrollers "github.com/tomazdalcortivo/sdpe_mid/controllers"
	"github.com/tomazdalcortivo/sdpe_mid/helpers"
	"github.com/tomazdalcortivo/sdpe_mid/internal/catalog"
	"github.com/tomazdalcortivo/sdpe_mid/internal/clients"
	internalhelpers "github.com/tomazdalcortivo/sdpe_mid/internal/helpers"
	internalservices "github.com/tomazdalcortivo/sdpe_mid/internal/services"
	rootservices "github.com/tomazdalcortivo/sdpe_mid/services"
)

// ProjetosController expõe a listagem pública de projetos de extensão.
type ProjetosController struct {
	rootcontrollers.BaseController
}

func (c *ProjetosController) service() *internalservices.Projetos {
	cfg := rootservices.GetConfig()
	return internalservices.NewProjetos(
		clients.NewShared(internalservices.ClientFor(c.Ctx)),
		cfg.TamPag,
		internalservices.PublicProjetosURL(c.Ctx),
		time.Now,
	).WithCoverLimiter(internalservices.CoverLimiter())
}

// GetListado devolve os cards filtrados.
// @Summary Listagem de projetos
// @Description Filtra a coleção completa por busca (nome ou coordenador), status derivado, área, formato e instituição. Ex.: {"Success":true,"Status":200,"Message":"OK","Data":{"items":[{"id":2,"nome":"IA na Saúde","status":"EM_ANDAMENTO"}],"instituicoes":["UTFPR"],"total":2,"filtrados":1}}
// @Tags Projetos
// @Produce json
// @Param q query string false "Busca livre" Example("horta")
// @Param status query string false "INATIVO, FINALIZADO ou EM_ANDAMENTO"
// @Param area query string false "Área do conhecimento"
// @Param formato query string false "PRESENCIAL, ONLINE ou HIBRIDO"
// @Param instituicao query string false "Nome da instituição"
// @Param pagina query int false "Página (a partir de 1)"
// @Param tamanho query int false "Itens por página; ausente devolve todos"
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
// @router /v1/projetos [get]
func (c *ProjetosController) GetListado() {
	state, err := internalservices.ParseFilterState(c.Ctx.Request.URL.Query())
	if err != nil {
		c.RespondError(err, "filtro inválido")
		return
	}

	pagina, tamanho := internalhelpers.ParsePage(c.GetString("pagina"), c.GetString("tamanho"))

	view, err := c.service().Listagem(c.Ctx.Request.Context(), state)
	view = view.Paginate(pagina, tamanho)
	if err != nil {
		// carga degradada: lista vazia com aviso, nunca erro de página
		resp := internalhelpers.OkWithMessage(helpers.AsAppError(err, "").Message, view)
		c.WriteJSON(resp.Status, resp)
		return
	}
	resp := internalhelpers.Ok(view)
	c.WriteJSON(resp.Status, resp)
}

// GetInstituicoes devolve as instituições presentes na coleção, ordenadas e sem repetição.
// @Tags Projetos
// @Produce json
// @Success 200 {object} internaldto.APIResponseDTO
// @router /v1/projetos/instituicoes [get]
func (c *ProjetosController) GetInstituicoes() {
	list, err := c.service().Instituicoes(c.Ctx.Request.Context())
	if err != nil {
		resp := internalhelpers.OkWithMessage(helpers.AsAppError(err, "").Message, list)
		c.WriteJSON(resp.Status, resp)
		return
	}
	resp := internalhelpers.Ok(list)
	c.WriteJSON(resp.Status, resp)
}

// GetResumo conta os projetos filtrados por status, área e formato (painel de estatísticas).
// @Tags Projetos
// @Produce json
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
// @router /v1/projetos/resumo [get]
func (c *ProjetosController) GetResumo() {
	state, err := internalservices.ParseFilterState(c.Ctx.Request.URL.Query())
	if err != nil {
		c.RespondError(err, "filtro inválido")
		return
	}
	resumo, err := c.service().Resumo(c.Ctx.Request.Context(), state)
	if err != nil {
		resp := internalhelpers.OkWithMessage(helpers.AsAppError(err, "").Message, resumo)
		c.WriteJSON(resp.Status, resp)
		return
	}
	resp := internalhelpers.Ok(resumo)
	c.WriteJSON(resp.Status, resp)
}

// GetImagem serve a capa do projeto ou, se ela falhar, o placeholder na mesma caixa.
// @Tags Projetos
// @Produce image/*
// @Param id path string true "Id do projeto"
// @Success 200
// @router /v1/projetos/{id}/imagem [get]
func (c *ProjetosController) GetImagem() {
	id, err := internalhelpers.PathParam(c.Ctx, ":id")
	if err != nil {
		c.RespondError(err, "id inválido")
		return
	}

	capa := c.service().Capa(c.Ctx.Request.Context(), id)
	out := c.Ctx.Output
	out.Header("Content-Type", capa.ContentType)
	out.Header("Content-Length", strconv.Itoa(len(capa.Body)))
	out.Header("X-Cover-State", capa.Phase.String())
	if capa.Phase == catalog.CoverLoading {
		out.Header("Cache-Control", "public, max-age=300")
	} else {
		out.Header("Cache-Control", "no-store")
	}
	out.SetStatus(http.StatusOK)
	_ = out.Body(capa.Body)
}
