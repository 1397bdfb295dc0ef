package services

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/tomazdalcortivo/sdpe_mid/helpers"
	"github.com/tomazdalcortivo/sdpe_mid/internal/catalog"
	"github.com/tomazdalcortivo/sdpe_mid/models"
)

// Parâmetros de consulta aceitos pela listagem.
const (
	ParamQuery       = "q"
	ParamStatus      = "status"
	ParamArea        = "area"
	ParamFormato     = "formato"
	ParamInstituicao = "instituicao"
)

// ParseFilterState converte os parâmetros da consulta em ações e as aplica a partir do estado vazio.
// Valores de status e formato fora da enumeração são rejeitados antes de qualquer chamada ao backend.
func ParseFilterState(values url.Values) (catalog.FilterState, error) {
	actions := []catalog.Action{
		{Kind: catalog.SetQuery, Value: strings.TrimSpace(values.Get(ParamQuery))},
		{Kind: catalog.SetStatus, Value: strings.ToUpper(strings.TrimSpace(values.Get(ParamStatus)))},
		{Kind: catalog.SetArea, Value: strings.TrimSpace(values.Get(ParamArea))},
		{Kind: catalog.SetFormato, Value: strings.ToUpper(strings.TrimSpace(values.Get(ParamFormato)))},
		{Kind: catalog.SetInstituicao, Value: strings.TrimSpace(values.Get(ParamInstituicao))},
	}
	state := catalog.ReduceAll(catalog.FilterState{}, actions...)

	if state.Status != "" && !models.ValidStatus(state.Status) {
		return catalog.FilterState{}, helpers.BadRequest(fmt.Sprintf("status inválido: %s", state.Status))
	}
	if state.Formato != "" && !models.ValidFormato(state.Formato) {
		return catalog.FilterState{}, helpers.BadRequest(fmt.Sprintf("formato inválido: %s", state.Formato))
	}
	return state, nil
}
