package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/beego/beego/v2/core/logs"

	"github.com/tomazdalcortivo/sdpe_mid/helpers"
)

// API é o subconjunto do gateway usado pelo console.
type API interface {
	GetJSON(ctx context.Context, path string, query url.Values, out any) error
	Send(ctx context.Context, method, path string, query url.Values, body any) error
}

// Result é o desfecho de um comando despachado.
//
// OK=false: nada mudou no backend nem na lista; Err traz a mensagem para o usuário.
// OK=true com Err: a ação foi aplicada, mas a recarga falhou e a lista anterior foi mantida.
type Result struct {
	OK    bool              `json:"ok"`
	Acao  string            `json:"acao"`
	Itens []Item            `json:"itens"`
	Err   *helpers.AppError `json:"-"`
}

// Console mantém o estado de uma tela de moderação. Pertence a um único dono
// (uma requisição ou uma sessão da CLI) e não é seguro para uso concorrente.
type Console struct {
	api      API
	sections Sections

	current  Section
	itens    []Item
	expanded map[string]bool
}

func NewConsole(api API, sections Sections) *Console {
	return &Console{api: api, sections: sections, itens: []Item{}, expanded: map[string]bool{}}
}

// Sections devolve a tabela de seções do console.
func (c *Console) Sections() Sections { return c.sections }

// Current devolve a seção ativa (zero value antes do primeiro Select).
func (c *Console) Current() Section { return c.current }

// Itens devolve a lista atual.
func (c *Console) Itens() []Item { return c.itens }

// Select troca de seção: descarta a expansão e busca a lista do endpoint da seção.
// Em caso de falha a lista fica vazia e o erro é devolvido para exibição.
func (c *Console) Select(ctx context.Context, id string) error {
	if err := c.Use(id); err != nil {
		return err
	}
	itens, err := c.fetch(ctx)
	if err != nil {
		return err
	}
	c.itens = itens
	return nil
}

// Use ativa a seção sem buscar a lista. Serve a quem só vai despachar um comando
// (a recarga após o sucesso traz a lista).
func (c *Console) Use(id string) error {
	sec, ok := c.sections.Lookup(id)
	if !ok {
		return helpers.NewAppError(http.StatusNotFound, fmt.Sprintf("seção desconhecida: %s", id), nil)
	}
	c.current = sec
	c.expanded = map[string]bool{}
	c.itens = []Item{}
	return nil
}

// Reload busca novamente a seção ativa; em caso de falha mantém a lista anterior.
func (c *Console) Reload(ctx context.Context) error {
	if c.current.ID == "" {
		return helpers.BadRequest("nenhuma seção selecionada")
	}
	itens, err := c.fetch(ctx)
	if err != nil {
		return err
	}
	c.itens = itens

	present := make(map[string]struct{}, len(itens))
	for _, it := range itens {
		present[it.ID()] = struct{}{}
	}
	for id := range c.expanded {
		if _, ok := present[id]; !ok {
			delete(c.expanded, id)
		}
	}
	return nil
}

func (c *Console) fetch(ctx context.Context) ([]Item, error) {
	var raw json.RawMessage
	if err := c.api.GetJSON(ctx, c.current.Endpoint, nil, &raw); err != nil {
		logs.Error("admin: listando %s: %v", c.current.ID, err)
		return nil, helpers.AsAppError(err, "não foi possível carregar "+c.current.Titulo)
	}
	return NormalizeList(raw), nil
}

// Toggle expande ou recolhe um item e devolve o novo estado.
func (c *Console) Toggle(itemID string) bool {
	if c.expanded[itemID] {
		delete(c.expanded, itemID)
		return false
	}
	c.expanded[itemID] = true
	return true
}

// Expanded indica se o item está expandido.
func (c *Console) Expanded(itemID string) bool {
	return c.expanded[itemID]
}

// Dispatch valida e envia o comando; em caso de sucesso recarrega a lista.
func (c *Console) Dispatch(ctx context.Context, cmd Command) Result {
	res := Result{Acao: cmd.Acao(), Itens: c.itens}

	if c.current.ID == "" {
		res.Err = helpers.BadRequest("nenhuma seção selecionada")
		return res
	}
	if !c.current.Allows(cmd.Acao()) {
		res.Err = helpers.BadRequest(fmt.Sprintf("ação %s não disponível em %s", cmd.Acao(), c.current.ID))
		return res
	}
	if err := cmd.Validate(); err != nil {
		res.Err = helpers.AsAppError(err, "comando inválido")
		return res
	}

	req := cmd.Request()
	if err := c.api.Send(ctx, req.Method, req.Path, req.Query, req.Body); err != nil {
		logs.Error("admin: %s %s falhou: %v", req.Method, req.Path, err)
		res.Err = helpers.AsAppError(err, "não foi possível concluir a ação")
		return res
	}
	logs.Info("admin: %s aplicado em %s", cmd.Acao(), req.Path)

	res.OK = true
	if err := c.Reload(ctx); err != nil {
		res.Err = helpers.AsAppError(err, "ação concluída, mas a lista não pôde ser recarregada")
		return res
	}
	res.Itens = c.itens
	return res
}
