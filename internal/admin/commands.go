package admin

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/tomazdalcortivo/sdpe_mid/helpers"
	"github.com/tomazdalcortivo/sdpe_mid/models"
)

// Identificadores das ações disponíveis nas seções.
const (
	AcaoAtivarConta      = "ativar-conta"
	AcaoExcluirConta     = "excluir-conta"
	AcaoAtivarProjeto    = "ativar-projeto"
	AcaoRejeitarProjeto  = "rejeitar-projeto"
	AcaoExcluirProjeto   = "excluir-projeto"
	AcaoResponderContato = "responder-contato"
)

// Request descreve a chamada ao backend produzida por um comando.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

// Command é uma ação de moderação. Validate roda antes de qualquer requisição.
type Command interface {
	Acao() string
	Validate() error
	Request() Request
}

// CommandInput é o formato genérico recebido pelo MID e pela CLI.
type CommandInput struct {
	Acao     string        `json:"acao"`
	ID       models.FlexID `json:"id"`
	Ativo    *bool         `json:"ativo,omitempty"`
	Motivo   string        `json:"motivo,omitempty"`
	Mensagem string        `json:"mensagem,omitempty"`
}

type AtivarConta struct {
	ID    string
	Ativo bool
}

func (c AtivarConta) Acao() string    { return AcaoAtivarConta }
func (c AtivarConta) Validate() error { return requireID(c.ID) }
func (c AtivarConta) Request() Request {
	return Request{
		Method: http.MethodPatch,
		Path:   "/api/admin/contas/" + url.PathEscape(c.ID) + "/status",
		Query:  url.Values{"ativo": {strconv.FormatBool(c.Ativo)}},
	}
}

type ExcluirConta struct{ ID string }

func (c ExcluirConta) Acao() string    { return AcaoExcluirConta }
func (c ExcluirConta) Validate() error { return requireID(c.ID) }
func (c ExcluirConta) Request() Request {
	return Request{Method: http.MethodDelete, Path: "/api/admin/contas/" + url.PathEscape(c.ID)}
}

type AtivarProjeto struct {
	ID    string
	Ativo bool
}

func (c AtivarProjeto) Acao() string    { return AcaoAtivarProjeto }
func (c AtivarProjeto) Validate() error { return requireID(c.ID) }
func (c AtivarProjeto) Request() Request {
	return Request{
		Method: http.MethodPatch,
		Path:   "/api/admin/projetos/" + url.PathEscape(c.ID) + "/status",
		Query:  url.Values{"ativo": {strconv.FormatBool(c.Ativo)}},
	}
}

type RejeitarProjeto struct {
	ID     string
	Motivo string
}

func (c RejeitarProjeto) Acao() string { return AcaoRejeitarProjeto }
func (c RejeitarProjeto) Validate() error {
	if err := requireID(c.ID); err != nil {
		return err
	}
	if strings.TrimSpace(c.Motivo) == "" {
		return helpers.BadRequest("motivo da rejeição é obrigatório")
	}
	return nil
}
func (c RejeitarProjeto) Request() Request {
	return Request{
		Method: http.MethodPatch,
		Path:   "/api/admin/projetos/" + url.PathEscape(c.ID) + "/rejeitar",
		Body:   map[string]string{"motivo": strings.TrimSpace(c.Motivo)},
	}
}

type ExcluirProjeto struct{ ID string }

func (c ExcluirProjeto) Acao() string    { return AcaoExcluirProjeto }
func (c ExcluirProjeto) Validate() error { return requireID(c.ID) }
func (c ExcluirProjeto) Request() Request {
	return Request{Method: http.MethodDelete, Path: "/api/admin/projetos/" + url.PathEscape(c.ID)}
}

type ResponderContato struct {
	ID       string
	Mensagem string
}

func (c ResponderContato) Acao() string { return AcaoResponderContato }
func (c ResponderContato) Validate() error {
	if err := requireID(c.ID); err != nil {
		return err
	}
	if strings.TrimSpace(c.Mensagem) == "" {
		return helpers.BadRequest("mensagem de resposta é obrigatória")
	}
	return nil
}
func (c ResponderContato) Request() Request {
	return Request{
		Method: http.MethodPost,
		Path:   "/api/admin/contatos/" + url.PathEscape(c.ID) + "/responder",
		Body:   map[string]string{"mensagem": strings.TrimSpace(c.Mensagem)},
	}
}

func requireID(id string) error {
	if strings.TrimSpace(id) == "" {
		return helpers.BadRequest("id do item é obrigatório")
	}
	return nil
}

// ativo ausente significa aprovar.
func ativoOrTrue(v *bool) bool {
	return v == nil || *v
}

var commandBuilders = map[string]func(CommandInput) Command{
	AcaoAtivarConta: func(in CommandInput) Command {
		return AtivarConta{ID: in.ID.String(), Ativo: ativoOrTrue(in.Ativo)}
	},
	AcaoExcluirConta: func(in CommandInput) Command {
		return ExcluirConta{ID: in.ID.String()}
	},
	AcaoAtivarProjeto: func(in CommandInput) Command {
		return AtivarProjeto{ID: in.ID.String(), Ativo: ativoOrTrue(in.Ativo)}
	},
	AcaoRejeitarProjeto: func(in CommandInput) Command {
		return RejeitarProjeto{ID: in.ID.String(), Motivo: in.Motivo}
	},
	AcaoExcluirProjeto: func(in CommandInput) Command {
		return ExcluirProjeto{ID: in.ID.String()}
	},
	AcaoResponderContato: func(in CommandInput) Command {
		return ResponderContato{ID: in.ID.String(), Mensagem: in.Mensagem}
	},
}

// BuildCommand converte a entrada genérica no comando correspondente.
func BuildCommand(in CommandInput) (Command, error) {
	build, ok := commandBuilders[strings.TrimSpace(in.Acao)]
	if !ok {
		return nil, helpers.BadRequest(fmt.Sprintf("ação desconhecida: %q", in.Acao))
	}
	return build(in), nil
}
