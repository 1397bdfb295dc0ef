package services

import (
	stdctx "context"

	"github.com/tomazdalcortivo/sdpe_mid/internal/admin"
	internaldto "github.com/tomazdalcortivo/sdpe_mid/internal/dto"
)

var defaultSections = admin.DefaultSections()

// Secoes devolve a tabela de seções do console.
func Secoes() admin.Sections {
	return defaultSections
}

// ListarSecao seleciona a seção e devolve a lista normalizada.
func ListarSecao(ctx stdctx.Context, api admin.API, secao string) (internaldto.AdminListaDTO, error) {
	console := admin.NewConsole(api, defaultSections)
	if err := console.Select(ctx, secao); err != nil {
		return internaldto.AdminListaDTO{Secao: console.Current(), Itens: console.Itens()}, err
	}
	itens := console.Itens()
	return internaldto.AdminListaDTO{Secao: console.Current(), Itens: itens, Total: len(itens)}, nil
}

// ExecutarAcao despacha o comando na seção e devolve a lista recarregada.
// Sem sucesso do backend, nenhuma lista é devolvida e o erro segue para o usuário.
func ExecutarAcao(ctx stdctx.Context, api admin.API, secao string, in admin.CommandInput) (internaldto.AdminAcaoDTO, error) {
	console := admin.NewConsole(api, defaultSections)
	if err := console.Use(secao); err != nil {
		return internaldto.AdminAcaoDTO{}, err
	}
	cmd, err := admin.BuildCommand(in)
	if err != nil {
		return internaldto.AdminAcaoDTO{}, err
	}

	res := console.Dispatch(ctx, cmd)
	if !res.OK {
		return internaldto.AdminAcaoDTO{}, res.Err
	}
	out := internaldto.AdminAcaoDTO{Secao: secao, Acao: res.Acao, Itens: res.Itens, Total: len(res.Itens)}
	if res.Err != nil {
		out.Aviso = res.Err.Message
	}
	return out, nil
}
