package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/tomazdalcortivo/sdpe_mid/internal/admin"
	"github.com/tomazdalcortivo/sdpe_mid/models"
)

// campos tentados, em ordem, para descrever um item numa linha
var labelKeys = []string{"nome", "titulo", "assunto", "email", "descricao"}

func newAdminCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Console de moderação",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}
	cmd.AddCommand(newAdminSecoesCmd(), newAdminListarCmd(a), newAdminAcaoCmd(a))
	return cmd
}

func newAdminSecoesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "secoes",
		Short: "Lista as seções e as ações de cada uma",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sections := admin.DefaultSections()
			rows := make([][]string, 0, len(sections))
			for _, s := range sections {
				rows = append(rows, []string{s.ID, s.Titulo, strings.Join(s.Acoes, ", ")})
			}
			printTable(cmd.OutOrStdout(), []string{"SEÇÃO", "TÍTULO", "AÇÕES"}, rows)
			return nil
		},
	}
}

func newAdminListarCmd(a *app) *cobra.Command {
	var asJSON bool
	var expandir []string
	cmd := &cobra.Command{
		Use:   "listar <secao>",
		Short: "Lista os itens de uma seção",
		Example: `  sdpectl admin listar projetos-pendentes
  sdpectl admin listar contatos --expandir 5,6`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			console := admin.NewConsole(a.client, admin.DefaultSections())
			if err := console.Select(cmd.Context(), args[0]); err != nil {
				return err
			}
			if err := printItens(cmd, console.Itens(), asJSON); err != nil || asJSON {
				return err
			}
			for _, id := range expandir {
				console.Toggle(strings.TrimSpace(id))
			}
			for _, it := range console.Itens() {
				if console.Expanded(it.ID()) {
					printDetalhes(cmd, console.Current(), it)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "imprime os itens completos em JSON")
	cmd.Flags().StringSliceVar(&expandir, "expandir", nil, "ids dos itens a detalhar, com as ações disponíveis")
	return cmd
}

func printDetalhes(cmd *cobra.Command, sec admin.Section, it admin.Item) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nItem %s\n", it.ID())
	keys := make([]string, 0, len(it))
	for k := range it {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, []string{k, fmt.Sprint(it[k])})
	}
	printTable(out, []string{"CAMPO", "VALOR"}, rows)
	fmt.Fprintf(out, "Ações: %s\n", strings.Join(sec.Acoes, ", "))
}

func newAdminAcaoCmd(a *app) *cobra.Command {
	var in admin.CommandInput
	var ativo bool

	cmd := &cobra.Command{
		Use:   "acao <secao> <acao> <id>",
		Short: "Executa uma ação de moderação e recarrega a seção",
		Long: heredoc.Doc(`
			A ação precisa estar disponível na seção (veja "sdpectl admin secoes").
			rejeitar-projeto exige --motivo e responder-contato exige --mensagem;
			nada é enviado ao backend quando a validação falha.
		`),
		Example: `  sdpectl admin acao projetos-pendentes ativar-projeto 42
  sdpectl admin acao contas ativar-conta 7 --ativo=false
  sdpectl admin acao projetos-pendentes rejeitar-projeto 42 --motivo "Plano incompleto"`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			console := admin.NewConsole(a.client, admin.DefaultSections())
			if err := console.Use(args[0]); err != nil {
				return err
			}

			in.Acao = args[1]
			in.ID = models.FlexID(strings.TrimSpace(args[2]))
			if cmd.Flags().Changed("ativo") {
				in.Ativo = &ativo
			}
			command, err := admin.BuildCommand(in)
			if err != nil {
				return err
			}

			res := console.Dispatch(cmd.Context(), command)
			if !res.OK {
				return res.Err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s aplicado ao item %s\n\n", res.Acao, in.ID)
			if res.Err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Aviso: %s\n", res.Err.Message)
				return nil
			}
			return printItens(cmd, res.Itens, false)
		},
	}
	flags := cmd.Flags()
	flags.BoolVar(&ativo, "ativo", true, "false desativa em vez de ativar")
	flags.StringVar(&in.Motivo, "motivo", "", "motivo da rejeição")
	flags.StringVar(&in.Mensagem, "mensagem", "", "texto da resposta ao contato")
	return cmd
}

func printItens(cmd *cobra.Command, itens []admin.Item, asJSON bool) error {
	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(itens)
	}
	if len(itens) == 0 {
		fmt.Fprintln(out, "Nenhum item nesta seção.")
		return nil
	}
	rows := make([][]string, 0, len(itens))
	for _, it := range itens {
		rows = append(rows, []string{it.ID(), itemLabel(it)})
	}
	printTable(out, []string{"ID", "DESCRIÇÃO"}, rows)
	return nil
}

func itemLabel(it admin.Item) string {
	for _, k := range labelKeys {
		if v, ok := it[k].(string); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return "-"
}
