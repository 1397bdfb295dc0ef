package cli

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/tomazdalcortivo/sdpe_mid/internal/catalog"
	internalservices "github.com/tomazdalcortivo/sdpe_mid/internal/services"
	"github.com/tomazdalcortivo/sdpe_mid/models"
)

type filtroFlags struct {
	query       string
	status      string
	area        string
	formato     string
	instituicao string
}

func (f filtroFlags) values() url.Values {
	v := url.Values{}
	v.Set(internalservices.ParamQuery, f.query)
	v.Set(internalservices.ParamStatus, f.status)
	v.Set(internalservices.ParamArea, f.area)
	v.Set(internalservices.ParamFormato, f.formato)
	v.Set(internalservices.ParamInstituicao, f.instituicao)
	return v
}

func newProjetosCmd(a *app) *cobra.Command {
	var f filtroFlags
	var resumo bool

	cmd := &cobra.Command{
		Use:   "projetos",
		Short: "Lista os projetos de extensão com filtros",
		Long: heredoc.Doc(`
			Carrega a coleção uma vez e aplica os filtros localmente. Todos os
			filtros precisam casar (E lógico); filtro vazio significa "todos".

			O status é derivado: inativo quando o projeto foi desativado,
			finalizado quando a data de fim já passou, em andamento no resto.
		`),
		Example: `  sdpectl projetos --status EM_ANDAMENTO --formato ONLINE
  sdpectl projetos -q horta --instituicao UTFPR
  sdpectl projetos --resumo`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := internalservices.ParseFilterState(f.values())
			if err != nil {
				return err
			}

			projetos, err := catalog.NewLoader(a.client, a.cfg.TamPag).Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("não foi possível carregar os projetos: %w", err)
			}

			now := time.Now()
			if resumo {
				printResumo(cmd, catalog.Summarize(catalog.Filter(projetos, state, now), now))
				return nil
			}

			view := catalog.BuildView(projetos, state, now, "")
			if len(view.Items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nenhum projeto encontrado.")
				return nil
			}
			rows := make([][]string, 0, len(view.Items))
			for _, c := range view.Items {
				rows = append(rows, []string{
					c.ID.String(),
					c.Nome,
					colorStatus(c.Status),
					c.Area,
					c.Formato,
					c.Instituicao,
					strings.Join(c.Coordenadores, ", "),
				})
			}
			printTable(cmd.OutOrStdout(), []string{"ID", "NOME", "STATUS", "ÁREA", "FORMATO", "INSTITUIÇÃO", "COORDENAÇÃO"}, rows)
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d de %d projetos\n", view.Filtrados, view.Total)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.query, "busca", "q", "", "busca no nome do projeto e dos coordenadores")
	flags.StringVar(&f.status, "status", "", "INATIVO, FINALIZADO ou EM_ANDAMENTO")
	flags.StringVar(&f.area, "area", "", "área do conhecimento")
	flags.StringVar(&f.formato, "formato", "", "PRESENCIAL, ONLINE ou HIBRIDO")
	flags.StringVar(&f.instituicao, "instituicao", "", "nome exato da instituição")
	flags.BoolVar(&resumo, "resumo", false, "mostra contagens por status, área e formato")
	return cmd
}

func newInstituicoesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "instituicoes",
		Short: "Lista as instituições presentes na coleção",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projetos, err := catalog.NewLoader(a.client, a.cfg.TamPag).Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("não foi possível carregar as instituições: %w", err)
			}
			for _, nome := range catalog.Instituicoes(projetos) {
				fmt.Fprintln(cmd.OutOrStdout(), nome)
			}
			return nil
		},
	}
}

func printResumo(cmd *cobra.Command, r catalog.Resumo) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Total: %d\n\n", r.Total)

	rows := make([][]string, 0, len(models.Statuses))
	for _, s := range models.Statuses {
		rows = append(rows, []string{colorStatus(s), fmt.Sprint(r.PorStatus[s])})
	}
	printTable(out, []string{"STATUS", "PROJETOS"}, rows)
	fmt.Fprintln(out)
	printTable(out, []string{"ÁREA", "PROJETOS"}, countRows(r.PorArea))
	fmt.Fprintln(out)
	printTable(out, []string{"FORMATO", "PROJETOS"}, countRows(r.PorFormato))
}

func countRows(m map[string]int) [][]string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, []string{k, fmt.Sprint(m[k])})
	}
	return rows
}
