// Package cli implementa o sdpectl, cliente de terminal da plataforma SDPE.
// Usa o mesmo núcleo do MID: filtros, derivação de status e console de moderação.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/beego/beego/v2/core/logs"
	"github.com/spf13/cobra"

	"github.com/tomazdalcortivo/sdpe_mid/internal/clients"
	"github.com/tomazdalcortivo/sdpe_mid/internal/session"
	"github.com/tomazdalcortivo/sdpe_mid/services"
)

const CliName = "sdpectl"

// app guarda o que os subcomandos compartilham depois do PersistentPreRunE.
type app struct {
	apiBase   string
	tokenFile string
	verbose   bool

	cfg    services.Config
	store  session.Store
	client *clients.SDPEClient
}

// NewRootCmd monta a árvore de comandos. Cada chamada devolve uma árvore nova.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   CliName,
		Short: "Cliente de terminal da plataforma de projetos de extensão (SDPE)",
		Long: heredoc.Doc(`
			sdpectl consulta a vitrine de projetos de extensão e opera o console
			de moderação do SDPE.

			A origem do backend vem de SDPE_API_BASE_URL (ou --api). O token do
			login fica em TOKEN_FILE, ou no Redis quando TOKEN_STORE=redis.
		`),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.apiBase, "api", "", "origem do backend SDPE (sobrepõe SDPE_API_BASE_URL)")
	flags.StringVar(&a.tokenFile, "token-file", "", "arquivo do token (sobrepõe TOKEN_FILE)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "mostra os logs das chamadas ao backend")

	root.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newProjetosCmd(a),
		newInstituicoesCmd(a),
		newAdminCmd(a),
		newPerfilCmd(a),
	)
	return root
}

func (a *app) init() error {
	if a.verbose {
		logs.SetLevel(logs.LevelDebug)
	} else {
		logs.SetLevel(logs.LevelCritical)
	}

	if a.apiBase != "" {
		_ = os.Setenv("SDPE_API_BASE_URL", a.apiBase)
	}
	cfg, err := services.LoadConfig()
	if err != nil {
		return fmt.Errorf("configuração: %w", err)
	}
	if a.apiBase != "" {
		cfg.APIBaseURL = strings.TrimSuffix(a.apiBase, "/")
	}
	if a.tokenFile != "" {
		cfg.TokenFile = a.tokenFile
	}
	// a CLI precisa que o login sobreviva entre execuções
	if cfg.TokenStore == services.TokenStoreMemory {
		cfg.TokenStore = services.TokenStoreFile
	}

	store, err := session.NewStore(cfg)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.store = store
	a.client = clients.NewSDPEClient(cfg, session.Chain{store, session.Static(cfg.ServiceToken)})
	return nil
}

// Execute roda o sdpectl e encerra o processo com código 1 em caso de erro.
func Execute() {
	ctx, stop := signalContext()
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		stop()
		os.Exit(1)
	}
}
