package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tomazdalcortivo/sdpe_mid/internal/session"
)

func newLoginCmd(a *app) *cobra.Command {
	var email string
	var senhaStdin bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Autentica no SDPE e guarda o token",
		Example: `  sdpectl login --email coordenacao@utfpr.edu.br
  echo "$SENHA" | sdpectl login --email coordenacao@utfpr.edu.br --senha-stdin`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := bufio.NewReader(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			if strings.TrimSpace(email) == "" {
				fmt.Fprint(out, "E-mail: ")
				line, err := readLine(in)
				if err != nil {
					return err
				}
				email = line
			}

			senha, err := readSenha(cmd, in, senhaStdin)
			if err != nil {
				return err
			}
			if email == "" || senha == "" {
				return errors.New("e-mail e senha são obrigatórios")
			}

			token, err := a.client.Login(cmd.Context(), email, senha)
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}
			if err := a.store.SetToken(cmd.Context(), token); err != nil {
				return fmt.Errorf("guardando token: %w", err)
			}
			fmt.Fprintf(out, "Login efetuado como %s\n", email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "e-mail da conta")
	cmd.Flags().BoolVar(&senhaStdin, "senha-stdin", false, "lê a senha da entrada padrão")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Apaga o token guardado",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.store.Clear(cmd.Context()); err != nil {
				return err
			}
			if fs, ok := a.store.(*session.FileStore); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "Sessão encerrada (%s removido)\n", fs.Path())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Sessão encerrada")
			return nil
		},
	}
}

func readSenha(cmd *cobra.Command, in *bufio.Reader, fromStdin bool) (string, error) {
	if !fromStdin && cmd.InOrStdin() == os.Stdin && term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprint(cmd.OutOrStdout(), "Senha: ")
		b, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return "", fmt.Errorf("lendo senha: %w", err)
		}
		return strings.TrimSpace(string(b)), nil
	}
	return readLine(in)
}

func readLine(in *bufio.Reader) (string, error) {
	line, err := in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("lendo entrada: %w", err)
	}
	return strings.TrimSpace(line), nil
}
