package cli

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tomazdalcortivo/sdpe_mid/helpers"
	internalservices "github.com/tomazdalcortivo/sdpe_mid/internal/services"
)

func newPerfilCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "perfil",
		Short: "Mostra o perfil da conta autenticada",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			perfil, err := internalservices.Perfil(cmd.Context(), a.client, a.store)
			if err != nil {
				if appErr := helpers.AsAppError(err, ""); appErr.Status == http.StatusUnauthorized {
					return fmt.Errorf("%s (%s login)", appErr.Message, CliName)
				}
				return err
			}

			keys := make([]string, 0, len(perfil))
			for k := range perfil {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			rows := make([][]string, 0, len(keys))
			for _, k := range keys {
				rows = append(rows, []string{k, fmt.Sprint(perfil[k])})
			}
			printTable(cmd.OutOrStdout(), []string{"CAMPO", "VALOR"}, rows)
			return nil
		},
	}
}
