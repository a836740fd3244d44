package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitlab.com/contact-site.net/internal/adapter/crypto"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative helpers",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for GET /api/submissions",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			tok, err := crypto.NewAdminTokenService(app.Config.JwtConfig).GenerateToken()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	})
	return cmd
}
