package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"gitlab.com/contact-site.net/internal/core/services/contact"
)

func newSubmissionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submissions",
		Short: "Inspect stored contact-form submissions",
	}
	cmd.AddCommand(newSubmissionsListCmd())
	return cmd
}

func newSubmissionsListCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print every stored submission",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			repo, err := openRepository(cmd.Context(), app.Config, app.Logger)
			if err != nil {
				return err
			}
			defer repo.Close()

			submissions, err := contact.NewContactService(repo, nil, app.Logger).ListSubmissions(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(submissions)
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(submissions); err != nil {
					return err
				}
				return enc.Close()
			default:
				return fmt.Errorf("unknown format %q (json|yaml)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "output format: json|yaml")
	return cmd
}
