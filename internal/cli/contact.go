package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"gitlab.com/contact-site.net/internal/client"
	"gitlab.com/contact-site.net/internal/domain"
)

func newContactCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Talk to a running contact API",
	}
	cmd.AddCommand(newContactSendCmd())
	return cmd
}

func newContactSendCmd() *cobra.Command {
	var (
		form     domain.ContactForm
		endpoint string
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Submit the contact form",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			if endpoint == "" {
				endpoint = app.Config.ClientEndpoint
			}

			res, err := client.New(endpoint).Submit(cmd.Context(), form)
			if err != nil {
				var fe *client.FormError
				if errors.As(err, &fe) {
					fmt.Fprintln(cmd.ErrOrStderr(), client.FormSummary)
					for _, f := range fe.Fields {
						fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", f.Field, f.Message)
					}
					return err
				}
				app.Logger.Error("Failed to send contact form", "endpoint", endpoint, "error", err)
				fmt.Fprintln(cmd.ErrOrStderr(), client.GenericFailure)
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), res.Message)
			fmt.Fprintf(cmd.OutOrStdout(), "submission id: %s\n", res.SubmissionID)
			return nil
		},
	}

	cmd.Flags().StringVar(&form.Name, "name", "", "your name")
	cmd.Flags().StringVar(&form.Email, "email", "", "your email address")
	cmd.Flags().StringVar(&form.Message, "message", "", "message body")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "override client.endpoint")
	return cmd
}
