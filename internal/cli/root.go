package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gitlab.com/contact-site.net/internal/adapter/logging"
	"gitlab.com/contact-site.net/internal/config"
)

type ctxKey string

const appKey ctxKey = "app"

// App carries resolved configuration and shared dependencies for subcommands.
type App struct {
	Config *config.AppConfig
	Logger *logging.ZapLogger
}

// Execute builds the root command and runs it.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd constructs the root command and wires configuration.
func NewRootCmd() *cobra.Command {
	var (
		cfgPath string
		envName string
	)

	cmd := &cobra.Command{
		Use:           "sitesrv",
		Short:         "Marketing site server and contact-form backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envName != "" {
				if err := godotenv.Load(envName + ".env"); err != nil {
					return fmt.Errorf("error loading %s.env file: %w", envName, err)
				}
			}

			v := viper.New()
			if err := config.Load(v, cfgPath); err != nil {
				return err
			}
			if err := config.CheckConfigValidity(v); err != nil {
				return err
			}
			cfg := config.NewSystemConfig(v)

			logger, err := logging.NewZapLogger(cfg.LogLevel)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(context.WithValue(ctx, appKey, &App{Config: cfg, Logger: logger}))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app, err := getApp(cmd); err == nil {
				_ = app.Logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (yaml|toml|json)")
	cmd.PersistentFlags().StringVar(&envName, "env", "", "load <env>.env before reading the environment")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newSubmissionsCmd())
	cmd.AddCommand(newContactCmd())
	cmd.AddCommand(newAdminCmd())

	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Help() }

	return cmd
}

func getApp(cmd *cobra.Command) (*App, error) {
	ctx := cmd.Context()
	if ctx == nil {
		return nil, errors.New("internal error: app not initialized")
	}
	app, ok := ctx.Value(appKey).(*App)
	if !ok {
		return nil, errors.New("internal error: app not initialized")
	}
	return app, nil
}
