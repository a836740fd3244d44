package cli

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"gitlab.com/contact-site.net/internal/adapter/crypto"
	"gitlab.com/contact-site.net/internal/core/services/contact"
	"gitlab.com/contact-site.net/internal/domain"
	http2 "gitlab.com/contact-site.net/internal/http"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the site and the contact API",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			cfg, logger := app.Config, app.Logger

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			repo, err := openRepository(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer repo.Close()

			contactSvc := contact.NewContactService(repo, domain.NewIDGenerator(), logger)
			adminTokens := crypto.NewAdminTokenService(cfg.JwtConfig)
			serviceProvider := http2.NewServiceProvider(contactSvc, adminTokens)

			httpServer := http2.NewServer(cfg.HTTPConfig, "contactSite", *serviceProvider, logger)
			if err := httpServer.Init(); err != nil {
				return err
			}
			if err := httpServer.Start(ctx); err != nil {
				return err
			}
			logger.Info("Contact form submissions will be stored",
				"driver", cfg.StorageConfig.Driver,
				"location", storageLocation(cfg),
				"adminAuth", adminTokens.Enabled())

			<-ctx.Done()
			logger.Info("Shutting down server...")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := httpServer.Stop(shutdownCtx); err != nil {
				logger.Error("Server forced to shutdown", "error", err)
				return err
			}
			logger.Info("successfully shutdown server")
			return nil
		},
	}
}
