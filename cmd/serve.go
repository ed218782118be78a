package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"lark/internal/adapter/events"
	httpadapter "lark/internal/adapter/http"
	"lark/internal/adapter/postgres"
	"lark/internal/adapter/storage"
	"lark/internal/adapter/usecase"
	"lark/internal/config"
	"lark/internal/core/allocation"
	"lark/internal/core/port"
	"lark/internal/db"
)

type eventPublisher interface {
	port.EventPublisher
	Close() error
}

func newPublisher(cfg config.Config, logger *slog.Logger) (eventPublisher, error) {
	if !cfg.Kafka.Enabled() {
		logger.Info("no kafka brokers configured, events are dropped")
		return events.NewNoopPublisher(logger), nil
	}
	return events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.TopicPrefix)
}

func serveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext(cmd.Context())
			defer cancel()
			return serve(ctx, a.cfg, a.logger)
		},
	}
}

// serve wires stores, object storage and the event publisher into the use
// cases and runs the HTTP server until ctx is cancelled.
func serve(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	defer pool.Close()

	files, err := storage.NewMinioStorage(cfg.Storage)
	if err != nil {
		return err
	}
	err = files.EnsureBuckets(ctx, logger,
		cfg.Storage.ImagesBucket, cfg.Storage.DocumentsBucket, cfg.Storage.KYCBucket, cfg.Storage.VaultBucket)
	if err != nil {
		return err
	}

	publisher, err := newPublisher(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("event publisher close error", slog.Any("error", err))
		}
	}()

	var (
		campaignStore = postgres.NewCampaignStore(pool)
		userStore     = postgres.NewUserStore(pool)
		donationStore = postgres.NewDonationStore(pool)
		vaultStore    = postgres.NewVaultStore(pool)

		campaigns = usecase.NewCampaignRepository(campaignStore, cfg.Cache.TTL, logger, time.Now)
		users     = usecase.NewUserUseCase(userStore, logger)
		donations = usecase.NewDonationUseCase(donationStore, logger)
	)

	handler := httpadapter.NewHandler(httpadapter.Services{
		Campaigns: campaigns,
		Creator: usecase.NewCampaignCreator(campaignStore, files, campaigns, publisher, usecase.Buckets{
			Images:    cfg.Storage.ImagesBucket,
			Documents: cfg.Storage.DocumentsBucket,
		}, logger),
		Conflicts: allocation.NewChecker(campaignStore),
		Users:     users,
		Home:      usecase.NewHomeUseCase(users, campaigns, donations),
		Donations: donations,
		KYC:       usecase.NewKYCUseCase(userStore, files, publisher, cfg.Storage.KYCBucket, logger),
		Vault: usecase.NewVaultUseCase(campaignStore, vaultStore, files, publisher,
			cfg.Storage.VaultBucket, usecase.VaultLimits(cfg.Vault), logger),
	}, cfg.HTTP.MaxBodyBytes, logger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		logger.Info("server gracefully stopped")
		return nil
	})
	return g.Wait()
}
