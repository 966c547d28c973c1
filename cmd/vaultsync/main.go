package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/passhold/vault-engine/internal/adapter"
	"github.com/passhold/vault-engine/internal/config"
	"github.com/passhold/vault-engine/internal/crypto"
	"github.com/passhold/vault-engine/internal/logger"
	"github.com/passhold/vault-engine/internal/service"
	"github.com/passhold/vault-engine/internal/store"
	"github.com/passhold/vault-engine/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("vault-sync")
	cfg, err := config.GetEnvironmentConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	token := os.Getenv("VAULT_SESSION_TOKEN")
	if token == "" {
		log.Fatal().Msg("VAULT_SESSION_TOKEN is not set")
	}

	remote := adapter.NewVaultAPIAdapter(cfg.Adapter)
	if err = remote.SetToken(token); err != nil {
		log.Fatal().Err(err).Msg("error setting session token")
	}

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	cacheCipher := crypto.NewCacheCipher(cfg.App.DeviceSecret)
	services := service.NewServices(storages, remote, cacheCipher)

	ctx, stop := signal.NotifyContext(log.WithContext(context.Background()), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if _, err = services.ShareRepository.GetShares(ctx, true); err != nil {
		log.Err(err).Msg("initial share sync failed, serving cached state")
	}

	syncWorkers := workers.NewWorkers(workers.NewShareSyncWorker(services.ShareRepository))
	syncWorkers.Start(ctx, cfg.Workers.SyncInterval)

	log.Info().
		Str("user_id", remote.UserID()).
		Dur("sync_interval", cfg.Workers.SyncInterval).
		Msg("vault sync started")

	<-ctx.Done()
	syncWorkers.Stop()

	log.Info().Msg("vault sync stopped")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
