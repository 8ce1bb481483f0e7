package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/rizkyhp/gudangpro/internal/auth"
	"github.com/rizkyhp/gudangpro/internal/config"
	"github.com/rizkyhp/gudangpro/internal/document"
	gudangHttp "github.com/rizkyhp/gudangpro/internal/http"
	authHandler "github.com/rizkyhp/gudangpro/internal/http/auth"
	documentHandler "github.com/rizkyhp/gudangpro/internal/http/document"
	importHandler "github.com/rizkyhp/gudangpro/internal/http/importcsv"
	ledgerHandler "github.com/rizkyhp/gudangpro/internal/http/ledger"
	"github.com/rizkyhp/gudangpro/internal/importer"
	"github.com/rizkyhp/gudangpro/internal/ledger"
	ledgerStore "github.com/rizkyhp/gudangpro/internal/ledger/store"
	"github.com/rizkyhp/gudangpro/internal/qrcode"
	"github.com/rizkyhp/gudangpro/internal/storage"
	fileStorage "github.com/rizkyhp/gudangpro/internal/storage/file"
	memoryStorage "github.com/rizkyhp/gudangpro/internal/storage/memory"
	postgresStorage "github.com/rizkyhp/gudangpro/internal/storage/postgres"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	kv, err := newKV(cfg)
	if err != nil {
		slog.Error("failed to open storage", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}

	var (
		ledgerService = ledger.NewService(ledgerStore.New(kv))
		importService = importer.NewService()
		authService   = auth.NewService(cfg.Auth.Secret, cfg.Auth.LoginDelay)
		renderer      = document.NewRenderer(qrcode.New(cfg.QR.BaseURL, cfg.QR.Size))
	)

	var (
		authH     = authHandler.NewHandler(authService)
		ledgerH   = ledgerHandler.NewHandler(ledgerService)
		documentH = documentHandler.NewHandler(ledgerService, renderer)
		importH   = importHandler.NewHandler(importService, ledgerService)
	)

	router := gudangHttp.New(authService, authH, ledgerH, documentH, importH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port, "storage", cfg.Storage.Driver)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func newKV(cfg *config.Config) (storage.KV, error) {
	switch cfg.Storage.Driver {
	case "postgres":
		return postgresStorage.New(cfg.ConnectionString())
	case "file":
		return fileStorage.New(cfg.Storage.Path)
	case "memory":
		slog.Warn("using in-memory storage, data will not survive a restart")
		return memoryStorage.New(), nil
	}

	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}
