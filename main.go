package main

import (
	"context"
	"embed"
	"fmt"
	"os"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"go.uber.org/zap"
	"gorm.io/gorm/logger"

	"storyteller/internal/config"
	"storyteller/internal/database"
	"storyteller/internal/events"
	"storyteller/internal/gemini"
	"storyteller/internal/logging"
	"storyteller/internal/repositories"
	"storyteller/internal/services"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading configuration:", err)
		os.Exit(1)
	}

	log, err := logging.New(logging.Config{
		Level:      cfg.LogLevel,
		Encoding:   cfg.LogEncoding,
		OutputPath: cfg.LogFile,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error creating logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	dbLevel := logger.Warn
	if database.IsDevelopment() {
		dbLevel = logger.Info
	}

	var (
		kv      repositories.KeyValueRepository
		dbClose func() error
	)
	db, err := database.Init(database.Config{
		Path:     cfg.DatabasePath,
		LogLevel: dbLevel,
		Logger:   log,
	})
	if err != nil {
		// Stories still work for this session, they just won't survive a restart.
		log.Error("failed to open database, saved stories will not persist", zap.Error(err))
		kv = repositories.NewMemoryKeyValueRepository()
	} else {
		kv = repositories.NewKeyValueRepository(db)
		if sqlDB, err := db.DB(); err == nil {
			dbClose = sqlDB.Close
		}
	}

	client := gemini.NewClient(cfg.ProxyURL, gemini.WithLogger(log.Named("gemini")))
	svc := services.NewServices(client, kv, services.StoryStoreOptions{
		Key:        cfg.StorageKey,
		DateLayout: cfg.DateLayout,
	}, log)

	app := NewApp(svc, log.Named("app"))
	app.dbClose = dbClose

	log.Info("starting",
		zap.String("proxy", client.Endpoint()),
		zap.String("storageKey", cfg.StorageKey))

	err = wails.Run(&options.App{
		Title:  "AI Story Generator",
		Width:  1024,
		Height: 768,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: false,
			WebviewGpuPolicy:    linux.WebviewGpuPolicyAlways,
			ProgramName:         "storyteller",
		},
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		Logger:           logging.NewWailsLogger(log),
		OnStartup: func(ctx context.Context) {
			events.EnableRuntimeEmitter()
			app.startup(ctx)
		},
		OnShutdown: app.shutdown,
		Bind: []interface{}{
			app,
		},
	})

	if err != nil {
		log.Error("wails run failed", zap.Error(err))
	}
}
