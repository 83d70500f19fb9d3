package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/flightdesk/config"
	"github.com/Domenick1991/flightdesk/internal/bootstrap"
	"github.com/Domenick1991/flightdesk/internal/logging"
	"github.com/Domenick1991/flightdesk/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.New(cfg.App.Env, cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, cfg, logger, tea.WithAltScreen())
	stop()
	logger.Sync()
	if err != nil {
		log.Fatal(err)
	}
}

// run owns the store for the lifetime of the UI and closes it on every return path.
func run(ctx context.Context, cfg *config.Config, logger *zap.SugaredLogger, opts ...tea.ProgramOption) error {
	svc, closeStore, err := bootstrap.OpenInventory(ctx, cfg.Inventory, logger)
	if err != nil {
		logger.Errorw("open inventory store", "error", err)
		return fmt.Errorf("open inventory store: %w", err)
	}
	defer closeStore()

	model, err := tui.NewInventoryModel(ctx, svc, logger)
	if err != nil {
		return fmt.Errorf("build ui: %w", err)
	}

	logger.Infow("flight inventory started")
	if err := bootstrap.Run(ctx, model, opts...); err != nil {
		logger.Errorw("ui stopped", "error", err)
		return fmt.Errorf("ui error: %w", err)
	}
	logger.Infow("flight inventory stopped")
	return nil
}
