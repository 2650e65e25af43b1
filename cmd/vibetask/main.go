package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/vibetask/internal/config"
	"github.com/sandeepkv93/vibetask/internal/logging"
	"github.com/sandeepkv93/vibetask/internal/model"
	"github.com/sandeepkv93/vibetask/internal/storage"
	"github.com/sandeepkv93/vibetask/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vibetask failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.New(logging.Config{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return err
	}
	defer closeLog()

	kv, err := openKV(cfg)
	if err != nil {
		logger.Error().Err(err).Str("store", cfg.Store).Msg("open store")
		return err
	}
	tasks := storage.NewTaskStore(kv, logger)
	defer tasks.Close()
	logger.Info().Str("store", cfg.Store).Msg("vibetask starting")

	start := model.UrgencyLevel(cfg.DefaultUrgency)
	program := tea.NewProgram(update.NewModel(update.Options{
		Store:          tasks,
		Opener:         update.ExecURLOpener{},
		IDs:            model.NewULIDSource(),
		Logger:         logger,
		ExportDir:      cfg.ExportDir,
		DefaultUrgency: &start,
	}), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}
	logger.Info().Msg("vibetask stopped")
	return nil
}

func openKV(cfg config.RuntimeConfig) (storage.KV, error) {
	switch cfg.Store {
	case config.StoreFile:
		return storage.NewFileStore(cfg.StateFilePath)
	default:
		return storage.OpenSQLite(cfg.DBPath)
	}
}
