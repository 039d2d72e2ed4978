package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"jotter/internal/app"
	"jotter/internal/config"
	"jotter/internal/logging"
	"jotter/internal/notes"
)

func newUICommand(wiring commandWiring, configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Run the terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUI(cmd, wiring, *configPath)
		},
	}
}

func runUI(cmd *cobra.Command, wiring commandWiring, configPath string) error {
	cfg, err := loadConfig(configPath, false)
	if err != nil {
		return err
	}

	// stdout belongs to the renderer, so the UI logs to a file
	logPath, err := config.UILogPath()
	if err != nil {
		return err
	}
	logger, closer, err := wiring.openLogger(logPath, logging.ParseLevel(cfg.LogLevel()))
	if err != nil {
		return fmt.Errorf("open log %s: %w", logPath, err)
	}
	defer closer.Close()
	logger = logger.With(logging.F("session_id", logging.NewSessionID()))

	keybindingsPath, err := cfg.ResolveKeybindingsPath()
	if err != nil {
		return err
	}
	bindings, err := app.LoadKeybindings(keybindingsPath)
	if err != nil {
		return fmt.Errorf("load keybindings %s: %w", keybindingsPath, err)
	}

	session := notes.NewSession(
		notes.WithIDSource(newIDSource(cfg.IDSource())),
		notes.WithLogger(logger),
	)
	logger.Info("ui starting", logging.F("version", wiring.version), logging.F("id_source", cfg.IDSource()))
	err = wiring.runUI(cmd.Context(), session, app.Options{
		Title:             cfg.Title(),
		Owner:             cfg.Owner(),
		ConfirmDelete:     cfg.ConfirmDeleteEnabled(),
		Preview:           cfg.PreviewEnabled(),
		DescriptionHeight: cfg.DescriptionHeight(),
		Keybindings:       bindings,
		Logger:            logger,
	})
	if err != nil {
		logger.Error("ui failed", logging.F("err", err))
		return err
	}
	logger.Info("ui stopped", logging.F("notes", session.Len()))
	return nil
}

func newIDSource(kind string) notes.IDSource {
	if kind == config.IDSourceSequence {
		return notes.NewSequenceIDs()
	}
	return notes.NewClockIDs(time.Now)
}

// loadConfig reads the file named by --config, or the default location when
// path is empty. defaults skips reading entirely.
func loadConfig(path string, defaults bool) (config.Config, error) {
	if defaults {
		return config.DefaultConfig(), nil
	}
	if path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}
