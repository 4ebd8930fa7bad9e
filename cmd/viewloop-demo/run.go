package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/muurk/viewloop/internal/config"
	"github.com/muurk/viewloop/internal/demo"
	"github.com/muurk/viewloop/internal/logging"
	"github.com/muurk/viewloop/runtime"
	"github.com/muurk/viewloop/view"
)

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Flags take precedence over the config file.
	level := logLevel
	if level == "" {
		level = cfg.LogLevel
	}
	path := logFile
	if path == "" {
		path = cfg.LogFile
	}
	start := startView
	if start == "" {
		start = cfg.StartView
	}

	if err := logging.Initialize(level, path); err != nil {
		return err
	}
	defer logging.Sync()

	rt := runtime.New(runtime.WithLogger(logging.GetLogger()))

	var initial view.View
	switch start {
	case "", "menu":
		initial = demo.NewMenuView(rt)
	case "counter":
		initial = demo.NewCounterView(rt)
	case "editor":
		initial = demo.NewEditorView(rt)
	default:
		return fmt.Errorf("unknown start view %q (want menu, counter or editor)", start)
	}

	rt.Initialize(initial)
	return rt.Run()
}
