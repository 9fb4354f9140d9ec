// Copyright 2026 The Food Wallet Authors
// SPDX-License-Identifier: Apache-2.0

// foodwallet is the terminal client for the Food Wallet pantry
// tracker: log in, browse your pantry, scan barcodes, and talk to the
// food assistant, all against a Food Wallet backend.
//
// Configuration comes from --config (or the FOODWALLET_CONFIG
// environment variable); with neither set the built-in defaults point
// at a backend on localhost:3000.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/foodwallet/foodwallet/lib/appui"
	"github.com/foodwallet/foodwallet/lib/config"
	"github.com/foodwallet/foodwallet/lib/gateway"
	"github.com/foodwallet/foodwallet/lib/nav"
	"github.com/foodwallet/foodwallet/lib/session"
	"github.com/foodwallet/foodwallet/lib/theme"
	"github.com/foodwallet/foodwallet/lib/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var configPath string
	var serverURL string
	var themeFlag string
	var logOutput string

	flagSet := pflag.NewFlagSet("foodwallet", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to YAML config file (default: $FOODWALLET_CONFIG or built-in defaults)")
	flagSet.StringVar(&serverURL, "server", "", "backend base URL (overrides config)")
	flagSet.StringVar(&themeFlag, "theme", "", "starting theme: auto, light, or dark (overrides config)")
	flagSet.StringVar(&logOutput, "log-output", "", "write JSON log records to this file (in addition to TUI display)")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing to match other binaries.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("foodwallet")
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if serverURL != "" {
		cfg.Backend.BaseURL = serverURL
	}
	if themeFlag != "" {
		cfg.UI.Theme = themeFlag
	}

	variant := theme.DetectVariant()
	switch cfg.UI.Theme {
	case "light":
		variant = theme.VariantLight
	case "dark":
		variant = theme.VariantDark
	case "", "auto":
	default:
		return fmt.Errorf("unknown theme %q (want auto, light, or dark)", cfg.UI.Theme)
	}

	// Log records go to the TUI status bar; stderr is owned by the
	// alternate screen while the program runs.
	tuiHandler := appui.NewTUILogHandler(parseLogLevel(cfg.LogLevel))
	var logger *slog.Logger
	if logOutput != "" {
		fileHandler, closeLog, err := newFileLogHandler(logOutput)
		if err != nil {
			return err
		}
		defer closeLog()
		logger = slog.New(fanoutHandler{tuiHandler, fileHandler})
	} else {
		logger = slog.New(tuiHandler)
	}

	sessions := session.NewStore()
	themes := theme.NewStore(theme.ForVariant(variant))
	navigator := nav.New(sessions)
	client := gateway.New(cfg.Backend.BaseURL, cfg.Backend.RequestTimeout)

	model := appui.New(sessions, themes, navigator, client, logger)
	program := tea.NewProgram(model, tea.WithAltScreen())
	tuiHandler.SetProgram(program)

	_, err = program.Run()
	return err
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// newFileLogHandler opens a JSON debug log for troubleshooting
// sessions. The returned cleanup closes the file.
func newFileLogHandler(path string) (slog.Handler, func(), error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log output: %w", err)
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	return handler, func() { file.Close() }, nil
}

// fanoutHandler sends each record to multiple handlers.
type fanoutHandler []slog.Handler

func (handlers fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (handlers fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	var firstErr error
	for _, handler := range handlers {
		if !handler.Enabled(ctx, record.Level) {
			continue
		}
		if err := handler.Handle(ctx, record); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (handlers fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	derived := make(fanoutHandler, len(handlers))
	for i, handler := range handlers {
		derived[i] = handler.WithAttrs(attrs)
	}
	return derived
}

func (handlers fanoutHandler) WithGroup(name string) slog.Handler {
	derived := make(fanoutHandler, len(handlers))
	for i, handler := range handlers {
		derived[i] = handler.WithGroup(name)
	}
	return derived
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `Food Wallet: terminal client for the Food Wallet pantry tracker.

Track what food you have, when it expires, and what to cook with it.
Requires a running Food Wallet backend (default: localhost:3000).

Usage:
  foodwallet [flags]

Flags:
%s
Keys:
  ctrl+a/p/s/o/g   switch tabs (home, pantry, scanner, ai tools, settings)
  ctrl+t           toggle light/dark theme
  ctrl+l           log out
  ctrl+c           quit
`, flagSet.FlagUsages())
}
