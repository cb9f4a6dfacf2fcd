package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ytget/names72/internal/bootstrap"
	"github.com/ytget/names72/internal/platform"
	"github.com/ytget/names72/internal/tui"
)

// LogFileName is written in the temp directory; the screen belongs to the UI
const LogFileName = "names72-term.log"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "names72-term: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logFile, err := tea.LogToFile(filepath.Join(os.TempDir(), LogFileName), "names72")
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()

	configPath, err := platform.DefaultConfigFile()
	if err != nil {
		configPath = ""
	}

	services, err := bootstrap.Setup(ctx, bootstrap.Options{ConfigPath: configPath, LogOutput: logFile})
	if err != nil {
		return err
	}
	defer services.Close(context.Background())

	return tui.Run(ctx, tui.Options{
		Player:   services.Player,
		Catalog:  services.Catalog,
		Narrator: services.Narrator,
	})
}
