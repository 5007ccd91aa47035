// Copyright 2018 The ezgliding authors. All rights reserverd.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ezgliding/flightboard"
	"github.com/ezgliding/flightboard/config"
	"github.com/ezgliding/flightboard/ui"
)

var (
	// Global flags
	configPath string
	sourceURL  string
	verbose    bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "flightboard",
	Short: "Search upcoming flights by departure or destination",
	Long: `flightboard fetches the published flight times once and lets you
search the flights still to arrive by departure or destination name.

Run without arguments to start the interactive board.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if sourceURL != "" {
			cfg.SourceURL = sourceURL
		}
		if verbose {
			cfg.LogLevel = "debug"
		}
		level, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("log level: %w", err)
		}
		log.SetLevel(level)
		log.SetOutput(cmd.ErrOrStderr())
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBoard(cmd.Context())
	},
}

func newFetcher() *flightboard.CollyFetcher {
	return flightboard.NewCollyFetcher(cfg.SourceURL, cfg.UserAgent, cfg.Timeout)
}

// boardLogOutput picks where logs go while the board owns the terminal: the
// configured file, or nowhere.
func boardLogOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return io.Discard, func() error { return nil }, nil
	}
	f, err := tea.LogToFile(path, "")
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, f.Close, nil
}

func runBoard(ctx context.Context) error {
	out, closeLog, err := boardLogOutput(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()
	log.SetOutput(out)

	fetcher := newFetcher()
	log.WithField("url", fetcher.URL()).Info("starting board")
	p := tea.NewProgram(ui.New(fetcher, ui.WithContext(ctx)), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "config file")
	rootCmd.PersistentFlags().StringVar(&sourceURL, "source", "", "flight times URL (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.AddCommand(newListCmd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
