package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/datepick/internal/recurrence"
	"github.com/sadopc/datepick/internal/store"
	"github.com/sadopc/datepick/internal/tui"
)

type flagConfig struct {
	dbPath string
	date   string
	debug  bool
}

func main() {
	flags := parseFlags()

	logger, closeLog, err := newLogger(flags.debug || os.Getenv("DATEPICK_DEBUG") != "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog.Close()

	today := time.Now()
	if flags.date != "" {
		today, err = time.ParseInLocation("2006-01-02", flags.date, time.Local)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: invalid -date %q: want YYYY-MM-DD\n", flags.date)
			os.Exit(1)
		}
	}

	dbPath := flags.dbPath
	if dbPath == "" {
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	s, err := store.New(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening database: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	logger.Info("datepick starting", "db", dbPath, "date", today.Format("2006-01-02"))

	app := tui.NewApp(s, recurrence.New(today), logger)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "err", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() flagConfig {
	var cfg flagConfig

	flag.StringVar(&cfg.dbPath, "db", "", "Path to the settings database (default ~/.config/datepick/datepick.db)")
	flag.StringVar(&cfg.date, "date", "", "Initial date as YYYY-MM-DD (default today)")
	flag.BoolVar(&cfg.debug, "debug", false, "Write debug logs to datepick-debug.log")

	flag.Parse()

	return cfg
}

// newLogger returns a discarding logger unless debug is set. The terminal
// belongs to the TUI, so debug output goes to a file.
func newLogger(debug bool) (*slog.Logger, io.Closer, error) {
	if !debug {
		return slog.New(slog.DiscardHandler), io.NopCloser(nil), nil
	}

	f, err := tea.LogToFile("datepick-debug.log", "datepick")
	if err != nil {
		return nil, nil, fmt.Errorf("open debug log: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), f, nil
}
