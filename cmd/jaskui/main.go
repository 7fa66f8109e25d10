package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/jask/jaskui/app"
	"github.com/jask/jaskui/internal/config"
	"github.com/jask/jaskui/internal/database"
	"github.com/jask/jaskui/internal/logging"
)

func main() {
	fs := pflag.NewFlagSet("jaskui", pflag.ExitOnError)
	config.RegisterFlags(fs)
	writeConfig := fs.Bool("write-config", false, "write the effective config file and exit")
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.Load(fs)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *writeConfig {
		path := config.Path(fs)
		if err := config.Save(cfg, path); err != nil {
			log.Fatalf("write config: %v", err)
		}
		fmt.Println(path)
		return
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Fatalf("log level: %v", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx := context.Background()
	source, closeSource, err := openSource(ctx, cfg)
	if err != nil {
		log.Fatalf("open source: %v", err)
	}
	defer closeSource()

	interactive := isatty.IsTerminal(os.Stdout.Fd())
	if cfg.UI.NoColor || !interactive {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	m, demo := app.New(app.Options{
		Title:     cfg.UI.Title,
		Source:    source,
		ExportDir: cfg.Export.Dir,
	})

	if cfg.UI.Snapshot || !interactive {
		demo.Table.Update(&m, demo.Table.Reload()())
		if err := writeSnapshot(os.Stdout, m.Snapshot(cfg.UI.Width, cfg.UI.Height)); err != nil {
			log.Fatalf("snapshot: %v", err)
		}
		return
	}

	handler := logging.NewTUIHandler(level)
	slog.SetDefault(slog.New(handler))

	p := tea.NewProgram(m, tea.WithAltScreen())
	handler.SetSender(p)
	defer handler.SetSender(nil)
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

// openSource picks the fixture file when one is configured and the sqlite
// database otherwise.
func openSource(ctx context.Context, cfg config.Config) (app.UserSource, func(), error) {
	if cfg.Records.File != "" {
		return app.FixtureSource{Path: cfg.Records.File}, func() {}, nil
	}
	path := cfg.Database.Path
	if path == "" {
		path = database.MemoryPath
	}
	if path != database.MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("mkdir db dir: %w", err)
		}
	}
	db, err := database.OpenAndPrepare(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	return app.DBSource{DB: db, Path: path}, func() { _ = db.Close() }, nil
}

func writeSnapshot(w io.Writer, frame string) error {
	_, err := fmt.Fprintln(w, frame)
	return err
}
