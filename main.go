package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/leonelquinteros/gotext"

	"chronoscope/pkg/chart/config"
	"chronoscope/pkg/chart/records"
	"chronoscope/pkg/chart/renderer/ebiten"
	"chronoscope/pkg/chart/renderer/tui"
	"chronoscope/pkg/chart/session"
	"chronoscope/pkg/engine/input"
)

func main() {
	configPath := flag.String("config", "", "YAML settings file (defaults are built in)")
	dataPath := flag.String("data", "testdata/sample.yaml", "YAML file with bands, authors and texts")
	backend := flag.String("renderer", "ebiten", "display backend: ebiten or tui")
	lang := flag.String("lang", "en_US", "interface language")
	locales := flag.String("locales", "locales", "directory holding <lang>/LC_MESSAGES/default.po")
	width := flag.Int("width", 0, "window width, overrides the config")
	height := flag.Int("height", 0, "window height, overrides the config")
	debug := flag.Bool("debug", false, "log every gesture and rebuild")
	logPath := flag.String("log", "", "write logs to this file (the tui backend discards them otherwise)")
	flag.Parse()

	if err := run(*configPath, *dataPath, *backend, *lang, *locales, *width, *height, *debug, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "chronoscope: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, dataPath, backend, lang, locales string, width, height int, debug bool, logPath string) error {
	gotext.Configure(locales, lang, "default")
	session.Debug = debug

	switch {
	case logPath != "":
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	case backend == "tui":
		// Log lines would tear the full-screen canvas.
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if width > 0 {
		cfg.Layout.Width = width
	}
	if height > 0 {
		cfg.Layout.Height = height
	}
	bindings, err := cfg.KeyBindings()
	if err != nil {
		return err
	}
	for action, code := range bindings {
		input.SetSingleBinding(action, code)
		log.Printf("Bound %s to %q", input.ActionID(action), code)
	}

	recs, err := records.Load(dataPath)
	if err != nil {
		return err
	}
	if recs.Len() == 0 {
		fmt.Fprintf(os.Stderr, "Warning: %s has no bands, authors or texts\n", dataPath)
	}
	log.Printf("Read %d records from %s", recs.Len(), dataPath)

	switch backend {
	case "ebiten":
		r, err := ebiten.New(cfg)
		if err != nil {
			return err
		}
		r.Attach(session.New(cfg, recs, r))
		return r.Run()
	case "tui":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		r := tui.New(cfg, os.Stdin, os.Stdout)
		r.Attach(session.New(cfg, recs, r))
		return r.Run(ctx)
	}
	return fmt.Errorf("unknown renderer %q (want ebiten or tui)", backend)
}
