package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"tabsblock/internal/block"
	"tabsblock/internal/config"
	"tabsblock/internal/document"
	"tabsblock/internal/editor"
	"tabsblock/internal/trace"
	"tabsblock/internal/ui"
)

// nodeID is the id of the single Tabs node in the hosted document.
const nodeID = "tabs-1"

// options holds the parsed CLI flags. Empty values fall back to the config file.
type options struct {
	document string
	dir      string
	variant  string
	logFile  string
	view     bool
	verbose  bool
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.document, "document", "", "document name to open (default from config, else \"untitled\")")
	flag.StringVar(&opts.dir, "dir", "", "documents directory (overrides config and "+document.DirEnv+")")
	flag.StringVar(&opts.variant, "variant", "", "tab style for new documents: modern or classic")
	flag.StringVar(&opts.logFile, "log", "", "write debug logs to this file")
	flag.BoolVar(&opts.view, "view", false, "open in viewing mode")
	flag.BoolVar(&opts.verbose, "verbose", false, "log every property change")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tabsblock [flags]\n\n")
		fmt.Fprintf(os.Stderr, "tabsblock edits a document holding one Tabs block.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	return opts
}

// merge applies flags over the loaded config.
func merge(cfg config.Config, opts options) config.Config {
	if opts.document != "" {
		cfg.Document = opts.document
	}
	if opts.dir != "" {
		cfg.DocumentsDir = opts.dir
	}
	if opts.variant != "" {
		cfg.Variant = opts.variant
	}
	if opts.logFile != "" {
		cfg.LogFile = opts.logFile
	}
	if opts.view {
		authoring := false
		cfg.Authoring = &authoring
	}
	if opts.verbose {
		cfg.Verbose = true
	}
	return cfg
}

func run(cfg config.Config) error {
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "tabsblock")
		if err != nil {
			return fmt.Errorf("log file %q: %w", cfg.LogFile, err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	store, err := document.NewStore(cfg.DocumentsDir)
	if err != nil {
		return err
	}
	path, err := store.Path(cfg.Document)
	if err != nil {
		return err
	}
	props, err := store.Load(cfg.Document)
	if err != nil {
		return err
	}
	if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
		props.Variant = cfg.BlockVariant()
	}
	if cfg.Verbose {
		log.Printf("config: document=%q dir=%s variant=%s authoring=%v",
			cfg.Document, store.BaseDir(), props.Variant, cfg.AuthoringEnabled())
	}

	ctx := context.Background()
	provider, err := trace.NewProvider(ctx)
	if err != nil {
		log.Printf("trace.NewProvider: %v", err)
		provider = trace.Disabled()
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			log.Printf("trace.Shutdown: %v", err)
		}
	}()

	ed := editor.New(
		editor.WithEnabled(cfg.AuthoringEnabled()),
		editor.WithTracer(provider.Tracer()),
		editor.WithVerbose(cfg.Verbose),
	)
	node := ed.AddNode(nodeID, props)

	zones := zone.New()
	defer zones.Close()

	name := cfg.Document
	save := func(p block.Props) error { return store.Save(name, p) }
	app := ui.NewAppModel(ed, node, zones, name, save)

	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}

	if app.Dirty {
		if err := save(node.Props()); err != nil {
			return fmt.Errorf("save on exit: %w", err)
		}
		fmt.Printf("tabsblock: saved %s\n", path)
	}
	return nil
}

func main() {
	opts := parseFlags()
	cfg := merge(config.Load(), opts)
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "tabsblock: %v\n", err)
		os.Exit(1)
	}
}
