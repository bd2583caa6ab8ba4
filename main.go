package main

import (
	"context"
	"flag"
	"log"

	"fyne.io/fyne/v2/app"

	"LocalBoard/internal/board"
	"LocalBoard/internal/config"
	"LocalBoard/internal/export"
	"LocalBoard/internal/persist"
	"LocalBoard/internal/state"
	"LocalBoard/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	exportPath := flag.String("export", "", "write the saved board to this PDF file and exit")
	flag.Parse()

	cfg, err := config.NewLoader(*configPath).Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	a := app.NewWithID(cfg.AppID)
	store := state.NewStore()
	b := board.New(store, board.Options{
		Color:      cfg.Color,
		Background: cfg.Background,
		MinScale:   cfg.MinScale,
		MaxScale:   cfg.MaxScale,
	})
	b.Tools().SetPenWidth(cfg.PenWidth)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	warnings := make(chan error, 8)
	var runner *persist.Runner
	if cfg.Persist {
		prefs := persist.NewPreferences(a.Preferences())
		doc, ok, err := persist.Load(ctx, prefs)
		restored := false
		switch {
		case err != nil:
			// Start empty rather than refusing to open.
			log.Printf("[MAIN] Ignoring saved board: %v", err)
		case ok:
			if err := store.Restore(doc); err != nil {
				log.Printf("[MAIN] Ignoring saved board: %v", err)
			} else {
				restored = true
			}
		}

		runner = persist.NewRunner(ctx, prefs, store)
		runner.OnWarning = func(err error) {
			select {
			case warnings <- err:
			default:
			}
		}
		if restored {
			// Rewrite every key so pages missing from storage are filled in.
			runner.Run(persist.SaveAll(store.Snapshot()))
		}
		b.SetEffects(runner)
	}

	if *exportPath != "" {
		doc, _ := store.Snapshot()
		if err := export.ExportPDF(*exportPath, doc, cfg.Background); err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		if runner != nil {
			runner.Wait()
		}
		return
	}

	log.Printf("[MAIN] Starting with %d pages", store.PageCount())
	ui.RunApp(a, cfg, b, warnings)

	if runner != nil {
		runner.Wait()
	}
	close(warnings)
}
