package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"boatdash/internal/assets"
	"boatdash/internal/config"
	"boatdash/internal/dataservice"
	"boatdash/internal/geo"
	"boatdash/internal/logging"
	"boatdash/internal/model"
	"boatdash/internal/store"
	"boatdash/internal/trace"
	"boatdash/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.Open(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer logger.Close()

	ctx := context.Background()

	exporter, err := trace.NewExporter(ctx)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer exporter.Shutdown(ctx)

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	db, err := store.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := store.RunMigrations(db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	if err := store.SeedDefaults(ctx, db); err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	svc := dataservice.New(
		store.NewBoatRepo(db),
		store.NewReviewRepo(db),
		exporter.Tracer(),
		logger.Logger,
	)

	var geoSource geo.Source
	if cfg.Geo.UseIPLookup {
		geoSource = geo.NewIPAPI()
	} else {
		geoSource = geo.Static{
			Coords: model.Coordinates{
				Latitude:  cfg.Geo.StationLatitude,
				Longitude: cfg.Geo.StationLongitude,
			},
			Set: true,
		}
	}

	app := ui.NewAppModel(ui.AppConfig{
		Service:      svc,
		Geo:          geoSource,
		AssetLoader:  assets.NewLoader(nil),
		AssetBaseURL: cfg.FiveStar.AssetBaseURL,
		Logger:       logger.Logger,
	})

	logger.Info("boatdash starting", "db", cfg.Database.Path)
	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
