package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"villa_rooms/internal/adapters/console"
	"villa_rooms/internal/adapters/observability"
	"villa_rooms/internal/app"
	"villa_rooms/internal/catalog"
	"villa_rooms/internal/domain"
	"villa_rooms/internal/shared"
	"villa_rooms/internal/storage/fsstore"
)

func main() {
	cfg := shared.Load()

	// stdout carries the acknowledgements; logs go to stderr
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel, os.Stderr)
	reg := observability.InitRegistry()

	cat, err := loadCatalog(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("catalog load failed")
	}

	var opts []fsstore.Option
	if cfg.OutputMkdir {
		opts = append(opts, fsstore.WithMkdir())
	}
	store := fsstore.New(cfg.OutputDir, opts...)
	svc := app.NewGenerationService(store, console.NewReporter(os.Stdout), log.Logger)

	_, runErr := svc.Run(cat)

	if cfg.MetricsFile != "" {
		if err := observability.WriteTextfile(cfg.MetricsFile, reg); err != nil {
			log.Error().Err(err).Str("path", cfg.MetricsFile).Msg("metrics textfile write failed")
		}
	}
	if runErr != nil {
		log.Fatal().Err(runErr).Str("output_dir", cfg.OutputDir).Msg("generation failed")
	}
}

func loadCatalog(cfg shared.Config) (domain.Catalog, error) {
	if cfg.CatalogFile != "" {
		log.Info().Str("path", cfg.CatalogFile).Msg("using catalog file")
		return catalog.LoadFile(cfg.CatalogFile)
	}
	return catalog.Default()
}
