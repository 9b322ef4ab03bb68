package main

import (
	"context"

	"github.com/lbertolazzi/go-taxonomy-admin/internal/app"
	"github.com/lbertolazzi/go-taxonomy-admin/internal/config"
	"github.com/lbertolazzi/go-taxonomy-admin/internal/logger"
	"github.com/lbertolazzi/go-taxonomy-admin/models"
)

// Populated at build time via -ldflags "-X main.buildVersion=...".
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		logger.New("taxadmin").Fatal().Err(err).Msg("error getting configs")
	}

	// The UI owns the terminal for the whole session, so logs go to a file.
	log := logger.NewFileLogger("taxadmin", cfg.Log.FilePath)
	logger.SetLevel(cfg.Log.Level)

	// Attach the logger to the context so logger.FromContext works everywhere
	// the context travels.
	ctx := log.WithContext(context.Background())
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	taxadmin, err := app.New(ctx, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init app error")
	}

	if err = taxadmin.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("app run error")
	}
}
