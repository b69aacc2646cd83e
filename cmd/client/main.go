package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/stegasaur/internal/adapter"
	"github.com/MKhiriev/stegasaur/internal/artifact"
	"github.com/MKhiriev/stegasaur/internal/client"
	"github.com/MKhiriev/stegasaur/internal/config"
	"github.com/MKhiriev/stegasaur/internal/logger"
	"github.com/MKhiriev/stegasaur/internal/service"
	"github.com/MKhiriev/stegasaur/internal/tui"
	"github.com/MKhiriev/stegasaur/internal/validators"
	"github.com/MKhiriev/stegasaur/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log, closer := logger.NewClientLogger("stegasaur-client", cfg.Log.FilePath, cfg.Log.Level)
	defer closer.Close()

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("date", buildInfo.BuildDate()).
		Str("commit", buildInfo.BuildCommit()).
		Str("address", cfg.Adapter.HTTPAddress).
		Msg("client starting")

	stegoAdapter, err := adapter.NewHTTPStegoAdapter(cfg.Adapter, log)
	if err != nil {
		log.Error().Err(err).Msg("create stego adapter")
		return fmt.Errorf("create stego adapter: %w", err)
	}

	services := service.NewClientServices(stegoAdapter, artifact.NewStore(), cfg.Storage.DownloadDir, log)
	selector := validators.NewFileSelectionValidator()

	var ui client.UI
	if cfg.Run.Mode == config.RunModeTUI {
		ui = tui.New(services, selector, buildInfo, log)
	}

	app, err := client.NewApp(cfg.Run, services, selector, ui, log)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		return err
	}

	log.Info().Msg("client stopped")
	return nil
}
