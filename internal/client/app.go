package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/stegasaur/internal/config"
	"github.com/MKhiriev/stegasaur/internal/logger"
	"github.com/MKhiriev/stegasaur/internal/service"
	"github.com/MKhiriev/stegasaur/internal/tui"
	"github.com/MKhiriev/stegasaur/internal/validators"
	"github.com/mattn/go-isatty"
)

type App struct {
	run      config.ClientRun
	services *service.ClientServices
	selector validators.FileSelector
	ui       UI

	out        io.Writer
	isTerminal func() bool

	logger *logger.Logger
}

func NewApp(
	run config.ClientRun,
	services *service.ClientServices,
	selector validators.FileSelector,
	ui UI,
	log *logger.Logger,
) (*App, error) {
	if services == nil || selector == nil {
		return nil, errors.New("client app: services and file selector are required")
	}
	if (run.Mode == config.RunModeTUI || run.Mode == "") && ui == nil {
		return nil, errors.New("client app: tui mode requires a ui")
	}

	return &App{
		run:        run,
		services:   services,
		selector:   selector,
		ui:         ui,
		out:        os.Stdout,
		isTerminal: stdoutIsTerminal,
		logger:     log.WithComponent("client"),
	}, nil
}

// Run dispatches on the configured mode. Closing the UI with ctrl+c is a
// normal exit.
func (a *App) Run(ctx context.Context) error {
	a.logger.Debug().Str("mode", string(a.run.Mode)).Msg("client started")

	switch a.run.Mode {
	case config.RunModeTUI, "":
		if !a.isTerminal() {
			return ErrNotATerminal
		}
		err := a.ui.Run(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	case config.RunModeEncode, config.RunModeDecode:
		return a.runHeadless(ctx)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRunMode, a.run.Mode)
	}
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
