package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/stegasaur/internal/logger"
	"github.com/MKhiriev/stegasaur/internal/service"
	"github.com/MKhiriev/stegasaur/internal/validators"
	"github.com/MKhiriev/stegasaur/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("quit by user")

type TUI struct {
	services  *service.ClientServices
	selector  validators.FileSelector
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(services *service.ClientServices, selector validators.FileSelector, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		selector:  selector,
		buildInfo: buildInfo,
		logger:    log.WithComponent("tui"),
	}
}

// Model builds the router with every page registered, starting at home.
func (t *TUI) Model(ctx context.Context) RootModel {
	pages := map[string]Page{
		PageHome:         NewHomeModel(ctx, t.services.TransferService),
		PageEncode:       NewEncodeModel(ctx, t.services, t.selector),
		PageDecode:       NewDecodeModel(ctx, t.services, t.selector),
		PageEncodeResult: NewEncodeResultModel(ctx, t.services.DownloadService),
		PageDecodeResult: NewDecodeResultModel(ctx, t.services.DownloadService),
	}

	return NewRootModel(pages, PageHome, t.buildInfo)
}

// Run blocks until the user quits or ctx is cancelled. A ctrl+c exit is
// reported as [ErrUserQuit].
func (t *TUI) Run(ctx context.Context) error {
	finalModel, err := tea.NewProgram(t.Model(ctx), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.QuitByUser() {
		t.logger.Debug().Msg("ui closed with ctrl+c")
		return ErrUserQuit
	}

	return nil
}
