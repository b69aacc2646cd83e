package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/stegasaur/internal/app"
	"github.com/MKhiriev/stegasaur/internal/service"
	"github.com/MKhiriev/stegasaur/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// HomeModel is the start screen. It shows the service health and leads to
// the encode and decode screens.
type HomeModel struct {
	ctx      context.Context
	transfer service.TransferService

	spinner  spinner.Model
	checking bool
	cleaning bool
	health   *models.ServiceHealth
	status   string
	errMsg   string
}

func NewHomeModel(ctx context.Context, transfer service.TransferService) *HomeModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &HomeModel{ctx: ctx, transfer: transfer, spinner: s}
}

func (m *HomeModel) Init() tea.Cmd {
	return nil
}

// Enter re-checks the service every time the screen is shown.
func (m *HomeModel) Enter(*models.WorkflowState) tea.Cmd {
	m.status = ""
	return m.startHealthCheck()
}

func (m *HomeModel) Leave() {}

func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case healthMsg:
		m.checking = false
		if msg.err != nil {
			m.health = nil
			m.errMsg = humanizeServiceError(msg.err)
			return m, nil
		}
		m.health = &msg.health
		m.errMsg = ""
		return m, nil

	case cleanupDoneMsg:
		m.cleaning = false
		if msg.err != nil {
			m.errMsg = humanizeServiceError(msg.err)
			return m, nil
		}
		m.status = app.MsgCleanupDone
		return m, nil

	case spinner.TickMsg:
		if !m.checking && !m.cleaning {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.encode):
			return m, navigateCmd(NavigateTo{Page: PageEncode})
		case key.Matches(msg, keys.decode):
			return m, navigateCmd(NavigateTo{Page: PageDecode})
		case key.Matches(msg, keys.recheck):
			return m, m.startHealthCheck()
		case key.Matches(msg, keys.cleanup):
			if m.cleaning {
				return m, nil
			}
			m.cleaning = true
			m.status = ""
			return m, tea.Batch(m.cmdCleanup(), m.spinner.Tick)
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *HomeModel) View() string {
	var b strings.Builder

	b.WriteString("Hide a file inside a PNG, or recover one.\n\n")
	b.WriteString("Service: ")
	switch {
	case m.checking:
		b.WriteString(m.spinner.View())
		b.WriteString(" checking...")
	case m.health == nil && m.errMsg != "":
		b.WriteString(errorStyle.Render(m.errMsg))
	case m.health == nil:
		b.WriteString("unknown")
	case !m.health.BinaryExists:
		b.WriteString(errorStyle.Render(app.MsgBinaryMissing))
	default:
		b.WriteString(okStyle.Render(m.health.Status))
	}
	b.WriteString("\n")

	if m.cleaning {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" cleaning up...\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.health != nil && m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("stegaSaur", strings.TrimRight(b.String(), "\n"),
		"e/enter: encode │ d: decode │ r: recheck │ x: cleanup │ v: about │ q: quit")
}

func (m *HomeModel) startHealthCheck() tea.Cmd {
	if m.checking {
		return nil
	}
	m.checking = true
	return tea.Batch(m.cmdHealth(), m.spinner.Tick)
}

func (m *HomeModel) cmdHealth() tea.Cmd {
	ctx := m.ctx
	transfer := m.transfer

	return func() tea.Msg {
		health, err := transfer.Health(ctx)
		return healthMsg{page: PageHome, health: health, err: err}
	}
}

func (m *HomeModel) cmdCleanup() tea.Cmd {
	ctx := m.ctx
	transfer := m.transfer

	return func() tea.Msg {
		return cleanupDoneMsg{page: PageHome, err: transfer.Cleanup(ctx)}
	}
}
