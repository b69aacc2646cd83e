package tui

import (
	"github.com/MKhiriev/stegasaur/internal/workflow"
	"github.com/MKhiriev/stegasaur/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Page names.
const (
	PageHome         = "home"
	PageEncode       = "encode"
	PageDecode       = "decode"
	PageEncodeResult = "encode-result"
	PageDecodeResult = "decode-result"
)

// NavigateTo switches the active page. State is handed to the target page
// once and is not kept anywhere else. Replace leaves the current page out
// of the history.
type NavigateTo struct {
	Page    string
	State   *models.WorkflowState
	Replace bool
}

// Back returns to the previous page in the history.
type Back struct{}

// targeted messages are delivered to the page that issued them even when
// it is no longer active.
type targeted interface {
	targetPage() string
}

type transferDoneMsg struct {
	page     string
	ticket   workflow.Ticket
	artifact models.ResolvedArtifact
	err      error
}

func (m transferDoneMsg) targetPage() string { return m.page }

type savedMsg struct {
	page      string
	objectURL string
	path      string
	err       error
}

func (m savedMsg) targetPage() string { return m.page }

type healthMsg struct {
	page   string
	health models.ServiceHealth
	err    error
}

func (m healthMsg) targetPage() string { return m.page }

type cleanupDoneMsg struct {
	page string
	err  error
}

func (m cleanupDoneMsg) targetPage() string { return m.page }

func navigateCmd(nav NavigateTo) tea.Cmd {
	return func() tea.Msg { return nav }
}

func goBack() tea.Msg { return Back{} }
