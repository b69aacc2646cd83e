package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/stegasaur/internal/app"
	"github.com/MKhiriev/stegasaur/internal/service"
	"github.com/MKhiriev/stegasaur/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ResultModel shows a resolved artifact and saves it on request. It owns
// the object URL of its state and revokes it when left.
//
// Entered without a state that carries an object URL it renders nothing
// and redirects to the home page.
type ResultModel struct {
	ctx       context.Context
	downloads service.DownloadService

	page string
	op   models.Operation

	state     *models.WorkflowState
	saving    bool
	savedPath string
	status    string
	errMsg    string
}

func NewEncodeResultModel(ctx context.Context, downloads service.DownloadService) *ResultModel {
	return &ResultModel{ctx: ctx, downloads: downloads, page: PageEncodeResult, op: models.OperationEncode}
}

func NewDecodeResultModel(ctx context.Context, downloads service.DownloadService) *ResultModel {
	return &ResultModel{ctx: ctx, downloads: downloads, page: PageDecodeResult, op: models.OperationDecode}
}

func (m *ResultModel) Init() tea.Cmd {
	return nil
}

func (m *ResultModel) Enter(state *models.WorkflowState) tea.Cmd {
	m.reset()
	if !state.Valid() {
		return navigateCmd(NavigateTo{Page: PageHome, Replace: true})
	}

	snapshot := *state
	m.state = &snapshot
	return nil
}

func (m *ResultModel) Leave() {
	if m.state != nil {
		m.downloads.Revoke(m.state.ObjectURL)
	}
	m.reset()
}

// State returns the artifact currently shown, nil when there is none.
func (m *ResultModel) State() *models.WorkflowState {
	return m.state
}

func (m *ResultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == nil {
		return m, nil
	}

	switch msg := msg.(type) {
	case savedMsg:
		if msg.objectURL != m.state.ObjectURL {
			return m, nil
		}
		m.saving = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Save failed: %v", msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.savedPath = msg.path
		m.status = app.MsgSaved + " " + msg.path
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, goBack
		case key.Matches(msg, keys.home):
			return m, navigateCmd(NavigateTo{Page: PageHome})
		case key.Matches(msg, keys.save):
			if m.saving {
				return m, nil
			}
			m.saving = true
			m.errMsg = ""
			return m, m.cmdSave(m.state.Artifact())
		case key.Matches(msg, keys.copy):
			if m.savedPath == "" {
				m.status = app.MsgNothingSaved
				return m, nil
			}
			if err := clipboard.WriteAll(m.savedPath); err != nil {
				m.errMsg = fmt.Sprintf("Copy failed: %v", err)
				return m, nil
			}
			m.status = app.MsgCopied
		}
	}

	return m, nil
}

func (m *ResultModel) View() string {
	if m.state == nil {
		return ""
	}

	var b strings.Builder
	title := "ENCODED FILE"
	if m.op == models.OperationDecode {
		title = "DECODED FILES"
		b.WriteString(labelStyle.Render("Carrier"))
		b.WriteString("│ ")
		b.WriteString(fitText(valueOrNA(m.state.AuxiliaryName), 60))
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Secret"))
		b.WriteString("│ ")
	} else {
		b.WriteString(labelStyle.Render("File"))
		b.WriteString("│ ")
	}
	b.WriteString(fitText(fileLabel(m.state.FileName, m.state.Size), 60))
	b.WriteString("\n\n")

	if m.saving {
		b.WriteString("[Saving...]\n")
	} else {
		b.WriteString("[Save]\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"s/enter: save │ c: copy saved path │ h: home │ esc: back")
}

func (m *ResultModel) cmdSave(artifact models.ResolvedArtifact) tea.Cmd {
	ctx := m.ctx
	downloads := m.downloads
	page := m.page

	return func() tea.Msg {
		path, err := downloads.Save(ctx, artifact)
		return savedMsg{page: page, objectURL: artifact.ObjectURL, path: path, err: err}
	}
}

func (m *ResultModel) reset() {
	m.state = nil
	m.saving = false
	m.savedPath = ""
	m.status = ""
	m.errMsg = ""
}
