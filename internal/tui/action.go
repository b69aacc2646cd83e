// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/stegasaur/internal/service"
	"github.com/MKhiriev/stegasaur/internal/validators"
	"github.com/MKhiriev/stegasaur/internal/workflow"
	"github.com/MKhiriev/stegasaur/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ActionModel is the encode or decode screen. Each role of the operation
// gets a path input; enter accepts the focused path, ctrl+s submits.
// On success it navigates to the result page with the artifact as state.
type ActionModel struct {
	ctx       context.Context
	transfer  service.TransferService
	downloads service.DownloadService

	page       string
	resultPage string
	title      string

	action  *workflow.Action
	roles   []models.Role
	inputs  []textinput.Model
	focus   int
	spinner spinner.Model
}

// NewEncodeModel creates the encode screen with carrier and secret inputs.
func NewEncodeModel(ctx context.Context, svcs *service.ClientServices, selector validators.FileSelector) *ActionModel {
	return newActionModel(ctx, svcs, selector, models.OperationEncode, PageEncode, PageEncodeResult, "ENCODE")
}

// NewDecodeModel creates the decode screen with a single encoded input.
func NewDecodeModel(ctx context.Context, svcs *service.ClientServices, selector validators.FileSelector) *ActionModel {
	return newActionModel(ctx, svcs, selector, models.OperationDecode, PageDecode, PageDecodeResult, "DECODE")
}

func newActionModel(
	ctx context.Context,
	svcs *service.ClientServices,
	selector validators.FileSelector,
	op models.Operation,
	page, resultPage, title string,
) *ActionModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	roles := op.Roles()
	inputs := make([]textinput.Model, len(roles))
	for i, role := range roles {
		in := textinput.New()
		in.Placeholder = placeholderFor(role)
		in.CharLimit = 4096
		in.Width = 48
		inputs[i] = in
	}

	m := &ActionModel{
		ctx:        ctx,
		transfer:   svcs.TransferService,
		downloads:  svcs.DownloadService,
		page:       page,
		resultPage: resultPage,
		title:      title,
		action:     workflow.NewAction(op, selector),
		roles:      roles,
		inputs:     inputs,
		spinner:    s,
	}
	m.resetInputs()

	return m
}

func (m *ActionModel) Init() tea.Cmd {
	return textinput.Blink
}

// Enter starts from a clean selection every time.
func (m *ActionModel) Enter(*models.WorkflowState) tea.Cmd {
	m.action.Abandon()
	m.resetInputs()
	return textinput.Blink
}

// Leave drops the selection. A transfer still in flight is not aborted;
// its result is discarded when it arrives.
func (m *ActionModel) Leave() {
	m.action.Abandon()
}

// Action exposes the workflow state of the screen.
func (m *ActionModel) Action() *workflow.Action {
	return m.action
}

func (m *ActionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case transferDoneMsg:
		return m, m.handleTransferDone(msg)

	case spinner.TickMsg:
		if !m.action.Submitting() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, goBack
		case key.Matches(msg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.selectFocused() == nil && m.focus < len(m.inputs)-1 {
				m.focusNext()
			}
			return m, nil
		case key.Matches(msg, keys.submit):
			return m, m.submit()
		}
	}

	if m.action.Submitting() {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *ActionModel) View() string {
	var b strings.Builder

	for i, role := range m.roles {
		b.WriteString(labelStyle.Render(roleLabel(role)))
		b.WriteString("│ [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")

		b.WriteString(labelStyle.Render(""))
		b.WriteString("│  ")
		if f, ok := m.action.Selected(role); ok {
			b.WriteString(okStyle.Render("✓ " + fitText(fileLabel(f.Name, f.Size), 60)))
		} else {
			b.WriteString(helpStyle.Render("no file selected"))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.action.Submitting() {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(progressLabel(m.action.Operation()))
	} else {
		b.WriteString("[")
		b.WriteString(buttonLabel(m.action.Operation()))
		b.WriteString("]")
	}
	b.WriteString("\n")

	if msg := m.action.Message(); msg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(msg))
		b.WriteString("\n")
	}

	return renderPage(m.title, strings.TrimRight(b.String(), "\n"),
		"esc: back │ tab: next field │ enter: select file │ ctrl+s: "+strings.ToLower(buttonLabel(m.action.Operation())))
}

// submit selects every typed path that is not yet accepted and starts
// the transfer.
func (m *ActionModel) submit() tea.Cmd {
	if m.action.Submitting() {
		return nil
	}

	for i := range m.inputs {
		path := strings.TrimSpace(m.inputs[i].Value())
		if f, ok := m.action.Selected(m.roles[i]); ok && f.Path == path {
			continue
		}
		if err := m.action.Select(m.roles[i], path); err != nil {
			return nil
		}
	}

	req, ticket, err := m.action.Begin()
	if err != nil {
		return nil
	}

	return tea.Batch(m.cmdSubmit(req, ticket), m.spinner.Tick)
}

func (m *ActionModel) handleTransferDone(msg transferDoneMsg) tea.Cmd {
	if !m.action.Finish(msg.ticket, msg.err) {
		// Result of a request issued before the screen was left.
		if msg.err == nil {
			m.downloads.Revoke(msg.artifact.ObjectURL)
		}
		return nil
	}
	if msg.err != nil {
		return nil
	}

	state := msg.artifact.State()
	return navigateCmd(NavigateTo{Page: m.resultPage, State: &state})
}

func (m *ActionModel) cmdSubmit(req models.TransferRequest, ticket workflow.Ticket) tea.Cmd {
	ctx := m.ctx
	transfer := m.transfer
	page := m.page

	return func() tea.Msg {
		artifact, err := transfer.Submit(ctx, req)
		return transferDoneMsg{page: page, ticket: ticket, artifact: artifact, err: err}
	}
}

func (m *ActionModel) selectFocused() error {
	return m.action.Select(m.roles[m.focus], m.inputs[m.focus].Value())
}

func (m *ActionModel) resetInputs() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	if len(m.inputs) > 0 {
		m.inputs[0].Focus()
	}
}

func (m *ActionModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *ActionModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func roleLabel(role models.Role) string {
	switch role {
	case models.RoleCarrier:
		return "Carrier"
	case models.RoleSecret:
		return "Secret"
	case models.RoleEncoded:
		return "Encoded"
	default:
		return role.String()
	}
}

func placeholderFor(role models.Role) string {
	if role.Kind() == models.KindPNGOnly {
		return "path/to/image.png"
	}
	return "path/to/any/file"
}

func buttonLabel(op models.Operation) string {
	if op == models.OperationEncode {
		return "Encode"
	}
	return "Decode"
}

func progressLabel(op models.Operation) string {
	if op == models.OperationEncode {
		return "Encoding..."
	}
	return "Decoding..."
}
