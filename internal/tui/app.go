package tui

import (
	"github.com/MKhiriev/stegasaur/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Page is a screen managed by [RootModel].
type Page interface {
	tea.Model

	// Enter is called when the page becomes active. state is the payload
	// of the navigation, nil when there is none.
	Enter(state *models.WorkflowState) tea.Cmd

	// Leave is called when the page stops being active. Pages release
	// whatever they own here.
	Leave()
}

// RootModel is a TUI router:
// 1) keeps active page and the history of page names
// 2) handles global Ctrl+C quit and the build info overlay
// 3) handles NavigateTo and Back messages
// 4) delivers targeted messages to their page, everything else to the active page
type RootModel struct {
	pages   map[string]Page
	current string
	history []string

	quitByUser bool
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]Page, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   startPage,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	page, ok := r.pages[r.current]
	if !ok {
		return nil
	}
	return tea.Batch(page.Init(), page.Enter(nil))
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkey for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			if page, ok := r.pages[r.current]; ok {
				page.Leave()
			}
			return r, tea.Quit
		case "v":
			if r.current == PageHome {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch m := msg.(type) {
	case NavigateTo:
		return r.navigate(m)
	case Back:
		return r.back()
	case targeted:
		return r.deliver(m.targetPage(), msg)
	}

	return r.deliver(r.current, msg)
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	page, ok := r.pages[r.current]
	if !ok {
		return renderPage("stegaSaur", "", "")
	}
	return page.View()
}

// Current returns the name of the active page.
func (r RootModel) Current() string {
	return r.current
}

// History returns the page names Back would return to, oldest first.
func (r RootModel) History() []string {
	return append([]string(nil), r.history...)
}

// QuitByUser reports whether the program ended on ctrl+c.
func (r RootModel) QuitByUser() bool {
	return r.quitByUser
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, exists := r.pages[nav.Page]
	if !exists {
		return r, nil
	}

	if page, ok := r.pages[r.current]; ok {
		page.Leave()
	}

	switch {
	case nav.Page == PageHome:
		r.history = nil
	case !nav.Replace && r.current != "" && r.current != nav.Page:
		r.history = append(r.history, r.current)
	}

	r.showBuildInfo = false
	r.current = nav.Page

	return r, next.Enter(nav.State)
}

func (r RootModel) back() (tea.Model, tea.Cmd) {
	if len(r.history) == 0 {
		return r, nil
	}

	prev := r.history[len(r.history)-1]
	r.history = r.history[:len(r.history)-1]

	if page, ok := r.pages[r.current]; ok {
		page.Leave()
	}
	r.current = prev

	return r, r.pages[prev].Enter(nil)
}

func (r RootModel) deliver(name string, msg tea.Msg) (tea.Model, tea.Cmd) {
	page, ok := r.pages[name]
	if !ok {
		return r, nil
	}

	updated, cmd := page.Update(msg)
	if p, ok := updated.(Page); ok {
		r.pages[name] = p
	}
	return r, cmd
}
