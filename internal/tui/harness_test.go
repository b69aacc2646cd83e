package tui

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/stegasaur/internal/adapter"
	"github.com/MKhiriev/stegasaur/internal/artifact"
	"github.com/MKhiriev/stegasaur/internal/config"
	"github.com/MKhiriev/stegasaur/internal/logger"
	"github.com/MKhiriev/stegasaur/internal/service"
	"github.com/MKhiriev/stegasaur/internal/stubserver"
	"github.com/MKhiriev/stegasaur/internal/validators"
	"github.com/MKhiriev/stegasaur/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

// harness drives a router with every page registered against a stub service.
type harness struct {
	t           *testing.T
	srv         *stubserver.Server
	store       *artifact.Store
	downloadDir string
	root        RootModel
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	srv := stubserver.New()
	t.Cleanup(srv.Close)

	stego, err := adapter.NewHTTPStegoAdapter(config.ClientAdapter{HTTPAddress: srv.URL}, logger.Nop())
	require.NoError(t, err)

	store := artifact.NewStore()
	dir := t.TempDir()
	svcs := service.NewClientServices(stego, store, dir, logger.Nop())

	ui := New(svcs, validators.NewFileSelectionValidator(), models.NewAppBuildInfo("1.2.3", "2026-10-17", "abc123"), logger.Nop())

	h := &harness{t: t, srv: srv, store: store, downloadDir: dir, root: ui.Model(context.Background())}
	h.run(h.root.Init())
	return h
}

// run executes cmd and feeds back every message the router reacts to,
// until nothing is left. Cursor blinks and spinner ticks are dropped.
func (h *harness) run(cmd tea.Cmd) {
	h.t.Helper()

	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		require.Less(h.t, steps, 200, "command loop does not settle")

		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}

		switch msg := next().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case NavigateTo, Back, transferDoneMsg, savedMsg, healthMsg, cleanupDoneMsg:
			queue = append(queue, h.update(msg))
		}
	}
}

// send delivers msg and returns the command without running it.
func (h *harness) send(msg tea.Msg) tea.Cmd {
	h.t.Helper()
	return h.update(msg)
}

func (h *harness) update(msg tea.Msg) tea.Cmd {
	model, cmd := h.root.Update(msg)
	h.root = model.(RootModel)
	return cmd
}

func (h *harness) press(k tea.KeyType) {
	h.t.Helper()
	h.run(h.send(tea.KeyMsg{Type: k}))
}

func (h *harness) key(s string) {
	h.t.Helper()
	h.typeText(s)
}

func (h *harness) typeText(s string) {
	h.t.Helper()
	h.run(h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}))
}

func (h *harness) page(name string) Page {
	return h.root.pages[name]
}

func (h *harness) encodePage() *ActionModel {
	return h.page(PageEncode).(*ActionModel)
}

func (h *harness) decodePage() *ActionModel {
	return h.page(PageDecode).(*ActionModel)
}

func (h *harness) resultPage(name string) *ResultModel {
	return h.page(name).(*ResultModel)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// openEncodeReady goes to the encode page and selects both files.
func (h *harness) openEncodeReady(carrier, secret string) {
	h.t.Helper()
	h.key("e")
	h.typeText(carrier)
	h.press(tea.KeyEnter)
	h.typeText(secret)
	h.press(tea.KeyEnter)
}
