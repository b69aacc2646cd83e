package workflow

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/stegasaur/internal/app"
	"github.com/MKhiriev/stegasaur/internal/validators"
	"github.com/MKhiriev/stegasaur/models"
)

// Phase is the position of an [Action] in its lifecycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFilesValid
	PhaseSubmitting
	PhaseSucceeded
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseFilesValid:
		return "files-valid"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSucceeded:
		return "succeeded"
	default:
		return "unknown"
	}
}

// Ticket identifies one submission of an [Action].
type Ticket uint64

// Action is the selection and submission state of one action screen.
// It is not safe for concurrent use; the UI loop owns it.
type Action struct {
	op       models.Operation
	selector validators.FileSelector

	files   map[models.Role]models.SelectedFile
	phase   Phase
	message string
	ticket  Ticket
}

func NewAction(op models.Operation, selector validators.FileSelector) *Action {
	return &Action{
		op:       op,
		selector: selector,
		files:    make(map[models.Role]models.SelectedFile),
	}
}

func (a *Action) Operation() models.Operation { return a.op }

func (a *Action) Phase() Phase { return a.phase }

// Message is the inline error shown on the screen, empty when there is none.
func (a *Action) Message() string { return a.message }

func (a *Action) Submitting() bool { return a.phase == PhaseSubmitting }

// Selected returns the accepted file for role.
func (a *Action) Selected(role models.Role) (models.SelectedFile, bool) {
	f, ok := a.files[role]
	return f, ok
}

// Ready reports whether every role of the operation has a file.
func (a *Action) Ready() bool {
	for _, role := range a.op.Roles() {
		if _, ok := a.files[role]; !ok {
			return false
		}
	}
	return true
}

// Select offers path for role. An empty path changes nothing. A rejected
// path sets the inline message and keeps the previous selection; an
// accepted one replaces it and clears the message.
func (a *Action) Select(role models.Role, path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	if a.phase == PhaseSubmitting {
		return ErrTransferInFlight
	}

	f, err := a.selector.Select(path, role)
	if err != nil {
		a.message = selectionMessage(role, path, err)
		return err
	}

	a.files[role] = f
	a.message = ""
	a.phase = a.restingPhase()

	return nil
}

// Begin starts a submission. It refuses while one is in flight and, when
// files are missing, sets the inline message and issues nothing.
func (a *Action) Begin() (models.TransferRequest, Ticket, error) {
	if a.phase == PhaseSubmitting {
		return models.TransferRequest{}, 0, ErrTransferInFlight
	}
	if !a.Ready() {
		a.message = missingMessage(a.op)
		return models.TransferRequest{}, 0, ErrMissingSelection
	}

	a.ticket++
	a.phase = PhaseSubmitting
	a.message = ""

	return models.NewTransferRequest(a.op, a.files), a.ticket, nil
}

// Finish records the outcome of the submission identified by ticket and
// reports whether it was current. A failure becomes the inline message
// and the action is actionable again.
func (a *Action) Finish(ticket Ticket, err error) bool {
	if ticket != a.ticket || a.phase != PhaseSubmitting {
		return false
	}

	if err == nil {
		a.phase = PhaseSucceeded
		return true
	}

	var failure *models.TransferFailure
	if errors.As(err, &failure) {
		a.message = failure.Message
	} else {
		a.message = err.Error()
	}
	a.phase = a.restingPhase()

	return true
}

// Abandon drops the selections and invalidates any in-flight ticket.
// It is called when the screen is left.
func (a *Action) Abandon() {
	a.files = make(map[models.Role]models.SelectedFile)
	a.message = ""
	a.phase = PhaseIdle
	a.ticket++
}

func (a *Action) restingPhase() Phase {
	if a.Ready() {
		return PhaseFilesValid
	}
	return PhaseIdle
}

func selectionMessage(role models.Role, path string, err error) string {
	switch {
	case errors.Is(err, validators.ErrWrongKind):
		if role == models.RoleCarrier {
			return app.MsgCarrierMustBePNG
		}
		return app.MsgEncodedMustBePNG
	case errors.Is(err, validators.ErrFileNotFound):
		return fmt.Sprintf("%s: %s", app.MsgFileNotFound, filepath.Base(path))
	case errors.Is(err, validators.ErrNotRegularFile):
		return fmt.Sprintf("%s: %s", app.MsgNotRegularFile, filepath.Base(path))
	default:
		return err.Error()
	}
}

func missingMessage(op models.Operation) string {
	if op == models.OperationEncode {
		return app.MsgSelectBothFiles
	}
	return app.MsgSelectEncodedFile
}
