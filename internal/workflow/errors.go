package workflow

import "errors"

var (
	ErrTransferInFlight = errors.New("transfer already in flight")
	ErrMissingSelection = errors.New("missing file selection")
)
