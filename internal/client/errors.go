package client

import "errors"

var (
	ErrNotATerminal   = errors.New("interactive mode requires a terminal")
	ErrUnknownRunMode = errors.New("unknown run mode")
)
