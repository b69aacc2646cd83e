package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNoFileSelected  = errors.New("no file selected")
	ErrWrongKind       = errors.New("wrong kind")
	ErrFileNotFound    = errors.New("file not found")
	ErrNotRegularFile  = errors.New("not a regular file")
	ErrMissingRoleFile = errors.New("required file is missing")
)
