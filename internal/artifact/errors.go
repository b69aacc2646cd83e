package artifact

import "errors"

var (
	ErrObjectURLNotFound = errors.New("object url not found")
	ErrObjectURLRevoked  = errors.New("object url revoked")
)
