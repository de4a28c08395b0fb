package domain

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrPayloadTooLarge = errors.New("payload too large")
	ErrStorage         = errors.New("object store failure")
	ErrUnreadableBody  = errors.New("failed to read upload")
)
