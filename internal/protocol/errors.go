package protocol

import "errors"

var (
	ErrMalformedRequest = errors.New("protocol: malformed request")
	ErrMissingCommand   = errors.New("protocol: missing command name")
)
