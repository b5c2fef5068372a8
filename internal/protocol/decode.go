package protocol

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DecodeRequest parses one inbound text frame into a Request. On failure the
// partially decoded request is returned alongside the error so the caller can
// still correlate its protocol-error reply when an id was recovered.
func DecodeRequest(data []byte) (Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return req, fmt.Errorf("%w: %s", ErrMalformedRequest, err)
	}
	if strings.TrimSpace(req.Command.Name) == "" {
		return req, ErrMissingCommand
	}
	return req, nil
}
