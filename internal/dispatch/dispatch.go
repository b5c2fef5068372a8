// Package dispatch routes decoded requests to their command handler.
package dispatch

import (
	"github.com/visform/jtbridge/internal/protocol"
	"github.com/visform/jtbridge/internal/version"
)

// InvalidCommandMessage is the fixed reply for unknown or undecodable
// commands.
const InvalidCommandMessage = "Invalid command."

// Command names accepted over the wire.
const (
	CommandGetVersion = "getVersion"
	CommandConvert    = "convertAjtToJt"
)

// Converter is the narrow conversion boundary the dispatcher calls.
type Converter interface {
	Convert(args map[string]string) ([]byte, error)
}

// Dispatcher maps a request's command name to its handler.
type Dispatcher struct {
	converter Converter
}

func New(converter Converter) *Dispatcher {
	return &Dispatcher{converter: converter}
}

// Dispatch resolves one request into its response. Dispatch itself never
// fails: every handler error becomes an Error-status response correlated to
// this request only.
func (d *Dispatcher) Dispatch(req protocol.Request) protocol.Response {
	switch req.Command.Name {
	case CommandGetVersion:
		return protocol.OkResponse(req.ID, []byte(version.Version))
	case CommandConvert:
		payload, err := d.converter.Convert(req.Command.Arguments)
		if err != nil {
			return protocol.ErrorResponse(req.ID, err.Error())
		}
		return protocol.OkResponse(req.ID, payload)
	default:
		return protocol.ErrorResponse(req.ID, InvalidCommandMessage)
	}
}
