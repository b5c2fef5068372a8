package bridge

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/visform/jtbridge/internal/dispatch"
	"github.com/visform/jtbridge/internal/observability"
	"github.com/visform/jtbridge/internal/protocol"
)

// Session drives one client connection's request/response cycle. The read
// loop hands each inbound message to its own goroutine and immediately waits
// for the next one, so requests on a connection are handled concurrently and
// may be answered out of order. Correlation is solely by request id.
type Session struct {
	id         string
	conn       *websocket.Conn
	dispatcher *dispatch.Dispatcher
	logger     zerolog.Logger

	// writeMu serializes whole response frames onto the shared connection.
	writeMu sync.Mutex
}

func newSession(conn *websocket.Conn, dispatcher *dispatch.Dispatcher, logger zerolog.Logger) *Session {
	id := uuid.NewString()
	return &Session{
		id:         id,
		conn:       conn,
		dispatcher: dispatcher,
		logger:     logger.With().Str("session", id).Logger(),
	}
}

// readLoop consumes inbound frames until the connection reports closed. A
// read error is the disconnect signal; the loop exits silently.
func (s *Session) readLoop() {
	defer s.conn.Close()
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			s.logger.Debug().Err(err).Msg("session closed")
			return
		}
		go s.handle(data)
	}
}

// handle decodes, dispatches, and answers one message. Failures become an
// Error response for this request only; the session stays up.
func (s *Session) handle(data []byte) {
	started := time.Now()

	req, err := protocol.DecodeRequest(data)
	command := req.Command.Name
	var resp protocol.Response
	if err != nil {
		command = "invalid"
		resp = protocol.ErrorResponse(req.ID, dispatch.InvalidCommandMessage)
	} else {
		resp = s.dispatcher.Dispatch(req)
	}

	status := "ok"
	if resp.Status == protocol.StatusError {
		status = "error"
	}
	observability.RecordCommand(command, status)

	if err := s.write(resp); err != nil {
		s.logger.Warn().
			Err(err).
			Int32("request", resp.CorrelationID).
			Msg("response write failed")
		return
	}

	s.logger.Info().
		Int32("request", resp.CorrelationID).
		Str("command", command).
		Str("status", status).
		Dur("duration", time.Since(started)).
		Msg("request handled")
}

// write encodes and sends one frame while holding the connection's write
// mutex, so concurrent completions never interleave on the wire.
func (s *Session) write(resp protocol.Response) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.conn.WriteMessage(websocket.BinaryMessage, protocol.EncodeResponse(resp))
}
