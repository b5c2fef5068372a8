package protocol

// Request is one decoded client command, scoped to a single dispatch.
type Request struct {
	ID      int32   `json:"id"`
	Command Command `json:"command"`
}

// Command carries the operation name and its string arguments.
type Command struct {
	Name      string            `json:"name"`
	Arguments map[string]string `json:"arguments"`
}

// Status is the one-byte outcome flag of a response frame.
type Status byte

const (
	StatusOk    Status = 0
	StatusError Status = 1
)

// Response is one outbound frame. CorrelationID echoes the originating
// request id; Payload is either success data or the UTF-8 error message.
type Response struct {
	CorrelationID int32
	Status        Status
	Payload       []byte
}
