package protocol

import "encoding/binary"

// headerSize covers the correlation id and the status byte.
const headerSize = 5

// EncodeResponse serializes one response frame:
//
//	offset 0..3  correlation id, int32 little-endian
//	offset 4     status (0=Ok, 1=Error)
//	offset 5..   payload bytes, verbatim
//
// The wire byte order is fixed regardless of host native order. String
// payloads are UTF-8 without a byte-order mark; binary payloads are copied
// untouched.
func EncodeResponse(resp Response) []byte {
	buf := make([]byte, headerSize+len(resp.Payload))
	binary.LittleEndian.PutUint32(buf[0:4], uint32(resp.CorrelationID))
	buf[4] = byte(resp.Status)
	copy(buf[headerSize:], resp.Payload)
	return buf
}

// OkResponse builds a success frame for the given request id.
func OkResponse(id int32, payload []byte) Response {
	return Response{CorrelationID: id, Status: StatusOk, Payload: payload}
}

// ErrorResponse builds a failure frame carrying the message as UTF-8 text.
func ErrorResponse(id int32, message string) Response {
	return Response{CorrelationID: id, Status: StatusError, Payload: []byte(message)}
}
