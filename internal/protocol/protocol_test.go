package protocol

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecodeRequestValid(t *testing.T) {
	data := []byte(`{"id":7,"command":{"name":"convertAjtToJt","arguments":{"ajt2jt":"/usr/bin/ajt2jt","ajtSource":"HEADER"}}}`)
	req, err := DecodeRequest(data)
	if err != nil {
		t.Fatalf("decode request: %v", err)
	}
	if req.ID != 7 {
		t.Fatalf("unexpected id: %d", req.ID)
	}
	if req.Command.Name != "convertAjtToJt" {
		t.Fatalf("unexpected command: %q", req.Command.Name)
	}
	if req.Command.Arguments["ajtSource"] != "HEADER" {
		t.Fatalf("unexpected arguments: %+v", req.Command.Arguments)
	}
}

func TestDecodeRequestMalformedJSON(t *testing.T) {
	_, err := DecodeRequest([]byte(`{"id":`))
	if !errors.Is(err, ErrMalformedRequest) {
		t.Fatalf("expected ErrMalformedRequest, got %v", err)
	}
}

func TestDecodeRequestMissingCommandName(t *testing.T) {
	for _, data := range []string{
		`{"id":3}`,
		`{"id":3,"command":{}}`,
		`{"id":3,"command":{"name":"  "}}`,
	} {
		req, err := DecodeRequest([]byte(data))
		if !errors.Is(err, ErrMissingCommand) {
			t.Fatalf("input %s: expected ErrMissingCommand, got %v", data, err)
		}
		if req.ID != 3 {
			t.Fatalf("input %s: recovered id should survive decode failure, got %d", data, req.ID)
		}
	}
}

func TestEncodeResponseWireLayout(t *testing.T) {
	frame := EncodeResponse(OkResponse(1, []byte("0.1.0")))
	want := append([]byte{0x01, 0x00, 0x00, 0x00, 0x00}, []byte("0.1.0")...)
	if !bytes.Equal(frame, want) {
		t.Fatalf("frame mismatch:\n got=% x\nwant=% x", frame, want)
	}
}

func TestEncodeResponseErrorStatusByte(t *testing.T) {
	frame := EncodeResponse(ErrorResponse(2, "Invalid command."))
	if frame[4] != 1 {
		t.Fatalf("expected error status byte, got %d", frame[4])
	}
	if string(frame[5:]) != "Invalid command." {
		t.Fatalf("unexpected payload: %q", string(frame[5:]))
	}
}

func TestEncodeResponseCorrelationIDLittleEndian(t *testing.T) {
	frame := EncodeResponse(OkResponse(0x01020304, nil))
	want := []byte{0x04, 0x03, 0x02, 0x01, 0x00}
	if !bytes.Equal(frame, want) {
		t.Fatalf("correlation id bytes mismatch:\n got=% x\nwant=% x", frame, want)
	}
}

func TestEncodeResponseNegativeCorrelationID(t *testing.T) {
	frame := EncodeResponse(OkResponse(-1, nil))
	want := []byte{0xff, 0xff, 0xff, 0xff, 0x00}
	if !bytes.Equal(frame, want) {
		t.Fatalf("negative id bytes mismatch:\n got=% x\nwant=% x", frame, want)
	}
}

func TestEncodeResponseBinaryPayloadVerbatim(t *testing.T) {
	payload := []byte{0x00, 0xfe, 0x4a, 0x54, 0x00}
	frame := EncodeResponse(OkResponse(9, payload))
	if !bytes.Equal(frame[5:], payload) {
		t.Fatalf("binary payload not copied verbatim: % x", frame[5:])
	}
}
