package protocol

import (
	"bytes"
	"testing"
)

func TestParamStructMarshalLayout(t *testing.T) {
	p := &ParamStruct{
		Key: EncodeKey("FNum"),
		KeyInfo: KeyInfo{
			DataSize:       2,
			DataType:       EncodeKey(TypeFPE2),
			DataAttributes: 0x01,
		},
		Result: ResultSuccess,
		Data8:  OpGetKeyInfo,
		Data32: 0xAABBCCDD,
	}
	p.Bytes[0] = 0x11
	p.Bytes[31] = 0x22

	buf := make([]byte, ParamStructSize)
	if err := p.Marshal(buf); err != nil {
		t.Fatalf("marshal: %v", err)
	}

	// key at offset 0, little-endian in memory
	if got := buf[0:4]; !bytes.Equal(got, []byte{0x6D, 0x75, 0x4E, 0x46}) {
		t.Errorf("key bytes = % 02X, want 6D 75 4E 46", got)
	}

	// keyInfo at offset 28: dataSize(4), dataType(4), attributes(1)
	if got := buf[28:32]; !bytes.Equal(got, []byte{0x02, 0x00, 0x00, 0x00}) {
		t.Errorf("dataSize bytes = % 02X, want 02 00 00 00", got)
	}
	if got := buf[32:36]; !bytes.Equal(got, []byte{0x32, 0x65, 0x70, 0x66}) {
		t.Errorf("dataType bytes = % 02X, want 32 65 70 66", got)
	}
	if buf[36] != 0x01 {
		t.Errorf("dataAttributes = 0x%02X, want 0x01", buf[36])
	}

	// scalar tail: result(40), status(41), data8(42), data32(44)
	if buf[40] != ResultSuccess {
		t.Errorf("result = 0x%02X, want 0x%02X", buf[40], ResultSuccess)
	}
	if buf[42] != OpGetKeyInfo {
		t.Errorf("data8 = 0x%02X, want 0x%02X", buf[42], OpGetKeyInfo)
	}
	if got := buf[44:48]; !bytes.Equal(got, []byte{0xDD, 0xCC, 0xBB, 0xAA}) {
		t.Errorf("data32 bytes = % 02X, want DD CC BB AA", got)
	}

	// payload buffer fills the rest of the struct
	if buf[48] != 0x11 || buf[79] != 0x22 {
		t.Errorf("payload bytes = 0x%02X..0x%02X, want 0x11..0x22", buf[48], buf[79])
	}
}

func TestParamStructRoundTrip(t *testing.T) {
	in := &ParamStruct{
		Key:        EncodeKey("F0Mn"),
		Vers:       Version{Major: 1, Minor: 2, Build: 3, Release: 0x0405},
		PLimitData: PLimitData{Version: 6, Length: 16, CPUPLimit: 7, GPUPLimit: 8, MemPLimit: 9},
		KeyInfo:    KeyInfo{DataSize: 2, DataType: EncodeKey(TypeFPE2), DataAttributes: 0x80},
		Result:     ResultKeyNotFound,
		Status:     0x05,
		Data8:      OpWriteKey,
		Data32:     0x12345678,
	}
	copy(in.Bytes[:], []byte{0x12, 0xC0})

	buf := make([]byte, ParamStructSize)
	if err := in.Marshal(buf); err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out ParamStruct
	if err := out.Unmarshal(buf); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if out != *in {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", out, *in)
	}
}

func TestParamStructMarshalBadBuffer(t *testing.T) {
	var p ParamStruct
	if err := p.Marshal(make([]byte, ParamStructSize-1)); err == nil {
		t.Error("expected error for short marshal buffer, got nil")
	}
	if err := p.Unmarshal(make([]byte, ParamStructSize+1)); err == nil {
		t.Error("expected error for long unmarshal buffer, got nil")
	}
}

func TestNewKeyInfoRequest(t *testing.T) {
	req := NewKeyInfoRequest(EncodeKey("TC0D"))

	if req.Key != EncodeKey("TC0D") {
		t.Errorf("key = 0x%08X, want 0x%08X", req.Key, EncodeKey("TC0D"))
	}
	if req.Data8 != OpGetKeyInfo {
		t.Errorf("opcode = 0x%02X, want 0x%02X", req.Data8, OpGetKeyInfo)
	}
	if req.KeyInfo.DataSize != 0 {
		t.Errorf("dataSize = %d, want 0 on a metadata query", req.KeyInfo.DataSize)
	}
}

func TestNewReadRequest(t *testing.T) {
	req, err := NewReadRequest(EncodeKey("F0Ac"), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Data8 != OpReadKey {
		t.Errorf("opcode = 0x%02X, want 0x%02X", req.Data8, OpReadKey)
	}
	if req.KeyInfo.DataSize != 2 {
		t.Errorf("dataSize = %d, want 2", req.KeyInfo.DataSize)
	}

	if _, err := NewReadRequest(EncodeKey("F0Ac"), MaxPayload+1); err == nil {
		t.Error("expected error for oversized read, got nil")
	}
}

func TestNewWriteRequest(t *testing.T) {
	payload := []byte{0x12, 0xC0}
	req, err := NewWriteRequest(EncodeKey("F0Mn"), payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Data8 != OpWriteKey {
		t.Errorf("opcode = 0x%02X, want 0x%02X", req.Data8, OpWriteKey)
	}
	if req.KeyInfo.DataSize != 2 {
		t.Errorf("dataSize = %d, want 2", req.KeyInfo.DataSize)
	}
	if !bytes.Equal(req.Bytes[:2], payload) {
		t.Errorf("payload = % 02X, want % 02X", req.Bytes[:2], payload)
	}

	if _, err := NewWriteRequest(EncodeKey("F0Mn"), nil); err == nil {
		t.Error("expected error for empty payload, got nil")
	}
	if _, err := NewWriteRequest(EncodeKey("F0Mn"), make([]byte, MaxPayload+1)); err == nil {
		t.Error("expected error for oversized payload, got nil")
	}
}

func TestKeyInfoTag(t *testing.T) {
	ki := KeyInfo{DataType: EncodeKey(TypeSP78)}
	if got := ki.Tag(); got != TypeSP78 {
		t.Errorf("Tag() = %q, want %q", got, TypeSP78)
	}
}
