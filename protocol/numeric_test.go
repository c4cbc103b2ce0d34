package protocol

import (
	"strings"
	"testing"
)

func TestEncodeFPE2(t *testing.T) {
	tests := []struct {
		name    string
		val     uint
		want    [2]byte
		wantErr bool
	}{
		// byte0 = val >> 6, byte1 = (val << 2) XOR (byte0 << 8)
		{name: "zero", val: 0, want: [2]byte{0x00, 0x00}},
		{name: "1000 rpm", val: 1000, want: [2]byte{0x0F, 0xA0}},
		{name: "1200 rpm", val: 1200, want: [2]byte{0x12, 0xC0}},
		{name: "2000 rpm", val: 2000, want: [2]byte{0x1F, 0x40}},
		{name: "maximum", val: MaxFPE2, want: [2]byte{0xFF, 0xFC}},
		{name: "out of range", val: MaxFPE2 + 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf [2]byte
			err := EncodeFPE2(tt.val, buf[:])

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for value %d, got nil", tt.val)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if buf != tt.want {
				t.Errorf("EncodeFPE2(%d) = [0x%02X 0x%02X], want [0x%02X 0x%02X]",
					tt.val, buf[0], buf[1], tt.want[0], tt.want[1])
			}
		})
	}
}

func TestEncodeFPE2ShortBuffer(t *testing.T) {
	err := EncodeFPE2(100, make([]byte, 1))
	if err == nil {
		t.Fatal("expected error for 1-byte buffer, got nil")
	}
	if !strings.Contains(err.Error(), "at least 2 bytes") {
		t.Errorf("error = %v, want buffer size complaint", err)
	}
}

func TestDecodeFPE2(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want uint
	}{
		// byte0 lands in bits 6.., byte1 in bits 2..
		{name: "zero", data: []byte{0x00, 0x00}, want: 0},
		{name: "integer byte only", data: []byte{0x0F, 0x00}, want: 960},
		{name: "both bytes", data: []byte{0x1F, 0x40}, want: 2240},
		{name: "all bits", data: []byte{0xFF, 0xFF}, want: 0xFF<<6 + 0xFF<<2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeFPE2(tt.data)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DecodeFPE2(% 02X) = %d, want %d", tt.data, got, tt.want)
			}
		})
	}

	if _, err := DecodeFPE2([]byte{0x01}); err == nil {
		t.Error("expected error for short payload, got nil")
	}
}

func TestDecodeSP78(t *testing.T) {
	tests := []struct {
		name        string
		data        []byte
		want        float64
		wantPrecise float64
	}{
		{name: "zero", data: []byte{0x00, 0x00}, want: 0, wantPrecise: 0},
		{name: "whole degrees", data: []byte{0x3A, 0x00}, want: 58, wantPrecise: 58},
		// legacy decode drops the fractional byte; precise keeps it
		{name: "fractional part", data: []byte{0x3A, 0x80}, want: 58, wantPrecise: 58.5},
		{name: "quarter degree", data: []byte{0x28, 0x40}, want: 40, wantPrecise: 40.25},
		// legacy decode treats the integer byte as unsigned; precise is signed
		{name: "negative", data: []byte{0xFF, 0x00}, want: 255, wantPrecise: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeSP78(tt.data)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DecodeSP78(% 02X) = %v, want %v", tt.data, got, tt.want)
			}

			precise, err := DecodeSP78Precise(tt.data)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if precise != tt.wantPrecise {
				t.Errorf("DecodeSP78Precise(% 02X) = %v, want %v", tt.data, precise, tt.wantPrecise)
			}
		})
	}

	if _, err := DecodeSP78(nil); err == nil {
		t.Error("expected error for nil payload, got nil")
	}
	if _, err := DecodeSP78Precise([]byte{0x01}); err == nil {
		t.Error("expected error for short payload, got nil")
	}
}

func TestDecodeUint(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		data    []byte
		want    uint32
		wantErr bool
	}{
		{name: "ui8", tag: TypeUInt8, data: []byte{0x02}, want: 2},
		{name: "flag", tag: TypeFlag, data: []byte{0x01}, want: 1},
		{name: "ui16 big endian", tag: TypeUInt16, data: []byte{0x01, 0x02}, want: 0x0102},
		{name: "ui32 big endian", tag: TypeUInt32, data: []byte{0x01, 0x02, 0x03, 0x04}, want: 0x01020304},
		{name: "ui16 short payload", tag: TypeUInt16, data: []byte{0x01}, wantErr: true},
		{name: "ui32 short payload", tag: TypeUInt32, data: []byte{0x01, 0x02}, wantErr: true},
		{name: "not an integer tag", tag: TypeSP78, data: []byte{0x01, 0x02}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeUint(tt.tag, tt.data)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got value %d", got)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DecodeUint(%q, % 02X) = %d, want %d", tt.tag, tt.data, got, tt.want)
			}
		})
	}
}
