package protocol

import (
	"encoding/binary"
	"fmt"
)

// DecodeFPE2 converts a 2-byte fpe2 payload (unsigned fixed point, 2
// fractional bits) to an unsigned integer.
//
// The first byte lands in bits 6 and up, the second in bits 2 and up. The 2
// fractional bits are dropped, which is the resolution fan RPM is reported
// at anyway.
func DecodeFPE2(data []byte) (uint, error) {
	if len(data) < 2 {
		return 0, fmt.Errorf("fpe2 payload must be at least 2 bytes, got %d", len(data))
	}

	return uint(data[0])<<6 + uint(data[1])<<2, nil
}

// EncodeFPE2 converts an unsigned integer to its 2-byte fpe2 wire form.
//
// The second byte is (val << 2) XOR (byte0 << 8) truncated to a byte. The SMC
// firmware expects this exact bit pattern, so the encoding is reproduced
// bit-for-bit rather than merely value-for-value.
//
// Values above MaxFPE2 are not representable and rejected.
func EncodeFPE2(val uint, data []byte) error {
	if len(data) < 2 {
		return fmt.Errorf("fpe2 buffer must be at least 2 bytes, got %d", len(data))
	}
	if val > MaxFPE2 {
		return fmt.Errorf("value %d exceeds fpe2 maximum %d", val, MaxFPE2)
	}

	data[0] = byte(val >> 6)
	data[1] = byte((val << 2) ^ (uint(data[0]) << 8))

	return nil
}

// MaxFPE2 is the largest integer representable in the fpe2 format:
// 14 integer bits.
const MaxFPE2 = 1<<14 - 1

// DecodeSP78 converts a 2-byte sp78 temperature payload to degrees Celsius,
// keeping only the integer byte.
//
// The fractional byte is discarded and the integer byte treated as unsigned,
// matching what existing SMC consumers expect. DecodeSP78Precise is the
// corrected full-resolution decoder.
func DecodeSP78(data []byte) (float64, error) {
	if len(data) < 2 {
		return 0, fmt.Errorf("sp78 payload must be at least 2 bytes, got %d", len(data))
	}

	return float64(data[0]), nil
}

// DecodeSP78Precise converts a 2-byte sp78 temperature payload to degrees
// Celsius at full resolution: signed integer byte plus fractional byte / 256.
func DecodeSP78Precise(data []byte) (float64, error) {
	if len(data) < 2 {
		return 0, fmt.Errorf("sp78 payload must be at least 2 bytes, got %d", len(data))
	}

	return float64(int8(data[0])) + float64(data[1])/256, nil
}

// DecodeUint converts a ui8/ui16/ui32 payload to an unsigned integer.
// Multi-byte SMC integers are big-endian on the wire.
func DecodeUint(tag string, data []byte) (uint32, error) {
	switch tag {
	case TypeUInt8, TypeFlag:
		if len(data) < 1 {
			return 0, fmt.Errorf("%s payload must be at least 1 byte", tag)
		}
		return uint32(data[0]), nil
	case TypeUInt16:
		if len(data) < 2 {
			return 0, fmt.Errorf("ui16 payload must be at least 2 bytes, got %d", len(data))
		}
		return uint32(binary.BigEndian.Uint16(data)), nil
	case TypeUInt32:
		if len(data) < 4 {
			return 0, fmt.Errorf("ui32 payload must be at least 4 bytes, got %d", len(data))
		}
		return binary.BigEndian.Uint32(data), nil
	default:
		return 0, fmt.Errorf("tag %q is not an unsigned integer type", tag)
	}
}
