package smc

import (
	"context"
	"fmt"

	"github.com/beltex/go-smc/protocol"
)

// MaxFanIndex is the largest addressable fan slot. Fan keys embed the index
// as a single character ("F0Ac".."F9Ac"), so the key stays 4 characters.
const MaxFanIndex = 9

// ProbeKey reports whether a key exists on this machine's SMC. Useful for
// detecting optional sensors and fan slots before reading them.
//
// Any failure, including an invalid key string, reads as "not present".
func (c *Client) ProbeKey(ctx context.Context, key string) bool {
	_, err := c.Read(ctx, key)
	return err == nil
}

// Temperature reads a temperature sensor key and returns its value in the
// requested unit.
//
// The key must carry 2 bytes of sp78 data; anything else is a
// ShapeMismatchError. By default the fractional byte is dropped;
// WithPreciseSP78 enables full resolution.
func (c *Client) Temperature(ctx context.Context, key string, unit TemperatureUnit) (float64, error) {
	r, err := c.Read(ctx, key)
	if err != nil {
		return 0, err
	}

	if err := requireShape(key, r, 2, protocol.TypeSP78); err != nil {
		return 0, err
	}

	decode := protocol.DecodeSP78
	if c.config.PreciseSP78 {
		decode = protocol.DecodeSP78Precise
	}

	celsius, err := decode(r.Data)
	if err != nil {
		return 0, err
	}

	return ConvertTemperature(celsius, unit), nil
}

// FanCount returns the number of fans on this machine.
func (c *Client) FanCount(ctx context.Context) (int, error) {
	r, err := c.Read(ctx, protocol.KeyFanCount)
	if err != nil {
		return 0, err
	}

	if err := requireShape(protocol.KeyFanCount, r, 1, protocol.TypeUInt8); err != nil {
		return 0, err
	}

	n, err := protocol.DecodeUint(r.Info.Tag(), r.Data)
	if err != nil {
		return 0, err
	}

	return int(n), nil
}

// FanRPM returns the current speed of a fan in revolutions per minute.
func (c *Client) FanRPM(ctx context.Context, fan uint) (uint, error) {
	key, err := fanKey(fan, "Ac")
	if err != nil {
		return 0, err
	}

	r, err := c.Read(ctx, key)
	if err != nil {
		return 0, err
	}

	if err := requireShape(key, r, 2, protocol.TypeFPE2); err != nil {
		return 0, err
	}

	return protocol.DecodeFPE2(r.Data)
}

// SetFanMinRPM sets the minimum speed of a fan in revolutions per minute.
//
// WARNING: this changes how the machine cools itself. Root privileges are
// required; without them the transport fails with a not-privileged code.
func (c *Client) SetFanMinRPM(ctx context.Context, fan uint, rpm uint) error {
	key, err := fanKey(fan, "Mn")
	if err != nil {
		return err
	}

	var payload [2]byte
	if err := protocol.EncodeFPE2(rpm, payload[:]); err != nil {
		return err
	}

	return c.Write(ctx, key, payload[:])
}

// fanKey builds the per-fan key for a suffix like "Ac" (actual RPM) or
// "Mn" (minimum RPM).
func fanKey(fan uint, suffix string) (string, error) {
	if fan > MaxFanIndex {
		return "", fmt.Errorf("fan index %d out of range 0..%d", fan, MaxFanIndex)
	}

	return fmt.Sprintf("F%d%s", fan, suffix), nil
}

// requireShape checks a reading against the size and type an accessor
// expects before interpreting its bytes.
func requireShape(key string, r *Reading, size uint32, tag string) error {
	if r.Info.DataSize != size || r.Info.Tag() != tag {
		return &ShapeMismatchError{
			Key:      key,
			Size:     r.Info.DataSize,
			Tag:      r.Info.Tag(),
			WantSize: size,
			WantTag:  tag,
		}
	}

	return nil
}
