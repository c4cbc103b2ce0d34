package smc

import (
	"context"
	"fmt"

	"github.com/beltex/go-smc/protocol"
)

// Transport performs one privileged struct-exchange call against the SMC.
// iokit.Conn is the production implementation; tests substitute fakes.
//
// A returned error means the call layer itself failed. A non-nil output with
// a non-zero Result field means the SMC rejected the request; Transport
// implementations must not collapse the two.
type Transport interface {
	Exchange(in *protocol.ParamStruct) (*protocol.ParamStruct, error)
}

// Reading is the outcome of a successful key read: the key's metadata and
// its payload. Data holds exactly Info.DataSize bytes.
type Reading struct {
	Info protocol.KeyInfo
	Data []byte
}

// Client reads and writes SMC keys over an injected Transport.
//
// The two-phase protocol is not atomic, and Client adds no locking of its
// own: callers that share a Client across goroutines must serialize access,
// or a second caller's metadata query can interleave between another
// caller's phases.
type Client struct {
	transport Transport
	config    Config
}

// New creates a Client over the given transport.
//
// Example:
//
//	conn, err := iokit.Open()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conn.Close()
//
//	client := smc.New(conn, smc.WithLogger(logger))
func New(transport Transport, opts ...Option) *Client {
	if transport == nil {
		panic("transport cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Client{
		transport: transport,
		config:    cfg,
	}
}

// Read fetches a key's payload using the two-phase sequence the SMC
// requires: query the key's metadata, then transfer the reported number of
// bytes. A failure in the metadata phase returns without attempting the
// transfer.
func (c *Client) Read(ctx context.Context, key string) (*Reading, error) {
	packed, err := encodeKey(key)
	if err != nil {
		return nil, err
	}

	info, err := c.keyInfo(key, packed)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("cancelled: %w", err)
	}

	req, err := protocol.NewReadRequest(packed, info.DataSize)
	if err != nil {
		return nil, err
	}

	out, err := c.transport.Exchange(req)
	if err != nil {
		return nil, fmt.Errorf("read key %q: %w", key, err)
	}
	if out.Result != protocol.ResultSuccess {
		return nil, &protocol.ControllerError{Operation: fmt.Sprintf("read key %q", key), Code: out.Result}
	}

	data := make([]byte, info.DataSize)
	copy(data, out.Bytes[:info.DataSize])

	c.config.Logger.Debug().
		Str("key", key).
		Str("type", info.Tag()).
		Uint32("size", info.DataSize).
		Hex("data", data).
		Msg("smc read")

	return &Reading{Info: info, Data: data}, nil
}

// Write stores a payload under a key. The metadata phase runs first, and the
// transfer is refused outright when the SMC's authoritative size for the key
// differs from len(data): the SMC guards against mis-declared writes, and so
// does this client. Data is never padded or truncated to fit.
func (c *Client) Write(ctx context.Context, key string, data []byte) error {
	packed, err := encodeKey(key)
	if err != nil {
		return err
	}

	info, err := c.keyInfo(key, packed)
	if err != nil {
		return err
	}

	if uint32(len(data)) != info.DataSize {
		return &SizeMismatchError{Key: key, Declared: len(data), Reported: info.DataSize}
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("cancelled: %w", err)
	}

	req, err := protocol.NewWriteRequest(packed, data)
	if err != nil {
		return err
	}

	out, err := c.transport.Exchange(req)
	if err != nil {
		return fmt.Errorf("write key %q: %w", key, err)
	}
	if out.Result != protocol.ResultSuccess {
		return &protocol.ControllerError{Operation: fmt.Sprintf("write key %q", key), Code: out.Result}
	}

	c.config.Logger.Debug().
		Str("key", key).
		Uint32("size", info.DataSize).
		Hex("data", data).
		Msg("smc write")

	return nil
}

// keyInfo performs the metadata query phase and validates the reported shape.
func (c *Client) keyInfo(key string, packed uint32) (protocol.KeyInfo, error) {
	out, err := c.transport.Exchange(protocol.NewKeyInfoRequest(packed))
	if err != nil {
		return protocol.KeyInfo{}, fmt.Errorf("get key info %q: %w", key, err)
	}
	if out.Result != protocol.ResultSuccess {
		return protocol.KeyInfo{}, &protocol.ControllerError{Operation: fmt.Sprintf("get key info %q", key), Code: out.Result}
	}

	if out.KeyInfo.DataSize > protocol.MaxPayload {
		return protocol.KeyInfo{}, fmt.Errorf("key %q reports data size %d beyond maximum payload %d",
			key, out.KeyInfo.DataSize, protocol.MaxPayload)
	}

	return out.KeyInfo, nil
}

// encodeKey validates and packs a key string.
func encodeKey(key string) (uint32, error) {
	if len(key) != protocol.KeySize {
		return 0, fmt.Errorf("key must be exactly %d characters, got %d", protocol.KeySize, len(key))
	}

	return protocol.EncodeKey(key), nil
}
