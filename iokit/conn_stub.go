//go:build !darwin

package iokit

import (
	"errors"

	"github.com/beltex/go-smc/protocol"
)

// ErrUnsupported is returned on platforms without the AppleSMC driver.
var ErrUnsupported = errors.New("iokit: AppleSMC is only available on darwin")

// Conn is a placeholder on non-darwin platforms so that code depending on
// this package still compiles; every method fails with ErrUnsupported.
type Conn struct{}

// Open always fails off darwin.
func Open() (*Conn, error) {
	return nil, ErrUnsupported
}

// Close always fails off darwin.
func (c *Conn) Close() error {
	return ErrUnsupported
}

// Exchange always fails off darwin.
func (c *Conn) Exchange(in *protocol.ParamStruct) (*protocol.ParamStruct, error) {
	return nil, ErrUnsupported
}
