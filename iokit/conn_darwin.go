//go:build darwin

package iokit

/*
#cgo LDFLAGS: -framework IOKit
#include <stdlib.h>
#include <IOKit/IOKitLib.h>
*/
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/beltex/go-smc/protocol"
)

// Conn is an open connection to the AppleSMC user client.
// It implements the transport the smc package builds on.
//
// A Conn is the process's handle to the controller session: open it once,
// pass it to every call, close it when done. Closing twice is caller error.
type Conn struct {
	conn C.io_connect_t
	open bool
}

// Open matches the AppleSMC IOService and opens a connection to it.
// Every subsequent Exchange targets this connection until Close.
func Open() (*Conn, error) {
	name := C.CString(protocol.IOServiceSMC)
	defer C.free(unsafe.Pointer(name))

	service := C.IOServiceGetMatchingService(C.kIOMasterPortDefault, C.IOServiceMatching(name))
	if service == 0 {
		return nil, fmt.Errorf("IOService %q not found", protocol.IOServiceSMC)
	}

	c := &Conn{}
	kr := C.IOServiceOpen(service, C.mach_task_self_, 0, &c.conn)
	C.IOObjectRelease(service)

	if kr != ReturnSuccess {
		return nil, KernError(kr)
	}

	c.open = true
	return c, nil
}

// Close releases the connection. The Conn must not be used afterwards.
func (c *Conn) Close() error {
	if !c.open {
		return fmt.Errorf("connection is not open")
	}
	c.open = false

	if kr := C.IOServiceClose(c.conn); kr != ReturnSuccess {
		return KernError(kr)
	}
	return nil
}

// Exchange performs one privileged struct-exchange call against the SMC.
//
// The output struct is returned whenever the call itself succeeded, even when
// the SMC's own result field signals rejection; classifying that field is the
// caller's job. A non-nil error always means the call layer failed and the
// output is meaningless.
func (c *Conn) Exchange(in *protocol.ParamStruct) (*protocol.ParamStruct, error) {
	if !c.open {
		return nil, fmt.Errorf("connection is not open")
	}

	var inBuf, outBuf [protocol.ParamStructSize]byte
	if err := in.Marshal(inBuf[:]); err != nil {
		return nil, err
	}

	outCnt := C.size_t(len(outBuf))
	kr := C.IOConnectCallStructMethod(c.conn,
		protocol.KernelIndexSMC,
		unsafe.Pointer(&inBuf[0]), C.size_t(len(inBuf)),
		unsafe.Pointer(&outBuf[0]), &outCnt)

	if kr != ReturnSuccess {
		return nil, KernError(kr)
	}
	if int(outCnt) != len(outBuf) {
		return nil, fmt.Errorf("short output struct: got %d bytes, want %d", int(outCnt), len(outBuf))
	}

	out := &protocol.ParamStruct{}
	if err := out.Unmarshal(outBuf[:]); err != nil {
		return nil, err
	}

	return out, nil
}
