// Package iokit holds the privileged boundary to the AppleSMC driver.
//
// Everything above this package is platform-independent: the smc client and
// the protocol codecs never touch IOKit directly. Only Conn does, through a
// single IOConnectCallStructMethod call per operation.
//
// # Session Lifecycle
//
//	conn, err := iokit.Open()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conn.Close()
//
//	client := smc.New(conn)
//
// # Error Classification
//
// Non-success kern_return_t values surface as KernError, which decomposes
// into the system/subsystem/code fields used by IOKit error tables:
//
//	var ke iokit.KernError
//	if errors.As(err, &ke) && ke.Code() == 0x2C1 {
//	    // not privileged: SMC writes require root
//	}
//
// On non-darwin platforms the package compiles to stubs that fail with
// ErrUnsupported, so cross-platform builds of dependent tools keep working.
package iokit
