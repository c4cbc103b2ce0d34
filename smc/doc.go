// Package smc provides a high-level client for the Apple System Management
// Controller: temperature sensors, fan speeds, and fan speed writes.
//
// # Overview
//
// The client drives the SMC's two-phase key protocol over an injected
// Transport. Every read and write first queries the key's metadata (size and
// data type), validates it, then performs the data transfer. The SMC refuses
// transfers that skip the metadata phase, and so does this client.
//
// # Basic Usage
//
//	conn, err := iokit.Open()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conn.Close()
//
//	client := smc.New(conn)
//
//	temp, err := client.Temperature(ctx, protocol.KeyCPUDiode, smc.Celsius)
//	fans, err := client.FanCount(ctx)
//	rpm, err := client.FanRPM(ctx, 0)
//
// # Writing Fan Speeds
//
// Setting a fan's minimum RPM requires root:
//
//	err := client.SetFanMinRPM(ctx, 0, 1200)
//
// # Error Handling
//
// Failures are explicit errors, never sentinel values:
//   - protocol.ControllerError: the SMC rejected the request (unknown key,
//     bad size); protocol.IsKeyNotFound identifies missing keys
//   - iokit.KernError: the privileged call itself failed
//   - SizeMismatchError: a write payload doesn't match the key's real size
//   - ShapeMismatchError: a key's reported size/type isn't what the typed
//     accessor expects
//
// # Concurrency
//
// A Client performs no locking. The two-phase protocol is not atomic, so
// concurrent callers must serialize access to a Client (or its underlying
// session) themselves.
//
// # Testing
//
// Transport is a single-method interface, so the whole client is exercisable
// against a fake with canned responses; no hardware or IOKit needed.
package smc
