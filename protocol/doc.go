// Package protocol implements the Apple SMC key-value wire protocol.
//
// This package provides the codecs and types needed to exchange requests with
// the AppleSMC driver: key packing, the fixed parameter struct and its binary
// layout, and the numeric formats the SMC stores sensor data in.
//
// # Protocol Overview
//
// Every SMC attribute is addressed by a 4-character key ("FNum", "TC0D")
// packed into a 32-bit integer. A single privileged struct-exchange call
// carries one operation at a time; the opcode lives in the data8 field:
//
//	OpGetKeyInfo  query a key's payload size and data type
//	OpReadKey     fetch a key's payload
//	OpWriteKey    store a key's payload
//
// Reads and writes are two-phase. The SMC will not transfer data for a key
// until the caller has issued OpGetKeyInfo and echoed the reported size back
// in the transfer request. The high-level engine in package smc drives this
// sequence.
//
// # Key and Tag Packing
//
// Keys and data type tags use the same packing, first character in the most
// significant byte:
//
//	packed := protocol.EncodeKey("FNum")
//	tag := protocol.DecodeTag(info.DataType) // e.g. "ui8 "
//
// # Numeric Formats
//
// Fan speeds use fpe2, an unsigned fixed-point format with 2 fractional
// bits. Temperatures use sp78, a signed fixed-point format with an integer
// byte and a fractional byte:
//
//	rpm, err := protocol.DecodeFPE2(payload)
//	err := protocol.EncodeFPE2(1200, payload)
//	celsius, err := protocol.DecodeSP78(payload)        // integer byte only
//	celsius, err := protocol.DecodeSP78Precise(payload) // full resolution
//
// DecodeSP78 keeps the legacy truncation to the integer byte.
// DecodeSP78Precise is the corrected decoder.
//
// # Error Handling
//
// The SMC reports its own result code independently of the privileged call's
// status. Non-zero result codes become a ControllerError:
//
//	if out.Result != protocol.ResultSuccess {
//	    return &protocol.ControllerError{Operation: "read key", Code: out.Result}
//	}
package protocol
