package iokit

import "fmt"

// Well-known IOKit return values. Any other non-zero value still decomposes
// through KernError; these are just the ones this library checks against.
const (
	// ReturnSuccess is kIOReturnSuccess
	ReturnSuccess = 0

	// ReturnError is kIOReturnError, the general failure code
	ReturnError = 0xE00002BC

	// ReturnNotPrivileged is kIOReturnNotPrivileged; writes to the SMC
	// require root
	ReturnNotPrivileged = 0xE00002C1

	// ReturnBadArgument is kIOReturnBadArgument
	ReturnBadArgument = 0xE00002C2
)

// SysIOKit is the err_system field value for all IOKit return codes.
const SysIOKit = 0x38

// KernError is a non-success kern_return_t from the IOKit call layer.
//
// A kern_return_t packs three fields: system (6 bits), subsystem (12 bits)
// and code (14 bits). The accessors mirror the err_get_system, err_get_sub
// and err_get_code macros so callers can classify failures the way the
// "Accessing Hardware From Applications" documentation describes.
type KernError uint32

func (e KernError) Error() string {
	return fmt.Sprintf("IOKit call failed: %s (0x%08X, system 0x%02X sub 0x%03X code 0x%04X)",
		kernName(uint32(e)), uint32(e), e.System(), e.Sub(), e.Code())
}

// System returns the err_system field (0x38 for IOKit).
func (e KernError) System() uint32 {
	return (uint32(e) >> 26) & 0x3F
}

// Sub returns the err_sub field.
func (e KernError) Sub() uint32 {
	return (uint32(e) >> 14) & 0xFFF
}

// Code returns the err_get_code field, the value usually quoted in IOKit
// error tables.
func (e KernError) Code() uint32 {
	return uint32(e) & 0x3FFF
}

// kernName returns a human-readable name for a kern_return_t value.
func kernName(v uint32) string {
	switch v {
	case ReturnSuccess:
		return "success"
	case ReturnError:
		return "general error"
	case ReturnNotPrivileged:
		return "not privileged"
	case ReturnBadArgument:
		return "bad argument"
	default:
		return "unrecognized return code"
	}
}
