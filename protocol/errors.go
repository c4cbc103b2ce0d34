package protocol

import (
	"errors"
	"fmt"
)

// ControllerError represents a rejection by the SMC itself: the privileged
// call succeeded but the result field of the output struct was non-zero.
type ControllerError struct {
	// Operation is the request that was rejected
	Operation string

	// Code is the SMC result code from the output struct
	Code uint8
}

func (e *ControllerError) Error() string {
	return fmt.Sprintf("%s rejected by SMC: %s (0x%02X)", e.Operation, resultName(e.Code), e.Code)
}

// IsKeyNotFound reports whether the error is a ControllerError for a key
// that does not exist on this machine. The error may be wrapped.
func IsKeyNotFound(err error) bool {
	var ce *ControllerError
	return errors.As(err, &ce) && ce.Code == ResultKeyNotFound
}

// resultName returns a human-readable name for an SMC result code.
func resultName(code uint8) string {
	switch code {
	case ResultSuccess:
		return "success"
	case ResultError:
		return "error"
	case ResultKeyNotFound:
		return "key not found"
	default:
		return fmt.Sprintf("unknown result code 0x%02X", code)
	}
}
