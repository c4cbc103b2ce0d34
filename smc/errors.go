package smc

import "fmt"

// SizeMismatchError indicates a write was refused because the caller's
// payload size differs from the size the SMC reports for the key. The
// transfer is never attempted in this case.
type SizeMismatchError struct {
	Key      string
	Declared int
	Reported uint32
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("write to %q refused: payload is %d bytes, SMC reports the key takes %d",
		e.Key, e.Declared, e.Reported)
}

// ShapeMismatchError indicates a key exists but its reported size or data
// type is not what a typed accessor expects, so its bytes were not
// interpreted.
type ShapeMismatchError struct {
	Key      string
	Size     uint32
	Tag      string
	WantSize uint32
	WantTag  string
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("key %q has unexpected shape: %d bytes of %q, want %d bytes of %q",
		e.Key, e.Size, e.Tag, e.WantSize, e.WantTag)
}
