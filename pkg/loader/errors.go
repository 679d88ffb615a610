package loader

import "fmt"

// DecodeError reports a source file that could not be read or decoded.
// Per-file condition: the orchestrator records it and moves on.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
