package preset

import "fmt"

// UnknownPresetError reports a preset name that is not in the table. It is a
// configuration error: callers should fail before any file is processed.
type UnknownPresetError struct {
	Name string
}

func (e *UnknownPresetError) Error() string {
	return fmt.Sprintf("unknown preset %q (run 'presets' to list available ones)", e.Name)
}
