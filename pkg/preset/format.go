package preset

import (
	"path/filepath"
	"strings"
)

// FormatClass classifies an input file by its extension.
type FormatClass int

const (
	FormatOther FormatClass = iota
	FormatJPEG
	FormatRAW
)

func (f FormatClass) String() string {
	switch f {
	case FormatRAW:
		return "raw"
	case FormatJPEG:
		return "jpeg"
	default:
		return "other"
	}
}

var rawExtensions = map[string]bool{
	".nef": true,
	".cr2": true,
	".arw": true,
	".dng": true,
	".raf": true,
	".orf": true,
	".rw2": true,
	".pef": true,
	".srw": true,
	".raw": true,
}

var jpegExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".jpe":  true,
	".jfif": true,
}

// DetectFormat classifies path as RAW, JPEG, or other from its extension.
func DetectFormat(path string) FormatClass {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case rawExtensions[ext]:
		return FormatRAW
	case jpegExtensions[ext]:
		return FormatJPEG
	default:
		return FormatOther
	}
}

// Resolve maps a base preset name and a detected format class to the preset
// variant that should actually be applied: for RAW inputs the "<base>_raw"
// variant is chosen when the table has one, otherwise the base preset is
// used as-is. The base preset must exist; anything else is a configuration
// error and fatal for the whole batch.
func Resolve(base string, format FormatClass) (Preset, error) {
	p, ok := table[base]
	if !ok {
		return Preset{}, &UnknownPresetError{Name: base}
	}
	if format == FormatRAW {
		if variant, ok := table[base+"_raw"]; ok {
			return variant, nil
		}
	}
	return p, nil
}
