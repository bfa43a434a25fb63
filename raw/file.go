package raw

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Device-side naming convention.
const (
	// Extension is the suffix of every sound file on the saber.
	Extension = ".RAW"

	// BeepName is the reserved beep asset filename. NXT sabers require one
	// and prefer it uploaded last.
	BeepName = "BEEP.RAW"

	// MaxNameLength is the longest device-side filename the flash
	// filesystem stores.
	MaxNameLength = 32
)

// namePattern matches a valid device-side filename.
var namePattern = regexp.MustCompile(`^\w+\.RAW$`)

// File describes one local sound file staged for upload.
type File struct {
	// Path is the local filesystem path
	Path string

	// Name is the device-side filename (the base name of Path)
	Name string

	// Size is the local size in bytes, which must equal the byte count
	// streamed to the saber exactly
	Size int64
}

// DeviceName derives and validates the device-side filename for a local path.
func DeviceName(path string) (string, error) {
	name := filepath.Base(path)
	if len(name) > MaxNameLength {
		return "", fmt.Errorf("filename %q exceeds %d characters", name, MaxNameLength)
	}
	if !namePattern.MatchString(name) {
		return "", fmt.Errorf("filename %q does not match the NAME%s convention", name, Extension)
	}
	return name, nil
}

// Stat validates a local sound file and captures its size.
func Stat(path string) (File, error) {
	name, err := DeviceName(path)
	if err != nil {
		return File{}, err
	}
	fi, err := os.Stat(path)
	if err != nil {
		return File{}, err
	}
	if fi.IsDir() {
		return File{}, fmt.Errorf("%s is a directory", path)
	}
	return File{Path: path, Name: name, Size: fi.Size()}, nil
}

// IsBeep reports whether a local path refers to a beep asset. Matching is by
// containment of the reserved name, so variants like ABEEP.RAW count as beeps
// too; only the device-side lookup for the bundled default uses the exact
// name.
func IsBeep(path string) bool {
	return strings.Contains(filepath.Base(path), BeepName)
}
