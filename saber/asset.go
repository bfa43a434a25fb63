package saber

import (
	"bytes"
	_ "embed"
	"io"

	"github.com/moffa90/go-anima/raw"
)

// defaultBeep is the bundled OEM beep sound, uploaded to NXT sabers that
// have no BEEP.RAW of their own.
//
//go:embed assets/BEEP.RAW
var defaultBeep []byte

// DefaultBeep returns the bundled beep sound data.
func DefaultBeep() []byte {
	return defaultBeep
}

// defaultBeepUpload stages the bundled beep for the upload pipeline.
func defaultBeepUpload() upload {
	return upload{
		file: raw.File{Name: raw.BeepName, Size: int64(len(defaultBeep))},
		open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(defaultBeep)), nil
		},
	}
}
