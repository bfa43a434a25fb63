package saber

import (
	"errors"
	"fmt"
)

// ErrDeviceNotFound indicates no serial port with a compatible saber was
// found.
var ErrDeviceNotFound = errors.New("no compatible saber found")

// ErrNotReady indicates the saber is present but not accepting commands.
var ErrNotReady = errors.New("saber is not ready to receive commands")

// NotEnoughSpaceError indicates the saber's free space is smaller than the
// next file to upload. Files written before this point are kept; the upload
// is fail-fast, not transactional.
type NotEnoughSpaceError struct {
	// File is the device-side name of the file that did not fit
	File string

	// Size is the file size in bytes
	Size int64

	// Free is the free space the saber reported
	Free int64
}

func (e *NotEnoughSpaceError) Error() string {
	return fmt.Sprintf("not enough free space for %s: need %d bytes, %d available",
		e.File, e.Size, e.Free)
}

// WriteError indicates the saber reported a non-success outcome for a file
// upload. A partial write can corrupt the on-device file state, so callers
// should erase all files and re-upload the full set.
type WriteError struct {
	// File is the device-side name of the file being written
	File string

	// Message is the saber's literal response
	Message string
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write of %s failed: %s", e.File, e.Message)
}
