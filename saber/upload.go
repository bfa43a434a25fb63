package saber

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/moffa90/go-anima/protocol"
	"github.com/moffa90/go-anima/raw"
)

// upload is one entry of the effective send order: a device-side name, the
// declared byte count, and a way to open the data.
type upload struct {
	file raw.File
	open func() (io.ReadCloser, error)
}

// UploadFiles streams local sound files onto the saber flash.
//
// Input paths are sorted by name for a deterministic order. On NXT sabers
// any BEEP.RAW is moved to the end of the plan; if none is supplied,
// addDefaultBeep is set and the saber has no BEEP.RAW yet, the bundled
// default beep is appended.
//
// Each file is preflighted against the saber's free space and aborts the
// whole operation with NotEnoughSpaceError if it does not fit. Files already
// written stay written: the pipeline is fail-fast, not transactional. A
// non-success terminal response raises WriteError with the saber's literal
// message; treat it as a cue to erase and re-upload the full set.
//
// Cancellation via ctx is honored between files, never inside an opened byte
// stream: once a WR= header is sent the saber expects the full declared
// byte count.
func (c *Controller) UploadFiles(ctx context.Context, paths []string, addDefaultBeep bool) error {
	isNXT, err := c.IsNXT()
	if err != nil {
		return err
	}

	plan := raw.NewPlan(paths, isNXT)
	uploads := make([]upload, 0, len(plan)+1)
	for _, path := range plan {
		f, err := raw.Stat(path)
		if err != nil {
			return err
		}
		path := path
		uploads = append(uploads, upload{
			file: f,
			open: func() (io.ReadCloser, error) { return os.Open(path) },
		})
	}

	if isNXT && addDefaultBeep && !raw.HasBeep(plan) {
		onSaber, err := c.ListFiles()
		if err != nil {
			return err
		}
		if _, ok := onSaber[raw.BeepName]; !ok {
			c.logInfo("NXT saber without a beep sound, appending the bundled BEEP.RAW")
			uploads = append(uploads, defaultBeepUpload())
		}
	}

	// NXT UARTs cannot sustain unpaced streaming; Windows serial drivers
	// are slow enough on their own.
	pace := isNXT && runtime.GOOS != "windows"

	for i, up := range uploads {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("cancelled: %w", err)
		}
		if i > 0 {
			c.logInfo("pausing between file uploads", "delay", c.config.FileDelay.String())
			if err := sleepCtx(ctx, c.config.FileDelay); err != nil {
				return fmt.Errorf("cancelled: %w", err)
			}
		}
		if err := c.uploadOne(up, i, len(uploads), pace); err != nil {
			return err
		}
		c.logInfo("wrote file to saber", "file", up.file.Name, "bytes", up.file.Size)
	}
	return nil
}

// uploadOne preflights, opens and streams a single file.
func (c *Controller) uploadOne(up upload, index, total int, pace bool) error {
	free, err := c.FreeSpace()
	if err != nil {
		return err
	}
	if free < up.file.Size {
		return &NotEnoughSpaceError{File: up.file.Name, Size: up.file.Size, Free: free}
	}

	if !c.IsReady() {
		return ErrNotReady
	}

	r, err := up.open()
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	if err := c.SendCommand(protocol.BuildWriteFileCmd(up.file.Name, up.file.Size)); err != nil {
		return err
	}
	// The saber echoes a status line for the header before the stream
	// starts.
	if _, err := c.ReadLine(); err != nil {
		return err
	}

	progressEvery := int64(c.config.ChunkSize) * 3
	progress := Progress{
		Phase:      PhaseUpload,
		File:       up.file.Name,
		FileIndex:  index,
		TotalFiles: total,
		TotalBytes: up.file.Size,
	}

	// Byte-by-byte, flushed and optionally paced. Bulk writes overrun the
	// saber's UART buffering.
	br := bufio.NewReader(r)
	buf := make([]byte, 1)
	var sent int64
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		buf[0] = b
		if err := c.writeAll(buf); err != nil {
			return fmt.Errorf("stream %s: %w", up.file.Name, err)
		}
		if err := c.tr.Drain(); err != nil {
			return fmt.Errorf("stream %s: %w", up.file.Name, err)
		}
		if pace {
			time.Sleep(c.config.ByteDelay)
		}
		sent++
		if sent%progressEvery == 0 {
			progress.BytesSent = sent
			progress.Percentage = float64(sent) / float64(up.file.Size) * 100
			c.reportProgress(progress)
		}
	}

	// The declared size is a contract: the saber counts exactly this many
	// bytes before looking for the next command.
	if sent != up.file.Size {
		return &WriteError{
			File:    up.file.Name,
			Message: fmt.Sprintf("local file changed during upload: sent %d of %d bytes", sent, up.file.Size),
		}
	}

	progress.BytesSent = sent
	progress.Percentage = 100
	c.reportProgress(progress)

	line, err := c.ReadLine()
	if err != nil {
		return err
	}
	if string(line) != protocol.RespWriteComplete+"\n" {
		return &WriteError{File: up.file.Name, Message: string(bytes.TrimSpace(line))}
	}
	return nil
}

// EraseAll erases every file on the saber flash. USE CAREFULLY.
//
// The saber reports progress as a stream of single bytes below 'A'; each one
// is surfaced through the progress callback with a percentage mapped onto
// the expected tick total. The read timeout is raised for the wait (a full
// erase takes up to two minutes) and restored afterwards.
func (c *Controller) EraseAll(ctx context.Context) error {
	if !c.IsReady() {
		return ErrNotReady
	}

	c.logInfo("erasing all files on saber, this may take several minutes")
	if err := c.SendCommand([]byte(protocol.CmdEraseAll)); err != nil {
		return err
	}
	// "Erasing Serial Flash, this may take 20s to 2 minutes"
	if _, err := c.ReadLine(); err != nil {
		return err
	}

	if err := c.tr.SetReadTimeout(c.config.EraseReadTimeout); err != nil {
		return err
	}
	defer func() { _ = c.tr.SetReadTimeout(c.config.ReadTimeout) }()

	ticks := 0
	buf := make([]byte, 1)
	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("cancelled: %w", err)
		}
		n, err := c.tr.Read(buf)
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("timed out waiting for erase progress after %d ticks", ticks)
		}
		if buf[0] >= protocol.EraseTickLimit {
			// First byte of the completion line; the rest follows.
			break
		}
		ticks++
		pct := ticks * 100 / protocol.EraseTickTotal
		if pct > 100 {
			pct = 100
		}
		c.reportProgress(Progress{Phase: PhaseErase, Percentage: float64(pct)})
	}

	// Remainder of "OK, Now re-load your sound files.", then
	// "OK, Serial Flash Erased." and a blank line.
	for i := 0; i < 3; i++ {
		if _, err := c.ReadLine(); err != nil {
			return err
		}
	}

	c.reportProgress(Progress{Phase: PhaseErase, Percentage: 100})
	c.logInfo("saber flash erased")
	return nil
}

// sleepCtx sleeps for d unless ctx is cancelled first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
