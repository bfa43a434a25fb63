package saber

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/moffa90/go-anima/protocol"
)

// Info contains saber identification, derived on demand from two protocol
// exchanges. It is never cached; device state can change between calls.
type Info struct {
	// Version is the firmware version string (e.g. NXT_1.0.123)
	Version string

	// SerialNumber is the hardware serial number
	SerialNumber string
}

// Controller owns one open Transport bound to one saber and drives the
// command protocol over it. All operations are strictly synchronous: one
// command is in flight at a time, and every call blocks until its terminal
// response arrives or the transport times out.
//
// Controller is NOT safe for concurrent use; the protocol has no
// multiplexing.
type Controller struct {
	port   string
	tr     Transport
	config Config
}

// Connect opens a session with a saber.
//
// With WithTransport the given connection is used as-is. With WithPort the
// named port is opened and trusted without verification (the caller asserts
// it is correct). Otherwise candidate ports are discovered by USB ID and the
// first match is used; ErrDeviceNotFound is returned when there is none.
//
// Example:
//
//	ctl, err := saber.Connect()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ctl.Close()
func Connect(opts ...Option) (*Controller, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Controller{config: cfg}

	if cfg.Transport != nil {
		c.tr = cfg.Transport
		c.port = cfg.Port
		return c, nil
	}

	name := cfg.Port
	if name == "" {
		ports, err := SaberPorts()
		if err != nil {
			return nil, err
		}
		if len(ports) == 0 {
			return nil, ErrDeviceNotFound
		}
		name = ports[0].Name
	}

	tr, err := openPort(name, cfg.ReadTimeout)
	if err != nil {
		return nil, err
	}
	c.tr = tr
	c.port = name
	c.logInfo("saber connected", "port", name)
	return c, nil
}

// Port returns the serial port the session is bound to.
func (c *Controller) Port() string {
	return c.port
}

// Close releases the transport. Safe to call more than once.
func (c *Controller) Close() error {
	if c.tr == nil {
		return nil
	}
	tr := c.tr
	c.tr = nil
	return tr.Close()
}

// SendCommand writes a command to the saber, appending the LF terminator if
// missing. Commands longer than the saber's input buffer are split into
// chunks, with a pacing delay after every chunk so the last one settles
// before the response is read; short commands go out in one unpaced write.
//
// SendCommand does not check that the saber is write-ready.
func (c *Controller) SendCommand(cmd []byte) error {
	cmd = protocol.Terminate(cmd)
	chunks := protocol.Chunks(cmd, c.config.ChunkSize)
	for _, chunk := range chunks {
		c.logDebug("sending command chunk", "data", string(chunk))
		if err := c.writeAll(chunk); err != nil {
			return fmt.Errorf("write command: %w", err)
		}
		if len(chunks) > 1 {
			time.Sleep(c.config.ChunkDelay)
		}
	}
	return nil
}

// ReadLine reads the next LF-terminated line from the saber. A line can
// legitimately come back empty when the saber has not produced output yet;
// the read is retried a bounded number of times with a short pause before
// the empty result is returned. The caller decides whether empty is an
// error.
func (c *Controller) ReadLine() ([]byte, error) {
	line, err := c.readLine()
	if err != nil {
		return nil, err
	}
	for tries := 0; len(line) == 0 && tries < c.config.ReadRetries; tries++ {
		time.Sleep(c.config.RetryDelay)
		line, err = c.readLine()
		if err != nil {
			return nil, err
		}
	}
	c.logDebug("received response", "data", string(line))
	return line, nil
}

// readLine accumulates single bytes until LF or a read timeout. A timeout
// returns whatever was accumulated, possibly nothing.
func (c *Controller) readLine() ([]byte, error) {
	var line []byte
	buf := make([]byte, 1)
	for {
		n, err := c.tr.Read(buf)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return line, nil
		}
		line = append(line, buf[0])
		if buf[0] == '\n' {
			return line, nil
		}
	}
}

// IsReady reports whether the saber is accepting commands. It never returns
// an error; any failure during the exchange resolves to false.
func (c *Controller) IsReady() bool {
	if err := c.SendCommand([]byte(protocol.CmdWriteReady)); err != nil {
		return false
	}
	line, err := c.ReadLine()
	if err != nil {
		return false
	}
	if string(line) == protocol.RespWriteReady+"\n" {
		return true
	}
	c.logError("saber is not ready to receive commands", "response", string(line))
	return false
}

// GetInfo retrieves the firmware version and serial number.
func (c *Controller) GetInfo() (Info, error) {
	if !c.IsReady() {
		return Info{}, ErrNotReady
	}

	version, err := c.queryValue(protocol.CmdVersion, protocol.RespVersionPrefix)
	if err != nil {
		return Info{}, err
	}
	serial, err := c.queryValue(protocol.CmdSerial, protocol.RespSerialPrefix)
	if err != nil {
		return Info{}, err
	}

	info := Info{Version: version, SerialNumber: serial}
	c.logInfo("saber info", "version", info.Version, "serial", info.SerialNumber)
	return info, nil
}

// queryValue sends a query and strips the expected prefix off the response.
func (c *Controller) queryValue(cmd, prefix string) (string, error) {
	if err := c.SendCommand([]byte(cmd)); err != nil {
		return "", err
	}
	line, err := c.ReadLine()
	if err != nil {
		return "", err
	}
	if len(line) == 0 || !bytes.HasPrefix(line, []byte(prefix)) {
		return "", &protocol.InvalidResponseError{Command: cmd, Response: line}
	}
	return strings.TrimSpace(string(line))[len(prefix):], nil
}

// IsNXT reports whether the attached saber is of the NXT hardware
// generation. NXTs need paced streaming and a beep asset (see UploadFiles).
func (c *Controller) IsNXT() (bool, error) {
	info, err := c.GetInfo()
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(info.Version, protocol.VersionPrefixNXT), nil
}

// ListFilesRaw returns the raw byte output of the LIST? command, accumulated
// until the ETX-LF terminator.
func (c *Controller) ListFilesRaw() ([]byte, error) {
	if !c.IsReady() {
		return nil, ErrNotReady
	}
	if err := c.SendCommand([]byte(protocol.CmdListFiles)); err != nil {
		return nil, err
	}

	var listing []byte
	for {
		line, err := c.ReadLine()
		if err != nil {
			return nil, err
		}
		if len(line) == 0 {
			return nil, fmt.Errorf("file listing truncated after %d bytes", len(listing))
		}
		listing = append(listing, line...)
		if protocol.IsListingEnd(line) {
			return listing, nil
		}
	}
}

// ListFiles returns the files on the saber as a filename-to-size mapping.
func (c *Controller) ListFiles() (map[string]int64, error) {
	listing, err := c.ListFilesRaw()
	if err != nil {
		return nil, err
	}
	return protocol.ParseFileListing(listing), nil
}

// FreeSpace returns the free flash space in bytes.
func (c *Controller) FreeSpace() (int64, error) {
	return c.spaceQuery(protocol.CmdFreeSpace)
}

// UsedSpace returns the used flash space in bytes.
func (c *Controller) UsedSpace() (int64, error) {
	return c.spaceQuery(protocol.CmdUsedSpace)
}

// TotalSpace returns the total flash space in bytes.
func (c *Controller) TotalSpace() (int64, error) {
	return c.spaceQuery(protocol.CmdTotalSpace)
}

func (c *Controller) spaceQuery(cmd string) (int64, error) {
	if err := c.SendCommand([]byte(cmd)); err != nil {
		return 0, err
	}
	line, err := c.ReadLine()
	if err != nil {
		return 0, err
	}
	n, err := protocol.ParseSpace(line)
	if err != nil {
		return 0, &protocol.InvalidResponseError{Command: cmd, Response: line}
	}
	return n, nil
}

// ReadConfig reads config.ini from the saber and returns its text. The
// config response carries no line framing: the firmware sends the literal
// characters '2' and '3' in place of STX/ETX, and the final line has no LF,
// so the stream is read byte-wise until the end marker.
func (c *Controller) ReadConfig() (string, error) {
	if err := c.SendCommand([]byte(protocol.CmdReadConfig)); err != nil {
		return "", err
	}

	var config []byte
	buf := make([]byte, 1)
	for !bytes.HasSuffix(config, []byte{'}', protocol.ConfigEndMarker}) {
		n, err := c.tr.Read(buf)
		if err != nil {
			return "", err
		}
		if n == 0 {
			return "", fmt.Errorf("timed out reading config after %d bytes", len(config))
		}
		config = append(config, buf[0])
	}

	c.logDebug("raw config", "data", string(config))
	return protocol.TrimConfig(config), nil
}

// PreviewColor lights the blade with the given RGBW color without storing
// it.
func (c *Controller) PreviewColor(r, g, b, w byte) error {
	return c.expectOK(protocol.BuildPreviewColorCmd(r, g, b, w))
}

// SetColor stores an RGBW tuple for one channel of one bank (0-7) and saves
// the configuration.
func (c *Controller) SetColor(bank int, channel protocol.ColorChannel, r, g, b, w byte) error {
	cmd, err := protocol.BuildSetColorCmd(bank, channel, r, g, b, w)
	if err != nil {
		return err
	}
	if err := c.expectOK(cmd); err != nil {
		return err
	}
	return c.SaveConfig()
}

// SetActiveBank selects the active color bank (0-7) and saves the
// configuration.
func (c *Controller) SetActiveBank(bank int) error {
	cmd, err := protocol.BuildSetActiveBankCmd(bank)
	if err != nil {
		return err
	}
	if err := c.expectOK(cmd); err != nil {
		return err
	}
	return c.SaveConfig()
}

// SetSoundsForEffect assigns the ordered sound list for an effect and saves
// the configuration. Order is playback precedence and is preserved.
func (c *Controller) SetSoundsForEffect(effect protocol.SoundEffect, files []string) error {
	cmd, err := protocol.BuildSetSoundsCmd(effect, files)
	if err != nil {
		return err
	}
	c.logInfo("setting sound files for effect", "effect", string(effect), "files", strings.Join(files, ","))
	if err := c.SendCommand(cmd); err != nil {
		return err
	}
	line, err := c.ReadLine()
	if err != nil {
		return err
	}
	// The saber acknowledges by echoing the full command after "OK ".
	want := protocol.RespOKPrefix + " " + string(cmd)
	if string(line) != want {
		return &protocol.InvalidResponseError{
			Command:  strings.TrimSuffix(string(cmd), "\n"),
			Response: line,
		}
	}
	return c.SaveConfig()
}

// SoundsForEffect returns the sound list the saber uses for an effect.
func (c *Controller) SoundsForEffect(effect protocol.SoundEffect) ([]string, error) {
	cmd, err := protocol.BuildGetSoundsCmd(effect)
	if err != nil {
		return nil, err
	}
	if err := c.SendCommand(cmd); err != nil {
		return nil, err
	}
	line, err := c.ReadLine()
	if err != nil {
		return nil, err
	}
	return protocol.ParseEffectList(effect, line)
}

// SaveConfig persists the current configuration on the saber.
func (c *Controller) SaveConfig() error {
	c.logDebug("saving saber configuration")
	if err := c.SendCommand([]byte(protocol.CmdSave)); err != nil {
		return err
	}
	line, err := c.ReadLine()
	if err != nil {
		return err
	}
	if string(line) != protocol.RespSave+"\n" {
		return &protocol.InvalidResponseError{Command: protocol.CmdSave, Response: line}
	}
	return nil
}

// AutoAssignSoundEffects assigns sound files to effects based on the default
// filename prefixes (POWERON, HUM, CLASH, ...). If any SmoothSwing files are
// present, plain SWING files are ignored: setting both swing styles at once
// confuses NXT firmware.
func (c *Controller) AutoAssignSoundEffects(ctx context.Context) error {
	onSaber, err := c.ListFiles()
	if err != nil {
		return err
	}

	names := make([]string, 0, len(onSaber))
	smoothSwing := false
	for name := range onSaber {
		names = append(names, name)
		if strings.Contains(name, "SMOOTHSWING") {
			smoothSwing = true
		}
	}
	sort.Strings(names)

	c.logInfo("auto-assigning effects from the default naming scheme")
	if smoothSwing {
		c.logInfo("SmoothSwing files detected, ignoring standard swing files")
		kept := names[:0]
		for _, name := range names {
			if !strings.HasPrefix(name, "SWING") {
				kept = append(kept, name)
			}
		}
		names = kept
	}

	for i, effect := range protocol.Effects() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("cancelled: %w", err)
		}
		if i > 0 {
			// The saber needs a beat between consecutive assignments.
			time.Sleep(c.config.EffectDelay)
		}

		prefix, err := protocol.EffectFilePrefix(effect)
		if err != nil {
			return err
		}
		var assign []string
		for _, name := range names {
			if strings.HasPrefix(name, prefix) {
				assign = append(assign, name)
			}
		}
		if err := c.SetSoundsForEffect(effect, assign); err != nil {
			return err
		}
	}
	return nil
}

// expectOK sends a command and verifies the response is an acknowledgement.
func (c *Controller) expectOK(cmd []byte) error {
	if err := c.SendCommand(cmd); err != nil {
		return err
	}
	line, err := c.ReadLine()
	if err != nil {
		return err
	}
	if !protocol.IsOK(line) {
		return &protocol.InvalidResponseError{
			Command:  strings.TrimSuffix(string(cmd), "\n"),
			Response: line,
		}
	}
	return nil
}

// writeAll writes p fully to the transport.
func (c *Controller) writeAll(p []byte) error {
	for len(p) > 0 {
		n, err := c.tr.Write(p)
		if err != nil {
			return err
		}
		p = p[n:]
	}
	return nil
}

// reportProgress calls the progress callback if configured.
func (c *Controller) reportProgress(progress Progress) {
	if c.config.ProgressCallback != nil {
		c.config.ProgressCallback(progress)
	}
}

// logDebug logs a debug message if a logger is configured.
func (c *Controller) logDebug(msg string, keysAndValues ...interface{}) {
	if c.config.Logger != nil {
		c.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (c *Controller) logInfo(msg string, keysAndValues ...interface{}) {
	if c.config.Logger != nil {
		c.config.Logger.Info(msg, keysAndValues...)
	}
}

// logError logs an error message if a logger is configured.
func (c *Controller) logError(msg string, keysAndValues ...interface{}) {
	if c.config.Logger != nil {
		c.config.Logger.Error(msg, keysAndValues...)
	}
}
