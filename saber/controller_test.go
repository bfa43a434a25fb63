package saber

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/moffa90/go-anima/protocol"
)

// fakeTransport serves a pre-scripted byte stream one byte per Read and
// records everything written to it. An exhausted script behaves like a serial
// read timeout: Read returns (0, nil).
type fakeTransport struct {
	script     []byte
	pos        int
	emptyReads int // (0, nil) results served before the script, to exercise retries
	writes     bytes.Buffer
	timeouts   []time.Duration
	drains     int
	closes     int
}

func (f *fakeTransport) Read(p []byte) (int, error) {
	if f.emptyReads > 0 {
		f.emptyReads--
		return 0, nil
	}
	if f.pos >= len(f.script) {
		return 0, nil
	}
	p[0] = f.script[f.pos]
	f.pos++
	return 1, nil
}

func (f *fakeTransport) Write(p []byte) (int, error) {
	f.writes.Write(p)
	return len(p), nil
}

func (f *fakeTransport) SetReadTimeout(d time.Duration) error {
	f.timeouts = append(f.timeouts, d)
	return nil
}

func (f *fakeTransport) Drain() error {
	f.drains++
	return nil
}

func (f *fakeTransport) Close() error {
	f.closes++
	return nil
}

// newTestController wires a controller to a scripted fake transport with all
// pacing delays zeroed so tests run fast.
func newTestController(t *testing.T, script string, opts ...Option) (*Controller, *fakeTransport) {
	t.Helper()
	ft := &fakeTransport{script: []byte(script)}
	base := []Option{
		WithTransport(ft),
		WithChunkDelay(0),
		WithByteDelay(0),
		WithFileDelay(0),
		WithEffectDelay(0),
		WithRetryDelay(0),
	}
	ctl, err := Connect(append(base, opts...)...)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	return ctl, ft
}

const readyLine = "OK, Write Ready\n"

func TestIsReady(t *testing.T) {
	ctl, ft := newTestController(t, readyLine)
	if !ctl.IsReady() {
		t.Error("IsReady() = false for a ready saber")
	}
	if got := ft.writes.String(); got != "WR?\n" {
		t.Errorf("wrote %q, want %q", got, "WR?\n")
	}
}

func TestIsReadyFalseOnUnexpectedResponse(t *testing.T) {
	ctl, _ := newTestController(t, "ERROR, busy\n")
	if ctl.IsReady() {
		t.Error("IsReady() = true for a busy saber")
	}
}

func TestIsReadyFalseOnSilence(t *testing.T) {
	// No scripted output at all; the probe must resolve to false, not fail.
	ctl, _ := newTestController(t, "")
	if ctl.IsReady() {
		t.Error("IsReady() = true for a silent device")
	}
}

func TestGetInfo(t *testing.T) {
	ctl, ft := newTestController(t, readyLine+"V=NXT_1.0.123\nS=NXT0071234\n")

	info, err := ctl.GetInfo()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Version != "NXT_1.0.123" {
		t.Errorf("Version = %q, want %q", info.Version, "NXT_1.0.123")
	}
	if info.SerialNumber != "NXT0071234" {
		t.Errorf("SerialNumber = %q, want %q", info.SerialNumber, "NXT0071234")
	}
	if got := ft.writes.String(); got != "WR?\nV?\nS?\n" {
		t.Errorf("wrote %q, want %q", got, "WR?\nV?\nS?\n")
	}
}

func TestGetInfoNotReady(t *testing.T) {
	ctl, _ := newTestController(t, "ERROR\n")
	if _, err := ctl.GetInfo(); !errors.Is(err, ErrNotReady) {
		t.Errorf("error = %v, want ErrNotReady", err)
	}
}

func TestIsNXT(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    bool
	}{
		{name: "NXT firmware", version: "NXT_1.0.123", want: true},
		{name: "EVO firmware", version: "1.0.271", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctl, _ := newTestController(t, readyLine+"V="+tt.version+"\nS=1234\n")
			got, err := ctl.IsNXT()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("IsNXT() = %v for version %q, want %v", got, tt.version, tt.want)
			}
		})
	}
}

func TestReadLineRetriesEmptyRead(t *testing.T) {
	ctl, ft := newTestController(t, "V=1.0.271\n")
	ft.emptyReads = 1

	line, err := ctl.ReadLine()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(line) != "V=1.0.271\n" {
		t.Errorf("ReadLine() = %q after an empty read, want the retried line", line)
	}
}

func TestReadLineGivesUpAfterRetries(t *testing.T) {
	ctl, _ := newTestController(t, "")
	line, err := ctl.ReadLine()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(line) != 0 {
		t.Errorf("ReadLine() = %q for a silent device, want empty", line)
	}
}

func TestListFiles(t *testing.T) {
	listing := "Files on saber:\n" +
		"CLASH1.RAW    44100\n" +
		"HUM.RAW       352800\n" +
		"2 files, 396900 bytes\n" +
		"End\x03\n"
	ctl, ft := newTestController(t, readyLine+listing)

	files, err := ctl.ListFiles()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]int64{"CLASH1.RAW": 44100, "HUM.RAW": 352800}
	if len(files) != len(want) {
		t.Fatalf("ListFiles() = %v, want %v", files, want)
	}
	for name, size := range want {
		if files[name] != size {
			t.Errorf("files[%q] = %d, want %d", name, files[name], size)
		}
	}
	if !strings.Contains(ft.writes.String(), "LIST?\n") {
		t.Errorf("LIST? command not sent, wrote %q", ft.writes.String())
	}
}

func TestListFilesTruncated(t *testing.T) {
	// Listing stops without the ETX terminator.
	ctl, _ := newTestController(t, readyLine+"HUM.RAW 352800\n")
	_, err := ctl.ListFiles()
	if err == nil {
		t.Fatal("expected error for a truncated listing, got nil")
	}
	if !strings.Contains(err.Error(), "truncated") {
		t.Errorf("error = %v, want truncation error", err)
	}
}

func TestSpaceQueries(t *testing.T) {
	ctl, ft := newTestController(t, "FREE=12582912\nUSED=485100\nSIZE=16777216\n")

	free, err := ctl.FreeSpace()
	if err != nil {
		t.Fatalf("FreeSpace: %v", err)
	}
	used, err := ctl.UsedSpace()
	if err != nil {
		t.Fatalf("UsedSpace: %v", err)
	}
	total, err := ctl.TotalSpace()
	if err != nil {
		t.Fatalf("TotalSpace: %v", err)
	}

	if free != 12582912 || used != 485100 || total != 16777216 {
		t.Errorf("space = %d/%d/%d, want 12582912/485100/16777216", free, used, total)
	}
	if got := ft.writes.String(); got != "FREE?\nUSED?\nSIZE?\n" {
		t.Errorf("wrote %q, want %q", got, "FREE?\nUSED?\nSIZE?\n")
	}
}

func TestSpaceQueryInvalidResponse(t *testing.T) {
	ctl, _ := newTestController(t, "garbage\n")
	_, err := ctl.FreeSpace()
	var respErr *protocol.InvalidResponseError
	if !errors.As(err, &respErr) {
		t.Fatalf("error type = %T, want *protocol.InvalidResponseError", err)
	}
	if respErr.Command != protocol.CmdFreeSpace {
		t.Errorf("error command = %q, want %q", respErr.Command, protocol.CmdFreeSpace)
	}
}

func TestReadConfig(t *testing.T) {
	ctl, ft := newTestController(t, "2{blade=3\nvolume=2}3")

	config, err := ctl.ReadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config != "{blade=3\nvolume=2}" {
		t.Errorf("ReadConfig() = %q, want markers stripped", config)
	}
	if got := ft.writes.String(); got != "RD?config.ini\n" {
		t.Errorf("wrote %q, want %q", got, "RD?config.ini\n")
	}
}

func TestReadConfigTimeout(t *testing.T) {
	ctl, _ := newTestController(t, "2{blade=3")
	_, err := ctl.ReadConfig()
	if err == nil {
		t.Fatal("expected error for an unterminated config, got nil")
	}
	if !strings.Contains(err.Error(), "timed out") {
		t.Errorf("error = %v, want timeout error", err)
	}
}

func TestPreviewColor(t *testing.T) {
	ctl, ft := newTestController(t, "OK P=10,20,30,40\n")
	if err := ctl.PreviewColor(10, 20, 30, 40); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ft.writes.String(); got != "P=10,20,30,40\n" {
		t.Errorf("wrote %q, want %q", got, "P=10,20,30,40\n")
	}
}

func TestSetColor(t *testing.T) {
	ctl, ft := newTestController(t, "OK\nOK SAVE\n")
	if err := ctl.SetColor(3, protocol.ChannelClash, 10, 20, 30, 40); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ft.writes.String(); got != "F3=10,20,30,40\nSAVE\n" {
		t.Errorf("wrote %q, want the color command followed by SAVE", got)
	}
}

func TestSetColorRejectsBadBank(t *testing.T) {
	ctl, ft := newTestController(t, "")
	if err := ctl.SetColor(9, protocol.ChannelColor, 0, 0, 0, 0); err == nil {
		t.Fatal("expected error for bank 9, got nil")
	}
	if ft.writes.Len() != 0 {
		t.Errorf("invalid command reached the wire: %q", ft.writes.String())
	}
}

func TestSetActiveBank(t *testing.T) {
	ctl, ft := newTestController(t, "OK\nOK SAVE\n")
	if err := ctl.SetActiveBank(5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ft.writes.String(); got != "B=5\nSAVE\n" {
		t.Errorf("wrote %q, want %q", got, "B=5\nSAVE\n")
	}
}

func TestSetSoundsForEffect(t *testing.T) {
	cmd := "sCL=CLASH1.RAW,CLASH2.RAW\n"
	ctl, ft := newTestController(t, "OK "+cmd+"OK SAVE\n")

	err := ctl.SetSoundsForEffect(protocol.EffectClash, []string{"CLASH1.RAW", "CLASH2.RAW"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ft.writes.String(); got != cmd+"SAVE\n" {
		t.Errorf("wrote %q, want %q", got, cmd+"SAVE\n")
	}
}

func TestSetSoundsForEffectBadEcho(t *testing.T) {
	ctl, _ := newTestController(t, "OK sCL=OTHER.RAW\n")
	err := ctl.SetSoundsForEffect(protocol.EffectClash, []string{"CLASH1.RAW"})
	var respErr *protocol.InvalidResponseError
	if !errors.As(err, &respErr) {
		t.Fatalf("error type = %T, want *protocol.InvalidResponseError", err)
	}
}

func TestSoundsForEffect(t *testing.T) {
	ctl, ft := newTestController(t, "sHUM=HUM.RAW\n")
	files, err := ctl.SoundsForEffect(protocol.EffectHum)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 1 || files[0] != "HUM.RAW" {
		t.Errorf("SoundsForEffect() = %v, want [HUM.RAW]", files)
	}
	if got := ft.writes.String(); got != "sHUM?\n" {
		t.Errorf("wrote %q, want %q", got, "sHUM?\n")
	}
}

func TestSaveConfigBadResponse(t *testing.T) {
	ctl, _ := newTestController(t, "ERROR\n")
	err := ctl.SaveConfig()
	var respErr *protocol.InvalidResponseError
	if !errors.As(err, &respErr) {
		t.Fatalf("error type = %T, want *protocol.InvalidResponseError", err)
	}
}

func TestSendCommandChunksLongCommands(t *testing.T) {
	ctl, ft := newTestController(t, "", WithChunkSize(4))
	cmd := []byte("sCL=CLASH1.RAW,CLASH2.RAW")
	if err := ctl.SendCommand(cmd); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Chunking must be invisible on the wire: the device sees the full
	// terminated command.
	if got := ft.writes.String(); got != string(cmd)+"\n" {
		t.Errorf("wire bytes = %q, want %q", got, string(cmd)+"\n")
	}
}

func TestSendCommandPacesEveryChunk(t *testing.T) {
	delay := 10 * time.Millisecond
	ctl, _ := newTestController(t, "", WithChunkSize(4), WithChunkDelay(delay))

	cmd := []byte("sCL=CLASH1.RAW,CLASH2.RAW") // 26 bytes terminated, 7 chunks
	start := time.Now()
	if err := ctl.SendCommand(cmd); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The pause applies after every chunk, including the last one before
	// the response read.
	if elapsed := time.Since(start); elapsed < 7*delay {
		t.Errorf("oversized command took %v, want at least %v", elapsed, 7*delay)
	}
}

func TestSendCommandShortCommandUnpaced(t *testing.T) {
	ctl, _ := newTestController(t, "", WithChunkDelay(time.Second))

	start := time.Now()
	if err := ctl.SendCommand([]byte("SAVE")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("single-chunk command took %v, want no pacing pause", elapsed)
	}
}

func TestAutoAssignSoundEffects(t *testing.T) {
	listing := "CLASH1.RAW      44100\n" +
		"HUM.RAW         352800\n" +
		"SMOOTHSWINGH1.RAW 88200\n" +
		"SMOOTHSWINGL1.RAW 88200\n" +
		"SWING1.RAW      44100\n" +
		"5 files\x03\n"

	assignments := []string{
		"sON=\n",
		"sOFF=\n",
		"sHUM=HUM.RAW\n",
		"sSW=\n", // SWING1.RAW suppressed by the SmoothSwing files
		"sCL=CLASH1.RAW\n",
		"sSMA=SMOOTHSWINGH1.RAW\n",
		"sSMB=SMOOTHSWINGL1.RAW\n",
	}

	script := readyLine + listing
	var wantWrites strings.Builder
	wantWrites.WriteString("WR?\nLIST?\n")
	for _, a := range assignments {
		script += "OK " + a + "OK SAVE\n"
		wantWrites.WriteString(a + "SAVE\n")
	}

	ctl, ft := newTestController(t, script)
	if err := ctl.AutoAssignSoundEffects(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ft.writes.String(); got != wantWrites.String() {
		t.Errorf("wrote:\n%q\nwant:\n%q", got, wantWrites.String())
	}
}

func TestAutoAssignSoundEffectsCancelled(t *testing.T) {
	listing := "HUM.RAW 352800\n1 file\x03\nOK sON=\nOK SAVE\n"
	ctl, _ := newTestController(t, readyLine+listing)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ctl.AutoAssignSoundEffects(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestCloseIdempotent(t *testing.T) {
	ctl, ft := newTestController(t, "")
	if err := ctl.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := ctl.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if ft.closes != 1 {
		t.Errorf("transport closed %d times, want once", ft.closes)
	}
}
