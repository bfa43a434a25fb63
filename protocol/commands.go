package protocol

import (
	"fmt"
	"strconv"
	"strings"
)

// Terminate appends the LF terminator to cmd if it is not already present.
// The returned slice may share storage with cmd.
func Terminate(cmd []byte) []byte {
	if len(cmd) > 0 && cmd[len(cmd)-1] == '\n' {
		return cmd
	}
	return append(cmd, '\n')
}

// Chunks splits a terminated command into size-byte slices for pacing through
// the saber's input buffer. Commands that fit in a single chunk are returned
// as one slice.
func Chunks(cmd []byte, size int) [][]byte {
	if size <= 0 || len(cmd) <= size {
		return [][]byte{cmd}
	}
	chunks := make([][]byte, 0, (len(cmd)+size-1)/size)
	for pos := 0; pos < len(cmd); pos += size {
		end := pos + size
		if end > len(cmd) {
			end = len(cmd)
		}
		chunks = append(chunks, cmd[pos:end])
	}
	return chunks
}

// rgbwValue renders an RGBW tuple as the comma-separated decimal form the
// saber expects. The byte type bounds each component to 0-255.
func rgbwValue(r, g, b, w byte) string {
	return strconv.Itoa(int(r)) + "," + strconv.Itoa(int(g)) + "," +
		strconv.Itoa(int(b)) + "," + strconv.Itoa(int(w))
}

// BuildPreviewColorCmd constructs a P= command that lights the blade with the
// given color without storing it.
//
//	P=10,20,30,40\n
func BuildPreviewColorCmd(r, g, b, w byte) []byte {
	return []byte("P=" + rgbwValue(r, g, b, w) + "\n")
}

// BuildSetColorCmd constructs a command that stores an RGBW tuple for one
// channel of one bank.
//
//	C<bank>=r,g,b,w\n   (color)
//	F<bank>=r,g,b,w\n   (clash)
//	W<bank>=r,g,b,w\n   (swing)
//
// Returns an error if the bank is out of range or the channel is unknown.
func BuildSetColorCmd(bank int, channel ColorChannel, r, g, b, w byte) ([]byte, error) {
	if bank < 0 || bank > MaxBank {
		return nil, fmt.Errorf("bank must be 0-%d, got %d", MaxBank, bank)
	}
	prefix, err := ChannelCommand(channel)
	if err != nil {
		return nil, err
	}
	cmd := string(prefix) + strconv.Itoa(bank) + "=" + rgbwValue(r, g, b, w) + "\n"
	return []byte(cmd), nil
}

// BuildSetActiveBankCmd constructs a B= command selecting the active bank.
func BuildSetActiveBankCmd(bank int) ([]byte, error) {
	if bank < 0 || bank > MaxBank {
		return nil, fmt.Errorf("bank must be 0-%d, got %d", MaxBank, bank)
	}
	return []byte("B=" + strconv.Itoa(bank) + "\n"), nil
}

// BuildSetSoundsCmd constructs the assignment command for an effect's sound
// list. Order within the list is playback precedence and is preserved.
//
//	sCL=CLASH1.RAW,CLASH2.RAW\n
//
// The payload can exceed ChunkSize for long file lists; callers are expected
// to write the result through a chunking send path.
func BuildSetSoundsCmd(effect SoundEffect, files []string) ([]byte, error) {
	stem, err := EffectCommand(effect)
	if err != nil {
		return nil, err
	}
	return []byte(stem + "=" + strings.Join(files, ",") + "\n"), nil
}

// BuildGetSoundsCmd constructs the query command for an effect's sound list.
func BuildGetSoundsCmd(effect SoundEffect) ([]byte, error) {
	stem, err := EffectCommand(effect)
	if err != nil {
		return nil, err
	}
	return []byte(stem + "?\n"), nil
}

// BuildWriteFileCmd constructs the WR= header that opens a file upload. The
// size must equal the number of raw bytes streamed immediately after the
// header, or the device-side write fails.
//
//	WR=HUM.RAW, 44100\n
func BuildWriteFileCmd(name string, size int64) []byte {
	return []byte("WR=" + name + ", " + strconv.FormatInt(size, 10) + "\n")
}
