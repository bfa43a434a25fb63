package protocol

import "time"

// Serial link parameters for the Anima UART.
const (
	// BaudRate is the fixed UART speed of the Anima serial console.
	BaudRate = 1152000

	// DefaultReadTimeout is the read timeout for ordinary exchanges.
	DefaultReadTimeout = 3 * time.Second

	// EraseReadTimeout is the raised read timeout used while waiting for
	// erase progress. A full erase can take up to two minutes and emits
	// progress bytes at a slow rate.
	EraseReadTimeout = 5 * time.Second
)

// Input buffer limits and pacing.
const (
	// ChunkSize is the largest write the Anima input buffer accepts in one
	// piece. NXT firmware drops bytes beyond this, so longer commands are
	// split into ChunkSize slices.
	ChunkSize = 128

	// ChunkDelay is the pause between chunks of an oversized command.
	ChunkDelay = 500 * time.Millisecond

	// ByteDelay is the inter-byte pacing applied while streaming file data
	// to an NXT. Serial drivers on non-Windows hosts write faster than the
	// NXT UART can buffer.
	ByteDelay = 87 * time.Microsecond

	// FileDelay is the settle time between consecutive file uploads.
	FileDelay = 5 * time.Second
)

// Query commands.
const (
	CmdWriteReady = "WR?"
	CmdVersion    = "V?"
	CmdSerial     = "S?"
	CmdListFiles  = "LIST?"
	CmdFreeSpace  = "FREE?"
	CmdUsedSpace  = "USED?"
	CmdTotalSpace = "SIZE?"
	CmdReadConfig = "RD?config.ini"
)

// Mutating commands.
const (
	CmdEraseAll = "ERASE=ALL"
	CmdSave     = "SAVE"
)

// Response literals and prefixes.
const (
	// RespOKPrefix starts every acknowledgement line.
	RespOKPrefix = "OK"

	// RespWriteReady is the exact reply to WR? on a saber accepting commands.
	RespWriteReady = "OK, Write Ready"

	// RespWriteComplete is the exact reply after a successful file upload.
	RespWriteComplete = "OK, Write Complete"

	// RespSave is the exact reply to SAVE.
	RespSave = "OK SAVE"

	// RespVersionPrefix and RespSerialPrefix start the V? and S? replies.
	RespVersionPrefix = "V="
	RespSerialPrefix  = "S="
)

// VersionPrefixNXT tags firmware versions of the NXT hardware generation.
// Anything else is treated as an EVO.
const VersionPrefixNXT = "NXT_"

// Framing quirks.
const (
	// ETX terminates the LIST? response (followed by LF).
	ETX = 0x03

	// ConfigStartMarker and ConfigEndMarker delimit the RD? response. The
	// firmware sends the ASCII digits '2' and '3' in place of true STX/ETX
	// control bytes.
	ConfigStartMarker = '2'
	ConfigEndMarker   = '3'
)

// Erase progress stream.
const (
	// EraseTickLimit is the first byte value that is NOT a progress tick.
	// While erasing, the saber emits bytes below 'A' (0x41) as ticks; the
	// first byte at or above it starts the completion line.
	EraseTickLimit = 0x41

	// EraseTickTotal is the number of ticks a full erase is expected to
	// emit, used to map ticks onto a percentage.
	EraseTickTotal = 140
)

// spacePrefixLen is the length of the fixed literal prefix ("FREE=",
// "USED=", "SIZE=") preceding the decimal value in a space query response.
const spacePrefixLen = 5

// Bank and color limits.
const (
	// MaxBank is the highest color bank index. The saber stores eight
	// banks, 0 through 7.
	MaxBank = 7
)
