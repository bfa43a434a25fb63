// Package protocol implements the Polaris Anima ASCII command protocol used
// by OpenCore-based lightsabers.
//
// This package provides functions to compose command strings and parse the
// responses the saber sends back. It performs no I/O; the saber package layers
// the serial exchange on top of it.
//
// # Protocol Overview
//
// The protocol is line oriented. Every command is an ASCII string terminated
// by a single LF byte, and every response is one or more LF-terminated ASCII
// lines:
//
//	Command:  WR?\n
//	Response: OK, Write Ready\n
//
// Query commands end in '?', assignment commands carry '=' followed by a
// payload. A file upload is opened with a WR= header naming the file and its
// exact byte count, after which the raw file bytes follow with no framing.
//
// The firmware has two framing quirks a compatible implementation must
// reproduce:
//
//   - The LIST? response is terminated by an ETX byte (0x03) followed by LF
//     rather than by a plain empty line.
//   - The RD? (config read) response substitutes the literal digit characters
//     '2' and '3' for the STX/ETX control bytes, and its final line carries
//     no LF terminator at all.
//
// # Command Builders
//
// Use the Build* functions to create newline-terminated command strings:
//
//	cmd, err := protocol.BuildSetColorCmd(3, protocol.ChannelClash, 10, 20, 30, 40)
//	// cmd == []byte("F3=10,20,30,40\n")
//
// # Response Parsers
//
// Use the Parse* functions to extract values from response lines:
//
//	free, err := protocol.ParseSpace([]byte("FREE=12582912\n"))
//	files := protocol.ParseFileListing(listing)
package protocol
