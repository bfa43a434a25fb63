package protocol

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// fileEntryPattern matches one well-formed line of the LIST? output: a .RAW
// filename, whitespace, and a decimal size. Header and footer noise around
// the entries does not match and is skipped.
var fileEntryPattern = regexp.MustCompile(`(?m)^(\w+\.RAW)\s+(\d+)$`)

// IsOK reports whether a response line is an acknowledgement.
func IsOK(line []byte) bool {
	return bytes.HasPrefix(line, []byte(RespOKPrefix))
}

// IsListingEnd reports whether line is the final line of a LIST? response,
// terminated by the ETX sentinel followed by LF.
func IsListingEnd(line []byte) bool {
	return bytes.HasSuffix(line, []byte{ETX, '\n'})
}

// ParseFileListing extracts the filename-to-size mapping from the raw LIST?
// output. Malformed lines are silently excluded.
func ParseFileListing(data []byte) map[string]int64 {
	files := make(map[string]int64)
	for _, m := range fileEntryPattern.FindAllSubmatch(data, -1) {
		size, err := strconv.ParseInt(string(m[2]), 10, 64)
		if err != nil {
			continue
		}
		files[string(m[1])] = size
	}
	return files
}

// ParseSpace extracts the byte count from a FREE?/USED?/SIZE? response line.
// The value starts right after the fixed five-character literal prefix
// ("FREE=", "USED=", "SIZE="); the prefix itself is skipped, not parsed.
func ParseSpace(line []byte) (int64, error) {
	s := strings.TrimSpace(string(line))
	if len(s) <= spacePrefixLen {
		return 0, fmt.Errorf("space response too short: %q", s)
	}
	n, err := strconv.ParseInt(s[spacePrefixLen:], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed space response %q: %w", s, err)
	}
	return n, nil
}

// ParseEffectList extracts the sound file list from the response to an
// effect query. The response echoes the command stem:
//
//	sCL=CLASH1.RAW,CLASH2.RAW\n
//
// An empty assignment yields an empty slice.
func ParseEffectList(effect SoundEffect, line []byte) ([]string, error) {
	stem, err := EffectCommand(effect)
	if err != nil {
		return nil, err
	}
	before, after, found := bytes.Cut(line, []byte("="))
	if !found || string(before) != stem {
		return nil, &InvalidResponseError{Command: stem + "?", Response: line}
	}
	payload := strings.TrimSpace(string(after))
	if payload == "" {
		return []string{}, nil
	}
	return strings.Split(payload, ","), nil
}

// TrimConfig strips the '2'/'3' marker characters framing a config read and
// returns the text between them.
func TrimConfig(data []byte) string {
	s := strings.TrimSpace(string(data))
	if len(s) < 2 {
		return ""
	}
	return s[1 : len(s)-1]
}
