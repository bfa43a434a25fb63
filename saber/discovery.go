package saber

import (
	"fmt"
	"strings"

	"go.bug.st/serial/enumerator"
)

// USB identifiers of the two supported hardware generations.
var saberIDs = []struct{ vid, pid string }{
	{"16C0", "0483"}, // EVO
	{"0483", "5740"}, // NXT
}

// Port describes a serial port with a saber attached.
type Port struct {
	// Name is the system device path or name (e.g. /dev/ttyACM0, COM3)
	Name string

	// VID and PID are the USB vendor and product IDs, upper-case hex
	VID string
	PID string
}

// SaberPorts enumerates system serial ports and returns those whose USB
// vendor:product ID matches a supported saber. Matching USB IDs is the sole
// admission filter; no protocol probing is performed, so discovery cannot be
// tripped up by a saber that is slow to answer. Ports with unreadable or
// ambiguous IDs are excluded, not retried.
func SaberPorts() ([]Port, error) {
	details, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, fmt.Errorf("enumerate serial ports: %w", err)
	}

	var ports []Port
	for _, d := range details {
		if !d.IsUSB || !isSaberID(d.VID, d.PID) {
			continue
		}
		ports = append(ports, Port{
			Name: d.Name,
			VID:  strings.ToUpper(d.VID),
			PID:  strings.ToUpper(d.PID),
		})
	}
	return ports, nil
}

// PortIsSaber reports whether the named port has a saber attached, by USB ID.
// It never returns an error; any enumeration failure resolves to false so
// discovery can keep scanning candidates.
func PortIsSaber(name string) bool {
	details, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return false
	}
	for _, d := range details {
		if d.Name == name {
			return d.IsUSB && isSaberID(d.VID, d.PID)
		}
	}
	return false
}

func isSaberID(vid, pid string) bool {
	for _, id := range saberIDs {
		if strings.EqualFold(vid, id.vid) && strings.EqualFold(pid, id.pid) {
			return true
		}
	}
	return false
}
