// Package saber provides a high-level API for controlling OpenCore-based
// lightsabers (Polaris Anima EVO and NXT) over their USB-serial console.
//
// # Overview
//
// This package drives the complete saber workflow:
//   - Discovering attached sabers by USB vendor:product ID
//   - Querying firmware version, serial number, file listing and flash space
//   - Uploading RAW sound files with per-generation pacing
//   - Erasing the flash with progress reporting
//   - Configuring color banks and sound-effect assignments
//
// # Basic Usage
//
// Connect to the first attached saber and read its identity:
//
//	ctl, err := saber.Connect()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ctl.Close()
//
//	info, err := ctl.GetInfo()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("firmware %s, serial %s\n", info.Version, info.SerialNumber)
//
// # Uploading Sound Files
//
// Uploads are sequential, paced to the hardware generation, and report
// progress through a callback:
//
//	ctl, err := saber.Connect(
//	    saber.WithProgressCallback(func(p saber.Progress) {
//	        fmt.Printf("%s %.1f%%\n", p.File, p.Percentage)
//	    }),
//	)
//	...
//	err = ctl.UploadFiles(ctx, []string{"HUM.RAW", "CLASH1.RAW"}, true)
//
// # Concurrency
//
// The protocol has no multiplexing: one command is in flight at a time and
// every operation blocks until its terminal response or a read timeout. A
// Controller must not be shared between goroutines, and its Transport is
// exclusively owned. Long operations accept a context checked between
// protocol steps; cancellation never interrupts an opened byte stream,
// because the saber expects the full declared byte count once a write is
// opened.
//
// # Error Handling
//
// The package provides structured error types:
//   - ErrDeviceNotFound: no port with a matching USB ID
//   - ErrNotReady: saber present but not accepting commands
//   - NotEnoughSpaceError: a file does not fit in free flash
//   - WriteError: the saber reported a failed write
//   - protocol.InvalidResponseError: unexpected payload in an exchange
//   - protocol.InvalidSoundEffectError: effect kind outside the fixed set
//
// # Hardware Independence
//
// Serial I/O goes through the Transport interface, which go.bug.st/serial
// ports satisfy directly. Tests and simulations inject their own Transport
// via WithTransport.
package saber
