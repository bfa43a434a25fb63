// Package raw handles the local side of OpenCore sound files.
//
// The saber stores audio as headerless PCM files with a fixed naming
// convention: an uppercase base name of bounded length and a .RAW suffix.
// This package validates local files against that convention, derives the
// device-side name for a local path, and builds the ordered upload plan the
// saber package streams from.
//
// # Upload Plan
//
// An upload is deterministic: input paths are sorted by name, and for NXT
// sabers any BEEP.RAW is moved to the end of the list, since NXT firmware
// behaves better when the beep asset is written last:
//
//	plan := raw.NewPlan([]string{"b/HUM.RAW", "a/BEEP.RAW"}, true)
//	// plan sends a/BEEP.RAW last
package raw
