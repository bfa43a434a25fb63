package protocol

import "fmt"

// InvalidResponseError indicates a well-formed exchange whose payload did not
// match what the command expects. It carries the command and the literal
// response for diagnostics.
type InvalidResponseError struct {
	// Command is the command that was sent, without its LF terminator
	Command string

	// Response is the raw line the saber answered with
	Response []byte
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("invalid saber response to %q: %q", e.Command, e.Response)
}

// InvalidSoundEffectError indicates an effect kind outside the closed set of
// seven the saber supports.
type InvalidSoundEffectError struct {
	Effect string
}

func (e *InvalidSoundEffectError) Error() string {
	return fmt.Sprintf("invalid sound effect %q", e.Effect)
}

// InvalidColorChannelError indicates a color channel other than color, clash
// or swing.
type InvalidColorChannelError struct {
	Channel string
}

func (e *InvalidColorChannelError) Error() string {
	return fmt.Sprintf("invalid color channel %q", e.Channel)
}
