package protocol

// SoundEffect identifies one of the seven fixed sound-trigger categories the
// saber plays audio for.
type SoundEffect string

// The closed set of effect kinds. Any other value is rejected with
// InvalidSoundEffectError at the protocol boundary.
const (
	EffectOn           SoundEffect = "on"
	EffectOff          SoundEffect = "off"
	EffectHum          SoundEffect = "hum"
	EffectSwing        SoundEffect = "swing"
	EffectClash        SoundEffect = "clash"
	EffectSmoothSwingA SoundEffect = "smoothSwingA"
	EffectSmoothSwingB SoundEffect = "smoothSwingB"
)

// effectCommands maps each effect kind to its wire-command stem. The caller
// appends '?' to query or '=' plus a file list to assign.
var effectCommands = map[SoundEffect]string{
	EffectOn:           "sON",
	EffectOff:          "sOFF",
	EffectHum:          "sHUM",
	EffectSwing:        "sSW",
	EffectClash:        "sCL",
	EffectSmoothSwingA: "sSMA",
	EffectSmoothSwingB: "sSMB",
}

// effectFilePrefixes maps each effect kind to the device-side filename prefix
// used by automatic assignment.
var effectFilePrefixes = map[SoundEffect]string{
	EffectOn:           "POWERON",
	EffectOff:          "POWEROFF",
	EffectHum:          "HUM",
	EffectSwing:        "SWING",
	EffectClash:        "CLASH",
	EffectSmoothSwingA: "SMOOTHSWINGH",
	EffectSmoothSwingB: "SMOOTHSWINGL",
}

// Effects returns all effect kinds in a stable order.
func Effects() []SoundEffect {
	return []SoundEffect{
		EffectOn,
		EffectOff,
		EffectHum,
		EffectSwing,
		EffectClash,
		EffectSmoothSwingA,
		EffectSmoothSwingB,
	}
}

// EffectCommand returns the wire-command stem for the given effect kind.
func EffectCommand(effect SoundEffect) (string, error) {
	cmd, ok := effectCommands[effect]
	if !ok {
		return "", &InvalidSoundEffectError{Effect: string(effect)}
	}
	return cmd, nil
}

// EffectFilePrefix returns the filename prefix the default naming scheme uses
// for sounds of the given effect kind.
func EffectFilePrefix(effect SoundEffect) (string, error) {
	prefix, ok := effectFilePrefixes[effect]
	if !ok {
		return "", &InvalidSoundEffectError{Effect: string(effect)}
	}
	return prefix, nil
}

// ColorChannel identifies which of the three per-bank color settings a
// command addresses.
type ColorChannel string

// The three color channels stored in every bank.
const (
	ChannelColor ColorChannel = "color"
	ChannelClash ColorChannel = "clash"
	ChannelSwing ColorChannel = "swing"
)

// channelCommands maps each channel to its one-letter command prefix.
var channelCommands = map[ColorChannel]byte{
	ChannelColor: 'C',
	ChannelClash: 'F',
	ChannelSwing: 'W',
}

// ChannelCommand returns the one-letter command prefix for the given channel.
func ChannelCommand(channel ColorChannel) (byte, error) {
	cmd, ok := channelCommands[channel]
	if !ok {
		return 0, &InvalidColorChannelError{Channel: string(channel)}
	}
	return cmd, nil
}
