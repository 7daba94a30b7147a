package reaper

import "math"

// ReaperVolumeValue is a volume in REAPER's native linear unit. 1.0 is 0 dB;
// 0.0 is the true minimum, which REAPER treats the same as the -150 dB soft
// floor. There is no hard maximum.
type ReaperVolumeValue float64

const (
	MinVolume      ReaperVolumeValue = 0.0
	Minus150Db     ReaperVolumeValue = 3.1622776601684e-08
	ZeroDbVolume   ReaperVolumeValue = 1.0
	TwelveDbVolume ReaperVolumeValue = 3.981071705535
)

// Db converts to decibels. Values at or below the soft floor clamp to -150.
func (v ReaperVolumeValue) Db() float64 {
	if v <= Minus150Db {
		return -150.0
	}
	return 20 * math.Log10(float64(v))
}

func VolumeFromDb(db float64) ReaperVolumeValue {
	return ReaperVolumeValue(math.Pow(10, db/20))
}

// ReaperPanValue is a pan position between -1 (hard left) and 1 (hard
// right).
type ReaperPanValue float64

const (
	PanLeft   ReaperPanValue = -1.0
	PanCenter ReaperPanValue = 0.0
	PanRight  ReaperPanValue = 1.0
)

// Bpm is a tempo in beats per minute.
type Bpm float64

// PlaybackSpeedFactor is the project play rate. 1.0 is normal speed.
type PlaybackSpeedFactor float64

// NormalizedFxParamValue is an FX parameter value scaled to the unit
// interval.
type NormalizedFxParamValue float64

// Hz is a frequency or sample rate.
type Hz float64

// PositionSeconds is a position on the project timeline.
type PositionSeconds float64

// CommandID identifies an action registered with the host. Zero is never a
// valid id.
type CommandID int32

// MidiInputDeviceID indexes the host's MIDI input devices.
type MidiInputDeviceID int32

// MidiOutputDeviceID indexes the host's MIDI output devices.
type MidiOutputDeviceID int32
