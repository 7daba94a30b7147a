package reaper

// InputMonitoringMode is how a track's record input is monitored. Raw values
// outside the known set pass through unchanged.
type InputMonitoringMode int32

const (
	MonitoringOff            InputMonitoringMode = 0
	MonitoringNormal         InputMonitoringMode = 1
	MonitoringNotWhenPlaying InputMonitoringMode = 2
)

// AutomationMode is a track automation mode.
type AutomationMode int32

const (
	AutomationTrimRead     AutomationMode = 0
	AutomationRead         AutomationMode = 1
	AutomationTouch        AutomationMode = 2
	AutomationWrite        AutomationMode = 3
	AutomationLatch        AutomationMode = 4
	AutomationLatchPreview AutomationMode = 5
)

// PanMode selects the track pan law. The raw values are not contiguous.
type PanMode int32

const (
	PanModeBalanceV1 PanMode = 0
	PanModeBalanceV4 PanMode = 3
	PanModeStereoPan PanMode = 5
	PanModeDualPan   PanMode = 6
)

// TouchedParameter is the parameter a touch state query refers to. Width is
// only queried when the surface announces extended touch support.
type TouchedParameter int32

const (
	TouchedVolume TouchedParameter = 0
	TouchedPan    TouchedParameter = 1
	TouchedWidth  TouchedParameter = 2
)

// TrackFxChain names the chain an FX index refers to.
type TrackFxChain int32

const (
	NormalFxChain TrackFxChain = iota
	// InputFxChain is the record input chain; on the master track it is the
	// monitoring chain.
	InputFxChain
	// IndeterminateFxChain marks indexes from hosts older than 5.95, where
	// track and input FX shared a single index namespace.
	IndeterminateFxChain
	// InvalidFxChain marks raw values outside any known encoding.
	InvalidFxChain
)

// TrackFxLocation is the position of an FX on an already-known track. Not a
// stable identifier; it changes when FX are reordered.
type TrackFxLocation struct {
	Chain TrackFxChain
	Index int32
}

const inputFxIndexOffset = 0x1000000

// TrackFxLocationFromRaw decodes the index encoding used across the control
// surface protocol: input FX chain indexes carry a 0x1000000 offset.
func TrackFxLocationFromRaw(v int32) TrackFxLocation {
	switch {
	case v < 0:
		return TrackFxLocation{Chain: InvalidFxChain, Index: v}
	case v >= inputFxIndexOffset:
		return TrackFxLocation{Chain: InputFxChain, Index: v - inputFxIndexOffset}
	default:
		return TrackFxLocation{Chain: NormalFxChain, Index: v}
	}
}

// Raw converts back to the wire encoding. Indeterminate and invalid
// locations return the index unchanged.
func (l TrackFxLocation) Raw() int32 {
	if l.Chain == InputFxChain {
		return l.Index + inputFxIndexOffset
	}
	return l.Index
}

// PlayState is the transport state bit set from GetPlayState.
type PlayState int32

const (
	PlayStatePlaying   PlayState = 1
	PlayStatePaused    PlayState = 2
	PlayStateRecording PlayState = 4
)

func (s PlayState) IsPlaying() bool { return s&PlayStatePlaying != 0 }

func (s PlayState) IsPaused() bool { return s&PlayStatePaused != 0 }

func (s PlayState) IsRecording() bool { return s&PlayStateRecording != 0 }

// ModKey is a modifier key in Windows virtual-key encoding, which REAPER
// uses on every platform.
type ModKey int32

const (
	ModKeyShift   ModKey = 0x10
	ModKeyControl ModKey = 0x11
	ModKeyMenu    ModKey = 0x12
)

// UndoFlags scope an undo block. Combine with bitwise or.
type UndoFlags int32

const (
	UndoStateTrackCfg UndoFlags = 1
	UndoStateFx       UndoFlags = 2
	UndoStateItems    UndoFlags = 4
	UndoStateMiscCfg  UndoFlags = 8
	// UndoStateAll is 0xFFFFFFFF on the wire, every scope bit set.
	UndoStateAll UndoFlags = -1
)
