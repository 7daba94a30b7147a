package reaper

import "unsafe"

// Payload types for SurfaceObserver callbacks. Track and item pointers are
// owned by the host and are only guaranteed valid for the duration of the
// callback.

type SetSurfaceVolumeArgs struct {
	Track  *MediaTrack
	Volume ReaperVolumeValue
}

type SetSurfacePanArgs struct {
	Track *MediaTrack
	Pan   ReaperPanValue
}

type SetSurfaceMuteArgs struct {
	Track *MediaTrack
	Mute  bool
}

type SetSurfaceSelectedArgs struct {
	Track    *MediaTrack
	Selected bool
}

type SetSurfaceSoloArgs struct {
	// Track may be the master track, which means "any track soloed".
	Track *MediaTrack
	Solo  bool
}

type SetSurfaceRecArmArgs struct {
	Track *MediaTrack
	Armed bool
}

type SetPlayStateArgs struct {
	Playing   bool
	Paused    bool
	Recording bool
}

type SetRepeatStateArgs struct {
	Enabled bool
}

type SetTrackTitleArgs struct {
	Track *MediaTrack
	Title string
}

type GetTouchStateArgs struct {
	Track     *MediaTrack
	Parameter TouchedParameter
}

type SetAutoModeArgs struct {
	Mode AutomationMode
}

type OnTrackSelectionArgs struct {
	Track *MediaTrack
}

type IsKeyDownArgs struct {
	Key ModKey
}

// ExtendedArgs is the raw form of an extended call that has no typed
// decoding, or whose typed handler returned 0.
type ExtendedArgs struct {
	Call                int32
	Parm1, Parm2, Parm3 unsafe.Pointer
}

type ExtSetInputMonitorArgs struct {
	Track *MediaTrack
	Mode  InputMonitoringMode
}

// ExtSetFxParamArgs is shared by the normal and input FX chain parameter
// events; which chain it is follows from the callback it arrives on.
type ExtSetFxParamArgs struct {
	Track      *MediaTrack
	FxIndex    int32
	ParamIndex int32
	Value      NormalizedFxParamValue
}

type ExtSetFxEnabledArgs struct {
	Track *MediaTrack
	// Location.Chain is IndeterminateFxChain on hosts older than 5.95.
	Location TrackFxLocation
	Enabled  bool
}

type ExtSetSendVolumeArgs struct {
	Track *MediaTrack
	// SendIndex counts hardware output sends first, then track sends.
	SendIndex int32
	Volume    ReaperVolumeValue
}

type ExtSetSendPanArgs struct {
	Track     *MediaTrack
	SendIndex int32
	Pan       ReaperPanValue
}

type ExtSetRecvVolumeArgs struct {
	Track        *MediaTrack
	ReceiveIndex int32
	Volume       ReaperVolumeValue
}

type ExtSetRecvPanArgs struct {
	Track        *MediaTrack
	ReceiveIndex int32
	Pan          ReaperPanValue
}

// Pan is a pan position in one of REAPER's pan laws. Pan carries the
// position for the balance modes and the pan half of stereo pan; Width is
// set for stereo pan only; Left and Right for dual pan only.
type Pan struct {
	Mode  PanMode
	Pan   ReaperPanValue
	Width ReaperPanValue
	Left  ReaperPanValue
	Right ReaperPanValue
}

type ExtSetPanExArgs struct {
	Track *MediaTrack
	Pan   Pan
}

// QualifiedFxLocation names an FX together with its track. OnTake marks take
// FX, located by ItemIndex and FxIndex; otherwise TrackFx locates it, and
// TrackFx.Chain is IndeterminateFxChain on hosts older than 5.95.
type QualifiedFxLocation struct {
	Track     *MediaTrack
	OnTake    bool
	ItemIndex int32
	FxIndex   int32
	TrackFx   TrackFxLocation
}

type ExtSetFocusedFxArgs struct {
	// Location is nil when focus moved away from any FX.
	Location *QualifiedFxLocation
}

type ExtSetLastTouchedFxArgs struct {
	Location *QualifiedFxLocation
}

type ExtSetFxOpenArgs struct {
	Track *MediaTrack
	// Location.Chain is IndeterminateFxChain on hosts older than 5.95.
	Location TrackFxLocation
	Open     bool
}

type ExtSetFxChangeArgs struct {
	Track *MediaTrack
	// Chain is IndeterminateFxChain on hosts older than 5.95, which did not
	// report which chain changed.
	Chain TrackFxChain
}

type ExtSetBpmAndPlayRateArgs struct {
	// Tempo and PlayRate are nil when the respective value did not change.
	Tempo    *Bpm
	PlayRate *PlaybackSpeedFactor
}

type ExtTrackFxPresetChangedArgs struct {
	Track    *MediaTrack
	Location TrackFxLocation
}
