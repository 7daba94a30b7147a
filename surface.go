package reaper

import (
	"unsafe"

	"github.com/n0izn0iz/go-reaper/raw"
)

// SurfaceObserver receives control surface notifications. All methods run on
// the host's main thread. Embed BaseSurfaceObserver and override only the
// events you care about.
//
// The Ext methods return int32 the way the underlying protocol does:
// nonzero means the event was consumed, 0 hands it to Extended as a raw
// event.
type SurfaceObserver interface {
	// TypeString is a short unique identifier (A-Z, 0-9, no spaces). Empty
	// for a surface that should not show up in the preferences list.
	TypeString() string
	DescString() string
	ConfigString() string
	CloseNoReset()
	// Run is called on every main loop cycle, roughly 30 times per second.
	Run()
	SetTrackListChange()
	SetSurfaceVolume(args SetSurfaceVolumeArgs)
	SetSurfacePan(args SetSurfacePanArgs)
	SetSurfaceMute(args SetSurfaceMuteArgs)
	SetSurfaceSelected(args SetSurfaceSelectedArgs)
	SetSurfaceSolo(args SetSurfaceSoloArgs)
	SetSurfaceRecArm(args SetSurfaceRecArmArgs)
	SetPlayState(args SetPlayStateArgs)
	SetRepeatState(args SetRepeatStateArgs)
	SetTrackTitle(args SetTrackTitleArgs)
	// GetTouchState is polled to decide whether touch automation should
	// keep writing. Width is only queried when ExtSupportsExtendedTouch
	// returns 1.
	GetTouchState(args GetTouchStateArgs) bool
	SetAutoMode(args SetAutoModeArgs)
	ResetCachedVolPanStates()
	OnTrackSelection(args OnTrackSelectionArgs)
	IsKeyDown(args IsKeyDownArgs) bool
	// Extended receives calls without a typed decoding, and typed calls
	// whose handler returned 0. Returning 0 means not handled.
	Extended(args ExtendedArgs) int32

	ExtSetInputMonitor(args ExtSetInputMonitorArgs) int32
	ExtSetFxParam(args ExtSetFxParamArgs) int32
	ExtSetFxParamRecFx(args ExtSetFxParamArgs) int32
	ExtSetFxEnabled(args ExtSetFxEnabledArgs) int32
	ExtSetSendVolume(args ExtSetSendVolumeArgs) int32
	ExtSetSendPan(args ExtSetSendPanArgs) int32
	ExtSetRecvVolume(args ExtSetRecvVolumeArgs) int32
	ExtSetRecvPan(args ExtSetRecvPanArgs) int32
	// ExtSetPanEx supersedes SetSurfacePan on hosts that send it; a surface
	// handling it should ignore SetSurfacePan.
	ExtSetPanEx(args ExtSetPanExArgs) int32
	ExtSetFocusedFx(args ExtSetFocusedFxArgs) int32
	ExtSetLastTouchedFx(args ExtSetLastTouchedFxArgs) int32
	ExtSetFxOpen(args ExtSetFxOpenArgs) int32
	ExtSetFxChange(args ExtSetFxChangeArgs) int32
	ExtSetBpmAndPlayRate(args ExtSetBpmAndPlayRateArgs) int32
	ExtTrackFxPresetChanged(args ExtTrackFxPresetChangedArgs) int32
	// ExtSupportsExtendedTouch should return 1 to receive width touch
	// queries in GetTouchState.
	ExtSupportsExtendedTouch() int32
	// ExtReset should clear all surface state; a harder reset than
	// SetTrackListChange.
	ExtReset() int32
	ExtSetProjectMarkerChange() int32
}

// BaseSurfaceObserver implements every SurfaceObserver method as a no-op.
type BaseSurfaceObserver struct{}

var _ SurfaceObserver = BaseSurfaceObserver{}

func (BaseSurfaceObserver) TypeString() string                                  { return "" }
func (BaseSurfaceObserver) DescString() string                                  { return "" }
func (BaseSurfaceObserver) ConfigString() string                                { return "" }
func (BaseSurfaceObserver) CloseNoReset()                                       {}
func (BaseSurfaceObserver) Run()                                                {}
func (BaseSurfaceObserver) SetTrackListChange()                                 {}
func (BaseSurfaceObserver) SetSurfaceVolume(SetSurfaceVolumeArgs)               {}
func (BaseSurfaceObserver) SetSurfacePan(SetSurfacePanArgs)                     {}
func (BaseSurfaceObserver) SetSurfaceMute(SetSurfaceMuteArgs)                   {}
func (BaseSurfaceObserver) SetSurfaceSelected(SetSurfaceSelectedArgs)           {}
func (BaseSurfaceObserver) SetSurfaceSolo(SetSurfaceSoloArgs)                   {}
func (BaseSurfaceObserver) SetSurfaceRecArm(SetSurfaceRecArmArgs)               {}
func (BaseSurfaceObserver) SetPlayState(SetPlayStateArgs)                       {}
func (BaseSurfaceObserver) SetRepeatState(SetRepeatStateArgs)                   {}
func (BaseSurfaceObserver) SetTrackTitle(SetTrackTitleArgs)                     {}
func (BaseSurfaceObserver) GetTouchState(GetTouchStateArgs) bool                { return false }
func (BaseSurfaceObserver) SetAutoMode(SetAutoModeArgs)                         {}
func (BaseSurfaceObserver) ResetCachedVolPanStates()                            {}
func (BaseSurfaceObserver) OnTrackSelection(OnTrackSelectionArgs)               {}
func (BaseSurfaceObserver) IsKeyDown(IsKeyDownArgs) bool                        { return false }
func (BaseSurfaceObserver) Extended(ExtendedArgs) int32                         { return 0 }
func (BaseSurfaceObserver) ExtSetInputMonitor(ExtSetInputMonitorArgs) int32     { return 0 }
func (BaseSurfaceObserver) ExtSetFxParam(ExtSetFxParamArgs) int32               { return 0 }
func (BaseSurfaceObserver) ExtSetFxParamRecFx(ExtSetFxParamArgs) int32          { return 0 }
func (BaseSurfaceObserver) ExtSetFxEnabled(ExtSetFxEnabledArgs) int32           { return 0 }
func (BaseSurfaceObserver) ExtSetSendVolume(ExtSetSendVolumeArgs) int32         { return 0 }
func (BaseSurfaceObserver) ExtSetSendPan(ExtSetSendPanArgs) int32               { return 0 }
func (BaseSurfaceObserver) ExtSetRecvVolume(ExtSetRecvVolumeArgs) int32         { return 0 }
func (BaseSurfaceObserver) ExtSetRecvPan(ExtSetRecvPanArgs) int32               { return 0 }
func (BaseSurfaceObserver) ExtSetPanEx(ExtSetPanExArgs) int32                   { return 0 }
func (BaseSurfaceObserver) ExtSetFocusedFx(ExtSetFocusedFxArgs) int32           { return 0 }
func (BaseSurfaceObserver) ExtSetLastTouchedFx(ExtSetLastTouchedFxArgs) int32   { return 0 }
func (BaseSurfaceObserver) ExtSetFxOpen(ExtSetFxOpenArgs) int32                 { return 0 }
func (BaseSurfaceObserver) ExtSetFxChange(ExtSetFxChangeArgs) int32             { return 0 }
func (BaseSurfaceObserver) ExtSetBpmAndPlayRate(ExtSetBpmAndPlayRateArgs) int32 { return 0 }
func (BaseSurfaceObserver) ExtTrackFxPresetChanged(ExtTrackFxPresetChangedArgs) int32 {
	return 0
}
func (BaseSurfaceObserver) ExtSupportsExtendedTouch() int32  { return 0 }
func (BaseSurfaceObserver) ExtReset() int32                  { return 0 }
func (BaseSurfaceObserver) ExtSetProjectMarkerChange() int32 { return 0 }

var version595 = ParseVersion("5.95")

// SurfaceObserverAdapter turns IReaperControlSurface calls into typed
// observer events. It implements raw.ControlSurface; Session.AddSurface
// takes care of registering it with the host.
//
// Decoding is total: a payload that does not match the expected shape drops
// the event instead of panicking, and calls without a typed decoding go to
// the observer's Extended method.
type SurfaceObserverAdapter struct {
	observer SurfaceObserver

	// Capabilities by host version.
	distinguishesInputFx           bool
	distinguishesInputFxInFxChange bool

	typeString   *raw.Char
	descString   *raw.Char
	configString *raw.Char
}

var _ raw.ControlSurface = (*SurfaceObserverAdapter)(nil)

func NewSurfaceObserverAdapter(obs SurfaceObserver, hostVersion Version) *SurfaceObserverAdapter {
	return &SurfaceObserverAdapter{
		observer:                       obs,
		distinguishesInputFx:           hostVersion.AtLeast(version595),
		distinguishesInputFxInFxChange: hostVersion.AtLeast(version595),
	}
}

// Observer returns the wrapped observer.
func (a *SurfaceObserverAdapter) Observer() SurfaceObserver {
	return a.observer
}

// Close frees the C copies of the surface strings. Only call once the
// surface is no longer registered.
func (a *SurfaceObserverAdapter) Close() {
	for _, slot := range []**raw.Char{&a.typeString, &a.descString, &a.configString} {
		if *slot != nil {
			raw.FreeCString(*slot)
			*slot = nil
		}
	}
}

// The host requires these strings to stay valid after return, so the first
// non-empty value is copied once and kept until Close.
func cachedCString(slot **raw.Char, s string) *raw.Char {
	if s == "" {
		return nil
	}
	if *slot == nil {
		*slot = raw.CString(s)
	}
	return *slot
}

func (a *SurfaceObserverAdapter) GetTypeString() *raw.Char {
	return cachedCString(&a.typeString, a.observer.TypeString())
}

func (a *SurfaceObserverAdapter) GetDescString() *raw.Char {
	return cachedCString(&a.descString, a.observer.DescString())
}

func (a *SurfaceObserverAdapter) GetConfigString() *raw.Char {
	return cachedCString(&a.configString, a.observer.ConfigString())
}

func (a *SurfaceObserverAdapter) CloseNoReset() {
	a.observer.CloseNoReset()
}

func (a *SurfaceObserverAdapter) Run() {
	a.observer.Run()
}

func (a *SurfaceObserverAdapter) SetTrackListChange() {
	a.observer.SetTrackListChange()
}

func (a *SurfaceObserverAdapter) SetSurfaceVolume(track *raw.MediaTrack, volume float64) {
	if track == nil {
		return
	}
	a.observer.SetSurfaceVolume(SetSurfaceVolumeArgs{Track: track, Volume: ReaperVolumeValue(volume)})
}

func (a *SurfaceObserverAdapter) SetSurfacePan(track *raw.MediaTrack, pan float64) {
	if track == nil {
		return
	}
	a.observer.SetSurfacePan(SetSurfacePanArgs{Track: track, Pan: ReaperPanValue(pan)})
}

func (a *SurfaceObserverAdapter) SetSurfaceMute(track *raw.MediaTrack, mute bool) {
	if track == nil {
		return
	}
	a.observer.SetSurfaceMute(SetSurfaceMuteArgs{Track: track, Mute: mute})
}

func (a *SurfaceObserverAdapter) SetSurfaceSelected(track *raw.MediaTrack, selected bool) {
	if track == nil {
		return
	}
	a.observer.SetSurfaceSelected(SetSurfaceSelectedArgs{Track: track, Selected: selected})
}

func (a *SurfaceObserverAdapter) SetSurfaceSolo(track *raw.MediaTrack, solo bool) {
	if track == nil {
		return
	}
	a.observer.SetSurfaceSolo(SetSurfaceSoloArgs{Track: track, Solo: solo})
}

func (a *SurfaceObserverAdapter) SetSurfaceRecArm(track *raw.MediaTrack, recarm bool) {
	if track == nil {
		return
	}
	a.observer.SetSurfaceRecArm(SetSurfaceRecArmArgs{Track: track, Armed: recarm})
}

func (a *SurfaceObserverAdapter) SetPlayState(play, pause, rec bool) {
	a.observer.SetPlayState(SetPlayStateArgs{Playing: play, Paused: pause, Recording: rec})
}

func (a *SurfaceObserverAdapter) SetRepeatState(rep bool) {
	a.observer.SetRepeatState(SetRepeatStateArgs{Enabled: rep})
}

func (a *SurfaceObserverAdapter) SetTrackTitle(track *raw.MediaTrack, title *raw.Char) {
	if track == nil {
		return
	}
	a.observer.SetTrackTitle(SetTrackTitleArgs{Track: track, Title: raw.GoString(title)})
}

func (a *SurfaceObserverAdapter) GetTouchState(track *raw.MediaTrack, isPan int32) bool {
	if track == nil {
		return false
	}
	return a.observer.GetTouchState(GetTouchStateArgs{Track: track, Parameter: TouchedParameter(isPan)})
}

func (a *SurfaceObserverAdapter) SetAutoMode(mode int32) {
	a.observer.SetAutoMode(SetAutoModeArgs{Mode: AutomationMode(mode)})
}

func (a *SurfaceObserverAdapter) ResetCachedVolPanStates() {
	a.observer.ResetCachedVolPanStates()
}

func (a *SurfaceObserverAdapter) OnTrackSelection(track *raw.MediaTrack) {
	if track == nil {
		return
	}
	a.observer.OnTrackSelection(OnTrackSelectionArgs{Track: track})
}

func (a *SurfaceObserverAdapter) IsKeyDown(key int32) bool {
	return a.observer.IsKeyDown(IsKeyDownArgs{Key: ModKey(key)})
}

func (a *SurfaceObserverAdapter) Extended(call int32, parm1, parm2, parm3 unsafe.Pointer) int32 {
	res, outcome := a.dispatchExtended(call, parm1, parm2, parm3)
	switch outcome {
	case extMalformed:
		return 0
	case extDecoded:
		if res != 0 {
			return res
		}
	}
	return a.observer.Extended(ExtendedArgs{Call: call, Parm1: parm1, Parm2: parm2, Parm3: parm3})
}

type extOutcome int

const (
	extUnknown extOutcome = iota
	extDecoded
	extMalformed
)

func (a *SurfaceObserverAdapter) dispatchExtended(call int32, parm1, parm2, parm3 unsafe.Pointer) (int32, extOutcome) {
	switch call {
	case raw.CSURF_EXT_SETINPUTMONITOR:
		track := (*MediaTrack)(parm1)
		mode, ok := derefInt32(parm2)
		if track == nil || !ok {
			return 0, extMalformed
		}
		return a.observer.ExtSetInputMonitor(ExtSetInputMonitorArgs{
			Track: track,
			Mode:  InputMonitoringMode(mode),
		}), extDecoded

	case raw.CSURF_EXT_SETFXPARAM, raw.CSURF_EXT_SETFXPARAM_RECFX:
		track := (*MediaTrack)(parm1)
		combined, ok1 := derefInt32(parm2)
		value, ok2 := derefFloat64(parm3)
		if track == nil || !ok1 || !ok2 {
			return 0, extMalformed
		}
		args := ExtSetFxParamArgs{
			Track:      track,
			FxIndex:    (combined >> 16) & 0xffff,
			ParamIndex: combined & 0xffff,
			Value:      NormalizedFxParamValue(value),
		}
		if call == raw.CSURF_EXT_SETFXPARAM {
			return a.observer.ExtSetFxParam(args), extDecoded
		}
		return a.observer.ExtSetFxParamRecFx(args), extDecoded

	case raw.CSURF_EXT_SETFOCUSEDFX:
		loc, ok := a.qualifiedFxLocation(parm1, parm2, parm3)
		if !ok {
			return 0, extMalformed
		}
		return a.observer.ExtSetFocusedFx(ExtSetFocusedFxArgs{Location: loc}), extDecoded

	case raw.CSURF_EXT_SETLASTTOUCHEDFX:
		loc, ok := a.qualifiedFxLocation(parm1, parm2, parm3)
		if !ok {
			return 0, extMalformed
		}
		return a.observer.ExtSetLastTouchedFx(ExtSetLastTouchedFxArgs{Location: loc}), extDecoded

	case raw.CSURF_EXT_SETFXOPEN:
		track := (*MediaTrack)(parm1)
		idx, ok := derefInt32(parm2)
		if track == nil || !ok {
			return 0, extMalformed
		}
		return a.observer.ExtSetFxOpen(ExtSetFxOpenArgs{
			Track:    track,
			Location: a.versionDependentFxLocation(idx),
			Open:     parm3 != nil,
		}), extDecoded

	case raw.CSURF_EXT_SETFXENABLED:
		track := (*MediaTrack)(parm1)
		if track == nil {
			// Happens in the wild; nothing meaningful to decode.
			return 0, extDecoded
		}
		idx, ok := derefInt32(parm2)
		if !ok {
			return 0, extMalformed
		}
		return a.observer.ExtSetFxEnabled(ExtSetFxEnabledArgs{
			Track:    track,
			Location: a.versionDependentFxLocation(idx),
			Enabled:  parm3 != nil,
		}), extDecoded

	case raw.CSURF_EXT_SETSENDVOLUME:
		track := (*MediaTrack)(parm1)
		idx, ok1 := derefInt32(parm2)
		vol, ok2 := derefFloat64(parm3)
		if track == nil || !ok1 || !ok2 {
			return 0, extMalformed
		}
		return a.observer.ExtSetSendVolume(ExtSetSendVolumeArgs{
			Track:     track,
			SendIndex: idx,
			Volume:    ReaperVolumeValue(vol),
		}), extDecoded

	case raw.CSURF_EXT_SETSENDPAN:
		track := (*MediaTrack)(parm1)
		idx, ok1 := derefInt32(parm2)
		pan, ok2 := derefFloat64(parm3)
		if track == nil || !ok1 || !ok2 {
			return 0, extMalformed
		}
		return a.observer.ExtSetSendPan(ExtSetSendPanArgs{
			Track:     track,
			SendIndex: idx,
			Pan:       ReaperPanValue(pan),
		}), extDecoded

	case raw.CSURF_EXT_SETRECVVOLUME:
		track := (*MediaTrack)(parm1)
		idx, ok1 := derefInt32(parm2)
		vol, ok2 := derefFloat64(parm3)
		if track == nil || !ok1 || !ok2 {
			return 0, extMalformed
		}
		return a.observer.ExtSetRecvVolume(ExtSetRecvVolumeArgs{
			Track:        track,
			ReceiveIndex: idx,
			Volume:       ReaperVolumeValue(vol),
		}), extDecoded

	case raw.CSURF_EXT_SETRECVPAN:
		track := (*MediaTrack)(parm1)
		idx, ok1 := derefInt32(parm2)
		pan, ok2 := derefFloat64(parm3)
		if track == nil || !ok1 || !ok2 {
			return 0, extMalformed
		}
		return a.observer.ExtSetRecvPan(ExtSetRecvPanArgs{
			Track:        track,
			ReceiveIndex: idx,
			Pan:          ReaperPanValue(pan),
		}), extDecoded

	case raw.CSURF_EXT_SETPAN_EX:
		track := (*MediaTrack)(parm1)
		mode, ok := derefInt32(parm3)
		if track == nil || !ok {
			return 0, extMalformed
		}
		pan, ok := decodePan(PanMode(mode), parm2)
		if !ok {
			return 0, extMalformed
		}
		return a.observer.ExtSetPanEx(ExtSetPanExArgs{Track: track, Pan: pan}), extDecoded

	case raw.CSURF_EXT_SETFXCHANGE:
		track := (*MediaTrack)(parm1)
		if track == nil {
			return 0, extMalformed
		}
		chain := IndeterminateFxChain
		if a.distinguishesInputFxInFxChange {
			// The flag rides in the pointer value itself.
			if uintptr(parm2)&1 == 1 {
				chain = InputFxChain
			} else {
				chain = NormalFxChain
			}
		}
		return a.observer.ExtSetFxChange(ExtSetFxChangeArgs{Track: track, Chain: chain}), extDecoded

	case raw.CSURF_EXT_SETBPMANDPLAYRATE:
		var args ExtSetBpmAndPlayRateArgs
		if v, ok := derefFloat64(parm1); ok {
			tempo := Bpm(v)
			args.Tempo = &tempo
		}
		if v, ok := derefFloat64(parm2); ok {
			rate := PlaybackSpeedFactor(v)
			args.PlayRate = &rate
		}
		return a.observer.ExtSetBpmAndPlayRate(args), extDecoded

	case raw.CSURF_EXT_TRACKFX_PRESET_CHANGED:
		track := (*MediaTrack)(parm1)
		idx, ok := derefInt32(parm2)
		if track == nil || !ok {
			return 0, extMalformed
		}
		return a.observer.ExtTrackFxPresetChanged(ExtTrackFxPresetChangedArgs{
			Track:    track,
			Location: TrackFxLocationFromRaw(idx),
		}), extDecoded

	case raw.CSURF_EXT_SUPPORTS_EXTENDED_TOUCH:
		return a.observer.ExtSupportsExtendedTouch(), extDecoded

	case raw.CSURF_EXT_RESET:
		return a.observer.ExtReset(), extDecoded

	case raw.CSURF_EXT_SETPROJECTMARKERCHANGE:
		return a.observer.ExtSetProjectMarkerChange(), extDecoded

	default:
		return 0, extUnknown
	}
}

// qualifiedFxLocation decodes the (track, item index ptr, fx index ptr)
// triple of the focused/last-touched FX events. A nil track is valid and
// means "no FX"; a nil index pointer where one is required is malformed.
func (a *SurfaceObserverAdapter) qualifiedFxLocation(parm1, parm2, parm3 unsafe.Pointer) (*QualifiedFxLocation, bool) {
	track := (*MediaTrack)(parm1)
	if track == nil {
		return nil, true
	}
	fxIdx, ok := derefInt32(parm3)
	if !ok {
		return nil, false
	}
	if parm2 == nil {
		return &QualifiedFxLocation{
			Track:   track,
			TrackFx: a.versionDependentFxLocation(fxIdx),
		}, true
	}
	itemIdx, _ := derefInt32(parm2)
	return &QualifiedFxLocation{
		Track:     track,
		OnTake:    true,
		ItemIndex: itemIdx,
		FxIndex:   fxIdx,
	}, true
}

func (a *SurfaceObserverAdapter) versionDependentFxLocation(idx int32) TrackFxLocation {
	if a.distinguishesInputFx {
		return TrackFxLocationFromRaw(idx)
	}
	return TrackFxLocation{Chain: IndeterminateFxChain, Index: idx}
}

func decodePan(mode PanMode, parm2 unsafe.Pointer) (Pan, bool) {
	pan := Pan{Mode: mode}
	switch mode {
	case PanModeBalanceV1, PanModeBalanceV4:
		v, ok := derefFloat64(parm2)
		if !ok {
			return Pan{}, false
		}
		pan.Pan = ReaperPanValue(v)
	case PanModeStereoPan:
		v, ok := derefFloat64(parm2)
		if !ok {
			return Pan{}, false
		}
		w, ok := derefFloat64(unsafe.Pointer(uintptr(parm2) + 8))
		if !ok {
			return Pan{}, false
		}
		pan.Pan = ReaperPanValue(v)
		pan.Width = ReaperPanValue(w)
	case PanModeDualPan:
		l, ok := derefFloat64(parm2)
		if !ok {
			return Pan{}, false
		}
		r, ok := derefFloat64(unsafe.Pointer(uintptr(parm2) + 8))
		if !ok {
			return Pan{}, false
		}
		pan.Left = ReaperPanValue(l)
		pan.Right = ReaperPanValue(r)
	}
	return pan, true
}

func derefInt32(p unsafe.Pointer) (int32, bool) {
	if p == nil {
		return 0, false
	}
	return *(*int32)(p), true
}

func derefFloat64(p unsafe.Pointer) (float64, bool) {
	if p == nil {
		return 0, false
	}
	return *(*float64)(p), true
}
