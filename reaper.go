package reaper

import (
	"unsafe"

	"github.com/n0izn0iz/go-reaper/raw"
)

// Reaper is the typed view of a loaded host. Unless a method says otherwise
// it must be called from the main thread and panics when it is not; the
// check compares OS thread identities and never calls into the host.
type Reaper struct {
	fns *raw.Functions
	ctx *raw.PluginContext
}

// New resolves the function table through the context and wraps it. Call it
// from the entry point, on the thread the host loaded the plugin on.
func New(ctx *raw.PluginContext) *Reaper {
	return &Reaper{fns: raw.LoadFunctions(ctx), ctx: ctx}
}

// NewWithFunctions wraps an explicit function table, mainly for tools and
// tests that resolve pointers themselves.
func NewWithFunctions(ctx *raw.PluginContext, fns *raw.Functions) *Reaper {
	return &Reaper{fns: fns, ctx: ctx}
}

// Context returns the plugin context this wrapper was built from.
func (r *Reaper) Context() *raw.PluginContext { return r.ctx }

// Functions exposes the underlying raw table for calls this layer does not
// cover.
func (r *Reaper) Functions() *raw.Functions { return r.fns }

// IsInMainThread reports whether the caller runs on the thread the plugin
// was loaded on. Callable from any thread.
func (r *Reaper) IsInMainThread() bool { return r.ctx.IsInMainThread() }

func (r *Reaper) requireMainThread(op string) {
	if !r.ctx.IsInMainThread() {
		panic(op + " called outside the main thread")
	}
}

// Version parses the host version string, e.g. "6.80/x64".
func (r *Reaper) Version() Version {
	r.requireMainThread("GetAppVersion")
	return ParseVersion(raw.GoString(r.fns.GetAppVersion()))
}

// ShowConsoleMsg appends msg to the ReaScript console window.
func (r *Reaper) ShowConsoleMsg(msg string) {
	r.requireMainThread("ShowConsoleMsg")
	c := raw.CString(msg)
	defer raw.FreeCString(c)
	r.fns.ShowConsoleMsg(c)
}

// MainHwnd returns the host's main window handle.
func (r *Reaper) MainHwnd() HWND {
	r.requireMainThread("GetMainHwnd")
	return r.fns.GetMainHwnd()
}

// CountTracks counts the tracks of proj, master excluded. nil means the
// current project.
func (r *Reaper) CountTracks(proj *ReaProject) int32 {
	r.requireMainThread("CountTracks")
	return r.fns.CountTracks(proj)
}

// Track returns the idx-th track of proj, nil when out of range.
func (r *Reaper) Track(proj *ReaProject, idx int32) *MediaTrack {
	r.requireMainThread("GetTrack")
	return r.fns.GetTrack(proj, idx)
}

func (r *Reaper) MasterTrack(proj *ReaProject) *MediaTrack {
	r.requireMainThread("GetMasterTrack")
	return r.fns.GetMasterTrack(proj)
}

// TrackName returns the track name, "MASTER" for the master track. ok is
// false when the host rejects the track.
func (r *Reaper) TrackName(track *MediaTrack) (name string, ok bool) {
	r.requireMainThread("GetTrackName")
	const bufLen = 512
	buf := raw.AllocCharBuf(bufLen)
	defer raw.FreeCString(buf)
	if !r.fns.GetTrackName(track, buf, bufLen) {
		return "", false
	}
	return raw.GoString(buf), true
}

func (r *Reaper) PlayState() PlayState {
	r.requireMainThread("GetPlayState")
	return PlayState(r.fns.GetPlayState())
}

// PlayPosition is the latency-compensated actual-what-you-hear position.
func (r *Reaper) PlayPosition() PositionSeconds {
	r.requireMainThread("GetPlayPosition")
	return PositionSeconds(r.fns.GetPlayPosition())
}

func (r *Reaper) MasterTempo() Bpm {
	r.requireMainThread("Master_GetTempo")
	return Bpm(r.fns.Master_GetTempo())
}

// ValidatePtr2 asks the host whether pointer is still a live object of the
// given SDK type name, e.g. "MediaTrack*".
func (r *Reaper) ValidatePtr2(proj *ReaProject, pointer unsafe.Pointer, typeName string) bool {
	r.requireMainThread("ValidatePtr2")
	c := raw.CString(typeName)
	defer raw.FreeCString(c)
	return r.fns.ValidatePtr2(proj, pointer, c)
}

// ValidateTrack reports whether track is still alive in proj.
func (r *Reaper) ValidateTrack(proj *ReaProject, track *MediaTrack) bool {
	return r.ValidatePtr2(proj, unsafe.Pointer(track), "MediaTrack*")
}

// CSurfOnVolumeChangeEx changes the track volume as if moved from a
// surface, honoring grouping when allowGang is set. Returns the value
// actually applied.
func (r *Reaper) CSurfOnVolumeChangeEx(track *MediaTrack, volume ReaperVolumeValue, relative, allowGang bool) ReaperVolumeValue {
	r.requireMainThread("CSurf_OnVolumeChangeEx")
	return ReaperVolumeValue(r.fns.CSurf_OnVolumeChangeEx(track, float64(volume), relative, allowGang))
}

func (r *Reaper) CSurfOnPanChangeEx(track *MediaTrack, pan ReaperPanValue, relative, allowGang bool) ReaperPanValue {
	r.requireMainThread("CSurf_OnPanChangeEx")
	return ReaperPanValue(r.fns.CSurf_OnPanChangeEx(track, float64(pan), relative, allowGang))
}

// CSurfSetSurfaceVolume notifies all registered surfaces of a volume
// change, except ignore when non-nil.
func (r *Reaper) CSurfSetSurfaceVolume(track *MediaTrack, volume ReaperVolumeValue, ignore *raw.IReaperControlSurface) {
	r.requireMainThread("CSurf_SetSurfaceVolume")
	r.fns.CSurf_SetSurfaceVolume(track, float64(volume), ignore)
}

func (r *Reaper) CSurfSetSurfacePan(track *MediaTrack, pan ReaperPanValue, ignore *raw.IReaperControlSurface) {
	r.requireMainThread("CSurf_SetSurfacePan")
	r.fns.CSurf_SetSurfacePan(track, float64(pan), ignore)
}

// TrackListUpdateAllExternalSurfaces pushes the full project state to every
// registered surface.
func (r *Reaper) TrackListUpdateAllExternalSurfaces() {
	r.requireMainThread("TrackList_UpdateAllExternalSurfaces")
	r.fns.TrackList_UpdateAllExternalSurfaces()
}

// MidiInput returns the open MIDI input device, nil when dev is closed or
// out of range. Meant to be called from the audio hook; no thread check.
func (r *Reaper) MidiInput(dev MidiInputDeviceID) *raw.MidiInput {
	return r.fns.GetMidiInput(int32(dev))
}

// MidiOutput returns the open MIDI output device, nil when dev is closed or
// out of range. Meant to be called from the audio hook; no thread check.
func (r *Reaper) MidiOutput(dev MidiOutputDeviceID) *raw.MidiOutput {
	return r.fns.GetMidiOutput(int32(dev))
}

// UndoBeginBlock2 opens an undo block on proj. Make sure the matching
// UndoEndBlock2 runs or undo points pile up wrong.
func (r *Reaper) UndoBeginBlock2(proj *ReaProject) {
	r.requireMainThread("Undo_BeginBlock2")
	r.fns.Undo_BeginBlock2(proj)
}

// UndoEndBlock2 closes the innermost undo block with the given description
// and scope flags.
func (r *Reaper) UndoEndBlock2(proj *ReaProject, desc string, flags UndoFlags) {
	r.requireMainThread("Undo_EndBlock2")
	c := raw.CString(desc)
	defer raw.FreeCString(c)
	r.fns.Undo_EndBlock2(proj, c, int32(flags))
}

// UndoBlock runs fn inside an undo block labelled desc. The block is closed
// even when fn panics.
func (r *Reaper) UndoBlock(proj *ReaProject, desc string, flags UndoFlags, fn func() error) error {
	r.UndoBeginBlock2(proj)
	defer r.UndoEndBlock2(proj, desc, flags)
	return fn()
}
