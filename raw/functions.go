package raw

/*
#include "reaper_plugin.h"
#include "bridge.h"
*/
import "C"

import "unsafe"

// FunctionPointers holds the raw addresses resolved from the host, one field
// per bound REAPER function. A nil field means the running REAPER does not
// export the name (or loading was skipped); the corresponding accessor will
// panic when used.
type FunctionPointers struct {
	GetAppVersion                        unsafe.Pointer
	ShowConsoleMsg                       unsafe.Pointer
	GetMainHwnd                          unsafe.Pointer
	PluginRegister                       unsafe.Pointer
	Audio_RegHardwareHook                unsafe.Pointer
	CountTracks                          unsafe.Pointer
	GetTrack                             unsafe.Pointer
	GetMasterTrack                       unsafe.Pointer
	GetTrackName                         unsafe.Pointer
	GetPlayState                         unsafe.Pointer
	GetPlayPosition                      unsafe.Pointer
	Master_GetTempo                      unsafe.Pointer
	ValidatePtr2                         unsafe.Pointer
	CSurf_OnVolumeChangeEx               unsafe.Pointer
	CSurf_OnPanChangeEx                  unsafe.Pointer
	CSurf_SetSurfaceVolume               unsafe.Pointer
	CSurf_SetSurfacePan                  unsafe.Pointer
	TrackList_UpdateAllExternalSurfaces  unsafe.Pointer
	GetMidiInput                         unsafe.Pointer
	GetMidiOutput                        unsafe.Pointer
	ReaperGetPitchShiftAPI               unsafe.Pointer
	Resampler_Create                     unsafe.Pointer
	PCM_Sink_Create                      unsafe.Pointer
	PCM_Source_CreateFromFile            unsafe.Pointer
	PCM_Source_Destroy                   unsafe.Pointer
	Undo_BeginBlock2                     unsafe.Pointer
	Undo_EndBlock2                       unsafe.Pointer
}

type functionEntry struct {
	name string
	dst  *unsafe.Pointer
}

func (p *FunctionPointers) entries() []functionEntry {
	return []functionEntry{
		{"GetAppVersion", &p.GetAppVersion},
		{"ShowConsoleMsg", &p.ShowConsoleMsg},
		{"GetMainHwnd", &p.GetMainHwnd},
		{"plugin_register", &p.PluginRegister},
		{"Audio_RegHardwareHook", &p.Audio_RegHardwareHook},
		{"CountTracks", &p.CountTracks},
		{"GetTrack", &p.GetTrack},
		{"GetMasterTrack", &p.GetMasterTrack},
		{"GetTrackName", &p.GetTrackName},
		{"GetPlayState", &p.GetPlayState},
		{"GetPlayPosition", &p.GetPlayPosition},
		{"Master_GetTempo", &p.Master_GetTempo},
		{"ValidatePtr2", &p.ValidatePtr2},
		{"CSurf_OnVolumeChangeEx", &p.CSurf_OnVolumeChangeEx},
		{"CSurf_OnPanChangeEx", &p.CSurf_OnPanChangeEx},
		{"CSurf_SetSurfaceVolume", &p.CSurf_SetSurfaceVolume},
		{"CSurf_SetSurfacePan", &p.CSurf_SetSurfacePan},
		{"TrackList_UpdateAllExternalSurfaces", &p.TrackList_UpdateAllExternalSurfaces},
		{"GetMidiInput", &p.GetMidiInput},
		{"GetMidiOutput", &p.GetMidiOutput},
		{"ReaperGetPitchShiftAPI", &p.ReaperGetPitchShiftAPI},
		{"Resampler_Create", &p.Resampler_Create},
		{"PCM_Sink_Create", &p.PCM_Sink_Create},
		{"PCM_Source_CreateFromFile", &p.PCM_Source_CreateFromFile},
		{"PCM_Source_Destroy", &p.PCM_Source_Destroy},
		{"Undo_BeginBlock2", &p.Undo_BeginBlock2},
		{"Undo_EndBlock2", &p.Undo_EndBlock2},
	}
}

// TotalFunctionCount is the number of REAPER functions these bindings know.
const TotalFunctionCount = 27

// Functions wraps a resolved pointer table with typed invokers. Read-only
// after loading; usable from any thread the underlying function tolerates.
type Functions struct {
	p           FunctionPointers
	loadedCount int
}

// LoadFunctions resolves every known function through the context's
// provider. Missing names stay nil and do not abort the load.
func LoadFunctions(ctx *PluginContext) *Functions {
	var f Functions
	for _, e := range f.p.entries() {
		if p := ctx.GetFunc(e.name); p != nil {
			*e.dst = p
			f.loadedCount++
		}
	}
	return &f
}

// NewFunctions builds a table from explicit pointers, mainly for tools and
// tests that bypass a real host.
func NewFunctions(p FunctionPointers) *Functions {
	f := Functions{p: p}
	for _, e := range f.p.entries() {
		if *e.dst != nil {
			f.loadedCount++
		}
	}
	return &f
}

// LoadedCount reports how many functions resolved to non-nil pointers.
func (f *Functions) LoadedCount() int { return f.loadedCount }

func mustLoaded(p unsafe.Pointer, name string) {
	if p == nil {
		panic(name + " not loaded")
	}
}

func (f *Functions) GetAppVersion() *Char {
	mustLoaded(f.p.GetAppVersion, "GetAppVersion")
	return C.call_GetAppVersion(f.p.GetAppVersion)
}

func (f *Functions) ShowConsoleMsg(msg *Char) {
	mustLoaded(f.p.ShowConsoleMsg, "ShowConsoleMsg")
	C.call_ShowConsoleMsg(f.p.ShowConsoleMsg, msg)
}

func (f *Functions) GetMainHwnd() HWND {
	mustLoaded(f.p.GetMainHwnd, "GetMainHwnd")
	return C.call_GetMainHwnd(f.p.GetMainHwnd)
}

// PluginRegister binds the "plugin_register" API function. The result is
// whatever the host returns: 0 on failure, a key-specific value otherwise.
func (f *Functions) PluginRegister(name *Char, infostruct unsafe.Pointer) int32 {
	mustLoaded(f.p.PluginRegister, "plugin_register")
	return int32(C.invoke_plugin_register(f.p.PluginRegister, name, infostruct))
}

func (f *Functions) Audio_RegHardwareHook(add bool, reg *AudioHookRegister) int32 {
	mustLoaded(f.p.Audio_RegHardwareHook, "Audio_RegHardwareHook")
	return int32(C.call_Audio_RegHardwareHook(f.p.Audio_RegHardwareHook, C.bool(add), reg))
}

func (f *Functions) CountTracks(proj *ReaProject) int32 {
	mustLoaded(f.p.CountTracks, "CountTracks")
	return int32(C.call_CountTracks(f.p.CountTracks, proj))
}

func (f *Functions) GetTrack(proj *ReaProject, trackIdx int32) *MediaTrack {
	mustLoaded(f.p.GetTrack, "GetTrack")
	return C.call_GetTrack(f.p.GetTrack, proj, C.int(trackIdx))
}

func (f *Functions) GetMasterTrack(proj *ReaProject) *MediaTrack {
	mustLoaded(f.p.GetMasterTrack, "GetMasterTrack")
	return C.call_GetMasterTrack(f.p.GetMasterTrack, proj)
}

func (f *Functions) GetTrackName(track *MediaTrack, buf *Char, bufSize int32) bool {
	mustLoaded(f.p.GetTrackName, "GetTrackName")
	return bool(C.call_GetTrackName(f.p.GetTrackName, track, buf, C.int(bufSize)))
}

func (f *Functions) GetPlayState() int32 {
	mustLoaded(f.p.GetPlayState, "GetPlayState")
	return int32(C.call_GetPlayState(f.p.GetPlayState))
}

func (f *Functions) GetPlayPosition() float64 {
	mustLoaded(f.p.GetPlayPosition, "GetPlayPosition")
	return float64(C.call_GetPlayPosition(f.p.GetPlayPosition))
}

func (f *Functions) Master_GetTempo() float64 {
	mustLoaded(f.p.Master_GetTempo, "Master_GetTempo")
	return float64(C.call_Master_GetTempo(f.p.Master_GetTempo))
}

func (f *Functions) ValidatePtr2(proj *ReaProject, pointer unsafe.Pointer, typeName *Char) bool {
	mustLoaded(f.p.ValidatePtr2, "ValidatePtr2")
	return bool(C.call_ValidatePtr2(f.p.ValidatePtr2, proj, pointer, typeName))
}

func (f *Functions) CSurf_OnVolumeChangeEx(track *MediaTrack, volume float64, relative, allowGang bool) float64 {
	mustLoaded(f.p.CSurf_OnVolumeChangeEx, "CSurf_OnVolumeChangeEx")
	return float64(C.call_CSurf_OnVolumeChangeEx(f.p.CSurf_OnVolumeChangeEx, track,
		C.double(volume), C.bool(relative), C.bool(allowGang)))
}

func (f *Functions) CSurf_OnPanChangeEx(track *MediaTrack, pan float64, relative, allowGang bool) float64 {
	mustLoaded(f.p.CSurf_OnPanChangeEx, "CSurf_OnPanChangeEx")
	return float64(C.call_CSurf_OnPanChangeEx(f.p.CSurf_OnPanChangeEx, track,
		C.double(pan), C.bool(relative), C.bool(allowGang)))
}

func (f *Functions) CSurf_SetSurfaceVolume(track *MediaTrack, volume float64, ignoreSurf *IReaperControlSurface) {
	mustLoaded(f.p.CSurf_SetSurfaceVolume, "CSurf_SetSurfaceVolume")
	C.call_CSurf_SetSurfaceVolume(f.p.CSurf_SetSurfaceVolume, track, C.double(volume), ignoreSurf)
}

func (f *Functions) CSurf_SetSurfacePan(track *MediaTrack, pan float64, ignoreSurf *IReaperControlSurface) {
	mustLoaded(f.p.CSurf_SetSurfacePan, "CSurf_SetSurfacePan")
	C.call_CSurf_SetSurfacePan(f.p.CSurf_SetSurfacePan, track, C.double(pan), ignoreSurf)
}

func (f *Functions) TrackList_UpdateAllExternalSurfaces() {
	mustLoaded(f.p.TrackList_UpdateAllExternalSurfaces, "TrackList_UpdateAllExternalSurfaces")
	C.call_TrackList_UpdateAllExternalSurfaces(f.p.TrackList_UpdateAllExternalSurfaces)
}

func (f *Functions) GetMidiInput(idx int32) *MidiInput {
	mustLoaded(f.p.GetMidiInput, "GetMidiInput")
	return C.call_GetMidiInput(f.p.GetMidiInput, C.int(idx))
}

func (f *Functions) GetMidiOutput(idx int32) *MidiOutput {
	mustLoaded(f.p.GetMidiOutput, "GetMidiOutput")
	return C.call_GetMidiOutput(f.p.GetMidiOutput, C.int(idx))
}

func (f *Functions) ReaperGetPitchShiftAPI(version int32) *IReaperPitchShift {
	mustLoaded(f.p.ReaperGetPitchShiftAPI, "ReaperGetPitchShiftAPI")
	return C.call_ReaperGetPitchShiftAPI(f.p.ReaperGetPitchShiftAPI, C.int(version))
}

func (f *Functions) Resampler_Create() *REAPER_Resample_Interface {
	mustLoaded(f.p.Resampler_Create, "Resampler_Create")
	return C.call_Resampler_Create(f.p.Resampler_Create)
}

func (f *Functions) PCM_Sink_Create(fileName, cfg *Char, cfgSize, nch, srate int32, buildPeaks bool) *PCM_sink {
	mustLoaded(f.p.PCM_Sink_Create, "PCM_Sink_Create")
	return C.call_PCM_Sink_Create(f.p.PCM_Sink_Create, fileName, cfg,
		C.int(cfgSize), C.int(nch), C.int(srate), C.bool(buildPeaks))
}

func (f *Functions) PCM_Source_CreateFromFile(fileName *Char) *PCM_source {
	mustLoaded(f.p.PCM_Source_CreateFromFile, "PCM_Source_CreateFromFile")
	return C.call_PCM_Source_CreateFromFile(f.p.PCM_Source_CreateFromFile, fileName)
}

func (f *Functions) PCM_Source_Destroy(src *PCM_source) {
	mustLoaded(f.p.PCM_Source_Destroy, "PCM_Source_Destroy")
	C.call_PCM_Source_Destroy(f.p.PCM_Source_Destroy, src)
}

func (f *Functions) Undo_BeginBlock2(proj *ReaProject) {
	mustLoaded(f.p.Undo_BeginBlock2, "Undo_BeginBlock2")
	C.call_Undo_BeginBlock2(f.p.Undo_BeginBlock2, proj)
}

func (f *Functions) Undo_EndBlock2(proj *ReaProject, desc *Char, extraFlags int32) {
	mustLoaded(f.p.Undo_EndBlock2, "Undo_EndBlock2")
	C.call_Undo_EndBlock2(f.p.Undo_EndBlock2, proj, desc, C.int(extraFlags))
}
