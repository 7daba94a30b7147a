// Package raw is the bindings floor for the REAPER plugin ABI. Everything
// here mirrors the SDK surface as closely as cgo allows: C types, sentinel
// return values, no argument validation. The validated layer lives in the
// parent package.
package raw

/*
#cgo CXXFLAGS: -std=c++11
#cgo linux LDFLAGS: -lstdc++
#cgo windows LDFLAGS: -lstdc++
#cgo darwin LDFLAGS: -lc++

#include <stdlib.h>
#include "reaper_plugin.h"
#include "bridge.h"
*/
import "C"

import "unsafe"

// Aliases keep the SDK spelling where it is exported as-is and Go casing
// where the C name starts lowercase.
type (
	ReaProject                = C.ReaProject
	MediaTrack                = C.MediaTrack
	MediaItem                 = C.MediaItem
	MediaItem_Take            = C.MediaItem_Take
	TrackEnvelope             = C.TrackEnvelope
	KbdSectionInfo            = C.KbdSectionInfo
	IReaperControlSurface     = C.IReaperControlSurface
	PCM_source                = C.PCM_source
	PCM_sink                  = C.PCM_sink
	ProjectStateContext       = C.ProjectStateContext
	IReaperPitchShift         = C.IReaperPitchShift
	REAPER_Resample_Interface = C.REAPER_Resample_Interface
	MidiInput                 = C.midi_Input
	MidiOutput                = C.midi_Output
	MidiEventList             = C.MIDI_eventlist
	MidiEvent                 = C.MIDI_event_t
	SourceTransfer            = C.PCM_source_transfer_t
	PeakTransfer              = C.PCM_source_peaktransfer_t
	AudioHookRegister         = C.audio_hook_register_t
	GaccelRegister            = C.gaccel_register_t
	PluginInfo                = C.reaper_plugin_info_t
	Accel                     = C.ACCEL
	HWND                      = C.HWND
	ReaSample                 = C.ReaSample
	Char                      = C.char
)

const (
	// PluginVersion is REAPER_PLUGIN_VERSION of the SDK revision these
	// bindings were written against.
	PluginVersion = C.REAPER_PLUGIN_VERSION

	PitchShiftAPIVersion = C.REAPER_PITCHSHIFT_API_VER
)

// IReaperControlSurface::Extended call codes.
const (
	CSURF_EXT_RESET                   = C.CSURF_EXT_RESET
	CSURF_EXT_SETINPUTMONITOR         = C.CSURF_EXT_SETINPUTMONITOR
	CSURF_EXT_SETMETRONOME            = C.CSURF_EXT_SETMETRONOME
	CSURF_EXT_SETAUTORECARM           = C.CSURF_EXT_SETAUTORECARM
	CSURF_EXT_SETRECMODE              = C.CSURF_EXT_SETRECMODE
	CSURF_EXT_SETSENDVOLUME           = C.CSURF_EXT_SETSENDVOLUME
	CSURF_EXT_SETSENDPAN              = C.CSURF_EXT_SETSENDPAN
	CSURF_EXT_SETFXENABLED            = C.CSURF_EXT_SETFXENABLED
	CSURF_EXT_SETFXPARAM              = C.CSURF_EXT_SETFXPARAM
	CSURF_EXT_SETFXPARAM_RECFX        = C.CSURF_EXT_SETFXPARAM_RECFX
	CSURF_EXT_SETBPMANDPLAYRATE       = C.CSURF_EXT_SETBPMANDPLAYRATE
	CSURF_EXT_SETLASTTOUCHEDFX        = C.CSURF_EXT_SETLASTTOUCHEDFX
	CSURF_EXT_SETFOCUSEDFX            = C.CSURF_EXT_SETFOCUSEDFX
	CSURF_EXT_SETLASTTOUCHEDTRACK     = C.CSURF_EXT_SETLASTTOUCHEDTRACK
	CSURF_EXT_SETMIXERSCROLL          = C.CSURF_EXT_SETMIXERSCROLL
	CSURF_EXT_SETPAN_EX               = C.CSURF_EXT_SETPAN_EX
	CSURF_EXT_SETRECVVOLUME           = C.CSURF_EXT_SETRECVVOLUME
	CSURF_EXT_SETRECVPAN              = C.CSURF_EXT_SETRECVPAN
	CSURF_EXT_SETFXOPEN               = C.CSURF_EXT_SETFXOPEN
	CSURF_EXT_SETFXCHANGE             = C.CSURF_EXT_SETFXCHANGE
	CSURF_EXT_SETPROJECTMARKERCHANGE  = C.CSURF_EXT_SETPROJECTMARKERCHANGE
	CSURF_EXT_TRACKFX_PRESET_CHANGED  = C.CSURF_EXT_TRACKFX_PRESET_CHANGED
	CSURF_EXT_SUPPORTS_EXTENDED_TOUCH = C.CSURF_EXT_SUPPORTS_EXTENDED_TOUCH
)

// Undo_EndBlock2 extraflags.
const (
	UNDO_STATE_ALL      = C.UNDO_STATE_ALL
	UNDO_STATE_TRACKCFG = C.UNDO_STATE_TRACKCFG
	UNDO_STATE_FX       = C.UNDO_STATE_FX
	UNDO_STATE_ITEMS    = C.UNDO_STATE_ITEMS
	UNDO_STATE_MISCCFG  = C.UNDO_STATE_MISCCFG
)

const arrayLength = 1 << 30

// CString copies s to the C heap. Pair with FreeCString.
func CString(s string) *Char {
	return C.CString(s)
}

// GoString copies a NUL-terminated C string. nil yields "".
func GoString(s *Char) string {
	if s == nil {
		return ""
	}
	return C.GoString(s)
}

func FreeCString(s *Char) {
	C.free(unsafe.Pointer(s))
}

// AllocCharBuf returns a zeroed C buffer of n bytes for out-string
// parameters. Free with FreeCString.
func AllocCharBuf(n int32) *Char {
	return (*Char)(C.calloc(C.size_t(n), 1))
}

// cbool is for exported callback results, which use int in place of bool so
// the generated header stays plain C.
func cbool(b bool) C.int {
	if b {
		return 1
	}
	return 0
}

// ReaSampleSlice views n samples of C memory as a Go slice. The memory stays
// owned by the C side.
func ReaSampleSlice(p *ReaSample, n int) []ReaSample {
	if p == nil || n <= 0 {
		return nil
	}
	return (*[arrayLength]ReaSample)(unsafe.Pointer(p))[:n:n]
}

// ReaSamplePtrSlice views an array of n channel pointers, as passed to
// PCM_sink::WriteDoubles.
func ReaSamplePtrSlice(pp **ReaSample, n int) []*ReaSample {
	if pp == nil || n <= 0 {
		return nil
	}
	return (*[arrayLength]*ReaSample)(unsafe.Pointer(pp))[:n:n]
}

// CharSlice views n bytes of C memory, for filling host-provided buffers.
func CharSlice(p *Char, n int) []byte {
	if p == nil || n <= 0 {
		return nil
	}
	return (*[arrayLength]byte)(unsafe.Pointer(p))[:n:n]
}

// FillCharBuf copies s into a host-provided buffer of size n, always
// NUL-terminated, truncating as needed.
func FillCharBuf(p *Char, n int32, s string) {
	buf := CharSlice(p, int(n))
	if len(buf) == 0 {
		return
	}
	m := copy(buf[:len(buf)-1], s)
	buf[m] = 0
}

// AllocSourceTransfer returns a zeroed C-allocated transfer block with an
// attached interleaved sample buffer for nch*length samples. Free with
// FreeSourceTransfer.
func AllocSourceTransfer(nch, length int32) *SourceTransfer {
	t := (*SourceTransfer)(C.calloc(1, C.sizeof_PCM_source_transfer_t))
	t.nch = C.int(nch)
	t.length = C.int(length)
	t.samples = (*C.ReaSample)(C.calloc(C.size_t(nch)*C.size_t(length), C.sizeof_ReaSample))
	return t
}

func FreeSourceTransfer(t *SourceTransfer) {
	if t == nil {
		return
	}
	if t.samples != nil {
		C.free(unsafe.Pointer(t.samples))
	}
	C.free(unsafe.Pointer(t))
}

func SourceTransferTimeS(t *SourceTransfer) float64 { return float64(t.time_s) }

func SourceTransferSetTimeS(t *SourceTransfer, v float64) {
	t.time_s = C.double(v)
}

func SourceTransferSampleRate(t *SourceTransfer) float64 { return float64(t.samplerate) }

func SourceTransferSetSampleRate(t *SourceTransfer, v float64) {
	t.samplerate = C.double(v)
}

func SourceTransferNch(t *SourceTransfer) int32 { return int32(t.nch) }

func SourceTransferLength(t *SourceTransfer) int32 { return int32(t.length) }

func SourceTransferSamplesOut(t *SourceTransfer) int32 {
	return int32(t.samples_out)
}

func SourceTransferSetSamplesOut(t *SourceTransfer, n int32) {
	t.samples_out = C.int(n)
}

func SourceTransferAbsoluteTimeS(t *SourceTransfer) float64 {
	return float64(t.absolute_time_s)
}

// SourceTransferSamples views the interleaved sample buffer of the block.
func SourceTransferSamples(t *SourceTransfer) []ReaSample {
	return ReaSampleSlice((*ReaSample)(t.samples), int(t.nch)*int(t.length))
}

func MidiEventFrameOffset(e *MidiEvent) int32 { return int32(e.frame_offset) }

func MidiEventSize(e *MidiEvent) int32 { return int32(e.size) }

// MidiEventMessage views the message bytes in place. For sysex events the
// data extends past the nominal struct end; the list owns that memory.
func MidiEventMessage(e *MidiEvent) []byte {
	if e == nil || e.size <= 0 {
		return nil
	}
	return (*[arrayLength]byte)(unsafe.Pointer(&e.midi_message[0]))[:int(e.size):int(e.size)]
}
