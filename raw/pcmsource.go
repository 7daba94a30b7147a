package raw

/*
#include "reaper_plugin.h"
#include "bridge.h"
*/
import "C"

import "unsafe"

// PcmSource is the Go side of PCM_source. GetSamples and GetPeakInfo run on
// whatever thread the host chooses, frequently the audio thread; everything
// else is main-thread.
type PcmSource interface {
	Duplicate() *PCM_source
	IsAvailable() bool
	SetAvailable(avail bool)
	GetType() *Char
	GetFileName() *Char
	SetFileName(newfn *Char) bool
	GetSource() *PCM_source
	SetSource(src *PCM_source)
	GetNumChannels() int32
	GetSampleRate() float64
	GetLength() float64
	GetLengthBeats() float64
	GetBitsPerSample() int32
	GetPreferredPosition() float64
	PropertiesWindow(parent HWND) int32
	GetSamples(block *SourceTransfer)
	GetPeakInfo(block *PeakTransfer)
	SaveState(ctx *ProjectStateContext)
	LoadState(firstline *Char, ctx *ProjectStateContext) int32
	PeaksClear(deleteFile bool)
	PeaksBuildBegin() int32
	PeaksBuildRun() int32
	PeaksBuildFinish()
	Extended(call int32, parm1, parm2, parm3 unsafe.Pointer) int32
}

// NewPcmSource creates the C++ wrapper object delegating to the registered
// target. Pair with DeletePcmSource unless ownership passes to the host.
func NewPcmSource(target uintptr) *PCM_source {
	return C.create_go_pcm_source(C.uintptr_t(target))
}

func DeletePcmSource(src *PCM_source) {
	C.delete_go_pcm_source(src)
}

// Call-direction wrappers, usable on any PCM_source object regardless of
// which side created it.

func PcmSourceDuplicate(src *PCM_source) *PCM_source {
	return C.pcm_source_duplicate(src)
}

func PcmSourceIsAvailable(src *PCM_source) bool {
	return bool(C.pcm_source_is_available(src))
}

func PcmSourceSetAvailable(src *PCM_source, avail bool) {
	C.pcm_source_set_available(src, C.bool(avail))
}

func PcmSourceGetType(src *PCM_source) *Char {
	return C.pcm_source_get_type(src)
}

func PcmSourceGetFileName(src *PCM_source) *Char {
	return C.pcm_source_get_file_name(src)
}

func PcmSourceSetFileName(src *PCM_source, newfn *Char) bool {
	return bool(C.pcm_source_set_file_name(src, newfn))
}

func PcmSourceGetSource(src *PCM_source) *PCM_source {
	return C.pcm_source_get_source(src)
}

func PcmSourceSetSource(src, inner *PCM_source) {
	C.pcm_source_set_source(src, inner)
}

func PcmSourceGetNumChannels(src *PCM_source) int32 {
	return int32(C.pcm_source_get_num_channels(src))
}

func PcmSourceGetSampleRate(src *PCM_source) float64 {
	return float64(C.pcm_source_get_sample_rate(src))
}

func PcmSourceGetLength(src *PCM_source) float64 {
	return float64(C.pcm_source_get_length(src))
}

func PcmSourceGetLengthBeats(src *PCM_source) float64 {
	return float64(C.pcm_source_get_length_beats(src))
}

func PcmSourceGetBitsPerSample(src *PCM_source) int32 {
	return int32(C.pcm_source_get_bits_per_sample(src))
}

func PcmSourceGetPreferredPosition(src *PCM_source) float64 {
	return float64(C.pcm_source_get_preferred_position(src))
}

func PcmSourcePropertiesWindow(src *PCM_source, parent HWND) int32 {
	return int32(C.pcm_source_properties_window(src, parent))
}

func PcmSourceGetSamples(src *PCM_source, block *SourceTransfer) {
	C.pcm_source_get_samples(src, block)
}

func PcmSourceGetPeakInfo(src *PCM_source, block *PeakTransfer) {
	C.pcm_source_get_peak_info(src, block)
}

func PcmSourceSaveState(src *PCM_source, ctx *ProjectStateContext) {
	C.pcm_source_save_state(src, ctx)
}

func PcmSourceLoadState(src *PCM_source, firstline *Char, ctx *ProjectStateContext) int32 {
	return int32(C.pcm_source_load_state(src, firstline, ctx))
}

func PcmSourcePeaksClear(src *PCM_source, deleteFile bool) {
	C.pcm_source_peaks_clear(src, C.bool(deleteFile))
}

func PcmSourcePeaksBuildBegin(src *PCM_source) int32 {
	return int32(C.pcm_source_peaks_build_begin(src))
}

func PcmSourcePeaksBuildRun(src *PCM_source) int32 {
	return int32(C.pcm_source_peaks_build_run(src))
}

func PcmSourcePeaksBuildFinish(src *PCM_source) {
	C.pcm_source_peaks_build_finish(src)
}

func PcmSourceExtended(src *PCM_source, call int32, parm1, parm2, parm3 unsafe.Pointer) int32 {
	return int32(C.pcm_source_extended(src, C.int(call), parm1, parm2, parm3))
}

// PcmSourceDestroy deletes a source created by this plugin's glue, such as a
// Duplicate result. Host-created sources go through the PCM_Source_Destroy
// API function instead.
func PcmSourceDestroy(src *PCM_source) {
	C.pcm_source_destroy(src)
}

func lookupPcmSource(target C.uintptr_t) (PcmSource, bool) {
	s, ok := lookupTarget(uintptr(target)).(PcmSource)
	return s, ok
}

//export GoSourceDuplicate
func GoSourceDuplicate(target C.uintptr_t) (res *C.PCM_source) {
	defer recoverPanic("GoSourceDuplicate")
	if s, ok := lookupPcmSource(target); ok {
		res = s.Duplicate()
	}
	return
}

//export GoSourceIsAvailable
func GoSourceIsAvailable(target C.uintptr_t) (res C.int) {
	defer recoverPanic("GoSourceIsAvailable")
	if s, ok := lookupPcmSource(target); ok {
		res = cbool(s.IsAvailable())
	}
	return
}

//export GoSourceSetAvailable
func GoSourceSetAvailable(target C.uintptr_t, avail C.int) {
	defer recoverPanic("GoSourceSetAvailable")
	if s, ok := lookupPcmSource(target); ok {
		s.SetAvailable(avail != 0)
	}
}

//export GoSourceGetType
func GoSourceGetType(target C.uintptr_t) (res *C.char) {
	defer recoverPanic("GoSourceGetType")
	if s, ok := lookupPcmSource(target); ok {
		res = s.GetType()
	}
	return
}

//export GoSourceGetFileName
func GoSourceGetFileName(target C.uintptr_t) (res *C.char) {
	defer recoverPanic("GoSourceGetFileName")
	if s, ok := lookupPcmSource(target); ok {
		res = s.GetFileName()
	}
	return
}

//export GoSourceSetFileName
func GoSourceSetFileName(target C.uintptr_t, newfn *C.char) (res C.int) {
	defer recoverPanic("GoSourceSetFileName")
	if s, ok := lookupPcmSource(target); ok {
		res = cbool(s.SetFileName(newfn))
	}
	return
}

//export GoSourceGetSource
func GoSourceGetSource(target C.uintptr_t) (res *C.PCM_source) {
	defer recoverPanic("GoSourceGetSource")
	if s, ok := lookupPcmSource(target); ok {
		res = s.GetSource()
	}
	return
}

//export GoSourceSetSource
func GoSourceSetSource(target C.uintptr_t, src *C.PCM_source) {
	defer recoverPanic("GoSourceSetSource")
	if s, ok := lookupPcmSource(target); ok {
		s.SetSource(src)
	}
}

//export GoSourceGetNumChannels
func GoSourceGetNumChannels(target C.uintptr_t) (res C.int) {
	defer recoverPanic("GoSourceGetNumChannels")
	if s, ok := lookupPcmSource(target); ok {
		res = C.int(s.GetNumChannels())
	}
	return
}

//export GoSourceGetSampleRate
func GoSourceGetSampleRate(target C.uintptr_t) (res C.double) {
	defer recoverPanic("GoSourceGetSampleRate")
	if s, ok := lookupPcmSource(target); ok {
		res = C.double(s.GetSampleRate())
	}
	return
}

//export GoSourceGetLength
func GoSourceGetLength(target C.uintptr_t) (res C.double) {
	defer recoverPanic("GoSourceGetLength")
	if s, ok := lookupPcmSource(target); ok {
		res = C.double(s.GetLength())
	}
	return
}

//export GoSourceGetLengthBeats
func GoSourceGetLengthBeats(target C.uintptr_t) (res C.double) {
	defer recoverPanic("GoSourceGetLengthBeats")
	if s, ok := lookupPcmSource(target); ok {
		res = C.double(s.GetLengthBeats())
	}
	return
}

//export GoSourceGetBitsPerSample
func GoSourceGetBitsPerSample(target C.uintptr_t) (res C.int) {
	defer recoverPanic("GoSourceGetBitsPerSample")
	if s, ok := lookupPcmSource(target); ok {
		res = C.int(s.GetBitsPerSample())
	}
	return
}

//export GoSourceGetPreferredPosition
func GoSourceGetPreferredPosition(target C.uintptr_t) (res C.double) {
	defer recoverPanic("GoSourceGetPreferredPosition")
	if s, ok := lookupPcmSource(target); ok {
		res = C.double(s.GetPreferredPosition())
	}
	return
}

//export GoSourcePropertiesWindow
func GoSourcePropertiesWindow(target C.uintptr_t, hwndParent C.HWND) (res C.int) {
	defer recoverPanic("GoSourcePropertiesWindow")
	if s, ok := lookupPcmSource(target); ok {
		res = C.int(s.PropertiesWindow(hwndParent))
	}
	return
}

//export GoSourceGetSamples
func GoSourceGetSamples(target C.uintptr_t, block *C.PCM_source_transfer_t) {
	defer recoverPanic("GoSourceGetSamples")
	if s, ok := lookupPcmSource(target); ok {
		s.GetSamples(block)
	}
}

//export GoSourceGetPeakInfo
func GoSourceGetPeakInfo(target C.uintptr_t, block *C.PCM_source_peaktransfer_t) {
	defer recoverPanic("GoSourceGetPeakInfo")
	if s, ok := lookupPcmSource(target); ok {
		s.GetPeakInfo(block)
	}
}

//export GoSourceSaveState
func GoSourceSaveState(target C.uintptr_t, ctx *C.ProjectStateContext) {
	defer recoverPanic("GoSourceSaveState")
	if s, ok := lookupPcmSource(target); ok {
		s.SaveState(ctx)
	}
}

//export GoSourceLoadState
func GoSourceLoadState(target C.uintptr_t, firstline *C.char, ctx *C.ProjectStateContext) (res C.int) {
	defer recoverPanic("GoSourceLoadState")
	if s, ok := lookupPcmSource(target); ok {
		res = C.int(s.LoadState(firstline, ctx))
	}
	return
}

//export GoSourcePeaksClear
func GoSourcePeaksClear(target C.uintptr_t, deleteFile C.int) {
	defer recoverPanic("GoSourcePeaksClear")
	if s, ok := lookupPcmSource(target); ok {
		s.PeaksClear(deleteFile != 0)
	}
}

//export GoSourcePeaksBuildBegin
func GoSourcePeaksBuildBegin(target C.uintptr_t) (res C.int) {
	defer recoverPanic("GoSourcePeaksBuildBegin")
	if s, ok := lookupPcmSource(target); ok {
		res = C.int(s.PeaksBuildBegin())
	}
	return
}

//export GoSourcePeaksBuildRun
func GoSourcePeaksBuildRun(target C.uintptr_t) (res C.int) {
	defer recoverPanic("GoSourcePeaksBuildRun")
	if s, ok := lookupPcmSource(target); ok {
		res = C.int(s.PeaksBuildRun())
	}
	return
}

//export GoSourcePeaksBuildFinish
func GoSourcePeaksBuildFinish(target C.uintptr_t) {
	defer recoverPanic("GoSourcePeaksBuildFinish")
	if s, ok := lookupPcmSource(target); ok {
		s.PeaksBuildFinish()
	}
}

//export GoSourceExtended
func GoSourceExtended(target C.uintptr_t, call C.int, parm1, parm2, parm3 unsafe.Pointer) (res C.int) {
	defer recoverPanic("GoSourceExtended")
	if s, ok := lookupPcmSource(target); ok {
		res = C.int(s.Extended(int32(call), parm1, parm2, parm3))
	}
	return
}
