package raw

/*
#include "reaper_plugin.h"
#include "bridge.h"
*/
import "C"

import "unsafe"

// PcmSink is the Go side of PCM_sink. WriteMIDI and WriteDoubles run on the
// host's render thread during recording or render.
type PcmSink interface {
	GetOutputInfoString(buf *Char, buflen int32)
	GetStartTime() float64
	SetStartTime(st float64)
	GetFileName() *Char
	GetNumChannels() int32
	GetLength() float64
	GetFileSize() int64
	WriteMIDI(events *MidiEventList, length int32, samplerate float64)
	WriteDoubles(samples **ReaSample, length, nch, offset, spacing int32)
	WantMIDI() bool
	GetLastSecondPeaks(sz int32, buf *ReaSample) int32
	GetPeakInfo(block *PeakTransfer)
	Extended(call int32, parm1, parm2, parm3 unsafe.Pointer) int32
}

// NewPcmSink creates the C++ wrapper object delegating to the registered
// target. Pair with DeletePcmSink unless ownership passes to the host.
func NewPcmSink(target uintptr) *PCM_sink {
	return C.create_go_pcm_sink(C.uintptr_t(target))
}

func DeletePcmSink(sink *PCM_sink) {
	C.delete_go_pcm_sink(sink)
}

func PcmSinkGetOutputInfoString(sink *PCM_sink, buf *Char, buflen int32) {
	C.pcm_sink_get_output_info_string(sink, buf, C.int(buflen))
}

func PcmSinkGetStartTime(sink *PCM_sink) float64 {
	return float64(C.pcm_sink_get_start_time(sink))
}

func PcmSinkSetStartTime(sink *PCM_sink, st float64) {
	C.pcm_sink_set_start_time(sink, C.double(st))
}

func PcmSinkGetFileName(sink *PCM_sink) *Char {
	return C.pcm_sink_get_file_name(sink)
}

func PcmSinkGetNumChannels(sink *PCM_sink) int32 {
	return int32(C.pcm_sink_get_num_channels(sink))
}

func PcmSinkGetLength(sink *PCM_sink) float64 {
	return float64(C.pcm_sink_get_length(sink))
}

func PcmSinkGetFileSize(sink *PCM_sink) int64 {
	return int64(C.pcm_sink_get_file_size(sink))
}

func PcmSinkWriteMIDI(sink *PCM_sink, events *MidiEventList, length int32, samplerate float64) {
	C.pcm_sink_write_midi(sink, events, C.int(length), C.double(samplerate))
}

func PcmSinkWriteDoubles(sink *PCM_sink, samples **ReaSample, length, nch, offset, spacing int32) {
	C.pcm_sink_write_doubles(sink, samples, C.int(length), C.int(nch), C.int(offset), C.int(spacing))
}

func PcmSinkWantMIDI(sink *PCM_sink) bool {
	return bool(C.pcm_sink_want_midi(sink))
}

func PcmSinkGetLastSecondPeaks(sink *PCM_sink, sz int32, buf *ReaSample) int32 {
	return int32(C.pcm_sink_get_last_second_peaks(sink, C.int(sz), buf))
}

func PcmSinkGetPeakInfo(sink *PCM_sink, block *PeakTransfer) {
	C.pcm_sink_get_peak_info(sink, block)
}

func PcmSinkExtended(sink *PCM_sink, call int32, parm1, parm2, parm3 unsafe.Pointer) int32 {
	return int32(C.pcm_sink_extended(sink, C.int(call), parm1, parm2, parm3))
}

// PcmSinkDestroy deletes a sink through its virtual destructor, whichever
// side created it. The ABI has no destroy function for sinks, so results of
// PCM_Sink_Create come through here too.
func PcmSinkDestroy(sink *PCM_sink) {
	C.pcm_sink_destroy(sink)
}

func lookupPcmSink(target C.uintptr_t) (PcmSink, bool) {
	s, ok := lookupTarget(uintptr(target)).(PcmSink)
	return s, ok
}

//export GoSinkGetOutputInfoString
func GoSinkGetOutputInfoString(target C.uintptr_t, buf *C.char, buflen C.int) {
	defer recoverPanic("GoSinkGetOutputInfoString")
	if s, ok := lookupPcmSink(target); ok {
		s.GetOutputInfoString(buf, int32(buflen))
	}
}

//export GoSinkGetStartTime
func GoSinkGetStartTime(target C.uintptr_t) (res C.double) {
	defer recoverPanic("GoSinkGetStartTime")
	if s, ok := lookupPcmSink(target); ok {
		res = C.double(s.GetStartTime())
	}
	return
}

//export GoSinkSetStartTime
func GoSinkSetStartTime(target C.uintptr_t, st C.double) {
	defer recoverPanic("GoSinkSetStartTime")
	if s, ok := lookupPcmSink(target); ok {
		s.SetStartTime(float64(st))
	}
}

//export GoSinkGetFileName
func GoSinkGetFileName(target C.uintptr_t) (res *C.char) {
	defer recoverPanic("GoSinkGetFileName")
	if s, ok := lookupPcmSink(target); ok {
		res = s.GetFileName()
	}
	return
}

//export GoSinkGetNumChannels
func GoSinkGetNumChannels(target C.uintptr_t) (res C.int) {
	defer recoverPanic("GoSinkGetNumChannels")
	if s, ok := lookupPcmSink(target); ok {
		res = C.int(s.GetNumChannels())
	}
	return
}

//export GoSinkGetLength
func GoSinkGetLength(target C.uintptr_t) (res C.double) {
	defer recoverPanic("GoSinkGetLength")
	if s, ok := lookupPcmSink(target); ok {
		res = C.double(s.GetLength())
	}
	return
}

//export GoSinkGetFileSize
func GoSinkGetFileSize(target C.uintptr_t) (res C.INT64) {
	defer recoverPanic("GoSinkGetFileSize")
	if s, ok := lookupPcmSink(target); ok {
		res = C.INT64(s.GetFileSize())
	}
	return
}

//export GoSinkWriteMIDI
func GoSinkWriteMIDI(target C.uintptr_t, events *C.MIDI_eventlist, length C.int, samplerate C.double) {
	defer recoverPanic("GoSinkWriteMIDI")
	if s, ok := lookupPcmSink(target); ok {
		s.WriteMIDI(events, int32(length), float64(samplerate))
	}
}

//export GoSinkWriteDoubles
func GoSinkWriteDoubles(target C.uintptr_t, samples **C.ReaSample, length, nch, offset, spacing C.int) {
	defer recoverPanic("GoSinkWriteDoubles")
	if s, ok := lookupPcmSink(target); ok {
		s.WriteDoubles(samples, int32(length), int32(nch), int32(offset), int32(spacing))
	}
}

//export GoSinkWantMIDI
func GoSinkWantMIDI(target C.uintptr_t) (res C.int) {
	defer recoverPanic("GoSinkWantMIDI")
	if s, ok := lookupPcmSink(target); ok {
		res = cbool(s.WantMIDI())
	}
	return
}

//export GoSinkGetLastSecondPeaks
func GoSinkGetLastSecondPeaks(target C.uintptr_t, sz C.int, buf *C.ReaSample) (res C.int) {
	defer recoverPanic("GoSinkGetLastSecondPeaks")
	if s, ok := lookupPcmSink(target); ok {
		res = C.int(s.GetLastSecondPeaks(int32(sz), buf))
	}
	return
}

//export GoSinkGetPeakInfo
func GoSinkGetPeakInfo(target C.uintptr_t, block *C.PCM_source_peaktransfer_t) {
	defer recoverPanic("GoSinkGetPeakInfo")
	if s, ok := lookupPcmSink(target); ok {
		s.GetPeakInfo(block)
	}
}

//export GoSinkExtended
func GoSinkExtended(target C.uintptr_t, call C.int, parm1, parm2, parm3 unsafe.Pointer) (res C.int) {
	defer recoverPanic("GoSinkExtended")
	if s, ok := lookupPcmSink(target); ok {
		res = C.int(s.Extended(int32(call), parm1, parm2, parm3))
	}
	return
}
