package raw

/*
#include "reaper_plugin.h"
#include "bridge.h"
*/
import "C"

import "unsafe"

// IReaperPitchShift and REAPER_Resample_Interface wrappers. Both objects come
// from the host (ReaperGetPitchShiftAPI, Resampler_Create) and are destroyed
// with their Destroy wrapper, not by the host.

func PitchShiftSetSrate(ps *IReaperPitchShift, srate float64) {
	C.pitch_shift_set_srate(ps, C.double(srate))
}

func PitchShiftSetNch(ps *IReaperPitchShift, nch int32) {
	C.pitch_shift_set_nch(ps, C.int(nch))
}

func PitchShiftSetShift(ps *IReaperPitchShift, shift float64) {
	C.pitch_shift_set_shift(ps, C.double(shift))
}

func PitchShiftSetFormantShift(ps *IReaperPitchShift, shift float64) {
	C.pitch_shift_set_formant_shift(ps, C.double(shift))
}

func PitchShiftSetTempo(ps *IReaperPitchShift, tempo float64) {
	C.pitch_shift_set_tempo(ps, C.double(tempo))
}

func PitchShiftReset(ps *IReaperPitchShift) {
	C.pitch_shift_reset(ps)
}

// PitchShiftGetBuffer returns the host-owned input buffer for size samples
// per channel, interleaved.
func PitchShiftGetBuffer(ps *IReaperPitchShift, size int32) *ReaSample {
	return C.pitch_shift_get_buffer(ps, C.int(size))
}

func PitchShiftBufferDone(ps *IReaperPitchShift, inputFilled int32) {
	C.pitch_shift_buffer_done(ps, C.int(inputFilled))
}

func PitchShiftFlushSamples(ps *IReaperPitchShift) {
	C.pitch_shift_flush_samples(ps)
}

func PitchShiftIsReset(ps *IReaperPitchShift) bool {
	return bool(C.pitch_shift_is_reset(ps))
}

// PitchShiftGetSamples writes up to requestedOutput interleaved samples into
// buffer and returns the count produced.
func PitchShiftGetSamples(ps *IReaperPitchShift, requestedOutput int32, buffer *ReaSample) int32 {
	return int32(C.pitch_shift_get_samples(ps, C.int(requestedOutput), buffer))
}

func PitchShiftSetQualityParameter(ps *IReaperPitchShift, parm int32) {
	C.pitch_shift_set_quality_parameter(ps, C.int(parm))
}

func PitchShiftDestroy(ps *IReaperPitchShift) {
	C.pitch_shift_destroy(ps)
}

func ResampleSetRates(rs *REAPER_Resample_Interface, rateIn, rateOut float64) {
	C.resample_set_rates(rs, C.double(rateIn), C.double(rateOut))
}

func ResampleReset(rs *REAPER_Resample_Interface) {
	C.resample_reset(rs)
}

func ResampleGetCurrentLatency(rs *REAPER_Resample_Interface) float64 {
	return float64(C.resample_get_current_latency(rs))
}

// ResamplePrepare asks for outSamples output samples and returns how many
// input samples the resampler wants; *inbuffer points at the host-owned
// buffer to fill.
func ResamplePrepare(rs *REAPER_Resample_Interface, outSamples, nch int32, inbuffer **ReaSample) int32 {
	return int32(C.resample_prepare(rs, C.int(outSamples), C.int(nch), inbuffer))
}

func ResampleOut(rs *REAPER_Resample_Interface, out *ReaSample, nsamplesIn, nsamplesOut, nch int32) int32 {
	return int32(C.resample_out(rs, out, C.int(nsamplesIn), C.int(nsamplesOut), C.int(nch)))
}

func ResampleExtended(rs *REAPER_Resample_Interface, call int32, parm1, parm2, parm3 unsafe.Pointer) int32 {
	return int32(C.resample_extended(rs, C.int(call), parm1, parm2, parm3))
}

func ResampleDestroy(rs *REAPER_Resample_Interface) {
	C.resample_destroy(rs)
}
