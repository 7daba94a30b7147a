package reaper

import (
	"unsafe"

	"github.com/n0izn0iz/go-reaper/raw"
)

// PitchShift drives a host-created IReaperPitchShift instance. The usual
// cycle is Buffer, fill it, BufferDone, then drain with GetSamples.
type PitchShift struct {
	p *raw.IReaperPitchShift
}

// PitchShiftAPI asks the host for a pitch shift instance speaking the SDK
// revision these bindings were built against.
func (r *Reaper) PitchShiftAPI() (*PitchShift, error) {
	r.requireMainThread("ReaperGetPitchShiftAPI")
	p := r.fns.ReaperGetPitchShiftAPI(raw.PitchShiftAPIVersion)
	if p == nil {
		return nil, &CreationError{What: "pitch shift instance"}
	}
	return &PitchShift{p: p}, nil
}

func (ps *PitchShift) SetSampleRate(srate Hz) {
	raw.PitchShiftSetSrate(ps.p, float64(srate))
}

func (ps *PitchShift) SetChannels(nch int32) {
	raw.PitchShiftSetNch(ps.p, nch)
}

// SetShift sets the pitch factor, 1.0 meaning unchanged.
func (ps *PitchShift) SetShift(factor float64) {
	raw.PitchShiftSetShift(ps.p, factor)
}

func (ps *PitchShift) SetFormantShift(factor float64) {
	raw.PitchShiftSetFormantShift(ps.p, factor)
}

func (ps *PitchShift) SetTempo(factor float64) {
	raw.PitchShiftSetTempo(ps.p, factor)
}

func (ps *PitchShift) Reset() {
	raw.PitchShiftReset(ps.p)
}

// Buffer returns the host-owned input buffer for size interleaved samples
// (not frames). Valid until the next Buffer call.
func (ps *PitchShift) Buffer(size int32) []ReaSample {
	return raw.ReaSampleSlice(raw.PitchShiftGetBuffer(ps.p, size), int(size))
}

// BufferDone commits inputFilled samples written into the Buffer slice.
func (ps *PitchShift) BufferDone(inputFilled int32) {
	raw.PitchShiftBufferDone(ps.p, inputFilled)
}

// FlushSamples pushes out whatever the shifter still holds, padding with
// silence.
func (ps *PitchShift) FlushSamples() {
	raw.PitchShiftFlushSamples(ps.p)
}

func (ps *PitchShift) IsReset() bool {
	return raw.PitchShiftIsReset(ps.p)
}

// GetSamples drains up to len(buf) interleaved samples and returns the
// count produced.
func (ps *PitchShift) GetSamples(buf []ReaSample) int32 {
	if len(buf) == 0 {
		return 0
	}
	return raw.PitchShiftGetSamples(ps.p, int32(len(buf)), &buf[0])
}

// SetQualityParameter selects the shift mode; the values mirror the
// dropdown in the host's pitch shift preferences.
func (ps *PitchShift) SetQualityParameter(parm int32) {
	raw.PitchShiftSetQualityParameter(ps.p, parm)
}

// Close destroys the host object. Safe to call twice.
func (ps *PitchShift) Close() {
	if ps.p != nil {
		raw.PitchShiftDestroy(ps.p)
		ps.p = nil
	}
}

func (ps *PitchShift) Raw() *raw.IReaperPitchShift { return ps.p }

// Resampler drives a host-created resampler. Prepare hands out the input
// buffer to fill, Out produces the converted samples.
type Resampler struct {
	p *raw.REAPER_Resample_Interface
}

func (r *Reaper) NewResampler() (*Resampler, error) {
	r.requireMainThread("Resampler_Create")
	p := r.fns.Resampler_Create()
	if p == nil {
		return nil, &CreationError{What: "resampler"}
	}
	return &Resampler{p: p}, nil
}

func (rs *Resampler) SetRates(in, out Hz) {
	raw.ResampleSetRates(rs.p, float64(in), float64(out))
}

func (rs *Resampler) Reset() {
	raw.ResampleReset(rs.p)
}

// CurrentLatency is the present input-side latency in seconds.
func (rs *Resampler) CurrentLatency() float64 {
	return raw.ResampleGetCurrentLatency(rs.p)
}

// Prepare requests outFrames output frames of nch channels. It returns how
// many input frames the resampler wants and the host-owned buffer to write
// them to, interleaved.
func (rs *Resampler) Prepare(outFrames, nch int32) (int32, []ReaSample) {
	var in *raw.ReaSample
	n := raw.ResamplePrepare(rs.p, outFrames, nch, &in)
	return n, raw.ReaSampleSlice(in, int(n)*int(nch))
}

// Out converts framesIn input frames (written after Prepare) into out and
// returns the frame count produced.
func (rs *Resampler) Out(out []ReaSample, framesIn, nch int32) int32 {
	if nch <= 0 || len(out) == 0 {
		return 0
	}
	return raw.ResampleOut(rs.p, &out[0], framesIn, int32(len(out))/nch, nch)
}

func (rs *Resampler) Extended(call int32, parm1, parm2, parm3 unsafe.Pointer) int32 {
	return raw.ResampleExtended(rs.p, call, parm1, parm2, parm3)
}

// Close destroys the host object. Safe to call twice.
func (rs *Resampler) Close() {
	if rs.p != nil {
		raw.ResampleDestroy(rs.p)
		rs.p = nil
	}
}

func (rs *Resampler) Raw() *raw.REAPER_Resample_Interface { return rs.p }
