package reaper

import (
	"unsafe"

	"github.com/n0izn0iz/go-reaper/raw"
)

// CustomPcmSink is a PCM sink implemented in Go. WriteMidi and WriteDoubles
// run on the host's render thread during recording or rendering; keep them
// allocation-free. Embed BasePcmSink for the methods you do not override.
type CustomPcmSink interface {
	// OutputInfoString is shown in render and recording status, e.g.
	// "WAV 24 bit".
	OutputInfoString() string
	StartTime() PositionSeconds
	SetStartTime(st PositionSeconds)
	FileName() string
	NumChannels() int32
	// Length is the material written so far, in seconds.
	Length() PositionSeconds
	FileSize() int64
	WriteMidi(events *MidiEventList, length int32, samplerate Hz)
	// WriteDoubles receives one pointer per channel; each channel holds
	// length samples starting at offset, spacing samples apart.
	WriteDoubles(channels []*ReaSample, length, offset, spacing int32)
	WantMidi() bool
	// LastSecondPeaks fills buf with interleaved peak values for the
	// meters and returns nonzero when it did.
	LastSecondPeaks(buf []ReaSample) int32
	GetPeakInfo(block *raw.PeakTransfer)
	Extended(args ExtendedArgs) int32
}

// BasePcmSink implements CustomPcmSink as a sink that accepts and discards
// nothing in particular.
type BasePcmSink struct{}

var _ CustomPcmSink = BasePcmSink{}

func (BasePcmSink) OutputInfoString() string                  { return "" }
func (BasePcmSink) StartTime() PositionSeconds                { return 0 }
func (BasePcmSink) SetStartTime(PositionSeconds)              {}
func (BasePcmSink) FileName() string                          { return "" }
func (BasePcmSink) NumChannels() int32                        { return 0 }
func (BasePcmSink) Length() PositionSeconds                   { return 0 }
func (BasePcmSink) FileSize() int64                           { return 0 }
func (BasePcmSink) WriteMidi(*MidiEventList, int32, Hz)       {}
func (BasePcmSink) WriteDoubles([]*ReaSample, int32, int32, int32) {}
func (BasePcmSink) WantMidi() bool                            { return false }
func (BasePcmSink) LastSecondPeaks([]ReaSample) int32         { return 0 }
func (BasePcmSink) GetPeakInfo(*raw.PeakTransfer)             {}
func (BasePcmSink) Extended(ExtendedArgs) int32               { return 0 }

// customSinkAdapter bridges a CustomPcmSink to the C-typed callback
// interface the glue object calls.
type customSinkAdapter struct {
	impl     CustomPcmSink
	fileName *raw.Char
}

var _ raw.PcmSink = (*customSinkAdapter)(nil)

func (a *customSinkAdapter) close() {
	if a.fileName != nil {
		raw.FreeCString(a.fileName)
		a.fileName = nil
	}
}

func (a *customSinkAdapter) GetOutputInfoString(buf *raw.Char, buflen int32) {
	raw.FillCharBuf(buf, buflen, a.impl.OutputInfoString())
}

func (a *customSinkAdapter) GetStartTime() float64 { return float64(a.impl.StartTime()) }

func (a *customSinkAdapter) SetStartTime(st float64) { a.impl.SetStartTime(PositionSeconds(st)) }

func (a *customSinkAdapter) GetFileName() *raw.Char {
	return cachedCString(&a.fileName, a.impl.FileName())
}

func (a *customSinkAdapter) GetNumChannels() int32 { return a.impl.NumChannels() }

func (a *customSinkAdapter) GetLength() float64 { return float64(a.impl.Length()) }

func (a *customSinkAdapter) GetFileSize() int64 { return a.impl.FileSize() }

func (a *customSinkAdapter) WriteMIDI(events *raw.MidiEventList, length int32, samplerate float64) {
	a.impl.WriteMidi(events, length, Hz(samplerate))
}

func (a *customSinkAdapter) WriteDoubles(samples **raw.ReaSample, length, nch, offset, spacing int32) {
	a.impl.WriteDoubles(raw.ReaSamplePtrSlice(samples, int(nch)), length, offset, spacing)
}

func (a *customSinkAdapter) WantMIDI() bool { return a.impl.WantMidi() }

func (a *customSinkAdapter) GetLastSecondPeaks(sz int32, buf *raw.ReaSample) int32 {
	return a.impl.LastSecondPeaks(raw.ReaSampleSlice(buf, int(sz)))
}

func (a *customSinkAdapter) GetPeakInfo(block *raw.PeakTransfer) { a.impl.GetPeakInfo(block) }

func (a *customSinkAdapter) Extended(call int32, parm1, parm2, parm3 unsafe.Pointer) int32 {
	return a.impl.Extended(ExtendedArgs{Call: call, Parm1: parm1, Parm2: parm2, Parm3: parm3})
}

// OwnedPcmSink is a PCM_sink object whose behavior lives in a Go
// CustomPcmSink. Either dispose of it with Close or pass ownership of the
// C++ object to the host with Detach.
type OwnedPcmSink struct {
	sink    *raw.PCM_sink
	target  uintptr
	adapter *customSinkAdapter
}

// NewOwnedPcmSink wires impl behind a host-callable PCM_sink object.
func NewOwnedPcmSink(impl CustomPcmSink) *OwnedPcmSink {
	a := &customSinkAdapter{impl: impl}
	target := raw.RegisterTarget(a)
	return &OwnedPcmSink{
		sink:    raw.NewPcmSink(target),
		target:  target,
		adapter: a,
	}
}

// Raw returns the host-callable object, nil after Close or Detach.
func (o *OwnedPcmSink) Raw() *raw.PCM_sink { return o.sink }

func (o *OwnedPcmSink) Impl() CustomPcmSink { return o.adapter.impl }

// Detach hands the C++ object to the host. The Go-side callback
// registration stays alive, since the object keeps calling into it.
func (o *OwnedPcmSink) Detach() *raw.PCM_sink {
	sink := o.sink
	o.sink = nil
	return sink
}

// Close deletes the C++ object and releases the Go callback registration.
// Safe to call twice; a no-op after Detach.
func (o *OwnedPcmSink) Close() {
	if o.sink == nil {
		return
	}
	raw.DeletePcmSink(o.sink)
	raw.ReleaseTarget(o.target)
	o.adapter.close()
	o.sink = nil
}

// HostPcmSink wraps a sink the host created through PCM_Sink_Create. Close
// it when done writing; the file is finalized by the destructor.
type HostPcmSink struct {
	p *raw.PCM_sink
}

// PcmSinkCreate asks the host for a file writer. cfg selects and configures
// the format the way render presets do; nil picks the format matching the
// file extension with default settings.
func (r *Reaper) PcmSinkCreate(fileName string, cfg []byte, nch int32, srate Hz, buildPeaks bool) (*HostPcmSink, error) {
	r.requireMainThread("PCM_Sink_Create")
	c := raw.CString(fileName)
	defer raw.FreeCString(c)
	var cfgPtr *raw.Char
	if len(cfg) > 0 {
		cfgPtr = (*raw.Char)(unsafe.Pointer(&cfg[0]))
	}
	sink := r.fns.PCM_Sink_Create(c, cfgPtr, int32(len(cfg)), nch, int32(srate), buildPeaks)
	if sink == nil {
		return nil, &CreationError{What: "PCM sink for " + fileName}
	}
	return &HostPcmSink{p: sink}, nil
}

func (s *HostPcmSink) Raw() *raw.PCM_sink { return s.p }

func (s *HostPcmSink) FileName() string {
	return raw.GoString(raw.PcmSinkGetFileName(s.p))
}

func (s *HostPcmSink) NumChannels() int32 { return raw.PcmSinkGetNumChannels(s.p) }

func (s *HostPcmSink) Length() PositionSeconds {
	return PositionSeconds(raw.PcmSinkGetLength(s.p))
}

func (s *HostPcmSink) FileSize() int64 { return raw.PcmSinkGetFileSize(s.p) }

func (s *HostPcmSink) WantMidi() bool { return raw.PcmSinkWantMIDI(s.p) }

// WriteDoubles appends length samples per channel. channels holds one
// pointer per channel; offset and spacing address into each channel buffer.
func (s *HostPcmSink) WriteDoubles(channels []*ReaSample, length, offset, spacing int32) {
	if len(channels) == 0 {
		return
	}
	raw.PcmSinkWriteDoubles(s.p, &channels[0], length, int32(len(channels)), offset, spacing)
}

func (s *HostPcmSink) WriteMidi(events *MidiEventList, length int32, samplerate Hz) {
	raw.PcmSinkWriteMIDI(s.p, events, length, float64(samplerate))
}

// Close finalizes the file and deletes the sink. Safe to call twice.
func (s *HostPcmSink) Close() {
	if s.p != nil {
		raw.PcmSinkDestroy(s.p)
		s.p = nil
	}
}
