package reaper

import (
	"unsafe"

	"github.com/n0izn0iz/go-reaper/raw"
)

// CustomPcmSource is a PCM source implemented in Go. GetSamples and
// GetPeakInfo run on whatever thread the host picks, frequently the audio
// thread; keep them allocation-free. Embed BasePcmSource for the methods
// you do not override.
type CustomPcmSource interface {
	// Duplicate returns an independent copy, nil when the source cannot be
	// duplicated. The host takes ownership of the copy.
	Duplicate() *OwnedPcmSource
	IsAvailable() bool
	SetAvailable(available bool)
	// TypeString identifies the source type in project files, e.g. "SINE".
	// Must stay stable for the lifetime of the source.
	TypeString() string
	// FileName is empty for in-project sources.
	FileName() string
	SetFileName(name string) bool
	Source() *raw.PCM_source
	SetSource(src *raw.PCM_source)
	NumChannels() int32
	SampleRate() Hz
	Length() PositionSeconds
	// LengthBeats is negative when a musical length does not apply.
	LengthBeats() float64
	BitsPerSample() int32
	// PreferredPosition is negative when there is none.
	PreferredPosition() PositionSeconds
	PropertiesWindow(parent HWND) int32
	GetSamples(block *SampleBlock)
	GetPeakInfo(block *raw.PeakTransfer)
	SaveState(w *StateWriter)
	// LoadState gets the first line of the serialized block plus a reader
	// for the rest. A non-nil error rejects the state.
	LoadState(firstLine string, r *StateReader) error
	PeaksClear(deleteFile bool)
	PeaksBuildBegin() int32
	PeaksBuildRun() int32
	PeaksBuildFinish()
	Extended(args ExtendedArgs) int32
}

// BasePcmSource implements CustomPcmSource with the defaults of the SDK
// base class.
type BasePcmSource struct{}

var _ CustomPcmSource = BasePcmSource{}

func (BasePcmSource) Duplicate() *OwnedPcmSource          { return nil }
func (BasePcmSource) IsAvailable() bool                   { return true }
func (BasePcmSource) SetAvailable(bool)                   {}
func (BasePcmSource) TypeString() string                  { return "" }
func (BasePcmSource) FileName() string                    { return "" }
func (BasePcmSource) SetFileName(string) bool             { return false }
func (BasePcmSource) Source() *raw.PCM_source             { return nil }
func (BasePcmSource) SetSource(*raw.PCM_source)           {}
func (BasePcmSource) NumChannels() int32                  { return 0 }
func (BasePcmSource) SampleRate() Hz                      { return 0 }
func (BasePcmSource) Length() PositionSeconds             { return 0 }
func (BasePcmSource) LengthBeats() float64                { return -1 }
func (BasePcmSource) BitsPerSample() int32                { return 64 }
func (BasePcmSource) PreferredPosition() PositionSeconds  { return -1 }
func (BasePcmSource) PropertiesWindow(HWND) int32         { return 0 }
func (BasePcmSource) GetSamples(*SampleBlock)             {}
func (BasePcmSource) GetPeakInfo(*raw.PeakTransfer)       {}
func (BasePcmSource) SaveState(*StateWriter)              {}
func (BasePcmSource) LoadState(string, *StateReader) error { return nil }
func (BasePcmSource) PeaksClear(bool)                     {}
func (BasePcmSource) PeaksBuildBegin() int32              { return 0 }
func (BasePcmSource) PeaksBuildRun() int32                { return 0 }
func (BasePcmSource) PeaksBuildFinish()                   {}
func (BasePcmSource) Extended(ExtendedArgs) int32         { return 0 }

// SampleBlock is the transfer block of a GetSamples call. Fill Samples with
// up to Channels*Length interleaved values starting at TimeS, then record
// the produced frame count with SetSamplesOut.
type SampleBlock struct {
	t *raw.SourceTransfer
}

func (b *SampleBlock) TimeS() PositionSeconds {
	return PositionSeconds(raw.SourceTransferTimeS(b.t))
}

func (b *SampleBlock) SampleRate() Hz {
	return Hz(raw.SourceTransferSampleRate(b.t))
}

func (b *SampleBlock) Channels() int32 { return raw.SourceTransferNch(b.t) }

// Length is the requested frame count.
func (b *SampleBlock) Length() int32 { return raw.SourceTransferLength(b.t) }

// Samples views the host-owned interleaved output buffer.
func (b *SampleBlock) Samples() []ReaSample { return raw.SourceTransferSamples(b.t) }

func (b *SampleBlock) SetSamplesOut(frames int32) {
	raw.SourceTransferSetSamplesOut(b.t, frames)
}

func (b *SampleBlock) AbsoluteTimeS() PositionSeconds {
	return PositionSeconds(raw.SourceTransferAbsoluteTimeS(b.t))
}

func (b *SampleBlock) Raw() *raw.SourceTransfer { return b.t }

// customSourceAdapter bridges a CustomPcmSource to the C-typed callback
// interface the glue object calls.
type customSourceAdapter struct {
	impl       CustomPcmSource
	typeString *raw.Char
	fileName   *raw.Char
}

var _ raw.PcmSource = (*customSourceAdapter)(nil)

func (a *customSourceAdapter) close() {
	for _, slot := range []**raw.Char{&a.typeString, &a.fileName} {
		if *slot != nil {
			raw.FreeCString(*slot)
			*slot = nil
		}
	}
}

func (a *customSourceAdapter) Duplicate() *raw.PCM_source {
	if dup := a.impl.Duplicate(); dup != nil {
		return dup.Detach()
	}
	return nil
}

func (a *customSourceAdapter) IsAvailable() bool { return a.impl.IsAvailable() }

func (a *customSourceAdapter) SetAvailable(avail bool) { a.impl.SetAvailable(avail) }

func (a *customSourceAdapter) GetType() *raw.Char {
	return cachedCString(&a.typeString, a.impl.TypeString())
}

func (a *customSourceAdapter) GetFileName() *raw.Char {
	return cachedCString(&a.fileName, a.impl.FileName())
}

func (a *customSourceAdapter) SetFileName(newfn *raw.Char) bool {
	ok := a.impl.SetFileName(raw.GoString(newfn))
	if ok && a.fileName != nil {
		raw.FreeCString(a.fileName)
		a.fileName = nil
	}
	return ok
}

func (a *customSourceAdapter) GetSource() *raw.PCM_source { return a.impl.Source() }

func (a *customSourceAdapter) SetSource(src *raw.PCM_source) { a.impl.SetSource(src) }

func (a *customSourceAdapter) GetNumChannels() int32 { return a.impl.NumChannels() }

func (a *customSourceAdapter) GetSampleRate() float64 { return float64(a.impl.SampleRate()) }

func (a *customSourceAdapter) GetLength() float64 { return float64(a.impl.Length()) }

func (a *customSourceAdapter) GetLengthBeats() float64 { return a.impl.LengthBeats() }

func (a *customSourceAdapter) GetBitsPerSample() int32 { return a.impl.BitsPerSample() }

func (a *customSourceAdapter) GetPreferredPosition() float64 {
	return float64(a.impl.PreferredPosition())
}

func (a *customSourceAdapter) PropertiesWindow(parent HWND) int32 {
	return a.impl.PropertiesWindow(parent)
}

func (a *customSourceAdapter) GetSamples(block *raw.SourceTransfer) {
	a.impl.GetSamples(&SampleBlock{t: block})
}

func (a *customSourceAdapter) GetPeakInfo(block *raw.PeakTransfer) {
	a.impl.GetPeakInfo(block)
}

func (a *customSourceAdapter) SaveState(ctx *raw.ProjectStateContext) {
	a.impl.SaveState(&StateWriter{ctx: ctx})
}

func (a *customSourceAdapter) LoadState(firstline *raw.Char, ctx *raw.ProjectStateContext) int32 {
	if err := a.impl.LoadState(raw.GoString(firstline), &StateReader{ctx: ctx}); err != nil {
		return -1
	}
	return 0
}

func (a *customSourceAdapter) PeaksClear(deleteFile bool) { a.impl.PeaksClear(deleteFile) }

func (a *customSourceAdapter) PeaksBuildBegin() int32 { return a.impl.PeaksBuildBegin() }

func (a *customSourceAdapter) PeaksBuildRun() int32 { return a.impl.PeaksBuildRun() }

func (a *customSourceAdapter) PeaksBuildFinish() { a.impl.PeaksBuildFinish() }

func (a *customSourceAdapter) Extended(call int32, parm1, parm2, parm3 unsafe.Pointer) int32 {
	return a.impl.Extended(ExtendedArgs{Call: call, Parm1: parm1, Parm2: parm2, Parm3: parm3})
}

// OwnedPcmSource is a PCM_source object whose behavior lives in a Go
// CustomPcmSource. Either dispose of it with Close or pass ownership of the
// C++ object to the host with Detach.
type OwnedPcmSource struct {
	src     *raw.PCM_source
	target  uintptr
	adapter *customSourceAdapter
}

// NewOwnedPcmSource wires impl behind a host-callable PCM_source object.
func NewOwnedPcmSource(impl CustomPcmSource) *OwnedPcmSource {
	a := &customSourceAdapter{impl: impl}
	target := raw.RegisterTarget(a)
	return &OwnedPcmSource{
		src:     raw.NewPcmSource(target),
		target:  target,
		adapter: a,
	}
}

// Raw returns the host-callable object, nil after Close or Detach.
func (o *OwnedPcmSource) Raw() *raw.PCM_source { return o.src }

func (o *OwnedPcmSource) Impl() CustomPcmSource { return o.adapter.impl }

// Detach hands the C++ object to the host, which becomes responsible for
// deleting it. The Go-side callback registration stays alive, since the
// object keeps calling into it; it is only reclaimed at plugin unload.
func (o *OwnedPcmSource) Detach() *raw.PCM_source {
	src := o.src
	o.src = nil
	return src
}

// Close deletes the C++ object and releases the Go callback registration.
// Safe to call twice; a no-op after Detach.
func (o *OwnedPcmSource) Close() {
	if o.src == nil {
		return
	}
	raw.DeletePcmSource(o.src)
	raw.ReleaseTarget(o.target)
	o.adapter.close()
	o.src = nil
}

// HostPcmSource wraps a source object the host created, normalizing the
// SDK's sentinel returns. It does not own the object; destruction goes
// through Reaper.PcmSourceDestroy.
type HostPcmSource struct {
	p *raw.PCM_source
}

// PcmSourceCreateFromFile asks the host to open fileName with whatever
// decoder matches.
func (r *Reaper) PcmSourceCreateFromFile(fileName string) (*HostPcmSource, error) {
	r.requireMainThread("PCM_Source_CreateFromFile")
	c := raw.CString(fileName)
	defer raw.FreeCString(c)
	src := r.fns.PCM_Source_CreateFromFile(c)
	if src == nil {
		return nil, &CreationError{What: "PCM source for " + fileName}
	}
	return &HostPcmSource{p: src}, nil
}

// PcmSourceDestroy destroys a host-created source.
func (r *Reaper) PcmSourceDestroy(src *HostPcmSource) {
	r.requireMainThread("PCM_Source_Destroy")
	if src.p != nil {
		r.fns.PCM_Source_Destroy(src.p)
		src.p = nil
	}
}

// WrapHostPcmSource views an existing host-owned source, such as one found
// on a take.
func WrapHostPcmSource(p *raw.PCM_source) *HostPcmSource {
	if p == nil {
		return nil
	}
	return &HostPcmSource{p: p}
}

func (s *HostPcmSource) Raw() *raw.PCM_source { return s.p }

func (s *HostPcmSource) IsAvailable() bool { return raw.PcmSourceIsAvailable(s.p) }

func (s *HostPcmSource) TypeString() string {
	return raw.GoString(raw.PcmSourceGetType(s.p))
}

func (s *HostPcmSource) FileName() string {
	return raw.GoString(raw.PcmSourceGetFileName(s.p))
}

func (s *HostPcmSource) NumChannels() int32 { return raw.PcmSourceGetNumChannels(s.p) }

// SampleRate is absent when the source does not state one, such as MIDI.
func (s *HostPcmSource) SampleRate() (Hz, bool) {
	sr := raw.PcmSourceGetSampleRate(s.p)
	if sr < 1 {
		return 0, false
	}
	return Hz(sr), true
}

// Length is ErrSourceLengthUnavailable when the source cannot state one.
func (s *HostPcmSource) Length() (PositionSeconds, error) {
	l := raw.PcmSourceGetLength(s.p)
	if l < 0 {
		return 0, ErrSourceLengthUnavailable
	}
	return PositionSeconds(l), nil
}

func (s *HostPcmSource) GetSamples(block *SampleBlock) {
	raw.PcmSourceGetSamples(s.p, block.t)
}

// Duplicate copies the source. The copy is again host-owned.
func (s *HostPcmSource) Duplicate() *HostPcmSource {
	return WrapHostPcmSource(raw.PcmSourceDuplicate(s.p))
}
