package reaper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/n0izn0iz/go-reaper/raw"
	"github.com/stretchr/testify/require"
)

// toneSource is a minimal in-project source: fixed format, one state line.
type toneSource struct {
	BasePcmSource
	freq        float64
	available   bool
	loadedFirst string
	lastTime    PositionSeconds
	lastRate    Hz
}

func newToneSource(freq float64) *toneSource {
	return &toneSource{freq: freq, available: true}
}

func (s *toneSource) TypeString() string      { return "GOTONE" }
func (s *toneSource) NumChannels() int32      { return 2 }
func (s *toneSource) SampleRate() Hz          { return 48000 }
func (s *toneSource) Length() PositionSeconds { return 4.5 }
func (s *toneSource) IsAvailable() bool       { return s.available }
func (s *toneSource) SetAvailable(avail bool) { s.available = avail }

func (s *toneSource) Duplicate() *OwnedPcmSource {
	return NewOwnedPcmSource(newToneSource(s.freq))
}

func (s *toneSource) GetSamples(block *SampleBlock) {
	s.lastTime = block.TimeS()
	s.lastRate = block.SampleRate()
	out := block.Samples()
	for i := range out {
		out[i] = ReaSample(i) / 8
	}
	block.SetSamplesOut(block.Length())
}

func (s *toneSource) SaveState(w *StateWriter) {
	w.AddLinef("FREQ %g", s.freq)
}

func (s *toneSource) LoadState(firstLine string, r *StateReader) error {
	s.loadedFirst = firstLine
	seen := false
	for {
		line, ok := r.ReadLine()
		if !ok || line == ">" {
			break
		}
		var freq float64
		if n, _ := fmt.Sscanf(line, "FREQ %f", &freq); n == 1 {
			s.freq = freq
			seen = true
		}
	}
	if !seen {
		return errors.New("tone state without FREQ")
	}
	return nil
}

// unsizedSource reports no sample rate and no usable length.
type unsizedSource struct{ BasePcmSource }

func (unsizedSource) Length() PositionSeconds { return -1 }

func TestOwnedPcmSourceDrivesImpl(t *testing.T) {
	src := newToneSource(440)
	owned := NewOwnedPcmSource(src)
	defer owned.Close()
	p := owned.Raw()

	require.Same(t, src, owned.Impl())

	typ := raw.PcmSourceGetType(p)
	require.Equal(t, "GOTONE", raw.GoString(typ))
	require.Same(t, typ, raw.PcmSourceGetType(p))

	require.Equal(t, int32(2), raw.PcmSourceGetNumChannels(p))
	require.Equal(t, float64(48000), raw.PcmSourceGetSampleRate(p))
	require.Equal(t, 4.5, raw.PcmSourceGetLength(p))

	require.True(t, raw.PcmSourceIsAvailable(p))
	raw.PcmSourceSetAvailable(p, false)
	require.False(t, src.available)
	require.False(t, raw.PcmSourceIsAvailable(p))
}

func TestOwnedPcmSourceSampleTransfer(t *testing.T) {
	src := newToneSource(440)
	owned := NewOwnedPcmSource(src)
	defer owned.Close()

	xfer := raw.AllocSourceTransfer(2, 8)
	defer raw.FreeSourceTransfer(xfer)
	raw.SourceTransferSetTimeS(xfer, 1.5)
	raw.SourceTransferSetSampleRate(xfer, 44100)

	raw.PcmSourceGetSamples(owned.Raw(), xfer)

	require.Equal(t, PositionSeconds(1.5), src.lastTime)
	require.Equal(t, Hz(44100), src.lastRate)
	require.Equal(t, int32(8), raw.SourceTransferSamplesOut(xfer))

	samples := raw.SourceTransferSamples(xfer)
	require.Len(t, samples, 16)
	require.Equal(t, raw.ReaSample(0.625), samples[5])
}

func TestOwnedPcmSourceStateRoundTrip(t *testing.T) {
	owned := NewOwnedPcmSource(newToneSource(440))
	defer owned.Close()

	mem := &MemoryProjectState{}
	st := NewOwnedProjectState(mem)
	defer st.Close()

	raw.PcmSourceSaveState(owned.Raw(), st.Raw())
	require.Equal(t, []string{"FREQ 440"}, mem.Lines())

	loaded := newToneSource(0)
	owned2 := NewOwnedPcmSource(loaded)
	defer owned2.Close()

	first := raw.CString("<SOURCE GOTONE")
	defer raw.FreeCString(first)
	require.Equal(t, int32(0), raw.PcmSourceLoadState(owned2.Raw(), first, st.Raw()))
	require.Equal(t, float64(440), loaded.freq)
	require.Equal(t, "<SOURCE GOTONE", loaded.loadedFirst)
}

func TestOwnedPcmSourceLoadStateRejectsBadBlock(t *testing.T) {
	owned := NewOwnedPcmSource(newToneSource(0))
	defer owned.Close()

	st := NewOwnedProjectState(&MemoryProjectState{})
	defer st.Close()
	st.Writer().AddLine("NOISE 1")
	st.Writer().AddLine(">")

	first := raw.CString("<SOURCE GOTONE")
	defer raw.FreeCString(first)
	require.Equal(t, int32(-1), raw.PcmSourceLoadState(owned.Raw(), first, st.Raw()))
}

func TestOwnedPcmSourceDuplicateDetaches(t *testing.T) {
	owned := NewOwnedPcmSource(newToneSource(330))
	defer owned.Close()

	dup := raw.PcmSourceDuplicate(owned.Raw())
	require.NotNil(t, dup)
	require.True(t, dup != owned.Raw())
	require.Equal(t, "GOTONE", raw.GoString(raw.PcmSourceGetType(dup)))
	raw.DeletePcmSource(dup)
}

func TestOwnedPcmSourceDetach(t *testing.T) {
	owned := NewOwnedPcmSource(newToneSource(220))

	detached := owned.Detach()
	require.NotNil(t, detached)
	require.Nil(t, owned.Raw())
	owned.Close()

	require.Equal(t, "GOTONE", raw.GoString(raw.PcmSourceGetType(detached)))
	raw.DeletePcmSource(detached)
}

func TestOwnedPcmSourceCloseTwice(t *testing.T) {
	owned := NewOwnedPcmSource(newToneSource(110))
	owned.Close()
	require.NotPanics(t, owned.Close)
	require.Nil(t, owned.Raw())
}

func TestBasePcmSourceDefaults(t *testing.T) {
	owned := NewOwnedPcmSource(BasePcmSource{})
	defer owned.Close()
	p := owned.Raw()

	require.True(t, raw.PcmSourceIsAvailable(p))
	require.Equal(t, int32(64), raw.PcmSourceGetBitsPerSample(p))
	require.Equal(t, float64(-1), raw.PcmSourceGetLengthBeats(p))
	require.Equal(t, float64(-1), raw.PcmSourceGetPreferredPosition(p))
	require.Nil(t, raw.PcmSourceDuplicate(p))
	require.Equal(t, int32(0), raw.PcmSourceExtended(p, 0x1000, nil, nil, nil))
}

func TestHostPcmSourceSentinels(t *testing.T) {
	require.Nil(t, WrapHostPcmSource(nil))

	owned := NewOwnedPcmSource(newToneSource(440))
	defer owned.Close()
	host := WrapHostPcmSource(owned.Raw())

	require.Equal(t, "GOTONE", host.TypeString())
	require.Equal(t, int32(2), host.NumChannels())
	require.True(t, host.IsAvailable())
	sr, ok := host.SampleRate()
	require.True(t, ok)
	require.Equal(t, Hz(48000), sr)
	length, err := host.Length()
	require.NoError(t, err)
	require.Equal(t, PositionSeconds(4.5), length)

	blank := NewOwnedPcmSource(unsizedSource{})
	defer blank.Close()
	opaque := WrapHostPcmSource(blank.Raw())

	_, ok = opaque.SampleRate()
	require.False(t, ok)
	_, err = opaque.Length()
	require.True(t, errors.Is(err, ErrSourceLengthUnavailable))
}
