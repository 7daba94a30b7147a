package reaper

import (
	"testing"

	"github.com/n0izn0iz/go-reaper/raw"
	"github.com/stretchr/testify/require"
)

// memorySink records everything the host hands it.
type memorySink struct {
	BasePcmSink
	start        PositionSeconds
	data         [][]float64
	midiLength   int32
	midiRate     Hz
	extendedCall int32
}

func (s *memorySink) OutputInfoString() string { return "WAV 24 bit" }
func (s *memorySink) FileName() string         { return "out/take.wav" }
func (s *memorySink) NumChannels() int32       { return 2 }
func (s *memorySink) Length() PositionSeconds  { return 1.25 }
func (s *memorySink) FileSize() int64          { return 4096 }
func (s *memorySink) WantMidi() bool           { return true }

func (s *memorySink) StartTime() PositionSeconds      { return s.start }
func (s *memorySink) SetStartTime(st PositionSeconds) { s.start = st }

func (s *memorySink) WriteMidi(events *MidiEventList, length int32, samplerate Hz) {
	s.midiLength = length
	s.midiRate = samplerate
}

func (s *memorySink) WriteDoubles(channels []*ReaSample, length, offset, spacing int32) {
	for len(s.data) < len(channels) {
		s.data = append(s.data, nil)
	}
	span := int(offset) + int(length-1)*int(spacing) + 1
	for ch, p := range channels {
		view := raw.ReaSampleSlice(p, span)
		for i := int32(0); i < length; i++ {
			s.data[ch] = append(s.data[ch], float64(view[offset+i*spacing]))
		}
	}
}

func (s *memorySink) LastSecondPeaks(buf []ReaSample) int32 {
	if len(buf) < 2 {
		return 0
	}
	buf[0] = 0.5
	buf[1] = 0.25
	return 1
}

func (s *memorySink) Extended(args ExtendedArgs) int32 {
	s.extendedCall = args.Call
	return 3
}

func TestOwnedPcmSinkDrivesImpl(t *testing.T) {
	impl := &memorySink{}
	owned := NewOwnedPcmSink(impl)
	defer owned.Close()
	p := owned.Raw()

	require.Same(t, impl, owned.Impl())

	buf := raw.AllocCharBuf(64)
	defer raw.FreeCString(buf)
	raw.PcmSinkGetOutputInfoString(p, buf, 64)
	require.Equal(t, "WAV 24 bit", raw.GoString(buf))

	name := raw.PcmSinkGetFileName(p)
	require.Equal(t, "out/take.wav", raw.GoString(name))
	require.Same(t, name, raw.PcmSinkGetFileName(p))

	require.Equal(t, int32(2), raw.PcmSinkGetNumChannels(p))
	require.Equal(t, 1.25, raw.PcmSinkGetLength(p))
	require.Equal(t, int64(4096), raw.PcmSinkGetFileSize(p))
	require.True(t, raw.PcmSinkWantMIDI(p))

	raw.PcmSinkSetStartTime(p, 2.5)
	require.Equal(t, PositionSeconds(2.5), impl.start)
	require.Equal(t, 2.5, raw.PcmSinkGetStartTime(p))

	raw.PcmSinkWriteMIDI(p, nil, 256, 48000)
	require.Equal(t, int32(256), impl.midiLength)
	require.Equal(t, Hz(48000), impl.midiRate)

	require.Equal(t, int32(3), raw.PcmSinkExtended(p, 0x2000, nil, nil, nil))
	require.Equal(t, int32(0x2000), impl.extendedCall)
}

func TestOwnedPcmSinkWriteDoubles(t *testing.T) {
	impl := &memorySink{}
	owned := NewOwnedPcmSink(impl)
	defer owned.Close()

	const frames = 4
	xfer := raw.AllocSourceTransfer(2, frames)
	defer raw.FreeSourceTransfer(xfer)
	samples := raw.SourceTransferSamples(xfer)
	for i := 0; i < frames; i++ {
		samples[i] = ReaSample(i + 1)
		samples[frames+i] = -ReaSample(i + 1)
	}

	channels := []*ReaSample{&samples[0], &samples[frames]}
	raw.PcmSinkWriteDoubles(owned.Raw(), &channels[0], frames, 2, 0, 1)

	require.Equal(t, [][]float64{{1, 2, 3, 4}, {-1, -2, -3, -4}}, impl.data)
}

func TestOwnedPcmSinkPeaks(t *testing.T) {
	owned := NewOwnedPcmSink(&memorySink{})
	defer owned.Close()

	xfer := raw.AllocSourceTransfer(1, 2)
	defer raw.FreeSourceTransfer(xfer)
	peaks := raw.SourceTransferSamples(xfer)

	require.Equal(t, int32(1), raw.PcmSinkGetLastSecondPeaks(owned.Raw(), 2, &peaks[0]))
	require.Equal(t, raw.ReaSample(0.5), peaks[0])
	require.Equal(t, raw.ReaSample(0.25), peaks[1])
}

func TestOwnedPcmSinkDetachAndClose(t *testing.T) {
	owned := NewOwnedPcmSink(&memorySink{})

	detached := owned.Detach()
	require.NotNil(t, detached)
	require.Nil(t, owned.Raw())
	owned.Close()

	require.Equal(t, int32(2), raw.PcmSinkGetNumChannels(detached))
	raw.DeletePcmSink(detached)

	second := NewOwnedPcmSink(&memorySink{})
	second.Close()
	require.NotPanics(t, second.Close)
	require.Nil(t, second.Raw())
}

func TestBasePcmSinkDefaults(t *testing.T) {
	owned := NewOwnedPcmSink(BasePcmSink{})
	defer owned.Close()
	p := owned.Raw()

	require.Equal(t, int32(0), raw.PcmSinkGetNumChannels(p))
	require.Equal(t, float64(0), raw.PcmSinkGetLength(p))
	require.Equal(t, int64(0), raw.PcmSinkGetFileSize(p))
	require.False(t, raw.PcmSinkWantMIDI(p))
	require.Equal(t, "", raw.GoString(raw.PcmSinkGetFileName(p)))
	require.Equal(t, int32(0), raw.PcmSinkExtended(p, 1, nil, nil, nil))
}
