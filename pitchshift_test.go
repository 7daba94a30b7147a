package reaper

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPitchShiftBufferCycle(t *testing.T) {
	r := newTestReaper(t)

	ps, err := r.PitchShiftAPI()
	require.NoError(t, err)
	defer ps.Close()

	ps.SetSampleRate(48000)
	ps.SetChannels(1)
	ps.SetShift(1.5)
	ps.SetFormantShift(1)
	ps.SetTempo(1)
	ps.SetQualityParameter(0)

	in := ps.Buffer(4)
	require.Len(t, in, 4)
	for i := range in {
		in[i] = ReaSample(i+1) / 8
	}
	ps.BufferDone(4)
	require.False(t, ps.IsReset())

	out := make([]ReaSample, 8)
	require.Equal(t, int32(4), ps.GetSamples(out))
	require.Equal(t, []ReaSample{0.125, 0.25, 0.375, 0.5}, out[:4])
	require.Equal(t, int32(0), ps.GetSamples(nil))

	ps.FlushSamples()
	ps.Reset()
	require.True(t, ps.IsReset())

	ps.Close()
	require.NotPanics(t, ps.Close)
}

func TestResamplerPrepareOut(t *testing.T) {
	r := newTestReaper(t)

	rs, err := r.NewResampler()
	require.NoError(t, err)
	defer rs.Close()

	rs.SetRates(44100, 48000)
	require.Equal(t, 0.0, rs.CurrentLatency())

	n, in := rs.Prepare(4, 2)
	require.Equal(t, int32(4), n)
	require.Len(t, in, 8)
	for i := range in {
		in[i] = ReaSample(i) / 16
	}

	out := make([]ReaSample, 8)
	require.Equal(t, int32(4), rs.Out(out, 4, 2))
	require.Equal(t, in, out)
	require.Equal(t, int32(0), rs.Out(nil, 4, 2))
	require.Equal(t, int32(0), rs.Extended(0x100, nil, nil, nil))

	rs.Reset()
	rs.Close()
	require.NotPanics(t, rs.Close)
}
