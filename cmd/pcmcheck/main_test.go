package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/require"

	reaper "github.com/n0izn0iz/go-reaper"
	"github.com/n0izn0iz/go-reaper/raw"
)

// rate and block size are powers of two so block positions stay exact and
// the frame count is deterministic.
func TestSineThroughBridge(t *testing.T) {
	const (
		nch       = 2
		rate      = 32768
		blockSize = 128
		seconds   = 0.01
	)

	src := reaper.NewOwnedPcmSource(&sineSource{
		freq:     256,
		rate:     rate,
		channels: nch,
		seconds:  seconds,
	})
	defer src.Close()

	sink := reaper.NewOwnedPcmSink(&wavSink{
		fileName: "probe.wav",
		channels: nch,
		rate:     rate,
	})
	defer sink.Close()

	xfer := raw.AllocSourceTransfer(nch, blockSize)
	defer raw.FreeSourceTransfer(xfer)
	raw.SourceTransferSetSampleRate(xfer, rate)

	ptrs := make([]*raw.ReaSample, nch)
	var frames int64
	for pos := 0.0; ; pos += float64(blockSize) / rate {
		raw.SourceTransferSetTimeS(xfer, pos)
		raw.SourceTransferSetSamplesOut(xfer, 0)
		raw.PcmSourceGetSamples(src.Raw(), xfer)
		got := raw.SourceTransferSamplesOut(xfer)
		if got <= 0 {
			break
		}
		samples := raw.SourceTransferSamples(xfer)
		for ch := 0; ch < nch; ch++ {
			ptrs[ch] = &samples[ch]
		}
		raw.PcmSinkWriteDoubles(sink.Raw(), &ptrs[0], got, nch, 0, nch)
		frames += int64(got)
	}

	total := seconds * rate
	require.Equal(t, int64(total), frames)

	capture := sink.Impl().(*wavSink)
	require.Len(t, capture.data, int(frames)*nch)
	require.Equal(t, capture.data[0], capture.data[1])

	sig := stage(capture.data, nch)
	require.InDelta(t, 0.5, channelPeak(sig, 0), 1e-9)
	require.InDelta(t, 0.5, channelPeak(sig, 1), 1e-9)
}

func TestStageAndChannelPeak(t *testing.T) {
	sig := stage([]float64{0.1, -0.9, 0.3, 0.2}, 2)
	require.Equal(t, 2, sig.Length())
	require.Equal(t, 0.3, channelPeak(sig, 0))
	require.Equal(t, 0.9, channelPeak(sig, 1))
}

func TestWriteWavRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")
	data := []float64{0, 0.5, -0.5, 1, -1, 0.25, 0.125, -0.125}
	require.NoError(t, writeWav(path, 44100, 2, stage(data, 2)))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	require.NoError(t, err)
	require.Equal(t, 2, buf.Format.NumChannels)
	require.Equal(t, 44100, buf.Format.SampleRate)
	require.Len(t, buf.Data, len(data))
	require.Equal(t, 16383, buf.Data[1])
	require.Equal(t, 32767, buf.Data[3])
	require.Equal(t, -32767, buf.Data[4])
}
