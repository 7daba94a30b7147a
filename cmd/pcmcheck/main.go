// pcmcheck proves the PCM bridge without REAPER: a Go sine source and a Go
// WAV sink get wrapped in the C++ glue objects, then audio is pulled from
// the source and pushed into the sink strictly through the virtual tables,
// the way the host would drive them. The captured audio lands in a WAV file.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"go.uber.org/zap"
	"pipelined.dev/signal"

	reaper "github.com/n0izn0iz/go-reaper"
	"github.com/n0izn0iz/go-reaper/raw"
)

type sineSource struct {
	reaper.BasePcmSource
	freq     reaper.Hz
	rate     reaper.Hz
	channels int32
	seconds  float64
}

func (s *sineSource) TypeString() string             { return "GOSINE" }
func (s *sineSource) NumChannels() int32             { return s.channels }
func (s *sineSource) SampleRate() reaper.Hz          { return s.rate }
func (s *sineSource) Length() reaper.PositionSeconds { return reaper.PositionSeconds(s.seconds) }

func (s *sineSource) GetSamples(block *reaper.SampleBlock) {
	samples := block.Samples()
	nch := int(block.Channels())
	rate := float64(block.SampleRate())
	if rate < 1 {
		rate = float64(s.rate)
	}
	start := float64(block.TimeS())
	frames := int(block.Length())
	total := int(s.seconds * rate)
	written := 0
	for i := 0; i < frames; i++ {
		if int(start*rate)+i >= total {
			break
		}
		v := 0.5 * math.Sin(2*math.Pi*float64(s.freq)*(start+float64(i)/rate))
		for ch := 0; ch < nch; ch++ {
			samples[i*nch+ch] = reaper.ReaSample(v)
		}
		written++
	}
	block.SetSamplesOut(int32(written))
}

// wavSink collects everything the host side pushes at it; the WAV encoding
// happens after the run, outside the sink virtuals.
type wavSink struct {
	reaper.BasePcmSink
	fileName string
	channels int32
	rate     reaper.Hz
	data     []float64
}

func (w *wavSink) OutputInfoString() string {
	return fmt.Sprintf("WAV %dch %gHz", w.channels, float64(w.rate))
}

func (w *wavSink) FileName() string   { return w.fileName }
func (w *wavSink) NumChannels() int32 { return w.channels }

func (w *wavSink) Length() reaper.PositionSeconds {
	frames := len(w.data) / int(w.channels)
	return reaper.PositionSeconds(float64(frames) / float64(w.rate))
}

func (w *wavSink) FileSize() int64 { return int64(len(w.data) * 2) }

func (w *wavSink) WriteDoubles(chans []*reaper.ReaSample, length, offset, spacing int32) {
	if length <= 0 || len(chans) == 0 {
		return
	}
	if spacing <= 0 {
		spacing = 1
	}
	views := make([][]reaper.ReaSample, len(chans))
	n := int(offset + (length-1)*spacing + 1)
	for ch, base := range chans {
		views[ch] = raw.ReaSampleSlice(base, n)
	}
	for i := int32(0); i < length; i++ {
		for _, view := range views {
			w.data = append(w.data, float64(view[offset+i*spacing]))
		}
	}
}

func main() {
	var outPath string
	flag.StringVar(&outPath, "out", "pcmcheck.wav", "path of the WAV file to write")
	var seconds float64
	flag.Float64Var(&seconds, "seconds", 1.0, "length of the generated tone")
	var rate int
	flag.IntVar(&rate, "rate", 44100, "sample rate")
	var freq float64
	flag.Float64Var(&freq, "freq", 440, "tone frequency")
	var blockSize int
	flag.IntVar(&blockSize, "block-size", 512, "frames per transfer block")

	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync() // flushes buffer, if any

	const nch = 2

	src := reaper.NewOwnedPcmSource(&sineSource{
		freq:     reaper.Hz(freq),
		rate:     reaper.Hz(rate),
		channels: nch,
		seconds:  seconds,
	})
	defer src.Close()

	sink := reaper.NewOwnedPcmSink(&wavSink{
		fileName: outPath,
		channels: nch,
		rate:     reaper.Hz(rate),
	})
	defer sink.Close()

	// Interrogate the source through its vtable, like the host would.
	logger.Info("source ready",
		zap.String("type", raw.GoString(raw.PcmSourceGetType(src.Raw()))),
		zap.Int32("channels", raw.PcmSourceGetNumChannels(src.Raw())),
		zap.Float64("rate", raw.PcmSourceGetSampleRate(src.Raw())),
		zap.Float64("length", raw.PcmSourceGetLength(src.Raw())))

	t := raw.AllocSourceTransfer(nch, int32(blockSize))
	defer raw.FreeSourceTransfer(t)
	raw.SourceTransferSetSampleRate(t, float64(rate))

	ptrs := make([]*raw.ReaSample, nch)
	var frames int64
	for pos := 0.0; ; pos += float64(blockSize) / float64(rate) {
		raw.SourceTransferSetTimeS(t, pos)
		raw.SourceTransferSetSamplesOut(t, 0)
		raw.PcmSourceGetSamples(src.Raw(), t)
		got := raw.SourceTransferSamplesOut(t)
		if got <= 0 {
			break
		}
		samples := raw.SourceTransferSamples(t)
		for ch := 0; ch < nch; ch++ {
			ptrs[ch] = &samples[ch]
		}
		raw.PcmSinkWriteDoubles(sink.Raw(), &ptrs[0], got, nch, 0, nch)
		frames += int64(got)
	}

	capture := sink.Impl().(*wavSink)
	sig := stage(capture.data, nch)
	for ch := 0; ch < nch; ch++ {
		logger.Info("captured channel",
			zap.Int("channel", ch),
			zap.Float64("peak", channelPeak(sig, ch)))
	}

	if err := writeWav(outPath, rate, nch, sig); err != nil {
		logger.Fatal("couldn't write WAV", zap.Error(err))
	}

	fmt.Printf("wrote %d frames to %s\n", frames, outPath)
}

// stage copies the interleaved capture into a signal buffer, channel by
// channel.
func stage(data []float64, nch int) signal.Float64 {
	frames := len(data) / nch
	sig := signal.Allocator{Channels: nch, Length: frames, Capacity: frames}.Float64()
	for ch := 0; ch < nch; ch++ {
		for i := 0; i < frames; i++ {
			sig.SetSample(sig.BufferIndex(ch, i), data[i*nch+ch])
		}
	}
	return sig
}

func channelPeak(sig signal.Float64, ch int) float64 {
	peak := 0.0
	for i := 0; i < sig.Length(); i++ {
		v := math.Abs(sig.Sample(sig.BufferIndex(ch, i)))
		if v > peak {
			peak = v
		}
	}
	return peak
}

func writeWav(path string, rate, nch int, sig signal.Float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := wav.NewEncoder(f, rate, 16, nch, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: nch, SampleRate: rate},
		Data:           make([]int, sig.Length()*nch),
		SourceBitDepth: 16,
	}
	for i := 0; i < sig.Length(); i++ {
		for ch := 0; ch < nch; ch++ {
			v := sig.Sample(sig.BufferIndex(ch, i))
			if v > 1 {
				v = 1
			} else if v < -1 {
				v = -1
			}
			buf.Data[i*nch+ch] = int(v * 32767)
		}
	}
	if err := enc.Write(buf); err != nil {
		return err
	}
	return enc.Close()
}
