package reaper

import (
	"github.com/n0izn0iz/go-reaper/raw"
)

// AudioHandler is called twice per hardware audio block, once before and
// once after the device buffers are processed. It runs on the audio thread:
// no allocation, no locks shared with slow paths, no host calls except the
// ones documented as realtime-safe.
type AudioHandler interface {
	OnAudioBuffer(args OnAudioBufferArgs)
}

// AudioHandlerFunc adapts a function to AudioHandler.
type AudioHandlerFunc func(args OnAudioBufferArgs)

func (f AudioHandlerFunc) OnAudioBuffer(args OnAudioBufferArgs) { f(args) }

// OnAudioBufferArgs describes one audio block. The channel views alias host
// memory and are only valid during the call.
type OnAudioBufferArgs struct {
	// IsPost distinguishes the after-processing call from the before one.
	IsPost     bool
	Length     int32
	SampleRate Hz

	reg *raw.AudioHookRegister
}

func (a OnAudioBufferArgs) Raw() *raw.AudioHookRegister { return a.reg }

func (a OnAudioBufferArgs) InputChannels() int32 {
	return raw.AudioHookInputNch(a.reg)
}

func (a OnAudioBufferArgs) OutputChannels() int32 {
	return raw.AudioHookOutputNch(a.reg)
}

// Input views one hardware input channel, nil when idx is out of range.
func (a OnAudioBufferArgs) Input(idx int32) []ReaSample {
	return raw.ReaSampleSlice(raw.AudioHookGetBuffer(a.reg, false, idx), int(a.Length))
}

// Output views one hardware output channel, nil when idx is out of range.
func (a OnAudioBufferArgs) Output(idx int32) []ReaSample {
	return raw.ReaSampleSlice(raw.AudioHookGetBuffer(a.reg, true, idx), int(a.Length))
}
