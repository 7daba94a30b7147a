package reaper

import (
	"github.com/n0izn0iz/go-reaper/raw"
)

// MidiMessage is one short or sysex message with its timing inside the
// current audio block. Message aliases host memory; copy it before the
// block ends if it has to live longer.
type MidiMessage struct {
	FrameOffset int32
	Message     []byte
}

// MidiInput reads from an open MIDI input device. Only valid inside the
// audio hook, on the audio thread.
type MidiInput struct {
	in *raw.MidiInput
}

// GetMidiInput hands the device's reader to fn and reports whether the
// device was open. The reader is only valid until fn returns; don't keep
// it. Meant to be called from the audio hook; no thread check.
func (r *Reaper) GetMidiInput(dev MidiInputDeviceID, fn func(*MidiInput)) bool {
	in := r.MidiInput(dev)
	if in == nil {
		return false
	}
	fn(&MidiInput{in: in})
	return true
}

func (m *MidiInput) Raw() *raw.MidiInput { return m.in }

// ReadBuf drains the device's buffered events for this audio block, calling
// fn once per event in order. The host reuses the buffer after the hook
// returns.
func (m *MidiInput) ReadBuf(fn func(msg MidiMessage)) {
	list := raw.MidiInputGetReadBuf(m.in)
	if list == nil {
		return
	}
	var bpos int32
	for {
		evt := raw.MidiEventListEnumItems(list, &bpos)
		if evt == nil {
			return
		}
		fn(MidiMessage{
			FrameOffset: raw.MidiEventFrameOffset(evt),
			Message:     raw.MidiEventMessage(evt),
		})
	}
}

// MidiOutput writes to an open MIDI output device. Only valid on the audio
// thread.
type MidiOutput struct {
	out *raw.MidiOutput
}

// GetMidiOutput hands the device's writer to fn and reports whether the
// device was open. Same validity rule as GetMidiInput.
func (r *Reaper) GetMidiOutput(dev MidiOutputDeviceID, fn func(*MidiOutput)) bool {
	out := r.MidiOutput(dev)
	if out == nil {
		return false
	}
	fn(&MidiOutput{out: out})
	return true
}

func (m *MidiOutput) Raw() *raw.MidiOutput { return m.out }

// Send queues one three-byte message, frameOffset samples into the current
// block. For two-byte messages the host ignores the spare data byte.
func (m *MidiOutput) Send(status, d1, d2 byte, frameOffset int32) {
	raw.MidiOutputSend(m.out, status, d1, d2, frameOffset)
}

// SendMsg queues a prebuilt event, typically sysex.
func (m *MidiOutput) SendMsg(msg *raw.MidiEvent, frameOffset int32) {
	raw.MidiOutputSendMsg(m.out, msg, frameOffset)
}
