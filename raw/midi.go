package raw

/*
#include "reaper_plugin.h"
#include "bridge.h"
*/
import "C"

// MIDI device and event list access. All of these are audio-thread callable
// and allocation-free; the event memory belongs to the host list.

func MidiInputGetReadBuf(in *MidiInput) *MidiEventList {
	return C.midi_input_get_read_buf(in)
}

// MidiEventListEnumItems returns the event at *bpos and advances *bpos, or
// nil past the end.
func MidiEventListEnumItems(list *MidiEventList, bpos *int32) *MidiEvent {
	cpos := C.int(*bpos)
	evt := C.midi_eventlist_enum_items(list, &cpos)
	*bpos = int32(cpos)
	return evt
}

func MidiEventListAddItem(list *MidiEventList, evt *MidiEvent) {
	C.midi_eventlist_add_item(list, evt)
}

func MidiEventListGetSize(list *MidiEventList) int32 {
	return int32(C.midi_eventlist_get_size(list))
}

func MidiOutputSend(out *MidiOutput, status, d1, d2 byte, frameOffset int32) {
	C.midi_output_send(out, C.uchar(status), C.uchar(d1), C.uchar(d2), C.int(frameOffset))
}

func MidiOutputSendMsg(out *MidiOutput, msg *MidiEvent, frameOffset int32) {
	C.midi_output_send_msg(out, msg, C.int(frameOffset))
}
