package raw

/*
#include "reaper_plugin.h"
#include "bridge.h"
*/
import "C"

import "unsafe"

// Accessors for the in-process host stand-in. The state lives on the C side
// so that resolved function pointers behave exactly like host-provided ones.
// Tests and offline tools only; nothing in the plugin paths touches this.

func FakeHostRec(callerVersion int32) *PluginInfo {
	return C.fake_host_rec(C.int(callerVersion))
}

func FakeHostVstCallback() unsafe.Pointer {
	return C.fake_host_vst_callback()
}

func FakeHostLastRegisterKey() string {
	return C.GoString(C.fake_host_last_register_key())
}

func FakeHostLastRegisterInfo() unsafe.Pointer {
	return C.fake_host_last_register_info()
}

func FakeHostRegisterKeyAt(i int32) string {
	return C.GoString(C.fake_host_register_key_at(C.int(i)))
}

func FakeHostRegisterCount() int32 {
	return int32(C.fake_host_register_count())
}

// FakeHostFailNextRegister makes the next Register call return 0 while still
// recording the key.
func FakeHostFailNextRegister() {
	C.fake_host_fail_next_register()
}

// FakeHostRunCommand dispatches an action through the live hookcommand
// registration, the way the host runs one. False when no hook is registered
// or none claimed the command.
func FakeHostRunCommand(command, flag int32) bool {
	return C.fake_host_run_command(C.int(command), C.int(flag)) != 0
}

// FakeHostRunToggle queries the live toggleaction registration. -1 when no
// hook is registered.
func FakeHostRunToggle(command int32) int32 {
	return int32(C.fake_host_run_toggle(C.int(command)))
}

func FakeHostConsole() string {
	return C.GoString(C.fake_host_console())
}

// FakeHostMasterTrack returns the pointer the stand-in serves from
// GetMasterTrack, for equality checks.
func FakeHostMasterTrack() *MediaTrack {
	return (*MediaTrack)(C.fake_host_master_track())
}

// FakeHostAudioHooksArmed counts Audio_RegHardwareHook adds minus removes.
func FakeHostAudioHooksArmed() int32 {
	return int32(C.fake_host_audio_hooks_armed())
}

// FakeHostAudioLastReg returns the most recently added hook record, nil
// once it is removed again.
func FakeHostAudioLastReg() *AudioHookRegister {
	return C.fake_host_audio_last_reg()
}

// FakeHostDriveAudioHook pushes one block through an armed hook, pre and
// post pass, with channel ch carrying the constant 0.125*(ch+1).
func FakeHostDriveAudioHook(reg *AudioHookRegister, length int32, srate float64) {
	C.fake_host_drive_audio_hook(reg, C.int(length), C.double(srate))
}

// FakeHostMidiInput returns the device the stand-in serves as input 0.
func FakeHostMidiInput() *MidiInput {
	return C.fake_host_get_midi_input(0)
}

// FakeHostMidiOutput returns the device the stand-in serves as output 0.
func FakeHostMidiOutput() *MidiOutput {
	return C.fake_host_get_midi_output(0)
}

// FakeHostMidiAddInputEvent queues a three-byte message on input 0.
func FakeHostMidiAddInputEvent(frameOffset int32, b0, b1, b2 byte) {
	C.fake_host_midi_add_input_event(C.int(frameOffset), C.uchar(b0), C.uchar(b1), C.uchar(b2))
}

func FakeHostMidiSentCount() int32 {
	return int32(C.fake_host_midi_sent_count())
}

func FakeHostMidiLastOffset() int32 {
	return int32(C.fake_host_midi_last_offset())
}

func FakeHostMidiLastMsg() []byte {
	return C.GoBytes(unsafe.Pointer(C.fake_host_midi_last_msg()), 3)
}

func FakeHostReset() {
	C.fake_host_reset()
}
