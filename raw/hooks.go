package raw

/*
#include "reaper_plugin.h"
#include "bridge.h"
*/
import "C"

import (
	"sync"
	"unsafe"
)

// The addresses handed to plugin_register("hookcommand", ...) and friends are
// fixed exported functions, so dispatch state is process-global. Fan-out to
// individual commands happens in the parent package.
var (
	hooksMu           sync.RWMutex
	hookCommandFn     func(command, flag int32) bool
	hookPostCommandFn func(command, flag int32)
	toggleActionFn    func(command int32) int32
	onAudioBufferFn   func(isPost bool, length int32, srate float64, reg *AudioHookRegister)
)

func SetHookCommandHandler(fn func(command, flag int32) bool) {
	hooksMu.Lock()
	hookCommandFn = fn
	hooksMu.Unlock()
}

func SetHookPostCommandHandler(fn func(command, flag int32)) {
	hooksMu.Lock()
	hookPostCommandFn = fn
	hooksMu.Unlock()
}

func SetToggleActionHandler(fn func(command int32) int32) {
	hooksMu.Lock()
	toggleActionFn = fn
	hooksMu.Unlock()
}

// SetOnAudioBufferHandler installs the audio thread callback. Swap handlers
// only while the hook is unregistered.
func SetOnAudioBufferHandler(fn func(isPost bool, length int32, srate float64, reg *AudioHookRegister)) {
	hooksMu.Lock()
	onAudioBufferFn = fn
	hooksMu.Unlock()
}

// AllocGaccelRegister builds a C-allocated accelerator record for
// plugin_register("gaccel", ...), with no default shortcut. The host keeps
// the pointer while registered; free with FreeGaccelRegister after the
// paired "-gaccel". desc is copied.
func AllocGaccelRegister(desc string, cmd int32) *GaccelRegister {
	g := (*GaccelRegister)(C.calloc(1, C.sizeof_gaccel_register_t))
	g.accel.cmd = C.WORD(uint16(cmd))
	g.desc = C.CString(desc)
	return g
}

func FreeGaccelRegister(g *GaccelRegister) {
	if g == nil {
		return
	}
	C.free(unsafe.Pointer(g.desc))
	C.free(unsafe.Pointer(g))
}

// GaccelDesc reads back the description, mainly for tests.
func GaccelDesc(g *GaccelRegister) string { return GoString(g.desc) }

// GaccelCmd reads back the command id.
func GaccelCmd(g *GaccelRegister) int32 { return int32(g.accel.cmd) }

// HookCommandThunk returns the address to register as "hookcommand".
func HookCommandThunk() unsafe.Pointer { return C.hook_command_thunk() }

// HookPostCommandThunk returns the address to register as "hookpostcommand".
func HookPostCommandThunk() unsafe.Pointer { return C.hook_post_command_thunk() }

// ToggleActionThunk returns the address to register as "toggleaction".
func ToggleActionThunk() unsafe.Pointer { return C.toggle_action_thunk() }

// AllocAudioHookRegister returns a zeroed C-allocated hook record. The host
// keeps the pointer for as long as the hook stays registered, so the record
// cannot live on the Go heap. Free with FreeAudioHookRegister after
// unregistering.
func AllocAudioHookRegister() *AudioHookRegister {
	return (*AudioHookRegister)(C.calloc(1, C.sizeof_audio_hook_register_t))
}

func FreeAudioHookRegister(reg *AudioHookRegister) {
	C.free(unsafe.Pointer(reg))
}

// ArmAudioHook points reg's OnAudioBuffer at the exported dispatcher. Call
// before Audio_RegHardwareHook(true, ...).
func ArmAudioHook(reg *AudioHookRegister) {
	C.arm_audio_hook(reg)
}

// AudioHookGetBuffer returns the host buffer for one channel of the current
// block, or nil outside OnAudioBuffer.
func AudioHookGetBuffer(reg *AudioHookRegister, isOutput bool, idx int32) *ReaSample {
	return C.audio_hook_get_buffer(reg, C.bool(isOutput), C.int(idx))
}

func AudioHookInputNch(reg *AudioHookRegister) int32 { return int32(reg.input_nch) }

func AudioHookOutputNch(reg *AudioHookRegister) int32 { return int32(reg.output_nch) }

//export GoHookCommand
func GoHookCommand(command, flag C.int) (res C.int) {
	defer recoverPanic("GoHookCommand")
	hooksMu.RLock()
	fn := hookCommandFn
	hooksMu.RUnlock()
	if fn != nil {
		res = cbool(fn(int32(command), int32(flag)))
	}
	return
}

//export GoHookPostCommand
func GoHookPostCommand(command, flag C.int) {
	defer recoverPanic("GoHookPostCommand")
	hooksMu.RLock()
	fn := hookPostCommandFn
	hooksMu.RUnlock()
	if fn != nil {
		fn(int32(command), int32(flag))
	}
}

//export GoToggleAction
func GoToggleAction(command C.int) (res C.int) {
	defer recoverPanic("GoToggleAction")
	res = -1 // not an action of this extension
	hooksMu.RLock()
	fn := toggleActionFn
	hooksMu.RUnlock()
	if fn != nil {
		res = C.int(fn(int32(command)))
	}
	return
}

//export GoOnAudioBuffer
func GoOnAudioBuffer(isPost C.int, length C.int, srate C.double, reg *C.audio_hook_register_t) {
	defer recoverPanic("GoOnAudioBuffer")
	hooksMu.RLock()
	fn := onAudioBufferFn
	hooksMu.RUnlock()
	if fn != nil {
		fn(isPost != 0, int32(length), float64(srate), reg)
	}
}
