package raw

/*
#include "reaper_plugin.h"
#include "bridge.h"
*/
import "C"

import "unsafe"

// ControlSurface is the Go side of IReaperControlSurface. Method names,
// order and meaning track the SDK class; values cross the boundary
// unconverted. The host calls all of this on the main thread and may
// re-enter during an outgoing call made from a handler.
type ControlSurface interface {
	GetTypeString() *Char
	GetDescString() *Char
	GetConfigString() *Char
	CloseNoReset()
	Run()
	SetTrackListChange()
	SetSurfaceVolume(track *MediaTrack, volume float64)
	SetSurfacePan(track *MediaTrack, pan float64)
	SetSurfaceMute(track *MediaTrack, mute bool)
	SetSurfaceSelected(track *MediaTrack, selected bool)
	SetSurfaceSolo(track *MediaTrack, solo bool)
	SetSurfaceRecArm(track *MediaTrack, recarm bool)
	SetPlayState(play, pause, rec bool)
	SetRepeatState(rep bool)
	SetTrackTitle(track *MediaTrack, title *Char)
	GetTouchState(track *MediaTrack, isPan int32) bool
	SetAutoMode(mode int32)
	ResetCachedVolPanStates()
	OnTrackSelection(track *MediaTrack)
	IsKeyDown(key int32) bool
	Extended(call int32, parm1, parm2, parm3 unsafe.Pointer) int32
}

// NewControlSurface creates the C++ wrapper object delegating to the
// registered target. The object is heap-allocated on the C++ side; pair with
// DeleteControlSurface. Deleting does not release the target registration.
func NewControlSurface(target uintptr) *IReaperControlSurface {
	return C.create_go_control_surface(C.uintptr_t(target))
}

func DeleteControlSurface(cs *IReaperControlSurface) {
	C.delete_go_control_surface(cs)
}

// ControlSurfaceExtended performs the virtual Extended call on any control
// surface object, including wrapper-created ones.
func ControlSurfaceExtended(cs *IReaperControlSurface, call int32, parm1, parm2, parm3 unsafe.Pointer) int32 {
	return int32(C.control_surface_extended(cs, C.int(call), parm1, parm2, parm3))
}

func ControlSurfaceGetTypeString(cs *IReaperControlSurface) *Char {
	return C.control_surface_get_type_string(cs)
}

func ControlSurfaceRun(cs *IReaperControlSurface) {
	C.control_surface_run(cs)
}

func ControlSurfaceGetTouchState(cs *IReaperControlSurface, track *MediaTrack, isPan int32) bool {
	return bool(C.control_surface_get_touch_state(cs, track, C.int(isPan)))
}

func lookupControlSurface(target C.uintptr_t) (ControlSurface, bool) {
	cs, ok := lookupTarget(uintptr(target)).(ControlSurface)
	return cs, ok
}

//export GoSurfaceGetTypeString
func GoSurfaceGetTypeString(target C.uintptr_t) (res *C.char) {
	defer recoverPanic("GoSurfaceGetTypeString")
	if cs, ok := lookupControlSurface(target); ok {
		res = cs.GetTypeString()
	}
	return
}

//export GoSurfaceGetDescString
func GoSurfaceGetDescString(target C.uintptr_t) (res *C.char) {
	defer recoverPanic("GoSurfaceGetDescString")
	if cs, ok := lookupControlSurface(target); ok {
		res = cs.GetDescString()
	}
	return
}

//export GoSurfaceGetConfigString
func GoSurfaceGetConfigString(target C.uintptr_t) (res *C.char) {
	defer recoverPanic("GoSurfaceGetConfigString")
	if cs, ok := lookupControlSurface(target); ok {
		res = cs.GetConfigString()
	}
	return
}

//export GoSurfaceCloseNoReset
func GoSurfaceCloseNoReset(target C.uintptr_t) {
	defer recoverPanic("GoSurfaceCloseNoReset")
	if cs, ok := lookupControlSurface(target); ok {
		cs.CloseNoReset()
	}
}

//export GoSurfaceRun
func GoSurfaceRun(target C.uintptr_t) {
	defer recoverPanic("GoSurfaceRun")
	if cs, ok := lookupControlSurface(target); ok {
		cs.Run()
	}
}

//export GoSurfaceSetTrackListChange
func GoSurfaceSetTrackListChange(target C.uintptr_t) {
	defer recoverPanic("GoSurfaceSetTrackListChange")
	if cs, ok := lookupControlSurface(target); ok {
		cs.SetTrackListChange()
	}
}

//export GoSurfaceSetSurfaceVolume
func GoSurfaceSetSurfaceVolume(target C.uintptr_t, track *C.MediaTrack, volume C.double) {
	defer recoverPanic("GoSurfaceSetSurfaceVolume")
	if cs, ok := lookupControlSurface(target); ok {
		cs.SetSurfaceVolume(track, float64(volume))
	}
}

//export GoSurfaceSetSurfacePan
func GoSurfaceSetSurfacePan(target C.uintptr_t, track *C.MediaTrack, pan C.double) {
	defer recoverPanic("GoSurfaceSetSurfacePan")
	if cs, ok := lookupControlSurface(target); ok {
		cs.SetSurfacePan(track, float64(pan))
	}
}

//export GoSurfaceSetSurfaceMute
func GoSurfaceSetSurfaceMute(target C.uintptr_t, track *C.MediaTrack, mute C.int) {
	defer recoverPanic("GoSurfaceSetSurfaceMute")
	if cs, ok := lookupControlSurface(target); ok {
		cs.SetSurfaceMute(track, mute != 0)
	}
}

//export GoSurfaceSetSurfaceSelected
func GoSurfaceSetSurfaceSelected(target C.uintptr_t, track *C.MediaTrack, selected C.int) {
	defer recoverPanic("GoSurfaceSetSurfaceSelected")
	if cs, ok := lookupControlSurface(target); ok {
		cs.SetSurfaceSelected(track, selected != 0)
	}
}

//export GoSurfaceSetSurfaceSolo
func GoSurfaceSetSurfaceSolo(target C.uintptr_t, track *C.MediaTrack, solo C.int) {
	defer recoverPanic("GoSurfaceSetSurfaceSolo")
	if cs, ok := lookupControlSurface(target); ok {
		cs.SetSurfaceSolo(track, solo != 0)
	}
}

//export GoSurfaceSetSurfaceRecArm
func GoSurfaceSetSurfaceRecArm(target C.uintptr_t, track *C.MediaTrack, recarm C.int) {
	defer recoverPanic("GoSurfaceSetSurfaceRecArm")
	if cs, ok := lookupControlSurface(target); ok {
		cs.SetSurfaceRecArm(track, recarm != 0)
	}
}

//export GoSurfaceSetPlayState
func GoSurfaceSetPlayState(target C.uintptr_t, play, pause, rec C.int) {
	defer recoverPanic("GoSurfaceSetPlayState")
	if cs, ok := lookupControlSurface(target); ok {
		cs.SetPlayState(play != 0, pause != 0, rec != 0)
	}
}

//export GoSurfaceSetRepeatState
func GoSurfaceSetRepeatState(target C.uintptr_t, rep C.int) {
	defer recoverPanic("GoSurfaceSetRepeatState")
	if cs, ok := lookupControlSurface(target); ok {
		cs.SetRepeatState(rep != 0)
	}
}

//export GoSurfaceSetTrackTitle
func GoSurfaceSetTrackTitle(target C.uintptr_t, track *C.MediaTrack, title *C.char) {
	defer recoverPanic("GoSurfaceSetTrackTitle")
	if cs, ok := lookupControlSurface(target); ok {
		cs.SetTrackTitle(track, title)
	}
}

//export GoSurfaceGetTouchState
func GoSurfaceGetTouchState(target C.uintptr_t, track *C.MediaTrack, isPan C.int) (res C.int) {
	defer recoverPanic("GoSurfaceGetTouchState")
	if cs, ok := lookupControlSurface(target); ok {
		res = cbool(cs.GetTouchState(track, int32(isPan)))
	}
	return
}

//export GoSurfaceSetAutoMode
func GoSurfaceSetAutoMode(target C.uintptr_t, mode C.int) {
	defer recoverPanic("GoSurfaceSetAutoMode")
	if cs, ok := lookupControlSurface(target); ok {
		cs.SetAutoMode(int32(mode))
	}
}

//export GoSurfaceResetCachedVolPanStates
func GoSurfaceResetCachedVolPanStates(target C.uintptr_t) {
	defer recoverPanic("GoSurfaceResetCachedVolPanStates")
	if cs, ok := lookupControlSurface(target); ok {
		cs.ResetCachedVolPanStates()
	}
}

//export GoSurfaceOnTrackSelection
func GoSurfaceOnTrackSelection(target C.uintptr_t, track *C.MediaTrack) {
	defer recoverPanic("GoSurfaceOnTrackSelection")
	if cs, ok := lookupControlSurface(target); ok {
		cs.OnTrackSelection(track)
	}
}

//export GoSurfaceIsKeyDown
func GoSurfaceIsKeyDown(target C.uintptr_t, key C.int) (res C.int) {
	defer recoverPanic("GoSurfaceIsKeyDown")
	if cs, ok := lookupControlSurface(target); ok {
		res = cbool(cs.IsKeyDown(int32(key)))
	}
	return
}

//export GoSurfaceExtended
func GoSurfaceExtended(target C.uintptr_t, call C.int, parm1, parm2, parm3 unsafe.Pointer) (res C.int) {
	defer recoverPanic("GoSurfaceExtended")
	if cs, ok := lookupControlSurface(target); ok {
		res = C.int(cs.Extended(int32(call), parm1, parm2, parm3))
	}
	return
}
