package raw

/*
#include <stdlib.h>
#include "reaper_plugin.h"
#include "bridge.h"
*/
import "C"

import (
	"errors"
	"unsafe"
)

var (
	// ErrCallerVersionIncompatible means the loading REAPER speaks a
	// different plugin ABI revision than these bindings.
	ErrCallerVersionIncompatible = errors.New("incompatible REAPER plugin ABI version")

	// ErrFunctionProviderNotAvailable means no GetFunc service could be
	// obtained, typically because the plugin is not running inside REAPER.
	ErrFunctionProviderNotAvailable = errors.New("REAPER function provider not available")
)

const (
	vstMagicOpcode      = 0xdeadbeef
	vstMagicGetFunc     = 0xdeadf00d
	vstMagicContextInfo = 0xdeadf00e
)

// VST context info requests, passed as the value argument of the magic
// context opcode.
const (
	VstRequestContainingTrack   = 1
	VstRequestContainingTake    = 2
	VstRequestContainingProject = 3
	VstRequestChannelCount      = 5
	VstRequestFxLocation        = 6
)

func magicI32(u uint32) C.int32_t {
	return C.int32_t(int32(u))
}

type contextKind int

const (
	contextExtension contextKind = iota
	contextVst
)

// PluginContext is what the host hands a plugin at load time: the function
// provider, window handles and the identity of the loading thread. It is
// immutable after construction and safe to read from any thread.
type PluginContext struct {
	kind         contextKind
	hInstance    unsafe.Pointer
	mainThreadID uintptr

	callerVersion int32
	hwndMain      HWND
	getFunc       unsafe.Pointer

	hostCallback unsafe.Pointer
}

// NewPluginContextFromExtensionEntry builds the context inside
// ReaperPluginEntry. rec must be the non-nil info struct the host passed;
// the nil rec of an unload notification is the entry function's business.
//
// The caller version is checked before anything is resolved. A rec without
// Register violates the documented protocol and panics.
func NewPluginContextFromExtensionEntry(hInstance unsafe.Pointer, rec *PluginInfo) (*PluginContext, error) {
	if rec == nil {
		panic("plugin info must not be nil")
	}
	if int32(rec.caller_version) != PluginVersion {
		return nil, ErrCallerVersionIncompatible
	}
	if rec.GetFunc == nil {
		return nil, ErrFunctionProviderNotAvailable
	}
	if rec.Register == nil {
		panic("plugin info has no Register function")
	}
	return &PluginContext{
		kind:          contextExtension,
		hInstance:     hInstance,
		mainThreadID:  uintptr(C.current_thread_id()),
		callerVersion: int32(rec.caller_version),
		hwndMain:      rec.hwnd_main,
		getFunc:       unsafe.Pointer(rec.GetFunc),
	}, nil
}

// NewPluginContextFromVstEntry builds the context from the audioMaster
// callback a VST plugin received. Function resolution goes through REAPER's
// magic host opcodes; a host that does not answer them is not REAPER.
func NewPluginContextFromVstEntry(hostCallback, hInstance unsafe.Pointer) (*PluginContext, error) {
	if hostCallback == nil {
		return nil, ErrFunctionProviderNotAvailable
	}
	ctx := &PluginContext{
		kind:         contextVst,
		hInstance:    hInstance,
		mainThreadID: uintptr(C.current_thread_id()),
		hostCallback: hostCallback,
	}
	if ctx.GetFunc("plugin_register") == nil {
		return nil, ErrFunctionProviderNotAvailable
	}
	return ctx, nil
}

// GetFunc resolves a REAPER API function by its exact name. nil when the
// running REAPER does not export it.
func (c *PluginContext) GetFunc(name string) unsafe.Pointer {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	switch c.kind {
	case contextExtension:
		return C.invoke_get_func(c.getFunc, cname)
	case contextVst:
		r := C.invoke_host_callback(c.hostCallback, nil, magicI32(vstMagicOpcode),
			magicI32(vstMagicGetFunc), 0, unsafe.Pointer(cname), 0)
		return unsafe.Pointer(uintptr(r))
	}
	return nil
}

// VstContextInfo issues one of the VstRequest queries for the given AEffect.
// The reply is host-defined: zero or negative means unsupported, otherwise a
// pointer or a small integer depending on the request.
func (c *PluginContext) VstContextInfo(effect unsafe.Pointer, request int32) uintptr {
	if c.kind != contextVst {
		return 0
	}
	r := C.invoke_host_callback(c.hostCallback, effect, magicI32(vstMagicOpcode),
		magicI32(vstMagicContextInfo), C.intptr_t(request), nil, 0)
	return uintptr(r)
}

// IsInMainThread compares the current OS thread against the one that built
// the context. Pure identity comparison, callable from any thread.
func (c *PluginContext) IsInMainThread() bool {
	return uintptr(C.current_thread_id()) == c.mainThreadID
}

func (c *PluginContext) MainThreadID() uintptr { return c.mainThreadID }

func (c *PluginContext) CallerVersion() int32 { return c.callerVersion }

func (c *PluginContext) HwndMain() HWND { return c.hwndMain }

func (c *PluginContext) HInstance() unsafe.Pointer { return c.hInstance }

// IsVst reports whether the context came from a VST entry point.
func (c *PluginContext) IsVst() bool { return c.kind == contextVst }

// CurrentThreadID exposes the OS thread identity the guard compares against.
func CurrentThreadID() uintptr {
	return uintptr(C.current_thread_id())
}
