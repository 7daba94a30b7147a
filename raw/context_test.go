package raw

import (
	"errors"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtensionContext(t *testing.T) {
	FakeHostReset()

	ctx, err := NewPluginContextFromExtensionEntry(nil, FakeHostRec(PluginVersion))
	require.NoError(t, err)
	require.False(t, ctx.IsVst())
	require.Equal(t, int32(PluginVersion), ctx.CallerVersion())

	require.NotNil(t, ctx.GetFunc("ShowConsoleMsg"))
	require.Nil(t, ctx.GetFunc("NoSuchFunction"))
}

func TestExtensionContextCallerVersionMismatch(t *testing.T) {
	FakeHostReset()

	_, err := NewPluginContextFromExtensionEntry(nil, FakeHostRec(PluginVersion+1))
	require.True(t, errors.Is(err, ErrCallerVersionIncompatible))

	_, err = NewPluginContextFromExtensionEntry(nil, FakeHostRec(0))
	require.True(t, errors.Is(err, ErrCallerVersionIncompatible))
}

func TestExtensionContextNilRecPanics(t *testing.T) {
	require.Panics(t, func() {
		NewPluginContextFromExtensionEntry(nil, nil)
	})
}

func TestVstContext(t *testing.T) {
	FakeHostReset()

	ctx, err := NewPluginContextFromVstEntry(FakeHostVstCallback(), nil)
	require.NoError(t, err)
	require.True(t, ctx.IsVst())

	require.NotNil(t, ctx.GetFunc("ShowConsoleMsg"))
	require.Nil(t, ctx.GetFunc("NoSuchFunction"))
}

func TestVstContextNilCallback(t *testing.T) {
	_, err := NewPluginContextFromVstEntry(nil, nil)
	require.True(t, errors.Is(err, ErrFunctionProviderNotAvailable))
}

func TestVstContextInfo(t *testing.T) {
	FakeHostReset()

	ctx, err := NewPluginContextFromVstEntry(FakeHostVstCallback(), nil)
	require.NoError(t, err)

	// request 3 is the project context; the stand-in serves a stable token
	require.NotZero(t, ctx.VstContextInfo(nil, 3))
	require.Equal(t, uintptr(2), ctx.VstContextInfo(nil, 5))
	require.Zero(t, ctx.VstContextInfo(nil, 99))
}

func TestVstContextInfoOnExtensionContext(t *testing.T) {
	FakeHostReset()

	ctx, err := NewPluginContextFromExtensionEntry(nil, FakeHostRec(PluginVersion))
	require.NoError(t, err)
	require.Zero(t, ctx.VstContextInfo(nil, 3))
}

func TestIsInMainThread(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	FakeHostReset()
	ctx, err := NewPluginContextFromExtensionEntry(nil, FakeHostRec(PluginVersion))
	require.NoError(t, err)

	require.True(t, ctx.IsInMainThread())
	require.Equal(t, ctx.MainThreadID(), CurrentThreadID())

	var fromOther bool
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		fromOther = ctx.IsInMainThread()
	}()
	wg.Wait()
	require.False(t, fromOther)
}
