package raw

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func loadTestFunctions(t *testing.T) *Functions {
	t.Helper()
	FakeHostReset()
	ctx, err := NewPluginContextFromExtensionEntry(nil, FakeHostRec(PluginVersion))
	require.NoError(t, err)
	return LoadFunctions(ctx)
}

func TestLoadFunctionsResolvesSubset(t *testing.T) {
	f := loadTestFunctions(t)

	// the stand-in host serves only part of the table; missing names must
	// stay nil without aborting the load
	require.Greater(t, f.LoadedCount(), 0)
	require.Less(t, f.LoadedCount(), TotalFunctionCount)
}

func TestFunctionsCallThroughHostPointers(t *testing.T) {
	f := loadTestFunctions(t)

	require.Equal(t, "6.80/x64", GoString(f.GetAppVersion()))
	require.Equal(t, int32(0), f.CountTracks(nil))
	require.Equal(t, int32(0), f.GetPlayState())
	require.Equal(t, 120.0, f.Master_GetTempo())
	require.False(t, f.ValidatePtr2(nil, nil, nil))
}

func TestFunctionsConsoleOutput(t *testing.T) {
	f := loadTestFunctions(t)

	msg := CString("hello from the table\n")
	defer FreeCString(msg)
	f.ShowConsoleMsg(msg)

	require.Equal(t, "hello from the table\n", FakeHostConsole())
}

func TestFunctionsTracks(t *testing.T) {
	f := loadTestFunctions(t)

	require.Nil(t, f.GetTrack(nil, 0))

	master := f.GetMasterTrack(nil)
	require.NotNil(t, master)
	require.Equal(t, FakeHostMasterTrack(), master)

	buf := AllocCharBuf(16)
	defer FreeCString(buf)
	require.True(t, f.GetTrackName(master, buf, 16))
	require.Equal(t, "Master", GoString(buf))

	// unknown track pointers resolve no name
	require.False(t, f.GetTrackName(nil, buf, 16))
}

func TestFunctionsAudioHookRegistration(t *testing.T) {
	f := loadTestFunctions(t)

	require.Equal(t, int32(0), FakeHostAudioHooksArmed())
	require.Equal(t, int32(1), f.Audio_RegHardwareHook(true, nil))
	require.Equal(t, int32(1), FakeHostAudioHooksArmed())

	f.Audio_RegHardwareHook(false, nil)
	require.Equal(t, int32(0), FakeHostAudioHooksArmed())
}

func TestUnresolvedFunctionPanics(t *testing.T) {
	f := loadTestFunctions(t)

	require.PanicsWithValue(t, "GetMainHwnd not loaded", func() {
		f.GetMainHwnd()
	})
	require.PanicsWithValue(t, "PCM_Sink_Create not loaded", func() {
		f.PCM_Sink_Create(nil, nil, 0, 2, 48000, false)
	})
	require.PanicsWithValue(t, "Undo_BeginBlock2 not loaded", func() {
		f.Undo_BeginBlock2(nil)
	})
}

func TestNewFunctionsCountsExplicitPointers(t *testing.T) {
	require.Equal(t, 0, NewFunctions(FunctionPointers{}).LoadedCount())
}
