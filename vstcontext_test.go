package reaper

import (
	"testing"

	"github.com/n0izn0iz/go-reaper/raw"
	"github.com/stretchr/testify/require"
)

func TestVstContextQueries(t *testing.T) {
	raw.FakeHostReset()
	ctx, err := raw.NewPluginContextFromVstEntry(raw.FakeHostVstCallback(), nil)
	require.NoError(t, err)
	r := New(ctx)

	v := r.VstContext()
	require.NotNil(t, v)

	require.NotNil(t, v.ContainingProject(nil))
	require.Equal(t, int32(2), v.ChannelCount(nil))

	// the stand-in host only answers the project and channel queries
	require.Nil(t, v.ContainingTrack(nil))
	require.Nil(t, v.ContainingTake(nil))
	_, ok := v.FxLocation(nil)
	require.False(t, ok)
}

func TestVstContextAbsentForExtensionPlugin(t *testing.T) {
	r := newTestReaper(t)
	require.Nil(t, r.VstContext())
}
