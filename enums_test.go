package reaper

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrackFxLocationFromRaw(t *testing.T) {
	require.Equal(t, TrackFxLocation{Chain: NormalFxChain, Index: 3}, TrackFxLocationFromRaw(3))
	require.Equal(t, TrackFxLocation{Chain: NormalFxChain, Index: 0}, TrackFxLocationFromRaw(0))
	require.Equal(t, TrackFxLocation{Chain: InputFxChain, Index: 0}, TrackFxLocationFromRaw(0x1000000))
	require.Equal(t, TrackFxLocation{Chain: InputFxChain, Index: 2}, TrackFxLocationFromRaw(0x1000002))
	require.Equal(t, TrackFxLocation{Chain: InvalidFxChain, Index: -1}, TrackFxLocationFromRaw(-1))
}

func TestTrackFxLocationRawRoundTrip(t *testing.T) {
	for _, v := range []int32{0, 5, 0x1000000, 0x1000007} {
		require.Equal(t, v, TrackFxLocationFromRaw(v).Raw())
	}
}

func TestPlayStateBits(t *testing.T) {
	s := PlayStatePlaying | PlayStateRecording
	require.True(t, s.IsPlaying())
	require.False(t, s.IsPaused())
	require.True(t, s.IsRecording())

	require.False(t, PlayState(0).IsPlaying())
	require.True(t, PlayStatePaused.IsPaused())
}

func TestUndoStateAllCoversEveryScope(t *testing.T) {
	require.Equal(t, int32(-1), int32(UndoStateAll))
	for _, f := range []UndoFlags{UndoStateTrackCfg, UndoStateFx, UndoStateItems, UndoStateMiscCfg} {
		require.Equal(t, f, UndoStateAll&f)
	}
}
