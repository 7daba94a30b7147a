package reaper

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVolumeDb(t *testing.T) {
	require.Equal(t, -150.0, MinVolume.Db())
	require.Equal(t, -150.0, Minus150Db.Db())
	require.InDelta(t, 0.0, ZeroDbVolume.Db(), 1e-9)
	require.InDelta(t, 12.0, TwelveDbVolume.Db(), 1e-9)
}

func TestVolumeFromDbRoundTrip(t *testing.T) {
	for _, db := range []float64{-60, -6, 0, 6, 12} {
		require.InDelta(t, db, VolumeFromDb(db).Db(), 1e-9)
	}
	// below the soft floor everything reads as the floor
	require.Equal(t, -150.0, VolumeFromDb(-151).Db())
	require.Equal(t, -150.0, VolumeFromDb(-400).Db())
}
