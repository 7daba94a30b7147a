package main

import (
	"encoding/binary"
	"math"
	"runtime"
	"testing"
	"unsafe"

	"github.com/9600org/go-osc/osc"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	reaper "github.com/n0izn0iz/go-reaper"
	"github.com/n0izn0iz/go-reaper/raw"
	"github.com/n0izn0iz/go-reaper/ringbuf"
)

type captureClient struct {
	sent []*osc.Message
}

func (c *captureClient) Send(p osc.Packet) error {
	c.sent = append(c.sent, p.(*osc.Message))
	return nil
}

func (c *captureClient) addresses() []string {
	addrs := make([]string, len(c.sent))
	for i, m := range c.sent {
		addrs[i] = m.Address
	}
	return addrs
}

func newTestMirror(t *testing.T, ring *ringbuf.Ring) (*mirror, *captureClient, *reaper.Reaper) {
	t.Helper()
	// track queries go through thread-guarded host calls
	runtime.LockOSThread()
	t.Cleanup(runtime.UnlockOSThread)
	raw.FakeHostReset()
	ctx, err := raw.NewPluginContextFromExtensionEntry(nil, raw.FakeHostRec(raw.PluginVersion))
	require.NoError(t, err)
	r := reaper.New(ctx)
	client := &captureClient{}
	return newMirror(r, client, ring, zap.NewNop()), client, r
}

func TestMirrorMasterTrackAddressing(t *testing.T) {
	m, client, r := newTestMirror(t, nil)

	master := r.MasterTrack(nil)
	m.SetSurfaceVolume(reaper.SetSurfaceVolumeArgs{Track: master, Volume: 0.5})
	m.SetSurfacePan(reaper.SetSurfacePanArgs{Track: master, Pan: -0.25})
	m.SetSurfaceMute(reaper.SetSurfaceMuteArgs{Track: master, Mute: true})

	require.Equal(t, []string{"/master/volume", "/master/pan", "/master/mute"}, client.addresses())
	require.Equal(t, []interface{}{float32(0.5)}, client.sent[0].Arguments)
	require.Equal(t, []interface{}{float32(-0.25)}, client.sent[1].Arguments)
	require.Equal(t, []interface{}{int32(1)}, client.sent[2].Arguments)
}

func TestMirrorDropsUnknownTracks(t *testing.T) {
	m, client, _ := newTestMirror(t, nil)

	seed := new(int64)
	ghost := (*reaper.MediaTrack)(unsafe.Pointer(seed))
	m.SetSurfaceSolo(reaper.SetSurfaceSoloArgs{Track: ghost, Solo: true})
	m.SetTrackTitle(reaper.SetTrackTitleArgs{Track: ghost, Title: "ghost"})
	m.SetSurfaceVolume(reaper.SetSurfaceVolumeArgs{Volume: 1})

	require.Empty(t, client.sent)
}

func TestMirrorToggleGatesTraffic(t *testing.T) {
	m, client, _ := newTestMirror(t, nil)

	m.Toggle()
	require.False(t, m.Enabled())
	m.SetPlayState(reaper.SetPlayStateArgs{Playing: true})
	require.Empty(t, client.sent)

	m.Toggle()
	require.True(t, m.Enabled())
	m.SetPlayState(reaper.SetPlayStateArgs{Playing: true, Recording: true})
	require.Equal(t, []string{"/play", "/pause", "/record"}, client.addresses())
	require.Equal(t, []interface{}{int32(1)}, client.sent[0].Arguments)
	require.Equal(t, []interface{}{int32(0)}, client.sent[1].Arguments)
	require.Equal(t, []interface{}{int32(1)}, client.sent[2].Arguments)
}

func TestMirrorTempoAndPlayRate(t *testing.T) {
	m, client, _ := newTestMirror(t, nil)

	tempo := reaper.Bpm(120.5)
	require.Equal(t, int32(1), m.ExtSetBpmAndPlayRate(reaper.ExtSetBpmAndPlayRateArgs{Tempo: &tempo}))
	require.Equal(t, []string{"/tempo"}, client.addresses())
	require.Equal(t, []interface{}{float32(120.5)}, client.sent[0].Arguments)

	rate := reaper.PlaybackSpeedFactor(1.5)
	m.ExtSetBpmAndPlayRate(reaper.ExtSetBpmAndPlayRateArgs{PlayRate: &rate})
	require.Equal(t, []string{"/tempo", "/playrate"}, client.addresses())
}

func TestMirrorRepeatAndAutoMode(t *testing.T) {
	m, client, _ := newTestMirror(t, nil)

	m.SetRepeatState(reaper.SetRepeatStateArgs{Enabled: true})
	m.SetAutoMode(reaper.SetAutoModeArgs{Mode: reaper.AutomationLatch})

	require.Equal(t, []string{"/repeat", "/automode"}, client.addresses())
	require.Equal(t, []interface{}{int32(reaper.AutomationLatch)}, client.sent[1].Arguments)
}

func TestMirrorRunDrainsPeaks(t *testing.T) {
	ring := ringbuf.New(256)
	m, client, _ := newTestMirror(t, ring)

	var rec [peakRecordSize]byte
	rec[0] = 3
	binary.LittleEndian.PutUint64(rec[1:], math.Float64bits(0.25))
	require.True(t, ring.TryWrite(rec[:]))
	// undersized records are skipped, not misparsed
	require.True(t, ring.TryWrite([]byte{9}))

	m.Run()
	require.Equal(t, []string{"/peak/3"}, client.addresses())
	require.Equal(t, []interface{}{float32(0.25)}, client.sent[0].Arguments)
	require.Equal(t, 0, ring.Buffered())
}

func TestPeakTapEndToEnd(t *testing.T) {
	ring := ringbuf.New(256)
	m, client, r := newTestMirror(t, ring)

	s := reaper.NewSession(r, zap.NewNop())
	t.Cleanup(func() { require.NoError(t, s.Close()) })
	_, err := s.AddAudioHook(&peakTap{ring: ring})
	require.NoError(t, err)

	raw.FakeHostDriveAudioHook(raw.FakeHostAudioLastReg(), 16, 48000)

	m.Run()
	require.Equal(t, []string{"/peak/0", "/peak/1"}, client.addresses())
	require.Equal(t, []interface{}{float32(0.125)}, client.sent[0].Arguments)
	require.Equal(t, []interface{}{float32(0.25)}, client.sent[1].Arguments)
}
