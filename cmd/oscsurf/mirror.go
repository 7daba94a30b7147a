package main

import (
	"encoding/binary"
	"fmt"
	"math"
	"net"

	"github.com/9600org/go-osc/osc"
	"go.uber.org/zap"

	reaper "github.com/n0izn0iz/go-reaper"
	"github.com/n0izn0iz/go-reaper/ringbuf"
)

// Client sends assembled OSC packets. Split out so tests can capture
// traffic without a socket.
type Client interface {
	Send(osc.Packet) error
}

type UDPClient struct {
	Conn *net.UDPConn
}

var _ Client = (*UDPClient)(nil)

func (c *UDPClient) Send(p osc.Packet) error {
	data, err := p.MarshalBinary()
	if err != nil {
		return err
	}
	_, err = c.Conn.Write(data)
	return err
}

// peak records are one channel byte plus the level as float64 bits.
const peakRecordSize = 9

// peakTap runs on the audio thread: measure, frame, try to hand off.
// Nothing here may block or allocate.
type peakTap struct {
	ring *ringbuf.Ring
}

func (t *peakTap) OnAudioBuffer(args reaper.OnAudioBufferArgs) {
	if args.IsPost {
		return
	}
	nch := args.InputChannels()
	if nch > 8 {
		nch = 8
	}
	var rec [peakRecordSize]byte
	for ch := int32(0); ch < nch; ch++ {
		peak := 0.0
		for _, s := range args.Input(ch) {
			v := float64(s)
			if v < 0 {
				v = -v
			}
			if v > peak {
				peak = v
			}
		}
		rec[0] = byte(ch)
		binary.LittleEndian.PutUint64(rec[1:], math.Float64bits(peak))
		t.ring.TryWrite(rec[:])
	}
}

// mirror forwards surface state to the OSC endpoint. The host calls every
// method on the main thread, and the toggle action runs there too, so the
// only cross-thread traffic is the peak ring.
type mirror struct {
	reaper.BaseSurfaceObserver

	r       *reaper.Reaper
	client  Client
	logger  *zap.Logger
	ring    *ringbuf.Ring
	enabled bool

	tracks map[*reaper.MediaTrack]int
}

func newMirror(r *reaper.Reaper, client Client, ring *ringbuf.Ring, logger *zap.Logger) *mirror {
	return &mirror{
		r:       r,
		client:  client,
		logger:  logger,
		ring:    ring,
		enabled: true,
		tracks:  map[*reaper.MediaTrack]int{},
	}
}

var _ reaper.SurfaceObserver = (*mirror)(nil)

func (m *mirror) TypeString() string { return "GOOSC" }
func (m *mirror) DescString() string { return "OSC mirror (Go)" }

func (m *mirror) Enabled() bool { return m.enabled }

func (m *mirror) Toggle() {
	m.enabled = !m.enabled
	m.logger.Info("mirroring toggled", zap.Bool("enabled", m.enabled))
}

func (m *mirror) send(addr string, args ...interface{}) {
	if !m.Enabled() {
		return
	}
	if err := m.client.Send(&osc.Message{Address: addr, Arguments: args}); err != nil {
		m.logger.Debug("OSC send failed", zap.String("address", addr), zap.Error(err))
	}
}

// trackNumber maps a track to the surface numbering: 0 for the master
// track, 1-based project order otherwise, -1 for a track the current
// project doesn't know.
func (m *mirror) trackNumber(track *reaper.MediaTrack) int {
	if track == nil {
		return -1
	}
	if n, ok := m.tracks[track]; ok {
		return n
	}
	m.rebuildTracks()
	if n, ok := m.tracks[track]; ok {
		return n
	}
	return -1
}

func (m *mirror) rebuildTracks() {
	m.tracks = map[*reaper.MediaTrack]int{}
	if master := m.r.MasterTrack(nil); master != nil {
		m.tracks[master] = 0
	}
	count := m.r.CountTracks(nil)
	for i := int32(0); i < count; i++ {
		if tr := m.r.Track(nil, i); tr != nil {
			m.tracks[tr] = int(i) + 1
		}
	}
}

func trackAddr(n int, leaf string) string {
	if n == 0 {
		return "/master/" + leaf
	}
	return fmt.Sprintf("/track/%d/%s", n, leaf)
}

func onOff(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

func (m *mirror) SetTrackListChange() {
	m.rebuildTracks()
}

func (m *mirror) SetSurfaceVolume(args reaper.SetSurfaceVolumeArgs) {
	if n := m.trackNumber(args.Track); n >= 0 {
		m.send(trackAddr(n, "volume"), float32(args.Volume))
	}
}

func (m *mirror) SetSurfacePan(args reaper.SetSurfacePanArgs) {
	if n := m.trackNumber(args.Track); n >= 0 {
		m.send(trackAddr(n, "pan"), float32(args.Pan))
	}
}

func (m *mirror) SetSurfaceMute(args reaper.SetSurfaceMuteArgs) {
	if n := m.trackNumber(args.Track); n >= 0 {
		m.send(trackAddr(n, "mute"), onOff(args.Mute))
	}
}

func (m *mirror) SetSurfaceSelected(args reaper.SetSurfaceSelectedArgs) {
	if n := m.trackNumber(args.Track); n >= 0 {
		m.send(trackAddr(n, "select"), onOff(args.Selected))
	}
}

func (m *mirror) SetSurfaceSolo(args reaper.SetSurfaceSoloArgs) {
	if n := m.trackNumber(args.Track); n >= 0 {
		m.send(trackAddr(n, "solo"), onOff(args.Solo))
	}
}

func (m *mirror) SetSurfaceRecArm(args reaper.SetSurfaceRecArmArgs) {
	if n := m.trackNumber(args.Track); n >= 0 {
		m.send(trackAddr(n, "recarm"), onOff(args.Armed))
	}
}

func (m *mirror) SetTrackTitle(args reaper.SetTrackTitleArgs) {
	if n := m.trackNumber(args.Track); n >= 0 {
		m.send(trackAddr(n, "name"), args.Title)
	}
}

func (m *mirror) SetPlayState(args reaper.SetPlayStateArgs) {
	m.send("/play", onOff(args.Playing))
	m.send("/pause", onOff(args.Paused))
	m.send("/record", onOff(args.Recording))
}

func (m *mirror) SetRepeatState(args reaper.SetRepeatStateArgs) {
	m.send("/repeat", onOff(args.Enabled))
}

func (m *mirror) SetAutoMode(args reaper.SetAutoModeArgs) {
	m.send("/automode", int32(args.Mode))
}

func (m *mirror) ExtSetBpmAndPlayRate(args reaper.ExtSetBpmAndPlayRateArgs) int32 {
	if args.Tempo != nil {
		m.send("/tempo", float32(*args.Tempo))
	}
	if args.PlayRate != nil {
		m.send("/playrate", float32(*args.PlayRate))
	}
	return 1
}

// Run drains the peak ring filled by the audio thread.
func (m *mirror) Run() {
	if m.ring == nil {
		return
	}
	var rec [ringbuf.MaxRecord]byte
	for {
		n, ok := m.ring.TryRead(rec[:])
		if !ok {
			return
		}
		if n != peakRecordSize {
			continue
		}
		peak := math.Float64frombits(binary.LittleEndian.Uint64(rec[1:]))
		m.send(fmt.Sprintf("/peak/%d", rec[0]), float32(peak))
	}
}
