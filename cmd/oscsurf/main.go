// oscsurf is a REAPER extension that mirrors control surface activity to
// an OSC endpoint. Build with -buildmode=c-shared and drop the result in
// REAPER's UserPlugins directory; point it somewhere with oscsurf.yml.
package main

import "C"

import (
	"fmt"
	"net"
	"unsafe"

	"go.uber.org/zap"

	reaper "github.com/n0izn0iz/go-reaper"
	"github.com/n0izn0iz/go-reaper/raw"
	"github.com/n0izn0iz/go-reaper/ringbuf"
)

// one instance per process; REAPER loads the extension once.
var plug *plugin

type plugin struct {
	logger  *zap.Logger
	session *reaper.Session
	conn    *net.UDPConn
}

//export ReaperPluginEntry
func ReaperPluginEntry(hInstance unsafe.Pointer, rec unsafe.Pointer) (res C.int) {
	defer func() {
		if r := recover(); r != nil {
			res = 0
		}
	}()

	if rec == nil {
		if plug != nil {
			plug.close()
			plug = nil
		}
		return 0
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		logger = zap.NewNop()
	}

	if hInstance == nil {
		hInstance = reaper.StaticHInstance()
	}
	ctx, err := raw.NewPluginContextFromExtensionEntry(hInstance, (*raw.PluginInfo)(rec))
	if err != nil {
		logger.Error("not loading", zap.Error(err))
		return 0
	}

	p := &plugin{logger: logger}
	if err := p.start(reaper.New(ctx)); err != nil {
		logger.Error("plugin init failed", zap.Error(err))
		p.close()
		return 0
	}
	plug = p
	return 1
}

func (p *plugin) start(r *reaper.Reaper) error {
	raw.SetPanicHandler(func(entryPoint string, recovered interface{}) {
		p.logger.Error("panic trapped at host boundary",
			zap.String("entry_point", entryPoint),
			zap.Any("recovered", recovered))
	})

	cfg := loadConfig(p.logger)

	raddr, err := net.ResolveUDPAddr("udp", fmt.Sprintf("%s:%d", cfg.Addr, cfg.Port))
	if err != nil {
		return err
	}
	conn, err := net.DialUDP("udp", nil, raddr)
	if err != nil {
		return err
	}
	p.conn = conn

	p.session = reaper.NewSession(r, p.logger)

	var ring *ringbuf.Ring
	if cfg.SendPeaks {
		ring = ringbuf.New(cfg.PeakRing)
	}

	m := newMirror(r, &UDPClient{Conn: conn}, ring, p.logger.Named("mirror"))
	if _, err := p.session.AddControlSurface(m); err != nil {
		return err
	}

	if _, err := p.session.RegisterAction(reaper.ActionSpec{
		CommandName: "OSCSURF_TOGGLE_MIRROR",
		Description: "oscsurf: toggle OSC mirroring",
		Handler:     reaper.ActionHandlerFunc(func(int32) { m.Toggle() }),
		IsOn:        m.Enabled,
	}); err != nil {
		return err
	}

	if ring != nil {
		if _, err := p.session.AddAudioHook(&peakTap{ring: ring}); err != nil {
			return err
		}
	}

	r.ShowConsoleMsg(fmt.Sprintf("oscsurf: mirroring to %s\n", raddr))
	p.logger.Info("loaded",
		zap.String("endpoint", raddr.String()),
		zap.String("reaper", r.Version().String()))
	return nil
}

func (p *plugin) close() {
	if p.session != nil {
		if err := p.session.Close(); err != nil {
			p.logger.Warn("teardown incomplete", zap.Error(err))
		}
		p.session = nil
	}
	raw.SetPanicHandler(nil)
	if p.conn != nil {
		p.conn.Close()
		p.conn = nil
	}
	p.logger.Sync()
}

func main() {}
