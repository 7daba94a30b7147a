package reaper

import (
	"fmt"
	"sync"
	"unsafe"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/n0izn0iz/go-reaper/raw"
)

// Session tracks everything a plugin registers with the host and pairs each
// registration with its "-"-prefixed inverse. Close unregisters in reverse
// registration order, so dependent registrations come down before what they
// depend on.
//
// A Session is confined to the main thread, like the registration API
// itself. Run one Session per plugin; the command and audio dispatchers are
// process-wide.
type Session struct {
	r      *Reaper
	logger *zap.Logger

	registrations []*Registration
	actions       map[CommandID]*actionEntry
	commandHooks  *Registration

	audioMu    sync.RWMutex
	audioHooks map[*raw.AudioHookRegister]AudioHandler

	closed bool
}

// NewSession wraps r. A nil logger disables logging.
func NewSession(r *Reaper, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		r:       r,
		logger:  logger,
		actions: make(map[CommandID]*actionEntry),
	}
}

func (s *Session) Reaper() *Reaper { return s.r }

// Registration is one live registration. Close undoes it; the session's
// Close covers whatever is still open.
type Registration struct {
	what  string
	close func() error
	done  bool
}

func (g *Registration) Close() error {
	if g.done {
		return nil
	}
	g.done = true
	return g.close()
}

func (s *Session) addCleanup(what string, fn func() error) *Registration {
	reg := &Registration{what: what, close: fn}
	s.registrations = append(s.registrations, reg)
	return reg
}

func (s *Session) pluginRegister(key string, info unsafe.Pointer) error {
	ck := raw.CString(key)
	defer raw.FreeCString(ck)
	if s.r.fns.PluginRegister(ck, info) == 0 {
		return &RegistrationError{Key: key}
	}
	return nil
}

func (s *Session) pluginUnregister(key string, info unsafe.Pointer) {
	ck := raw.CString("-" + key)
	defer raw.FreeCString(ck)
	s.r.fns.PluginRegister(ck, info)
}

// Register sends plugin_register(key, info) and returns the handle whose
// Close runs the "-"+key inverse with the same info pointer. For keys this
// package has no typed wrapper for; info must stay valid while registered.
func (s *Session) Register(key string, info unsafe.Pointer) (*Registration, error) {
	if err := s.pluginRegister(key, info); err != nil {
		return nil, err
	}
	s.logger.Debug("registered with host", zap.String("key", key))
	return s.addCleanup(key, func() error {
		s.pluginUnregister(key, info)
		return nil
	}), nil
}

// RegisteredSurface is a control surface accepted by the host.
type RegisteredSurface struct {
	*Registration
	adapter *SurfaceObserverAdapter
}

func (r *RegisteredSurface) Observer() SurfaceObserver { return r.adapter.Observer() }

// AddControlSurface registers obs as a control surface. The host starts
// calling it on the next main loop cycle.
func (s *Session) AddControlSurface(obs SurfaceObserver) (*RegisteredSurface, error) {
	adapter := NewSurfaceObserverAdapter(obs, s.r.Version())
	target := raw.RegisterTarget(adapter)
	csurf := raw.NewControlSurface(target)
	if err := s.pluginRegister("csurf_inst", unsafe.Pointer(csurf)); err != nil {
		raw.DeleteControlSurface(csurf)
		raw.ReleaseTarget(target)
		adapter.Close()
		return nil, err
	}
	reg := s.addCleanup("csurf_inst", func() error {
		s.pluginUnregister("csurf_inst", unsafe.Pointer(csurf))
		raw.DeleteControlSurface(csurf)
		raw.ReleaseTarget(target)
		adapter.Close()
		return nil
	})
	s.logger.Debug("registered control surface", zap.String("type", obs.TypeString()))
	return &RegisteredSurface{Registration: reg, adapter: adapter}, nil
}

// ActionHandler runs when the host invokes a registered action.
type ActionHandler interface {
	Run(flag int32)
}

// ActionHandlerFunc adapts a function to ActionHandler.
type ActionHandlerFunc func(flag int32)

func (f ActionHandlerFunc) Run(flag int32) { f(flag) }

// ActionSpec describes a main-section action.
type ActionSpec struct {
	// CommandName is the stable textual id, e.g. "GOREAPER_HELLO". The
	// numeric id is assigned by the host per session.
	CommandName string
	// Description shows up in the action list and as the default undo
	// label.
	Description string
	Handler     ActionHandler
	// IsOn reports the on/off state for menu ticks and toolbar buttons.
	// nil means the action has no such state.
	IsOn func() bool
}

type actionEntry struct {
	spec ActionSpec
}

// RegisteredAction is an action accepted by the host.
type RegisteredAction struct {
	*Registration
	id CommandID
}

// CommandID is the host-assigned numeric id, valid for this session.
func (a *RegisteredAction) CommandID() CommandID { return a.id }

// RegisterAction makes spec invokable from the action list, keyboard
// shortcuts and toolbars.
func (s *Session) RegisterAction(spec ActionSpec) (*RegisteredAction, error) {
	if spec.CommandName == "" || spec.Handler == nil {
		return nil, fmt.Errorf("action needs a command name and a handler")
	}
	if err := s.ensureCommandHooks(); err != nil {
		return nil, err
	}
	cname := raw.CString(spec.CommandName)
	ckey := raw.CString("command_id")
	cid := s.r.fns.PluginRegister(ckey, unsafe.Pointer(cname))
	raw.FreeCString(ckey)
	if cid == 0 {
		raw.FreeCString(cname)
		return nil, &RegistrationError{Key: "command_id"}
	}
	gaccel := raw.AllocGaccelRegister(spec.Description, cid)
	if err := s.pluginRegister("gaccel", unsafe.Pointer(gaccel)); err != nil {
		s.pluginUnregister("command_id", unsafe.Pointer(cname))
		raw.FreeGaccelRegister(gaccel)
		raw.FreeCString(cname)
		return nil, err
	}
	id := CommandID(cid)
	s.actions[id] = &actionEntry{spec: spec}
	reg := s.addCleanup("action "+spec.CommandName, func() error {
		delete(s.actions, id)
		s.pluginUnregister("gaccel", unsafe.Pointer(gaccel))
		s.pluginUnregister("command_id", unsafe.Pointer(cname))
		raw.FreeGaccelRegister(gaccel)
		raw.FreeCString(cname)
		return nil
	})
	s.logger.Debug("registered action",
		zap.String("command", spec.CommandName), zap.Int32("id", cid))
	return &RegisteredAction{Registration: reg, id: id}, nil
}

// ensureCommandHooks installs the process-wide dispatchers and registers
// their thunks, once per session.
func (s *Session) ensureCommandHooks() error {
	if s.commandHooks != nil {
		return nil
	}
	raw.SetHookCommandHandler(s.dispatchCommand)
	raw.SetToggleActionHandler(s.dispatchToggle)
	if err := s.pluginRegister("hookcommand", raw.HookCommandThunk()); err != nil {
		raw.SetHookCommandHandler(nil)
		raw.SetToggleActionHandler(nil)
		return err
	}
	if err := s.pluginRegister("toggleaction", raw.ToggleActionThunk()); err != nil {
		s.pluginUnregister("hookcommand", raw.HookCommandThunk())
		raw.SetHookCommandHandler(nil)
		raw.SetToggleActionHandler(nil)
		return err
	}
	s.commandHooks = s.addCleanup("command hooks", func() error {
		s.pluginUnregister("toggleaction", raw.ToggleActionThunk())
		s.pluginUnregister("hookcommand", raw.HookCommandThunk())
		raw.SetHookCommandHandler(nil)
		raw.SetToggleActionHandler(nil)
		s.commandHooks = nil
		return nil
	})
	return nil
}

func (s *Session) dispatchCommand(command, flag int32) bool {
	entry, ok := s.actions[CommandID(command)]
	if !ok {
		return false
	}
	entry.spec.Handler.Run(flag)
	return true
}

func (s *Session) dispatchToggle(command int32) int32 {
	entry, ok := s.actions[CommandID(command)]
	if !ok || entry.spec.IsOn == nil {
		return -1
	}
	if entry.spec.IsOn() {
		return 1
	}
	return 0
}

// ObservePostCommand reports every action the host ran, including
// built-ins. One observer per session.
func (s *Session) ObservePostCommand(fn func(id CommandID, flag int32)) (*Registration, error) {
	raw.SetHookPostCommandHandler(func(command, flag int32) {
		fn(CommandID(command), flag)
	})
	if err := s.pluginRegister("hookpostcommand", raw.HookPostCommandThunk()); err != nil {
		raw.SetHookPostCommandHandler(nil)
		return nil, err
	}
	return s.addCleanup("hookpostcommand", func() error {
		s.pluginUnregister("hookpostcommand", raw.HookPostCommandThunk())
		raw.SetHookPostCommandHandler(nil)
		return nil
	}), nil
}

// RegisteredAudioHook is a hardware audio hook accepted by the host.
type RegisteredAudioHook struct {
	*Registration
}

// AddAudioHook starts calling handler on the audio thread, twice per
// hardware block. The hook record lives on the C heap for as long as the
// registration stands.
func (s *Session) AddAudioHook(handler AudioHandler) (*RegisteredAudioHook, error) {
	if s.audioHooks == nil {
		s.audioHooks = make(map[*raw.AudioHookRegister]AudioHandler)
		raw.SetOnAudioBufferHandler(s.dispatchAudio)
	}
	reg := raw.AllocAudioHookRegister()
	raw.ArmAudioHook(reg)
	s.audioMu.Lock()
	s.audioHooks[reg] = handler
	s.audioMu.Unlock()
	if s.r.fns.Audio_RegHardwareHook(true, reg) == 0 {
		s.audioMu.Lock()
		delete(s.audioHooks, reg)
		s.audioMu.Unlock()
		raw.FreeAudioHookRegister(reg)
		return nil, &RegistrationError{Key: "Audio_RegHardwareHook"}
	}
	cleanup := s.addCleanup("audio hook", func() error {
		s.r.fns.Audio_RegHardwareHook(false, reg)
		s.audioMu.Lock()
		delete(s.audioHooks, reg)
		s.audioMu.Unlock()
		raw.FreeAudioHookRegister(reg)
		return nil
	})
	s.logger.Debug("armed audio hook")
	return &RegisteredAudioHook{Registration: cleanup}, nil
}

func (s *Session) dispatchAudio(isPost bool, length int32, srate float64, reg *raw.AudioHookRegister) {
	s.audioMu.RLock()
	h := s.audioHooks[reg]
	s.audioMu.RUnlock()
	if h != nil {
		h.OnAudioBuffer(OnAudioBufferArgs{
			IsPost:     isPost,
			Length:     length,
			SampleRate: Hz(srate),
			reg:        reg,
		})
	}
}

// Close unregisters everything still registered, newest first. Safe to call
// twice.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	var err error
	for i := len(s.registrations) - 1; i >= 0; i-- {
		reg := s.registrations[i]
		if !reg.done {
			s.logger.Debug("unregistering", zap.String("what", reg.what))
		}
		err = multierr.Append(err, reg.Close())
	}
	s.registrations = nil
	return err
}
