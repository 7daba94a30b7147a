package raw

import "sync"

// Callback targets connect C++ glue objects to Go implementations without
// breaking the cgo pointer rules: the C side holds an opaque integer id,
// never a Go pointer. The id is stable for the lifetime of the registration
// and is never reused within a process.
var (
	targetsMu  sync.RWMutex
	targets    = make(map[uintptr]interface{})
	nextTarget uintptr = 1
)

// RegisterTarget stores impl and returns the id to hand to the C++ side.
func RegisterTarget(impl interface{}) uintptr {
	targetsMu.Lock()
	id := nextTarget
	nextTarget++
	targets[id] = impl
	targetsMu.Unlock()
	return id
}

// ReleaseTarget removes the registration and returns the stored
// implementation, or nil if the id is unknown. After release the id stays
// burned; trampolines seeing it fall back to their inert defaults.
func ReleaseTarget(id uintptr) interface{} {
	targetsMu.Lock()
	impl := targets[id]
	delete(targets, id)
	targetsMu.Unlock()
	return impl
}

func lookupTarget(id uintptr) interface{} {
	targetsMu.RLock()
	impl := targets[id]
	targetsMu.RUnlock()
	return impl
}
