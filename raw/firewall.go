package raw

import "sync"

var (
	panicHandlerMu sync.RWMutex
	panicHandler   func(entryPoint string, recovered interface{})
)

// SetPanicHandler installs the process-wide observer for panics recovered at
// host entry points. The entry points themselves never log; whatever h does
// with the panic is the only diagnostic. A nil handler discards panics.
func SetPanicHandler(h func(entryPoint string, recovered interface{})) {
	panicHandlerMu.Lock()
	panicHandler = h
	panicHandlerMu.Unlock()
}

// recoverPanic must be deferred directly by every exported function the host
// can call. It stops the unwind at the language boundary; the caller's named
// zero results double as the inert defaults the host receives.
func recoverPanic(entryPoint string) {
	r := recover()
	if r == nil {
		return
	}
	panicHandlerMu.RLock()
	h := panicHandler
	panicHandlerMu.RUnlock()
	if h == nil {
		return
	}
	func() {
		// a panicking handler must not unwind into C either
		defer func() { _ = recover() }()
		h(entryPoint, r)
	}()
}
