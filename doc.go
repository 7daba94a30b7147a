// Package reaper provides Go bindings for the REAPER plugin ABI, layered on
// top of the raw package.
//
// The raw package is the floor: C types, sentinel return values, no
// validation. This package is the surface extensions and instrument plugins
// are meant to program against: Go strings and slices, value types for
// volumes and pans, typed events decoded from the control surface protocol,
// errors instead of sentinels, and main-thread assertions on operations the
// host restricts to its main thread.
//
// An extension wires itself up from its exported ReaperPluginEntry:
//
//	ctx, err := raw.NewPluginContextFromExtensionEntry(hInstance, rec)
//	if err != nil {
//		return 0 // incompatible host, stay out
//	}
//	r := reaper.New(ctx)
//	session := reaper.NewSession(r, logger)
//
// A plugin loaded as a VST resolves the same context through the host
// callback with raw.NewPluginContextFromVstEntry and can additionally query
// its containing track, take and project through VstPluginContext.
//
// Everything registered through a Session is unregistered by Session.Close,
// in reverse order of registration.
package reaper
