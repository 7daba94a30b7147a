package reaper

import (
	"unsafe"

	"github.com/JamesHovious/w32"
)

// StaticHInstance returns the module handle of the image this code lives
// in, for entry paths that don't hand one over (the VST entry has no
// HINSTANCE parameter).
func StaticHInstance() unsafe.Pointer {
	return unsafe.Pointer(uintptr(w32.GetModuleHandle("")))
}
