// +build !windows

package reaper

import "unsafe"

// StaticHInstance returns nil; module handles are a Windows notion.
func StaticHInstance() unsafe.Pointer { return nil }
