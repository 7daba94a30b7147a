package reaper

import "github.com/n0izn0iz/go-reaper/raw"

// Host-owned handle types, re-exported so consumers of this package rarely
// need to import raw directly.
type (
	ReaProject     = raw.ReaProject
	MediaTrack     = raw.MediaTrack
	MediaItem      = raw.MediaItem
	MediaItem_Take = raw.MediaItem_Take
	HWND           = raw.HWND
	ReaSample      = raw.ReaSample
	MidiEventList  = raw.MidiEventList
)
