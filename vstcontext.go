package reaper

import (
	"unsafe"

	"github.com/n0izn0iz/go-reaper/raw"
)

// VstPluginContext answers host queries only available to plugins loaded as
// a VST: where in the project the plugin instance sits. All queries take
// the instance's AEffect pointer.
type VstPluginContext struct {
	ctx *raw.PluginContext
}

// VstContext returns the query interface, nil when the plugin was not
// loaded through a VST entry point.
func (r *Reaper) VstContext() *VstPluginContext {
	if !r.ctx.IsVst() {
		return nil
	}
	return &VstPluginContext{ctx: r.ctx}
}

// ContainingTrack is the track the FX instance sits on, nil when the
// instance is not a track FX (monitoring FX, take FX) or the host predates
// the query.
func (v *VstPluginContext) ContainingTrack(effect unsafe.Pointer) *MediaTrack {
	return (*MediaTrack)(unsafe.Pointer(v.ctx.VstContextInfo(effect, raw.VstRequestContainingTrack)))
}

// ContainingTake is the take the FX instance sits on, nil for non-take FX.
func (v *VstPluginContext) ContainingTake(effect unsafe.Pointer) *MediaItem_Take {
	return (*MediaItem_Take)(unsafe.Pointer(v.ctx.VstContextInfo(effect, raw.VstRequestContainingTake)))
}

func (v *VstPluginContext) ContainingProject(effect unsafe.Pointer) *ReaProject {
	return (*ReaProject)(unsafe.Pointer(v.ctx.VstContextInfo(effect, raw.VstRequestContainingProject)))
}

// ChannelCount is the track channel count at the FX position, 0 when
// unknown.
func (v *VstPluginContext) ChannelCount(effect unsafe.Pointer) int32 {
	return int32(int64(v.ctx.VstContextInfo(effect, raw.VstRequestChannelCount)))
}

// FxLocation is the instance's position in its FX chain. ok is false when
// the host does not answer the query, which REAPER predating the input-FX
// encoding does not.
func (v *VstPluginContext) FxLocation(effect unsafe.Pointer) (TrackFxLocation, bool) {
	res := int64(v.ctx.VstContextInfo(effect, raw.VstRequestFxLocation))
	if res <= 0 {
		return TrackFxLocation{}, false
	}
	return TrackFxLocationFromRaw(int32(res - 1)), true
}
