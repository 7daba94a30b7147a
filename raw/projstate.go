package raw

/*
#include "reaper_plugin.h"
#include "bridge.h"
*/
import "C"

// ProjectState is the Go side of ProjectStateContext. The C++ wrapper
// flattens the ABI's printf-style AddLine to a formatted line before
// forwarding, so implementations only ever see whole lines.
type ProjectState interface {
	AddLine(line *Char)
	GetLine(buf *Char, buflen int32) int32
	GetOutputSize() int64
	GetTempFlag() int32
	SetTempFlag(flag int32)
}

// NewProjectState creates the C++ wrapper object delegating to the registered
// target. Pair with DeleteProjectState.
func NewProjectState(target uintptr) *ProjectStateContext {
	return C.create_go_project_state(C.uintptr_t(target))
}

func DeleteProjectState(ctx *ProjectStateContext) {
	C.delete_go_project_state(ctx)
}

// ProjectStateAddLine writes one line to any ProjectStateContext, including
// host-provided ones. The line is passed as a literal, not a format string.
func ProjectStateAddLine(ctx *ProjectStateContext, line *Char) {
	C.project_state_add_line(ctx, line)
}

func ProjectStateGetLine(ctx *ProjectStateContext, buf *Char, buflen int32) int32 {
	return int32(C.project_state_get_line(ctx, buf, C.int(buflen)))
}

func ProjectStateGetOutputSize(ctx *ProjectStateContext) int64 {
	return int64(C.project_state_get_output_size(ctx))
}

func ProjectStateGetTempFlag(ctx *ProjectStateContext) int32 {
	return int32(C.project_state_get_temp_flag(ctx))
}

func ProjectStateSetTempFlag(ctx *ProjectStateContext, flag int32) {
	C.project_state_set_temp_flag(ctx, C.int(flag))
}

func lookupProjectState(target C.uintptr_t) (ProjectState, bool) {
	p, ok := lookupTarget(uintptr(target)).(ProjectState)
	return p, ok
}

//export GoProjStateAddLine
func GoProjStateAddLine(target C.uintptr_t, line *C.char) {
	defer recoverPanic("GoProjStateAddLine")
	if p, ok := lookupProjectState(target); ok {
		p.AddLine(line)
	}
}

//export GoProjStateGetLine
func GoProjStateGetLine(target C.uintptr_t, buf *C.char, buflen C.int) (res C.int) {
	res = -1 // eof, so a broken context can't spin a reader loop
	defer recoverPanic("GoProjStateGetLine")
	if p, ok := lookupProjectState(target); ok {
		res = C.int(p.GetLine(buf, int32(buflen)))
	}
	return
}

//export GoProjStateGetOutputSize
func GoProjStateGetOutputSize(target C.uintptr_t) (res C.longlong) {
	defer recoverPanic("GoProjStateGetOutputSize")
	if p, ok := lookupProjectState(target); ok {
		res = C.longlong(p.GetOutputSize())
	}
	return
}

//export GoProjStateGetTempFlag
func GoProjStateGetTempFlag(target C.uintptr_t) (res C.int) {
	defer recoverPanic("GoProjStateGetTempFlag")
	if p, ok := lookupProjectState(target); ok {
		res = C.int(p.GetTempFlag())
	}
	return
}

//export GoProjStateSetTempFlag
func GoProjStateSetTempFlag(target C.uintptr_t, flag C.int) {
	defer recoverPanic("GoProjStateSetTempFlag")
	if p, ok := lookupProjectState(target); ok {
		p.SetTempFlag(int32(flag))
	}
}
