package reaper

import (
	"fmt"

	"github.com/n0izn0iz/go-reaper/raw"
)

// StateWriter writes lines into a ProjectStateContext during SaveState.
type StateWriter struct {
	ctx *raw.ProjectStateContext
}

func (w *StateWriter) Raw() *raw.ProjectStateContext { return w.ctx }

// AddLine writes one line verbatim. The context escapes nothing; quoting
// follows the usual project file rules.
func (w *StateWriter) AddLine(line string) {
	c := raw.CString(line)
	defer raw.FreeCString(c)
	raw.ProjectStateAddLine(w.ctx, c)
}

// AddLinef formats and writes one line.
func (w *StateWriter) AddLinef(format string, args ...interface{}) {
	w.AddLine(fmt.Sprintf(format, args...))
}

// StateReader reads lines from a ProjectStateContext during LoadState.
type StateReader struct {
	ctx *raw.ProjectStateContext
}

func (r *StateReader) Raw() *raw.ProjectStateContext { return r.ctx }

// ReadLine returns the next line of the state block, ok false at the end.
// The closing ">" still comes through as a line; stop there when parsing a
// nested block.
func (r *StateReader) ReadLine() (line string, ok bool) {
	const bufLen = 4096
	buf := raw.AllocCharBuf(bufLen)
	defer raw.FreeCString(buf)
	if raw.ProjectStateGetLine(r.ctx, buf, bufLen) < 0 {
		return "", false
	}
	return raw.GoString(buf), true
}

// MemoryProjectState is a ProjectStateContext living in Go memory. Useful
// for serializing a source outside a project file, or for exercising
// SaveState/LoadState pairs.
type MemoryProjectState struct {
	lines []string
	next  int
	temp  int32
	size  int64
}

var _ raw.ProjectState = (*MemoryProjectState)(nil)

func (m *MemoryProjectState) AddLine(line *raw.Char) {
	s := raw.GoString(line)
	m.lines = append(m.lines, s)
	m.size += int64(len(s)) + 1
}

func (m *MemoryProjectState) GetLine(buf *raw.Char, buflen int32) int32 {
	if m.next >= len(m.lines) {
		return -1
	}
	raw.FillCharBuf(buf, buflen, m.lines[m.next])
	m.next++
	return 0
}

func (m *MemoryProjectState) GetOutputSize() int64 { return m.size }

func (m *MemoryProjectState) GetTempFlag() int32 { return m.temp }

func (m *MemoryProjectState) SetTempFlag(flag int32) { m.temp = flag }

// Lines returns everything written so far.
func (m *MemoryProjectState) Lines() []string { return m.lines }

// Rewind restarts reading at the first line.
func (m *MemoryProjectState) Rewind() { m.next = 0 }

// OwnedProjectState exposes a Go ProjectState implementation as a
// host-callable ProjectStateContext object.
type OwnedProjectState struct {
	ctx    *raw.ProjectStateContext
	target uintptr
}

func NewOwnedProjectState(impl raw.ProjectState) *OwnedProjectState {
	target := raw.RegisterTarget(impl)
	return &OwnedProjectState{ctx: raw.NewProjectState(target), target: target}
}

func (o *OwnedProjectState) Raw() *raw.ProjectStateContext { return o.ctx }

// Writer views the context as a StateWriter.
func (o *OwnedProjectState) Writer() *StateWriter { return &StateWriter{ctx: o.ctx} }

// Reader views the context as a StateReader.
func (o *OwnedProjectState) Reader() *StateReader { return &StateReader{ctx: o.ctx} }

// Close deletes the C++ object and releases the callback registration.
// Safe to call twice.
func (o *OwnedProjectState) Close() {
	if o.ctx == nil {
		return
	}
	raw.DeleteProjectState(o.ctx)
	raw.ReleaseTarget(o.target)
	o.ctx = nil
}
