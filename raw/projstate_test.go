package raw

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// memoryState buffers whole lines on the Go side of the wrapper.
type memoryState struct {
	lines []string
	next  int
	temp  int32
}

func (p *memoryState) AddLine(line *Char) {
	p.lines = append(p.lines, GoString(line))
}

func (p *memoryState) GetLine(buf *Char, buflen int32) int32 {
	if p.next >= len(p.lines) {
		return -1
	}
	FillCharBuf(buf, buflen, p.lines[p.next])
	p.next++
	return 0
}

func (p *memoryState) GetOutputSize() int64   { return 0 }
func (p *memoryState) GetTempFlag() int32     { return p.temp }
func (p *memoryState) SetTempFlag(flag int32) { p.temp = flag }

var _ ProjectState = (*memoryState)(nil)

func TestProjectStateRoundTrip(t *testing.T) {
	impl := &memoryState{}
	id := RegisterTarget(impl)
	defer ReleaseTarget(id)

	ctx := NewProjectState(id)
	require.NotNil(t, ctx)
	defer DeleteProjectState(ctx)

	// the wrapper flattens the varargs ABI; a literal % must survive
	for _, line := range []string{"<GOTEST 1", "NAME \"vol 50%\"", ">"} {
		cl := CString(line)
		ProjectStateAddLine(ctx, cl)
		FreeCString(cl)
	}
	require.Equal(t, []string{"<GOTEST 1", "NAME \"vol 50%\"", ">"}, impl.lines)

	buf := AllocCharBuf(64)
	defer FreeCString(buf)
	for _, want := range impl.lines {
		require.Equal(t, int32(0), ProjectStateGetLine(ctx, buf, 64))
		require.Equal(t, want, GoString(buf))
	}
	require.Equal(t, int32(-1), ProjectStateGetLine(ctx, buf, 64))

	ProjectStateSetTempFlag(ctx, 3)
	require.Equal(t, int32(3), ProjectStateGetTempFlag(ctx))
	require.Equal(t, int64(0), ProjectStateGetOutputSize(ctx))
}

type panickyState struct {
	memoryState
}

func (p *panickyState) GetLine(buf *Char, buflen int32) int32 { panic("getline exploded") }

func TestProjectStateReaderPanicReportsEOF(t *testing.T) {
	impl := &panickyState{}
	id := RegisterTarget(impl)
	defer ReleaseTarget(id)

	ctx := NewProjectState(id)
	defer DeleteProjectState(ctx)

	// eof instead of 0, so a host reader loop terminates
	buf := AllocCharBuf(16)
	defer FreeCString(buf)
	require.Equal(t, int32(-1), ProjectStateGetLine(ctx, buf, 16))
}

func TestProjectStateReleasedTargetReadsEOF(t *testing.T) {
	id := RegisterTarget(&memoryState{lines: []string{"<X", ">"}})
	ctx := NewProjectState(id)
	defer DeleteProjectState(ctx)

	ReleaseTarget(id)

	buf := AllocCharBuf(16)
	defer FreeCString(buf)
	require.Equal(t, int32(-1), ProjectStateGetLine(ctx, buf, 16))
}
