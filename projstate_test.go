package reaper

import (
	"testing"

	"github.com/n0izn0iz/go-reaper/raw"
	"github.com/stretchr/testify/require"
)

func TestMemoryProjectStateRoundTrip(t *testing.T) {
	mem := &MemoryProjectState{}
	owned := NewOwnedProjectState(mem)
	defer owned.Close()

	w := owned.Writer()
	w.AddLine("<GOSRC 1")
	w.AddLinef("VOL %.2f PAN %.2f", 0.5, -0.25)
	w.AddLine(`NAME "50% wet"`)
	w.AddLine(">")

	want := []string{"<GOSRC 1", "VOL 0.50 PAN -0.25", `NAME "50% wet"`, ">"}
	require.Equal(t, want, mem.Lines())

	var size int64
	for _, line := range want {
		size += int64(len(line)) + 1
	}
	require.Equal(t, size, mem.GetOutputSize())
	require.Equal(t, size, raw.ProjectStateGetOutputSize(owned.Raw()))

	rd := owned.Reader()
	var got []string
	for {
		line, ok := rd.ReadLine()
		if !ok {
			break
		}
		got = append(got, line)
	}
	require.Equal(t, want, got)

	mem.Rewind()
	line, ok := rd.ReadLine()
	require.True(t, ok)
	require.Equal(t, "<GOSRC 1", line)
}

func TestOwnedProjectStateTempFlag(t *testing.T) {
	mem := &MemoryProjectState{}
	owned := NewOwnedProjectState(mem)
	defer owned.Close()

	raw.ProjectStateSetTempFlag(owned.Raw(), 7)
	require.Equal(t, int32(7), mem.GetTempFlag())
	require.Equal(t, int32(7), raw.ProjectStateGetTempFlag(owned.Raw()))
}

func TestOwnedProjectStateCloseTwice(t *testing.T) {
	owned := NewOwnedProjectState(&MemoryProjectState{})
	owned.Close()
	require.NotPanics(t, owned.Close)
	require.Nil(t, owned.Raw())
}
