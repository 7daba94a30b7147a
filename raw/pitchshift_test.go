package raw

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestPitchShiftBufferProtocol(t *testing.T) {
	f := loadTestFunctions(t)

	require.Nil(t, f.ReaperGetPitchShiftAPI(0))

	ps := f.ReaperGetPitchShiftAPI(PitchShiftAPIVersion)
	require.NotNil(t, ps)
	defer PitchShiftDestroy(ps)

	PitchShiftSetSrate(ps, 48000)
	PitchShiftSetNch(ps, 2)
	PitchShiftSetShift(ps, 1.0)
	require.True(t, PitchShiftIsReset(ps))

	buf := PitchShiftGetBuffer(ps, 4)
	require.NotNil(t, buf)
	in := ReaSampleSlice(buf, 8)
	for i := range in {
		in[i] = ReaSample(i)
	}
	PitchShiftBufferDone(ps, 4)
	require.False(t, PitchShiftIsReset(ps))

	out := AllocCharBuf(int32(8 * reaSampleSize))
	defer FreeCString(out)
	op := (*ReaSample)(unsafe.Pointer(out))

	require.Equal(t, int32(4), PitchShiftGetSamples(ps, 4, op))
	got := ReaSampleSlice(op, 8)
	require.Equal(t, ReaSample(0), got[0])
	require.Equal(t, ReaSample(7), got[7])
	require.True(t, PitchShiftIsReset(ps))

	PitchShiftReset(ps)
	require.Equal(t, int32(0), PitchShiftGetSamples(ps, 4, op))
}

func TestResamplerPassThrough(t *testing.T) {
	f := loadTestFunctions(t)

	rs := f.Resampler_Create()
	require.NotNil(t, rs)
	defer ResampleDestroy(rs)

	ResampleSetRates(rs, 48000, 48000)
	require.Equal(t, 0.0, ResampleGetCurrentLatency(rs))

	inPtr := AllocCharBuf(int32(unsafe.Sizeof(uintptr(0))))
	defer FreeCString(inPtr)
	pp := (**ReaSample)(unsafe.Pointer(inPtr))

	require.Equal(t, int32(4), ResamplePrepare(rs, 4, 2, pp))
	in := ReaSampleSlice(ReaSamplePtrSlice(pp, 1)[0], 8)
	for i := range in {
		in[i] = ReaSample(i + 1)
	}

	out := AllocCharBuf(int32(8 * reaSampleSize))
	defer FreeCString(out)
	op := (*ReaSample)(unsafe.Pointer(out))

	require.Equal(t, int32(4), ResampleOut(rs, op, 4, 4, 2))
	got := ReaSampleSlice(op, 8)
	require.Equal(t, ReaSample(1), got[0])
	require.Equal(t, ReaSample(8), got[7])
}
