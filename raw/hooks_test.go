package raw

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHookCommandDispatch(t *testing.T) {
	var got []int32
	SetHookCommandHandler(func(command, flag int32) bool {
		got = append(got, command, flag)
		return command == 40001
	})
	defer SetHookCommandHandler(nil)

	require.Equal(t, 1, int(GoHookCommand(40001, 2)))
	require.Equal(t, 0, int(GoHookCommand(40002, 0)))
	require.Equal(t, []int32{40001, 2, 40002, 0}, got)
}

func TestHookCommandWithoutHandler(t *testing.T) {
	SetHookCommandHandler(nil)
	require.Equal(t, 0, int(GoHookCommand(40001, 0)))
}

func TestHookPostCommandDispatch(t *testing.T) {
	var got [][2]int32
	SetHookPostCommandHandler(func(command, flag int32) {
		got = append(got, [2]int32{command, flag})
	})
	defer SetHookPostCommandHandler(nil)

	GoHookPostCommand(40001, 4)
	require.Equal(t, [][2]int32{{40001, 4}}, got)
}

func TestToggleActionDispatch(t *testing.T) {
	SetToggleActionHandler(func(command int32) int32 {
		if command == 50000 {
			return 1
		}
		return -1
	})
	defer SetToggleActionHandler(nil)

	require.Equal(t, 1, int(GoToggleAction(50000)))
	require.Equal(t, -1, int(GoToggleAction(50001)))
}

func TestToggleActionWithoutHandler(t *testing.T) {
	SetToggleActionHandler(nil)
	// unknown to this extension, not "off"
	require.Equal(t, -1, int(GoToggleAction(40001)))
}

func TestToggleActionPanicReportsUnknown(t *testing.T) {
	SetToggleActionHandler(func(int32) int32 { panic("toggle exploded") })
	defer SetToggleActionHandler(nil)

	require.Equal(t, -1, int(GoToggleAction(50000)))
}

func TestHookCommandPanicReportsUnhandled(t *testing.T) {
	SetHookCommandHandler(func(int32, int32) bool { panic("hook exploded") })
	defer SetHookCommandHandler(nil)

	require.Equal(t, 0, int(GoHookCommand(40001, 0)))
}

func TestGaccelRegisterAllocation(t *testing.T) {
	g := AllocGaccelRegister("Custom: do the thing", 50123)
	defer FreeGaccelRegister(g)

	require.Equal(t, "Custom: do the thing", GaccelDesc(g))
	require.Equal(t, int32(50123), GaccelCmd(g))
}

func TestAudioHookDrivenBlock(t *testing.T) {
	f := loadTestFunctions(t)

	type block struct {
		isPost bool
		length int32
		srate  float64
		in0    float64
		in1    float64
	}
	var blocks []block
	SetOnAudioBufferHandler(func(isPost bool, length int32, srate float64, reg *AudioHookRegister) {
		b := block{isPost: isPost, length: length, srate: srate}
		if p := AudioHookGetBuffer(reg, false, 0); p != nil {
			b.in0 = float64(ReaSampleSlice(p, int(length))[0])
		}
		if p := AudioHookGetBuffer(reg, false, 1); p != nil {
			b.in1 = float64(ReaSampleSlice(p, int(length))[length-1])
		}
		blocks = append(blocks, b)
	})
	defer SetOnAudioBufferHandler(nil)

	reg := AllocAudioHookRegister()
	defer FreeAudioHookRegister(reg)
	ArmAudioHook(reg)

	require.Equal(t, int32(1), f.Audio_RegHardwareHook(true, reg))
	FakeHostDriveAudioHook(reg, 16, 48000)
	f.Audio_RegHardwareHook(false, reg)

	require.Len(t, blocks, 2)
	require.False(t, blocks[0].isPost)
	require.True(t, blocks[1].isPost)
	for _, b := range blocks {
		require.Equal(t, int32(16), b.length)
		require.Equal(t, 48000.0, b.srate)
		require.Equal(t, 0.125, b.in0)
		require.Equal(t, 0.25, b.in1)
	}
	require.Equal(t, int32(2), AudioHookInputNch(reg))
	require.Equal(t, int32(2), AudioHookOutputNch(reg))
}

func TestAudioHookGetBufferUnarmed(t *testing.T) {
	reg := AllocAudioHookRegister()
	defer FreeAudioHookRegister(reg)

	require.Nil(t, AudioHookGetBuffer(reg, false, 0))
}

func TestOnAudioBufferPanicIsContained(t *testing.T) {
	SetOnAudioBufferHandler(func(bool, int32, float64, *AudioHookRegister) {
		panic("audio exploded")
	})
	defer SetOnAudioBufferHandler(nil)

	require.NotPanics(t, func() { GoOnAudioBuffer(0, 64, 48000, nil) })
}
