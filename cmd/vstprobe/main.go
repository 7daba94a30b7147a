// vstprobe loads a VST2 plugin and plays REAPER's side of the extension
// handshake, serving function requests from the built-in stub host. Point
// it at a REAPER-aware plugin to watch which API functions it resolves
// without starting REAPER at all.
package main

import (
	"flag"
	"fmt"
	"sort"
	"unsafe"

	"go.uber.org/zap"
	"pipelined.dev/audio/vst2"

	"github.com/n0izn0iz/go-reaper/raw"
)

const (
	reaperMagicOpcode      = 0xdeadbeef
	reaperMagicGetFunc     = 0xdeadf00d
	reaperMagicContextInfo = 0xdeadf00e
)

func main() {
	var pluginPath string
	flag.StringVar(&pluginPath, "plugin-path", "", "path to the VST2 plugin to probe")
	var blocks int
	flag.IntVar(&blocks, "blocks", 4, "number of audio blocks to process")
	var blockSize int
	flag.IntVar(&blockSize, "block-size", 512, "samples per block")

	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync() // flushes buffer, if any

	if pluginPath == "" {
		logger.Fatal("missing -plugin-path")
	}

	ctx, err := raw.NewPluginContextFromExtensionEntry(nil, raw.FakeHostRec(raw.PluginVersion))
	if err != nil {
		panic(err)
	}

	vst, err := vst2.Open(pluginPath)
	if err != nil {
		panic(err)
	}
	defer vst.Close()

	fmt.Println("Will load")

	requested := map[string]bool{}

	plugin := vst.Load(func(code vst2.HostOpcode, index vst2.Index, value vst2.Value, ptr vst2.Ptr, opt vst2.Opt) vst2.Return {
		if uint32(code) == reaperMagicOpcode {
			switch uint32(index) {
			case reaperMagicGetFunc:
				name := raw.GoString((*raw.Char)(unsafe.Pointer(ptr)))
				fn := ctx.GetFunc(name)
				requested[name] = fn != nil
				logger.Info("REAPER function request",
					zap.String("name", name),
					zap.Bool("served", fn != nil))
				return vst2.Return(uintptr(fn))
			case reaperMagicContextInfo:
				logger.Info("REAPER context query", zap.Int64("request", int64(value)))
				return 0
			}
		}
		fmt.Printf("Received opcode: %v\n", code)
		return 0
	})
	defer plugin.Close()

	fmt.Println("Loaded")

	plugin.SetSpeakerArrangement(
		&vst2.SpeakerArrangement{
			Type:        vst2.SpeakerArrMono,
			NumChannels: int32(2),
		},
		&vst2.SpeakerArrangement{
			Type:        vst2.SpeakerArrMono,
			NumChannels: int32(2),
		},
	)
	plugin.SetBufferSize(blockSize)

	plugin.Start()

	in := vst2.NewFloatBuffer(2, blockSize)
	out := vst2.NewFloatBuffer(2, blockSize)

	for i := 0; i < blocks; i++ {
		plugin.ProcessFloat(in, out)
	}

	if len(requested) == 0 {
		fmt.Println("no REAPER API traffic; plugin is not REAPER-aware")
	} else {
		names := make([]string, 0, len(requested))
		for name := range requested {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Printf("plugin resolved %d REAPER functions:\n", len(names))
		for _, name := range names {
			fmt.Printf("  %s served=%v\n", name, requested[name])
		}
	}

	fmt.Println("done")
}
