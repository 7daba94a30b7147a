// oscmon listens for the traffic oscsurf sends and prints it, one line
// per message. Point oscsurf's config at it while developing a surface.
package main

import (
	"flag"
	"fmt"

	"github.com/9600org/go-osc/osc"
	"go.uber.org/zap"
)

// printDispatcher dumps every message and unpacks bundles; oscsurf sends
// plain messages only.
type printDispatcher struct{}

var _ osc.Dispatcher = (*printDispatcher)(nil)

func (d *printDispatcher) Dispatch(packet osc.Packet) {
	switch p := packet.(type) {
	case *osc.Message:
		fmt.Printf("%s %v\n", p.Address, p.Arguments)
	case *osc.Bundle:
		for _, msg := range p.Messages {
			fmt.Printf("%s %v\n", msg.Address, msg.Arguments)
		}
		for _, b := range p.Bundles {
			d.Dispatch(b)
		}
	}
}

func main() {
	var addr string
	flag.StringVar(&addr, "addr", "127.0.0.1:8000", "address to listen on")

	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync() // flushes buffer, if any

	logger.Info("listening", zap.String("addr", addr))

	server := &osc.Server{Addr: addr, Dispatcher: &printDispatcher{}}
	if err := server.ListenAndServe(); err != nil {
		panic(err)
	}
}
