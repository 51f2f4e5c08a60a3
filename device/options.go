// Package device: functional configuration for Open. Defaults are the
// fabric's documented memory map and the platform mapper; options panic
// on nonsensical values (programmer error), while runtime failures such
// as an unmappable window surface as errors from Open.

package device

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/neuromorph/ained/mmio"
)

// Option mutates the Open configuration.
type Option func(*options)

// options carries the gathered Open configuration. Fields are
// unexported; public APIs consume ...Option.
type options struct {
	mapper  mmio.Mapper
	regAddr uint64
	regLen  int
	memAddr uint64
	memLen  int
	log     *slog.Logger
}

// defaultOptions returns the documented defaults: the platform mapper
// (DevMem on Linux, Sim elsewhere), the fabric's default memory map,
// and a discarding logger.
func defaultOptions() options {
	return options{
		mapper:  defaultMapper(),
		regAddr: DefaultRegisterAddr,
		regLen:  DefaultRegisterLen,
		memAddr: DefaultMemoryAddr,
		memLen:  DefaultMemoryLen,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithMapper selects the region mapper. Panics on nil.
func WithMapper(m mmio.Mapper) Option {
	if m == nil {
		panic("device: WithMapper(nil)")
	}
	return func(o *options) { o.mapper = m }
}

// WithRegisterWindow overrides the physical window of the register
// region. Panics on a non-positive length.
func WithRegisterWindow(addr uint64, length int) Option {
	if length <= 0 {
		panic(fmt.Sprintf("device: WithRegisterWindow length %d", length))
	}
	return func(o *options) { o.regAddr, o.regLen = addr, length }
}

// WithMemoryWindow overrides the physical window of the lattice memory.
// Panics on a non-positive length.
func WithMemoryWindow(addr uint64, length int) Option {
	if length <= 0 {
		panic(fmt.Sprintf("device: WithMemoryWindow length %d", length))
	}
	return func(o *options) { o.memAddr, o.memLen = addr, length }
}

// WithLogger attaches a structured logger to the handle. Panics on nil;
// pass nothing to keep the silent default.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("device: WithLogger(nil)")
	}
	return func(o *options) { o.log = l }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
