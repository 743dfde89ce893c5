// SPDX-License-Identifier: MIT
// Package: csrgraph/mst
//
// types.go — sentinel errors, options and the Compute dispatcher.

package mst

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/katalvlaran/csrgraph/csr"
	"github.com/rs/zerolog"
)

var (
	// ErrInvalidGraph indicates a nil graph.
	ErrInvalidGraph = errors.New("mst: graph is nil")

	// ErrDisconnected indicates that no spanning tree exists: the graph has no
	// vertices, or has several components and WithForest was not given.
	ErrDisconnected = errors.New("mst: graph is disconnected")

	// ErrRootOutOfRange indicates a Prim root outside [0, NumVertices()).
	ErrRootOutOfRange = errors.New("mst: root vertex out of range")

	// ErrUnknownMethod indicates an unsupported Options.Method.
	ErrUnknownMethod = errors.New("mst: unknown method")

	// ErrInvalidOption indicates a meaningless option argument.
	ErrInvalidOption = errors.New("mst: invalid option")
)

// Supported values of Options.Method.
const (
	MethodBoruvka = "boruvka"
	MethodKruskal = "kruskal"
	MethodPrim    = "prim"
)

const (
	methodBoruvka = "Boruvka"
	methodKruskal = "Kruskal"
	methodPrim    = "Prim"
	methodCompute = "Compute"
)

// Options configures MST computation. Start from DefaultOptions.
type Options struct {
	// Method selects the algorithm used by Compute.
	Method string

	// Root is Prim's start vertex. Ignored by the other methods.
	Root int

	// Forest accepts disconnected graphs and returns a spanning forest.
	Forest bool

	// Workers bounds the parallel lightest-edge scan of Boruvka.
	// Values below 1 are treated as 1.
	Workers int

	// Logger receives Boruvka round events.
	Logger zerolog.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Boruvka from root 0, spanning tree required,
// GOMAXPROCS workers and a disabled logger.
func DefaultOptions() Options {
	return Options{
		Method:  MethodBoruvka,
		Root:    0,
		Forest:  false,
		Workers: runtime.GOMAXPROCS(0),
		Logger:  zerolog.Nop(),
	}
}

// NewOptions applies opts on top of DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// WithMethod selects the algorithm used by Compute.
func WithMethod(m string) Option {
	return func(o *Options) { o.Method = m }
}

// WithRoot sets Prim's start vertex.
func WithRoot(root int) Option {
	return func(o *Options) { o.Root = root }
}

// WithForest allows disconnected input; the result is a spanning forest.
func WithForest() Option {
	return func(o *Options) { o.Forest = true }
}

// WithWorkers bounds Boruvka's parallel scan. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Errorf("WithWorkers: n=%d: %w", n, ErrInvalidOption))
	}

	return func(o *Options) { o.Workers = n }
}

// WithLogger routes Boruvka's round events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// Compute runs the algorithm named by opts.Method on g.
func Compute[W csr.Number](ctx context.Context, g *csr.Graph[W], opts Options) ([]csr.LabeledEdge[W], W, error) {
	switch opts.Method {
	case MethodBoruvka:
		return boruvka(ctx, g, opts)
	case MethodKruskal:
		return kruskal(g, opts)
	case MethodPrim:
		return prim(g, opts)
	default:
		return nil, 0, fmt.Errorf("%s: method %q: %w", methodCompute, opts.Method, ErrUnknownMethod)
	}
}
