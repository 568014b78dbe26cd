// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/golang/glog"
	"gonum.org/v1/gonum/floats"

	"github.com/ik5/audgen/audio"
)

// Node is an object whose voices the server can pull and mix.
type Node interface {
	// Process computes the current block of every voice. Calling it more
	// than once per block must be harmless.
	Process(ctx *Context)
	// FanOut is the number of voices.
	FanOut() int
	// Output returns the last computed block of voice i.
	Output(i int) []float64
}

type route struct {
	node  Node
	chnl  int
	voice int // voice count captured when routed; fan-out never changes
}

// Server pulls blocks from routed nodes and mixes them to the output
// channels of its context. Voice i of a node routed at chnl lands on
// output (chnl+i) mod OutputChannels.
//
// Server implements audio.Source with interleaved float32 frames and
// never reports io.EOF, so it can feed a Resampler, a MonoMixer or a
// WAV encoder directly.
type Server struct {
	ctx *Context

	mu     sync.Mutex // serialises Out and Stop
	routes atomic.Pointer[[]route]

	// processing path only
	mix    [][]float64
	pos    int
	primed bool
}

// NewServer returns a server mixing to ctx's output channels.
func NewServer(ctx *Context) *Server {
	s := &Server{ctx: ctx}
	s.mix = make([][]float64, ctx.OutputChannels())
	for i := range s.mix {
		s.mix[i] = make([]float64, ctx.BlockSize())
	}
	empty := []route{}
	s.routes.Store(&empty)
	return s
}

func (s *Server) Context() *Context { return s.ctx }

// Out routes the voices of n starting at output channel chnl.
// Routing an already routed node moves it.
func (s *Server) Out(n Node, chnl int) error {
	if n == nil {
		return ErrNilNode
	}
	if chnl < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidChannel, chnl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cur := *s.routes.Load()
	next := make([]route, 0, len(cur)+1)
	for _, r := range cur {
		if r.node != n {
			next = append(next, r)
		}
	}
	next = append(next, route{node: n, chnl: chnl, voice: n.FanOut()})
	s.routes.Store(&next)

	glog.V(1).Infof("engine: routed %v (%d voices) at channel %d", n, n.FanOut(), chnl)
	return nil
}

// Stop removes n from the mix. It reports whether n was routed.
func (s *Server) Stop(n Node) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := *s.routes.Load()
	i := slices.IndexFunc(cur, func(r route) bool { return r.node == n })
	if i < 0 {
		return false
	}
	next := slices.Delete(slices.Clone(cur), i, i+1)
	s.routes.Store(&next)

	glog.V(1).Infof("engine: stopped %v", n)
	return true
}

// Routed returns how many nodes are currently in the mix.
func (s *Server) Routed() int { return len(*s.routes.Load()) }

// Tick computes one block: every routed node is processed, its voices
// are summed into the mix, and the context advances to the next block.
func (s *Server) Tick() {
	for _, ch := range s.mix {
		clear(ch)
	}

	outs := len(s.mix)
	for _, r := range *s.routes.Load() {
		r.node.Process(s.ctx)
		for i := range r.voice {
			floats.Add(s.mix[(r.chnl+i)%outs], r.node.Output(i))
		}
	}

	s.ctx.Advance()
}

// Mix returns the last computed block of output channel ch.
func (s *Server) Mix(ch int) []float64 { return s.mix[ch] }

func (s *Server) SampleRate() int { return int(s.ctx.SampleRate()) }
func (s *Server) Channels() int   { return len(s.mix) }
func (s *Server) BufSize() int    { return s.ctx.BlockSize() * len(s.mix) }

// ReadSamples fills dst with interleaved frames, ticking as needed.
// len(dst) must be a multiple of Channels().
func (s *Server) ReadSamples(dst []float32) (int, error) {
	chans := len(s.mix)
	if len(dst)%chans != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	block := s.ctx.BlockSize()
	frames := len(dst) / chans
	for f := range frames {
		if !s.primed || s.pos == block {
			s.Tick()
			s.pos = 0
			s.primed = true
		}
		base := f * chans
		for ch := range chans {
			dst[base+ch] = float32(s.mix[ch][s.pos])
		}
		s.pos++
	}
	return frames * chans, nil
}

// Close removes every route. The context stays open; its owner closes it.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	empty := []route{}
	s.routes.Store(&empty)
	return nil
}
