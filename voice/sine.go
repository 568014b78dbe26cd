// SPDX-License-Identifier: EPL-2.0

package voice

import (
	"math"

	"github.com/ik5/audgen/engine"
	"github.com/ik5/audgen/param"
)

// SineParams are the bindings of one sine voice.
type SineParams struct {
	Freq  param.Resolved
	Phase param.Resolved
	Post
}

// Sine is a phase-accumulator sine oscillator. Phase is an offset in
// cycles added to the running accumulator.
type Sine struct {
	base
	freq  *Slot
	phase *Slot
	step  float64
	acc   float64
}

// NewSine returns a sine voice starting at phase 0.
func NewSine(ctx *engine.Context, p SineParams) (*Sine, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	return &Sine{
		base:  newBase(ctx, p.Post),
		freq:  newSlot(p.Freq),
		phase: newSlot(p.Phase),
		step:  1 / ctx.SampleRate(),
	}, nil
}

func (s *Sine) SetFreq(r param.Resolved)  { s.freq.Store(r) }
func (s *Sine) SetPhase(r param.Resolved) { s.phase.Store(r) }
func (s *Sine) Freq() param.Resolved      { return s.freq.Load() }
func (s *Sine) Phase() param.Resolved     { return s.phase.Load() }

// Process computes one block. The accumulator stays in [0, 1) and
// restarts at 0 if a bound frequency is not finite.
func (s *Sine) Process(ctx *engine.Context) {
	freq := s.freq.pull(ctx)
	phase := s.phase.pull(ctx)

	for j := range s.out {
		s.out[j] = math.Sin(2 * math.Pi * (s.acc + phase.At(j)))
		s.acc = wrapPhase(s.acc + freq.At(j)*s.step)
	}
	s.finish(ctx)
}
