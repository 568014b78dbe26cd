// SPDX-License-Identifier: EPL-2.0

package voice

import (
	"math"

	"github.com/ik5/audgen/engine"
	"github.com/ik5/audgen/param"
)

// Voice is one synthesis unit. Process fills Output with
// raw*mul + add for the current block of ctx.
type Voice interface {
	Process(ctx *engine.Context)
	Output() []float64

	SetMul(r param.Resolved)
	SetAdd(r param.Resolved)
	Mul() param.Resolved
	Add() param.Resolved
}

// Post holds the mul/add bindings every kernel shares.
type Post struct {
	Mul param.Resolved
	Add param.Resolved
}

// Unity is mul=1, add=0.
func Unity() Post { return Post{Mul: param.Const(1)} }

type base struct {
	mul *Slot
	add *Slot
	out []float64
}

func newBase(ctx *engine.Context, post Post) base {
	return base{
		mul: newSlot(post.Mul),
		add: newSlot(post.Add),
		out: make([]float64, ctx.BlockSize()),
	}
}

func (b *base) Output() []float64       { return b.out }
func (b *base) SetMul(r param.Resolved) { b.mul.Store(r) }
func (b *base) SetAdd(r param.Resolved) { b.add.Store(r) }
func (b *base) Mul() param.Resolved     { return b.mul.Load() }
func (b *base) Add() param.Resolved     { return b.add.Load() }

// finish applies out = out*mul + add in place.
func (b *base) finish(ctx *engine.Context) {
	mul := b.mul.pull(ctx)
	add := b.add.pull(ctx)

	if mul.IsConst() && add.IsConst() {
		if mul.Value == 1 && add.Value == 0 {
			return
		}
		for j := range b.out {
			b.out[j] = b.out[j]*mul.Value + add.Value
		}
		return
	}
	for j := range b.out {
		b.out[j] = b.out[j]*mul.At(j) + add.At(j)
	}
}

// wrapPhase keeps a phase accumulator in [0, 1). A non-finite
// accumulator restarts at 0.
func wrapPhase(acc float64) float64 {
	if math.IsNaN(acc) || math.IsInf(acc, 0) {
		return 0
	}
	return acc - math.Floor(acc)
}
