// SPDX-License-Identifier: EPL-2.0

package voice

import (
	"math"

	"github.com/ik5/audgen/engine"
)

// Noise is white noise in [-1, 1) from a xorshift32 generator.
type Noise struct {
	base
	state uint32
}

// NewNoise seeds the voice from seed. A zero state would lock the
// generator, so it is replaced by 1.
func NewNoise(ctx *engine.Context, seed uint64, post Post) (*Noise, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	state := uint32(seed) ^ uint32(seed>>32)
	if state == 0 {
		state = 1
	}
	return &Noise{base: newBase(ctx, post), state: state}, nil
}

// Process fills the block with fresh noise.
func (n *Noise) Process(ctx *engine.Context) {
	state := n.state
	for j := range n.out {
		state ^= state << 13
		state ^= state >> 17
		state ^= state << 5
		n.out[j] = 2*float64(state)/(math.MaxUint32+1.0) - 1
	}
	n.state = state
	n.finish(ctx)
}
