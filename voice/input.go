// SPDX-License-Identifier: EPL-2.0

package voice

import (
	"fmt"

	"github.com/ik5/audgen/engine"
)

// Input copies one channel of the context's input bus. A channel the bus
// does not have reads as silence.
type Input struct {
	base
	chnl int
}

// NewInput returns a voice copying channel chnl of the input bus.
func NewInput(ctx *engine.Context, chnl int, post Post) (*Input, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if chnl < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannel, chnl)
	}
	return &Input{base: newBase(ctx, post), chnl: chnl}, nil
}

func (in *Input) Channel() int { return in.chnl }

// Process copies the current block of the channel, or silence when the
// bus has no such channel.
func (in *Input) Process(ctx *engine.Context) {
	if bus := ctx.Input(in.chnl); bus != nil {
		copy(in.out, bus)
	} else {
		clear(in.out)
	}
	in.finish(ctx)
}
