// SPDX-License-Identifier: EPL-2.0

package voice

import (
	"github.com/ik5/audgen/engine"
	"github.com/ik5/audgen/param"
	"github.com/ik5/audgen/table"
)

// OscParams are the bindings of one table-lookup voice.
type OscParams struct {
	Table  *table.Table
	Interp table.Interp
	Freq   param.Resolved
	Phase  param.Resolved
	Post
}

// Osc reads a waveform table at a rate set by Freq. The table is fixed
// for the voice's lifetime.
type Osc struct {
	base
	table  *table.Table
	interp table.Interp
	freq   *Slot
	phase  *Slot
	step   float64
	acc    float64
}

// NewOsc returns a table-lookup voice. p.Table must not be nil.
func NewOsc(ctx *engine.Context, p OscParams) (*Osc, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if p.Table == nil {
		return nil, ErrNilTable
	}
	if !p.Interp.Valid() {
		return nil, ErrUnknownInterp
	}
	return &Osc{
		base:   newBase(ctx, p.Post),
		table:  p.Table,
		interp: p.Interp,
		freq:   newSlot(p.Freq),
		phase:  newSlot(p.Phase),
		step:   1 / ctx.SampleRate(),
	}, nil
}

func (o *Osc) Table() *table.Table       { return o.table }
func (o *Osc) Interp() table.Interp      { return o.interp }
func (o *Osc) SetFreq(r param.Resolved)  { o.freq.Store(r) }
func (o *Osc) SetPhase(r param.Resolved) { o.phase.Store(r) }
func (o *Osc) Freq() param.Resolved      { return o.freq.Load() }
func (o *Osc) Phase() param.Resolved     { return o.phase.Load() }

// Process reads one block from the table, advancing the phase by the
// bound frequency each sample.
func (o *Osc) Process(ctx *engine.Context) {
	freq := o.freq.pull(ctx)
	phase := o.phase.pull(ctx)

	for j := range o.out {
		o.out[j] = o.table.At(o.acc+phase.At(j), o.interp)
		o.acc = wrapPhase(o.acc + freq.At(j)*o.step)
	}
	o.finish(ctx)
}
