// SPDX-License-Identifier: EPL-2.0

package table

import (
	"fmt"
	"math"

	"github.com/ik5/audgen/utils"
)

// Interp selects how a Table is read between two stored points.
type Interp uint8

const (
	// InterpLinear blends the two nearest points. It is the default.
	InterpLinear Interp = iota
	// InterpNone truncates to the previous point.
	InterpNone
	// InterpCubic uses a Catmull-Rom spline over four points.
	InterpCubic
)

func (i Interp) String() string {
	switch i {
	case InterpLinear:
		return "linear"
	case InterpNone:
		return "none"
	case InterpCubic:
		return "cubic"
	}
	return fmt.Sprintf("Interp(%d)", uint8(i))
}

// Valid reports whether i names a known mode.
func (i Interp) Valid() bool { return i <= InterpCubic }

// Table is an immutable single-cycle waveform. It is safe to share a
// Table between any number of voices and goroutines.
type Table struct {
	// data holds size points plus one guard point equal to data[0].
	data []float64
	size int
}

// New copies samples into a Table.
func New(samples []float64) (*Table, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyTable
	}
	t := &Table{
		data: make([]float64, len(samples)+1),
		size: len(samples),
	}
	copy(t.data, samples)
	t.data[t.size] = t.data[0]
	return t, nil
}

func (t *Table) Size() int { return t.size }

// Samples returns a copy of the stored cycle.
func (t *Table) Samples() []float64 {
	out := make([]float64, t.size)
	copy(out, t.data[:t.size])
	return out
}

// At reads the table at phase, expressed in cycles. Phase wraps, so any
// finite value is accepted; a non-finite phase reads 0.
func (t *Table) At(phase float64, interp Interp) float64 {
	phase -= math.Floor(phase)
	pos := phase * float64(t.size)
	if math.IsNaN(pos) || math.IsInf(pos, 0) {
		return 0
	}
	i := int(pos)
	if i < 0 || i >= t.size {
		i = 0
		pos = 0
	}
	frac := pos - float64(i)

	switch interp {
	case InterpNone:
		return t.data[i]
	case InterpCubic:
		y0 := t.data[(i+t.size-1)%t.size]
		y3 := t.data[(i+2)%t.size]
		return utils.CubicInterpolate(y0, t.data[i], t.data[i+1], y3, frac)
	}
	return utils.LinearInterpolate(t.data[i], t.data[i+1], frac)
}

func (t *Table) String() string {
	return fmt.Sprintf("Table(size=%d)", t.size)
}
