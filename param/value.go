// SPDX-License-Identifier: EPL-2.0

package param

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/ik5/audgen/engine"
)

// Kind tells which variant a Value holds.
type Kind uint8

const (
	// KindUnset is the zero Value. Generators read it as "use the default".
	KindUnset Kind = iota
	// KindScalar is a single number shared by every voice.
	KindScalar
	// KindSequence is an ordered list of numbers, one per voice (with wraparound).
	KindSequence
	// KindSignal is a reference to another signal-producing object.
	KindSignal
)

func (k Kind) String() string {
	switch k {
	case KindUnset:
		return "unset"
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindSignal:
		return "signal"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Signal is anything whose voices can drive a parameter: every generator
// implements it.
type Signal interface {
	// FanOut is the number of voices the object currently reports.
	FanOut() int
	// Tap returns a read-only view of voice i. i must be in [0, FanOut()).
	Tap(i int) Tap
	// Inputs lists the signals the object's own parameters refer to.
	Inputs() []Signal
}

// Tap is one voice's output block, as read by a bound parameter.
type Tap interface {
	// Pull makes sure the voice has computed the current block of ctx.
	Pull(ctx *engine.Context)
	// Samples returns the voice's last computed block.
	Samples() []float64
}

// Value is a parameter value: a Scalar, a Sequence or a Signal reference.
// Values are immutable once built; Sequence copies its input.
type Value struct {
	kind   Kind
	scalar float64
	seq    []float64
	sig    Signal
}

// Scalar returns a Value holding a single number.
func Scalar(v float64) Value {
	return Value{kind: KindScalar, scalar: v}
}

// Sequence returns a Value holding a copy of vs.
// An empty sequence is accepted here and rejected by Validate.
func Sequence(vs ...float64) Value {
	seq := make([]float64, len(vs))
	copy(seq, vs)
	return Value{kind: KindSequence, seq: seq}
}

// Ints is a convenience for integer sequences such as channel lists.
func Ints(vs ...int) Value {
	seq := make([]float64, len(vs))
	for i, v := range vs {
		seq[i] = float64(v)
	}
	return Value{kind: KindSequence, seq: seq}
}

// Ref returns a Value that binds to the voices of sig.
func Ref(sig Signal) Value {
	return Value{kind: KindSignal, sig: sig}
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// IsUnset reports whether v is the zero Value.
func (v Value) IsUnset() bool { return v.kind == KindUnset }

// Signal returns the referenced signal, or nil for other kinds.
func (v Value) Signal() Signal { return v.sig }

// Float returns the scalar held by v; ok is false for other kinds.
func (v Value) Float() (f float64, ok bool) {
	if v.kind != KindScalar {
		return 0, false
	}
	return v.scalar, true
}

// Floats returns a copy of the sequence held by v; ok is false for other kinds.
func (v Value) Floats() (fs []float64, ok bool) {
	if v.kind != KindSequence {
		return nil, false
	}
	fs = make([]float64, len(v.seq))
	copy(fs, v.seq)
	return fs, true
}

// Or returns v, or def when v is unset.
func (v Value) Or(def Value) Value {
	if v.kind == KindUnset {
		return def
	}
	return v
}

// Validate reports whether v can be bound to a voice.
func (v Value) Validate() error {
	switch v.kind {
	case KindScalar:
		if !finite(v.scalar) {
			return fmt.Errorf("%w: %v", ErrNotFinite, v.scalar)
		}
	case KindSequence:
		if len(v.seq) == 0 {
			return ErrEmptySequence
		}
		for i, x := range v.seq {
			if !finite(x) {
				return fmt.Errorf("%w: element %d is %v", ErrNotFinite, i, x)
			}
		}
	case KindSignal:
		if isNil(v.sig) {
			return ErrNilSignal
		}
		if v.sig.FanOut() < 1 {
			return ErrEmptySignal
		}
	default:
		return ErrUnsetValue
	}
	return nil
}

// Equal reports whether v and o hold the same value. Signals compare by identity.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindScalar:
		return v.scalar == o.scalar
	case KindSequence:
		if len(v.seq) != len(o.seq) {
			return false
		}
		for i := range v.seq {
			if v.seq[i] != o.seq[i] {
				return false
			}
		}
		return true
	case KindSignal:
		return v.sig == o.sig
	}
	return true
}

func (v Value) String() string {
	switch v.kind {
	case KindScalar:
		return strconv.FormatFloat(v.scalar, 'g', -1, 64)
	case KindSequence:
		var b strings.Builder
		b.WriteByte('[')
		for i, x := range v.seq {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
		}
		b.WriteByte(']')
		return b.String()
	case KindSignal:
		if isNil(v.sig) {
			return "signal(nil)"
		}
		if s, ok := v.sig.(fmt.Stringer); ok {
			return s.String()
		}
		return fmt.Sprintf("signal(%d voices)", v.sig.FanOut())
	}
	return "unset"
}

// isNil also catches a nil pointer stored in a non-nil interface, such
// as a generator whose constructor failed.
func isNil(s Signal) bool {
	if s == nil {
		return true
	}
	rv := reflect.ValueOf(s)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
