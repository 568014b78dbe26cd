// SPDX-License-Identifier: EPL-2.0

package param

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/audgen/engine"
)

type fakeTap struct {
	sig *fakeSignal
	i   int
}

func (t fakeTap) Pull(*engine.Context) {}
func (t fakeTap) Samples() []float64   { return []float64{float64(t.i), float64(t.i) + 0.5} }

type fakeSignal struct {
	n      int
	inputs []Signal
}

func (s *fakeSignal) FanOut() int      { return s.n }
func (s *fakeSignal) Tap(i int) Tap    { return fakeTap{sig: s, i: i} }
func (s *fakeSignal) Inputs() []Signal { return s.inputs }

func TestValue_Kind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    Value
		want Kind
	}{
		{"zero", Value{}, KindUnset},
		{"scalar", Scalar(1), KindScalar},
		{"sequence", Sequence(1, 2), KindSequence},
		{"ints", Ints(0, 1), KindSequence},
		{"ref", Ref(&fakeSignal{n: 1}), KindSignal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.v.Kind(); got != tt.want {
				t.Errorf("Kind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValue_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    Value
		want error
	}{
		{"scalar", Scalar(440), nil},
		{"sequence", Sequence(1, 2, 3), nil},
		{"signal", Ref(&fakeSignal{n: 2}), nil},
		{"empty sequence", Sequence(), ErrEmptySequence},
		{"nan scalar", Scalar(math.NaN()), ErrNotFinite},
		{"inf element", Sequence(1, math.Inf(1)), ErrNotFinite},
		{"nil signal", Ref(nil), ErrNilSignal},
		{"typed nil signal", Ref((*fakeSignal)(nil)), ErrNilSignal},
		{"voiceless signal", Ref(&fakeSignal{}), ErrEmptySignal},
		{"unset", Value{}, ErrUnsetValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.v.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.want)
			}
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("Validate() error = %v, want it to wrap ErrInvalidParameter", err)
			}
		})
	}
}

func TestSequence_CopiesInput(t *testing.T) {
	t.Parallel()

	in := []float64{1, 2, 3}
	v := Sequence(in...)
	in[0] = 99

	got, ok := v.Floats()
	if !ok {
		t.Fatal("Floats() ok = false, want true")
	}
	if got[0] != 1 {
		t.Errorf("Floats()[0] = %v, want 1", got[0])
	}

	got[1] = 99
	again, _ := v.Floats()
	if again[1] != 2 {
		t.Errorf("Floats() shares storage with the Value")
	}
}

func TestValue_Or(t *testing.T) {
	t.Parallel()

	def := Scalar(1000)
	if got := (Value{}).Or(def); !got.Equal(def) {
		t.Errorf("unset.Or() = %v, want %v", got, def)
	}
	if got := Scalar(5).Or(def); !got.Equal(Scalar(5)) {
		t.Errorf("Scalar(5).Or() = %v, want 5", got)
	}
}

func TestValue_Equal(t *testing.T) {
	t.Parallel()

	a := &fakeSignal{n: 1}
	b := &fakeSignal{n: 1}

	tests := []struct {
		name string
		x, y Value
		want bool
	}{
		{"same scalar", Scalar(1), Scalar(1), true},
		{"different scalar", Scalar(1), Scalar(2), false},
		{"same sequence", Sequence(1, 2), Sequence(1, 2), true},
		{"different length", Sequence(1, 2), Sequence(1), false},
		{"scalar vs sequence", Scalar(1), Sequence(1), false},
		{"same signal", Ref(a), Ref(a), true},
		{"different signal", Ref(a), Ref(b), false},
		{"unset", Value{}, Value{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.x.Equal(tt.y); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValue_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v    Value
		want string
	}{
		{Scalar(440), "440"},
		{Sequence(220, 0.5), "[220, 0.5]"},
		{Ref(&fakeSignal{n: 3}), "signal(3 voices)"},
		{Value{}, "unset"},
	}

	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
