// SPDX-License-Identifier: EPL-2.0

package param

import (
	"fmt"
	"maps"
	"slices"
)

// Resolved is what a single voice binds to for one parameter:
// a constant, or one voice of another object.
type Resolved struct {
	Value float64
	Tap   Tap
}

// Const returns a Resolved constant.
func Const(v float64) Resolved { return Resolved{Value: v} }

// IsConst reports whether r does not follow a signal.
func (r Resolved) IsConst() bool { return r.Tap == nil }

// At returns the bound value for sample j of the current block.
// A tap whose block is shorter than j+1 yields its last sample.
func (r Resolved) At(j int) float64 {
	if r.Tap == nil {
		return r.Value
	}
	s := r.Tap.Samples()
	switch {
	case j < len(s):
		return s[j]
	case len(s) > 0:
		return s[len(s)-1]
	}
	return 0
}

// Set maps parameter names to values.
type Set map[string]Value

// Binding maps parameter names to the value one voice is bound to.
type Binding map[string]Resolved

// Len is the natural fan-out of a single value: 1 for a scalar, the
// length of a sequence, or the voice count of a signal.
func Len(v Value) int {
	switch v.kind {
	case KindSequence:
		return len(v.seq)
	case KindSignal:
		if v.sig == nil {
			return 0
		}
		return v.sig.FanOut()
	case KindScalar:
		return 1
	}
	return 0
}

// FanOut is the number of voices needed to carry every value:
// the largest Len among them, and at least 1.
func FanOut(vs ...Value) int {
	n := 1
	for _, v := range vs {
		if l := Len(v); l > n {
			n = l
		}
	}
	return n
}

// At resolves v for voice i. Shorter values wrap around: voice i reads
// element i mod Len(v). v must be valid.
func At(v Value, i int) Resolved {
	switch v.kind {
	case KindSequence:
		return Resolved{Value: v.seq[i%len(v.seq)]}
	case KindSignal:
		return Resolved{Tap: v.sig.Tap(i % v.sig.FanOut())}
	}
	return Resolved{Value: v.scalar}
}

// Spread resolves v for n voices.
func Spread(v Value, n int) []Resolved {
	out := make([]Resolved, n)
	for i := range out {
		out[i] = At(v, i)
	}
	return out
}

// Resolve validates set and returns its fan-out together with one
// Binding per voice. It is a pure function of set.
func Resolve(set Set) (int, []Binding, error) {
	n := 1
	for _, v := range set {
		n = max(n, Len(v))
	}
	bindings, err := ResolveN(set, n)
	if err != nil {
		return 0, nil, err
	}
	return n, bindings, nil
}

// ResolveN is Resolve for a fan-out fixed by the caller, such as the
// voice count of an existing object. Values longer than n are truncated
// to their first n elements; shorter ones wrap.
func ResolveN(set Set, n int) ([]Binding, error) {
	for _, name := range slices.Sorted(maps.Keys(set)) {
		if err := set[name].Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}

	bindings := make([]Binding, n)
	for i := range bindings {
		b := make(Binding, len(set))
		for name, v := range set {
			b[name] = At(v, i)
		}
		bindings[i] = b
	}
	return bindings, nil
}

// CheckCycle reports ErrCyclicGraph when binding v to a parameter of
// self would let self reach itself through signal references.
func CheckCycle(self Signal, v Value) error {
	if v.kind != KindSignal || v.sig == nil || self == nil {
		return nil
	}
	target := identity(self)
	seen := map[any]bool{}
	stack := []Signal{v.sig}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		id := identity(s)
		if id == target {
			return ErrCyclicGraph
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		stack = append(stack, s.Inputs()...)
	}
	return nil
}

// Identifier is implemented by signals that wrap a shared core, so that
// the wrapper and the core count as one node of the graph.
type Identifier interface {
	SignalID() any
}

func identity(s Signal) any {
	if i, ok := s.(Identifier); ok {
		return i.SignalID()
	}
	return s
}
