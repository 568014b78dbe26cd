// SPDX-License-Identifier: EPL-2.0

package generator

import (
	"fmt"
	"maps"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/golang/glog"

	"github.com/ik5/audgen/engine"
	"github.com/ik5/audgen/param"
	"github.com/ik5/audgen/voice"
)

// wiring serialises every change to the signal graph, so a cycle check
// and the binding it guards cannot interleave with another setter.
var wiring sync.Mutex

// binder pushes one resolved value into one voice.
type binder func(v voice.Voice, r param.Resolved)

// decl declares one named parameter of a generator.
type decl struct {
	name  string
	value param.Value
	// bind is nil for parameters that are fixed after construction.
	bind binder
	// check adds generator-specific validation.
	check func(param.Value) error
}

func bindMul(v voice.Voice, r param.Resolved) { v.SetMul(r) }
func bindAdd(v voice.Voice, r param.Resolved) { v.SetAdd(r) }

// Object is the part every generator shares: its parameters, its fixed
// set of voices and the setter protocol that rebinds them.
type Object struct {
	kind string

	mu      sync.Mutex // guards params
	names   []string
	params  param.Set
	binders map[string]binder

	voices []voice.Voice
	stamp  atomic.Uint64 // ctx.Block()+1 of the last processed block
}

// newObject validates decls, resolves them to a fan-out and builds every
// voice. It returns either a complete Object or an error and no voices.
// extra is a lower bound on the fan-out for inputs that are not
// parameters, such as a list of tables.
func newObject(ctx *engine.Context, kind string, decls []decl, extra int,
	build func(i int, b param.Binding) (voice.Voice, error),
) (*Object, error) {
	if ctx == nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConstruction, kind, voice.ErrNilContext)
	}

	o := &Object{
		kind:    kind,
		params:  make(param.Set, len(decls)),
		binders: make(map[string]binder, len(decls)),
	}

	wiring.Lock()
	defer wiring.Unlock()

	for _, d := range decls {
		if err := d.value.Validate(); err != nil {
			return nil, o.paramErr(d.name, err)
		}
		if d.check != nil {
			if err := d.check(d.value); err != nil {
				return nil, o.paramErr(d.name, err)
			}
		}
		o.names = append(o.names, d.name)
		o.params[d.name] = d.value
		if d.bind != nil {
			o.binders[d.name] = d.bind
		}
	}

	n := extra
	for _, v := range o.params {
		n = max(n, param.Len(v))
	}
	bindings, err := param.ResolveN(o.params, max(n, 1))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConstruction, kind, err)
	}

	voices := make([]voice.Voice, len(bindings))
	for i, b := range bindings {
		v, err := build(i, b)
		if err != nil {
			return nil, fmt.Errorf("%w: %s voice %d: %w", ErrConstruction, kind, i, err)
		}
		voices[i] = v
	}
	o.voices = voices

	glog.V(2).Infof("generator: %s built with %d voices", kind, len(voices))
	return o, nil
}

func (o *Object) paramErr(name string, err error) error {
	return &ParamError{Object: o.kind, Param: name, Err: err}
}

// set replaces parameter name and rebinds every voice in place. The
// object's voice count does not change: voice i reads element
// i mod Len(v). Nothing is mutated when an error is returned.
func (o *Object) set(name string, v param.Value) error {
	bind, ok := o.binders[name]
	if !ok {
		if _, declared := o.Param(name); declared {
			return o.paramErr(name, fmt.Errorf("%w: %s is fixed after construction", ErrUnsupportedUpdate, name))
		}
		return o.paramErr(name, fmt.Errorf("%w: unknown parameter %s", ErrUnsupportedUpdate, name))
	}
	if err := v.Validate(); err != nil {
		return o.paramErr(name, err)
	}

	wiring.Lock()
	defer wiring.Unlock()

	if err := param.CheckCycle(o, v); err != nil {
		return o.paramErr(name, fmt.Errorf("%w: %w", ErrConstruction, err))
	}

	resolved := param.Spread(v, len(o.voices))
	for i, vc := range o.voices {
		bind(vc, resolved[i])
	}

	o.mu.Lock()
	o.params[name] = v
	o.mu.Unlock()

	glog.V(2).Infof("generator: %s.%s = %v", o.kind, name, v)
	return nil
}

// Set replaces the parameter called name. Parameters that a generator
// does not expose as settable return ErrUnsupportedUpdate.
func (o *Object) Set(name string, v param.Value) error { return o.set(name, v) }

// SetMul replaces the multiplier applied to every voice's raw output.
func (o *Object) SetMul(v param.Value) error { return o.set("mul", v) }

// SetAdd replaces the offset added after the multiplier.
func (o *Object) SetAdd(v param.Value) error { return o.set("add", v) }

func (o *Object) Mul() param.Value { return o.value("mul") }
func (o *Object) Add() param.Value { return o.value("add") }

func (o *Object) value(name string) param.Value {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.params[name]
}

// Param returns the last value given for name, as it was given.
func (o *Object) Param(name string) (param.Value, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	v, ok := o.params[name]
	return v, ok
}

// Params returns a copy of every parameter.
func (o *Object) Params() param.Set {
	o.mu.Lock()
	defer o.mu.Unlock()
	return maps.Clone(o.params)
}

// Names lists the declared parameters in declaration order.
func (o *Object) Names() []string { return slices.Clone(o.names) }

// Settable reports whether name can be replaced after construction.
func (o *Object) Settable(name string) bool {
	_, ok := o.binders[name]
	return ok
}

func (o *Object) Kind() string { return o.kind }

// SignalID identifies the object in the signal graph, whichever
// generator type wraps it.
func (o *Object) SignalID() any { return o }

// FanOut is the number of voices, fixed at construction.
func (o *Object) FanOut() int {
	if o == nil {
		return 0
	}
	return len(o.voices)
}

// Voices returns the voices in their stable order.
func (o *Object) Voices() []voice.Voice { return slices.Clone(o.voices) }

// Output returns the last computed block of voice i.
func (o *Object) Output(i int) []float64 { return o.voices[i].Output() }

// Tap exposes voice i to parameters of other objects.
func (o *Object) Tap(i int) param.Tap { return tap{obj: o, v: o.voices[i]} }

// Inputs lists the signals this object's parameters refer to.
func (o *Object) Inputs() []param.Signal {
	o.mu.Lock()
	defer o.mu.Unlock()

	var out []param.Signal
	for _, name := range o.names {
		if v := o.params[name]; v.Kind() == param.KindSignal {
			out = append(out, v.Signal())
		}
	}
	return out
}

// Process computes the current block of every voice, once per block.
// Voices bound to other objects pull those objects first.
func (o *Object) Process(ctx *engine.Context) {
	b := ctx.Block() + 1
	if o.stamp.Swap(b) == b {
		return
	}
	for _, v := range o.voices {
		v.Process(ctx)
	}
}

func (o *Object) String() string {
	return fmt.Sprintf("%s(%d voices)", o.kind, len(o.voices))
}

type tap struct {
	obj *Object
	v   voice.Voice
}

func (t tap) Pull(ctx *engine.Context) { t.obj.Process(ctx) }
func (t tap) Samples() []float64       { return t.v.Output() }
