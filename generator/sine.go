// SPDX-License-Identifier: EPL-2.0

package generator

import (
	"github.com/ik5/audgen/engine"
	"github.com/ik5/audgen/param"
	"github.com/ik5/audgen/voice"
)

// Default parameter values, used for any field left unset.
var (
	DefaultFreq  = param.Scalar(1000)
	DefaultPhase = param.Scalar(0)
	DefaultMul   = param.Scalar(1)
	DefaultAdd   = param.Scalar(0)
)

// SineConfig holds the parameters of a Sine. Zero fields take defaults.
type SineConfig struct {
	Freq  param.Value
	Phase param.Value
	Mul   param.Value
	Add   param.Value
}

// Sine is a bank of sine oscillators, one per voice.
type Sine struct {
	*Object
	units []*voice.Sine
}

// NewSine builds a Sine whose fan-out is the longest of its parameters.
func NewSine(ctx *engine.Context, cfg SineConfig) (*Sine, error) {
	s := &Sine{}
	decls := []decl{
		{name: "freq", value: cfg.Freq.Or(DefaultFreq), bind: bindSineFreq},
		{name: "phase", value: cfg.Phase.Or(DefaultPhase), bind: bindSinePhase},
		{name: "mul", value: cfg.Mul.Or(DefaultMul), bind: bindMul},
		{name: "add", value: cfg.Add.Or(DefaultAdd), bind: bindAdd},
	}
	obj, err := newObject(ctx, "Sine", decls, 0, func(_ int, b param.Binding) (voice.Voice, error) {
		u, err := voice.NewSine(ctx, voice.SineParams{
			Freq:  b["freq"],
			Phase: b["phase"],
			Post:  voice.Post{Mul: b["mul"], Add: b["add"]},
		})
		if err != nil {
			return nil, err
		}
		s.units = append(s.units, u)
		return u, nil
	})
	if err != nil {
		return nil, err
	}
	s.Object = obj
	return s, nil
}

func bindSineFreq(v voice.Voice, r param.Resolved)  { v.(*voice.Sine).SetFreq(r) }
func bindSinePhase(v voice.Voice, r param.Resolved) { v.(*voice.Sine).SetPhase(r) }

func (s *Sine) SetFreq(v param.Value) error  { return s.set("freq", v) }
func (s *Sine) SetPhase(v param.Value) error { return s.set("phase", v) }
func (s *Sine) Freq() param.Value            { return s.value("freq") }
func (s *Sine) Phase() param.Value           { return s.value("phase") }

// Unit returns voice i.
func (s *Sine) Unit(i int) *voice.Sine { return s.units[i] }
