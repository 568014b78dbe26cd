// SPDX-License-Identifier: EPL-2.0

package generator

import (
	"github.com/ik5/audgen/engine"
	"github.com/ik5/audgen/param"
	"github.com/ik5/audgen/voice"
)

// NoiseConfig holds the parameters of a Noise.
type NoiseConfig struct {
	Mul param.Value
	Add param.Value
}

// Noise is a bank of white noise voices. Every voice has its own seed,
// drawn from the context, so voices are uncorrelated and a run is
// reproducible for a given Config.Seed.
type Noise struct {
	*Object
	units []*voice.Noise
}

// NewNoise builds one white-noise voice per element of the longest of
// mul and add. Each voice draws its own seed from ctx.
func NewNoise(ctx *engine.Context, cfg NoiseConfig) (*Noise, error) {
	n := &Noise{}
	decls := []decl{
		{name: "mul", value: cfg.Mul.Or(DefaultMul), bind: bindMul},
		{name: "add", value: cfg.Add.Or(DefaultAdd), bind: bindAdd},
	}
	obj, err := newObject(ctx, "Noise", decls, 0, func(_ int, b param.Binding) (voice.Voice, error) {
		u, err := voice.NewNoise(ctx, ctx.NextSeed(), voice.Post{Mul: b["mul"], Add: b["add"]})
		if err != nil {
			return nil, err
		}
		n.units = append(n.units, u)
		return u, nil
	})
	if err != nil {
		return nil, err
	}
	n.Object = obj
	return n, nil
}

func (n *Noise) Unit(i int) *voice.Noise { return n.units[i] }
