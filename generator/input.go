// SPDX-License-Identifier: EPL-2.0

package generator

import (
	"fmt"
	"math"

	"github.com/ik5/audgen/engine"
	"github.com/ik5/audgen/param"
	"github.com/ik5/audgen/voice"
)

// DefaultChnl is the input channel read when InputConfig.Chnl is unset.
var DefaultChnl = param.Scalar(0)

// MaxChnl is the highest channel number an Input accepts. Channels past
// the context's input bus read silence.
const MaxChnl = math.MaxInt32

// InputConfig holds the parameters of an Input. Chnl is a scalar or a
// sequence of non-negative integers and cannot be changed afterwards.
type InputConfig struct {
	Chnl param.Value
	Mul  param.Value
	Add  param.Value
}

// Input reads channels of the context's input bus, one per voice.
type Input struct {
	*Object
	units []*voice.Input
}

// NewInput builds one voice per channel in cfg.Chnl, spread against
// mul and add like any other parameter.
func NewInput(ctx *engine.Context, cfg InputConfig) (*Input, error) {
	in := &Input{}
	decls := []decl{
		{name: "chnl", value: cfg.Chnl.Or(DefaultChnl), check: checkChannels},
		{name: "mul", value: cfg.Mul.Or(DefaultMul), bind: bindMul},
		{name: "add", value: cfg.Add.Or(DefaultAdd), bind: bindAdd},
	}
	obj, err := newObject(ctx, "Input", decls, 0, func(_ int, b param.Binding) (voice.Voice, error) {
		u, err := voice.NewInput(ctx, int(b["chnl"].Value), voice.Post{Mul: b["mul"], Add: b["add"]})
		if err != nil {
			return nil, err
		}
		in.units = append(in.units, u)
		return u, nil
	})
	if err != nil {
		return nil, err
	}
	in.Object = obj
	return in, nil
}

func checkChannels(v param.Value) error {
	var chans []float64
	switch v.Kind() {
	case param.KindScalar:
		f, _ := v.Float()
		chans = []float64{f}
	case param.KindSequence:
		chans, _ = v.Floats()
	default:
		return fmt.Errorf("%w: got a %s", voice.ErrInvalidChannel, v.Kind())
	}
	for _, c := range chans {
		if c < 0 || c > MaxChnl || c != math.Trunc(c) {
			return fmt.Errorf("%w: %v", voice.ErrInvalidChannel, c)
		}
	}
	return nil
}

// Chnl returns the channel value given at construction.
func (in *Input) Chnl() param.Value { return in.value("chnl") }

// Channels returns the bus channel each voice reads.
func (in *Input) Channels() []int {
	out := make([]int, len(in.units))
	for i, u := range in.units {
		out[i] = u.Channel()
	}
	return out
}

func (in *Input) Unit(i int) *voice.Input { return in.units[i] }
