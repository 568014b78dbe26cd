// SPDX-License-Identifier: EPL-2.0

package generator

import (
	"fmt"
	"slices"

	"github.com/ik5/audgen/engine"
	"github.com/ik5/audgen/param"
	"github.com/ik5/audgen/table"
	"github.com/ik5/audgen/voice"
)

// OscConfig holds the parameters of an Osc. Either Table or Tables must
// be given; Tables fans out like any other parameter and takes
// precedence over Table.
type OscConfig struct {
	Table  *table.Table
	Tables []*table.Table
	Interp table.Interp
	Freq   param.Value
	Phase  param.Value
	Mul    param.Value
	Add    param.Value
}

// Osc is a bank of table-lookup oscillators. The tables and the
// interpolation mode are fixed at construction.
type Osc struct {
	*Object
	tables []*table.Table
	interp table.Interp
	units  []*voice.Osc
}

// NewOsc builds an Osc whose fan-out is the longest of its parameters
// and its table list.
func NewOsc(ctx *engine.Context, cfg OscConfig) (*Osc, error) {
	tables := slices.Clone(cfg.Tables)
	if len(tables) == 0 {
		tables = []*table.Table{cfg.Table}
	}
	for i, t := range tables {
		if t == nil {
			return nil, &ParamError{Object: "Osc", Param: "table", Err: fmt.Errorf("%w: index %d", voice.ErrNilTable, i)}
		}
	}
	if !cfg.Interp.Valid() {
		return nil, &ParamError{Object: "Osc", Param: "interp", Err: fmt.Errorf("%w: %d", voice.ErrUnknownInterp, cfg.Interp)}
	}

	o := &Osc{tables: tables, interp: cfg.Interp}
	decls := []decl{
		{name: "freq", value: cfg.Freq.Or(DefaultFreq), bind: bindOscFreq},
		{name: "phase", value: cfg.Phase.Or(DefaultPhase), bind: bindOscPhase},
		{name: "mul", value: cfg.Mul.Or(DefaultMul), bind: bindMul},
		{name: "add", value: cfg.Add.Or(DefaultAdd), bind: bindAdd},
	}
	obj, err := newObject(ctx, "Osc", decls, len(tables), func(i int, b param.Binding) (voice.Voice, error) {
		u, err := voice.NewOsc(ctx, voice.OscParams{
			Table:  tables[i%len(tables)],
			Interp: cfg.Interp,
			Freq:   b["freq"],
			Phase:  b["phase"],
			Post:   voice.Post{Mul: b["mul"], Add: b["add"]},
		})
		if err != nil {
			return nil, err
		}
		o.units = append(o.units, u)
		return u, nil
	})
	if err != nil {
		return nil, err
	}
	o.Object = obj
	return o, nil
}

func bindOscFreq(v voice.Voice, r param.Resolved)  { v.(*voice.Osc).SetFreq(r) }
func bindOscPhase(v voice.Voice, r param.Resolved) { v.(*voice.Osc).SetPhase(r) }

func (o *Osc) SetFreq(v param.Value) error  { return o.set("freq", v) }
func (o *Osc) SetPhase(v param.Value) error { return o.set("phase", v) }
func (o *Osc) Freq() param.Value            { return o.value("freq") }
func (o *Osc) Phase() param.Value           { return o.value("phase") }

// Table returns the first table, as given at construction.
func (o *Osc) Table() *table.Table { return o.tables[0] }

// Tables returns every table, as given at construction.
func (o *Osc) Tables() []*table.Table { return slices.Clone(o.tables) }

func (o *Osc) Interp() table.Interp { return o.interp }

func (o *Osc) Unit(i int) *voice.Osc { return o.units[i] }
