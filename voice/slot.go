// SPDX-License-Identifier: EPL-2.0

package voice

import (
	"sync/atomic"

	"github.com/ik5/audgen/engine"
	"github.com/ik5/audgen/param"
)

// Slot holds the binding of one parameter of one voice. Store replaces it
// atomically from the control path; the processing path loads it once
// per block, so a block never mixes an old and a new binding.
type Slot struct {
	p atomic.Pointer[param.Resolved]
}

func newSlot(r param.Resolved) *Slot {
	s := &Slot{}
	s.Store(r)
	return s
}

// Store publishes r as the new binding.
func (s *Slot) Store(r param.Resolved) { s.p.Store(&r) }

// Load returns the current binding.
func (s *Slot) Load() param.Resolved {
	if p := s.p.Load(); p != nil {
		return *p
	}
	return param.Resolved{}
}

// pull loads the binding for this block and, when it follows another
// voice, makes sure that voice is up to date.
func (s *Slot) pull(ctx *engine.Context) *param.Resolved {
	p := s.p.Load()
	if p.Tap != nil {
		p.Tap.Pull(ctx)
	}
	return p
}
