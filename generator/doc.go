// SPDX-License-Identifier: EPL-2.0

// Package generator provides the user-facing signal generators: Sine,
// Osc, Noise and Input.
//
// # Fan-out
//
// Every parameter of a generator is a param.Value: a scalar, a sequence
// or a reference to another generator. A generator runs one voice per
// element of its longest parameter, and voice i reads element i mod n
// of a parameter of length n:
//
//	s, _ := generator.NewSine(ctx, generator.SineConfig{
//	    Freq: param.Sequence(220, 330, 440),
//	    Mul:  param.Scalar(0.2),
//	})
//	s.FanOut() // 3
//
// The voice count is fixed when the generator is built. Setters rebind
// the existing voices and never add or remove any:
//
//	s.SetFreq(param.Sequence(100, 200)) // voices read 100, 200, 100
//
// # Modulation
//
// A parameter bound to another generator reads that generator's output
// sample by sample. The referenced generator is processed on demand,
// once per block, before the voices reading it:
//
//	lfo, _ := generator.NewSine(ctx, generator.SineConfig{
//	    Freq: param.Scalar(2),
//	    Mul:  param.Scalar(20),
//	    Add:  param.Scalar(440),
//	})
//	carrier, _ := generator.NewSine(ctx, generator.SineConfig{Freq: param.Ref(lfo)})
//
// Bindings that would make a generator depend on itself are rejected
// with ErrConstruction wrapping param.ErrCyclicGraph.
//
// # Concurrency
//
// Setters may be called from any goroutine while the engine processes
// blocks. Each voice sees either the old or the new value for a whole
// block, never a mix of both.
package generator
