// SPDX-License-Identifier: EPL-2.0

// Package audgen is a multichannel signal-object graph for Go.
//
// Generators are built from parameters that are numbers, lists of
// numbers or other generators. A generator runs one voice per element of
// its longest parameter and spreads shorter parameters over the voices
// by wrapping around:
//
//	ctx, _ := engine.NewContext(engine.DefaultConfig())
//	chord, _ := generator.NewSine(ctx, generator.SineConfig{
//	    Freq: param.Sequence(220, 277.18, 329.63),
//	    Mul:  param.Scalar(0.2),
//	})
//	chord.FanOut() // 3
//
// Parameters can be replaced at any time from a control goroutine while
// the graph is being processed. The number of voices never changes.
//
// # Packages
//
//   - param: parameter values and the fan-out resolver
//   - generator: Sine, Osc, Noise and Input
//   - voice: the per-voice kernels the generators drive
//   - engine: the processing context and the output server
//   - table: waveform tables for Osc
//   - audio: the Source interface, resampling and mixing
//   - formats/wav, formats/aiff, formats/mp3, formats/vorbis: decoders
//
// # Rendering
//
// engine.Server implements audio.Source, so a graph renders through the
// same pipeline used for decoded files:
//
//	srv := engine.NewServer(ctx)
//	srv.Out(chord, 0)
//	pcm, _ := audgen.RenderToMono16(srv, 8000, 8000, 4096)
//
// RenderWAV writes every output channel of the server to a WAV file.
//
// # Wavetables
//
// Osc reads single-cycle tables. Build them from harmonics, or from any
// file a registry can decode:
//
//	saw, _ := table.Saw(0, 32)
//	vox, _ := table.Load(audgen.NewRegistry(), "cycle.wav", 0)
package audgen
