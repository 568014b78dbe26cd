// SPDX-License-Identifier: EPL-2.0

// Package engine holds the processing context and the output server.
//
// A Context carries the sample rate, the block size, the block counter
// and the external input bus. Every voice is built on one Context, and
// several contexts can run side by side in a process.
//
// A Server mixes routed nodes to the context's output channels and
// implements audio.Source, so a graph can be rendered with the same
// resampling and encoding tools used for decoded files:
//
//	ctx, _ := engine.NewContext(engine.DefaultConfig())
//	srv := engine.NewServer(ctx)
//	srv.Out(sine, 0)
//	buf := make([]float32, 1024)
//	srv.ReadSamples(buf)
package engine
