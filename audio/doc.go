// SPDX-License-Identifier: EPL-2.0

// Package audio provides the stream primitives shared by decoders, the
// engine's input bus and rendering.
//
// # Source
//
// Source is an interleaved float32 stream in [-1, 1]:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadSamples returns the number of float32 values written, not frames,
// and io.EOF once the stream is drained. An engine server is a Source
// that never ends.
//
// # Resampling and mixing
//
// Resampler converts between sample rates with cubic interpolation and
// keeps the channel count. MonoMixer averages each frame to one channel:
//
//	mono := audio.NewMonoMixer(audio.NewResampler(src, 16000))
//	buf := make([]float32, 4096)
//	n, err := mono.ReadSamples(buf)
//
// # Registry
//
// A Registry maps file extensions to decoders:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	src, err := reg.Open("loop.wav")
//
// Lookup returns ErrUnknownFormat for an extension nobody registered.
//
// # Reading until the end
//
//	for {
//	    n, err := src.ReadSamples(buf)
//	    consume(buf[:n])
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
