// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes PCM WAV files using github.com/go-audio/wav.
//
// # Decoding
//
// Decoder accepts 16, 24 and 32-bit integer PCM with any channel count
// and sample rate. Samples are scaled to float32 in [-1, 1):
//
//	src, err := wav.Decoder{}.Decode(file)
//	buf := make([]float32, src.BufSize())
//	n, err := src.ReadSamples(buf)
//
// Input that cannot seek is buffered in memory first.
//
// # Encoding
//
// Encoder writes 16-bit PCM. Encode drains a fixed number of frames from
// any audio.Source, which is how an engine server is rendered to disk:
//
//	f, _ := os.Create("out.wav")
//	defer f.Close()
//	frames, err := wav.Encode(f, srv, 44100)
//
// WriteWAV16 writes a mono buffer of int16 samples in one call.
//
// # Errors
//
//   - ErrNotWavFile: missing RIFF/WAVE header
//   - ErrNotPCM: compressed or floating-point data
//   - ErrUnsupportedBitDepth: depth other than 16, 24 or 32
//   - ErrUnsupportedWavLayout: header chunks that cannot be read
package wav
