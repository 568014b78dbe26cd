// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes integer PCM AIFF files using github.com/go-audio/aiff.
//
// The decoder shares its sample conversion with package wav and accepts
// 16, 24 and 32-bit data:
//
//	src, err := aiff.Decoder{}.Decode(file)
//
// Waveform tables can be loaded straight from AIFF files once the
// decoder is registered under "aif" or "aiff".
package aiff
