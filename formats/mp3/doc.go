// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams using github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces 16-bit stereo, so every Source returned by
// Decoder reports two channels. Use audio.NewMonoMixer to fold it down.
package mp3
