// SPDX-License-Identifier: EPL-2.0

package audgen

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audgen/audio"
	"github.com/ik5/audgen/engine"
	"github.com/ik5/audgen/formats/aiff"
	"github.com/ik5/audgen/formats/mp3"
	"github.com/ik5/audgen/formats/vorbis"
	"github.com/ik5/audgen/formats/wav"
	"github.com/ik5/audgen/utils"
)

// ErrInvalidFrames is returned for a negative frame count or a
// non-positive rate or buffer size.
var ErrInvalidFrames = errors.New("invalid render length")

// NewRegistry returns a registry with every bundled decoder registered
// under its usual file extensions.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	return reg
}

// RenderToMono16 pulls frames frames from srv at targetRate, averaged to
// mono, as 16-bit PCM. The graph runs at the context's own rate; the
// output is resampled with cubic interpolation when the rates differ.
//
// bufferSize is the read size used while draining the pipeline.
func RenderToMono16(srv *engine.Server, targetRate, frames, bufferSize int) ([]int16, error) {
	if frames < 0 || targetRate <= 0 || bufferSize <= 0 {
		return nil, fmt.Errorf("%w: %d frames at %dHz, buffer %d", ErrInvalidFrames, frames, targetRate, bufferSize)
	}

	var src audio.Source = srv
	if srv.SampleRate() != targetRate {
		src = audio.NewResampler(srv, targetRate)
	}
	mono := audio.NewMonoMixer(src)

	pcm16 := make([]int16, 0, frames)
	buf := make([]float32, bufferSize)
	for len(pcm16) < frames {
		want := min(bufferSize, frames-len(pcm16))
		n, err := mono.ReadSamples(buf[:want])
		for _, s := range buf[:n] {
			pcm16 = append(pcm16, utils.Float32ToInt16(s))
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return pcm16, fmt.Errorf("render: %w", err)
		}
	}
	return pcm16, nil
}

// RenderWAV writes frames frames of srv, with every output channel, as
// 16-bit PCM WAV at the context's sample rate.
func RenderWAV(w io.WriteSeeker, srv *engine.Server, frames int) error {
	if frames < 0 {
		return fmt.Errorf("%w: %d frames", ErrInvalidFrames, frames)
	}
	if _, err := wav.Encode(w, srv, frames); err != nil {
		return fmt.Errorf("render wav: %w", err)
	}
	return nil
}
