// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides synthetic audio.Source implementations for tests.
package audiotest

import (
	"io"
	"math"
)

// Source generates frames from a function of frame index and channel.
// It satisfies audio.Source without importing it.
type Source struct {
	Rate  int
	Chans int
	// Frames is the stream length; negative means endless.
	Frames int
	// MaxRead caps the samples returned per call, to exercise short reads.
	MaxRead int
	// Err, when set, is returned once the stream ends instead of io.EOF.
	Err error

	wave   func(frame, ch int) float32
	pos    int
	closed int
}

// NewSource returns a finite stream of frames frames.
func NewSource(rate, chans, frames int, wave func(frame, ch int) float32) *Source {
	return &Source{Rate: rate, Chans: chans, Frames: frames, wave: wave}
}

// Constant returns a stream holding v on every channel.
func Constant(rate, chans, frames int, v float32) *Source {
	return NewSource(rate, chans, frames, func(int, int) float32 { return v })
}

// Ramp returns a stream whose value on channel ch at frame f is
// (f+1)*step*(ch+1), handy for checking channel order.
func Ramp(rate, chans, frames int, step float32) *Source {
	return NewSource(rate, chans, frames, func(f, ch int) float32 {
		return float32(f+1) * step * float32(ch+1)
	})
}

// Sine returns a stream of a sine at freq Hz on every channel.
func Sine(rate, chans, frames int, freq float64) *Source {
	return NewSource(rate, chans, frames, func(f, _ int) float32 {
		return float32(math.Sin(2 * math.Pi * freq * float64(f) / float64(rate)))
	})
}

func (s *Source) SampleRate() int { return s.Rate }
func (s *Source) Channels() int   { return s.Chans }
func (s *Source) BufSize() int    { return 1024 * s.Chans }

func (s *Source) Close() error {
	s.closed++
	return nil
}

// Closed reports how many times Close was called.
func (s *Source) Closed() int { return s.closed }

// Pos is the number of frames read so far.
func (s *Source) Pos() int { return s.pos }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.Frames >= 0 && s.pos >= s.Frames {
		return 0, s.end()
	}

	limit := len(dst)
	if s.MaxRead > 0 {
		limit = min(limit, s.MaxRead)
	}
	frames := limit / s.Chans
	if s.Frames >= 0 {
		frames = min(frames, s.Frames-s.pos)
	}

	for f := range frames {
		for ch := range s.Chans {
			dst[f*s.Chans+ch] = s.wave(s.pos+f, ch)
		}
	}
	s.pos += frames

	if s.Frames >= 0 && s.pos >= s.Frames {
		return frames * s.Chans, s.end()
	}
	return frames * s.Chans, nil
}

func (s *Source) end() error {
	if s.Err != nil {
		return s.Err
	}
	return io.EOF
}
