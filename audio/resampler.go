// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audgen/utils"
)

// Resampler streams src at another sample rate using cubic interpolation.
// It works on interleaved frames and keeps the channel count. An engine
// context wraps its external input in a Resampler when rates differ.
type Resampler struct {
	src      Source
	rate     int
	channels int
	step     float64 // source frames per output frame

	// hist[1] is the frame at the integer part of the read position;
	// hist[0] precedes it and hist[2], hist[3] follow it.
	hist [4][]float32
	real [4]bool
	pos  float64

	in      []float32
	inPos   int
	inLen   int
	eof     bool
	started bool
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	r := &Resampler{
		src:      src,
		rate:     dstRate,
		channels: channels,
		step:     float64(src.SampleRate()) / float64(dstRate),
		in:       make([]float32, max(src.BufSize(), 1024)/channels*channels),
	}
	for i := range r.hist {
		r.hist[i] = make([]float32, channels)
	}
	return r
}

func (r *Resampler) SampleRate() int { return r.rate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// frame copies the next source frame into dst. ok is false once the
// source is drained.
func (r *Resampler) frame(dst []float32) (ok bool, err error) {
	for tries := 0; r.inPos >= r.inLen; tries++ {
		if r.eof || tries == 3 {
			return false, nil
		}
		n, err := r.src.ReadSamples(r.in)
		r.inLen = n - n%r.channels
		r.inPos = 0
		if errors.Is(err, io.EOF) {
			r.eof = true
		} else if err != nil {
			return false, fmt.Errorf("%w", err)
		}
	}
	copy(dst, r.in[r.inPos:r.inPos+r.channels])
	r.inPos += r.channels
	return true, nil
}

func (r *Resampler) prime() error {
	r.started = true

	ok, err := r.frame(r.hist[1])
	if err != nil || !ok {
		return err
	}
	r.real[1] = true
	copy(r.hist[0], r.hist[1])
	r.real[0] = true

	for i := 2; i < 4; i++ {
		if r.real[i], err = r.frame(r.hist[i]); err != nil {
			return err
		}
		if !r.real[i] {
			copy(r.hist[i], r.hist[i-1])
		}
	}
	return nil
}

func (r *Resampler) shift() error {
	first := r.hist[0]
	copy(r.hist[:], r.hist[1:])
	copy(r.real[:], r.real[1:])
	r.hist[3] = first

	ok, err := r.frame(r.hist[3])
	if err != nil {
		return err
	}
	r.real[3] = ok
	if !ok {
		copy(r.hist[3], r.hist[2])
	}
	return nil
}

// ReadSamples fills dst with frames at the target rate.
// len(dst) must be a multiple of Channels().
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if !r.started {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	n := 0
	for n < frames {
		for r.pos >= 1 {
			r.pos--
			if err := r.shift(); err != nil {
				return n * r.channels, err
			}
		}
		if !r.real[1] {
			return n * r.channels, io.EOF
		}

		x := float32(r.pos)
		out := dst[n*r.channels : (n+1)*r.channels]
		for c := range out {
			out[c] = utils.CubicInterpolate(r.hist[0][c], r.hist[1][c], r.hist[2][c], r.hist[3][c], x)
		}
		n++
		r.pos += r.step
	}
	return n * r.channels, nil
}
