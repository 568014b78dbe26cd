// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts go-audio integer decoders to audio.Source.
package pcm

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audgen/utils"
)

// Reader is the subset of the go-audio wav and aiff decoders used here.
type Reader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source reads integer PCM from a go-audio decoder and scales it to
// float32 in [-1, 1).
type Source struct {
	dec      Reader
	rate     int
	channels int
	bitDepth int
	buf      *goaudio.IntBuffer
}

// DefaultBufSize is the preferred read size in samples.
const DefaultBufSize = 4096

// NewSource wraps dec. bitDepth is the depth of the stored samples.
func NewSource(dec Reader, bitDepth int) (*Source, error) {
	f := dec.Format()
	if f == nil || f.NumChannels <= 0 || f.SampleRate <= 0 {
		return nil, fmt.Errorf("pcm: invalid format %+v", f)
	}
	return &Source{
		dec:      dec,
		rate:     f.SampleRate,
		channels: f.NumChannels,
		bitDepth: bitDepth,
		buf: &goaudio.IntBuffer{
			Data:           make([]int, DefaultBufSize),
			Format:         f,
			SourceBitDepth: bitDepth,
		},
	}, nil
}

func (s *Source) SampleRate() int { return s.rate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BitDepth() int   { return s.bitDepth }
func (s *Source) BufSize() int    { return cap(s.buf.Data) }

// Close is a no-op; the caller owns the underlying reader.
func (s *Source) Close() error { return nil }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if cap(s.buf.Data) < len(dst) {
		s.buf.Data = make([]int, len(dst))
	}
	s.buf.Data = s.buf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.buf)
	if n == 0 {
		if err != nil && err != io.EOF {
			return 0, err
		}
		return 0, io.EOF
	}

	for i, v := range s.buf.Data[:n] {
		dst[i] = utils.IntToFloat32(v, s.bitDepth)
	}

	// go-audio reports a short read without an error at the end of data.
	if n < len(dst) && err == nil {
		return n, io.EOF
	}
	return n, err
}

// Seekable returns r as an io.ReadSeeker, buffering it in memory when it
// cannot seek. go-audio decoders need to seek between chunks.
func Seekable(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}
