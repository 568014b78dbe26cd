// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audgen/audio"
	"github.com/ik5/audgen/utils"
)

// go-mp3 always decodes to 16-bit little-endian stereo.
const channels = 2

type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec   mp3Reader
	rate  int
	buf   []byte
	carry []byte // bytes of a sample split across reads
}

func (s *source) SampleRate() int { return s.rate }
func (s *source) Channels() int   { return channels }
func (s *source) BufSize() int    { return cap(s.buf) / 2 }

// Close is a no-op; the caller owns the reader.
func (s *source) Close() error { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * 2
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	k := copy(s.buf, s.carry)
	s.carry = s.carry[:0]
	n, err := s.dec.Read(s.buf[k:])
	n += k

	samples := n / 2
	for i := range samples {
		dst[i] = utils.IntToFloat32(int(int16(binary.LittleEndian.Uint16(s.buf[2*i:]))), 16)
	}
	if n%2 == 1 {
		s.carry = append(s.carry, s.buf[n-1])
	}

	if samples == 0 && err == nil {
		return 0, io.EOF
	}
	return samples, err
}

// Decoder reads MPEG-1/2 layer III streams.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3, err)
	}

	src := &source{
		dec:  dec,
		rate: dec.SampleRate(),
		buf:  make([]byte, 8192),
	}
	return src, nil
}
