// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audgen/audio"
	"github.com/ik5/audgen/utils"
)

// ErrInvalidEncoderFormat is returned for a non-positive rate or channel count.
var ErrInvalidEncoderFormat = errors.New("invalid WAV encoder format")

// Encoder writes 16-bit PCM WAV. Headers are patched on Close, so the
// destination must be seekable.
type Encoder struct {
	enc      *gowav.Encoder
	channels int
	buf      *goaudio.IntBuffer
}

func NewEncoder(w io.WriteSeeker, sampleRate, channels int) (*Encoder, error) {
	if sampleRate <= 0 || channels <= 0 {
		return nil, fmt.Errorf("%w: %dHz, %d channels", ErrInvalidEncoderFormat, sampleRate, channels)
	}
	return &Encoder{
		enc:      gowav.NewEncoder(w, sampleRate, 16, channels, formatPCM),
		channels: channels,
		buf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
			SourceBitDepth: 16,
		},
	}, nil
}

// WriteFloats writes interleaved samples in [-1, 1], clamping the rest.
func (e *Encoder) WriteFloats(samples []float32) error {
	e.buf.Data = e.buf.Data[:0]
	for _, s := range samples {
		e.buf.Data = append(e.buf.Data, int(utils.Float32ToInt16(s)))
	}
	return e.write()
}

// WriteInt16 writes interleaved 16-bit samples.
func (e *Encoder) WriteInt16(samples []int16) error {
	e.buf.Data = e.buf.Data[:0]
	for _, s := range samples {
		e.buf.Data = append(e.buf.Data, int(s))
	}
	return e.write()
}

func (e *Encoder) write() error {
	if len(e.buf.Data) == 0 {
		return nil
	}
	if err := e.enc.Write(e.buf); err != nil {
		return fmt.Errorf("writing wav samples: %w", err)
	}
	return nil
}

// Close finishes the file. It does not close the destination.
func (e *Encoder) Close() error {
	if err := e.enc.Close(); err != nil {
		return fmt.Errorf("finishing wav: %w", err)
	}
	return nil
}

// WriteWAV16 writes mono 16-bit PCM samples at sampleRate.
func WriteWAV16(w io.WriteSeeker, sampleRate int, samples []int16) error {
	enc, err := NewEncoder(w, sampleRate, 1)
	if err != nil {
		return err
	}
	if err := enc.WriteInt16(samples); err != nil {
		return err
	}
	return enc.Close()
}

// Encode copies frames frames of src into w. It stops early when src
// ends and returns the number of frames written.
func Encode(w io.WriteSeeker, src audio.Source, frames int) (int, error) {
	enc, err := NewEncoder(w, src.SampleRate(), src.Channels())
	if err != nil {
		return 0, err
	}

	ch := src.Channels()
	size := max(src.BufSize()/ch, 1) * ch
	buf := make([]float32, size)

	written := 0
	for written < frames {
		want := min(frames-written, size/ch) * ch
		n, rerr := src.ReadSamples(buf[:want])
		n -= n % ch
		if err := enc.WriteFloats(buf[:n]); err != nil {
			return written, err
		}
		written += n / ch
		if rerr != nil {
			if errors.Is(rerr, io.EOF) {
				break
			}
			return written, rerr
		}
		if n == 0 {
			break
		}
	}
	return written, enc.Close()
}
