// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"bytes"
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// fakeReader hands out data in order, at most chunk values per call.
type fakeReader struct {
	format *goaudio.Format
	data   []int
	chunk  int
	err    error
}

func (f *fakeReader) Format() *goaudio.Format { return f.format }

func (f *fakeReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if len(f.data) == 0 {
		return 0, f.err
	}
	n := min(len(buf.Data), len(f.data))
	if f.chunk > 0 {
		n = min(n, f.chunk)
	}
	copy(buf.Data, f.data[:n])
	f.data = f.data[n:]
	return n, nil
}

func mono(rate int) *goaudio.Format {
	return &goaudio.Format{NumChannels: 1, SampleRate: rate}
}

func TestNewSource_InvalidFormat(t *testing.T) {
	t.Parallel()

	for _, f := range []*goaudio.Format{
		nil,
		{NumChannels: 0, SampleRate: 8000},
		{NumChannels: 1, SampleRate: 0},
	} {
		if _, err := NewSource(&fakeReader{format: f}, 16); err == nil {
			t.Errorf("NewSource(%+v) error = nil, want error", f)
		}
	}
}

func TestSource_Scaling(t *testing.T) {
	t.Parallel()

	tests := []struct {
		depth int
		data  []int
		want  []float32
	}{
		{16, []int{0, 16384, -32768}, []float32{0, 0.5, -1}},
		{24, []int{1 << 22, -(1 << 23)}, []float32{0.5, -1}},
		{32, []int{1 << 30}, []float32{0.5}},
	}

	for _, tt := range tests {
		src, err := NewSource(&fakeReader{format: mono(8000), data: tt.data}, tt.depth)
		if err != nil {
			t.Fatal(err)
		}
		if src.BitDepth() != tt.depth {
			t.Errorf("BitDepth() = %d, want %d", src.BitDepth(), tt.depth)
		}

		dst := make([]float32, len(tt.data))
		n, err := src.ReadSamples(dst)
		if err != nil || n != len(tt.data) {
			t.Fatalf("ReadSamples() = %d, %v", n, err)
		}
		for i := range tt.want {
			if dst[i] != tt.want[i] {
				t.Errorf("%d-bit sample %d = %v, want %v", tt.depth, i, dst[i], tt.want[i])
			}
		}
	}
}

func TestSource_ShortReadIsEOF(t *testing.T) {
	t.Parallel()

	src, err := NewSource(&fakeReader{format: mono(8000), data: []int{1, 2, 3}}, 16)
	if err != nil {
		t.Fatal(err)
	}

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)
	if n != 3 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() = %d, %v, want 3, EOF", n, err)
	}
	n, err = src.ReadSamples(dst)
	if n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() after end = %d, %v, want 0, EOF", n, err)
	}
}

func TestSource_ReaderError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	src, err := NewSource(&fakeReader{format: mono(8000), err: boom}, 16)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want %v", err, boom)
	}
}

func TestSource_GrowsBuffer(t *testing.T) {
	t.Parallel()

	data := make([]int, DefaultBufSize*2)
	src, err := NewSource(&fakeReader{format: mono(8000), data: data}, 16)
	if err != nil {
		t.Fatal(err)
	}
	n, err := src.ReadSamples(make([]float32, len(data)))
	if n != len(data) || err != nil {
		t.Errorf("ReadSamples() = %d, %v, want %d, nil", n, err, len(data))
	}
	if src.BufSize() < len(data) {
		t.Errorf("BufSize() = %d, want >= %d", src.BufSize(), len(data))
	}
}

func TestSource_EmptyDst(t *testing.T) {
	t.Parallel()

	src, _ := NewSource(&fakeReader{format: mono(8000)}, 16)
	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v, want 0, nil", n, err)
	}
}

func TestSeekable(t *testing.T) {
	t.Parallel()

	br := bytes.NewReader([]byte("abc"))
	rs, err := Seekable(br)
	if err != nil || rs != io.ReadSeeker(br) {
		t.Errorf("Seekable(ReadSeeker) = %v, %v, want the same reader", rs, err)
	}

	rs, err = Seekable(io.MultiReader(bytes.NewReader([]byte("xyz"))))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := rs.Seek(1, io.SeekStart); err != nil {
		t.Fatal(err)
	}
	rest, _ := io.ReadAll(rs)
	if string(rest) != "yz" {
		t.Errorf("after seek = %q, want %q", rest, "yz")
	}
}
