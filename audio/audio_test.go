// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ik5/audgen/audio"
	"github.com/ik5/audgen/internal/audiotest"
)

// rawDecoder treats every byte as one 8-bit mono sample.
type rawDecoder struct{}

func (rawDecoder) Decode(r io.Reader) (audio.Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("empty")
	}
	return audiotest.NewSource(8000, 1, len(data), func(f, _ int) float32 {
		return float32(int8(data[f])) / 128
	}), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	reg := audio.NewRegistry()
	reg.Register("RAW", rawDecoder{})
	reg.Register("pcm", rawDecoder{})

	if _, ok := reg.Get("raw"); !ok {
		t.Error("Get(raw) ok = false; keys should be case-insensitive")
	}
	if _, ok := reg.Get("mp3"); ok {
		t.Error("Get(mp3) ok = true for an unregistered format")
	}
	if got := reg.Formats(); !reflect.DeepEqual(got, []string{"pcm", "raw"}) {
		t.Errorf("Formats() = %v, want [pcm raw]", got)
	}
}

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	reg := audio.NewRegistry()
	reg.Register("raw", rawDecoder{})

	if _, err := reg.Lookup("/tmp/a.RAW"); err != nil {
		t.Errorf("Lookup(a.RAW) error = %v", err)
	}
	for _, path := range []string{"noext", "a.flac"} {
		if _, err := reg.Lookup(path); !errors.Is(err, audio.ErrUnknownFormat) {
			t.Errorf("Lookup(%q) error = %v, want ErrUnknownFormat", path, err)
		}
	}
}

func TestRegistry_Open(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	reg := audio.NewRegistry()
	reg.Register("raw", rawDecoder{})

	path := filepath.Join(dir, "tone.raw")
	if err := os.WriteFile(path, []byte{0, 64, 0, 192}, 0o600); err != nil {
		t.Fatal(err)
	}

	src, err := reg.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	got := readAll(t, src, 8)
	if want := []float32{0, 0.5, 0, -0.5}; !reflect.DeepEqual(got, want) {
		t.Errorf("samples = %v, want %v", got, want)
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}

	if _, err := reg.Open(filepath.Join(dir, "missing.raw")); err == nil {
		t.Error("Open(missing) error = nil")
	}

	empty := filepath.Join(dir, "empty.raw")
	if err := os.WriteFile(empty, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := reg.Open(empty); err == nil {
		t.Error("Open(empty) error = nil, want the decoder's error")
	}
}
