// SPDX-License-Identifier: EPL-2.0

package table

import (
	"errors"
	"fmt"
	"io"

	"github.com/golang/glog"

	"github.com/ik5/audgen/audio"
)

// MaxLoadFrames caps FromSource when maxFrames is 0.
const MaxLoadFrames = 1 << 20

// FromSource reads up to maxFrames frames of src, averaged to mono, into
// a Table. The whole read is treated as one cycle. src is not closed.
func FromSource(src audio.Source, maxFrames int) (*Table, error) {
	if maxFrames <= 0 {
		maxFrames = MaxLoadFrames
	}

	mono := audio.NewMonoMixer(src)
	buf := make([]float32, max(src.BufSize()/max(src.Channels(), 1), 256))
	samples := make([]float64, 0, min(maxFrames, len(buf)))

	for len(samples) < maxFrames {
		want := min(len(buf), maxFrames-len(samples))
		n, err := mono.ReadSamples(buf[:want])
		for _, s := range buf[:n] {
			samples = append(samples, float64(s))
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("reading table source: %w", err)
		}
		if n == 0 {
			break
		}
	}

	return New(samples)
}

// Load decodes the file at path with reg and builds a Table from it.
func Load(reg *audio.Registry, path string, maxFrames int) (*Table, error) {
	src, err := reg.Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	t, err := FromSource(src, maxFrames)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	glog.V(1).Infof("table: loaded %s (%d samples)", path, t.Size())
	return t, nil
}
