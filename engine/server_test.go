// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"errors"
	"sync"
	"testing"
)

// constNode emits a fixed value per voice and counts Process calls.
type constNode struct {
	outs      [][]float64
	processed int
}

func newConstNode(block int, values ...float64) *constNode {
	n := &constNode{}
	for _, v := range values {
		out := make([]float64, block)
		for j := range out {
			out[j] = v
		}
		n.outs = append(n.outs, out)
	}
	return n
}

func (n *constNode) Process(*Context)       { n.processed++ }
func (n *constNode) FanOut() int            { return len(n.outs) }
func (n *constNode) Output(i int) []float64 { return n.outs[i] }

func TestServer_OutSpreadsVoices(t *testing.T) {
	t.Parallel()

	ctx := newTestContext(t, 4, 0, 2)
	srv := NewServer(ctx)
	node := newConstNode(4, 1, 2, 4)

	if err := srv.Out(node, 1); err != nil {
		t.Fatalf("Out() error = %v", err)
	}
	srv.Tick()

	// voices 0 and 2 land on channel 1, voice 1 on channel 0
	if got := srv.Mix(0)[0]; got != 2 {
		t.Errorf("Mix(0) = %v, want 2", got)
	}
	if got := srv.Mix(1)[0]; got != 5 {
		t.Errorf("Mix(1) = %v, want 5", got)
	}
	if ctx.Block() != 1 {
		t.Errorf("Block() after Tick = %d, want 1", ctx.Block())
	}
}

func TestServer_Out(t *testing.T) {
	t.Parallel()

	srv := NewServer(newTestContext(t, 4, 0, 2))

	if err := srv.Out(nil, 0); !errors.Is(err, ErrNilNode) {
		t.Errorf("Out(nil) error = %v, want ErrNilNode", err)
	}
	if err := srv.Out(newConstNode(4, 1), -1); !errors.Is(err, ErrInvalidChannel) {
		t.Errorf("Out(-1) error = %v, want ErrInvalidChannel", err)
	}

	node := newConstNode(4, 1)
	if err := srv.Out(node, 0); err != nil {
		t.Fatal(err)
	}
	if err := srv.Out(node, 1); err != nil {
		t.Fatal(err)
	}
	if srv.Routed() != 1 {
		t.Fatalf("Routed() = %d after moving a node, want 1", srv.Routed())
	}

	srv.Tick()
	if srv.Mix(0)[0] != 0 || srv.Mix(1)[0] != 1 {
		t.Errorf("moved node mixed to [%v %v], want [0 1]", srv.Mix(0)[0], srv.Mix(1)[0])
	}
}

func TestServer_Stop(t *testing.T) {
	t.Parallel()

	srv := NewServer(newTestContext(t, 4, 0, 1))
	node := newConstNode(4, 1)
	if err := srv.Out(node, 0); err != nil {
		t.Fatal(err)
	}

	if !srv.Stop(node) {
		t.Error("Stop() = false for a routed node")
	}
	if srv.Stop(node) {
		t.Error("Stop() = true for a stopped node")
	}

	srv.Tick()
	if node.processed != 0 {
		t.Errorf("stopped node processed %d times", node.processed)
	}
	if srv.Mix(0)[0] != 0 {
		t.Errorf("Mix(0) = %v, want silence", srv.Mix(0)[0])
	}
}

func TestServer_ReadSamples(t *testing.T) {
	t.Parallel()

	ctx := newTestContext(t, 4, 0, 2)
	srv := NewServer(ctx)
	left := newConstNode(4, 0.25)
	right := newConstNode(4, -0.5)
	if err := srv.Out(left, 0); err != nil {
		t.Fatal(err)
	}
	if err := srv.Out(right, 1); err != nil {
		t.Fatal(err)
	}

	if srv.SampleRate() != 44100 || srv.Channels() != 2 {
		t.Fatalf("server format %dHz/%d, want 44100Hz/2", srv.SampleRate(), srv.Channels())
	}

	// 6 frames spans two blocks.
	buf := make([]float32, 12)
	n, err := srv.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 12 {
		t.Fatalf("ReadSamples() = %d, want 12", n)
	}
	for f := range 6 {
		if buf[2*f] != 0.25 || buf[2*f+1] != -0.5 {
			t.Errorf("frame %d = [%v %v], want [0.25 -0.5]", f, buf[2*f], buf[2*f+1])
		}
	}
	if left.processed != 2 {
		t.Errorf("node processed %d times for 6 frames of 4-frame blocks, want 2", left.processed)
	}

	if _, err := srv.ReadSamples(make([]float32, 3)); err == nil {
		t.Error("ReadSamples(odd length) error = nil, want error")
	}
}

func TestServer_Close(t *testing.T) {
	t.Parallel()

	srv := NewServer(newTestContext(t, 4, 0, 1))
	if err := srv.Out(newConstNode(4, 1), 0); err != nil {
		t.Fatal(err)
	}
	if err := srv.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if srv.Routed() != 0 {
		t.Errorf("Routed() after Close = %d, want 0", srv.Routed())
	}
}

func TestServer_TickDoesNotAllocate(t *testing.T) {
	srv := NewServer(newTestContext(t, 64, 0, 2))
	for range 4 {
		if err := srv.Out(newConstNode(64, 0.1, 0.2, 0.3), 0); err != nil {
			t.Fatal(err)
		}
	}

	allocs := testing.AllocsPerRun(100, srv.Tick)
	if allocs != 0 {
		t.Errorf("Tick() allocates %v times per block, want 0", allocs)
	}
}

func TestServer_RoutingWhileTicking(t *testing.T) {
	t.Parallel()

	srv := NewServer(newTestContext(t, 16, 0, 2))
	nodes := make([]*constNode, 8)
	for i := range nodes {
		nodes[i] = newConstNode(16, 0.1)
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := range 200 {
			n := nodes[i%len(nodes)]
			if i%3 == 0 {
				srv.Stop(n)
				continue
			}
			_ = srv.Out(n, i%2)
		}
	}()

	buf := make([]float32, 64)
	for range 200 {
		if _, err := srv.ReadSamples(buf); err != nil {
			t.Errorf("ReadSamples() error = %v", err)
		}
	}
	wg.Wait()
}
