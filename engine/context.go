// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/golang/glog"

	"github.com/ik5/audgen/audio"
)

// Context is the processing state shared by every voice built on it:
// the sample rate, the block size, the block counter and the external
// input bus. It replaces a process-wide server; create one with
// NewContext and release it with Close.
//
// Block, Clock, Input and Advance belong to the processing path. Close
// must not run concurrently with them. The remaining methods are safe to
// call from a control goroutine.
type Context struct {
	cfg Config

	block atomic.Uint64
	seeds atomic.Uint64

	mu      sync.Mutex // guards attaching and closing the input stream
	pending atomic.Pointer[inputSwap]
	retired atomic.Pointer[inputStream] // streams the processing path let go of
	inErr   atomic.Pointer[error]
	closed  atomic.Bool

	// processing path only
	input    *inputStream
	bus      [][]float64
	busBlock uint64
	busValid bool
}

type inputStream struct {
	src      audio.Source
	channels int
	buf      []float32
	eof      bool
	err      error // written once, before it is published through inErr
	next     *inputStream
}

// inputSwap carries a replacement stream to the processing path. A nil
// stream detaches the input.
type inputSwap struct {
	stream *inputStream
}

// NewContext validates cfg and allocates the input bus.
func NewContext(cfg Config) (*Context, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Context{cfg: cfg}
	c.bus = make([][]float64, cfg.InputChannels)
	for i := range c.bus {
		c.bus[i] = make([]float64, cfg.BlockSize)
	}

	glog.V(1).Infof("engine: context %.0fHz block=%d in=%d out=%d",
		cfg.SampleRate, cfg.BlockSize, cfg.InputChannels, cfg.OutputChannels)
	return c, nil
}

func (c *Context) Config() Config      { return c.cfg }
func (c *Context) SampleRate() float64 { return c.cfg.SampleRate }
func (c *Context) BlockSize() int      { return c.cfg.BlockSize }
func (c *Context) InputChannels() int  { return c.cfg.InputChannels }
func (c *Context) OutputChannels() int { return c.cfg.OutputChannels }
func (c *Context) Seed() int64         { return c.cfg.Seed }
func (c *Context) Closed() bool        { return c.closed.Load() }

// Block is the index of the block currently being computed.
// Objects use it to process each block once.
func (c *Context) Block() uint64 { return c.block.Load() }

// Clock is the index of the first frame of the current block.
func (c *Context) Clock() uint64 { return c.block.Load() * uint64(c.cfg.BlockSize) }

// Advance moves to the next block. Only the driver calls it, after every
// node has been processed for the current block.
func (c *Context) Advance() { c.block.Add(1) }

// NextSeed returns a fresh noise seed derived from Config.Seed.
// Seeds depend only on Config.Seed and the order of calls.
func (c *Context) NextSeed() uint64 {
	n := c.seeds.Add(1)
	return splitmix64(uint64(c.cfg.Seed) + n*0x9e3779b97f4a7c15)
}

// SetInput attaches src as the external input stream, replacing any
// previous one. src is resampled when its rate differs from the
// context's. A nil src detaches the input.
//
// The processing path picks up the new stream at its next block. The
// previous stream is closed by a later SetInput or by Close, once the
// processing path has stopped reading it.
func (c *Context) SetInput(src audio.Source) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed.Load() {
		return ErrClosed
	}

	var next *inputStream
	if src != nil {
		ch := src.Channels()
		if ch <= 0 {
			return fmt.Errorf("%w: input reports %d channels", ErrInvalidChannels, ch)
		}
		if src.SampleRate() != int(c.cfg.SampleRate) {
			glog.V(1).Infof("engine: resampling input %dHz -> %.0fHz", src.SampleRate(), c.cfg.SampleRate)
			src = audio.NewResampler(src, int(c.cfg.SampleRate))
		}
		next = &inputStream{
			src:      src,
			channels: ch,
			buf:      make([]float32, c.cfg.BlockSize*ch),
		}
	}

	c.inErr.Store(nil)
	if prev := c.pending.Swap(&inputSwap{stream: next}); prev != nil && prev.stream != nil {
		// never reached the processing path
		c.closeStream(prev.stream)
	}
	c.closeRetired()
	return nil
}

func (c *Context) closeStream(in *inputStream) {
	if err := in.src.Close(); err != nil {
		glog.Warningf("engine: closing previous input: %v", err)
	}
}

// closeRetired closes every stream the processing path has let go of.
func (c *Context) closeRetired() {
	for in := c.retired.Swap(nil); in != nil; {
		next := in.next
		c.closeStream(in)
		in = next
	}
}

// retire hands in back to the control side without allocating.
func (c *Context) retire(in *inputStream) {
	for {
		head := c.retired.Load()
		in.next = head
		if c.retired.CompareAndSwap(head, in) {
			return
		}
	}
}

// InputErr returns the last error the input stream reported, if any.
func (c *Context) InputErr() error {
	if p := c.inErr.Load(); p != nil {
		return *p
	}
	return nil
}

// Input returns channel ch of the input bus for the current block,
// or nil when ch is outside the bus. The bus is filled from the input
// stream on first access in each block, by calling its ReadSamples
// synchronously: the bus is only as real-time safe as that source.
func (c *Context) Input(ch int) []float64 {
	if ch < 0 || ch >= len(c.bus) {
		return nil
	}
	if b := c.block.Load(); !c.busValid || c.busBlock != b {
		c.fillBus()
		c.busBlock = b
		c.busValid = true
	}
	return c.bus[ch]
}

func (c *Context) fillBus() {
	for _, ch := range c.bus {
		clear(ch)
	}

	if sw := c.pending.Swap(nil); sw != nil {
		if c.input != nil {
			c.retire(c.input)
		}
		c.input = sw.stream
	}

	in := c.input
	if in == nil || in.eof {
		return
	}

	want := len(in.buf)
	got := 0
	for got < want {
		n, err := in.src.ReadSamples(in.buf[got:want])
		got += n
		if err != nil {
			in.eof = true
			if !errors.Is(err, io.EOF) {
				in.err = err
				c.inErr.Store(&in.err)
			}
			break
		}
		if n == 0 {
			break
		}
	}

	frames := got / in.channels
	width := min(in.channels, len(c.bus))
	for f := range frames {
		base := f * in.channels
		for ch := range width {
			c.bus[ch][f] = float64(in.buf[base+ch])
		}
	}
}

// Close detaches and closes every input stream. Call it once the driver
// has stopped; voices built on a closed context keep working but read
// silence.
func (c *Context) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed.Swap(true) {
		return nil
	}
	c.closeRetired()

	var errs []error
	if sw := c.pending.Swap(nil); sw != nil && sw.stream != nil {
		errs = append(errs, sw.stream.src.Close())
	}
	if c.input != nil {
		errs = append(errs, c.input.src.Close())
		c.input = nil
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("close input: %w", err)
	}
	glog.V(1).Info("engine: context closed")
	return nil
}

func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
