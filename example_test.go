// SPDX-License-Identifier: EPL-2.0

package audgen_test

import (
	"fmt"

	"github.com/ik5/audgen"
	"github.com/ik5/audgen/engine"
	"github.com/ik5/audgen/generator"
	"github.com/ik5/audgen/param"
)

func ExampleRenderToMono16() {
	ctx, _ := engine.NewContext(engine.DefaultConfig())
	defer ctx.Close()

	chord, _ := generator.NewSine(ctx, generator.SineConfig{
		Freq: param.Sequence(220, 277.18, 329.63),
		Mul:  param.Scalar(0.2),
	})

	srv := engine.NewServer(ctx)
	_ = srv.Out(chord, 0)

	pcm, err := audgen.RenderToMono16(srv, 8000, 8000, 4096)
	fmt.Println(chord.FanOut(), len(pcm), err)
	// Output: 3 8000 <nil>
}
