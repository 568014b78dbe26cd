// SPDX-License-Identifier: EPL-2.0

package voice

import (
	"fmt"

	"github.com/ik5/audgen/param"
)

var (
	ErrNilContext     = fmt.Errorf("%w: nil engine context", param.ErrInvalidParameter)
	ErrNilTable       = fmt.Errorf("%w: nil waveform table", param.ErrInvalidParameter)
	ErrInvalidChannel = fmt.Errorf("%w: input channel must be a non-negative integer", param.ErrInvalidParameter)
	ErrUnknownInterp  = fmt.Errorf("%w: unknown interpolation mode", param.ErrInvalidParameter)
)
