// SPDX-License-Identifier: EPL-2.0

package param

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is the class of every value that cannot be bound.
	ErrInvalidParameter = errors.New("invalid parameter")

	ErrEmptySequence = fmt.Errorf("%w: empty sequence", ErrInvalidParameter)
	ErrNilSignal     = fmt.Errorf("%w: nil signal reference", ErrInvalidParameter)
	ErrEmptySignal   = fmt.Errorf("%w: signal has no voices", ErrInvalidParameter)
	ErrNotFinite     = fmt.Errorf("%w: value is not finite", ErrInvalidParameter)
	ErrUnsetValue    = fmt.Errorf("%w: value is unset", ErrInvalidParameter)

	// ErrCyclicGraph is returned when binding a signal would make an object
	// depend on its own output.
	ErrCyclicGraph = errors.New("cyclic signal graph")
)
