// SPDX-License-Identifier: EPL-2.0

package generator

import (
	"errors"
	"fmt"
)

var (
	// ErrConstruction wraps every failure to build or rewire a generator.
	ErrConstruction = errors.New("generator construction failed")
	// ErrUnsupportedUpdate is returned for parameters that cannot be set
	// after construction, or that the generator does not declare.
	ErrUnsupportedUpdate = errors.New("unsupported parameter update")
)

// ParamError reports which parameter of which generator was rejected.
type ParamError struct {
	Object string
	Param  string
	Err    error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s.%s: %v", e.Object, e.Param, e.Err)
}

func (e *ParamError) Unwrap() error { return e.Err }
