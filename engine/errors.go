// SPDX-License-Identifier: EPL-2.0

package engine

import "errors"

var (
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrInvalidBlockSize  = errors.New("block size must be positive")
	ErrInvalidChannels   = errors.New("channel count must not be negative")
	ErrNoOutputs         = errors.New("at least one output channel is required")
	ErrInvalidChannel    = errors.New("output channel must not be negative")
	ErrNilNode           = errors.New("nil node")
	ErrClosed            = errors.New("context is closed")
)
