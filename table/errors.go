// SPDX-License-Identifier: EPL-2.0

package table

import "errors"

var (
	ErrEmptyTable  = errors.New("table has no samples")
	ErrInvalidSize = errors.New("table size must be at least 4 samples")
	ErrSilentTable = errors.New("table is silent and cannot be normalised")
)
