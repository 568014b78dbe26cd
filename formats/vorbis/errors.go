// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

// ErrNotVorbis wraps any failure to read the Vorbis headers.
var ErrNotVorbis = errors.New("not an Ogg Vorbis stream")
