// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

// ErrNotMP3 wraps any failure to read the first MP3 frame.
var ErrNotMP3 = errors.New("not an MP3 stream")
