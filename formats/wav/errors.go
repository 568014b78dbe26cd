// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	// ErrUnsupportedBitDepth is returned for anything but 16, 24 or 32-bit integer PCM.
	ErrUnsupportedBitDepth = errors.New("unsupported WAV bit depth")
	ErrNotPCM              = errors.New("only integer PCM WAV is supported")
)
