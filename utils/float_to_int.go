// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 clamps x to [-1, 1] and scales it to 16-bit PCM.
func Float32ToInt16(x float32) int16 {
	return int16(Clamp(x, -1, 1) * 32767.0)
}

// IntToFloat32 maps a signed PCM integer of the given bit depth to [-1, 1).
func IntToFloat32(v, bitDepth int) float32 {
	return float32(v) / float32(int64(1)<<(bitDepth-1))
}

// Clamp limits x to [lo, hi].
func Clamp[T Float](x, lo, hi T) T {
	if x > hi {
		return hi
	}
	if x < lo {
		return lo
	}
	return x
}
