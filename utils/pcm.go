// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// PCMScale returns the quantization scale 2^(depth-1) that maps signed
// integer PCM at the given bit depth onto normalized floats. A full-scale
// negative sample is exactly -1.0; full-scale positive is (scale-1)/scale.
func PCMScale(depth int) float64 {
	return float64(int64(1) << (depth - 1))
}

// FloatToPCM quantizes a normalized sample to signed integer PCM at the
// given bit depth, rounding half away from zero and clamping to the
// representable range.
func FloatToPCM(sample float32, depth int) int {
	scale := PCMScale(depth)
	v := math.Round(float64(sample) * scale)

	if v > scale-1 {
		v = scale - 1
	} else if v < -scale {
		v = -scale
	}

	return int(v)
}

// PCMToFloat converts a signed integer PCM sample at the given bit depth
// back to a normalized float32.
func PCMToFloat(sample int, depth int) float32 {
	return float32(float64(sample) / PCMScale(depth))
}
