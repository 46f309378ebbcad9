// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// DBToLinear converts a level in decibels (relative to full scale) to a
// linear amplitude factor.
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts a linear amplitude to decibels relative to full
// scale. Silence (zero or negative amplitude) maps to -Inf.
func LinearToDB(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(v)
}
