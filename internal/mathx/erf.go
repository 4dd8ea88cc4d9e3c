// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// Erf returns the error function of x.
//
// Based on the rational approximation from Abramowitz and Stegun,
// Handbook of Mathematical Functions, formula 7.1.26. The maximum
// absolute error is about 1.5e-7. The approximation is stated for
// x >= 0; negative arguments use the odd symmetry erf(-x) = -erf(x).
func Erf(x float64) float64 {
	const (
		a1 = 0.254829592
		a2 = -0.284496736
		a3 = 1.421413741
		a4 = -1.453152027
		a5 = 1.061405429
		p  = 0.3275911
	)

	sign := 1.0
	if x < 0 {
		sign = -1
		x = -x
	}

	t := 1 / (1 + p*x)
	y := 1 - (((((a5*t+a4)*t)+a3)*t+a2)*t+a1)*t*math.Exp(-x*x)
	return sign * y
}
