// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"
)

// aeq returns true if expect and got are equal to 8 significant
// figures (1 part in 100 million).
func aeq(expect, got float64) bool {
	if expect < 0 && got < 0 {
		expect, got = -expect, -got
	}
	return expect*0.99999999 <= got && got*0.99999999 <= expect
}

// checkMoments draws n samples from d and compares the sample mean and
// variance against d.Mean() and d.Variance() within 5% relative
// tolerance.
func checkMoments(t *testing.T, name string, d Dist, n int) {
	t.Helper()
	xs := RandN(d, n)
	mean := stat.Mean(xs, nil)
	variance := stat.Variance(xs, nil)
	if e := d.Mean(); math.Abs(mean-e) > 0.05*math.Abs(e) {
		t.Errorf("%s: sample mean %g too far from %g", name, mean, e)
	}
	if e := d.Variance(); math.Abs(variance-e) > 0.05*e {
		t.Errorf("%s: sample variance %g too far from %g", name, variance, e)
	}
}

// checkCDFMonotone checks that d.CDF is non-decreasing over a dense
// grid spanning [lo, hi].
func checkCDFMonotone(t *testing.T, name string, d Dist, lo, hi float64) {
	t.Helper()
	ys := CDFEach(d, Linspace(lo, hi, 1001))
	for i := 1; i < len(ys); i++ {
		if ys[i] < ys[i-1] {
			t.Fatalf("%s: CDF decreases between grid points %d and %d: %g > %g",
				name, i-1, i, ys[i-1], ys[i])
		}
	}
}

// simpson integrates f over [lo, hi] with n subdivisions (n even).
func simpson(f func(float64) float64, lo, hi float64, n int) float64 {
	h := (hi - lo) / float64(n)
	sum := f(lo) + f(hi)
	for i := 1; i < n; i++ {
		x := lo + float64(i)*h
		if i%2 == 1 {
			sum += 4 * f(x)
		} else {
			sum += 2 * f(x)
		}
	}
	return sum * h / 3
}
