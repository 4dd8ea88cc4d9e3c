// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"

	"golang.org/x/exp/rand"
)

// StdNormalRand returns one standard normal variate drawn from rnd via
// the Box–Muller transform. Each call consumes two uniform draws; the
// paired second variate is discarded.
func StdNormalRand(rnd *rand.Rand) float64 {
	var u float64
	for u == 0 {
		// Float64 may return 0, which has no log.
		u = rnd.Float64()
	}
	return math.Sqrt(-2*math.Log(u)) * math.Cos(2*math.Pi*rnd.Float64())
}

// GammaRand returns one draw from the gamma distribution with the given
// shape and scale, using the Marsaglia–Tsang squeeze-and-reject method
// ("A simple method for generating gamma variables", ACM TOMS 2000) for
// shape >= 1. Smaller shapes are boosted through the identity
//
//	Gamma(shape) = Gamma(shape+1) · U^(1/shape)
//
// with U uniform on (0, 1).
func GammaRand(shape, scale float64, rnd *rand.Rand) float64 {
	if shape < 1 {
		return GammaRand(shape+1, scale, rnd) * math.Pow(rnd.Float64(), 1/shape)
	}

	d := shape - 1.0/3.0
	c := 1 / math.Sqrt(9*d)
	for {
		var x, v float64
		for {
			x = StdNormalRand(rnd)
			v = 1 + c*x
			if v > 0 {
				break
			}
		}
		v = v * v * v
		u := rnd.Float64()
		// Squeeze check accepts the bulk of draws without a log.
		if u < 1-0.0331*x*x*x*x {
			return d * v * scale
		}
		if math.Log(u) < 0.5*x*x+d*(1-v+math.Log(v)) {
			return d * v * scale
		}
	}
}
