// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dist models the continuous probability distributions used by
// the prediction pipeline: Normal, Beta, and Gamma. A distribution is an
// immutable value constructed from validated parameters; after
// construction every query is a pure, total function, and Rand draws
// independent samples from an injectable randomness source. Consumers
// turn modeled uncertainty into probabilities, e.g. a win probability is
// 1 - d.CDF(0) for a modeled score margin d.
package dist

import "github.com/pkg/errors"

// ErrInvalidParameter reports a constructor argument outside its domain,
// such as a nonpositive scale or shape. It is only ever returned at
// construction; a successfully constructed distribution cannot fail.
var ErrInvalidParameter = errors.New("invalid distribution parameter")

// A Dist is a continuous statistical distribution.
type Dist interface {
	// Mean returns the expected value of this distribution.
	Mean() float64

	// Variance returns the variance of this distribution.
	Variance() float64

	// PDF returns the value of the probability density function
	// of this distribution at x. It is 0 outside the support.
	PDF(x float64) float64

	// CDF returns the value of the cumulative distribution
	// function for this distribution at x. This is the integral
	// of the PDF up to x; it saturates to 0 and 1 outside the
	// support.
	CDF(x float64) float64

	// Rand returns one independent draw from this distribution.
	Rand() float64

	// Bounds returns reasonable bounds for this distribution's
	// PDF and CDF. The total weight outside of these bounds
	// should be approximately 0.
	Bounds() (float64, float64)
}

// PDFEach returns d.PDF(xs[i]) for each i.
func PDFEach(d Dist, xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = d.PDF(x)
	}
	return res
}

// CDFEach returns d.CDF(xs[i]) for each i.
func CDFEach(d Dist, xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = d.CDF(x)
	}
	return res
}

// RandN returns n independent draws from d.
func RandN(d Dist, n int) []float64 {
	res := make([]float64, n)
	for i := range res {
		res[i] = d.Rand()
	}
	return res
}
