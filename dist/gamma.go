// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"github.com/restocktime/nfl-ncaa-analytics-sub012/internal/mathx"
)

// Gamma is a gamma distribution with parameters Shape and Scale,
// supported on [0, +inf). Shape 1 is the exponential distribution with
// mean Scale.
type Gamma struct {
	Shape, Scale float64

	// Src is the source of uniform randomness consumed by Rand.
	// If nil, Rand draws from the shared process generator.
	Src rand.Source
}

var _ Dist = Gamma{}

// NewGamma returns the gamma distribution with the given shape and
// scale. It fails with ErrInvalidParameter unless both are positive.
func NewGamma(shape, scale float64) (Gamma, error) {
	if !(shape > 0) {
		return Gamma{}, errors.Wrapf(ErrInvalidParameter, "shape must be positive, got %v", shape)
	}
	if !(scale > 0) {
		return Gamma{}, errors.Wrapf(ErrInvalidParameter, "scale must be positive, got %v", scale)
	}
	return Gamma{Shape: shape, Scale: scale}, nil
}

func (g Gamma) Mean() float64 { return g.Shape * g.Scale }

func (g Gamma) Variance() float64 { return g.Shape * g.Scale * g.Scale }

func (g Gamma) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	// Shape > 0 after construction, so Γ(Shape) has no pole.
	gf, _ := mathx.Gamma(g.Shape)
	return math.Pow(x, g.Shape-1) * math.Exp(-x/g.Scale) /
		(math.Pow(g.Scale, g.Shape) * gf)
}

func (g Gamma) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	switch g.Shape {
	case 1:
		// Exponential closed form.
		return 1 - math.Exp(-x/g.Scale)
	case 2:
		return 1 - (1+x/g.Scale)*math.Exp(-x/g.Scale)
	}
	gf, _ := mathx.Gamma(g.Shape)
	// The min guards overshoot from series truncation.
	return math.Min(1, mathx.GammaIncLower(g.Shape, x/g.Scale)/gf)
}

// Rand returns one draw via the Marsaglia–Tsang method.
func (g Gamma) Rand() float64 {
	return mathx.GammaRand(g.Shape, g.Scale, rander(g.Src))
}

func (g Gamma) Bounds() (float64, float64) {
	return 0, g.Mean() + 3*math.Sqrt(g.Variance())
}
