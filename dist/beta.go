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

// Beta is a beta distribution with shape parameters Alpha and Beta,
// supported on [0, 1]. It is the natural model for rates and
// probabilities, e.g. a team's estimated win rate.
type Beta struct {
	Alpha, Beta float64

	// Src is the source of uniform randomness consumed by Rand.
	// If nil, Rand draws from the shared process generator.
	Src rand.Source
}

var _ Dist = Beta{}

// NewBeta returns the beta distribution with shape parameters alpha and
// beta. It fails with ErrInvalidParameter unless both are positive.
func NewBeta(alpha, beta float64) (Beta, error) {
	if !(alpha > 0) {
		return Beta{}, errors.Wrapf(ErrInvalidParameter, "alpha must be positive, got %v", alpha)
	}
	if !(beta > 0) {
		return Beta{}, errors.Wrapf(ErrInvalidParameter, "beta must be positive, got %v", beta)
	}
	return Beta{Alpha: alpha, Beta: beta}, nil
}

func (b Beta) Mean() float64 { return b.Alpha / (b.Alpha + b.Beta) }

func (b Beta) Variance() float64 {
	s := b.Alpha + b.Beta
	return b.Alpha * b.Beta / (s * s * (s + 1))
}

func (b Beta) PDF(x float64) float64 {
	if x < 0 || x > 1 {
		return 0
	}
	return math.Pow(x, b.Alpha-1) * math.Pow(1-x, b.Beta-1) / mathx.Beta(b.Alpha, b.Beta)
}

func (b Beta) CDF(x float64) float64 {
	switch {
	case x <= 0:
		return 0
	case x >= 1:
		return 1
	}
	if b.Alpha == 2 && b.Beta == 2 {
		// Closed form: I_x(2, 2) = 3x² - 2x³.
		return x * x * (3 - 2*x)
	}
	return mathx.BetaInc(x, b.Alpha, b.Beta)
}

// Rand returns g1/(g1+g2) for independent draws g1 ~ Gamma(Alpha, 1)
// and g2 ~ Gamma(Beta, 1).
func (b Beta) Rand() float64 {
	rnd := rander(b.Src)
	g1 := mathx.GammaRand(b.Alpha, 1, rnd)
	g2 := mathx.GammaRand(b.Beta, 1, rnd)
	return g1 / (g1 + g2)
}

// Bounds returns the exact support [0, 1].
func (b Beta) Bounds() (float64, float64) {
	return 0, 1
}
