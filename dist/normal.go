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

// Normal is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type Normal struct {
	Mu, Sigma float64

	// Src is the source of uniform randomness consumed by Rand.
	// If nil, Rand draws from the shared process generator.
	Src rand.Source
}

var _ Dist = Normal{}

// StdNormal is the standard normal distribution (Mu = 0, Sigma = 1).
var StdNormal = Normal{Mu: 0, Sigma: 1}

// NewNormal returns the normal distribution with mean mu and standard
// deviation sigma. It fails with ErrInvalidParameter unless sigma > 0.
func NewNormal(mu, sigma float64) (Normal, error) {
	if !(sigma > 0) {
		return Normal{}, errors.Wrapf(ErrInvalidParameter, "sigma must be positive, got %v", sigma)
	}
	return Normal{Mu: mu, Sigma: sigma}, nil
}

// 1/sqrt(2 * pi)
const invSqrt2Pi = 0.39894228040143267793994605993438186847585863116493465766592583

func (n Normal) Mean() float64 { return n.Mu }

func (n Normal) Variance() float64 { return n.Sigma * n.Sigma }

func (n Normal) PDF(x float64) float64 {
	z := x - n.Mu
	return math.Exp(-z*z/(2*n.Sigma*n.Sigma)) * invSqrt2Pi / n.Sigma
}

func (n Normal) CDF(x float64) float64 {
	return (1 + mathx.Erf((x-n.Mu)/(n.Sigma*math.Sqrt2))) / 2
}

// Rand returns mu + sigma·Z for a standard normal Z drawn by the
// Box–Muller transform.
func (n Normal) Rand() float64 {
	return n.Mu + n.Sigma*mathx.StdNormalRand(rander(n.Src))
}

func (n Normal) Bounds() (float64, float64) {
	const stddevs = 3
	return n.Mu - stddevs*n.Sigma, n.Mu + stddevs*n.Sigma
}
