// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist_test

import (
	"fmt"
	"log"

	"github.com/restocktime/nfl-ncaa-analytics-sub012/dist"
)

// A modeled score margin turns into a win probability by asking how
// much of the distribution sits above zero.
func Example_winProbability() {
	// Home team favored by 3.5 points with a 10.5-point spread of
	// uncertainty.
	margin, err := dist.NewNormal(3.5, 10.5)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("home win probability: %.2f\n", 1-margin.CDF(0))
	// Output: home win probability: 0.63
}

func ExampleNormal_CDF() {
	score, err := dist.NewNormal(100, 15)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%.4f\n", score.CDF(115))
	// Output: 0.8413
}

func ExampleGamma_CDF() {
	// Shape 1 is the exponential distribution.
	wait, err := dist.NewGamma(1, 2)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%.4f\n", wait.CDF(2))
	// Output: 0.6321
}
