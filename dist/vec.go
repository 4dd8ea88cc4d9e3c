// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

// Linspace returns num values spaced evenly between lo and hi,
// inclusive.
func Linspace(lo, hi float64, num int) []float64 {
	res := make([]float64, num)
	for i := 0; i < num; i++ {
		res[i] = lo + float64(i)*(hi-lo)/float64(num-1)
	}
	return res
}
