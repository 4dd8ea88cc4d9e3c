// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx is the special-function kernel backing the dist package:
// self-contained approximations of the error function, the gamma function
// and its relatives, and the low-level samplers the distributions draw
// through. Every function is stateless; the samplers consume entropy only
// from the generator passed in.
package mathx

import "github.com/pkg/errors"

// ErrNumeric reports evaluation of a special function at a point where it
// is undefined. Gamma returns it, wrapped with the offending argument, at
// nonpositive integers.
var ErrNumeric = errors.New("special function undefined at argument")
