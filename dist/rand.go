// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"sync"
	"time"

	"golang.org/x/exp/rand"
)

// globalRand is the process-level generator backing Rand on
// distributions constructed without an explicit Src. The locked source
// keeps concurrent draws from racing on the shared generator state.
var globalRand = rand.New(&lockedSource{
	src: rand.NewSource(uint64(time.Now().UnixNano())),
})

type lockedSource struct {
	mu  sync.Mutex
	src rand.Source
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	v := s.src.Uint64()
	s.mu.Unlock()
	return v
}

func (s *lockedSource) Seed(seed uint64) {
	s.mu.Lock()
	s.src.Seed(seed)
	s.mu.Unlock()
}

// rander returns the generator a distribution draws from: a private one
// over src when set, the shared process generator otherwise. A private
// source makes sampling deterministic for a given seed.
func rander(src rand.Source) *rand.Rand {
	if src == nil {
		return globalRand
	}
	return rand.New(src)
}
