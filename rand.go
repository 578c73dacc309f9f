package main

import (
	"fmt"
	"math/rand/v2"
)

// Rand is a seeded random number generator that is part of the World's
// state. It must produce the same numbers for the same seed on every
// platform, because playthroughs are replayed from their seed and inputs.
// Rand is a plain value: copying it copies the generator state, and the copy
// then produces the same numbers as the original.
type Rand struct {
	src rand.PCG
}

func NewRand(seed int64) (r Rand) {
	r.src = *rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)
	return
}

// RInt returns a random number in [min, max], both ends included.
func (r *Rand) RInt(min int64, max int64) int64 {
	if min > max {
		Check(fmt.Errorf("invalid interval for RInt: [%d, %d]", min, max))
	}
	return min + rand.New(&r.src).Int64N(max-min+1)
}
