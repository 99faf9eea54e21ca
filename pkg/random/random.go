package random

import (
	mrand "math/rand"
)

// RandInt returns a random number in [min, max).
func RandInt(min, max int) int {
	return mrand.Intn(max-min) + min // nolint: gosec
}

// Perm returns a random permutation of [0, n).
func Perm(n int) []int {
	return mrand.Perm(n) // nolint: gosec
}
