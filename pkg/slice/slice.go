package slice

import (
	"math/rand"
)

func TruncateSafe[T any](s []T, n int) []T {
	switch {
	case len(s) > n:
		return s[:n]
	default:
		return s
	}
}

func RandomChoice[T any](s []T) T {
	idx := rand.Intn(len(s)) // nolint: gosec // no need for crypto/rand here
	return s[idx]
}

// Map applies fn to every element of s.
func Map[T, R any](s []T, fn func(T) R) []R {
	mapped := make([]R, 0, len(s))
	for _, v := range s {
		mapped = append(mapped, fn(v))
	}
	return mapped
}
