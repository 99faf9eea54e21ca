package testutils

import (
	"fmt"
)

func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func MustNoErr(err error) {
	if err != nil {
		panic(err)
	}
}

// Ignore reports a non-fatal error, mostly from deferred cleanups.
func Ignore(err error) {
	if err != nil {
		fmt.Printf("ignored error: %v\n", err) // nolint:forbidigo
	}
}
