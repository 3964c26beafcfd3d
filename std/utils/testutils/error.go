package utils

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var testT testing.TB

// SetT sets the test or benchmark that the helpers below report to.
func SetT(t testing.TB) {
	testT = t
}

func NoErr[T any](v T, err error) T {
	require.NoError(testT, err)
	return v
}

// NoErrB is NoErr for setup code that runs without SetT, such as benchmark
// fixtures. It panics on error.
func NoErrB[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func Err[T any](_ T, err error) error {
	require.Error(testT, err)
	return err
}

// Hex decodes a hex test vector. Spaces are ignored.
func Hex(s string) []byte {
	return NoErrB(hex.DecodeString(strings.ReplaceAll(s, " ", "")))
}
