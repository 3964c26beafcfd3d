package utils

import (
	"math/rand/v2"
)

// NDNxVersion is set at build time from source control.
var NDNxVersion string = "unknown"

// NonceLength is the size of nonces generated by NewNonce.
const NonceLength = 6

// IdPtr is the pointer version of id: 'a->'a
func IdPtr[T any](value T) *T {
	return &value
}

// If is the ternary operator (eager evaluation)
func If[T any](cond bool, t, f T) T {
	if cond {
		return t
	} else {
		return f
	}
}

// NewNonce returns random bytes for the Nonce of an Interest.
// Nonces only detect loops and need not be unpredictable.
func NewNonce() []byte {
	b := make([]byte, NonceLength)
	for i := range b {
		b[i] = byte(rand.Uint32())
	}
	return b
}
