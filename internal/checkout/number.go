package checkout

import (
	"math/rand/v2"
	"strings"
)

const (
	base36       = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberLength = 8
)

// NewOrderNumber returns prefix followed by eight random base-36 characters.
// Collisions are not checked.
func NewOrderNumber(prefix string) string {
	var b strings.Builder
	b.Grow(len(prefix) + numberLength)
	b.WriteString(prefix)
	for range numberLength {
		b.WriteByte(base36[rand.IntN(len(base36))])
	}
	return b.String()
}
