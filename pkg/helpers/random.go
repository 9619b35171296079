package helpers

import "math/rand"

// Shuffle permutes the slice in place. Not for anything security sensitive;
// verification codes come from crypto/rand instead.
func Shuffle[T any](s []T) {
	rand.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}
