package game

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// NewRNG returns the deterministic generator used for orders, customer
// looks and shelf shuffles. Equal seeds replay equal sessions.
func NewRNG(seed int64) *rand.Rand {
	return seededRNG(seed, "orders")
}

// seededRNG derives an independent stream per name so that, for example,
// shelf shuffles do not shift the order sequence.
func seededRNG(seed int64, stream string) *rand.Rand {
	hi, lo := seedWord(seed, stream+":hi"), seedWord(seed, stream+":lo")
	return rand.New(rand.NewPCG(hi, lo)) // #nosec G404
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d/%s", seed, salt)
	return h.Sum64()
}
