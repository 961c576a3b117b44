package survey

import (
	"math/rand"

	dprand "github.com/google/differential-privacy/go/v3/rand"
)

// Source yields uniform floats in [0,1).
// *math/rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// defaultSeed is used when callers pass seed == 0.
const defaultSeed int64 = 1

// NewSeededSource returns a deterministic Source.
// seed == 0 ⇒ defaultSeed; otherwise the seed is used verbatim.
func NewSeededSource(seed int64) Source {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// CryptoSource draws from the differential-privacy library's crypto-backed
// generator. The zero value is ready to use and safe for concurrent use.
type CryptoSource struct{}

// Float64 maps the generator's (0,1] output onto [0,1).
func (CryptoSource) Float64() float64 {
	v := 1 - dprand.Uniform()
	if v >= 1 { // Uniform below 2^-53 rounds away
		return 0
	}
	return v
}
