package objectkey

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Generator defines the interface for storage key generation strategies.
type Generator interface {
	// GenerateKey creates the object key under which a file's blob is
	// stored. Keys must be unique across uploads.
	GenerateKey(originalName string) string
}

// TimestampRandomGenerator produces keys of the form
// <millis>-<random><originalName>, e.g. "1714688793412-284619337photo.jpg".
// The millisecond timestamp plus a random integer in [0, 1e9) makes
// collisions practically impossible even within one batch.
type TimestampRandomGenerator struct {
	now  func() time.Time
	rand func() int64
}

// NewTimestampRandomGenerator creates a generator backed by the system
// clock and math/rand/v2.
func NewTimestampRandomGenerator() *TimestampRandomGenerator {
	return &TimestampRandomGenerator{
		now:  time.Now,
		rand: func() int64 { return rand.Int64N(1_000_000_000) },
	}
}

func (g *TimestampRandomGenerator) GenerateKey(originalName string) string {
	return fmt.Sprintf("%d-%d%s", g.now().UnixMilli(), g.rand(), originalName)
}
