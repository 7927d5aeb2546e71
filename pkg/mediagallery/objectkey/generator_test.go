package objectkey

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKeyFormat(t *testing.T) {
	gen := NewTimestampRandomGenerator()

	key := gen.GenerateKey("photo.jpg")

	re := regexp.MustCompile(`^(\d+)-(\d+)photo\.jpg$`)
	require.Regexp(t, re, key)

	matches := re.FindStringSubmatch(key)
	var millis, random int64
	_, err := fmt.Sscanf(matches[1], "%d", &millis)
	require.NoError(t, err)
	_, err = fmt.Sscanf(matches[2], "%d", &random)
	require.NoError(t, err)

	now := time.Now().UnixMilli()
	assert.InDelta(t, now, millis, 5000, "timestamp should be current epoch milliseconds")
	assert.GreaterOrEqual(t, random, int64(0))
	assert.Less(t, random, int64(1_000_000_000))
}

func TestGenerateKeyDeterministicParts(t *testing.T) {
	fixed := time.UnixMilli(1714688793412)
	gen := &TimestampRandomGenerator{
		now:  func() time.Time { return fixed },
		rand: func() int64 { return 284619337 },
	}

	assert.Equal(t, "1714688793412-284619337photo.jpg", gen.GenerateKey("photo.jpg"))
}

func TestGenerateKeyUniqueness(t *testing.T) {
	gen := NewTimestampRandomGenerator()

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		key := gen.GenerateKey("same-name.png")
		assert.False(t, seen[key], "duplicate key %q", key)
		seen[key] = true
	}
}
