package usecase

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtendTo(t *testing.T) {
	assert.Equal(t, int64(1_300), extendTo(1_000, 300))
	assert.Equal(t, int64(math.MaxInt64), extendTo(1_000, math.MaxInt64))
	assert.Equal(t, int64(math.MaxInt64), extendTo(math.MaxInt64-1, 1))
	assert.Equal(t, int64(math.MaxInt64), extendTo(math.MaxInt64-1, 2))
}
