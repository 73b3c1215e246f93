package domain

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActivityLevel_StartsAtOne(t *testing.T) {
	assert.Equal(t, ActivityLevel(1), NewActivityLevel())
}

func TestActivityLevel_Bounds(t *testing.T) {
	assert.Equal(t, ActivityLevel(1), NewActivityLevel().Decrement(), "decrement at 1 is a no-op")
	assert.Equal(t, ActivityLevel(5), ActivityLevel(5).Increment(), "increment at 5 is a no-op")
	assert.Equal(t, ActivityLevel(3), ActivityLevel(2).Increment())
	assert.Equal(t, ActivityLevel(4), ActivityLevel(5).Decrement())
}

func TestActivityLevel_Controls(t *testing.T) {
	assert.False(t, ActivityLevel(1).CanDecrement())
	assert.True(t, ActivityLevel(1).CanIncrement())
	assert.True(t, ActivityLevel(5).CanDecrement())
	assert.False(t, ActivityLevel(5).CanIncrement())
}

func TestActivityLevel_RandomWalkStaysInRange(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	level := NewActivityLevel()
	for i := 0; i < 1000; i++ {
		if r.IntN(2) == 0 {
			level = level.Increment()
		} else {
			level = level.Decrement()
		}
		assert.GreaterOrEqual(t, int(level), MinActivityLevel)
		assert.LessOrEqual(t, int(level), MaxActivityLevel)
	}
}
