package ratelimit_test

import (
	"testing"
	"time"

	"github.com/orgball2608/apod-telegram-bot/internal/ratelimit"
	"github.com/stretchr/testify/assert"
)

func TestAllow_BurstThenBlocked(t *testing.T) {
	limiter := ratelimit.NewInMemoryLimiter(1, time.Hour, 3)

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow(1), "request %d should be within burst", i+1)
	}
	assert.False(t, limiter.Allow(1), "burst exhausted")
}

func TestAllow_ChatsAreIndependent(t *testing.T) {
	limiter := ratelimit.NewInMemoryLimiter(1, time.Hour, 1)

	assert.True(t, limiter.Allow(1))
	assert.False(t, limiter.Allow(1))
	assert.True(t, limiter.Allow(2))
}
