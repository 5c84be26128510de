package rate_limiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostRateLimiter_WaitForHost(t *testing.T) {
	limiter := NewHostRateLimiter(50 * time.Millisecond)
	ctx := context.Background()

	// First request goes through immediately.
	start := time.Now()
	require.NoError(t, limiter.WaitForHost(ctx, "https://example.com/feed.xml"))
	assert.Less(t, time.Since(start), 20*time.Millisecond)

	// Second request to the same host waits out the interval.
	start = time.Now()
	require.NoError(t, limiter.WaitForHost(ctx, "https://example.com/other"))
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestHostRateLimiter_DifferentHostsIndependent(t *testing.T) {
	limiter := NewHostRateLimiter(time.Second)
	ctx := context.Background()

	require.NoError(t, limiter.WaitForHost(ctx, "https://a.example.com/feed"))

	start := time.Now()
	require.NoError(t, limiter.WaitForHost(ctx, "https://b.example.com/feed"))
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestHostRateLimiter_NormalizesHostVariants(t *testing.T) {
	limiter := NewHostRateLimiter(50 * time.Millisecond)
	ctx := context.Background()

	require.NoError(t, limiter.WaitForHost(ctx, "https://Example.COM/feed"))

	// Case and default-port variants share the first request's budget.
	start := time.Now()
	require.NoError(t, limiter.WaitForHost(ctx, "https://example.com:443/other"))
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestHostRateLimiter_InvalidURL(t *testing.T) {
	limiter := NewHostRateLimiter(time.Second)

	err := limiter.WaitForHost(context.Background(), "not-a-url")
	assert.Error(t, err)
}

func TestHostRateLimiter_ContextCancellation(t *testing.T) {
	limiter := NewHostRateLimiter(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, limiter.WaitForHost(ctx, "https://example.com/feed"))

	cancel()
	err := limiter.WaitForHost(ctx, "https://example.com/feed")
	assert.Error(t, err)
}
