package providerutils

import (
	"context"
	"fmt"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/flight-selection-service/internal/pkg/flightprovider"
)

// CheckRateLimit takes one token of the provider bucket. A nil limiter or a
// non-positive rate disables limiting.
func CheckRateLimit(ctx context.Context, limiter flightprovider.RateLimiter, name string, rps int) error {
	if limiter == nil || rps <= 0 {
		return nil
	}

	res, err := limiter.Allow(ctx, fmt.Sprintf("limit:%s", name), redis_rate.PerSecond(rps))
	if err != nil {
		return fmt.Errorf("failed to rate limit: %w", err)
	}

	if res.Allowed == 0 {
		return ErrProviderRateLimitExceeded
	}

	return nil
}
