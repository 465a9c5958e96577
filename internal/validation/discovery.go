package validation

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// errEndpointFound cancels the remaining probes once a winner exists.
var errEndpointFound = errors.New("endpoint found")

// Discover probes the health endpoint of each candidate base URL and
// returns the first one that responds. Probes run concurrently; losers are
// cancelled. Returns ErrNoEndpoint when every candidate fails.
func Discover(ctx context.Context, candidates []string, probeTimeout time.Duration, logger *slog.Logger) (string, error) {
	if len(candidates) == 0 {
		return "", ErrNoEndpoint
	}

	winners := make(chan string, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	for _, candidate := range candidates {
		g.Go(func() error {
			probeCtx, cancel := context.WithTimeout(gctx, probeTimeout)
			defer cancel()

			if err := NewClient(candidate, logger).Health(probeCtx); err != nil {
				logger.Debug("endpoint probe failed", "endpoint", candidate, "error", err)
				return nil
			}

			winners <- candidate
			return errEndpointFound
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, errEndpointFound) {
		return "", err
	}

	select {
	case endpoint := <-winners:
		logger.Info("validation engine discovered", "endpoint", endpoint)
		return endpoint, nil
	default:
		return "", ErrNoEndpoint
	}
}
