package server

import "context"

// HealthService defines behaviour for readiness probes.
type HealthService interface {
	Probe(ctx context.Context) error
}

// Pinger is implemented by caches with a remote backend, such as
// cache.RedisCache.
type Pinger interface {
	Ping(ctx context.Context) error
}

// CacheHealthService verifies cache connectivity as part of health checks.
type CacheHealthService struct {
	Cache Pinger
}

// Probe implements the HealthService interface.
func (s CacheHealthService) Probe(ctx context.Context) error {
	if s.Cache == nil {
		return nil
	}
	return s.Cache.Ping(ctx)
}
