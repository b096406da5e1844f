package resilience

import "time"

// CircuitBreakerConfig tunes the breaker in front of one upstream provider.
type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int           // consecutive failures before the breaker opens
	OpenTimeout      time.Duration // how long the breaker stays open before probing
	HalfOpenMaxReq   int           // concurrent probes allowed while half-open
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 5,
		OpenTimeout:      15 * time.Second,
		HalfOpenMaxReq:   2,
	}
}

// NormalizeCircuitBreakerConfig replaces out-of-range values with defaults;
// Enabled is taken as given.
func NormalizeCircuitBreakerConfig(cfg CircuitBreakerConfig) CircuitBreakerConfig {
	d := DefaultCircuitBreakerConfig()
	if cfg.FailureThreshold < 1 {
		cfg.FailureThreshold = d.FailureThreshold
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = d.OpenTimeout
	}
	if cfg.HalfOpenMaxReq < 1 {
		cfg.HalfOpenMaxReq = d.HalfOpenMaxReq
	}
	return cfg
}
