package config

import (
	"errors"
	"time"
)

// ResilienceConfig holds the retry and circuit breaker settings.
// The breaker settings are shared by the gRPC client and the product store.
type ResilienceConfig struct {
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuitbreaker"`
}

// RetryConfig applies to transient gRPC failures only.
type RetryConfig struct {
	MaxAttempts    uint          `koanf:"maxattempts"`
	InitialBackoff time.Duration `koanf:"initialbackoff"`
}

// CircuitBreakerConfig tolerates up to ConsecutiveFailures failures in a row and trips on the next one.
// Once more than ConsecutiveFailures calls have been counted, a failure ratio above ErrorRatePercent trips it too.
type CircuitBreakerConfig struct {
	ConsecutiveFailures uint32        `koanf:"consecutivefailures"`
	ErrorRatePercent    int           `koanf:"errorratepercent"`
	OpenTimeout         time.Duration `koanf:"opentimeout"`
}

func (c *ResilienceConfig) String() string {
	retry := newSection("Retry").
		add("maxattempts", c.Retry.MaxAttempts).
		add("initialbackoff", c.Retry.InitialBackoff)
	breaker := newSection("Circuit Breaker").
		add("consecutivefailures", c.CircuitBreaker.ConsecutiveFailures).
		add("errorratepercent", c.CircuitBreaker.ErrorRatePercent).
		add("opentimeout", c.CircuitBreaker.OpenTimeout)
	return retry.String() + breaker.String()
}

func (c *ResilienceConfig) Validate() error {
	return errors.Join(c.Retry.validate(), c.CircuitBreaker.validate())
}

func (c *RetryConfig) validate() error {
	if c.MaxAttempts == 0 {
		return errors.New("retry.maxattempts must be at least 1")
	}
	if c.InitialBackoff <= 0 {
		return errors.New("retry.initialbackoff must be positive")
	}
	return nil
}

func (c *CircuitBreakerConfig) validate() error {
	if c.ConsecutiveFailures == 0 {
		return errors.New("circuitbreaker.consecutivefailures must be at least 1")
	}
	if c.ErrorRatePercent < 0 || c.ErrorRatePercent > 100 {
		return errors.New("circuitbreaker.errorratepercent must be within [0, 100]")
	}
	if c.OpenTimeout <= 0 {
		return errors.New("circuitbreaker.opentimeout must be positive")
	}
	return nil
}
