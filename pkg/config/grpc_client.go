package config

import (
	"errors"
	"time"
)

// GrpcClientConfig describes how a client reaches the inventory gRPC API.
// Timeout bounds each unary call.
type GrpcClientConfig struct {
	Addr    string        `koanf:"addr"`
	Timeout time.Duration `koanf:"timeout"`
}

func (c *GrpcClientConfig) String() string {
	return newSection("gRPC Client").
		add("addr", c.Addr).
		add("timeout", c.Timeout).
		String()
}

func (c *GrpcClientConfig) Validate() error {
	switch {
	case c.Addr == "":
		return errors.New("gRPC client address is required")
	case c.Timeout <= 0:
		return errors.New("gRPC client timeout must be positive")
	}
	return nil
}
