package config

import (
	"errors"
	"time"
)

// ShutdownConfig bounds how long each component may take to stop.
type ShutdownConfig struct {
	Timeout time.Duration `koanf:"timeout"`
}

func (c *ShutdownConfig) String() string {
	return newSection("Shutdown").add("timeout", c.Timeout).String()
}

func (c *ShutdownConfig) Validate() error {
	if c.Timeout <= 0 {
		return errors.New("shutdown timeout must be positive")
	}
	return nil
}
