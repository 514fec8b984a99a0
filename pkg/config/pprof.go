package config

import "errors"

// PProfConfig controls the optional debug listener exposing net/http/pprof.
type PProfConfig struct {
	Enabled bool   `koanf:"enabled"`
	Addr    string `koanf:"addr"`
}

func (c *PProfConfig) String() string {
	s := newSection("PProf").add("enabled", c.Enabled)
	if c.Enabled {
		s.add("addr", c.Addr)
	}
	return s.String()
}

func (c *PProfConfig) Validate() error {
	if c.Enabled && c.Addr == "" {
		return errors.New("pprof address is required when pprof is enabled")
	}
	return nil
}
