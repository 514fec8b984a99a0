package config

import (
	"fmt"
	"strings"
)

// section renders one block of the startup configuration dump.
type section struct {
	b strings.Builder
}

func newSection(title string) *section {
	s := &section{}
	fmt.Fprintf(&s.b, "\n--- %s ---\n", title)
	return s
}

func (s *section) add(key string, value any) *section {
	fmt.Fprintf(&s.b, "  %s: %v\n", key, value)
	return s
}

func (s *section) String() string {
	return s.b.String()
}
