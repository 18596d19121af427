package core

import (
	"fmt"
	"strings"
)

// Options collects repeatable key=value flags that are handed to a sim
// factory as its configuration map.
type Options []string

func (o *Options) String() string {
	return strings.Join(*o, ",")
}

// Set implements flag.Value.
func (o *Options) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("option %q: want key=value", value)
	}
	*o = append(*o, value)
	return nil
}

// Map returns the options as a configuration map; later keys win.
func (o Options) Map() map[string]string {
	m := make(map[string]string, len(o))
	for _, kv := range o {
		k, v, _ := strings.Cut(kv, "=")
		m[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return m
}
