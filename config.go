package main

import (
	"fmt"
	"os"
	"time"
)

const (
	DefaultPort          = 8080
	DefaultSocketTimeout = 60 * time.Second

	defaultTemplatePath = "directory_template.html"
)

// Config is everything the server needs, constructed explicitly and
// handed in; there is no ambient configuration state.
type Config struct {
	// Root is the single directory tree the server exposes.
	Root string
	// Port to listen on. Zero or out-of-range falls back to
	// DefaultPort at validation time.
	Port int
	// Timeout is the per-connection read/write deadline.
	Timeout time.Duration
	// TemplatePath is the listing template, loaded fresh per listing.
	TemplatePath string
}

func NewConfig(root string, port int) *Config {
	return &Config{
		Root:         root,
		Port:         port,
		Timeout:      DefaultSocketTimeout,
		TemplatePath: defaultTemplatePath,
	}
}

// Validate checks the served root and repairs a bad port, warning and
// falling back to the default rather than refusing to start.
func (c *Config) Validate() error {
	if c.Root == "" {
		return fmt.Errorf("no directory to serve")
	}
	info, err := os.Stat(c.Root)
	if err != nil {
		return fmt.Errorf("cannot serve %s: %v", c.Root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("cannot serve %s: not a directory", c.Root)
	}
	if c.Port <= 0 || c.Port > 65535 {
		fmt.Printf("Warning: Invalid port number '%d', using default port %d\n",
			c.Port, DefaultPort)
		c.Port = DefaultPort
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultSocketTimeout
	}
	if c.TemplatePath == "" {
		c.TemplatePath = defaultTemplatePath
	}
	return nil
}

// Addr is the listen address for the configured port.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
