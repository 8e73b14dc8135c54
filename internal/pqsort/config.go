// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pqsort

import (
	"context"
	"fmt"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/pqueue/container/boundedheap"
	"gopkg.in/yaml.v3"
)

// Config represents the configuration for ordering a set of input lines.
// Numeric lines are parsed with strconv.ParseFloat and so may be written
// in any of the forms it accepts, including hexadecimal floats and Inf;
// lines that parse as NaN are rejected.
type Config struct {
	Capacity int                   `yaml:"capacity" cmd:"maximum number of lines that can be ordered"`
	Reverse  bool                  `yaml:"reverse" cmd:"output the lowest priority lines first"`
	Numeric  bool                  `yaml:"numeric" cmd:"order lines by their numeric value rather than lexically"`
	Limit    int                   `yaml:"limit" cmd:"maximum number of lines to output, 0 for all"`
	Logging  cmdutil.LoggingConfig `yaml:"logging"`
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() Config {
	return Config{
		Capacity: boundedheap.DefaultCapacity,
		Logging: cmdutil.LoggingConfig{
			Format: "json",
		},
	}
}

// ParseConfig parses the supplied YAML, any fields not specified retain
// the values returned by DefaultConfig. Unknown fields are reported as
// errors.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := cmdyaml.ParseConfigStrict(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// ParseConfigFile is like ParseConfig but reads the configuration from the
// named file using file.FSReadFile.
func ParseConfigFile(ctx context.Context, name string) (Config, error) {
	cfg := DefaultConfig()
	if err := cmdyaml.ParseConfigFileStrict(ctx, name, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// Validate returns an error if the configuration cannot be used.
func (c Config) Validate() error {
	if c.Capacity < 0 {
		return fmt.Errorf("capacity: %w: %d", boundedheap.ErrInvalidCapacity, c.Capacity)
	}
	if c.Limit < 0 {
		return fmt.Errorf("limit must not be negative: %d", c.Limit)
	}
	return nil
}

// YAML returns the YAML representation of the configuration.
func (c Config) YAML() (string, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
