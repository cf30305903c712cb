//
// Copyright 2011-2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Package config loads the host's tunable settings: the interpreter's
// resource limits and which host-only commands are enabled, the way
// lookbusy1344-arm_emulator/config loads its emulator configuration --
// a struct of TOML-tagged sections, a DefaultConfig supplying sane
// defaults, and a Load that decodes a user file over them.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/moneytech/pickle/pickle"
)

// Config holds everything the cmd/pickle host needs beyond the
// interpreter itself.
type Config struct {
	Limits struct {
		MaxDepth int `toml:"max_depth"`
		MaxArgc  int `toml:"max_argc"`
	} `toml:"limits"`

	Host struct {
		EnableExit   bool `toml:"enable_exit"`
		EnableSystem bool `toml:"enable_system"`
	} `toml:"host"`
}

// DefaultConfig returns the configuration a freshly started host uses
// absent a config file: the interpreter's own defaults, with both
// host escape hatches ("exit" and "system") enabled since the CLI is
// a trusted, interactive tool rather than an embedding inside another
// service.
func DefaultConfig() *Config {
	cfg := &Config{}
	defaults := pickle.DefaultLimits()
	cfg.Limits.MaxDepth = defaults.MaxDepth
	cfg.Limits.MaxArgc = defaults.MaxArgc
	cfg.Host.EnableExit = true
	cfg.Host.EnableSystem = true
	return cfg
}

// Load decodes the TOML file at path over DefaultConfig's values. A
// missing path is not an error -- the defaults are returned as-is,
// matching how a host with no config file yet should still start.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// ToLimits converts the loaded configuration into the pickle.Limits
// value NewInterpWithLimits expects.
func (c *Config) ToLimits() pickle.Limits {
	return pickle.Limits{MaxDepth: c.Limits.MaxDepth, MaxArgc: c.Limits.MaxArgc}
}
