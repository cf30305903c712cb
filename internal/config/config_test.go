//
// Copyright 2011-2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigMatchesInterpreterDefaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 640, cfg.Limits.MaxDepth)
	assert.Equal(t, 256, cfg.Limits.MaxArgc)
	assert.True(t, cfg.Host.EnableExit)
	assert.True(t, cfg.Host.EnableSystem)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pickle.toml")
	contents := `
[limits]
max_depth = 32
max_argc = 16

[host]
enable_exit = false
enable_system = false
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.Limits.MaxDepth)
	assert.Equal(t, 16, cfg.Limits.MaxArgc)
	assert.False(t, cfg.Host.EnableExit)
	assert.False(t, cfg.Host.EnableSystem)

	limits := cfg.ToLimits()
	assert.Equal(t, 32, limits.MaxDepth)
	assert.Equal(t, 16, limits.MaxArgc)
}
