package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hearthkeep/hearthkeep/pkg/types"
)

func TestRootCommandWiring(t *testing.T) {
	want := map[string]bool{
		"install":     false,
		"uninstall":   false,
		"clean-state": false,
		"list":        false,
		"version":     false,
	}

	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}

	for name, found := range want {
		assert.True(t, found, "command %q is not registered", name)
	}
}

func TestPersistentFlags(t *testing.T) {
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("verbose"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, installCmd.Flags().Lookup("name"))
	assert.NotNil(t, uninstallCmd.Flags().Lookup("saved-variables"))
}

func TestInstalledVersion(t *testing.T) {
	assert.Equal(t, "", installedVersion(nil))
	assert.Equal(t, "2.0", installedVersion([]types.AddonFolder{
		{ID: "A"},
		{ID: "B", Version: "2.0"},
		{ID: "C", Version: "3.0"},
	}))
}
