/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resourcehub/hubctl/internal/access"
	"github.com/resourcehub/hubctl/internal/config"
	"github.com/resourcehub/hubctl/internal/hub"
	"github.com/resourcehub/hubctl/internal/session"
)

func useTempDirs(t *testing.T) {
	t.Helper()
	t.Setenv("HUBCTL_CONFIG_DIR", t.TempDir())
	t.Setenv("HUBCTL_STATE_DIR", t.TempDir())
	t.Setenv("HUBCTL_CACHE_DIR", t.TempDir())
	config.Load()
}

func TestVersionCommand(t *testing.T) {
	useTempDirs(t)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"version"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "hubctl v")
}

func TestWhoamiWithoutSession(t *testing.T) {
	useTempDirs(t)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"whoami"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Not logged in")
}

func TestRequireAction(t *testing.T) {
	useTempDirs(t)

	t.Run("unauthenticated", func(t *testing.T) {
		h, err := hub.New()
		require.NoError(t, err)
		defer h.Close()

		err = requireAction(h, access.ActionDelete)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not logged in")
	})

	t.Run("insufficient role", func(t *testing.T) {
		require.NoError(t, session.Save(&session.Session{Token: "tok", Roles: []string{access.RoleViewer}}))
		h, err := hub.New()
		require.NoError(t, err)
		defer h.Close()

		err = requireAction(h, access.ActionDelete)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "do not permit")

		assert.NoError(t, requireAction(h, access.ActionView))
	})

	t.Run("admin", func(t *testing.T) {
		require.NoError(t, session.Save(&session.Session{Token: "tok", Roles: []string{access.RoleAdmin}}))
		h, err := hub.New()
		require.NoError(t, err)
		defer h.Close()

		assert.NoError(t, requireAction(h, access.ActionDelete))
	})
}

func TestBrowseRejectsUnknownCollection(t *testing.T) {
	useTempDirs(t)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"browse", "nonsense"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown collection")
}
