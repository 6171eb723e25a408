package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"securewipe/internal/config"
)

func TestCheckTargetProtectedPaths(t *testing.T) {
	cfg := config.Default()

	assert.Error(t, CheckTarget(cfg, "/"))
	assert.Error(t, CheckTarget(cfg, "/etc"))
	assert.Error(t, CheckTarget(cfg, "/etc/"))
	assert.Error(t, CheckTarget(cfg, "/boot/../etc"))

	assert.NoError(t, CheckTarget(cfg, "/tmp/scratch.bin"))
	assert.NoError(t, CheckTarget(cfg, "/etc/hosts"))
}

func TestCheckTargetCustomList(t *testing.T) {
	cfg := config.Default()
	cfg.Security.ProtectedPaths = []string{"/srv/data"}

	assert.Error(t, CheckTarget(cfg, "/srv/data"))
	assert.NoError(t, CheckTarget(cfg, "/etc"))
}

func TestCheckTargetNoProtectedPaths(t *testing.T) {
	cfg := config.Default()
	cfg.Security.ProtectedPaths = nil
	require.NoError(t, CheckTarget(cfg, "/"))
}
