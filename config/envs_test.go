package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)

		assert.Equal(t, 8080, c.RESTPort)
		assert.Equal(t, "vinom-fog", c.JWTIssuer)
		assert.Equal(t, time.Hour, c.TokenTTL)
		assert.Equal(t, MazeDefaults{Height: 5, Width: 5, Vision: 3, PersistVisibility: true, ResponsiveBorder: true}, c.Maze)
		assert.Error(t, c.RequireServer())
	})

	t.Run("environment wins", func(t *testing.T) {
		t.Setenv("REST_PORT", "9090")
		t.Setenv("MAZE_HEIGHT", "12")
		t.Setenv("MAZE_PERSIST", "false")
		t.Setenv("TOKEN_TTL", "90s")
		t.Setenv("JWT_SECRET", "shh")

		c, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)
		assert.Equal(t, 9090, c.RESTPort)
		assert.Equal(t, 12, c.Maze.Height)
		assert.False(t, c.Maze.PersistVisibility)
		assert.Equal(t, 90*time.Second, c.TokenTTL)
		assert.NoError(t, c.RequireServer())
	})

	t.Run("dotenv file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("MAZE_VISION=7\nMAZE_SEED=42\n"), 0o600))
		t.Cleanup(func() {
			os.Unsetenv("MAZE_VISION")
			os.Unsetenv("MAZE_SEED")
		})

		c, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 7, c.Maze.Vision)
		assert.Equal(t, int64(42), c.Maze.Seed)
	})

	t.Run("bad values are reported", func(t *testing.T) {
		t.Setenv("MAZE_WIDTH", "wide")
		t.Setenv("MAZE_RESPONSIVE", "sometimes")
		t.Setenv("SESSION_IDLE_TIMEOUT", "soon")

		c, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "MAZE_WIDTH")
		assert.Contains(t, err.Error(), "MAZE_RESPONSIVE")
		assert.Contains(t, err.Error(), "SESSION_IDLE_TIMEOUT")
		assert.Equal(t, 5, c.Maze.Width)
	})
}
