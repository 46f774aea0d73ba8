package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "simple21.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, []string{"Paul", "Tim", "Lauren"}, cfg.Game.Opponents)
}

func TestLoadFullFile(t *testing.T) {
	path := writeConfig(t, `
game {
  human_name        = "Ada"
  opponents         = ["Bo", "Cy", "Di"]
  draw_limit        = 15
  visible_threshold = 8
  seed              = 1234
}

log {
  level = "debug"
  file  = "simple21.log"
}

simulation {
  sessions   = 500
  workers    = 2
  max_rounds = 30
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Ada", cfg.Game.HumanName)
	assert.Equal(t, []string{"Bo", "Cy", "Di"}, cfg.Game.Opponents)
	assert.Equal(t, 15, cfg.Game.DrawLimit)
	assert.Equal(t, 8, cfg.Game.VisibleThreshold)
	assert.Equal(t, int64(1234), cfg.Game.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "simple21.log", cfg.Log.File)
	assert.Equal(t, SimulationSettings{Sessions: 500, Workers: 2, MaxRounds: 30}, cfg.Simulation)
}

func TestLoadPartialFileAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
game {
  draw_limit = 17
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 17, cfg.Game.DrawLimit)
	assert.Equal(t, 10, cfg.Game.VisibleThreshold)
	assert.Equal(t, []string{"Paul", "Tim", "Lauren"}, cfg.Game.Opponents)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 64, cfg.Simulation.MaxRounds)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"syntax error", `game {`, "failed to parse"},
		{"unknown attribute", "game {\n  colour = 1\n}\n", "failed to decode"},
		{"bad draw limit", "game {\n  draw_limit = 30\n}\n", "draw_limit"},
		{"duplicate names", "game {\n  opponents = [\"Bo\", \"Bo\", \"Cy\"]\n}\n", "duplicate"},
		{"one opponent", "game {\n  opponents = [\"Paul\"]\n}\n", "exactly 3 opponents"},
		{"four opponents", "game {\n  opponents = [\"Paul\", \"Tim\", \"Lauren\", \"Bo\"]\n}\n", "exactly 3 opponents"},
		{"empty opponent name", "game {\n  opponents = [\"Paul\", \"\", \"Tim\"]\n}\n", "must not be empty"},
		{"human clashes with opponent", "game {\n  human_name = \"Tim\"\n}\n", "duplicate"},
		{"bad log level", "log {\n  level = \"loud\"\n}\n", "log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}
