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
	path := filepath.Join(t.TempDir(), "handrank.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		body    string
		want    *Config
		wantErr bool
	}{
		{
			name: "full file",
			body: `
log_level = "debug"
server {
  address = "0.0.0.0:9000"
  workers = 4
}
`,
			want: &Config{
				LogLevel: "debug",
				Server:   &ServerSettings{Address: "0.0.0.0:9000", Workers: 4},
			},
		},
		{
			name: "defaults for missing server block",
			body: `log_level = "warn"`,
			want: &Config{
				LogLevel: "warn",
				Server:   &ServerSettings{Address: defaultAddress},
			},
		},
		{
			name: "empty file",
			body: ``,
			want: Default(),
		},
		{
			name:    "syntax error",
			body:    `log_level = `,
			wantErr: true,
		},
		{
			name:    "unknown attribute",
			body:    `colour = "red"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := Load(writeConfig(t, tt.body))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestValidate(t *testing.T) {
	t.Parallel()
	require.NoError(t, Default().Validate())

	bad := Default()
	bad.LogLevel = "loud"
	assert.Error(t, bad.Validate())

	bad = Default()
	bad.Server.Address = ""
	assert.Error(t, bad.Validate())

	bad = Default()
	bad.Server.Workers = -1
	assert.Error(t, bad.Validate())
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvAddr, "127.0.0.1:7000")
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvWorkers, "3")

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv())
	assert.Equal(t, "127.0.0.1:7000", cfg.Server.Address)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, 3, cfg.Server.Workers)

	t.Setenv(EnvWorkers, "many")
	assert.Error(t, Default().ApplyEnv())
}
