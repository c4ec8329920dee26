package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "valid https",
			cfg:  Config{URL: "https://formal.example.com"},
		},
		{
			name: "valid http for local deployment",
			cfg:  Config{URL: "http://localhost:8000"},
		},
		{
			name:    "missing url",
			cfg:     Config{APIToken: "t"},
			wantErr: "url is required",
		},
		{
			name:    "bad scheme",
			cfg:     Config{URL: "ftp://example.com"},
			wantErr: "url must start with",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestNormalizeURL(t *testing.T) {
	cfg := Config{URL: "http://localhost:8000/"}
	cfg.NormalizeURL()
	assert.Equal(t, "http://localhost:8000", cfg.URL)

	cfg.NormalizeURL()
	assert.Equal(t, "http://localhost:8000", cfg.URL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("FML_URL", "http://env:8000")
	t.Setenv("FML_API_TOKEN", "")
	t.Setenv("FORMAL_API_TOKEN", "fallback-token")
	t.Setenv("FML_OUTPUT", "json")
	t.Setenv("FML_DEFAULT_TEMPLATE", "article")

	cfg := Config{URL: "http://file:8000", APIToken: "file-token"}
	cfg.LoadFromEnv()

	assert.Equal(t, "http://env:8000", cfg.URL)
	assert.Equal(t, "fallback-token", cfg.APIToken)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, "article", cfg.DefaultTemplate)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yml")

	original := &Config{
		URL:             "http://localhost:8000",
		APIToken:        "secret",
		OutputFormat:    "json",
		DefaultTemplate: "article",
	}
	require.NoError(t, original.Save(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestLoadWithEnvMissingFile(t *testing.T) {
	t.Setenv("FML_URL", "http://env-only:8000")

	cfg, err := LoadWithEnv(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, "http://env-only:8000", cfg.URL)
}

func TestDefaultConfigPathXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "fml", "config.yml"), DefaultConfigPath())
}
