package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const envTestKey = "RECIPE_SERVICE_ENV_FILE_TEST"

// unsetForTest clears key for the test and restores it afterwards.
func unsetForTest(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte(envTestKey+"=from-file\n"), 0o600))

	tests := []struct {
		name     string
		path     string
		explicit bool
		preset   string
		wantErr  bool
		want     string
		wantSet  bool
	}{
		{name: "loads file", path: envPath, want: "from-file", wantSet: true},
		{name: "environment wins", path: envPath, preset: "from-env", want: "from-env", wantSet: true},
		{name: "missing default ignored", path: filepath.Join(dir, "absent.env")},
		{name: "missing explicit file fails", path: filepath.Join(dir, "absent.env"), explicit: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unsetForTest(t, envTestKey)
			if tt.preset != "" {
				t.Setenv(envTestKey, tt.preset)
			}

			err := loadEnvFile(tt.path, tt.explicit)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			got, ok := os.LookupEnv(envTestKey)
			assert.Equal(t, tt.wantSet, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRootCmd_EnvFileFlag(t *testing.T) {
	unsetForTest(t, envTestKey)
	envPath := filepath.Join(t.TempDir(), "recipes.env")
	require.NoError(t, os.WriteFile(envPath, []byte(envTestKey+"=flag\n"), 0o600))

	ingredients, err := executeParse(t, "2 cups flour\n", "--env-file", envPath)
	require.NoError(t, err)
	assert.Len(t, ingredients, 1)
	assert.Equal(t, "flag", os.Getenv(envTestKey))

	_, err = executeParse(t, "2 cups flour\n", "--env-file", filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
