package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvDatabase, "")
	t.Setenv(EnvUsersFile, "")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("", "")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "ebookstore.db", cfg.Database)
	assert.Equal(t, "users.txt", cfg.UsersFile)
}

func TestLoad_ConfigFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "bookvault.yaml", "database: /data/shop.db\n")

	cfg, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, "/data/shop.db", cfg.Database)
	assert.Equal(t, DefaultUsersFile, cfg.UsersFile, "unset keys keep defaults")
}

func TestLoad_Precedence(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "bookvault.yaml", "database: from-yaml.db\nusers_file: from-yaml.txt\n")
	envPath := writeFile(t, dir, ".env", "BOOKVAULT_DB=from-dotenv.db\nBOOKVAULT_USERS=from-dotenv.txt\n")
	t.Setenv(EnvDatabase, "from-env.db")

	cfg, err := Load(cfgPath, envPath)
	require.NoError(t, err)
	assert.Equal(t, "from-env.db", cfg.Database)
	assert.Equal(t, "from-dotenv.txt", cfg.UsersFile)
}

func TestLoad_MissingEnvFileIgnored(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("", filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoad_BadYAML(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "bad.yaml", "database: [unterminated\n")

	_, err := Load(path, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}
