package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("TAGCLOUD_TEST_WORDS=42\nTAGCLOUD_TEST_KEEP=file\n"), 0644))

	t.Setenv("ENV_PATH", "")
	t.Setenv("TAGCLOUD_TEST_KEEP", "process")
	t.Cleanup(func() { os.Unsetenv("TAGCLOUD_TEST_WORDS") })

	require.NoError(t, LoadDotEnv(path))

	assert.Equal(t, "42", os.Getenv("TAGCLOUD_TEST_WORDS"))
	assert.Equal(t, "process", os.Getenv("TAGCLOUD_TEST_KEEP"))
}

func TestLoadDotEnv_EnvPathOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.env")
	require.NoError(t, os.WriteFile(path, []byte("TAGCLOUD_TEST_OVERRIDE=yes\n"), 0644))

	t.Setenv("ENV_PATH", path)
	t.Cleanup(func() { os.Unsetenv("TAGCLOUD_TEST_OVERRIDE") })

	require.NoError(t, LoadDotEnv("does/not/exist.env"))
	assert.Equal(t, "yes", os.Getenv("TAGCLOUD_TEST_OVERRIDE"))
}

func TestLoadDotEnv_Missing(t *testing.T) {
	t.Setenv("ENV_PATH", "")

	err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestLookups(t *testing.T) {
	t.Setenv("TAGCLOUD_TEST_STR", "value")
	t.Setenv("TAGCLOUD_TEST_BOOL", "true")
	t.Setenv("TAGCLOUD_TEST_TTL", "90s")
	t.Setenv("TAGCLOUD_TEST_BAD_TTL", "soon")

	assert.Equal(t, "value", String("TAGCLOUD_TEST_STR", "x"))
	assert.Equal(t, "x", String("TAGCLOUD_TEST_UNSET", "x"))
	assert.True(t, Bool("TAGCLOUD_TEST_BOOL"))
	assert.False(t, Bool("TAGCLOUD_TEST_UNSET"))

	d, err := Duration("TAGCLOUD_TEST_TTL", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, d)

	d, err = Duration("TAGCLOUD_TEST_UNSET", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, d)

	_, err = Duration("TAGCLOUD_TEST_BAD_TTL", time.Minute)
	assert.Error(t, err)
}
