package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDefaultConfig(t *testing.T) {
	root := isolate(t)

	path, err := InitDefaultConfig()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "configs", "Default.yaml"), path)

	label, err := CurrentLabel()
	require.NoError(t, err)
	assert.Equal(t, DefaultLabel, label)

	again, err := InitDefaultConfig()
	assert.ErrorIs(t, err, os.ErrExist)
	assert.Equal(t, path, again)
}

func TestNoActiveConfig(t *testing.T) {
	isolate(t)

	_, err := CurrentLabel()
	assert.ErrorIs(t, err, ErrNoConfig)

	_, err = ActiveConfigPath()
	assert.ErrorIs(t, err, ErrNoConfig)
}

func TestProfileLifecycle(t *testing.T) {
	isolate(t)

	_, err := InitDefaultConfig()
	require.NoError(t, err)

	_, err = CreateConfig("golang")
	require.NoError(t, err)
	_, err = CreateConfig("golang")
	assert.Error(t, err, "duplicate label")

	require.NoError(t, SwitchConfig("golang"))
	list, err := ListConfigs()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Default", list[0].Label)
	assert.False(t, list[0].Active)
	assert.Equal(t, "golang", list[1].Label)
	assert.True(t, list[1].Active)

	require.NoError(t, RenameConfig("golang", "gophers"))
	label, err := CurrentLabel()
	require.NoError(t, err)
	assert.Equal(t, "gophers", label, "active label follows rename")

	require.NoError(t, RemoveConfig("gophers"))
	label, err = CurrentLabel()
	require.NoError(t, err)
	assert.Equal(t, DefaultLabel, label, "falls back to Default")

	_, err = ConfigPathByLabel("gophers")
	assert.Error(t, err)
}

func TestRemoveRules(t *testing.T) {
	isolate(t)

	_, err := InitDefaultConfig()
	require.NoError(t, err)
	assert.Error(t, RemoveConfig(DefaultLabel))
	assert.Error(t, RemoveConfig("missing"))
}

func TestRemoveActiveWithoutDefault(t *testing.T) {
	isolate(t)

	_, err := CreateConfig("solo")
	require.NoError(t, err)
	require.NoError(t, SwitchConfig("solo"))

	require.NoError(t, RemoveConfig("solo"))
	_, err = CurrentLabel()
	assert.ErrorIs(t, err, ErrNoConfig)
}

func TestLabelValidation(t *testing.T) {
	isolate(t)

	for _, label := range []string{"", "  ", "../escape", `a\b`, ".."} {
		_, err := CreateConfig(label)
		assert.Error(t, err, label)
	}

	assert.Error(t, SwitchConfig("nope"))
}

func TestLoadLabel(t *testing.T) {
	isolate(t)

	path, err := CreateConfig("fast")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("pages: 2\nsort: count\n"), 0644))

	cfg, err := LoadLabel("fast")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Pages)
	assert.Equal(t, "count", cfg.Sort)
	assert.Equal(t, 3.0, cfg.Delay)

	_, err = LoadLabel("missing")
	assert.Error(t, err)
}
