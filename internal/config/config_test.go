package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "cfg.yml")
	body := `
include: "**/*.py,**/*.go"
threads: 4
max_depth: 3
stage: content
filter_types:
  - python
  - json
include_directories: true
no_cache: true
`
	assert.NoError(t, os.WriteFile(p, []byte(body), 0o644))

	cfg, err := LoadFile(p)
	assert.NoError(t, err)
	if assert.NotNil(t, cfg.Include) {
		assert.Equal(t, "**/*.py,**/*.go", *cfg.Include)
	}
	if assert.NotNil(t, cfg.Threads) {
		assert.Equal(t, 4, *cfg.Threads)
	}
	if assert.NotNil(t, cfg.MaxDepth) {
		assert.Equal(t, 3, *cfg.MaxDepth)
	}
	if assert.NotNil(t, cfg.Stage) {
		assert.Equal(t, "content", *cfg.Stage)
	}
	assert.Equal(t, []string{"python", "json"}, cfg.FilterTypes)
	if assert.NotNil(t, cfg.IncludeDirs) {
		assert.True(t, *cfg.IncludeDirs)
	}
	if assert.NotNil(t, cfg.NoCache) {
		assert.True(t, *cfg.NoCache)
	}
	assert.Nil(t, cfg.Exclude)
	assert.Nil(t, cfg.NoColor)
	assert.Nil(t, cfg.NoSignature)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}

func TestLoadFileInvalidYAML(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.yml")
	assert.NoError(t, os.WriteFile(p, []byte("threads: [not an int"), 0o644))
	_, err := LoadFile(p)
	assert.Error(t, err)
}

func TestLoadLocalPrecedence(t *testing.T) {
	root := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(root, "filespect.yml"), []byte("threads: 2"), 0o644))
	assert.NoError(t, os.WriteFile(filepath.Join(root, ".filespect.yml"), []byte("threads: 8"), 0o644))

	cfg, err := LoadLocal(root)
	assert.NoError(t, err)
	if assert.NotNil(t, cfg.Threads) {
		// The dotfile wins when both exist.
		assert.Equal(t, 8, *cfg.Threads)
	}
}

func TestLoadLocalNone(t *testing.T) {
	_, err := LoadLocal(t.TempDir())
	assert.Error(t, err)
}

func TestLoadGlobalXDG(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)
	dir := filepath.Join(base, "filespect")
	assert.NoError(t, os.MkdirAll(dir, 0o755))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte("no_signature: true"), 0o644))

	cfg, err := LoadGlobal()
	assert.NoError(t, err)
	if assert.NotNil(t, cfg.NoSignature) {
		assert.True(t, *cfg.NoSignature)
	}
}

func TestLoadGlobalAbsent(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	_, err := LoadGlobal()
	assert.Error(t, err)
}
