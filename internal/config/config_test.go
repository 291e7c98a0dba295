package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
default: starrail
profiles:
  starrail:
    path: C:\Games\Star Rail\Game\StarRail.exe
    process: StarRail
    window: 崩坏：星穹铁道
    class: UnityWndClass
  genshin:
    path: C:\Games\Genshin Impact\YuanShen.exe
    process: YuanShen
    window: 原神
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sample))
	require.NoError(t, err)
	assert.Equal(t, "starrail", f.Default)
	assert.Equal(t, []string{"genshin", "starrail"}, f.Names())
	assert.Equal(t, "UnityWndClass", f.Profiles["starrail"].Class)
	assert.Empty(t, f.Profiles["genshin"].Class)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("profiles: [not, a, map"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, f.Profiles, 2)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestResolve(t *testing.T) {
	f, err := Parse([]byte(sample))
	require.NoError(t, err)

	p, err := f.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "StarRail", p.Process)

	p, err = f.Resolve("genshin")
	require.NoError(t, err)
	assert.Equal(t, "YuanShen", p.Process)

	_, err = f.Resolve("zelda")
	assert.ErrorContains(t, err, "unknown profile")
}

func TestResolve_SingleProfileWithoutDefault(t *testing.T) {
	f := &File{Profiles: map[string]Profile{"only": {Process: "only"}}}
	p, err := f.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "only", p.Process)
}

func TestResolve_Ambiguous(t *testing.T) {
	f := &File{Profiles: map[string]Profile{"a": {}, "b": {}}}
	_, err := f.Resolve("")
	assert.ErrorIs(t, err, ErrNoProfile)
}

func TestMerge(t *testing.T) {
	base := Profile{Path: "a.exe", Process: "a", Window: "A", Class: "C"}
	got := base.Merge(Profile{Window: "B"})
	assert.Equal(t, Profile{Path: "a.exe", Process: "a", Window: "B", Class: "C"}, got)
	assert.Equal(t, base, base.Merge(Profile{}))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Profile{Path: "a.exe", Process: "a", Window: "A"}.Validate())
	assert.ErrorContains(t, Profile{Process: "a", Window: "A"}.Validate(), "--path")
	assert.ErrorContains(t, Profile{Path: "a.exe", Window: "A"}.Validate(), "--process")
	assert.ErrorContains(t, Profile{Path: "a.exe", Process: "a"}.Validate(), "--window")
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, "config.yaml", filepath.Base(DefaultPath()))
}
