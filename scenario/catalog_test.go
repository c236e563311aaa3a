package scenario

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions() Options {
	return Options{Width: 64, Height: 48, Background: color.RGBA{A: 0xff}}
}

func TestCatalogBuiltins(t *testing.T) {
	c := NewCatalog(testOptions(), nil)
	titles := c.Titles()
	require.NotEmpty(t, titles)
	assert.Equal(t, "Bouncing ball", titles[0])
	assert.Equal(t, c.First().ID(), "bounce")

	s, ok := c.Get("plasma")
	require.True(t, ok)
	assert.Equal(t, "Plasma", s.Title())

	byTitle, ok := c.ByTitle("Gradient wave")
	require.True(t, ok)
	assert.Equal(t, "wave", byTitle.ID())

	_, ok = c.Get("nope")
	assert.False(t, ok)
}

func TestCatalogManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenarios.yaml")
	manifest := `scenarios:
  - id: orbit-heavy
    kind: orbit
    title: Orbit (5k)
    params:
      count: 5000
  - id: bounce
    kind: bounce
    params:
      radius: 8
`
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0o644))

	c := NewCatalog(testOptions(), nil)
	builtins := len(c.Titles())
	require.NoError(t, c.LoadManifest(path))

	heavy, ok := c.Get("orbit-heavy")
	require.True(t, ok)
	assert.Equal(t, "Orbit (5k)", heavy.Title())
	assert.Len(t, c.Titles(), builtins+1, "reusing a builtin id replaces, not appends")

	// Replaced builtin keeps its slot and falls back to id as title.
	replaced, ok := c.Get("bounce")
	require.True(t, ok)
	assert.Equal(t, "bounce", replaced.Title())
}

func TestCatalogManifestErrors(t *testing.T) {
	c := NewCatalog(testOptions(), nil)
	assert.NoError(t, c.LoadManifest(filepath.Join(t.TempDir(), "missing.yaml")), "absent manifest is fine")

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("scenarios:\n  - id: x\n    kind: warp\n"), 0o644))
	assert.Error(t, c.LoadManifest(bad), "unknown kind rejected")

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte(":\n\t-"), 0o644))
	assert.Error(t, c.LoadManifest(broken))
}

func TestRenderFrameDeterministic(t *testing.T) {
	c := NewCatalog(testOptions(), nil)
	for _, id := range []string{"bounce", "wave", "orbit", "plasma"} {
		s, ok := c.Get(id)
		require.True(t, ok)
		a := s.RenderFrame(17)
		b := s.RenderFrame(17)
		assert.Equal(t, a.Pix, b.Pix, "%s renders identically for the same frame", id)
		assert.Equal(t, 64, a.Bounds().Dx())
		assert.Equal(t, 48, a.Bounds().Dy())
		RecycleFrame(a)
		RecycleFrame(b)
	}
}
