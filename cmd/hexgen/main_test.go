package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/hexfield/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRenderPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "maps", "small.png")
	_, err := execute(t, "render", "--out", out, "--width", "120", "--height", "120", "--radius", "4")
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 120, img.Bounds().Dx())
	assert.Equal(t, 120, img.Bounds().Dy())
}

func TestRenderSVG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "small.svg")
	_, err := execute(t, "render", "-o", out, "--radius", "2", "--draw", "circle", "--noise", "simplex", "--seed", "9")
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, 19, strings.Count(string(data), "<circle"))
}

func TestRenderConfigFileWithOverrides(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "hexgen.yaml")
	out := filepath.Join(dir, "map.svg")
	require.NoError(t, os.WriteFile(cfgPath, []byte("render:\n  grid_radius: 1\n  orientation: flat\noutput:\n  path: "+out+"\n"), 0o644))

	_, err := execute(t, "render", "--config", cfgPath, "--shape", "triangle")
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	// triangle(1) holds three hexes
	assert.Equal(t, 3, strings.Count(string(data), "<polygon"))
}

func TestRenderRejectsBadFlags(t *testing.T) {
	_, err := execute(t, "render", "--out", filepath.Join(t.TempDir(), "x.png"), "--orientation", "sideways")
	assert.Error(t, err)

	_, err = execute(t, "render", "--out", filepath.Join(t.TempDir(), "x.gif"))
	assert.ErrorIs(t, err, config.ErrUnknownFormat)
}

func TestConfigCmd(t *testing.T) {
	out, err := execute(t, "config")
	require.NoError(t, err)

	cfg, err := config.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}
