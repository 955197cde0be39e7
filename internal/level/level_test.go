package level

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raycast-dda/pkg/raycast"
)

func TestLoadJSON(t *testing.T) {
	require := require.New(t)
	lvl, err := Load(filepath.Join("testdata", "room.json"))
	require.NoError(err)

	require.Equal("room", lvl.Name)
	require.Equal(raycast.Size{W: 4, H: 3}, lvl.Size())
	require.Equal(Spawn{X: 1.5, Y: 1.5}, lvl.Spawn)
	require.NotNil(lvl.Floor)
	require.Nil(lvl.Ceiling)
	require.Equal(color.RGBA{R: 0x5c, G: 0x5c, B: 0x66, A: 0xff}, lvl.Materials[2])

	ray := lvl.Engine().Cast(raycast.Vec2{X: lvl.Spawn.X, Y: lvl.Spawn.Y}, lvl.Spawn.Angle, 10)
	require.True(ray.Hit)
	require.Equal(uint32(1), ray.Value)
	require.Equal(1.5, ray.Length)
}

func TestLoadYAMLNamesLevelAfterFile(t *testing.T) {
	require := require.New(t)
	lvl, err := Load(filepath.Join("testdata", "room.yaml"))
	require.NoError(err)

	require.Equal("room", lvl.Name)
	require.Equal(2.25, lvl.Spawn.X)
	require.Nil(lvl.Floor)
	require.NotNil(lvl.Ceiling)
	v, ok := lvl.Ceiling.CellAt(3, 2)
	require.True(ok)
	require.Equal(uint32(6), v)
	require.Contains(lvl.Materials, uint32(6))
}

func TestLoadErrors(t *testing.T) {
	t.Run("unknown extension", func(t *testing.T) {
		_, err := Load("room.txt")
		require.ErrorContains(t, err, "unsupported level file extension")
	})

	t.Run("missing file names the path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "gone.json")
		_, err := Load(path)
		require.ErrorIs(t, err, os.ErrNotExist)
		require.ErrorContains(t, err, path)
	})

	t.Run("validation failure names the path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yml")
		require.NoError(t, os.WriteFile(path, []byte("width: 2\nheight: 2\nwalls: [0, 0, 0]\n"), 0o644))
		_, err := Load(path)
		require.ErrorIs(t, err, ErrInvalid)
		require.ErrorContains(t, err, path)
	})
}

func TestParseValidation(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{"dimensions", `{"width":0,"height":2,"walls":[0]}`, "dimensions 0x2"},
		{"walls required", `{"width":1,"height":1,"spawn":{"x":0.5,"y":0.5}}`, "walls are required"},
		{"walls size", `{"width":2,"height":2,"walls":[0,0,0]}`, "walls has 3 cells, want 4"},
		{"spawn outside", `{"width":2,"height":1,"walls":[0,0],"spawn":{"x":2.5,"y":0.5}}`, "outside the 2x1 grid"},
		{"spawn in wall", `{"width":2,"height":1,"walls":[0,7],"spawn":{"x":1.5,"y":0.5}}`, "inside wall material 7"},
		{"floor size", `{"width":2,"height":1,"walls":[0,0],"spawn":{"x":0.5,"y":0.5},"floor":[1]}`, "floor"},
		{"material id", `{"width":1,"height":1,"walls":[0],"spawn":{"x":0.5,"y":0.5},"materials":{"stone":"#000000"}}`, "materials: id \"stone\""},
		{"material id range", `{"width":1,"height":1,"walls":[0],"spawn":{"x":0.5,"y":0.5},"materials":{"4294967295":"#ffffff"}}`, "id 4294967295 is above 255"},
		{"material id just past the cap", `{"width":1,"height":1,"walls":[0],"spawn":{"x":0.5,"y":0.5},"materials":{"256":"#ffffff"}}`, "id 256 is above 255"},
		{"material colour", `{"width":1,"height":1,"walls":[0],"spawn":{"x":0.5,"y":0.5},"materials":{"1":"red"}}`, "materials[1]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc), FormatJSON)
			require.ErrorIs(t, err, ErrInvalid)
			require.ErrorContains(t, err, tc.want)
		})
	}

	t.Run("layer size errors keep the grid sentinel", func(t *testing.T) {
		_, err := Parse([]byte(`{"width":2,"height":1,"walls":[0,0],"spawn":{"x":0.5,"y":0.5},"ceiling":[1,1,1]}`), FormatJSON)
		require.ErrorIs(t, err, raycast.ErrGridSize)
	})

	t.Run("largest material id is accepted", func(t *testing.T) {
		lvl, err := Parse([]byte(`{"width":1,"height":1,"walls":[0],"spawn":{"x":0.5,"y":0.5},"materials":{"255":"#ffffff"}}`), FormatJSON)
		require.NoError(t, err)
		require.Contains(t, lvl.Materials, uint32(MaxMaterialID))
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := Parse([]byte(`{"width":`), FormatJSON)
		require.ErrorContains(t, err, "failed to parse json")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("width: [1"), FormatYAML)
		require.ErrorContains(t, err, "failed to parse yaml")
	})
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#0A1b2C")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x0a, G: 0x1b, B: 0x2c, A: 0xff}, c)

	for _, bad := range []string{"", "0a1b2c", "#0a1b2", "#0a1b2cff", "#zzzzzz"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestFormatFor(t *testing.T) {
	for path, want := range map[string]Format{"a.json": FormatJSON, "b.YAML": FormatYAML, "dir/c.yml": FormatYAML} {
		got, err := FormatFor(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}
	assert.Equal(t, "yaml", FormatYAML.String())
}
