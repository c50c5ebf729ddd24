package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

func square(x, y, side float64) *geom.Polygon {
	return geom.NewPolygonFlat(geom.XY, []float64{
		x, y,
		x + side, y,
		x + side, y + side,
		x, y + side,
		x, y,
	}, []int{10})
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "remit.geojson")

	remit := square(0, 0, 1)
	rest := square(1, 0, 3)
	require.NoError(t, Write(path, remit, rest))

	fc, err := Read(path)
	require.NoError(t, err)
	require.Len(t, fc.Features, 2)

	assert.Equal(t, NameInside, fc.Features[0].Properties["name"])
	assert.Equal(t, RemitInside, fc.Features[0].Properties["remit"])
	assert.Equal(t, NameOutside, fc.Features[1].Properties["name"])
	assert.Equal(t, RemitOutside, fc.Features[1].Properties["remit"])

	got, ok := fc.Features[0].Geometry.(*geom.Polygon)
	require.True(t, ok)
	assert.Equal(t, remit.FlatCoords(), got.FlatCoords())
}

func TestWriteCompactSingleLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "remit.geojson")
	require.NoError(t, Write(path, square(0, 0, 1), square(2, 2, 1)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	body := strings.TrimRight(string(data), "\n")
	assert.NotContains(t, body, "\n")
	assert.NotContains(t, body, "  ")
}

func TestWriteOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "remit.geojson")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer than the real output would ever need to be, padded out"), 0644))

	require.NoError(t, Write(path, square(0, 0, 1), square(2, 2, 1)))

	fc, err := Read(path)
	require.NoError(t, err)
	assert.Len(t, fc.Features, 2)
}

func TestWriteEmptyRemitGeometry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "remit.geojson")
	require.NoError(t, Write(path, geom.NewPolygon(geom.XY), square(0, 0, 2)))

	fc, err := Read(path)
	require.NoError(t, err)
	require.Len(t, fc.Features, 2)

	got, ok := fc.Features[0].Geometry.(*geom.Polygon)
	require.True(t, ok)
	assert.Empty(t, got.FlatCoords())
}

func TestEscapeNonASCII(t *testing.T) {
	assert.Equal(t, `{"name":"plain"}`, string(escapeNonASCII([]byte(`{"name":"plain"}`))))
	assert.Equal(t, `{"name":"caf\u00e9"}`, string(escapeNonASCII([]byte(`{"name":"café"}`))))
	assert.Equal(t, `"\ud83d\ude00"`, string(escapeNonASCII([]byte(`"😀"`))))
}
