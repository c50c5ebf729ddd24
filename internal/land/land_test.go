package land

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonas-p/go-shp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

func writeGeoJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "land.geojson")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadGeoJSONUnionsFeatures(t *testing.T) {
	path := writeGeoJSON(t, `{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "properties": {"name": "a"},
			 "geometry": {"type": "Polygon", "coordinates": [[[0,0],[1,0],[1,1],[0,1],[0,0]]]}},
			{"type": "Feature", "properties": {"name": "b"},
			 "geometry": {"type": "MultiPolygon", "coordinates": [[[[2,2],[3,2],[3,3],[2,3],[2,2]]]]}}
		]
	}`)

	geoms, err := LoadGeoJSON(path)
	require.NoError(t, err)
	require.Len(t, geoms, 2)

	assert.IsType(t, &geom.Polygon{}, geoms[0])
	assert.IsType(t, &geom.MultiPolygon{}, geoms[1])
}

func TestLoadGeoJSONWrongTopLevelType(t *testing.T) {
	path := writeGeoJSON(t, `{"type": "Feature", "properties": {},
		"geometry": {"type": "Polygon", "coordinates": [[[0,0],[1,0],[1,1],[0,0]]]}}`)

	_, err := LoadGeoJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want a FeatureCollection")
}

func TestLoadGeoJSONNoUsableGeometry(t *testing.T) {
	path := writeGeoJSON(t, `{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "properties": {},
			 "geometry": {"type": "Point", "coordinates": [0, 0]}}
		]
	}`)

	_, err := LoadGeoJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no usable polygon features")
}

func TestLoadGeoJSONEmptyCollection(t *testing.T) {
	path := writeGeoJSON(t, `{"type": "FeatureCollection", "features": []}`)

	_, err := LoadGeoJSON(path)
	require.Error(t, err)
}

func TestLoadGeoJSONMissingFile(t *testing.T) {
	_, err := LoadGeoJSON(filepath.Join(t.TempDir(), "absent.geojson"))
	require.Error(t, err)
}

func TestLoadUnknownFormat(t *testing.T) {
	_, err := Load("whatever", Format("kml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestPolygonToMultiPolygon(t *testing.T) {
	poly := &shp.Polygon{
		NumParts: 2,
		Parts:    []int32{0, 5},
		Points: []shp.Point{
			// Ring 1
			{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0},
			// Ring 2
			{X: 2, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 3}, {X: 3, Y: 2}, {X: 2, Y: 2},
		},
	}

	g := polygonToMultiPolygon(poly)
	require.NotNil(t, g)

	mp, ok := g.(*geom.MultiPolygon)
	require.True(t, ok)
	assert.Equal(t, 2, mp.NumPolygons())
}

func TestPolygonToMultiPolygonEmpty(t *testing.T) {
	assert.Nil(t, polygonToMultiPolygon(nil))
	assert.Nil(t, polygonToMultiPolygon(&shp.Polygon{}))
}

func TestLoadShapefileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "land.shp")

	writer, err := shp.Create(path, shp.POLYGON)
	require.NoError(t, err)
	writer.Write(&shp.Polygon{
		NumParts: 1,
		Parts:    []int32{0},
		Points: []shp.Point{
			{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: 0},
		},
	})
	require.NoError(t, writer.Close())

	geoms, err := LoadShapefile(path)
	require.NoError(t, err)
	require.Len(t, geoms, 1)

	mp, ok := geoms[0].(*geom.MultiPolygon)
	require.True(t, ok)
	assert.Equal(t, 1, mp.NumPolygons())
}
