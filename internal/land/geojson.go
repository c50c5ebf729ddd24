// Package land loads the reference land-mass geometry that the remit
// boundary is clipped against.
package land

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/zap"
)

// Format names a supported land-mass input encoding.
type Format string

const (
	FormatGeoJSON   Format = "geojson"
	FormatShapefile Format = "shapefile"
)

// Load reads the land-mass file at path in the given format and returns its
// polygonal feature geometries. The caller unions them into the single
// reference geometry.
func Load(path string, format Format) ([]geom.T, error) {
	switch format {
	case FormatGeoJSON:
		return LoadGeoJSON(path)
	case FormatShapefile:
		return LoadShapefile(path)
	default:
		return nil, eris.Errorf("land: unknown format %q", format)
	}
}

// LoadGeoJSON reads a GeoJSON FeatureCollection and returns the
// Polygon/MultiPolygon geometries of its features. A missing file, a
// top-level object that is not a FeatureCollection, or a collection with no
// usable polygon geometry are all fatal.
func LoadGeoJSON(path string) ([]geom.T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "land: read %s", path)
	}

	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, eris.Wrapf(err, "land: parse %s", path)
	}
	if envelope.Type != "FeatureCollection" {
		return nil, eris.Errorf("land: %s is a %q, want a FeatureCollection", path, envelope.Type)
	}

	var fc geojson.FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, eris.Wrapf(err, "land: parse feature collection %s", path)
	}

	var (
		geoms   []geom.T
		skipped int
	)
	for _, f := range fc.Features {
		switch g := f.Geometry.(type) {
		case *geom.Polygon, *geom.MultiPolygon:
			geoms = append(geoms, g)
		default:
			skipped++
		}
	}
	if skipped > 0 {
		zap.L().Debug("land: skipped non-polygon features", zap.Int("skipped", skipped))
	}
	if len(geoms) == 0 {
		return nil, eris.Errorf("land: no usable polygon features in %s", path)
	}

	zap.L().Info("land: loaded geojson", zap.String("path", path), zap.Int("features", len(geoms)))
	return geoms, nil
}
