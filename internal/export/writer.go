// Package export writes the derived remit partition as a two-feature
// GeoJSON FeatureCollection.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/zap"
)

// Remit codes carried in the output feature properties.
const (
	RemitInside  = "LTW"
	RemitOutside = "GB_REST"
)

// Human-readable feature names.
const (
	NameInside  = "London TravelWatch area"
	NameOutside = "Rest of Great Britain"
)

// Write serializes the remit area and the rest-of-land geometry to path as
// a compact, ASCII-safe FeatureCollection with exactly two features. The
// file is fully overwritten.
func Write(path string, remit, rest geom.T) error {
	fc := &geojson.FeatureCollection{
		Features: []*geojson.Feature{
			{
				Geometry:   remit,
				Properties: map[string]interface{}{"name": NameInside, "remit": RemitInside},
			},
			{
				Geometry:   rest,
				Properties: map[string]interface{}{"name": NameOutside, "remit": RemitOutside},
			},
		},
	}

	data, err := json.Marshal(fc)
	if err != nil {
		return eris.Wrap(err, "export: marshal feature collection")
	}
	data = append(escapeNonASCII(data), '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return eris.Wrapf(err, "export: create output dir %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "export: write %s", path)
	}

	zap.L().Info("export: wrote feature collection", zap.String("path", path), zap.Int("bytes", len(data)))
	return nil
}

// Read parses a previously written FeatureCollection. Used by callers that
// want to verify or re-render an earlier run.
func Read(path string) (*geojson.FeatureCollection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "export: read %s", path)
	}
	var fc geojson.FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, eris.Wrapf(err, "export: parse %s", path)
	}
	return &fc, nil
}

// escapeNonASCII rewrites runes above 0x7F as \u escapes. Non-ASCII bytes
// only occur inside JSON strings, so the rewrite stays valid JSON.
func escapeNonASCII(in []byte) []byte {
	ascii := true
	for _, b := range in {
		if b >= utf8.RuneSelf {
			ascii = false
			break
		}
	}
	if ascii {
		return in
	}

	var buf bytes.Buffer
	buf.Grow(len(in))
	for _, r := range string(in) {
		switch {
		case r < utf8.RuneSelf:
			buf.WriteByte(byte(r))
		case r > 0xFFFF:
			r -= 0x10000
			fmt.Fprintf(&buf, `\u%04x\u%04x`, 0xD800+(r>>10), 0xDC00+(r&0x3FF))
		default:
			fmt.Fprintf(&buf, `\u%04x`, r)
		}
	}
	return buf.Bytes()
}
