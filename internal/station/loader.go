// Package station loads labeled station coordinates from CSV.
package station

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// MinStations is the smallest point set that can bound a polygon.
const MinStations = 3

// Station is a named point in WGS84 degrees.
type Station struct {
	Name string
	Lon  float64
	Lat  float64
}

// Stats counts the outcome of a CSV load for operator visibility.
type Stats struct {
	Accepted int // in-remit rows with valid coordinates
	Skipped  int // rows dropped for missing or unparseable coordinates
	Excluded int // rows not flagged in-remit
}

// Load reads the station CSV at path and returns the stations flagged as
// in-remit. Rows with missing or non-numeric coordinates are skipped and
// counted, never fatal; fewer than MinStations usable rows is fatal.
func Load(path string) ([]Station, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, eris.Wrapf(err, "station: open %s", path)
	}
	defer func() { _ = f.Close() }()

	stations, stats, err := parse(f)
	if err != nil {
		return nil, stats, err
	}

	zap.L().Info("station: loaded csv",
		zap.String("path", path),
		zap.Int("accepted", stats.Accepted),
		zap.Int("skipped", stats.Skipped),
		zap.Int("excluded", stats.Excluded),
	)

	if len(stations) < MinStations {
		return nil, stats, eris.Errorf("station: %d usable stations, need at least %d", len(stations), MinStations)
	}
	return stations, stats, nil
}

// parse reads station rows from r. The stream may carry a UTF-8 BOM.
func parse(r io.Reader) ([]Station, Stats, error) {
	reader := csv.NewReader(transform.NewReader(r, unicode.UTF8BOM.NewDecoder()))
	reader.FieldsPerRecord = -1 // allow variable fields

	header, err := reader.Read()
	if err != nil {
		return nil, Stats{}, eris.Wrap(err, "station: read header")
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, col := range []string{"name", "latitude", "longitude", "in_ltw_area"} {
		if _, ok := idx[col]; !ok {
			return nil, Stats{}, eris.Errorf("station: missing required column %q", col)
		}
	}

	var (
		stations []Station
		stats    Stats
	)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, stats, eris.Wrap(err, "station: read row")
		}

		if !strings.EqualFold(strings.TrimSpace(field(record, idx["in_ltw_area"])), "true") {
			stats.Excluded++
			continue
		}

		name := strings.TrimSpace(field(record, idx["name"]))
		lat, latErr := strconv.ParseFloat(strings.TrimSpace(field(record, idx["latitude"])), 64)
		lon, lonErr := strconv.ParseFloat(strings.TrimSpace(field(record, idx["longitude"])), 64)
		if latErr != nil || lonErr != nil {
			stats.Skipped++
			zap.L().Debug("station: skipping row with unparseable coordinates", zap.String("name", name))
			continue
		}
		if !validCoord(lat, lon) {
			stats.Skipped++
			zap.L().Debug("station: skipping row with out-of-range coordinates",
				zap.String("name", name), zap.Float64("lat", lat), zap.Float64("lon", lon))
			continue
		}

		stations = append(stations, Station{Name: name, Lon: lon, Lat: lat})
		stats.Accepted++
	}

	return stations, stats, nil
}

func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return record[i]
}

func validCoord(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
