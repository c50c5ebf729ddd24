package station

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stations.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFiltersAndCounts(t *testing.T) {
	path := writeCSV(t, `name,latitude,longitude,in_ltw_area
Waterloo,51.5031,-0.1132,true
Victoria,51.4952,-0.1441,TRUE
Clapham Junction,51.4645,-0.1705, True
Birmingham New Street,52.4778,-1.8985,false
Glasgow Central,55.8589,-4.2579,
Broken,not-a-number,-0.2,true
`)

	stations, stats, err := Load(path)
	require.NoError(t, err)

	assert.Len(t, stations, 3)
	assert.Equal(t, 3, stats.Accepted)
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 2, stats.Excluded)

	assert.Equal(t, "Waterloo", stations[0].Name)
	assert.InDelta(t, 51.5031, stations[0].Lat, 1e-9)
	assert.InDelta(t, -0.1132, stations[0].Lon, 1e-9)
}

func TestLoadStripsBOM(t *testing.T) {
	path := writeCSV(t, "\uFEFFname,latitude,longitude,in_ltw_area\n"+
		"A,51.50,-0.11,true\nB,51.49,-0.14,true\nC,51.46,-0.17,true\n")

	stations, stats, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, stations, 3)
	assert.Equal(t, 3, stats.Accepted)
}

func TestLoadTooFewStations(t *testing.T) {
	path := writeCSV(t, `name,latitude,longitude,in_ltw_area
A,51.50,-0.11,true
B,51.49,-0.14,true
C,51.46,-0.17,false
`)

	_, stats, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "need at least 3")
	assert.Equal(t, 2, stats.Accepted)
}

func TestLoadMissingColumn(t *testing.T) {
	path := writeCSV(t, `name,latitude,longitude
A,51.50,-0.11
`)

	_, _, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing required column "in_ltw_area"`)
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
}

func TestLoadSkipsOutOfRangeAndShortRows(t *testing.T) {
	path := writeCSV(t, `name,latitude,longitude,in_ltw_area
A,51.50,-0.11,true
B,51.49,-0.14,true
C,51.46,-0.17,true
TooFarNorth,95.0,-0.1,true
NoCoords,,,true
Short,51.0,,true
`)

	stations, stats, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, stations, 3)
	assert.Equal(t, 3, stats.Accepted)
	// out-of-range, empty coords, and the short row lacking coordinates
	assert.Equal(t, 3, stats.Skipped)
}
