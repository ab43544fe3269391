package chart

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/advaithhl/TemperatureMonitor/recorddb"
)

func TestSaveName(t *testing.T) {
	var now = time.Date(2024, 3, 15, 17, 0, 0, 0, time.UTC)
	require.Equal(t, "temperature_2024-03-15.png", SaveName(now))
}

func TestRenderWritesPNG(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "chart.png")

	var err = Render([]recorddb.Record{
		{Date: day(2024, 1, 1), Morning: f(98.2), Evening: f(98.9)},
		{Date: day(2024, 1, 2), Morning: f(98.4), Evening: f(99.1)},
		{Date: day(2024, 1, 3), Morning: nil, Evening: f(98.7)},
	}, path)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.NotZero(t, info.Size())
}

func TestRenderEmptySet(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "chart.png")
	require.NoError(t, Render(nil, path))
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func f(v float64) *float64 { return &v }
