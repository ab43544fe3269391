package recorddb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCreateSchemaIsNotIdempotent(t *testing.T) {
	var store = newTestStore(t)

	var err = store.CreateSchema()
	require.Error(t, err)
	require.True(t, IsTableExists(err))
	require.False(t, IsDuplicateDate(err))
}

func TestInsertThenListRoundTrip(t *testing.T) {
	var store = newTestStore(t)

	var rec = Record{
		Date:    day(2024, 1, 1),
		Morning: f(36.5),
		Evening: f(37.0),
	}
	var n, err = store.Insert(rec)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	records, err := store.List(ColumnDate, Descending)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.True(t, records[0].Date.Equal(rec.Date))
	require.Equal(t, 36.5, *records[0].Morning)
	require.Equal(t, 37.0, *records[0].Evening)
}

func TestDuplicateDateIsRejected(t *testing.T) {
	var store = newTestStore(t)

	var _, err = store.Insert(Record{Date: day(2024, 1, 1), Morning: f(36.5), Evening: f(37.0)})
	require.NoError(t, err)

	_, err = store.Insert(Record{Date: day(2024, 1, 1), Morning: f(36.6), Evening: f(37.1)})
	require.Error(t, err)
	require.True(t, IsDuplicateDate(err))
	require.False(t, IsTableExists(err))

	// Exactly one row remains, holding the first insert's values.
	records, err := store.List(ColumnDate, Ascending)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, 36.5, *records[0].Morning)
}

func TestNullObservationsRoundTrip(t *testing.T) {
	var store = newTestStore(t)

	var _, err = store.Insert(Record{Date: day(2024, 1, 1), Morning: nil, Evening: f(37.0)})
	require.NoError(t, err)

	records, err := store.List(ColumnDate, Ascending)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Nil(t, records[0].Morning)
	require.Equal(t, 37.0, *records[0].Evening)
}

func TestListOrdering(t *testing.T) {
	var store = newTestStore(t)

	for _, rec := range []Record{
		{Date: day(2024, 1, 2), Morning: f(36.9), Evening: f(37.3)},
		{Date: day(2024, 1, 1), Morning: f(36.5), Evening: f(37.0)},
		{Date: day(2024, 1, 3), Morning: f(36.7), Evening: f(36.8)},
	} {
		var _, err = store.Insert(rec)
		require.NoError(t, err)
	}

	var cases = []struct {
		col    Column
		dir    Direction
		expect []string
	}{
		{ColumnDate, Ascending, []string{"2024-01-01", "2024-01-02", "2024-01-03"}},
		{ColumnDate, Descending, []string{"2024-01-03", "2024-01-02", "2024-01-01"}},
		{ColumnMorning, Ascending, []string{"2024-01-01", "2024-01-03", "2024-01-02"}},
		{ColumnMorning, Descending, []string{"2024-01-02", "2024-01-03", "2024-01-01"}},
		{ColumnEvening, Ascending, []string{"2024-01-03", "2024-01-01", "2024-01-02"}},
	}
	for _, tc := range cases {
		var records, err = store.List(tc.col, tc.dir)
		require.NoError(t, err)

		var got []string
		for _, rec := range records {
			got = append(got, rec.Date.Format("2006-01-02"))
		}
		require.Equal(t, tc.expect, got, "%s %s", tc.col, tc.dir)
	}
}

func TestListedDatesAreLocalMidnight(t *testing.T) {
	var store = newTestStore(t)

	var _, err = store.Insert(Record{Date: day(2024, 1, 5), Morning: f(36.5), Evening: f(37.0)})
	require.NoError(t, err)

	records, err := store.List(ColumnDate, Ascending)
	require.NoError(t, err)
	require.Len(t, records, 1)

	// The DATE column round-trips as a driver-level time.Time; List
	// must normalize it to midnight in the local zone.
	require.Equal(t, time.Local, records[0].Date.Location())
	require.Equal(t, "2024-01-05", records[0].Date.Format("2006-01-02"))

	var h, m, s = records[0].Date.Clock()
	require.Zero(t, h)
	require.Zero(t, m)
	require.Zero(t, s)
}

func TestDeleteReportsAffectedRows(t *testing.T) {
	var store = newTestStore(t)

	// Deleting from an empty table matches zero rows and is not an error.
	var n, err = store.Delete(day(2024, 1, 1))
	require.NoError(t, err)
	require.Zero(t, n)

	_, err = store.Insert(Record{Date: day(2024, 1, 1), Morning: f(36.5), Evening: f(37.0)})
	require.NoError(t, err)
	_, err = store.Insert(Record{Date: day(2024, 1, 2), Morning: f(36.6), Evening: f(37.1)})
	require.NoError(t, err)

	n, err = store.Delete(day(2024, 1, 1))
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	// Only the matching row was removed.
	records, err := store.List(ColumnDate, Ascending)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.True(t, records[0].Date.Equal(day(2024, 1, 2)))
}

func TestParseColumn(t *testing.T) {
	for name, expect := range map[string]Column{
		"date":    ColumnDate,
		"morning": ColumnMorning,
		"evening": ColumnEvening,
	} {
		var col, err = ParseColumn(name)
		require.NoError(t, err)
		require.Equal(t, expect, col)
	}

	var _, err = ParseColumn("bogus")
	require.ErrorContains(t, err, `invalid sort column "bogus"`)
}

func newTestStore(t *testing.T) *Store {
	var store, err = Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.CreateSchema())
	return store
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func f(v float64) *float64 { return &v }
