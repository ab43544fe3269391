// Package recorddb implements the temperature record store, a single
// SQLite table keyed on the calendar date of observation.
package recorddb

import (
	"database/sql"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/advaithhl/TemperatureMonitor/datearg"
)

// TableName of the temperature records table.
const TableName = "temperature"

// Record is one calendar date's pair of temperature observations.
// A nil observation was not taken that day.
type Record struct {
	Date    time.Time
	Morning *float64
	Evening *float64
}

// Column enumerates the record columns which may order a listing.
type Column string

const (
	ColumnDate    Column = "date_taken"
	ColumnMorning Column = "morning"
	ColumnEvening Column = "evening"
)

// ParseColumn maps a user-facing sort-column name to its Column.
func ParseColumn(name string) (Column, error) {
	switch name {
	case "date":
		return ColumnDate, nil
	case "morning":
		return ColumnMorning, nil
	case "evening":
		return ColumnEvening, nil
	default:
		return "", errors.Errorf("invalid sort column %q (expected date, morning, or evening)", name)
	}
}

// Direction of a listing's sort order.
type Direction string

const (
	Ascending  Direction = "ASC"
	Descending Direction = "DESC"
)

// Store wraps a SQLite database holding the temperature table. Each
// command invocation opens its own Store and closes it before exit;
// connections are never shared or pooled.
type Store struct {
	DB *sql.DB
}

// Open the SQLite database at |path|, creating the file if needed.
// The returned Store holds a single connection.
func Open(path string) (*Store, error) {
	var db, err = sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.WithMessage(err, "opening database")
	}
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.WithMessagef(err, "connecting to database %q", path)
	}
	log.WithField("path", path).Debug("opened database")

	return &Store{DB: db}, nil
}

// Close the Store's database.
func (s *Store) Close() error { return s.DB.Close() }

// CreateSchema creates the temperature table. It fails if the table
// already exists; classify that case with IsTableExists.
func (s *Store) CreateSchema() error {
	var _, err = s.DB.Exec(`
		CREATE TABLE ` + TableName + ` (
			date_taken DATE PRIMARY KEY,
			morning    DECIMAL(3,1),
			evening    DECIMAL(3,1)
		)`)
	return errors.WithMessage(err, "creating schema")
}

// Insert writes one Record and returns the affected-row count. The date
// column's primary key rejects a second record for the same date;
// classify that case with IsDuplicateDate.
func (s *Store) Insert(rec Record) (int64, error) {
	var txn, err = s.DB.Begin()
	if err != nil {
		return 0, errors.WithMessage(err, "beginning transaction")
	}

	result, err := txn.Exec(
		`INSERT INTO `+TableName+` (date_taken, morning, evening) VALUES (?, ?, ?)`,
		rec.Date.Format(datearg.Layout), nullable(rec.Morning), nullable(rec.Evening))
	if err != nil {
		_ = txn.Rollback()
		return 0, err
	}
	if err = txn.Commit(); err != nil {
		return 0, errors.WithMessage(err, "committing insert")
	}
	return result.RowsAffected()
}

// List returns all Records ordered by |col| in direction |dir|.
func (s *Store) List(col Column, dir Direction) ([]Record, error) {
	// |col| and |dir| are closed enums, never raw user input.
	var rows, err = s.DB.Query(fmt.Sprintf(
		`SELECT date_taken, morning, evening FROM %s ORDER BY %s %s`, TableName, col, dir))
	if err != nil {
		return nil, errors.WithMessage(err, "querying records")
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var date time.Time
		var morning, evening sql.NullFloat64

		// The driver yields time.Time for the DATE-declared column.
		if err = rows.Scan(&date, &morning, &evening); err != nil {
			return nil, errors.WithMessage(err, "scanning record")
		}
		out = append(out, Record{
			Date:    datearg.Midnight(date.In(time.Local)),
			Morning: fromNull(morning),
			Evening: fromNull(evening),
		})
	}
	return out, errors.WithMessage(rows.Err(), "iterating records")
}

// Delete removes the Record for |date|, if any, returning the
// affected-row count. Zero rows is not an error.
func (s *Store) Delete(date time.Time) (int64, error) {
	var txn, err = s.DB.Begin()
	if err != nil {
		return 0, errors.WithMessage(err, "beginning transaction")
	}

	result, err := txn.Exec(
		`DELETE FROM `+TableName+` WHERE date_taken = ?`, date.Format(datearg.Layout))
	if err != nil {
		_ = txn.Rollback()
		return 0, errors.WithMessage(err, "deleting record")
	}
	if err = txn.Commit(); err != nil {
		return 0, errors.WithMessage(err, "committing delete")
	}
	return result.RowsAffected()
}

// IsTableExists returns whether |err| is SQLite's complaint that the
// temperature table has already been created.
func IsTableExists(err error) bool {
	var sqliteErr sqlite3.Error
	return stderrors.As(err, &sqliteErr) &&
		sqliteErr.Code == sqlite3.ErrError &&
		strings.Contains(sqliteErr.Error(), "already exists")
}

// IsDuplicateDate returns whether |err| is a primary-key conflict on
// the date column.
func IsDuplicateDate(err error) bool {
	var sqliteErr sqlite3.Error
	return stderrors.As(err, &sqliteErr) &&
		(sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique)
}

func nullable(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func fromNull(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	var f = v.Float64
	return &f
}
