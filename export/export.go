// Package export writes temperature records as semicolon-delimited text.
package export

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/advaithhl/TemperatureMonitor/datearg"
	"github.com/advaithhl/TemperatureMonitor/recorddb"
)

// Header is the first line of every export file.
const Header = "Date;Morning temperature;Evening temperature"

// WriteFile renders |records| to |path| on |fs| as UTF-8 text: the
// Header line, then one semicolon-delimited line per record. It returns
// the number of bytes written.
func WriteFile(fs afero.Fs, path string, records []recorddb.Record) (int64, error) {
	var buf bytes.Buffer

	buf.WriteString(Header)
	buf.WriteByte('\n')

	for _, rec := range records {
		fmt.Fprintf(&buf, "%s;%s;%s\n",
			rec.Date.Format(datearg.DisplayLayout),
			Value(rec.Morning, ""),
			Value(rec.Evening, ""))
	}

	if err := afero.WriteFile(fs, path, buf.Bytes(), 0644); err != nil {
		return 0, errors.WithMessagef(err, "writing export file %q", path)
	}
	return int64(buf.Len()), nil
}

// Value formats an observation with one fractional digit, or |empty|
// if the observation was not taken.
func Value(v *float64, empty string) string {
	if v == nil {
		return empty
	}
	return strconv.FormatFloat(*v, 'f', 1, 64)
}
