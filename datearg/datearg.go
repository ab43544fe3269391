// Package datearg parses the date arguments accepted by tempmon commands.
//
// Three forms are recognized:
//   - the empty string, meaning today;
//   - "<N>d", meaning N days before today (eg "3d");
//   - a literal date in YYYY-MM-DD form.
package datearg

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Layout is the canonical calendar-date layout used throughout tempmon.
const Layout = "2006-01-02"

// DisplayLayout is the human-readable date layout of listings and exports.
const DisplayLayout = "02 Jan 2006"

// Parse maps a date argument to the calendar date it names, resolved
// against |now|. The returned time is truncated to midnight in now's
// location.
func Parse(arg string, now time.Time) (time.Time, error) {
	if arg == "" {
		return Midnight(now), nil
	}

	if n, ok := relativeDays(arg); ok {
		return Midnight(now).AddDate(0, 0, -n), nil
	}

	var t, err = time.ParseInLocation(Layout, arg, now.Location())
	if err != nil {
		return time.Time{}, errors.Errorf("invalid date %q (expected YYYY-MM-DD or <N>d)", arg)
	}
	return t, nil
}

// Midnight truncates |t| to the start of its calendar day.
func Midnight(t time.Time) time.Time {
	var y, m, d = t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// relativeDays matches the "<N>d" shorthand, returning N. N is
// digits-only; signed forms like "+3d" are not shorthand.
func relativeDays(arg string) (int, bool) {
	if !strings.HasSuffix(arg, "d") {
		return 0, false
	}
	var n, err = strconv.ParseUint(strings.TrimSuffix(arg, "d"), 10, 31)
	if err != nil {
		return 0, false
	}
	return int(n), true
}
