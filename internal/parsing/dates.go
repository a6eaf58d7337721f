// Package parsing holds small parsing and normalization helpers.
package parsing

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// NormalizeDate coerces a backend date value into yyyymmdd form.
//
// Values already in yyyymmdd form pass through untouched; anything else is
// run through dateparse, with the raw string returned when unparseable.
func NormalizeDate(d string) string {
	d = strings.TrimSpace(d)
	if d == "" {
		return ""
	}
	if isYyyyMmDd(d) {
		return d
	}

	t, err := dateparse.ParseAny(d)
	if err != nil {
		return d
	}
	return t.Format("20060102")
}

// TimestampToDate renders a unix timestamp (seconds) as a yyyymmdd UTC date.
func TimestampToDate(ts int64) string {
	if ts <= 0 {
		return ""
	}
	return time.Unix(ts, 0).UTC().Format("20060102")
}

func isYyyyMmDd(d string) bool {
	if len(d) != 8 {
		return false
	}
	for _, r := range d {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
