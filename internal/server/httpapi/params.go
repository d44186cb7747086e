package httpapi

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// queryInt reads an integer query parameter, returning fallback when the
// parameter is absent or malformed.
func queryInt(query url.Values, key string, fallback int) int {
	v := strings.TrimSpace(query.Get(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// queryDate reads a YYYY-MM-DD query parameter, returning nil when absent or
// malformed.
func queryDate(query url.Values, key string) *time.Time {
	v := strings.TrimSpace(query.Get(key))
	if v == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil
	}
	return &t
}

// monthParams extracts the optional month/year pair. Zero values are passed
// through; the service layer resolves them to the current calendar month.
func monthParams(query url.Values) (month, year int) {
	return queryInt(query, "month", 0), queryInt(query, "year", 0)
}
