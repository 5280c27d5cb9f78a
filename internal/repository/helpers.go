package repository

import (
	"database/sql"
	"strconv"
	"strings"
	"time"
)

// dateLayout is the storage format for date-only columns.
const dateLayout = "2006-01-02"

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// nullableStr converts an optional string to a SQL value; "" stores NULL.
func nullableStr(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// strFromNull unwraps a sql.NullString, "" when NULL.
func strFromNull(s sql.NullString) string {
	if !s.Valid {
		return ""
	}
	return s.String
}

// weekdaysToCSV encodes a working-day set as "1,2,3,4,5" (time.Weekday values).
func weekdaysToCSV(days []time.Weekday) string {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(int(d))
	}
	return strings.Join(parts, ",")
}

// weekdaysFromCSV decodes a "1,2,3,4,5" working-day set. Malformed entries
// are skipped; config validation catches an empty result.
func weekdaysFromCSV(csv string) []time.Weekday {
	var days []time.Weekday
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > 6 {
			continue
		}
		days = append(days, time.Weekday(n))
	}
	return days
}
