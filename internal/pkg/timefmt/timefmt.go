package timefmt

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	canonicalRegex = regexp.MustCompile(`^\d{2}:\d{2}$`)
	hoursRegex     = regexp.MustCompile(`^(\d+):(\d{2})$`)
	editTimeRegex  = regexp.MustCompile(`^([0-9]{1,2}):([0-9]{2})$`)
)

// Normalize converts a duration in any of the analyzer's representations
// (canonical "HH:MM", loose "H:M", raw seconds, decimal hours as seconds)
// into a zero-padded "HH:MM" display string. It is total: every input
// resolves to a string, since it sits on every render path.
func Normalize(raw string) string {
	if raw == "" {
		return "00:00"
	}

	// Already canonical: returned as-is, no range check.
	if canonicalRegex.MatchString(raw) {
		return raw
	}

	// Loose colon form, e.g. "9:5" or " 09:05 ". Each side is parsed
	// independently; a non-numeric side renders as "NaN", matching the
	// analyzer frontend it replaces.
	if strings.Contains(raw, ":") {
		parts := strings.SplitN(strings.TrimSpace(raw), ":", 3)
		minutes := ""
		if len(parts) > 1 {
			minutes = parts[1]
		}
		return padComponent(parts[0]) + ":" + padComponent(minutes)
	}

	// No colon: a raw seconds count.
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return "00:00"
	}
	total := int64(math.Floor(f))
	return fmt.Sprintf("%02d:%02d", total/3600, (total%3600)/60)
}

func padComponent(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "00"
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return "NaN"
	}
	return fmt.Sprintf("%02d", int64(math.Floor(f)))
}

var sixty = decimal.NewFromInt(60)

// Hours converts a canonical "HH:MM" string into decimal hours for chart
// magnitudes and sorting. It must be fed the output of Normalize, never the
// raw value, so displayed and plotted values always agree. Non-canonical
// input yields zero.
func Hours(canonical string) decimal.Decimal {
	m := hoursRegex.FindStringSubmatch(canonical)
	if m == nil {
		return decimal.Zero
	}
	hours, _ := strconv.ParseInt(m[1], 10, 64)
	minutes, _ := strconv.ParseInt(m[2], 10, 64)
	return decimal.NewFromInt(hours).Add(decimal.NewFromInt(minutes).Div(sixty))
}

// ValidEditTime reports whether s is acceptable as a proposed correction:
// strict "H:MM" or "HH:MM" with hours below 24 and minutes below 60.
// Deliberately stricter than Normalize, which tolerates anything at render
// time; corrections are rejected before they reach the ledger.
func ValidEditTime(s string) bool {
	m := editTimeRegex.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	return hours >= 0 && hours < 24 && minutes >= 0 && minutes < 60
}
