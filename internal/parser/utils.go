package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// CanonicalHeader lowercases a header, strips diacritics and collapses
// whitespace, so "Preço Unitario" and "preco  unitario" compare equal.
// The transformer chain is stateful, so it is built per call.
func CanonicalHeader(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if out, _, err := transform.String(t, s); err == nil {
		s = out
	}
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

var thousandsGroups = regexp.MustCompile(`^\d{1,3}([.,]\d{3})+$`)

// ParseInt converts a cell to an integer, tolerating thousands separators
// and the "12.0" form integer cells take after a float round-trip.
// Unparsable cells become 0.
func ParseInt(s string) int {
	s = strings.TrimSpace(s)
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	if thousandsGroups.MatchString(s) {
		clean := strings.NewReplacer(".", "", ",", "").Replace(s)
		if i, err := strconv.Atoi(clean); err == nil {
			return i
		}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

// ParseFloat converts a cell to a float, accepting both "1,234.56" and the
// Brazilian "1.234,56" convention. Returns nil when unparsable.
func ParseFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")
	switch {
	case lastComma >= 0 && lastDot >= 0:
		// Whichever separator comes last is the decimal mark.
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		s = strings.Replace(s, ",", ".", 1)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// dateLayouts are tried in order; day-first layouts come before the
// unambiguous ISO forms, resolving DD/MM vs MM/DD ambiguity as day-first.
var dateLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
	"02/01/2006 15:04:05",
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02/01/06",
}

// excelEpoch is day zero of the 1900 date system used by .xlsx serials.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// ParseDate parses a sale date day-first. Unparsable values yield nil, never
// an error; rows with nil dates stay in the fact table and are excluded from
// date-keyed groupings only.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return &d
		}
	}
	// Cells formatted as General come back as raw serial numbers.
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 && serial < 200000 {
		days := math.Floor(serial)
		d := excelEpoch.AddDate(0, 0, int(days))
		return &d
	}
	return nil
}
