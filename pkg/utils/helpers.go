package utils

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

var (
	zonePrefixRe  = regexp.MustCompile(`^\d+-`)
	leadingNumRe  = regexp.MustCompile(`^\s*(\d+)`)
	wardNumLeadRe = regexp.MustCompile(`^[\d\s-]+`)
)

// StripZonePrefix removes a leading "N-" index from a zone label, e.g. "3-Mathura" -> "Mathura"
func StripZonePrefix(zone string) string {
	return strings.TrimSpace(zonePrefixRe.ReplaceAllString(strings.TrimSpace(zone), ""))
}

// LeadingNumber extracts the leading ward number, e.g. "30-Krishna Nagar" -> 30
func LeadingNumber(s string) (int, bool) {
	m := leadingNumRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// StripWardNumber drops leading digits, dashes and spaces, e.g. "02-Ambedkar Nagar" -> "Ambedkar Nagar"
func StripWardNumber(ward string) string {
	return strings.TrimSpace(wardNumLeadRe.ReplaceAllString(ward, ""))
}

// ParseValue converts a cell to int or float64 when it looks numeric.
// A trailing percent sign is ignored so "45.50%" parses as 45.5.
func ParseValue(s string) interface{} {
	s = strings.TrimSpace(s)
	num := strings.TrimSuffix(s, "%")

	if i, err := strconv.Atoi(num); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(num, 64); err == nil {
		return f
	}
	return s
}

// Numeric converts supported types to float64. The bool is false for non-numeric values.
func Numeric(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case string:
		switch p := ParseValue(val).(type) {
		case int:
			return float64(p), true
		case float64:
			return p, true
		}
		return 0, false
	case nil:
		return 0, false
	default:
		rv := reflect.ValueOf(v)
		if rv.Kind() >= reflect.Int && rv.Kind() <= reflect.Float64 {
			return rv.Convert(reflect.TypeOf(float64(0))).Float(), true
		}
		return 0, false
	}
}

// Percent returns part/total*100, or 0 when total is 0
func Percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// FormatPercent renders a rate the way report tables show it, e.g. "66.67%"
func FormatPercent(rate float64, decimals int) string {
	return fmt.Sprintf("%.*f%%", decimals, rate)
}
