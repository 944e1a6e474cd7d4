// Package coerce provides tolerant conversion of the loosely-typed scalar
// values found in deck specifications: date-like values in several shapes
// (ISO strings, "2025 Q3" quarter shorthand, epoch numbers) and hex color
// triples. Every function here degrades to a documented default instead
// of returning an error.
package coerce

import (
	"encoding/json"
	"regexp"
	"strconv"
	"time"
)

// RGB is a color triple. Channels are 0-255.
type RGB struct {
	R, G, B uint8
}

// Hex returns the 6-character uppercase hex form without a leading '#'.
func (c RGB) Hex() string {
	const digits = "0123456789ABCDEF"
	b := []byte{
		digits[c.R>>4], digits[c.R&0xF],
		digits[c.G>>4], digits[c.G&0xF],
		digits[c.B>>4], digits[c.B&0xF],
	}
	return string(b)
}

// DefaultDark is the fallback for unparsable colors, matching the default
// body text color used by the renderer ("#1B1B1B").
var DefaultDark = RGB{0x1B, 0x1B, 0x1B}

var quarterRe = regexp.MustCompile(`^(\d{4})\s*[Qq]([1-4])$`)

// layouts tried in order for general date strings.
var layouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
	"01/02/2006",
	"2006-01",
}

// ParseTime resolves a date-like value to a concrete time. It accepts
// numbers (POSIX epoch seconds), time.Time (returned unchanged), strings in
// a handful of common layouts including the "YYYY Qn" quarter shorthand,
// and nil. It never fails: anything unrecognized resolves to time.Now().
func ParseTime(v any) time.Time {
	return ParseTimeIn(v, time.Now())
}

// ParseTimeIn is ParseTime with an explicit fallback instant, used where
// the "now" default must be deterministic.
func ParseTimeIn(v any, fallback time.Time) time.Time {
	switch x := v.(type) {
	case nil:
		return fallback
	case time.Time:
		return x
	case float64:
		return time.Unix(int64(x), 0).UTC()
	case int:
		return time.Unix(int64(x), 0).UTC()
	case int64:
		return time.Unix(x, 0).UTC()
	case json.Number:
		if f, err := x.Float64(); err == nil {
			return time.Unix(int64(f), 0).UTC()
		}
		return fallback
	case string:
		return parseTimeString(x, fallback)
	default:
		return fallback
	}
}

func parseTimeString(s string, fallback time.Time) time.Time {
	if m := quarterRe.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		q, _ := strconv.Atoi(m[2])
		month := time.Month((q-1)*3 + 1)
		return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return fallback
}

// ToRGB parses "#RGB" or "#RRGGBB" (leading '#' optional). Any other
// length or a bad digit yields DefaultDark rather than an error.
func ToRGB(s string) RGB {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return DefaultDark
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return DefaultDark
	}
	return RGB{uint8(v >> 16), uint8(v >> 8), uint8(v)}
}
