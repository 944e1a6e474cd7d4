package coerce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTime_ISO(t *testing.T) {
	got := ParseTime("2025-06-30")
	assert.Equal(t, 2025, got.Year())
	assert.Equal(t, time.June, got.Month())
	assert.Equal(t, 30, got.Day())
}

func TestParseTime_Quarters(t *testing.T) {
	cases := []struct {
		in    string
		month time.Month
	}{
		{"2025 Q1", time.January},
		{"2025 Q2", time.April},
		{"2025 q3", time.July},
		{"2025Q4", time.October},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got := ParseTime(tc.in)
			assert.Equal(t, 2025, got.Year())
			assert.Equal(t, tc.month, got.Month())
			assert.Equal(t, 1, got.Day())
		})
	}
}

func TestParseTime_Epoch(t *testing.T) {
	got := ParseTime(float64(1735689600)) // 2025-01-01T00:00:00Z
	assert.Equal(t, 2025, got.UTC().Year())
	assert.Equal(t, time.January, got.UTC().Month())
	assert.Equal(t, 1, got.UTC().Day())
}

func TestParseTime_AlreadyResolved(t *testing.T) {
	want := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, want, ParseTime(want))
}

func TestParseTime_NeverFails(t *testing.T) {
	fallback := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, fallback, ParseTimeIn(nil, fallback))
	assert.Equal(t, fallback, ParseTimeIn("not-a-date-at-all", fallback))
	assert.Equal(t, fallback, ParseTimeIn([]string{"x"}, fallback))
	// Default-fallback variants still return a concrete instant.
	assert.False(t, ParseTime(nil).IsZero())
	assert.False(t, ParseTime("???").IsZero())
}

func TestToRGB(t *testing.T) {
	assert.Equal(t, RGB{0xFF, 0xFF, 0xFF}, ToRGB("#FFF"))
	assert.Equal(t, ToRGB("#FFFFFF"), ToRGB("#FFF"))
	assert.Equal(t, RGB{0x0E, 0xA5, 0xE9}, ToRGB("#0EA5E9"))
	assert.Equal(t, RGB{0x0E, 0xA5, 0xE9}, ToRGB("0EA5E9"))
	assert.Equal(t, DefaultDark, ToRGB("bogus"))
	assert.Equal(t, DefaultDark, ToRGB(""))
	assert.Equal(t, DefaultDark, ToRGB("#12345"))
}

func TestRGBHex(t *testing.T) {
	assert.Equal(t, "0EA5E9", ToRGB("#0EA5E9").Hex())
	assert.Equal(t, "1B1B1B", DefaultDark.Hex())
}
