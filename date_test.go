package footprint

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in   string
		want Date
	}{
		{"2025-01-15", NewDate(2025, time.January, 15)},
		{"2025-1-15", NewDate(2025, time.January, 15)},
		{"2025/1/15", NewDate(2025, time.January, 15)},
		{" 2025-01-15 ", NewDate(2025, time.January, 15)},
		{"2025-01-15T10:30:00Z", NewDate(2025, time.January, 15)},
	}
	for _, tc := range testCases {
		got, err := ParseDate(tc.in)
		if err != nil {
			t.Errorf("ParseDate(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseDate_invalid(t *testing.T) {
	// Bare numbers beyond any day or month, like a lone year or a
	// digits-only timestamp, must not be read as short dates.
	for _, in := range []string{"", "not-a-date", "2025-13-45-1", "2024", "20240115", "13-05", "32"} {
		if _, err := ParseDate(in); err == nil {
			t.Errorf("ParseDate(%q) expected an error", in)
		}
	}
}

func TestDate_monthBoundaries(t *testing.T) {
	d := NewDate(2025, time.February, 14)

	if got := d.StartOfMonth(); got != NewDate(2025, time.February, 1) {
		t.Errorf("StartOfMonth() = %v", got)
	}
	if got := d.EndOfMonth(); got != NewDate(2025, time.February, 28) {
		t.Errorf("EndOfMonth() = %v", got)
	}
	if got := d.AddMonth(-1); got != NewDate(2025, time.January, 14) {
		t.Errorf("AddMonth(-1) = %v", got)
	}
	// Month arithmetic from January normalizes into the previous year.
	if got := NewDate(2025, time.January, 10).AddMonth(-1); got != NewDate(2024, time.December, 10) {
		t.Errorf("AddMonth(-1) across year = %v", got)
	}
}

func TestDate_yearMonth(t *testing.T) {
	if got := NewDate(2025, time.March, 7).YearMonth(); got != "2025-03" {
		t.Errorf("YearMonth() = %q, want %q", got, "2025-03")
	}
}

func TestDate_jsonRoundTrip(t *testing.T) {
	want := NewDate(2025, time.July, 1)
	data, err := json.Marshal(want)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2025-07-01"` {
		t.Errorf("marshal = %s", data)
	}
	var got Date
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("round trip = %v, want %v", got, want)
	}
}

func TestDate_zeroIsEmptyString(t *testing.T) {
	var zero Date
	if got := zero.String(); got != "" {
		t.Errorf("zero date String() = %q, want empty", got)
	}
}
