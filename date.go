package footprint

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateFormat is the canonical ISO-8601 form used everywhere a date is written.
const DateFormat = "2006-01-02"

// readDateFormats are the accepted forms when reading a date back. The first
// one is permissive enough to accept single-digit months and days.
var readDateFormats = []string{
	"2006-1-2",
	"2006/1/2",
	"2006-01-02T15:04:05.000-0700",
	time.RFC3339,
}

// Date represents a calendar date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// String formats the date in the canonical ISO-8601 form, or "" for the zero date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.time().Format(DateFormat)
}

// YearMonth returns the "YYYY-MM" bucket the date belongs to.
func (d Date) YearMonth() string { return d.time().Format("2006-01") }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool {
	return d.y == 0 && d.m == 0 && d.d == 0
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Format returns a textual representation of the date value formatted
// according to the layout defined by the argument. See [time.Format].
func (d Date) Format(format string) string { return d.time().Format(format) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// AddMonth returns a new Date with the given number of months added.
func (d Date) AddMonth(i int) Date { return NewDate(d.y, d.m+time.Month(i), d.d) }

// StartOfMonth returns the first day of the month containing d.
func (d Date) StartOfMonth() Date { return NewDate(d.y, d.m, 1) }

// EndOfMonth returns the last day of the month containing d.
func (d Date) EndOfMonth() Date { return NewDate(d.y, d.m+1, 0) }

var (
	relativeDateRE = regexp.MustCompile(`^([+-])(\d+)([dmy])$`)
	monthDayDateRE = regexp.MustCompile(`^(?:(\d+)-)?(\d+)$`)
)

// ParseDate parses a Date from a string. It is lenient and accepts forms
// like "2025-7-1", a short "[MM-]DD" relative to the current month, and
// relative offsets like "-1d", "+2m" or "-1y". "0d" is today.
func ParseDate(str string) (Date, error) {
	str = strings.TrimSpace(str)

	if str == "0d" {
		return Today(), nil
	}

	// Relative offset (e.g. -1d, +2m); the sign is mandatory.
	if match := relativeDateRE.FindStringSubmatch(str); match != nil {
		num, err := strconv.Atoi(match[2])
		if err != nil {
			// This should not happen given the regex.
			return Date{}, fmt.Errorf("invalid number in relative date %q: %w", str, err)
		}
		if match[1] == "-" {
			num = -num
		}

		today := Today()
		switch match[3] {
		case "d":
			return today.Add(num), nil
		case "m":
			return today.AddMonth(num), nil
		case "y":
			return NewDate(today.Year()+num, today.Month(), today.Day()), nil
		}
	}

	// [MM-]DD form (e.g. 27, 8-27). Day 0 means the last day of the previous
	// month. Numbers beyond any day or month of a calendar, like "2024" or
	// "20240115", are not short dates: they fall through to the full
	// layouts, which reject them.
	if match := monthDayDateRE.FindStringSubmatch(str); match != nil {
		day, errDay := strconv.Atoi(match[2])
		month, errMonth := 0, error(nil)
		if match[1] != "" {
			month, errMonth = strconv.Atoi(match[1])
		}
		if errDay == nil && errMonth == nil && day <= 31 && month <= 12 {
			today := Today()
			y, m := today.Year(), today.Month()
			if match[1] != "" {
				if month == 0 {
					y--
					m = time.December
				} else {
					m = time.Month(month)
				}
			}
			return NewDate(y, m, day), nil
		}
	}

	for _, layout := range readDateFormats {
		if on, err := time.Parse(layout, str); err == nil {
			return NewDate(on.Date()), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q want format %q", str, DateFormat)
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON unmarshals a date from a JSON string, expecting the canonical form.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	if strings.TrimSpace(str) == "" {
		*d = Date{}
		return nil
	}
	on, err := ParseDate(str)
	if err != nil {
		return fmt.Errorf("invalid date %q in data file, want format %q", str, DateFormat)
	}
	*d = on
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	str := d.String()
	return json.Marshal(&str)
}

var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
