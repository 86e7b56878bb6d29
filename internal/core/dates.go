package core

import (
	"fmt"
	"time"
)

// Wire layouts for the persisted document.
const (
	DateTimeLayout = "2006-01-02 15:04:05"
	DateLayout     = "2006-01-02"
)

type (
	// DateTime is a second-precision timestamp, persisted as
	// "YYYY-MM-DD HH:MM:SS". Orders carry one.
	DateTime struct {
		time.Time
	}

	// Date is a calendar date with no time component, persisted as
	// "YYYY-MM-DD". Expenses carry one.
	Date struct {
		time.Time
	}
)

// Now returns the current timestamp truncated to second precision.
func Now() DateTime {
	return DateTime{Time: time.Now().Truncate(time.Second)}
}

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar date.
func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), int(now.Month()), now.Day())
}

/// ParseDateTime parses a "YYYY-MM-DD HH:MM:SS" string.
func ParseDateTime(s string) (DateTime, error) {
	t, err := time.Parse(DateTimeLayout, s)
	if err != nil {
		return DateTime{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return DateTime{Time: t}, nil
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{Time: t}, nil
}

// DateOnly discards the time of day. Range comparisons on orders use this.
func (dt DateTime) DateOnly() Date {
	return NewDate(dt.Year(), int(dt.Month()), dt.Day())
}

func (dt DateTime) String() string {
	return dt.Format(DateTimeLayout)
}

func (dt DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + dt.Format(DateTimeLayout) + `"`), nil
}

// UnmarshalJSON fails loudly on a malformed timestamp so a corrupt
// document surfaces at load time instead of mid-report.
func (dt *DateTime) UnmarshalJSON(data []byte) error {
	s, err := unquote(data)
	if err != nil {
		return err
	}
	t, err := time.Parse(DateTimeLayout, s)
	if err != nil {
		return fmt.Errorf("parse order timestamp %q: %w", s, err)
	}
	dt.Time = t
	return nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s, err := unquote(data)
	if err != nil {
		return err
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return fmt.Errorf("parse date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// Before reports whether d falls strictly before other.
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

// After reports whether d falls strictly after other.
func (d Date) After(other Date) bool {
	return d.Time.After(other.Time)
}

// Next returns the following calendar day.
func (d Date) Next() Date {
	return Date{Time: d.AddDate(0, 0, 1)}
}

// AddDays returns the date shifted by n calendar days, negative to go back.
func (d Date) AddDays(n int) Date {
	return Date{Time: d.AddDate(0, 0, n)}
}

// DaysUntil returns the number of days from d to end, inclusive of both.
// Returns 0 when end precedes d.
func (d Date) DaysUntil(end Date) int {
	if end.Before(d) {
		return 0
	}
	return int(end.Sub(d.Time)/(24*time.Hour)) + 1
}

func unquote(data []byte) (string, error) {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return "", fmt.Errorf("expected JSON string, got %s", data)
	}
	return string(data[1 : len(data)-1]), nil
}
