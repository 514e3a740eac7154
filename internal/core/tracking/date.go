package tracking

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a plain calendar date with no time-of-day and no timezone.
// Streak and rate math works exclusively on Dates, never on instants,
// because a completion logged at 23:58 server time may belong to a
// different calendar day in the user's timezone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a date in YYYY-MM-DD form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// ResolveToday returns the client-supplied local date when it parses as a
// valid calendar date, and the server's local calendar date of now otherwise.
// An unparseable clientDate is silently ignored: the override exists only to
// approximate the user's timezone and callers pass a pre-validated value.
func ResolveToday(clientDate string, now time.Time) Date {
	if clientDate != "" {
		if d, err := ParseDate(clientDate); err == nil {
			return d
		}
	}
	return DateOf(now)
}

func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// DayNumber is the number of days since the Unix epoch. Subtracting two
// DayNumbers gives the exact calendar-day distance regardless of DST.
func (d Date) DayNumber() int {
	return int(d.Time().Unix() / 86400)
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

func (d Date) Before(other Date) bool {
	return d.DayNumber() < other.DayNumber()
}

func (d Date) After(other Date) bool {
	return d.DayNumber() > other.DayNumber()
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) String() string {
	return d.Time().Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("invalid date literal %s", data)
	}
	parsed, err := ParseDate(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value stores the date as a DATE column.
func (d Date) Value() (driver.Value, error) {
	return d.Time(), nil
}

// Scan accepts DATE columns returned either as time.Time (pgx) or as
// text (sqlite).
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		parsed, err := ParseDate(v[:min(len(v), len(dateLayout))])
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	default:
		return fmt.Errorf("cannot scan %T into tracking.Date", src)
	}
}
