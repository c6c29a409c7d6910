// Package types implements special types for moneywise.
package types

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Month is a month in a specific year.
//
// The underlying time is always the first instant of the month in UTC.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month in which a time occurs, evaluated in UTC.
func MonthOf(t time.Time) Month {
	year, month, _ := t.UTC().Date()
	return NewMonth(year, month)
}

// ParseMonth parses a monthKey in "YYYY-MM" format.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, err
	}
	return MonthOf(t), nil
}

// String returns the monthKey of the month, formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// Key returns the monthKey for a time.
func Key(t time.Time) string {
	return MonthOf(t).String()
}

// MarshalJSON implements the json.Marshaler interface.
func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", m.String())), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Both "YYYY-MM" and RFC3339 timestamps are accepted, everything
// except year and month is ignored.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	if len(value) == len("2006-01") {
		month, err := ParseMonth(value)
		if err != nil {
			return err
		}
		*m = month
		return nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return err
	}

	*m = MonthOf(t)
	return nil
}

// Scan writes the value from the database.
func (m *Month) Scan(value any) (err error) {
	nullTime := &sql.NullTime{}
	err = nullTime.Scan(value)
	*m = Month(nullTime.Time)
	return err
}

// Value returns the value for the SQL driver to write to the database.
func (m Month) Value() (driver.Value, error) {
	return m.Time(), nil
}

// GormDataType defines the data type used by gorm the type.
func (Month) GormDataType() string {
	return "date"
}

// Time returns the first instant of the month.
func (m Month) Time() time.Time {
	year, month, _ := time.Time(m).Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns the first instant of the following month.
func (m Month) End() time.Time {
	return m.AddDate(0, 1).Time()
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(m.Time().AddDate(years, months, 0))
}

// Before reports whether the month m is before n.
func (m Month) Before(n Month) bool {
	return m.Time().Before(n.Time())
}

// After reports whether the month m is after n.
func (m Month) After(n Month) bool {
	return m.Time().After(n.Time())
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return m.Time().Equal(n.Time())
}

// Contains reports whether the time instant is in the month.
func (m Month) Contains(t time.Time) bool {
	return !t.Before(m.Time()) && t.Before(m.End())
}
