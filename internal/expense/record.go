// Package expense holds the expense domain: records, the in-memory store,
// and the aggregate computations derived from it.
package expense

import (
	"encoding/json"
	"fmt"
	"time"
)

// dateLayout is the on-disk and display format for expense dates.
const dateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day component. It marshals to and
// from ISO YYYY-MM-DD strings.
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar date. The result is anchored to UTC so
// that equal calendar dates compare equal regardless of the source location.
func NewDate(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an ISO YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

// MarshalJSON encodes the date as "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

// UnmarshalJSON decodes a "YYYY-MM-DD" string.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Record is one user-entered expense entry. Records are immutable once
// created: the store only ever adds and removes them.
type Record struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Amount      float64  `json:"amount"`
	Category    Category `json:"category"`
	Date        Date     `json:"date"`
}
