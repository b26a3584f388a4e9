package expense

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// ValidationError reports a rejected form input. The store is left unchanged
// when one is returned.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// IDGenerator mints unique record ids. The default is ULID-based: ulid.Make
// folds a monotonic entropy source into the timestamp, so rapid successive
// additions cannot collide the way raw-timestamp ids would.
type IDGenerator func() string

// Option configures a Store at construction time.
type Option func(*Store)

// WithRecords seeds the store with previously persisted records, preserving
// their order.
func WithRecords(records []Record) Option {
	return func(s *Store) {
		s.records = append(s.records[:0], records...)
	}
}

// WithIDGenerator replaces the ULID id generator (tests use deterministic ids).
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Store) {
		s.newID = gen
	}
}

// WithClock replaces the wall clock used to default record dates.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		s.now = clock
	}
}

// Store is the sole source of truth for expense records. It is not safe for
// concurrent use; the application is single-threaded by construction (one
// TUI loop or one CLI invocation).
type Store struct {
	records []Record
	newID   IDGenerator
	now     func() time.Time
}

// NewStore creates a Store with a ULID id generator and the system clock,
// then applies opts.
func NewStore(opts ...Option) *Store {
	s := &Store{
		newID: func() string { return ulid.Make().String() },
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add validates the raw form inputs and, on success, prepends a new record
// dated today. It returns a *ValidationError for empty descriptions,
// non-numeric / non-finite / non-positive amounts, and unknown categories.
func (s *Store) Add(description, amount, category string) (Record, error) {
	return s.AddOn(description, amount, category, NewDate(s.now()))
}

// AddOn is Add with an explicit expense date.
func (s *Store) AddOn(description, amount, category string, date Date) (Record, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return Record{}, &ValidationError{Field: "description", Msg: "must not be empty"}
	}

	value, err := parseAmount(amount)
	if err != nil {
		return Record{}, err
	}

	cat, err := ParseCategory(category)
	if err != nil {
		return Record{}, &ValidationError{Field: "category", Msg: err.Error()}
	}

	rec := Record{
		ID:          s.newID(),
		Description: description,
		Amount:      value,
		Category:    cat,
		Date:        date,
	}
	s.records = append([]Record{rec}, s.records...)
	return rec, nil
}

func parseAmount(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, &ValidationError{Field: "amount", Msg: "must not be empty"}
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, &ValidationError{Field: "amount", Msg: fmt.Sprintf("%q is not a number", raw)}
	}
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return 0, &ValidationError{Field: "amount", Msg: "must be a positive number"}
	}
	return value, nil
}

// Remove deletes the record with the given id. Removing an absent id is a
// no-op and reports false.
func (s *Store) Remove(id string) bool {
	for i, rec := range s.records {
		if rec.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return true
		}
	}
	return false
}

// All returns a snapshot of the records, newest-first.
func (s *Store) All() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}
