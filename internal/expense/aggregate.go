package expense

import (
	"time"

	"github.com/jinzhu/now"
)

// Total sums all record amounts.
func Total(records []Record) float64 {
	var sum float64
	for _, r := range records {
		sum += r.Amount
	}
	return sum
}

// MonthlyTotal sums the amounts of records dated in the same calendar month
// and year as ref.
func MonthlyTotal(records []Record, ref time.Time) float64 {
	// Record dates are UTC midnights, so the month window is computed on the
	// UTC calendar date of ref to keep the comparison location-independent.
	month := now.New(NewDate(ref).Time)
	start, end := month.BeginningOfMonth(), month.EndOfMonth()

	var sum float64
	for _, r := range records {
		if !r.Date.Before(start) && !r.Date.After(end) {
			sum += r.Amount
		}
	}
	return sum
}

// TopCategory returns the category with the largest summed amount. Ties go to
// the category encountered first during the summation pass, which makes the
// result deterministic for a given record order. The second return value is
// false when records is empty.
func TopCategory(records []Record) (Category, bool) {
	if len(records) == 0 {
		return "", false
	}

	sums := make(map[Category]float64, len(records))
	var seen []Category
	for _, r := range records {
		if _, ok := sums[r.Category]; !ok {
			seen = append(seen, r.Category)
		}
		sums[r.Category] += r.Amount
	}

	top := seen[0]
	for _, c := range seen[1:] {
		if sums[c] > sums[top] {
			top = c
		}
	}
	return top, true
}
