package pricing

import (
	"slices"

	"carhire/pkg/model"
)

// maxSpanDays bounds how far a single stored booking is expanded, so a
// corrupt endDate cannot blow up UnavailableDates.
const maxSpanDays = 366 * 2

func blocks(b *model.Booking) bool {
	return b != nil && b.Status != model.StatusCancelled
}

// IsDateUnavailable reports whether date falls inside the inclusive
// [StartDate, EndDate] of any non-cancelled booking. YYYY-MM-DD strings
// order the same way as the dates they name.
func IsDateUnavailable(bookings []*model.Booking, date string) bool {
	for _, b := range bookings {
		if !blocks(b) {
			continue
		}
		if date >= b.StartDate && date <= b.EndDate {
			return true
		}
	}
	return false
}

// RangeConflicts reports whether the inclusive range [start, end] intersects
// any non-cancelled booking.
func RangeConflicts(bookings []*model.Booking, start, end string) bool {
	for _, b := range bookings {
		if !blocks(b) {
			continue
		}
		if start <= b.EndDate && end >= b.StartDate {
			return true
		}
	}
	return false
}

// UnavailableDates expands every blocking booking into its dates and returns
// them sorted without duplicates. Bookings with unparseable dates are skipped.
func UnavailableDates(bookings []*model.Booking) []string {
	seen := make(map[string]struct{})
	out := []string{}

	for _, b := range bookings {
		if !blocks(b) {
			continue
		}
		start, err := ParseDate(b.StartDate)
		if err != nil {
			continue
		}
		end, err := ParseDate(b.EndDate)
		if err != nil || end.Before(start) {
			continue
		}

		for d, n := start, 0; !d.After(end) && n <= maxSpanDays; d, n = d.AddDate(0, 0, 1), n+1 {
			key := d.Format("2006-01-02")
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, key)
		}
	}

	slices.Sort(out)
	return out
}
