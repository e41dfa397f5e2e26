package booking

import "sort"

// sortBookings orders bookings in place for the memory repository.
// Supported keys mirror the SQL implementation: date (default), created_at.
func sortBookings(bookings []*Booking, sortBy, sortOrder string) {
	desc := sortOrder == "DESC"

	less := func(a, b *Booking) bool {
		switch sortBy {
		case "created_at":
			return a.CreatedAt.Before(b.CreatedAt)
		default:
			if a.Date.Equal(b.Date) {
				return a.TimeSlot < b.TimeSlot
			}
			return a.Date.Before(b.Date)
		}
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		if desc {
			return less(bookings[j], bookings[i])
		}
		return less(bookings[i], bookings[j])
	})
}
