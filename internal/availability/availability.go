package availability

import (
	"strings"
	"time"
)

// Slot pairs a display time label with its availability flag for a single day.
// Slot lists are derived per date and never cached across dates.
type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// Grouped splits a day's slots into morning and afternoon periods.
type Grouped struct {
	Morning   []Slot `json:"morning"`
	Afternoon []Slot `json:"afternoon"`
}

// weekdaySlots is the full half-hour schedule for a regular clinic day.
var weekdaySlots = []string{
	"09:00 AM",
	"09:30 AM",
	"10:00 AM",
	"10:30 AM",
	"11:00 AM",
	"11:30 AM",
	"01:00 PM",
	"01:30 PM",
	"02:00 PM",
	"02:30 PM",
	"03:00 PM",
	"03:30 PM",
	"04:00 PM",
	"04:30 PM",
}

// saturdaySlots is the reduced Saturday schedule.
var saturdaySlots = []string{
	"09:00 AM",
	"10:00 AM",
	"11:00 AM",
	"12:00 PM",
}

// Resolve returns the slot list for the given date.
// The clinic is closed on Sundays, runs a reduced schedule on Saturdays,
// and on weekdays marks a deterministic, date-dependent subset of slots as
// taken so the same date always resolves to the same availability.
func Resolve(date time.Time) []Slot {
	switch date.Weekday() {
	case time.Sunday:
		return []Slot{}
	case time.Saturday:
		slots := make([]Slot, len(saturdaySlots))
		for i, t := range saturdaySlots {
			slots[i] = Slot{Time: t, Available: true}
		}
		return slots
	}

	hash := date.Day() % 5
	slots := make([]Slot, len(weekdaySlots))
	for i, t := range weekdaySlots {
		slots[i] = Slot{Time: t, Available: (i+hash)%4 != 0}
	}
	return slots
}

// Group partitions slots into morning and afternoon periods.
// A slot whose label contains the AM marker belongs to the morning;
// order within each period follows the input list.
func Group(slots []Slot) Grouped {
	g := Grouped{
		Morning:   make([]Slot, 0, len(slots)),
		Afternoon: make([]Slot, 0, len(slots)),
	}
	for _, s := range slots {
		if strings.Contains(s.Time, "AM") {
			g.Morning = append(g.Morning, s)
		} else {
			g.Afternoon = append(g.Afternoon, s)
		}
	}
	return g
}
