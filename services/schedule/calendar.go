// Package schedule computes bookable slots from a worker's weekly timetable.
// Everything in here is pure: inputs in, ordered slots out, no I/O.
package schedule

import (
	"sort"

	"fundihub/models"
	"fundihub/utils"
)

// DefaultSlotMinutes is the slot granularity used when a worker has not set
// their own.
const DefaultSlotMinutes = 60

// FreeSlots enumerates the open slots for a worker on the given date.
//
// The timetable entry for the date's weekday is expanded into fixed-size
// slots; a date listed in nonAvailability yields no slots at all, and any
// slot whose start coincides with an existing booking is discarded. The
// result is ordered ascending by start time. A weekday with no timetable
// ranges is not an error, just an empty day.
//
// Rejecting past dates is the caller's job, not this function's.
func FreeSlots(
	timetable []models.DaySchedule,
	nonAvailability []models.NonAvailability,
	existingBookings []models.Booking,
	date string,
	slotMinutes int,
) ([]models.TimeSlot, error) {
	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, err
	}
	if slotMinutes <= 0 {
		slotMinutes = DefaultSlotMinutes
	}

	for _, na := range nonAvailability {
		if na.Date == date {
			return []models.TimeSlot{}, nil
		}
	}

	booked := make(map[string]bool, len(existingBookings))
	for _, b := range existingBookings {
		if b.Date == date && !b.Status.ReleasesSlot() {
			booked[b.Time] = true
		}
	}

	var ranges []models.TimeRange
	for _, ds := range timetable {
		if ds.Day == day.Weekday() {
			ranges = append(ranges, ds.Ranges...)
		}
	}
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].Start < ranges[j].Start })

	slots := []models.TimeSlot{}
	for _, r := range ranges {
		for start := r.Start; start+slotMinutes <= r.End; start += slotMinutes {
			clock := utils.MinutesToClock(start)
			if booked[clock] {
				continue
			}
			slots = append(slots, models.TimeSlot{
				Start: clock,
				End:   utils.MinutesToClock(start + slotMinutes),
			})
		}
	}
	return slots, nil
}

// Offers reports whether timeStr is the start of a slot the timetable offers
// on the given date, ignoring existing bookings.
func Offers(
	timetable []models.DaySchedule,
	nonAvailability []models.NonAvailability,
	date, timeStr string,
	slotMinutes int,
) (bool, error) {
	slots, err := FreeSlots(timetable, nonAvailability, nil, date, slotMinutes)
	if err != nil {
		return false, err
	}
	for _, s := range slots {
		if s.Start == timeStr {
			return true, nil
		}
	}
	return false, nil
}
