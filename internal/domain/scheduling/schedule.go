package scheduling

// DailySchedule is the fixed sequence of bookable times, in presentation
// order. The gap between 11:00 and 13:00 is the lunch break.
var DailySchedule = []string{
	"08:00",
	"09:00",
	"10:00",
	"11:00",
	"13:00",
	"14:00",
	"15:00",
	"16:00",
	"17:00",
}

// NormalizeSlot truncates a stored time-of-day to HH:MM. The store may
// return values with seconds ("10:00:00"); comparisons against the fixed
// schedule must happen on the truncated form.
func NormalizeSlot(slot string) string {
	if len(slot) > 5 {
		return slot[:5]
	}
	return slot
}

// SubtractBooked returns the daily schedule minus the given booked slots,
// preserving schedule order. Booked values are normalized before comparison.
func SubtractBooked(booked []string) []string {
	taken := make(map[string]struct{}, len(booked))
	for _, b := range booked {
		taken[NormalizeSlot(b)] = struct{}{}
	}

	available := make([]string, 0, len(DailySchedule))
	for _, slot := range DailySchedule {
		if _, ok := taken[slot]; !ok {
			available = append(available, slot)
		}
	}
	return available
}
