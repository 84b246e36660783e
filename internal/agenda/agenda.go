// Package agenda provides the calendar-side view over the client's
// local reminder records: the per-day slice, the global ordering, and
// the event-to-reminder promotion.
package agenda

import "sort"

// Reminder is a client-side reminder entry. Time is a display string
// exactly as the user entered it ("9:00 a.m."), not a parsed clock
// time.
type Reminder struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Time     string `json:"time"`
	Category string `json:"category"`
	Repeat   string `json:"repeat"`
	DateKey  string `json:"dateKey"`
}

// Event mirrors a community event the user can copy into their
// reminders.
type Event struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	DateKey  string `json:"dateKey"`
	Time     string `json:"time"`
	Location string `json:"location"`
	Contact  string `json:"contact"`
}

// ForDay returns the reminders whose DateKey matches dk exactly, in
// insertion order.
func ForDay(reminders []Reminder, dk string) []Reminder {
	var out []Reminder
	for _, r := range reminders {
		if r.DateKey == dk {
			out = append(out, r)
		}
	}
	return out
}

// SortAll returns a copy ordered by DateKey, then by the Time display
// string, both as plain string compares. The time compare is not
// chronological for non-padded 12-hour strings ("9:00 a.m." sorts
// after "10:00 a.m."); the client always displayed that ordering, so
// it is preserved here rather than fixed.
func SortAll(reminders []Reminder) []Reminder {
	out := make([]Reminder, len(reminders))
	copy(out, reminders)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DateKey != out[j].DateKey {
			return out[i].DateKey < out[j].DateKey
		}
		return out[i].Time < out[j].Time
	})
	return out
}

// RemoveByID returns a copy without the reminder carrying id. An
// unknown id is a silent no-op; the input slice is never mutated.
func RemoveByID(reminders []Reminder, id string) []Reminder {
	out := make([]Reminder, 0, len(reminders))
	for _, r := range reminders {
		if r.ID != id {
			out = append(out, r)
		}
	}
	return out
}

// PromoteEvent copies an event into a reminder. The copy gets an id
// derived from the event id and is always filed under the Event
// category with a one-off repeat.
func PromoteEvent(ev Event) Reminder {
	return Reminder{
		ID:       "event_" + ev.ID,
		Title:    ev.Title,
		Time:     ev.Time,
		Category: "Event",
		Repeat:   "Once",
		DateKey:  ev.DateKey,
	}
}
