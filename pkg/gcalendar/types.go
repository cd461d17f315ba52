package gcalendar

import "time"

// SourceProperty is the private extended property that links a calendar
// entry back to the marketplace event it was exported from.
const SourceProperty = "marketplaceEventId"

// CreateEventRequest is the input for creating an all-day calendar entry.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Location    string
	Date        time.Time // only the calendar day is used
	Timezone    string    // e.g. "Europe/Monaco"
	SourceID    string    // stored under SourceProperty
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID       string
	Summary  string
	HtmlLink string
	Location string
	Date     string // YYYY-MM-DD
}
