package usecase

import (
	"context"
	"fmt"
	"strconv"

	"ticket-marketplace/internal/marketplace"
	"ticket-marketplace/pkg/ethunit"
	"ticket-marketplace/pkg/gcalendar"
)

// ExportEventToCalendar adds an event to the staff calendar as an all-day
// entry. Exporting the same event twice returns the existing entry.
func (uc *implUseCase) ExportEventToCalendar(ctx context.Context, eventID uint64) (marketplace.CalendarExportOutput, error) {
	if uc.calendar == nil {
		return marketplace.CalendarExportOutput{}, marketplace.ErrCalendarDisabled
	}

	event, err := uc.findEvent(ctx, eventID)
	if err != nil {
		return marketplace.CalendarExportOutput{}, err
	}
	day, err := uc.dates.ParseEventDate(event.EventDate)
	if err != nil {
		return marketplace.CalendarExportOutput{}, fmt.Errorf("%w: %v", marketplace.ErrInvalidInput, err)
	}

	source := strconv.FormatUint(event.EventID, 10)
	existing, err := uc.calendar.FindBySource(ctx, uc.opts.CalendarID, source)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ExportEventToCalendar FindBySource: %v", err)
		return marketplace.CalendarExportOutput{}, fmt.Errorf("%w: %v", marketplace.ErrCalendarFailed, err)
	}
	if existing != nil {
		uc.l.Infof(ctx, "Event %d already exported as %s", event.EventID, existing.ID)
		return marketplace.CalendarExportOutput{
			EventID:         event.EventID,
			CalendarEventID: existing.ID,
			HTMLLink:        existing.HtmlLink,
			Start:           day,
		}, nil
	}

	description := fmt.Sprintf("Ticket price: %s ETH\nTickets available: %d",
		ethunit.FormatEther(event.Price), event.AvailableTickets)
	created, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.opts.CalendarID,
		Summary:     event.EventName,
		Description: description,
		Location:    event.EventLocation,
		Date:        day,
		Timezone:    uc.opts.Timezone,
		SourceID:    source,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ExportEventToCalendar CreateEvent: %v", err)
		return marketplace.CalendarExportOutput{}, fmt.Errorf("%w: %v", marketplace.ErrCalendarFailed, err)
	}

	return marketplace.CalendarExportOutput{
		EventID:         event.EventID,
		CalendarEventID: created.ID,
		HTMLLink:        created.HtmlLink,
		Start:           day,
	}, nil
}
