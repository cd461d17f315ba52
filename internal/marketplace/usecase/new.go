package usecase

import (
	"context"
	"time"

	"ticket-marketplace/internal/marketplace/repository"
	"ticket-marketplace/internal/session"
	"ticket-marketplace/internal/validation"
	"ticket-marketplace/pkg/datemath"
	"ticket-marketplace/pkg/gcalendar"
	"ticket-marketplace/pkg/log"
)

// Calendar is the subset of the Google Calendar client used for exports.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	FindBySource(ctx context.Context, calendarID, sourceID string) (*gcalendar.Event, error)
}

// Options carries the optional settings of the use case.
type Options struct {
	AdminAddress string // always treated as staff
	CalendarID   string
	Timezone     string
}

// implUseCase is the private implementation of marketplace.UseCase.
type implUseCase struct {
	ledger    repository.Ledger
	tx        repository.TxBuilder
	sessions  *session.Store
	validator *validation.Validator
	dates     *datemath.Parser
	calendar  Calendar
	opts      Options
	now       func() time.Time
	l         log.Logger
}

// New creates a new marketplace UseCase implementation. calendar may be nil,
// in which case calendar export reports ErrCalendarDisabled.
func New(
	l log.Logger,
	ledger repository.Ledger,
	tx repository.TxBuilder,
	sessions *session.Store,
	dates *datemath.Parser,
	calendar Calendar,
	opts Options,
) *implUseCase {
	return &implUseCase{
		ledger:    ledger,
		tx:        tx,
		sessions:  sessions,
		validator: validation.New(),
		dates:     dates,
		calendar:  calendar,
		opts:      opts,
		now:       time.Now,
		l:         l,
	}
}
