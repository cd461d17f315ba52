package datemath

import (
	"fmt"
	"strings"
	"time"
)

// Parser interprets event dates in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Monaco"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// ParseEventDate parses a YYYY-MM-DD event date as midnight in the parser's timezone.
func (p *Parser) ParseEventDate(date string) (time.Time, error) {
	t, err := time.ParseInLocation(EventDateLayout, strings.TrimSpace(date), p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid event date %q: %w", date, err)
	}
	return t, nil
}

// HasEnded reports whether the whole event day lies before now.
// Unparseable dates never end: the ledger stores them as opaque strings.
func (p *Parser) HasEnded(date string, now time.Time) bool {
	start, err := p.ParseEventDate(date)
	if err != nil {
		return false
	}
	return now.After(p.EndOfDay(start))
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
