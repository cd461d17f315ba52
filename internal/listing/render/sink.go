package render

import "ticket-marketplace/internal/listing"

// Sink draws a listing page. It receives the visible window and the
// pagination metadata and owns all markup.
type Sink interface {
	Render(page listing.Page) error
}

// Placeholder returns the single-row message a sink shows instead of items,
// or "" when the page has items to show.
func Placeholder(page listing.Page, noun string) string {
	switch {
	case page.State == listing.StateLoading:
		return "Loading " + noun + "..."
	case page.Failed:
		return "Error loading " + noun + ". Please try again"
	case page.Empty():
		return "No " + noun + " found"
	default:
		return ""
	}
}
