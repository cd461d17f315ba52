package listing

import "strings"

// Filter returns the items where any display field contains query,
// case-insensitively: id, name, date, location, owner, ether price, status.
// A blank query returns a copy of items in the same order.
func Filter(items []Item, query string) []Item {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if q == "" || matches(it, q) {
			out = append(out, it.clone())
		}
	}
	return out
}

// matches expects q already lower-cased.
func matches(it Item, q string) bool {
	fields := [...]string{
		it.IDString(),
		it.Name,
		it.Date,
		it.Location,
		it.Owner,
		it.PriceEther(),
		string(it.Status()),
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
