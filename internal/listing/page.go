package listing

// PageCount returns max(1, ceil(n/pageSize)). pageSize <= 0 is a programming
// error and panics; configuration validates it up front.
func PageCount(n, pageSize int) int {
	if pageSize <= 0 {
		panic(ErrInvalidPageSize)
	}
	if n <= 0 {
		return 1
	}
	return (n + pageSize - 1) / pageSize
}

// VisibleWindow returns items[(page-1)*pageSize : min(page*pageSize, len)].
// It does not clamp: a page outside [1, PageCount] yields an empty window.
// The returned slice shares backing storage but cannot be appended into it.
func VisibleWindow(items []Item, pageSize, page int) []Item {
	if pageSize <= 0 {
		panic(ErrInvalidPageSize)
	}
	if page < 1 {
		return []Item{}
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []Item{}
	}
	end := min(start+pageSize, len(items))
	return items[start:end:end]
}

// Advance moves page by direction (+1/-1), saturating at 1 and pageCount.
func Advance(page, direction, pageCount int) int {
	return Clamp(page+direction, pageCount)
}

// Clamp forces page into [1, pageCount].
func Clamp(page, pageCount int) int {
	if pageCount < 1 {
		pageCount = 1
	}
	if page < 1 {
		return 1
	}
	if page > pageCount {
		return pageCount
	}
	return page
}
