package pagination

import "math"

// Window is the inclusive range of page numbers considered for links.
// End < Start means the window is empty.
type Window struct {
	Start int
	End   int
}

// PageCount returns ceil(total / limit). limit must be positive and total non-negative.
func PageCount(total, limit int) int {
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return pages
}

// Bounds computes the window of maxItems pages that keeps currentPage centred,
// clamped to [1, pageCount].
//
// When the window runs into page 1 the end is pushed out to maxItems rather than
// start+maxItems; when it runs past the last page it is pinned to the end.
func Bounds(currentPage, maxItems, pageCount int) Window {
	leftEdge := sub(currentPage, int(math.Round(float64(maxItems)/2)))

	start := 1
	if leftEdge > 0 {
		start = leftEdge
	}

	var end int
	// start+maxItems <= pageCount, rearranged so it cannot overflow near math.MaxInt
	if start <= sub(pageCount, maxItems) {
		if start > 1 {
			end = start + maxItems
		} else {
			end = maxItems
		}
	} else {
		end = pageCount
		start = 1
		if d := sub(pageCount, maxItems); d > 0 {
			start = d
		}
	}

	return Window{Start: start, End: end}
}

// sub returns a-b, saturating at math.MinInt and math.MaxInt.
func sub(a, b int) int {
	d := a - b
	switch {
	case b > 0 && d > a:
		return math.MinInt
	case b < 0 && d < a:
		return math.MaxInt
	}
	return d
}
