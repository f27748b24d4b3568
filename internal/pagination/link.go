package pagination

import (
	"strconv"
	"strings"
)

const pageKey = "page="

// Link is a page number paired with the query string that selects it.
type Link struct {
	Value int    `json:"value"`
	URI   string `json:"uri"`
}

func (p *Paginator) link(page int) Link {
	return Link{
		Value: page,
		URI:   "?" + RewriteQuery(p.queryString, page),
	}
}

// RewriteQuery sets the page parameter of query to page.
//
// The first "&"-separated segment of the form page=<digits> has its digits replaced.
// Without such a segment "page=<page>&" is prepended, so an empty query yields
// "page=<page>&".
func RewriteQuery(query string, page int) string {
	value := strconv.Itoa(page)

	segments := strings.Split(query, "&")
	for i, segment := range segments {
		n := pageDigits(segment)
		if n == 0 {
			continue
		}
		segments[i] = pageKey + value + segment[len(pageKey)+n:]
		return strings.Join(segments, "&")
	}

	return pageKey + value + "&" + query
}

// PageFromQuery returns the page selected by query, or 1 when it is missing or not positive.
func PageFromQuery(query string) int {
	query = strings.TrimPrefix(query, "?")
	for _, segment := range strings.Split(query, "&") {
		n := pageDigits(segment)
		if n == 0 {
			continue
		}
		if page, err := strconv.Atoi(segment[len(pageKey) : len(pageKey)+n]); err == nil && page > 0 {
			return page
		}
		return 1
	}
	return 1
}

// pageDigits returns the length of the digit run following "page=" at the start of
// segment, or 0 if segment is not a numeric page parameter.
func pageDigits(segment string) int {
	rest, ok := strings.CutPrefix(segment, pageKey)
	if !ok {
		return 0
	}
	n := 0
	for n < len(rest) && rest[n] >= '0' && rest[n] <= '9' {
		n++
	}
	return n
}
