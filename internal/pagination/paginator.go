// Package pagination computes windowed page-number navigation links from a total item
// count, a page size, the current page and a base query string.
//
// A Paginator is built once per render and is not safe for concurrent use:
// Paginate overwrites all derived state.
package pagination

import (
	"log/slog"
	"strings"

	"github.com/DukeRupert/pagelinks/internal/domain"
	"github.com/DukeRupert/pagelinks/internal/metrics"
)

const (
	// DefaultLimit is the number of items per page when none is configured.
	DefaultLimit = 10
	// DefaultMaxItems is the window width when none is configured.
	DefaultMaxItems = 10
)

// Paginator holds the configuration and the result of the last Paginate call.
type Paginator struct {
	queryString string
	limit       int
	maxItems    int

	total       int
	currentPage int
	pageCount   int
	window      Window
	left        []int
	right       []int

	logger *slog.Logger
}

// Option configures a Paginator at construction.
type Option func(*Paginator)

// WithLimit sets the number of items per page.
func WithLimit(limit int) Option {
	return func(p *Paginator) {
		p.limit = limit
	}
}

// WithMaxItems sets the number of page links shown around the current page.
func WithMaxItems(maxItems int) Option {
	return func(p *Paginator) {
		p.maxItems = maxItems
	}
}

// WithLogger sets the logger used by Paginate. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Paginator) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a Paginator for the given query string (without the leading "?").
// Values are not validated here; Paginate reports unusable configuration.
//
// A single leading "?" is stripped, so "?sort=asc" links as "?page=3&sort=asc"
// rather than "?page=3&?sort=asc".
func New(queryString string, opts ...Option) *Paginator {
	p := &Paginator{
		queryString: strings.TrimPrefix(queryString, "?"),
		limit:       DefaultLimit,
		maxItems:    DefaultMaxItems,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SetLimit overrides the number of items per page.
func (p *Paginator) SetLimit(limit int) *Paginator {
	p.limit = limit
	return p
}

// SetMaxItems overrides the number of page links shown around the current page.
func (p *Paginator) SetMaxItems(maxItems int) *Paginator {
	p.maxItems = maxItems
	return p
}

// Paginate recomputes the page count and the window around currentPage.
//
// A non-positive limit or a negative total returns an EINVALIDCONFIG error and leaves
// the Paginator in its zero state. currentPage is not checked against the page count.
func (p *Paginator) Paginate(total, currentPage int) error {
	const op = "Paginator.Paginate"

	p.reset()

	if p.limit <= 0 {
		metrics.PaginationRejected()
		p.logger.Warn("pagination rejected", "op", op, "limit", p.limit)
		return domain.InvalidConfiguration(op, "limit must be positive, got %d", p.limit)
	}
	if total < 0 {
		metrics.PaginationRejected()
		p.logger.Warn("pagination rejected", "op", op, "total", total)
		return domain.InvalidConfiguration(op, "total must not be negative, got %d", total)
	}

	p.total = total
	p.currentPage = currentPage
	p.pageCount = PageCount(total, p.limit)
	p.window = Bounds(currentPage, p.maxItems, p.pageCount)

	for page := p.window.Start; page <= p.window.End; page++ {
		switch {
		case page < currentPage:
			p.left = append(p.left, page)
		case page > currentPage:
			p.right = append(p.right, page)
		}
		// End may be math.MaxInt, where page++ would wrap
		if page == p.window.End {
			break
		}
	}

	metrics.PaginationCompleted(p.pageCount, len(p.left)+len(p.right))
	p.logger.Debug("paginated",
		"total", total,
		"current_page", currentPage,
		"page_count", p.pageCount,
		"start", p.window.Start,
		"end", p.window.End,
	)

	return nil
}

func (p *Paginator) reset() {
	p.total = 0
	p.currentPage = 0
	p.pageCount = 0
	p.window = Window{}
	p.left = nil
	p.right = nil
}

// Current returns the link to the current page.
func (p *Paginator) Current() Link {
	return p.link(p.currentPage)
}

// Left returns the window pages before the current page, in ascending order.
func (p *Paginator) Left() []Link {
	return p.links(p.left)
}

// Right returns the window pages after the current page, in ascending order.
func (p *Paginator) Right() []Link {
	return p.links(p.right)
}

// First returns the link to page 1.
func (p *Paginator) First() Link {
	return p.link(1)
}

// Last returns the link to the last page. Before Paginate this is page 0.
func (p *Paginator) Last() Link {
	return p.link(p.pageCount)
}

// Prev returns the previous page, or nil when the current page is 1.
func (p *Paginator) Prev() *Link {
	if p.currentPage == 1 {
		return nil
	}
	l := p.link(p.currentPage - 1)
	return &l
}

// Next returns the next page, or nil when the current page is the last one.
// A current page beyond the page count always has a next page.
func (p *Paginator) Next() *Link {
	if p.currentPage == p.pageCount {
		return nil
	}
	l := p.link(p.currentPage + 1)
	return &l
}

// IsPaginated reports whether the total spans more than one page's worth of items.
func (p *Paginator) IsPaginated() bool {
	return p.total > p.limit
}

// Bounds returns the window computed by the last Paginate call.
func (p *Paginator) Bounds() Window {
	return p.window
}

// PageCount returns the number of pages computed by the last Paginate call.
func (p *Paginator) PageCount() int {
	return p.pageCount
}

// Total returns the item count passed to the last successful Paginate call.
func (p *Paginator) Total() int {
	return p.total
}

// CurrentPage returns the page passed to the last successful Paginate call.
func (p *Paginator) CurrentPage() int {
	return p.currentPage
}

// Limit returns the configured number of items per page.
func (p *Paginator) Limit() int {
	return p.limit
}

// MaxItems returns the configured window width.
func (p *Paginator) MaxItems() int {
	return p.maxItems
}

func (p *Paginator) links(pages []int) []Link {
	out := make([]Link, 0, len(pages))
	for _, page := range pages {
		out = append(out, p.link(page))
	}
	return out
}
