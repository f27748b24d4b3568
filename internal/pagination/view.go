package pagination

// Data contains pagination information for display.
type Data struct {
	CurrentPage int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	PerPage     int  `json:"per_page"`
	Total       int  `json:"total"`
	HasPrevious bool `json:"has_previous"`
	HasNext     bool `json:"has_next"`
	PrevPage    int  `json:"prev_page"`
	NextPage    int  `json:"next_page"`
}

// Item is one entry of the navigator. Gap items mark skipped pages and carry no link.
type Item struct {
	Link
	Current bool `json:"current,omitempty"`
	Gap     bool `json:"gap,omitempty"`
}

// Data summarises the last Paginate call. PrevPage and NextPage are 0 when there is
// no previous or next page.
func (p *Paginator) Data() Data {
	d := Data{
		CurrentPage: p.currentPage,
		TotalPages:  p.pageCount,
		PerPage:     p.limit,
		Total:       p.total,
	}
	if prev := p.Prev(); prev != nil {
		d.HasPrevious = true
		d.PrevPage = prev.Value
	}
	if next := p.Next(); next != nil {
		d.HasNext = true
		d.NextPage = next.Value
	}
	return d
}

// Items returns the navigator in display order:
//
//	first, gap, left..., current, right..., gap, last
//
// First and last are omitted when the window already reaches them, and a gap is only
// inserted where pages are skipped. Returns nil when there is at most one page.
func (p *Paginator) Items() []Item {
	if p.pageCount <= 1 {
		return nil
	}

	lo, hi := p.currentPage, p.currentPage
	if len(p.left) > 0 {
		lo = p.left[0]
	}
	if len(p.right) > 0 {
		hi = p.right[len(p.right)-1]
	}

	items := make([]Item, 0, len(p.left)+len(p.right)+5)

	if lo > 1 {
		items = append(items, Item{Link: p.First()})
	}
	if lo > 2 {
		items = append(items, Item{Gap: true})
	}

	for _, l := range p.Left() {
		items = append(items, Item{Link: l})
	}
	items = append(items, Item{Link: p.Current(), Current: true})
	for _, l := range p.Right() {
		items = append(items, Item{Link: l})
	}

	if hi < p.pageCount-1 {
		items = append(items, Item{Gap: true})
	}
	if hi < p.pageCount {
		items = append(items, Item{Link: p.Last()})
	}

	return items
}
