package picker

import (
	"pickd/pkg/term"
)

// paging computes the visible window over the entry list. A fresh paging is
// built per directory; update tracks the selection and, in unbounded mode,
// terminal resizes.
type paging struct {
	term      term.Terminal
	total     int
	maxLength int // bounded capacity, 0 = fit the terminal
	rows      int // terminal rows at last build, unbounded mode only

	capacity int
	pages    int
	current  int
	active   bool
}

func newPaging(t term.Terminal, total, maxLength int) *paging {
	p := &paging{term: t, total: total, maxLength: maxLength}
	p.build()
	return p
}

func (p *paging) build() {
	if p.maxLength > 0 {
		p.capacity = p.maxLength
	} else {
		rows, _ := p.term.Size()
		p.rows = rows
		p.capacity = rows
	}
	if p.capacity < 1 {
		p.capacity = 1
	}
	p.active = p.total > p.capacity
	p.pages = (p.total + p.capacity - 1) / p.capacity
	if p.pages < 1 {
		p.pages = 1
	}
	if p.current >= p.pages {
		p.current = p.pages - 1
	}
}

// update recomputes the current page so sel stays inside the visible window.
// Pass a negative sel when nothing is selected yet. In unbounded mode a
// changed terminal row count rebuilds capacity and page count first.
func (p *paging) update(sel int) {
	if p.maxLength == 0 {
		if rows, _ := p.term.Size(); rows != p.rows {
			p.build()
		}
	}
	if sel >= 0 {
		p.current = sel / p.capacity
	}
}

// nextPage advances one page, wrapping past the last, and returns the index
// of the first item on the new page.
func (p *paging) nextPage() int {
	p.current = (p.current + 1) % p.pages
	return p.current * p.capacity
}

// prevPage retreats one page, wrapping below zero to the last page, and
// returns the index of the first item on the new page.
func (p *paging) prevPage() int {
	if p.current == 0 {
		p.current = p.pages - 1
	} else {
		p.current--
	}
	return p.current * p.capacity
}
