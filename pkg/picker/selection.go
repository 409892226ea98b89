package picker

// selection is the cursor into the current entry list. The zero value means
// no concrete selection yet, so wrap-around arithmetic never sees a
// sentinel index.
type selection struct {
	index int
	valid bool
}

// next advances by one, wrapping past the last index. From the empty state
// it lands on index 0. A nil-sized list leaves the selection untouched.
func (s selection) next(n int) selection {
	if n == 0 {
		return s
	}
	if !s.valid {
		return selection{index: 0, valid: true}
	}
	return selection{index: (s.index + 1) % n, valid: true}
}

// prev retreats by one, wrapping below zero. From the empty state it lands
// on the last index.
func (s selection) prev(n int) selection {
	if n == 0 {
		return s
	}
	if !s.valid {
		return selection{index: n - 1, valid: true}
	}
	return selection{index: (s.index - 1 + n) % n, valid: true}
}

// at reports whether index i is the selected one.
func (s selection) at(i int) bool {
	return s.valid && s.index == i
}
