package ui

// Selection tracks the active tab index. It is widget-local and never
// persisted. The stored index is not re-clamped when the collection shrinks;
// Display clamps it for rendering only.
type Selection struct {
	active   int
	OnChange func(from, to int)
}

// Active returns the stored index, which may be out of range after a delete.
func (s *Selection) Active() int {
	return s.active
}

// SetActive stores index and fires OnChange if it differs.
func (s *Selection) SetActive(index int) {
	from := s.active
	s.active = index
	if s.OnChange != nil && from != index {
		s.OnChange(from, index)
	}
}

// Display returns the index to render for a collection of n tabs:
// the stored index clamped into [0, n-1], or -1 when n is 0.
func (s *Selection) Display(n int) int {
	if n <= 0 {
		return -1
	}
	if s.active < 0 {
		return 0
	}
	if s.active >= n {
		return n - 1
	}
	return s.active
}
