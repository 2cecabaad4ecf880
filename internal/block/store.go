package block

// Outcome reports what a Store operation did. Guard failures are not errors:
// they return a named no-op and leave the property bag untouched.
type Outcome int

const (
	Applied Outcome = iota
	NoopPopulated
	NoopNoTabs
	NoopOutOfRange
	NoopDuplicateID

	// Returned by callers that gate store operations on editor state.
	NoopReadOnly
	NoopLastTab
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case NoopPopulated:
		return "noop: already populated"
	case NoopNoTabs:
		return "noop: no tabs"
	case NoopOutOfRange:
		return "noop: index out of range"
	case NoopDuplicateID:
		return "noop: duplicate id"
	case NoopReadOnly:
		return "noop: not authoring"
	case NoopLastTab:
		return "noop: last tab"
	default:
		return "unknown"
	}
}

// IsNoop returns true for every outcome except Applied.
func (o Outcome) IsNoop() bool {
	return o != Applied
}

// Store reads and writes the tab collection through a PropertyBag.
type Store struct {
	bag PropertyBag
}

// NewStore returns a store backed by bag.
func NewStore(bag PropertyBag) *Store {
	return &Store{bag: bag}
}

// Read returns the current tab collection. It may be nil or empty if the
// host holds malformed content that has not settled yet.
func (s *Store) Read() []Tab {
	return s.bag.Props().Tabs
}

// Write applies mutator to the persisted props through the host.
func (s *Store) Write(mutator func(*Props)) {
	s.bag.MutateProps(mutator)
}

// InitializeIfEmpty reseeds the default tabs when the collection is nil or
// empty. It is idempotent.
func (s *Store) InitializeIfEmpty() Outcome {
	if len(s.Read()) > 0 {
		return NoopPopulated
	}
	s.Write(func(p *Props) {
		p.Tabs = DefaultTabs()
	})
	return Applied
}

// Rename replaces the title of the tab at index.
func (s *Store) Rename(index int, title string) Outcome {
	tabs := s.Read()
	if len(tabs) == 0 {
		return NoopNoTabs
	}
	if index < 0 || index >= len(tabs) {
		return NoopOutOfRange
	}
	s.Write(func(p *Props) {
		// The collection may have changed shape since the guard above ran.
		if index >= len(p.Tabs) {
			return
		}
		next := append([]Tab(nil), p.Tabs...)
		next[index].Title = title
		p.Tabs = next
	})
	return Applied
}

// Delete removes the tab at index. Deleting the last remaining tab is allowed;
// the collection is reseeded by the next InitializeIfEmpty.
func (s *Store) Delete(index int) Outcome {
	tabs := s.Read()
	if len(tabs) == 0 {
		return NoopNoTabs
	}
	if index < 0 || index >= len(tabs) {
		return NoopOutOfRange
	}
	s.Write(func(p *Props) {
		if index >= len(p.Tabs) {
			return
		}
		next := make([]Tab, 0, len(p.Tabs)-1)
		next = append(next, p.Tabs[:index]...)
		next = append(next, p.Tabs[index+1:]...)
		p.Tabs = next
	})
	return Applied
}

// Append adds tab at the end of the collection. Ids must be unique.
func (s *Store) Append(tab Tab) Outcome {
	for _, t := range s.Read() {
		if t.ID == tab.ID {
			return NoopDuplicateID
		}
	}
	s.Write(func(p *Props) {
		next := make([]Tab, 0, len(p.Tabs)+1)
		next = append(next, p.Tabs...)
		p.Tabs = append(next, tab)
	})
	return Applied
}

// SetVariant writes the variant field. Used by the toolbar.
func (s *Store) SetVariant(v Variant) Outcome {
	if s.bag.Props().Variant == v {
		return NoopPopulated
	}
	s.Write(func(p *Props) {
		p.Variant = v
	})
	return Applied
}
