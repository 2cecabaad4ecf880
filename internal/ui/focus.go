package ui

// FocusArea is a keyboard focus target inside the tabs widget.
type FocusArea int

const (
	FocusHeaders FocusArea = iota // tab header row and title editing
	FocusBody                     // the visible panel's content region
)

func (a FocusArea) String() string {
	if a == FocusBody {
		return "body"
	}
	return "headers"
}

// FocusRing tracks and rotates focus across areas.
type FocusRing struct {
	Current  FocusArea
	Order    []FocusArea
	OnChange func(from, to FocusArea)
}

// NewFocusRing returns a ring over headers then body, focused on headers.
func NewFocusRing() FocusRing {
	return FocusRing{Current: FocusHeaders, Order: []FocusArea{FocusHeaders, FocusBody}}
}

// Next advances focus to the next area in order.
// Returns the new current area.
func (f *FocusRing) Next() FocusArea {
	if len(f.Order) == 0 {
		return f.Current
	}
	idx := -1
	for i, a := range f.Order {
		if a == f.Current {
			idx = i
			break
		}
	}
	return f.set(f.Order[(idx+1)%len(f.Order)])
}

// Set focuses area if it is part of the ring.
// Returns true if the area exists in order.
func (f *FocusRing) Set(area FocusArea) bool {
	for _, a := range f.Order {
		if a == area {
			f.set(area)
			return true
		}
	}
	return false
}

func (f *FocusRing) set(to FocusArea) FocusArea {
	from := f.Current
	f.Current = to
	if f.OnChange != nil && from != to {
		f.OnChange(from, to)
	}
	return f.Current
}
