// Package block holds the Tabs block's property bag and the store that keeps
// its tab collection consistent.
//
// The property bag is owned by the host editor. This package never stores it;
// every write goes through PropertyBag.MutateProps so that other observers of
// the same node see one ordered sequence of changes.
package block

const (
	// DisplayName is the human-readable name the block registers with.
	DisplayName = "Tabs"
	// RegionSuffix is appended to a tab id to address its nested content region.
	RegionSuffix = "nosection1"
)

// Tab is one named slot. ID is caller-assigned and stable; Title may contain
// inline markup.
type Tab struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// RegionID returns the id of the nested content region owned by tabID.
func RegionID(tabID string) string {
	return tabID + "_" + RegionSuffix
}

// Variant selects the visual tab style.
type Variant string

const (
	VariantModern  Variant = "modern"
	VariantClassic Variant = "classic"
)

// TabStyle names the tab style a variant renders with. Anything other than
// modern falls back to the secondary style.
func (v Variant) TabStyle() string {
	if v == VariantModern {
		return "default"
	}
	return "secondary"
}

// Next cycles modern -> classic -> modern. Unknown values go to modern.
func (v Variant) Next() Variant {
	if v == VariantModern {
		return VariantClassic
	}
	return VariantModern
}

// Props is the persisted property bag: { "tabs": [...], "variant": "..." }.
type Props struct {
	Tabs    []Tab   `json:"tabs"`
	Variant Variant `json:"variant"`
}

// Clone returns a copy whose Tabs slice does not alias p's.
// A nil Tabs slice stays nil.
func (p Props) Clone() Props {
	out := p
	if p.Tabs != nil {
		out.Tabs = append([]Tab(nil), p.Tabs...)
	}
	return out
}

// DefaultTabs returns a fresh copy of the two-tab seed.
func DefaultTabs() []Tab {
	return []Tab{
		{ID: "default-tab-1", Title: "Tab 1"},
		{ID: "default-tab-2", Title: "Tab 2"},
	}
}

// DefaultProps returns the payload a new Tabs node is instantiated with.
func DefaultProps() Props {
	return Props{
		Tabs:    DefaultTabs(),
		Variant: VariantModern,
	}
}

// PropertyBag is the host's view of one node's props. MutateProps applies fn
// to the node's props; the result is visible to the next Props call.
type PropertyBag interface {
	Props() Props
	MutateProps(fn func(*Props))
}
