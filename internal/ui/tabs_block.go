package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"tabsblock/internal/block"
)

// Host is what the widget needs from the editor hosting it.
type Host interface {
	block.PropertyBag
	IsAuthoringMode() bool
	SelectThisNode()
}

// TabsBlock is the editable tabs widget. Tabs live in the host's property bag;
// the active index, title editor and content regions are widget-local.
type TabsBlock struct {
	host      Host
	store     *block.Store
	selection Selection
	focus     FocusRing
	keys      KeyMap

	title     textinput.Model
	editingID string // tab whose title field has focus, "" when none

	newRegion RegionFactory
	regions   map[string]Region

	zones  *zone.Manager
	zoneID string
	width  int
}

// Ensure TabsBlock implements View.
var _ View = (*TabsBlock)(nil)

// Option configures a TabsBlock.
type Option func(*TabsBlock)

// WithRegionFactory sets how content regions are created. Defaults to NewTextRegion.
func WithRegionFactory(f RegionFactory) Option {
	return func(b *TabsBlock) { b.newRegion = f }
}

// WithZones enables mouse hit testing through a bubblezone manager.
func WithZones(m *zone.Manager) Option {
	return func(b *TabsBlock) {
		b.zones = m
		if m != nil {
			b.zoneID = m.NewPrefix()
		}
	}
}

// WithKeyMap overrides the default bindings.
func WithKeyMap(k KeyMap) Option {
	return func(b *TabsBlock) { b.keys = k }
}

// NewTabsBlock creates the widget for host. The tab collection is not
// touched until the first settle (Init or Update).
func NewTabsBlock(host Host, opts ...Option) *TabsBlock {
	title := textinput.New()
	title.Prompt = ""
	title.Placeholder = "Tab Title"
	b := &TabsBlock{
		host:      host,
		store:     block.NewStore(host),
		focus:     NewFocusRing(),
		keys:      DefaultKeyMap(),
		title:     title,
		newRegion: NewTextRegion,
		regions:   make(map[string]Region),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.selection.OnChange = b.onSelectionChange
	b.focus.OnChange = b.onFocusChange
	return b
}

// Mode returns the current interaction state.
func (b *TabsBlock) Mode() Mode {
	return ModeOf(b.host.IsAuthoringMode())
}

// Active returns the stored active index. It may be out of range after a
// delete; rendering clamps it.
func (b *TabsBlock) Active() int {
	return b.selection.Active()
}

// Editing reports whether a title field has focus.
func (b *TabsBlock) Editing() bool {
	return b.editingID != ""
}

// Focus returns the focused area.
func (b *TabsBlock) Focus() FocusArea {
	return b.focus.Current
}

// Capturing reports whether the widget must receive every key, ahead of any
// host shortcut.
func (b *TabsBlock) Capturing() bool {
	return b.Editing() || b.focus.Current == FocusBody
}

// sizer is implemented by regions that follow the panel width.
type sizer interface {
	SetWidth(int)
}

// SetWidth sets the render width and resizes every cached region to fit the
// panel body.
func (b *TabsBlock) SetWidth(w int) {
	b.width = w
	for _, r := range b.regions {
		b.resize(r)
	}
}

// bodyWidth is the panel's inner width: the terminal width less the panel
// border and padding. Zero means unknown.
func (b *TabsBlock) bodyWidth() int {
	if b.width <= 4 {
		return 0
	}
	return b.width - 4
}

func (b *TabsBlock) resize(r Region) {
	s, ok := r.(sizer)
	if !ok {
		return
	}
	if w := b.bodyWidth(); w > 0 {
		s.SetWidth(w)
	}
}

// Region returns the cached region for regionID, or nil if it was never rendered.
func (b *TabsBlock) Region(regionID string) Region {
	return b.regions[regionID]
}

// Init settles the tab collection. Implements View.
func (b *TabsBlock) Init() tea.Cmd {
	b.Settle()
	return nil
}

// Settle heals an empty collection and reconciles widget-local state with the
// current props and mode. It runs after every update.
func (b *TabsBlock) Settle() {
	b.store.InitializeIfEmpty()

	tabs := b.store.Read()
	if b.editingID != "" && (b.Mode() != ModeAuthoring || indexOf(tabs, b.editingID) < 0) {
		b.BlurTitle()
	}
	if b.Mode() != ModeAuthoring && b.focus.Current == FocusBody {
		b.focus.Set(FocusHeaders)
	}
	for id, r := range b.regions {
		if !hasRegion(tabs, id) {
			r.Blur()
			delete(b.regions, id)
		}
	}
}

// RequestTabChange activates tab i. In authoring mode the host is told this
// node is now selected.
func (b *TabsBlock) RequestTabChange(i int) block.Outcome {
	if o := b.guardIndex(i); o.IsNoop() {
		return o
	}
	b.selection.SetActive(i)
	if b.Mode() == ModeAuthoring {
		b.host.SelectThisNode()
	}
	return block.Applied
}

// FocusTitle starts editing tab i's title. Authoring only.
func (b *TabsBlock) FocusTitle(i int) (block.Outcome, tea.Cmd) {
	if b.Mode() != ModeAuthoring {
		return block.NoopReadOnly, nil
	}
	if o := b.guardIndex(i); o.IsNoop() {
		return o, nil
	}
	tabs := b.store.Read()
	b.selection.SetActive(i)
	b.host.SelectThisNode()
	b.focus.Set(FocusHeaders)

	b.editingID = tabs[i].ID
	b.title.SetValue(tabs[i].Title)
	b.title.CursorEnd()
	return block.Applied, b.title.Focus()
}

// BlurTitle ends title editing. The title is already persisted.
func (b *TabsBlock) BlurTitle() {
	b.editingID = ""
	b.title.Blur()
}

// ChangeTitle renames the active tab. Called on every change, not on blur.
func (b *TabsBlock) ChangeTitle(text string) block.Outcome {
	if b.Mode() != ModeAuthoring {
		return block.NoopReadOnly
	}
	return b.store.Rename(b.selection.Active(), text)
}

// TitleKey routes a key to the focused title field. Enter is swallowed so it
// neither changes the title nor reaches host shortcuts. Returns false when no
// title is being edited.
func (b *TabsBlock) TitleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if !b.Editing() {
		return false, nil
	}
	switch msg.Type {
	case tea.KeyEnter:
		return true, nil
	case tea.KeyEsc:
		b.BlurTitle()
		return true, nil
	}

	before := b.title.Value()
	var cmd tea.Cmd
	b.title, cmd = b.title.Update(msg)
	if after := b.title.Value(); after != before {
		b.ChangeTitle(after)
	}
	return true, cmd
}

// DeleteTab removes tab i. Authoring only, and only while more than one tab
// exists. The active index is left as is.
func (b *TabsBlock) DeleteTab(i int) block.Outcome {
	if b.Mode() != ModeAuthoring {
		return block.NoopReadOnly
	}
	if len(b.store.Read()) <= 1 {
		return block.NoopLastTab
	}
	if o := b.guardIndex(i); o.IsNoop() {
		return o
	}
	// The title buffer addresses the active index, which a delete shifts.
	b.BlurTitle()
	return b.store.Delete(i)
}

func (b *TabsBlock) guardIndex(i int) block.Outcome {
	tabs := b.store.Read()
	if len(tabs) == 0 {
		return block.NoopNoTabs
	}
	if i < 0 || i >= len(tabs) {
		return block.NoopOutOfRange
	}
	return block.Applied
}

func (b *TabsBlock) onSelectionChange(_, to int) {
	if b.editingID == "" {
		return
	}
	if tabs := b.store.Read(); to >= len(tabs) || tabs[to].ID != b.editingID {
		b.BlurTitle()
	}
}

func (b *TabsBlock) onFocusChange(from, to FocusArea) {
	if from == FocusBody {
		if r := b.visibleRegion(); r != nil {
			r.Blur()
		}
	}
	if to == FocusBody {
		b.BlurTitle()
	}
}

// Update implements View.
func (b *TabsBlock) Update(msg tea.Msg) (View, tea.Cmd) {
	cmd := b.handle(msg)
	b.Settle()
	return b, cmd
}

func (b *TabsBlock) handle(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.SetWidth(msg.Width)
		return nil
	case tea.MouseMsg:
		return b.handleMouse(msg)
	case tea.KeyMsg:
		return b.handleKey(msg)
	}
	if b.focus.Current == FocusBody {
		return b.updateVisibleRegion(msg)
	}
	if b.Editing() {
		var cmd tea.Cmd
		b.title, cmd = b.title.Update(msg)
		return cmd
	}
	return nil
}

func (b *TabsBlock) handleKey(msg tea.KeyMsg) tea.Cmd {
	if handled, cmd := b.TitleKey(msg); handled {
		return cmd
	}

	if b.focus.Current == FocusBody {
		if key.Matches(msg, b.keys.Back) {
			b.focus.Next()
			return nil
		}
		return b.updateVisibleRegion(msg)
	}

	display := b.selection.Display(len(b.store.Read()))
	switch {
	case key.Matches(msg, b.keys.Prev):
		if display > 0 {
			b.RequestTabChange(display - 1)
		}
	case key.Matches(msg, b.keys.Next):
		b.RequestTabChange(display + 1)
	case key.Matches(msg, b.keys.Jump):
		b.RequestTabChange(int(msg.Runes[0] - '1'))
	case key.Matches(msg, b.keys.EditTitle):
		_, cmd := b.FocusTitle(display)
		return cmd
	case key.Matches(msg, b.keys.DeleteTab):
		b.DeleteTab(display)
	case key.Matches(msg, b.keys.FocusBody):
		if b.Mode() != ModeAuthoring || display < 0 {
			return nil
		}
		b.host.SelectThisNode()
		if b.focus.Next() != FocusBody {
			return nil
		}
		if r := b.visibleRegion(); r != nil {
			return r.Focus()
		}
	}
	return nil
}

func (b *TabsBlock) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if b.zones == nil || msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	authoring := b.Mode() == ModeAuthoring
	for i, tab := range b.store.Read() {
		if authoring && b.zones.Get(b.deleteZone(tab.ID)).InBounds(msg) {
			b.DeleteTab(i)
			return nil
		}
		if authoring && b.zones.Get(b.titleZone(tab.ID)).InBounds(msg) {
			_, cmd := b.FocusTitle(i)
			return cmd
		}
		if b.zones.Get(b.headerZone(tab.ID)).InBounds(msg) {
			b.RequestTabChange(i)
			return nil
		}
	}
	return nil
}

// visibleRegion returns the region of the display-active tab, creating it on
// first use.
func (b *TabsBlock) visibleRegion() Region {
	tabs := b.store.Read()
	display := b.selection.Display(len(tabs))
	if display < 0 {
		return nil
	}
	return b.region(block.RegionID(tabs[display].ID))
}

func (b *TabsBlock) region(id string) Region {
	if r, ok := b.regions[id]; ok {
		return r
	}
	if b.newRegion == nil {
		return nil
	}
	r := b.newRegion(id)
	if r == nil {
		return nil
	}
	b.resize(r)
	b.regions[id] = r
	return r
}

func (b *TabsBlock) updateVisibleRegion(msg tea.Msg) tea.Cmd {
	tabs := b.store.Read()
	display := b.selection.Display(len(tabs))
	if display < 0 {
		return nil
	}
	id := block.RegionID(tabs[display].ID)
	r := b.region(id)
	if r == nil {
		return nil
	}
	next, cmd := r.Update(msg)
	b.regions[id] = next
	return cmd
}

func (b *TabsBlock) headerZone(tabID string) string { return b.zoneID + "tab-" + tabID }
func (b *TabsBlock) titleZone(tabID string) string  { return b.zoneID + "title-" + tabID }
func (b *TabsBlock) deleteZone(tabID string) string { return b.zoneID + "del-" + tabID }

func indexOf(tabs []block.Tab, id string) int {
	for i, t := range tabs {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func hasRegion(tabs []block.Tab, regionID string) bool {
	for _, t := range tabs {
		if block.RegionID(t.ID) == regionID {
			return true
		}
	}
	return false
}
