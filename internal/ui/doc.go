// Package ui implements the Tabs block widget for a terminal page editor.
//
// Pieces:
//   - TabsBlock: the widget. Reads tabs from its Host's property bag, keeps the
//     active index and title editor locally, and turns key/mouse gestures into
//     store operations.
//   - Selection: the active tab index. Never persisted, never re-clamped after a
//     delete; rendering clamps it.
//   - Tree / BuildTree: the render tree, a pure function of (tabs, active, mode).
//   - Region: a tab's nested content region. Every region stays instantiated so
//     its state survives tab switches; only the active one is drawn.
//   - Toolbar: variant switch and add-tab, authoring only.
//   - AppModel: hosts one node in a tea.Program.
package ui
