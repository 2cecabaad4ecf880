// Package editor is a minimal in-memory host for block nodes: it owns each
// node's property bag, the editor-wide edit-mode flag, and the selected node.
//
// All prop writes go through Node.MutateProps, the single mutation entry
// point. Each write bumps a global revision, records a span, and is delivered
// synchronously to subscribers in registration order. The editor is driven from
// one goroutine (the Bubble Tea event loop) and holds no locks.
package editor

import (
	"context"
	"log"
	"time"

	"tabsblock/internal/block"
	"tabsblock/internal/trace"

	oteltrace "go.opentelemetry.io/otel/trace"
)

// Change describes one committed prop mutation.
type Change struct {
	NodeID    string
	Revision  int
	Props     block.Props
	Timestamp time.Time
}

// Listener observes committed changes.
type Listener func(Change)

// Option configures an Editor.
type Option func(*Editor)

// WithEnabled sets the initial edit-mode flag.
func WithEnabled(enabled bool) Option {
	return func(e *Editor) { e.enabled = enabled }
}

// WithTracer records a span for every mutation.
func WithTracer(t oteltrace.Tracer) Option {
	return func(e *Editor) { e.tracer = t }
}

// WithVerbose logs mutations and selection changes with the standard logger.
func WithVerbose(verbose bool) Option {
	return func(e *Editor) { e.verbose = verbose }
}

// Editor holds the node registry and editor-wide state.
type Editor struct {
	enabled   bool
	selected  string
	nodes     map[string]*Node
	revision  int
	listeners []Listener
	tracer    oteltrace.Tracer
	verbose   bool
	now       func() time.Time
}

// New creates an editor. Authoring is enabled unless WithEnabled(false) is given.
func New(opts ...Option) *Editor {
	e := &Editor{
		enabled: true,
		nodes:   make(map[string]*Node),
		tracer:  trace.Disabled().Tracer(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AddNode registers a node with initial props. Adding an existing id returns
// the existing node unchanged.
func (e *Editor) AddNode(id string, props block.Props) *Node {
	if n, ok := e.nodes[id]; ok {
		return n
	}
	n := &Node{editor: e, id: id, props: props.Clone()}
	e.nodes[id] = n
	return n
}

// Node returns the node with id, or nil.
func (e *Editor) Node(id string) *Node {
	return e.nodes[id]
}

// Enabled reports whether the editor is in authoring mode.
func (e *Editor) Enabled() bool {
	return e.enabled
}

// SetEnabled switches between authoring and viewing.
func (e *Editor) SetEnabled(enabled bool) {
	if e.verbose && enabled != e.enabled {
		log.Printf("editor.SetEnabled: %v", enabled)
	}
	e.enabled = enabled
}

// Selected returns the id of the selected node, or "".
func (e *Editor) Selected() string {
	return e.selected
}

// SelectNode marks id as the user's focus. Unknown ids are ignored.
func (e *Editor) SelectNode(id string) {
	if _, ok := e.nodes[id]; !ok {
		return
	}
	if e.verbose && e.selected != id {
		log.Printf("editor.SelectNode: %s", id)
	}
	e.selected = id
}

// ClearSelection drops the selected node. Viewing mode has no selection.
func (e *Editor) ClearSelection() {
	e.selected = ""
}

// Revision returns the number of committed mutations.
func (e *Editor) Revision() int {
	return e.revision
}

// Subscribe registers l for every subsequent change.
func (e *Editor) Subscribe(l Listener) {
	e.listeners = append(e.listeners, l)
}

func (e *Editor) commit(n *Node, next block.Props) {
	_, span := e.tracer.Start(context.Background(), "tabsblock.mutate")
	n.props = next
	e.revision++
	span.SetAttributes(
		trace.AttrNodeID.String(n.id),
		trace.AttrRevision.Int(e.revision),
		trace.AttrTabCount.Int(len(next.Tabs)),
		trace.AttrVariant.String(string(next.Variant)),
	)
	span.End()

	if e.verbose {
		log.Printf("editor.MutateProps: node=%s revision=%d tabs=%d variant=%s",
			n.id, e.revision, len(next.Tabs), next.Variant)
	}

	c := Change{
		NodeID:    n.id,
		Revision:  e.revision,
		Props:     next,
		Timestamp: e.now(),
	}
	for _, l := range e.listeners {
		l(c)
	}
}
