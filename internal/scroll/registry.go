// Package scroll tracks which of a set of on-screen elements is "active":
// the visible element whose top edge sits closest to a trigger line drawn
// at a fixed fraction of the viewport height.
//
// A Registry is an observable store scoped to one page view. Components
// register the elements they render under an ordinal, subscribe to changes
// of the active ordinal, and unregister when they go away.
package scroll

import (
	"math"
	"sort"
	"sync"
)

const (
	// DefaultBreakpoint is the widest viewport, in CSS pixels, that is
	// evaluated. Wider viewports use hover interaction instead.
	DefaultBreakpoint = 1024
	// DefaultTriggerFraction places the trigger line at 30% of the
	// viewport height.
	DefaultTriggerFraction = 0.30
	// DefaultThreshold is the largest distance, in pixels, between an
	// element's top edge and the trigger line that can still be active.
	DefaultThreshold = 150
)

// Rect is an element's bounding box relative to the viewport.
type Rect struct {
	Top    float64
	Bottom float64
}

// Bounds lets a fixed Rect act as an Element.
func (r Rect) Bounds() Rect { return r }

// Element reports its current position. Bounds is called during every
// Recompute, so it must reflect the latest layout.
type Element interface {
	Bounds() Rect
}

// ElementFunc adapts a function to Element.
type ElementFunc func() Rect

func (f ElementFunc) Bounds() Rect { return f() }

// Viewport is the visible area when Recompute runs.
type Viewport struct {
	Width  float64
	Height float64
}

// State is the lifecycle state of a Registry.
type State int

const (
	// Idle means no elements are registered and nothing is active.
	Idle State = iota
	// Tracking means at least one element is registered.
	Tracking
)

func (s State) String() string {
	if s == Tracking {
		return "tracking"
	}
	return "idle"
}

// Params are the tunables of the active-element rule.
type Params struct {
	Breakpoint      float64 `json:"breakpoint"`
	TriggerFraction float64 `json:"triggerFraction"`
	Threshold       float64 `json:"threshold"`
}

// DefaultParams returns the standard breakpoint, trigger line and threshold.
func DefaultParams() Params {
	return Params{
		Breakpoint:      DefaultBreakpoint,
		TriggerFraction: DefaultTriggerFraction,
		Threshold:       DefaultThreshold,
	}
}

// Option configures a Registry.
type Option func(*Params)

// WithBreakpoint sets the widest viewport that is evaluated.
func WithBreakpoint(px float64) Option {
	return func(p *Params) { p.Breakpoint = px }
}

// WithTriggerFraction sets the trigger line as a fraction of viewport height.
func WithTriggerFraction(f float64) Option {
	return func(p *Params) { p.TriggerFraction = f }
}

// WithThreshold sets the maximum qualifying distance to the trigger line.
func WithThreshold(px float64) Option {
	return func(p *Params) { p.Threshold = px }
}

// Listener is told the new active ordinal; ok is false when nothing is active.
type Listener func(index int, ok bool)

// Registry maps ordinals to elements and derives the active ordinal.
// It is safe for concurrent use. Listeners are never called with the
// registry lock held, so they may call back into the Registry.
type Registry struct {
	params Params

	mu        sync.Mutex
	elements  map[int]Element
	active    int
	hasActive bool
	listeners map[int]Listener
	nextID    int
}

// New creates an empty Registry.
func New(opts ...Option) *Registry {
	p := DefaultParams()
	for _, opt := range opts {
		opt(&p)
	}
	return &Registry{
		params:    p,
		elements:  make(map[int]Element),
		listeners: make(map[int]Listener),
	}
}

// Params returns the registry's tunables.
func (r *Registry) Params() Params { return r.params }

// Register adds or replaces the element for index. A nil element is ignored.
func (r *Registry) Register(index int, el Element) {
	if el == nil {
		return
	}
	r.mu.Lock()
	r.elements[index] = el
	r.mu.Unlock()
}

// Unregister removes index. If it was active the active value is cleared
// and listeners are notified; a later Recompute never selects it.
func (r *Registry) Unregister(index int) {
	r.mu.Lock()
	if _, ok := r.elements[index]; !ok {
		r.mu.Unlock()
		return
	}
	delete(r.elements, index)
	var notify []Listener
	if r.hasActive && r.active == index {
		r.active, r.hasActive = 0, false
		notify = r.snapshotListeners()
	}
	r.mu.Unlock()

	for _, fn := range notify {
		fn(0, false)
	}
}

// Len returns the number of registered elements.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.elements)
}

// Indices returns the registered ordinals in ascending order.
func (r *Registry) Indices() []int {
	r.mu.Lock()
	out := make([]int, 0, len(r.elements))
	for idx := range r.elements {
		out = append(out, idx)
	}
	r.mu.Unlock()
	sort.Ints(out)
	return out
}

// State reports whether any element is registered.
func (r *Registry) State() State {
	if r.Len() == 0 {
		return Idle
	}
	return Tracking
}

// Active returns the active ordinal, or false when nothing is active.
func (r *Registry) Active() (int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active, r.hasActive
}

// Subscribe registers fn for changes of the active ordinal. The returned
// function removes the subscription and is safe to call more than once.
func (r *Registry) Subscribe(fn Listener) (cancel func()) {
	r.mu.Lock()
	id := r.nextID
	r.nextID++
	r.listeners[id] = fn
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			delete(r.listeners, id)
			r.mu.Unlock()
		})
	}
}

// Recompute evaluates every registered element against vp and returns the
// resulting active ordinal. Viewports wider than the breakpoint are not
// evaluated and leave the active value as it was.
//
// Among elements that intersect the viewport and whose top edge is closer
// than the threshold to the trigger line, the closest wins. Equal distances
// resolve to the lowest ordinal, so the result does not depend on the order
// in which elements were registered.
func (r *Registry) Recompute(vp Viewport) (int, bool) {
	r.mu.Lock()
	if vp.Width > r.params.Breakpoint {
		idx, ok := r.active, r.hasActive
		r.mu.Unlock()
		return idx, ok
	}

	trigger := vp.Height * r.params.TriggerFraction
	best, found := 0, false
	bestDist := math.Inf(1)
	for idx, el := range r.elements {
		b := el.Bounds()
		if !(b.Bottom > 0 && b.Top < vp.Height) {
			continue
		}
		d := math.Abs(b.Top - trigger)
		if d >= r.params.Threshold {
			continue
		}
		if d < bestDist || (d == bestDist && idx < best) {
			best, bestDist, found = idx, d, true
		}
	}

	changed := found != r.hasActive || (found && best != r.active)
	r.active, r.hasActive = best, found
	var notify []Listener
	if changed {
		notify = r.snapshotListeners()
	}
	r.mu.Unlock()

	for _, fn := range notify {
		fn(best, found)
	}
	return best, found
}

// snapshotListeners copies the listeners in subscription order. Callers
// must hold r.mu.
func (r *Registry) snapshotListeners() []Listener {
	ids := make([]int, 0, len(r.listeners))
	for id := range r.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]Listener, len(ids))
	for i, id := range ids {
		out[i] = r.listeners[id]
	}
	return out
}
