// Package panel owns the suggestion-panel state machine for one search
// field: open/closed state, the active item, and the keyboard and pointer
// transitions between them. The host page is abstracted behind the Field and
// View interfaces so the machine runs without a document context.
package panel

import (
	"strings"
	"time"

	"flight-search/skyport/internal/airports"
	"flight-search/skyport/internal/selection"
)

// Key identifies the keyboard events the controller consumes.
type Key int

const (
	KeyEscape Key = iota
	KeyEnter
	KeyArrowUp
	KeyArrowDown
)

// Rect is a field's bounding box in host coordinates; the panel is
// positioned under it.
type Rect struct {
	X, Y, Width, Height float64
}

// Field is the tracked text input.
type Field interface {
	Value() string
	SetValue(string)
	Focus()
	Focused() bool
	Bounds() Rect
}

// View is the presentation surface for the suggestion list. The controller
// tells it what to show; it never feeds state back.
type View interface {
	ShowAt(Rect)
	SetItems([]airports.Airport)
	Highlight(index int)
	Hide()
}

// DefaultCloseDelay is how long a blur waits before closing the panel. The
// delay exists so a pointer-down commit on a panel item, which also blurs
// the field, always completes before the close check runs.
const DefaultCloseDelay = 120 * time.Millisecond

// Controller is the per-field state machine. One instance tracks one field
// and one selection set, with the airport index injected read-only. All
// methods run synchronously in the host's single event-handling context; no
// locking.
type Controller struct {
	index *airports.Index
	field Field
	view  View
	chips *selection.Set

	open   bool
	items  []airports.Airport
	active int

	closeDelay time.Duration
	schedule   func(time.Duration, func())
}

// New wires a controller to its field, view, and selection set.
func New(index *airports.Index, field Field, view View, chips *selection.Set) *Controller {
	return &Controller{
		index:      index,
		field:      field,
		view:       view,
		chips:      chips,
		closeDelay: DefaultCloseDelay,
		schedule: func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		},
	}
}

// SetScheduler replaces the deferred-close scheduler. Tests use this to fire
// the blur close deterministically.
func (c *Controller) SetScheduler(schedule func(time.Duration, func())) {
	c.schedule = schedule
}

// HandleFocus recomputes suggestions when the field gains focus.
func (c *Controller) HandleFocus() {
	c.refresh()
}

// HandleInput recomputes suggestions on every keystroke. Matching is a pure
// in-memory scan, so there is no debounce.
func (c *Controller) HandleInput() {
	c.refresh()
}

func (c *Controller) refresh() {
	q := airports.LastFragment(c.field.Value())
	items := c.index.Search(q, c.chips)
	if len(items) == 0 {
		c.close()
		return
	}

	c.open = true
	c.items = items
	c.active = 0
	c.view.ShowAt(c.field.Bounds())
	c.view.SetItems(items)
	c.view.Highlight(0)
}

// HandleKey processes a keyboard event and reports whether it was consumed
// (so the host can suppress the default action).
func (c *Controller) HandleKey(key Key) bool {
	switch key {
	case KeyEscape:
		if !c.open {
			return false
		}
		c.close()
		return true

	case KeyArrowDown:
		if !c.open || len(c.items) == 0 {
			return false
		}
		if c.active < len(c.items)-1 {
			c.active++
		}
		c.view.Highlight(c.active)
		return true

	case KeyArrowUp:
		if !c.open || len(c.items) == 0 {
			return false
		}
		if c.active > 0 {
			c.active--
		}
		c.view.Highlight(c.active)
		return true

	case KeyEnter:
		c.handleEnter()
		return true
	}
	return false
}

func (c *Controller) handleEnter() {
	if c.open && c.active >= 0 && c.active < len(c.items) {
		c.commit(c.items[c.active])
		return
	}

	// Panel closed: a bare 3-letter code becomes a chip without consulting
	// the index at all.
	raw := strings.ToUpper(strings.TrimSpace(c.field.Value()))
	if airports.IsCode(raw) {
		c.chips.Add(raw)
		c.field.SetValue("")
		c.close()
		return
	}

	// Otherwise run the matcher once and take the top hit, if any.
	hits := c.index.Search(airports.LastFragment(c.field.Value()), c.chips)
	if len(hits) > 0 {
		c.commit(hits[0])
	}
}

// HandleItemHover moves the active highlight to the hovered item.
func (c *Controller) HandleItemHover(i int) {
	if !c.open || i < 0 || i >= len(c.items) {
		return
	}
	c.active = i
	c.view.Highlight(i)
}

// HandleItemPointerDown commits the pressed item. Hosts must deliver the
// pointer-down (not click) so the commit runs before the field's blur.
func (c *Controller) HandleItemPointerDown(i int) {
	if !c.open || i < 0 || i >= len(c.items) {
		return
	}
	c.commit(c.items[i])
}

// HandlePointerDownOutside closes immediately on a press outside both the
// panel and the tracked field.
func (c *Controller) HandlePointerDownOutside() {
	c.close()
}

// HandleBlur schedules a deferred close. The close is skipped when focus has
// already returned to the field, which is exactly what a pointer-down commit
// does; a commit that already closed the panel makes the deferred close a
// no-op.
func (c *Controller) HandleBlur() {
	c.schedule(c.closeDelay, func() {
		if !c.field.Focused() {
			c.close()
		}
	})
}

// HandleViewportChange repositions the open panel after a scroll or resize.
// No other state changes.
func (c *Controller) HandleViewportChange() {
	if !c.open {
		return
	}
	c.view.ShowAt(c.field.Bounds())
}

// commit adds the item's code to the field's chip set, clears the text, and
// returns focus to the field. It is synchronous so it always wins the race
// against the deferred blur close.
func (c *Controller) commit(a airports.Airport) {
	c.chips.Add(a.IATA)
	c.field.SetValue("")
	c.close()
	c.field.Focus()
}

func (c *Controller) close() {
	if c.open {
		c.view.Hide()
	}
	c.open = false
	c.items = nil
	c.active = 0
}

// IsOpen reports whether the panel is showing.
func (c *Controller) IsOpen() bool { return c.open }

// ActiveIndex returns the highlighted item position, meaningful only while
// open.
func (c *Controller) ActiveIndex() int { return c.active }

// Items returns the currently displayed suggestions.
func (c *Controller) Items() []airports.Airport { return c.items }
