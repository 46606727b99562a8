// Package reorder turns a drag gesture into at most one list or item move.
//
// While the pointer moves, the gesture only reflows its own visual order so
// the view can preview the result. The model is touched once, on a legal
// drop. Every other path ends in a re-render from the model, which snaps the
// view back to the committed order.
package reorder

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Kind is what is being dragged.
type Kind int

const (
	// KindList drags a whole list among the lists.
	KindList Kind = iota
	// KindItem drags an item among the items of its own list.
	KindItem
)

func (k Kind) String() string {
	if k == KindItem {
		return "item"
	}
	return "list"
}

// State of a gesture.
type State int

const (
	// Idle means no drag is in progress.
	Idle State = iota
	// Dragging means an element is picked up and follows the pointer.
	Dragging
	// DroppedValid means the drop produced a move.
	DroppedValid
	// DroppedInvalid means the drop landed somewhere that cannot take it.
	DroppedInvalid
	// Cancelled means the user backed out, with Esc for instance.
	Cancelled
)

func (s State) String() string {
	switch s {
	case Dragging:
		return "dragging"
	case DroppedValid:
		return "dropped-valid"
	case DroppedInvalid:
		return "dropped-invalid"
	case Cancelled:
		return "cancelled"
	default:
		return "idle"
	}
}

// Effect is the drop effect shown while hovering a target.
type Effect int

const (
	// EffectNone rejects the target; the preview does not change.
	EffectNone Effect = iota
	// EffectMove accepts the target and reflows the preview.
	EffectMove
)

// ErrNotDragging is returned by operations that need an active drag.
var ErrNotDragging = errors.New("reorder: no drag in progress")

// Mover applies a committed move to the model. Implementations persist.
type Mover interface {
	MoveList(ctx context.Context, from, to int) error
	MoveItem(ctx context.Context, list, from, to int) error
}

// Outcome tells the view what to do after a drop or the end of a gesture.
type Outcome struct {
	// Committed is true once the model has been mutated by this gesture.
	Committed bool
	// Rerender asks the view to rebuild from the model now.
	Rerender bool
}

// Snapshot is the observable state of a gesture.
type Snapshot struct {
	Kind       Kind
	State      State
	OriginList int
	Origin     int
	Hover      int
	Valid      bool
}

// Gesture tracks one drag from start to end. The zero value is idle.
type Gesture struct {
	kind       Kind
	state      State
	originList int
	origin     int
	order      []int
	processed  bool
}

// Start begins dragging the element at origin among siblings elements. For
// item drags originList is the list the item belongs to.
func (g *Gesture) Start(kind Kind, originList, origin, siblings int) error {
	if origin < 0 || origin >= siblings {
		return fmt.Errorf("reorder: origin %d outside %d siblings", origin, siblings)
	}
	g.kind = kind
	g.state = Dragging
	g.originList = originList
	g.origin = origin
	g.processed = false
	g.order = make([]int, siblings)
	for i := range g.order {
		g.order[i] = i
	}
	return nil
}

// Active reports whether a drag is in progress.
func (g *Gesture) Active() bool { return g.state == Dragging }

// Snapshot returns the current state.
func (g *Gesture) Snapshot() Snapshot {
	return Snapshot{
		Kind:       g.kind,
		State:      g.state,
		OriginList: g.originList,
		Origin:     g.origin,
		Hover:      g.position(),
		Valid:      g.processed,
	}
}

// Order is the previewed visual order as indices into the committed order.
// It is nil when no drag is active.
func (g *Gesture) Order() []int {
	if g.state != Dragging {
		return nil
	}
	return append([]int(nil), g.order...)
}

// Accepts reports whether targetList may receive the dragged element.
// Items never leave their list; lists have no such restriction.
func (g *Gesture) Accepts(targetList int) bool {
	return g.kind == KindList || targetList == g.originList
}

// Over handles the pointer hovering targetList at vertical position y.
// boxes holds the geometry of every sibling in the current visual order,
// the dragged element included.
func (g *Gesture) Over(targetList int, boxes []Box, y float64) Effect {
	if g.state != Dragging || !g.Accepts(targetList) {
		return EffectNone
	}
	if len(boxes) != len(g.order) {
		return EffectMove
	}
	pos := g.position()
	others := make([]Box, 0, len(boxes)-1)
	slots := make([]int, 0, len(boxes)-1)
	for i, b := range boxes {
		if i == pos {
			continue
		}
		others = append(others, b)
		slots = append(slots, g.order[i])
	}
	before := InsertBefore(others, y)
	if before < 0 {
		g.reflow(-1)
	} else {
		g.reflow(slots[before])
	}
	return EffectMove
}

// Step moves the dragged element delta places in the visual order, clamped to
// the ends. It is the keyboard equivalent of Over.
func (g *Gesture) Step(delta int) {
	if g.state != Dragging || len(g.order) == 0 {
		return
	}
	pos := g.position() + delta
	if pos < 0 {
		pos = 0
	}
	if pos > len(g.order)-1 {
		pos = len(g.order) - 1
	}
	rest := g.without()
	g.order = insertAt(rest, pos, g.origin)
}

// Drop commits the previewed position on targetList through m.
func (g *Gesture) Drop(ctx context.Context, targetList int, m Mover) (Outcome, error) {
	if g.state != Dragging {
		return Outcome{Rerender: true}, ErrNotDragging
	}
	if !g.Accepts(targetList) {
		g.state = DroppedInvalid
		return Outcome{Rerender: true}, nil
	}
	to := g.position()
	if to < 0 || to >= len(g.order) {
		g.state = DroppedInvalid
		return Outcome{Rerender: true}, nil
	}
	g.state = DroppedValid
	if to == g.origin {
		return Outcome{}, nil
	}

	var err error
	if g.kind == KindList {
		err = m.MoveList(ctx, g.origin, to)
	} else {
		err = m.MoveItem(ctx, g.originList, g.origin, to)
	}
	if err != nil {
		g.state = DroppedInvalid
		return Outcome{Rerender: true}, err
	}
	g.processed = true
	// The final render happens in End.
	return Outcome{Committed: true}, nil
}

// DropOutside handles a release outside any valid container.
func (g *Gesture) DropOutside() Outcome {
	if g.state == Dragging {
		g.state = DroppedInvalid
	}
	return Outcome{Committed: g.processed, Rerender: true}
}

// Cancel abandons the drag without a drop.
func (g *Gesture) Cancel() {
	if g.state == Dragging {
		g.state = Cancelled
	}
}

// End finishes the gesture. The view always re-renders from the model: after
// a processed drop that resynchronises the preview, otherwise it rolls the
// preview back.
func (g *Gesture) End() Outcome {
	out := Outcome{Committed: g.processed, Rerender: true}
	*g = Gesture{}
	return out
}

func (g *Gesture) position() int {
	for i, v := range g.order {
		if v == g.origin {
			return i
		}
	}
	return -1
}

func (g *Gesture) without() []int {
	rest := make([]int, 0, len(g.order))
	for _, v := range g.order {
		if v != g.origin {
			rest = append(rest, v)
		}
	}
	return rest
}

// reflow places the dragged element before the sibling whose committed index
// is before, or at the end when before is -1.
func (g *Gesture) reflow(before int) {
	rest := g.without()
	at := len(rest)
	for i, v := range rest {
		if v == before {
			at = i
			break
		}
	}
	g.order = insertAt(rest, at, g.origin)
}

func insertAt(s []int, at, v int) []int {
	out := make([]int, 0, len(s)+1)
	out = append(out, s[:at]...)
	out = append(out, v)
	return append(out, s[at:]...)
}

// Box is the vertical extent of a rendered sibling.
type Box struct {
	Top    float64
	Height float64
}

// Mid is the vertical midpoint.
func (b Box) Mid() float64 { return b.Top + b.Height/2 }

// InsertBefore returns the index of the box the dragged element should be
// placed before when the pointer is at y: the closest box whose midpoint is
// still below the pointer. It returns -1 when the pointer is below every
// midpoint, meaning append.
func InsertBefore(boxes []Box, y float64) int {
	best := -1
	closest := math.Inf(-1)
	for i, b := range boxes {
		offset := y - b.Mid()
		if offset < 0 && offset > closest {
			closest = offset
			best = i
		}
	}
	return best
}
