package listbox

import "fmt"

type BorderKind int

const (
	NoBorders BorderKind = iota
	InnerOnly
	OuterOnly
	AllBorders
)

// BorderStyle says which table lines are drawn and how thick they are.
// Inner lines separate cells; the outer line frames each page segment.
type BorderStyle struct {
	Kind  BorderKind
	Inner float64
	Outer float64
}

func None() BorderStyle { return BorderStyle{Kind: NoBorders} }

func Inner(thickness float64) BorderStyle {
	return BorderStyle{Kind: InnerOnly, Inner: thickness}
}

func Outer(thickness float64) BorderStyle {
	return BorderStyle{Kind: OuterOnly, Outer: thickness}
}

func All(inner, outer float64) BorderStyle {
	return BorderStyle{Kind: AllBorders, Inner: inner, Outer: outer}
}

func (s BorderStyle) hasInner() bool { return s.Kind == InnerOnly || s.Kind == AllBorders }
func (s BorderStyle) hasOuter() bool { return s.Kind == OuterOnly || s.Kind == AllBorders }

// halves returns half the inner and outer thickness. A line is centered on
// the cell edge, so each neighbour gives up half of it.
func (s BorderStyle) halves() (inner, outer float64) {
	if s.hasInner() {
		inner = s.Inner / 2
	}
	if s.hasOuter() {
		outer = s.Outer / 2
	}
	return inner, outer
}

func (s BorderStyle) String() string {
	switch s.Kind {
	case InnerOnly:
		return fmt.Sprintf("inner(%g)", s.Inner)
	case OuterOnly:
		return fmt.Sprintf("outer(%g)", s.Outer)
	case AllBorders:
		return fmt.Sprintf("all(%g, %g)", s.Inner, s.Outer)
	default:
		return "none"
	}
}

// edges marks which sides of a cell lie on the outer frame.
type edges struct {
	top, left, right, bottom bool
	// zeroTop drops the border share on top, used where a borderless header
	// already accounts for that space.
	zeroTop bool
}

// insets returns how far the drawable interior of a cell sits inside its
// rectangle: half the line on each side plus margin.
func (s BorderStyle) insets(e edges, margin float64) (top, left, right, bottom float64) {
	inner, outer := s.halves()
	side := func(onFrame bool) float64 {
		if onFrame {
			return outer + margin
		}
		return inner + margin
	}
	top, left, right, bottom = side(e.top), side(e.left), side(e.right), side(e.bottom)
	if e.zeroTop {
		top = margin
	}
	return top, left, right, bottom
}
