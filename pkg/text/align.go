package text

import "fmt"

type HAlign int

const (
	Left HAlign = iota
	Center
	Right
)

type VAlign int

const (
	Top VAlign = iota
	Middle
	Bottom
)

// Alignment positions a line of text inside its box. Indent, in inches,
// pushes left-aligned text right and right-aligned text left; it is ignored
// for centered text.
type Alignment struct {
	H      HAlign
	V      VAlign
	Indent float64
}

var (
	LeftTop      = Alignment{H: Left, V: Top}
	LeftCenter   = Alignment{H: Left, V: Middle}
	LeftBottom   = Alignment{H: Left, V: Bottom}
	CenterTop    = Alignment{H: Center, V: Top}
	CenterCenter = Alignment{H: Center, V: Middle}
	CenterBottom = Alignment{H: Center, V: Bottom}
	RightTop     = Alignment{H: Right, V: Top}
	RightCenter  = Alignment{H: Right, V: Middle}
	RightBottom  = Alignment{H: Right, V: Bottom}
)

// Indented returns a with an indent of inches from its aligned edge.
func (a Alignment) Indented(inches float64) Alignment {
	a.Indent = inches
	return a
}

func (a Alignment) String() string {
	h := [...]string{"left", "center", "right"}[a.H]
	v := [...]string{"top", "center", "bottom"}[a.V]
	if a.Indent != 0 {
		return fmt.Sprintf("%s-%s+%gin", h, v, a.Indent)
	}
	return h + "-" + v
}
