package render

import (
	"fmt"

	"pageflow/pkg/geom"
)

// Op identifies a drawing instruction. The vocabulary follows a gg-style
// immediate-mode context: state push/pop, color and line width, then shapes.
type Op int

const (
	OpPush Op = iota
	OpPop
	OpSetColor
	OpSetLineWidth
	OpClipRect
	OpFillRect
	OpStrokeRect
	OpLine
	OpText
)

var opNames = map[Op]string{
	OpPush:         "push",
	OpPop:          "pop",
	OpSetColor:     "color",
	OpSetLineWidth: "line-width",
	OpClipRect:     "clip",
	OpFillRect:     "fill-rect",
	OpStrokeRect:   "stroke-rect",
	OpLine:         "line",
	OpText:         "text",
}

func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return fmt.Sprintf("op(%d)", int(o))
}

// MarshalYAML writes the op by name so instruction dumps stay readable.
func (o Op) MarshalYAML() (interface{}, error) {
	return o.String(), nil
}

// Instruction is one recorded drawing step. Coordinates are in layout
// space (top-left origin); backends flip them as needed.
type Instruction struct {
	Op    Op         `yaml:"op"`
	Rect  geom.Rect  `yaml:"rect,omitempty"`
	X1    float64    `yaml:"x1,omitempty"`
	Y1    float64    `yaml:"y1,omitempty"`
	X2    float64    `yaml:"x2,omitempty"`
	Y2    float64    `yaml:"y2,omitempty"`
	Color geom.Color `yaml:"color,omitempty"`
	Width float64    `yaml:"width,omitempty"`
	Text  string     `yaml:"text,omitempty"`
	Font  string     `yaml:"font,omitempty"`
	Size  float64    `yaml:"size,omitempty"`
}

func (i Instruction) String() string {
	switch i.Op {
	case OpSetColor:
		return fmt.Sprintf("%s %g %g %g", i.Op, i.Color.R, i.Color.G, i.Color.B)
	case OpSetLineWidth:
		return fmt.Sprintf("%s %g", i.Op, i.Width)
	case OpClipRect, OpFillRect, OpStrokeRect:
		return fmt.Sprintf("%s %s", i.Op, i.Rect)
	case OpLine:
		return fmt.Sprintf("%s %g,%g -> %g,%g", i.Op, i.X1, i.Y1, i.X2, i.Y2)
	case OpText:
		return fmt.Sprintf("%s %q at %g,%g (%s %g)", i.Op, i.Text, i.X1, i.Y1, i.Font, i.Size)
	default:
		return i.Op.String()
	}
}
