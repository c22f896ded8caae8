package listbox

import "fmt"

// Outcome is the raw decision for a candidate row position, before it is
// resolved against the table's header configuration into a Role.
type Outcome int

const (
	outcomeUnset Outcome = iota
	// Retry means the row does not fit here; ask again on a fresh page.
	Retry
	// Lead starts a page segment: the header if there is one, else a Top row.
	Lead
	// LeadOrFull is the header if there is one, else a FullPageItem.
	LeadOrFull
	FullPage
	// Body is an ordinary row, possibly promoted to carry the top border.
	Body
	Bottom
)

var outcomeNames = map[Outcome]string{
	Retry:      "retry",
	Lead:       "lead",
	LeadOrFull: "lead-or-full",
	FullPage:   "full-page",
	Body:       "body",
	Bottom:     "bottom",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// rowState holds the six facts a row position is classified on.
type rowState struct {
	last        bool // last data row
	newPage     bool // the candidate position opens a page
	roomHeader  bool // a header and this row both fit below
	roomRowNext bool // this row and the following one both fit
	roomRow     bool // this row fits on its own
	first       bool // nothing of the table has been drawn yet
}

func bit(b bool, shift uint) int {
	if b {
		return 1 << shift
	}
	return 0
}

// key packs the state as last|newPage|roomHeader|roomRowNext|roomRow|first,
// most significant bit first.
func (s rowState) key() int {
	return bit(s.last, 5) | bit(s.newPage, 4) | bit(s.roomHeader, 3) |
		bit(s.roomRowNext, 2) | bit(s.roomRow, 1) | bit(s.first, 0)
}

func (s rowState) String() string {
	return fmt.Sprintf("last=%t new-page=%t room-header=%t room-row-next=%t room-row=%t first=%t",
		s.last, s.newPage, s.roomHeader, s.roomRowNext, s.roomRow, s.first)
}

// decisions lists the outcome of every combination of the six inputs.
// Keys read last, newPage, roomHeader, roomRowNext, roomRow, first.
var decisions = [64]Outcome{
	0b000000: Retry,
	0b000001: Retry,
	0b000010: Bottom,
	0b000011: Retry,
	0b000100: Retry,
	0b000101: Retry,
	0b000110: Body,
	0b000111: Body,
	0b001000: Retry,
	0b001001: Retry,
	0b001010: Bottom,
	0b001011: Lead,
	0b001100: Retry,
	0b001101: Retry,
	0b001110: Body,
	0b001111: Lead,
	0b010000: Retry,
	0b010001: Retry,
	0b010010: FullPage,
	0b010011: FullPage,
	0b010100: Retry,
	0b010101: Retry,
	0b010110: Body,
	0b010111: Body,
	0b011000: Retry,
	0b011001: Retry,
	0b011010: FullPage,
	0b011011: FullPage,
	0b011100: Retry,
	0b011101: Retry,
	0b011110: Lead,
	0b011111: Lead,
	0b100000: Retry,
	0b100001: Retry,
	0b100010: Bottom,
	0b100011: FullPage,
	0b100100: Retry,
	0b100101: Retry,
	0b100110: Bottom,
	0b100111: FullPage,
	0b101000: Retry,
	0b101001: Retry,
	0b101010: Bottom,
	0b101011: LeadOrFull,
	0b101100: Retry,
	0b101101: Retry,
	0b101110: Bottom,
	0b101111: LeadOrFull,
	0b110000: Retry,
	0b110001: Retry,
	0b110010: FullPage,
	0b110011: FullPage,
	0b110100: Retry,
	0b110101: Retry,
	0b110110: FullPage,
	0b110111: FullPage,
	0b111000: Retry,
	0b111001: Retry,
	0b111010: LeadOrFull,
	0b111011: LeadOrFull,
	0b111100: Retry,
	0b111101: Retry,
	0b111110: LeadOrFull,
	0b111111: LeadOrFull,
}

// classify looks up the outcome for s. Every entry of decisions is set, so
// the panic only fires if the table is edited into an invalid state.
func classify(s rowState) Outcome {
	o := decisions[s.key()]
	if o == outcomeUnset {
		panic(fmt.Sprintf("listbox: no placement decision for %s", s))
	}
	return o
}
