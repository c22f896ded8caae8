package render

import "fmt"

// Sink receives drawing instructions page by page. Instruction order within
// a page is significant: later instructions paint over earlier ones.
type Sink interface {
	// EnsurePageCapacity grows the sink so that page is addressable.
	EnsurePageCapacity(page int)
	PageCount() int
	Append(page int, ins Instruction)
}

// Document is an in-memory Sink that records instructions per page.
type Document struct {
	pages [][]Instruction
}

func NewDocument() *Document {
	return &Document{}
}

func (d *Document) EnsurePageCapacity(page int) {
	for len(d.pages) <= page {
		d.pages = append(d.pages, nil)
	}
}

func (d *Document) PageCount() int {
	return len(d.pages)
}

// Append records ins on page. Writing to a page that was never grown with
// EnsurePageCapacity is a caller bug and panics.
func (d *Document) Append(page int, ins Instruction) {
	if page < 0 || page >= len(d.pages) {
		panic(fmt.Sprintf("render: append to page %d, document has %d pages", page, len(d.pages)))
	}
	d.pages[page] = append(d.pages[page], ins)
}

// Page returns the instructions recorded for page, or nil if out of range.
func (d *Document) Page(page int) []Instruction {
	if page < 0 || page >= len(d.pages) {
		return nil
	}
	return d.pages[page]
}

// Pages returns every page's instructions in page order.
func (d *Document) Pages() [][]Instruction {
	return d.pages
}

// Count returns how many instructions with the given op were recorded on page.
func (d *Document) Count(page int, op Op) int {
	n := 0
	for _, ins := range d.Page(page) {
		if ins.Op == op {
			n++
		}
	}
	return n
}
