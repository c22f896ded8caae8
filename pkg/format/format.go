// Package format renders raw cell strings according to a column's value type.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"pageflow/pkg/geom"
)

// Kind is the value type of a column.
type Kind int

const (
	String Kind = iota
	Currency
	Number
	GroupedCurrency
)

func (k Kind) String() string {
	switch k {
	case Currency:
		return "currency"
	case Number:
		return "number"
	case GroupedCurrency:
		return "grouped-currency"
	default:
		return "string"
	}
}

// ColumnType is a value kind plus the number of decimals for numeric kinds.
type ColumnType struct {
	Kind      Kind
	Precision int
}

var Text = ColumnType{Kind: String}

func CurrencyOf(precision int) ColumnType {
	return ColumnType{Kind: Currency, Precision: precision}
}

func NumberOf(precision int) ColumnType {
	return ColumnType{Kind: Number, Precision: precision}
}

func GroupedCurrencyOf(precision int) ColumnType {
	return ColumnType{Kind: GroupedCurrency, Precision: precision}
}

func (c ColumnType) String() string {
	if c.Kind == String {
		return c.Kind.String()
	}
	return fmt.Sprintf("%s(%d)", c.Kind, c.Precision)
}

var (
	// AlertColor marks negative amounts.
	AlertColor = geom.Red
	// NaNColor marks numeric cells whose text did not parse.
	NaNColor = geom.Color{R: 0.5, G: 0.3, B: 0.5}
)

// NaN is shown in place of unparseable numeric values.
const NaN = "NAN"

var printer = message.NewPrinter(language.AmericanEnglish)

// Cell formats raw for its column and picks the text color. Header cells and
// String columns pass through unchanged in color c.
func Cell(t ColumnType, raw string, c geom.Color, isHeader bool) (string, geom.Color) {
	if isHeader || t.Kind == String {
		return raw, c
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return NaN, NaNColor
	}

	switch t.Kind {
	case Currency:
		if v < 0 {
			return "($" + strconv.FormatFloat(-v, 'f', t.Precision, 64) + ")", AlertColor
		}
		return "$" + strconv.FormatFloat(v, 'f', t.Precision, 64), c
	case GroupedCurrency:
		verb := fmt.Sprintf("%%.%df", t.Precision)
		if v < 0 {
			return "($" + printer.Sprintf(verb, -v) + ")", AlertColor
		}
		return "$" + printer.Sprintf(verb, v), c
	default:
		s := strconv.FormatFloat(v, 'f', t.Precision, 64)
		if v < 0 {
			return s, AlertColor
		}
		return s, c
	}
}
