// Package paramvalue implements the ParameterValue tagged variant: either a
// plain text token or a decimal number retained in its original textual
// form for exact round-tripping ("1" vs "1.0").
package paramvalue

import "github.com/shopspring/decimal"

// Value is the tagged variant of a parameter binding's value.
type Value interface {
	// Display is the textual form substituted into command/name templates.
	Display() string
	isValue()
}

// Text is a plain string parameter value, as produced by --parameter-list.
type Text struct {
	S string
}

func (t Text) Display() string { return t.S }
func (Text) isValue()          {}

// Numeric is a decimal parameter value, as produced by --parameter-scan.
// The original textual form is kept alongside the parsed decimal so that
// "1" and "1.0" render distinctly in output.
type Numeric struct {
	D       decimal.Decimal
	Literal string
}

func (n Numeric) Display() string { return n.Literal }
func (Numeric) isValue()          {}

// NewText builds a Text value.
func NewText(s string) Text { return Text{S: s} }

// NewNumeric parses literal as a decimal, retaining literal verbatim for
// display.
func NewNumeric(literal string) (Numeric, error) {
	d, err := decimal.NewFromString(literal)
	if err != nil {
		return Numeric{}, err
	}
	return Numeric{D: d, Literal: literal}, nil
}
