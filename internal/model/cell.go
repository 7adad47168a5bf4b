package model

import (
	"strconv"
	"strings"
)

// CellKind discriminates the states a score cell can be in
type CellKind string

const (
	CellEmpty  CellKind = "empty"  // nothing entered yet
	CellRaw    CellKind = "raw"    // unparseable partial input, kept for display
	CellParsed CellKind = "parsed" // numeric value, counted toward totals
)

// CellValue is one player's entry in a score line. Only Parsed cells
// contribute to totals; Raw retains the user's text (e.g. a lone "-")
// until it is corrected, contributing zero in the meantime.
type CellValue struct {
	Kind   CellKind
	Text   string
	Number float64 // set only when Kind is CellParsed
}

// EmptyCell returns a cell with no entry
func EmptyCell() CellValue {
	return CellValue{Kind: CellEmpty}
}

// IsParsed reports whether the cell holds a counted numeric value.
// The zero CellValue is treated like an empty cell.
func (c CellValue) IsParsed() bool {
	return c.Kind == CellParsed
}

// ParseCell normalizes raw numeric input into a cell value.
// Leading zeros are stripped ("065" becomes "65", a bare "0" stays "0");
// input that does not parse as a float is kept as Raw text.
func ParseCell(input string) CellValue {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return EmptyCell()
	}

	normalized := stripLeadingZeros(trimmed)
	n, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return CellValue{Kind: CellRaw, Text: trimmed}
	}

	return CellValue{Kind: CellParsed, Text: normalized, Number: n}
}

// stripLeadingZeros drops redundant leading zeros while keeping a bare
// "0" and the zero before a decimal point ("0.5")
func stripLeadingZeros(s string) string {
	sign := ""
	rest := s
	if strings.HasPrefix(rest, "-") || strings.HasPrefix(rest, "+") {
		sign = rest[:1]
		rest = rest[1:]
	}

	for len(rest) > 1 && rest[0] == '0' && rest[1] != '.' {
		rest = rest[1:]
	}

	return sign + rest
}
