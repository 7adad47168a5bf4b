package model

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type CellSuite struct {
	suite.Suite
}

func TestCellSuite(t *testing.T) {
	suite.Run(t, new(CellSuite))
}

func (s *CellSuite) TestParseStripsLeadingZeros() {
	cell := ParseCell("065")
	s.Equal(CellParsed, cell.Kind)
	s.Equal("65", cell.Text)
	s.Equal(65.0, cell.Number)

	cell = ParseCell("007")
	s.Equal("7", cell.Text)
	s.Equal(7.0, cell.Number)
}

func (s *CellSuite) TestParseKeepsBareZero() {
	cell := ParseCell("0")
	s.Equal(CellParsed, cell.Kind)
	s.Equal("0", cell.Text)
	s.Equal(0.0, cell.Number)
}

func (s *CellSuite) TestParseKeepsZeroBeforeDecimalPoint() {
	cell := ParseCell("0.5")
	s.Equal(CellParsed, cell.Kind)
	s.Equal("0.5", cell.Text)
	s.Equal(0.5, cell.Number)
}

func (s *CellSuite) TestParseNegativeWithLeadingZeros() {
	cell := ParseCell("-007")
	s.Equal(CellParsed, cell.Kind)
	s.Equal("-7", cell.Text)
	s.Equal(-7.0, cell.Number)
}

func (s *CellSuite) TestParseEmptyInputIsEmptyCell() {
	s.Equal(CellEmpty, ParseCell("").Kind)
	s.Equal(CellEmpty, ParseCell("   ").Kind)
}

func (s *CellSuite) TestParsePartialInputIsRetainedAsRaw() {
	cell := ParseCell("-")
	s.Equal(CellRaw, cell.Kind)
	s.Equal("-", cell.Text)
	s.False(cell.IsParsed())
}

func (s *CellSuite) TestZeroValueIsNotParsed() {
	var cell CellValue
	s.False(cell.IsParsed())
}
