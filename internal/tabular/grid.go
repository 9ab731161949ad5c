package tabular

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// Sentinel errors shared by the grid operations. Per-row problems are not
// errors here; callers count and skip those.
var (
	ErrEmptyGrid     = errors.New("grid has no rows")
	ErrNoHeader      = errors.New("no header row found")
	ErrMissingColumn = errors.New("required column not found")
)

type Kind int

const (
	KindEmpty Kind = iota
	KindString
	KindNumber
	KindTime
)

// Cell is one typed spreadsheet cell. The zero value is an empty cell.
type Cell struct {
	Kind Kind
	Str  string
	Num  float64
	Time time.Time
}

func EmptyCell() Cell              { return Cell{} }
func StringCell(s string) Cell    { return Cell{Kind: KindString, Str: s} }
func NumberCell(f float64) Cell   { return Cell{Kind: KindNumber, Num: f} }
func TimeCell(t time.Time) Cell   { return Cell{Kind: KindTime, Time: t} }

func (c Cell) IsEmpty() bool { return c.Kind == KindEmpty }

// Number returns the numeric value of the cell. Numeric-looking strings are
// parsed so CSV sources behave like typed spreadsheet sources.
func (c Cell) Number() (float64, bool) {
	switch c.Kind {
	case KindNumber:
		return c.Num, true
	case KindString:
		f, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(c.Str), ",", ""), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// Text renders the cell for headers and flat output.
func (c Cell) Text() string {
	switch c.Kind {
	case KindString:
		return c.Str
	case KindNumber:
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	case KindTime:
		return c.Time.Format("2006-01-02")
	}
	return ""
}

// Date returns the calendar date carried by the cell with any time-of-day
// component discarded.
func (c Cell) Date() (time.Time, bool) {
	if c.Kind != KindTime {
		return time.Time{}, false
	}
	y, m, d := c.Time.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02-01-2006",
	"02/01/2006",
	"2-1-2006",
	"2006/01/02",
}

// Coerce converts a raw string cell from a CSV or spreadsheet reader into a
// typed Cell: empty, number, date, or plain string, in that order.
func Coerce(raw string) Cell {
	s := normalizeCellString(raw)
	if s == "" {
		return EmptyCell()
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return NumberCell(f)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeCell(t)
		}
	}
	return StringCell(s)
}

// Grid is an untyped rectangular block of cells straight from one sheet.
type Grid struct {
	Rows [][]Cell
}

// FromStrings builds a Grid from the [][]string shape the file readers
// produce, coercing every cell.
func FromStrings(records [][]string) Grid {
	rows := make([][]Cell, len(records))
	for i, rec := range records {
		row := make([]Cell, len(rec))
		for j, raw := range rec {
			row[j] = Coerce(raw)
		}
		rows[i] = row
	}
	return Grid{Rows: rows}
}

// Width is the widest row in the grid. Short rows are treated as padded with
// empty cells.
func (g Grid) Width() int {
	w := 0
	for _, row := range g.Rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

func (g Grid) cell(i, j int) Cell {
	if j < len(g.Rows[i]) {
		return g.Rows[i][j]
	}
	return EmptyCell()
}

// Prune removes rows and columns where every cell is empty. It must run
// before header inference so blank padding rows cannot skew the string-ratio
// scan.
func Prune(g Grid) Grid {
	width := g.Width()
	keepCol := make([]bool, width)
	kept := make([][]Cell, 0, len(g.Rows))

	for i := range g.Rows {
		empty := true
		for j := 0; j < width; j++ {
			if !g.cell(i, j).IsEmpty() {
				empty = false
				keepCol[j] = true
			}
		}
		if !empty {
			kept = append(kept, g.Rows[i])
		}
	}

	out := make([][]Cell, len(kept))
	for i := range kept {
		row := make([]Cell, 0, width)
		for j := 0; j < width; j++ {
			if !keepCol[j] {
				continue
			}
			if j < len(kept[i]) {
				row = append(row, kept[i][j])
			} else {
				row = append(row, EmptyCell())
			}
		}
		out[i] = row
	}
	return Grid{Rows: out}
}

// Table is a grid with a promoted header row.
type Table struct {
	Columns []string
	Rows    [][]Cell
}

// Col returns the index of the named column, or -1.
func (t Table) Col(name string) int {
	for i, c := range t.Columns {
		if strings.EqualFold(strings.TrimSpace(c), strings.TrimSpace(name)) {
			return i
		}
	}
	return -1
}

// Cell fetches one cell by row index and column name. Missing columns and
// ragged rows read as empty.
func (t Table) Cell(row int, name string) Cell {
	j := t.Col(name)
	if j < 0 || j >= len(t.Rows[row]) {
		return EmptyCell()
	}
	return t.Rows[row][j]
}

// DropColumn removes the named column if present and returns the result.
func (t Table) DropColumn(name string) Table {
	j := t.Col(name)
	if j < 0 {
		return t
	}
	cols := append(append([]string{}, t.Columns[:j]...), t.Columns[j+1:]...)
	rows := make([][]Cell, len(t.Rows))
	for i, row := range t.Rows {
		if j >= len(row) {
			rows[i] = row
			continue
		}
		rows[i] = append(append([]Cell{}, row[:j]...), row[j+1:]...)
	}
	return Table{Columns: cols, Rows: rows}
}

// RenameColumn renames the first column matching old.
func (t Table) RenameColumn(old, new string) Table {
	j := t.Col(old)
	if j < 0 {
		return t
	}
	cols := append([]string{}, t.Columns...)
	cols[j] = new
	return Table{Columns: cols, Rows: t.Rows}
}

// Slice returns rows [from, to) as a new table sharing cell data.
func (t Table) Slice(from, to int) Table {
	if from < 0 {
		from = 0
	}
	if to > len(t.Rows) {
		to = len(t.Rows)
	}
	if from > to {
		from = to
	}
	return Table{Columns: t.Columns, Rows: t.Rows[from:to]}
}
