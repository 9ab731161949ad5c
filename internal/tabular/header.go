package tabular

import "strings"

// Spreadsheet readers name blank header cells "Unnamed: N"; those never count
// as real header strings.
const placeholderMark = "Unnamed"

func isHeaderString(c Cell) bool {
	return c.Kind == KindString && !strings.Contains(c.Str, placeholderMark)
}

func headerStrings(row []Cell) (count, nonNull int) {
	for _, c := range row {
		if c.IsEmpty() {
			continue
		}
		nonNull++
		if isHeaderString(c) {
			count++
		}
	}
	return count, nonNull
}

// InferHeader locates the true header row of a raw block whose leading rows
// may be sheet metadata.
//
// The first row is accepted as-is when more than half of the block's columns
// are non-placeholder strings. Otherwise the remaining rows are scanned top
// to bottom and the first row whose non-placeholder-string share of non-null
// cells exceeds one half (strictly — a ratio of exactly 0.5 does not
// qualify) is promoted; every row at or above it is discarded from the body.
//
// When no row qualifies the block is returned unchanged, with the first row
// as header, together with ErrNoHeader so the caller can decide.
func InferHeader(g Grid) (Table, error) {
	if len(g.Rows) == 0 {
		return Table{}, ErrEmptyGrid
	}
	width := g.Width()

	first := g.Rows[0]
	if count, _ := headerStrings(first); count*2 > width {
		return promote(first, g.Rows[1:], width), nil
	}

	for i := 1; i < len(g.Rows); i++ {
		count, nonNull := headerStrings(g.Rows[i])
		if nonNull > 0 && count*2 > nonNull {
			return promote(g.Rows[i], g.Rows[i+1:], width), nil
		}
	}

	return promote(first, g.Rows[1:], width), ErrNoHeader
}

func promote(header []Cell, body [][]Cell, width int) Table {
	cols := make([]string, width)
	for j := 0; j < width; j++ {
		if j < len(header) {
			cols[j] = strings.TrimSpace(header[j].Text())
		}
	}
	rows := make([][]Cell, len(body))
	copy(rows, body)
	return Table{Columns: cols, Rows: rows}
}
