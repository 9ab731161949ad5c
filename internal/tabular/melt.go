package tabular

import "fmt"

// Melt reshapes a wide table into long form: one output row per (input row ×
// non-identifier column). Identifier columns are carried through unchanged,
// the melted column's name lands in dimensionName and its cell in valueName.
// Row order is stable: input order, then column order within each input row.
// Long rows whose identifier cells are all-present survive; any row with an
// empty identifier is dropped.
func Melt(t Table, ids []string, dimensionName, valueName string) (Table, error) {
	idIdx := make([]int, len(ids))
	isID := make(map[int]bool, len(ids))
	for k, name := range ids {
		j := t.Col(name)
		if j < 0 {
			return Table{}, fmt.Errorf("melt id %q: %w", name, ErrMissingColumn)
		}
		idIdx[k] = j
		isID[j] = true
	}

	valueIdx := make([]int, 0, len(t.Columns)-len(ids))
	for j := range t.Columns {
		if !isID[j] {
			valueIdx = append(valueIdx, j)
		}
	}

	cols := append(append([]string{}, ids...), dimensionName, valueName)
	out := Table{Columns: cols}

	for i := range t.Rows {
		idCells := make([]Cell, len(idIdx))
		complete := true
		for k, j := range idIdx {
			c := EmptyCell()
			if j < len(t.Rows[i]) {
				c = t.Rows[i][j]
			}
			if c.IsEmpty() {
				complete = false
			}
			idCells[k] = c
		}
		if !complete {
			continue
		}
		for _, j := range valueIdx {
			v := EmptyCell()
			if j < len(t.Rows[i]) {
				v = t.Rows[i][j]
			}
			row := append(append([]Cell{}, idCells...), StringCell(t.Columns[j]), v)
			out.Rows = append(out.Rows, row)
		}
	}
	return out, nil
}
