package tabular

import "fmt"

// Pivot turns a long (index, key, value) table into one row per distinct
// index value with one column per distinct key. Both index rows and key
// columns keep first-appearance order. A repeated (index, key) pair keeps the
// last value seen.
func Pivot(t Table, indexCol, keyCol, valueCol string) (Table, error) {
	for _, name := range []string{indexCol, keyCol, valueCol} {
		if t.Col(name) < 0 {
			return Table{}, fmt.Errorf("pivot column %q: %w", name, ErrMissingColumn)
		}
	}

	var (
		indexOrder []string
		keyOrder   []string
		seenIndex  = map[string]int{}
		seenKey    = map[string]int{}
		values     = map[string]map[string]Cell{}
	)
	for i := range t.Rows {
		idx := t.Cell(i, indexCol).Text()
		key := t.Cell(i, keyCol).Text()
		if idx == "" || key == "" {
			continue
		}
		if _, ok := seenIndex[idx]; !ok {
			seenIndex[idx] = len(indexOrder)
			indexOrder = append(indexOrder, idx)
			values[idx] = map[string]Cell{}
		}
		if _, ok := seenKey[key]; !ok {
			seenKey[key] = len(keyOrder)
			keyOrder = append(keyOrder, key)
		}
		values[idx][key] = t.Cell(i, valueCol)
	}

	out := Table{Columns: append([]string{indexCol}, keyOrder...)}
	for _, idx := range indexOrder {
		row := make([]Cell, 1+len(keyOrder))
		row[0] = StringCell(idx)
		for k, key := range keyOrder {
			row[k+1] = values[idx][key]
		}
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}

// LeftJoin appends every non-key column of right onto main, matching rows by
// the shared key column. Property keys are compared exactly first and then
// with the ".N" duplicate-column suffix stripped, so "PagenameA.1" still
// finds a rate-card row stored as "PagenameA". Every main row is retained;
// misses null-fill the joined columns and are counted for the verification
// summary. Right-side rows with no main match are dropped.
func LeftJoin(main, right Table, key string) (Table, int, error) {
	if main.Col(key) < 0 || right.Col(key) < 0 {
		return Table{}, 0, fmt.Errorf("join key %q: %w", key, ErrMissingColumn)
	}

	exact := map[string]int{}
	normalized := map[string]int{}
	for i := range right.Rows {
		k := right.Cell(i, key).Text()
		if _, ok := exact[k]; !ok {
			exact[k] = i
		}
		nk := NormalizeProperty(k)
		if _, ok := normalized[nk]; !ok {
			normalized[nk] = i
		}
	}

	joined := make([]string, 0, len(right.Columns)-1)
	joinedIdx := make([]int, 0, len(right.Columns)-1)
	for j, name := range right.Columns {
		if j == right.Col(key) {
			continue
		}
		joined = append(joined, name)
		joinedIdx = append(joinedIdx, j)
	}

	out := Table{Columns: append(append([]string{}, main.Columns...), joined...)}
	misses := 0
	for i := range main.Rows {
		k := main.Cell(i, key).Text()
		ri, ok := exact[k]
		if !ok {
			ri, ok = normalized[NormalizeProperty(k)]
		}
		row := append([]Cell{}, main.Rows[i]...)
		for len(row) < len(main.Columns) {
			row = append(row, EmptyCell())
		}
		if !ok {
			misses++
			for range joinedIdx {
				row = append(row, EmptyCell())
			}
		} else {
			for _, j := range joinedIdx {
				if j < len(right.Rows[ri]) {
					row = append(row, right.Rows[ri][j])
				} else {
					row = append(row, EmptyCell())
				}
			}
		}
		out.Rows = append(out.Rows, row)
	}
	return out, misses, nil
}
