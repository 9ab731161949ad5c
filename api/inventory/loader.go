package inventory

import (
	"encoding/csv"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"AdServeDesk/internal/tabular"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

var ErrUnsupportedFile = errors.New("unsupported file type")

// Sheet names with conventional roles in the upload workbooks.
const (
	dataSheetName  = "data"
	eventSheetName = "eventname"
)

// Sheet is one named grid read from an upload.
type Sheet struct {
	Name string
	Grid tabular.Grid
}

// Workbook is the parsed upload: every sheet as a typed grid, in file order.
type Workbook struct {
	Sheets []Sheet
}

// First returns the first sheet's grid; uploads with a single unnamed block
// (CSV) land there.
func (wb *Workbook) First() (tabular.Grid, bool) {
	if len(wb.Sheets) == 0 {
		return tabular.Grid{}, false
	}
	return wb.Sheets[0].Grid, true
}

// Sheet finds a sheet by name, case-insensitively.
func (wb *Workbook) Sheet(name string) (tabular.Grid, bool) {
	for _, s := range wb.Sheets {
		if strings.EqualFold(s.Name, name) {
			return s.Grid, true
		}
	}
	return tabular.Grid{}, false
}

// EventMap loads the date→event mapping from the conventional sheet. A
// workbook without one resolves every date to the sentinel.
func (wb *Workbook) EventMap() EventMap {
	g, ok := wb.Sheet(eventSheetName)
	if !ok {
		return nil
	}
	m, err := LoadEventMap(g)
	if err != nil {
		return nil
	}
	return m
}

func fileExt(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

// ParseWorkbook reads an uploaded spreadsheet or CSV into typed grids.
func ParseWorkbook(file multipart.File, ext string) (*Workbook, error) {
	switch ext {
	case ".csv":
		r := csv.NewReader(file)
		r.FieldsPerRecord = -1
		records, err := r.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		return &Workbook{Sheets: []Sheet{{Name: dataSheetName, Grid: tabular.FromStrings(records)}}}, nil

	case ".xlsx":
		f, err := excelize.OpenReader(file)
		if err != nil {
			return nil, fmt.Errorf("open xlsx: %w", err)
		}
		defer f.Close()
		wb := &Workbook{}
		for _, name := range f.GetSheetList() {
			rows, err := f.GetRows(name)
			if err != nil {
				return nil, fmt.Errorf("read sheet %s: %w", name, err)
			}
			wb.Sheets = append(wb.Sheets, Sheet{Name: name, Grid: tabular.FromStrings(rows)})
		}
		return wb, nil

	case ".xls":
		f, err := xls.OpenReader(file, "utf-8")
		if err != nil {
			return nil, fmt.Errorf("open xls: %w", err)
		}
		wb := &Workbook{}
		for i := 0; i < f.NumSheets(); i++ {
			sheet := f.GetSheet(i)
			if sheet == nil {
				continue
			}
			records := make([][]string, 0, sheet.MaxRow+1)
			for r := 0; r <= int(sheet.MaxRow); r++ {
				row := sheet.Row(r)
				if row == nil {
					records = append(records, nil)
					continue
				}
				rec := make([]string, 0, row.LastCol())
				for j := 0; j < row.LastCol(); j++ {
					rec = append(rec, row.Col(j))
				}
				records = append(records, rec)
			}
			wb.Sheets = append(wb.Sheets, Sheet{Name: sheet.Name, Grid: tabular.FromStrings(records)})
		}
		return wb, nil
	}
	return nil, ErrUnsupportedFile
}
