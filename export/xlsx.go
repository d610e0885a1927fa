// Package export turns archived submissions into a spreadsheet.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/mbolis/intake-form/form"
	"github.com/mbolis/intake-form/model"
)

var fixedHeaders = []string{"id", "time", "ip", "lang"}

// WriteXLSX writes one header row (fixed columns, then every field name in
// form order) followed by one row per submission. Repeated values share a
// cell, separated by "; ".
func WriteXLSX(w io.Writer, def form.Definition, subs []model.Submission) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	names := def.Names()

	headers := append(append([]string{}, fixedHeaders...), names...)
	if err := setRow(f, sheet, 1, headers); err != nil {
		return err
	}

	for i, sub := range subs {
		row := []string{sub.ID, sub.Time.UTC().Format(time.RFC3339), sub.IP, string(sub.Lang)}
		for _, name := range names {
			row = append(row, strings.Join(sub.Fields[name], "; "))
		}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func setRow(f *excelize.File, sheet string, row int, values []string) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("set %s: %w", cell, err)
		}
	}
	return nil
}
