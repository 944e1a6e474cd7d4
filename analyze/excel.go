package analyze

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// workbookGrid reads the active sheet of an embedded spreadsheet blob and
// returns its rows as strings, exactly as the sheet stores them.
func workbookGrid(blob []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(blob))
	if err != nil {
		return nil, fmt.Errorf("open embedded workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if sheet == "" {
		return nil, fmt.Errorf("embedded workbook has no active sheet")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}
