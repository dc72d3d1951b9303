// Package export writes the visible grid contents to an Excel workbook.
package export

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/joe/model-sweep/internal/catalog"
)

// SheetName is the single worksheet the workbook carries.
const SheetName = "Models"

// DefaultFileName is suggested when the user has not picked a target.
const DefaultFileName = "comfyui_models.xlsx"

const maxColumnWidth = 80

var headers = []string{"Directory", "Name", "Length", "LastAccessTime", "LastWriteTime", "CreationTime"}

// WriteXLSX writes the rows to path as an Excel workbook with a frozen
// header row and columns sized to their content.
func WriteXLSX(path string, rows []catalog.Row) error {
	book := excelize.NewFile()
	defer func() { _ = book.Close() }()

	index, err := book.NewSheet(SheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	book.SetActiveSheet(index)

	err = book.DeleteSheet(book.GetSheetName(0))
	if err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	err = book.SetSheetRow(SheetName, "A1", &headers)
	if err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = len(header)
	}

	for i, row := range rows {
		cells := []any{row.Directory, row.Name, row.Length, row.LastAccessTime, row.LastWriteTime, row.CreationTime}

		cell, cellErr := excelize.CoordinatesToCellName(1, i+2)
		if cellErr != nil {
			return fmt.Errorf("failed to address row %d: %w", i+2, cellErr)
		}

		err = book.SetSheetRow(SheetName, cell, &cells)
		if err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}

		trackWidths(widths, row)
	}

	err = book.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
	if err != nil {
		return fmt.Errorf("failed to freeze header: %w", err)
	}

	for i := range headers {
		column, colErr := excelize.ColumnNumberToName(i + 1)
		if colErr != nil {
			return fmt.Errorf("failed to name column %d: %w", i+1, colErr)
		}

		width := widths[i] + 2
		if width > maxColumnWidth {
			width = maxColumnWidth
		}

		err = book.SetColWidth(SheetName, column, column, float64(width))
		if err != nil {
			return fmt.Errorf("failed to size column %s: %w", column, err)
		}
	}

	err = book.SaveAs(path)
	if err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	return nil
}

// trackWidths grows the per-column content widths to cover one row.
func trackWidths(widths []int, row catalog.Row) {
	values := []string{
		row.Directory,
		row.Name,
		strconv.FormatInt(row.Length, 10),
		row.LastAccessTime,
		row.LastWriteTime,
		row.CreationTime,
	}

	for i, value := range values {
		if len(value) > widths[i] {
			widths[i] = len(value)
		}
	}
}
