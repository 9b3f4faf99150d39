// Package export renders a user's budgets as an xlsx workbook.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"cashtrackr/internal/models"
)

const (
	budgetsSheet  = "Budgets"
	expensesSheet = "Expenses"
	dateLayout    = "2006-01-02"

	// ContentType is the MIME type of the generated workbook.
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var (
	budgetHeaders  = []string{"ID", "Name", "Amount", "Spent", "Remaining", "Created"}
	expenseHeaders = []string{"ID", "Budget ID", "Budget", "Name", "Amount", "Created"}
)

// WriteBudgets writes one row per budget to the Budgets sheet and one row per
// expense to the Expenses sheet.
func WriteBudgets(w io.Writer, budgets []models.Budget) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", budgetsSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(expensesSheet); err != nil {
		return fmt.Errorf("failed to create expenses sheet: %w", err)
	}

	if err := writeRow(f, budgetsSheet, 1, toRow(budgetHeaders)); err != nil {
		return err
	}
	if err := writeRow(f, expensesSheet, 1, toRow(expenseHeaders)); err != nil {
		return err
	}

	expenseRow := 2
	for i, b := range budgets {
		spent := Spent(b)
		row := []interface{}{
			b.ID,
			b.Name,
			b.Amount.InexactFloat64(),
			spent.InexactFloat64(),
			b.Amount.Sub(spent).InexactFloat64(),
			b.CreatedAt.Format(dateLayout),
		}
		if err := writeRow(f, budgetsSheet, i+2, row); err != nil {
			return err
		}

		for _, e := range b.Expenses {
			row := []interface{}{
				e.ID,
				b.ID,
				b.Name,
				e.Name,
				e.Amount.InexactFloat64(),
				e.CreatedAt.Format(dateLayout),
			}
			if err := writeRow(f, expensesSheet, expenseRow, row); err != nil {
				return err
			}
			expenseRow++
		}
	}

	_ = f.SetColWidth(budgetsSheet, "B", "B", 30)
	_ = f.SetColWidth(expensesSheet, "C", "D", 30)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}

func toRow(headers []string) []interface{} {
	row := make([]interface{}, len(headers))
	for i, h := range headers {
		row[i] = h
	}
	return row
}
