package renderer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/etnz/biashara"
)

// ReportHeader is the header row of the tabular report.
var ReportHeader = []string{"Type", "Date", "Description/Item", "Category", "Quantity", "Amount", "Profit"}

// ReportRows returns the tabular report of the state: one SALE row per sale
// then one EXPENSE row per expense, without the header. Amounts are plain
// numbers so that spreadsheets can sum them.
func ReportRows(s biashara.State) [][]string {
	rows := make([][]string, 0, len(s.Sales)+len(s.Expenses))
	for _, r := range s.Sales {
		rows = append(rows, []string{
			"SALE", Day(r.Date), r.ItemName, "Revenue",
			strconv.Itoa(r.Quantity), r.TotalPrice.Decimal().String(), r.Profit.Decimal().String(),
		})
	}
	for _, e := range s.Expenses {
		rows = append(rows, []string{
			"EXPENSE", Day(e.Date), e.Description, e.Category,
			"1", e.Amount.Decimal().String(), "0",
		})
	}
	return rows
}

// CSV writes the tabular report with its header.
func CSV(w io.Writer, s biashara.State) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ReportHeader); err != nil {
		return fmt.Errorf("cannot write report: %w", err)
	}
	if err := cw.WriteAll(ReportRows(s)); err != nil {
		return fmt.Errorf("cannot write report: %w", err)
	}
	return nil
}
