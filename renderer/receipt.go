package renderer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/biashara"
)

// ReceiptWidth is the number of characters on a line of a 58mm thermal printer.
const ReceiptWidth = 32

// Receipt renders a sale as the text of a 58mm thermal printer receipt.
func Receipt(sale biashara.SaleRecord) string {
	var b strings.Builder
	center := func(s string) {
		if pad := (ReceiptWidth - len(s)) / 2; pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteString(s)
		b.WriteString("\n")
	}
	pair := func(left, right string) {
		gap := ReceiptWidth - len(left) - len(right)
		if gap < 1 {
			gap = 1
		}
		fmt.Fprintf(&b, "%s%s%s\n", left, strings.Repeat(" ", gap), right)
	}
	line := func() { b.WriteString(strings.Repeat("-", ReceiptWidth) + "\n") }

	center("BIASHARA MASTER")
	center("BOUTIQUE EDITION")
	center("Nairobi, Kenya")
	center("TEL: +254 700 000 000")
	line()
	pair("DATE:", Day(sale.Date))
	pair("TIME:", Clock(sale.Date))
	pair("TXN#:", strings.ToUpper(txn(sale.ID)))
	line()
	b.WriteString("DESCRIPTION       QTY      PRICE\n")
	name := []rune(sale.ItemName)
	if len(name) > 16 {
		name = name[:16]
	}
	fmt.Fprintf(&b, "%-16s %4s %10s\n", string(name), strconv.Itoa(sale.Quantity), sale.TotalPrice.Round().Decimal().String())
	line()
	pair("GRAND TOTAL:", sale.TotalPrice.Display())
	line()
	center("THANK YOU FOR VISITING!")
	center("GOODS ONCE SOLD ARE NOT")
	center("RETURNABLE.")
	center("EXCHANGE WITHIN 7 DAYS")
	center("WITH RECEIPT.")
	center("--- Powered by Biashara ---")
	return b.String()
}

// txn shortens a record id to fit the receipt line.
func txn(id string) string {
	id = strings.ReplaceAll(id, "-", "")
	if len(id) > 12 {
		id = id[:12]
	}
	return id
}
