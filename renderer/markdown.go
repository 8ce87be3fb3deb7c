package renderer

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"

	"github.com/etnz/biashara"
	md "github.com/nao1215/markdown"
)

// TableMarkdown renders a ledger table.
func TableMarkdown(t Table) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(t.Title)
	if len(t.Rows) == 0 {
		doc.PlainText("No records yet.")
		return doc.String()
	}
	doc.Table(tableSet(t))
	return doc.String()
}

func tableSet(t Table) md.TableSet {
	align := make([]md.TableAlignment, len(t.Headers))
	for i := range align {
		align[i] = md.AlignLeft
		if slices.Contains(t.Right, i) {
			align[i] = md.AlignRight
		}
	}
	rows := t.Rows
	if rows == nil {
		rows = [][]string{}
	}
	return md.TableSet{Alignment: align, Header: t.Headers, Rows: rows}
}

// DashboardMarkdown renders the headline stats, the sales trend and the low stock alerts.
func DashboardMarkdown(st biashara.Stats, trend []biashara.TrendPoint, low []biashara.InventoryItem) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Dashboard")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Net Business Profit"), md.Bold(st.NetProfit.Display())},
		Rows: [][]string{
			{"Total Revenue", st.Revenue.Display()},
			{"Gross Profit", st.GrossProfit.Display()},
			{"Total Expenses", st.Expenses.Display()},
			{"Profit Margin", fmt.Sprintf("%.1f%%", st.Margin)},
			{"Total Liabilities", st.Liabilities.Display()},
			{"Receivables Outstanding", st.Receivables.Display()},
			{"Inventory Value", st.InventoryValue.Display()},
			{"Owner Investments", st.Investments.Display()},
			{"Owner Drawals", st.Drawals.Display()},
		},
	})

	if len(trend) > 0 {
		doc.H2(fmt.Sprintf("Sales of the Last %d Days", len(trend)))
		doc.Table(trendTable(trend))
	}

	if len(low) > 0 {
		doc.H2("Low Stock Alerts")
		var alerts []string
		for _, it := range low {
			alerts = append(alerts, fmt.Sprintf("%s (%s): %d left", it.Name, it.SKU, it.Stock))
		}
		doc.BulletList(alerts...)
	}
	return doc.String()
}

// TrendMarkdown renders the daily revenue and profit.
func TrendMarkdown(trend []biashara.TrendPoint) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Sales Trend")
	doc.Table(trendTable(trend))
	return doc.String()
}

func trendTable(trend []biashara.TrendPoint) md.TableSet {
	t := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Date", "Day", "Revenue", "Profit"},
		Rows:      [][]string{},
	}
	for _, p := range trend {
		t.Rows = append(t.Rows, []string{
			p.Day.String(), p.Day.Weekday().String()[:3], p.Revenue.Display(), p.Profit.Display(),
		})
	}
	return t
}

// ProjectionMarkdown renders the growth projection of a monthly net profit.
func ProjectionMarkdown(monthly biashara.Money, points []biashara.ProjectionPoint) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Financial Freedom Clock")
	doc.PlainText(fmt.Sprintf("Calculated based on current monthly net profit of %s reinvested at %s%% APR.",
		monthly.Display(), biashara.GrowthRate.Shift(2).String()))
	if len(points) > 0 {
		last := points[len(points)-1]
		doc.PlainText(md.Bold(fmt.Sprintf("Estimated %d-Year Portfolio: %s", last.Year, last.Value.Display())))
	}
	t := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Year", "Value"},
		Rows:      [][]string{},
	}
	for _, p := range points {
		t.Rows = append(t.Rows, []string{"Yr " + strconv.Itoa(p.Year), p.Value.Display()})
	}
	doc.Table(t)
	return doc.String()
}

// SnapshotsMarkdown renders the snapshot log.
func SnapshotsMarkdown(list []biashara.Snapshot) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Snapshots")
	if len(list) == 0 {
		doc.PlainText("No snapshots yet.")
		return doc.String()
	}
	t := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"ID", "Taken", "Label", "Records"},
		Rows:      [][]string{},
	}
	for _, s := range list {
		t.Rows = append(t.Rows, []string{s.ID, Day(s.Timestamp) + " " + Clock(s.Timestamp), s.Label, strconv.Itoa(s.Data.Len())})
	}
	doc.Table(t)
	return doc.String()
}
