package pdf

import (
	"fmt"

	"github.com/nurpe/cleaning-estimator/internal/model"
	"github.com/nurpe/cleaning-estimator/internal/money"
)

type ChangeLine struct {
	Code     string
	Label    string
	Original float64
	Revised  float64
}

func (l ChangeLine) Delta() float64 {
	return l.Revised - l.Original
}

// ChangeLines pairs adjustments by code. Lines present on only one side are
// kept with zero on the other side; order follows the revised estimate, then
// lines that were dropped.
func ChangeLines(original, revised model.EstimateResult) []ChangeLine {
	seen := make(map[string]bool, len(revised.Adjustments))
	lines := make([]ChangeLine, 0, len(revised.Adjustments)+len(original.Adjustments))

	for _, adj := range revised.Adjustments {
		seen[adj.Code] = true
		line := ChangeLine{Code: adj.Code, Label: adj.Label, Revised: adj.Amount}
		if prev, ok := original.Adjustment(adj.Code); ok {
			line.Original = prev.Amount
		}
		lines = append(lines, line)
	}
	for _, adj := range original.Adjustments {
		if seen[adj.Code] {
			continue
		}
		lines = append(lines, ChangeLine{Code: adj.Code, Label: adj.Label + " (removed)", Original: adj.Amount})
	}
	return lines
}

func (g *Generator) GenerateChangeOrder(doc model.ChangeOrderDocument) ([]byte, error) {
	p := g.newPage("Change Order " + doc.Number)

	p.header(doc.Company, "CHANGE ORDER", doc.Number, doc.Date)
	if doc.QuoteNumber != "" {
		p.SetFont(p.font, "", 9)
		p.text(0, 5, "Amends quote "+doc.QuoteNumber, "", 1, "R")
	}

	p.customerBlock("Customer", doc.Customer)
	p.Ln(2)
	p.projectBlock(doc.Project, doc.Revised)

	p.sectionTitle("Reason for Change")
	p.paragraph(5, safeValue(doc.Reason))

	p.sectionTitle("Price Changes")
	widths := []float64{95, 30, 30, 30.9}
	p.tableRow([]string{"Item", "Original", "Revised", "Change"}, widths, true)
	for _, line := range ChangeLines(doc.Original, doc.Revised) {
		p.tableRow([]string{line.Label, money.Format(line.Original), money.Format(line.Revised), money.Signed(line.Delta())}, widths, false)
	}
	p.tableRow([]string{
		"Contract total",
		money.Format(doc.Original.TotalPrice),
		money.Format(doc.Revised.TotalPrice),
		money.Signed(doc.Revised.TotalPrice - doc.Original.TotalPrice),
	}, widths, true)

	p.sectionTitle("Schedule Changes")
	p.paragraph(5, fmt.Sprintf("Labor hours: %.1f -> %.1f", doc.Original.EstimatedHours, doc.Revised.EstimatedHours))
	p.paragraph(5, fmt.Sprintf("Crew: %d -> %d, days: %d -> %d",
		doc.Original.CrewSize, doc.Revised.CrewSize, doc.Original.EstimatedDays, doc.Revised.EstimatedDays))

	p.sectionTitle("Approval")
	p.paragraph(5, "All other terms of the original quote remain unchanged.")
	p.signatureBlock("Customer", doc.Customer.Name)
	p.signatureBlock(safeValue(doc.Company.Name), "")

	return p.bytes()
}
