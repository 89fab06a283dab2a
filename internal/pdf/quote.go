package pdf

import (
	"fmt"

	"github.com/nurpe/cleaning-estimator/internal/model"
	"github.com/nurpe/cleaning-estimator/internal/money"
)

func (g *Generator) GenerateQuote(doc model.QuoteDocument) ([]byte, error) {
	p := g.newPage("Quote " + doc.Number)

	p.header(doc.Company, "QUOTE", doc.Number, doc.Date)
	if !doc.ValidUntil.IsZero() {
		p.SetFont(p.font, "", 9)
		p.text(0, 5, "Valid until "+formatDate(doc.ValidUntil), "", 1, "R")
	}

	p.customerBlock("Prepared for", doc.Customer)
	p.Ln(2)
	p.projectBlock(doc.Project, doc.Estimate)

	p.sectionTitle("Scope of Work: " + doc.Scope.Title)
	if doc.Scope.Intro != "" {
		p.paragraph(5, doc.Scope.Intro)
		p.Ln(1)
	}
	p.bullets(doc.Scope.Tasks)

	p.sectionTitle("Pricing")
	widths := []float64{120, 25, 40.9}
	p.tableRow([]string{"Description", "Hours / Factor", "Amount"}, widths, true)
	for _, adj := range doc.Estimate.Adjustments {
		middle, amount := adjustmentColumns(adj)
		p.tableRow([]string{adj.Label, middle, amount}, widths, false)
	}
	p.totalRow("Total", money.Format(doc.Estimate.TotalPrice), widths)
	p.SetFont(p.font, "", 8.5)
	p.text(0, 5, fmt.Sprintf("Effective rate %s per sq ft", money.Format(doc.Estimate.PricePerSqFt)), "", 1, "R")

	if doc.Summary != "" {
		p.sectionTitle("Summary")
		p.paragraph(5, doc.Summary)
	}

	if len(doc.Recommendations) > 0 {
		p.sectionTitle("Recommendations")
		p.bullets(doc.Recommendations)
	}

	if doc.Project.Notes != "" {
		p.sectionTitle("Notes")
		p.paragraph(5, doc.Project.Notes)
	}

	p.sectionTitle("Acceptance")
	p.paragraph(5, "Signing below accepts the scope and pricing in this quote. Work is scheduled on receipt of the signed quote.")
	p.signatureBlock("Customer", doc.Customer.Name)
	p.signatureBlock(safeValue(doc.Company.Name), "")

	return p.bytes()
}
