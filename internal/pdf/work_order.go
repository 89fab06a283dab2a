package pdf

import (
	"fmt"
	"strings"

	"github.com/nurpe/cleaning-estimator/internal/model"
)

// GenerateWorkOrder renders the crew-facing sheet. Prices are left off.
func (g *Generator) GenerateWorkOrder(doc model.WorkOrderDocument) ([]byte, error) {
	p := g.newPage("Work Order " + doc.Number)

	p.header(doc.Company, "WORK ORDER", doc.Number, doc.Date)

	p.customerBlock("Customer", doc.Customer)
	p.Ln(2)
	p.projectBlock(doc.Project, doc.Estimate)
	if !doc.StartDate.IsZero() {
		p.SetFont(p.font, "B", 10)
		p.text(30, 5.5, "Start", "", 0, "L")
		p.SetFont(p.font, "", 10)
		p.text(0, 5.5, formatDate(doc.StartDate), "", 1, "L")
	}

	p.sectionTitle("Labor Plan")
	widths := []float64{120, 30, 35.9}
	p.tableRow([]string{"Task group", "Hours", "Per crew member"}, widths, true)
	crew := doc.Estimate.CrewSize
	if crew < 1 {
		crew = 1
	}
	for _, adj := range doc.Estimate.Adjustments {
		if adj.Hours <= 0 {
			continue
		}
		p.tableRow([]string{taskLabel(adj.Label), fmt.Sprintf("%.1f", adj.Hours), fmt.Sprintf("%.1f", adj.Hours/float64(crew))}, widths, false)
	}
	p.totalRow(fmt.Sprintf("Total (%d crew, %d day(s))", doc.Estimate.CrewSize, doc.Estimate.EstimatedDays), fmt.Sprintf("%.1f h", doc.Estimate.EstimatedHours), []float64{150, 35.9})

	p.sectionTitle("Task Checklist")
	p.checklist(doc.Scope.Tasks)

	if doc.Instructions != "" || doc.Project.Notes != "" {
		p.sectionTitle("Site Instructions")
		if doc.Instructions != "" {
			p.paragraph(5, doc.Instructions)
		}
		if doc.Project.Notes != "" {
			p.paragraph(5, doc.Project.Notes)
		}
	}

	p.sectionTitle("Completion")
	p.signatureBlock("Crew lead", "")
	p.signatureBlock("Customer walkthrough", doc.Customer.Name)

	return p.bytes()
}

// taskLabel drops the unit price from an estimate line,
// "Final clean, Office (10000 sq ft @ $0.22)" becomes "Final clean, Office (10000 sq ft)".
func taskLabel(label string) string {
	at := strings.Index(label, " @ ")
	if at < 0 {
		return label
	}
	if strings.Contains(label[:at], "(") {
		return label[:at] + ")"
	}
	return label[:at]
}
