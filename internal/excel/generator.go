package excel

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nurpe/cleaning-estimator/internal/model"
)

const (
	summarySheet         = "Summary"
	adjustmentsSheet     = "Adjustments"
	recommendationsSheet = "Recommendations"
	registerSheet        = "Quotes"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

type EstimateWorkbook struct {
	Project         model.ProjectDescription
	Estimate        model.EstimateResult
	Recommendations []string
	Summary         string
	GeneratedAt     time.Time
}

func (g *Generator) GenerateEstimate(wb EstimateWorkbook) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if err := g.writeSummary(file, wb); err != nil {
		return nil, err
	}

	if _, err := file.NewSheet(adjustmentsSheet); err != nil {
		return nil, err
	}
	if err := g.writeAdjustments(file, wb.Estimate); err != nil {
		return nil, err
	}

	if _, err := file.NewSheet(recommendationsSheet); err != nil {
		return nil, err
	}
	if err := g.writeRecommendations(file, wb); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, wb EstimateWorkbook) error {
	p, est := wb.Project, wb.Estimate
	rows := [][2]interface{}{
		{"Project", formatString(p.ProjectName)},
		{"Site address", formatString(p.SiteAddress)},
		{"Project type", string(p.ProjectType)},
		{"Cleaning stage", string(p.CleaningType)},
		{"Square footage", p.SquareFootage},
		{"Base price", est.BasePrice},
		{"Add-ons", est.AddOnsTotal},
		{"Subtotal", est.Subtotal},
		{"Total price", est.TotalPrice},
		{"Price per sq ft", est.PricePerSqFt},
		{"Estimated hours", est.EstimatedHours},
		{"Crew size", est.CrewSize},
		{"Estimated days", est.EstimatedDays},
		{"Minimum applied", yesNo(est.MinimumApplied)},
		{"Generated", formatDateTime(wb.GeneratedAt)},
	}

	for i, r := range rows {
		if err := file.SetSheetRow(summarySheet, fmt.Sprintf("A%d", i+1), &[]interface{}{r[0], r[1]}); err != nil {
			return err
		}
	}
	if wb.Summary != "" {
		cell := fmt.Sprintf("A%d", len(rows)+2)
		if err := file.SetCellValue(summarySheet, cell, wb.Summary); err != nil {
			return err
		}
	}

	money, err := file.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return err
	}
	// Base price through price per sq ft.
	if err := file.SetCellStyle(summarySheet, "B6", "B10", money); err != nil {
		return err
	}

	_ = file.SetColWidth(summarySheet, "A", "A", 22)
	_ = file.SetColWidth(summarySheet, "B", "B", 40)
	return nil
}

func (g *Generator) writeAdjustments(file *excelize.File, est model.EstimateResult) error {
	headers := []interface{}{"Code", "Description", "Kind", "Factor", "Hours", "Amount"}
	if err := file.SetSheetRow(adjustmentsSheet, "A1", &headers); err != nil {
		return err
	}

	for i, adj := range est.Adjustments {
		row := []interface{}{adj.Code, adj.Label, string(adj.Kind), nil, nil, adj.Amount}
		if adj.Kind == model.AdjustmentMultiplier {
			row[3] = adj.Factor
		}
		if adj.Hours > 0 {
			row[4] = adj.Hours
		}
		if err := file.SetSheetRow(adjustmentsSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}

	totalRow := len(est.Adjustments) + 2
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(adjustmentsSheet, cell, value)
	}
	set(fmt.Sprintf("B%d", totalRow), "Total")
	set(fmt.Sprintf("E%d", totalRow), est.EstimatedHours)
	set(fmt.Sprintf("F%d", totalRow), est.TotalPrice)

	bold, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	_ = file.SetRowStyle(adjustmentsSheet, 1, 1, bold)
	_ = file.SetRowStyle(adjustmentsSheet, totalRow, totalRow, bold)

	_ = file.SetColWidth(adjustmentsSheet, "A", "A", 18)
	_ = file.SetColWidth(adjustmentsSheet, "B", "B", 48)
	_ = file.SetColWidth(adjustmentsSheet, "C", "F", 12)
	return nil
}

func (g *Generator) writeRecommendations(file *excelize.File, wb EstimateWorkbook) error {
	_ = file.SetCellValue(recommendationsSheet, "A1", "#")
	_ = file.SetCellValue(recommendationsSheet, "B1", "Recommendation")
	for i, rec := range wb.Recommendations {
		row := []interface{}{i + 1, rec}
		if err := file.SetSheetRow(recommendationsSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}
	_ = file.SetColWidth(recommendationsSheet, "A", "A", 5)
	_ = file.SetColWidth(recommendationsSheet, "B", "B", 100)
	return nil
}

// GenerateQuoteRegister writes one row per stored quote, newest first as given.
func (g *Generator) GenerateQuoteRegister(quotes []model.Quote) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", registerSheet); err != nil {
		return nil, err
	}

	headers := []interface{}{
		"Quote #", "Created", "Status", "Customer", "Company", "Email", "Phone",
		"Project", "Type", "Stage", "Sq ft", "Total", "Email sent", "CRM contact", "CRM opportunity",
	}
	if err := file.SetSheetRow(registerSheet, "A1", &headers); err != nil {
		return nil, err
	}

	for i, q := range quotes {
		row := []interface{}{
			q.QuoteNumber,
			formatDateTime(q.CreatedAt),
			string(q.Status),
			formatString(q.Customer.Name),
			formatString(q.Customer.Company),
			formatString(q.Customer.Email),
			formatString(q.Customer.Phone),
			formatString(q.Project.ProjectName),
			string(q.Project.ProjectType),
			string(q.Project.CleaningType),
			q.Project.SquareFootage,
			q.Estimate.TotalPrice,
			yesNo(q.EmailSent),
			formatOptional(q.CRMContactID),
			formatOptional(q.CRMOpportunityID),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := file.SetSheetRow(registerSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	bold, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	_ = file.SetRowStyle(registerSheet, 1, 1, bold)
	_ = file.SetPanes(registerSheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})

	_ = file.SetColWidth(registerSheet, "A", "A", 20)
	_ = file.SetColWidth(registerSheet, "B", "B", 18)
	_ = file.SetColWidth(registerSheet, "C", "C", 12)
	_ = file.SetColWidth(registerSheet, "D", "H", 24)
	_ = file.SetColWidth(registerSheet, "I", "M", 12)
	_ = file.SetColWidth(registerSheet, "N", "O", 26)

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatString(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "-"
	}
	return value
}

func formatOptional(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
