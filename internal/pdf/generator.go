package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/nurpe/cleaning-estimator/internal/model"
	"github.com/nurpe/cleaning-estimator/internal/money"
)

type Generator struct {
	fontName string
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Go"}
}

type page struct {
	*gofpdf.Fpdf
	font string
}

func (g *Generator) newPage(title string) *page {
	doc := gofpdf.New("P", "mm", "Letter", "")
	doc.SetMargins(15, 15, 15)
	doc.SetAutoPageBreak(true, 18)
	doc.SetTitle(title, true)
	doc.SetCreator("cleaning-estimator", true)
	doc.AliasNbPages("")
	doc.AddUTF8FontFromBytes(g.fontName, "", goregular.TTF)
	doc.AddUTF8FontFromBytes(g.fontName, "B", gobold.TTF)

	p := &page{Fpdf: doc, font: g.fontName}
	doc.SetFooterFunc(func() {
		doc.SetY(-12)
		doc.SetFont(p.font, "", 8)
		doc.SetTextColor(120, 120, 120)
		doc.CellFormat(0, 5, fmt.Sprintf("Page %d of {nb}", doc.PageNo()), "", 0, "R", false, 0, "")
		doc.SetTextColor(0, 0, 0)
	})
	doc.AddPage()
	return p
}

func (p *page) text(w, h float64, s, border string, ln int, align string) {
	p.CellFormat(w, h, s, border, ln, align, false, 0, "")
}

func (p *page) paragraph(h float64, s string) {
	p.MultiCell(0, h, s, "", "L", false)
}

func (p *page) sectionTitle(title string) {
	p.Ln(3)
	p.SetFont(p.font, "B", 12)
	p.text(0, 7, title, "", 1, "L")
	p.SetFont(p.font, "", 10)
}

func (p *page) bullets(items []string) {
	p.SetFont(p.font, "", 10)
	for _, item := range items {
		p.CellFormat(5, 5, "-", "", 0, "L", false, 0, "")
		p.MultiCell(0, 5, item, "", "L", false)
	}
}

func (p *page) checklist(items []string) {
	p.SetFont(p.font, "", 10)
	for _, item := range items {
		x, y := p.GetXY()
		p.Rect(x+0.5, y+1, 3, 3, "D")
		p.SetX(x + 6)
		p.MultiCell(0, 5, item, "", "L", false)
	}
}

// header draws the company block on the left and the document title and
// number on the right.
func (p *page) header(company model.Company, title, number string, date time.Time) {
	top := p.GetY()

	p.SetFont(p.font, "B", 15)
	p.text(110, 8, safeValue(company.Name), "", 2, "L")
	p.SetFont(p.font, "", 9)
	p.SetTextColor(90, 90, 90)
	for _, line := range []string{company.Address, joinNonEmpty(" | ", company.Phone, company.Email)} {
		if strings.TrimSpace(line) != "" {
			p.text(110, 4.5, line, "", 2, "L")
		}
	}
	p.SetTextColor(0, 0, 0)
	bottom := p.GetY()

	p.SetXY(125, top)
	p.SetFont(p.font, "B", 16)
	p.text(0, 8, title, "", 2, "R")
	p.SetFont(p.font, "", 10)
	p.text(0, 5, number, "", 2, "R")
	p.text(0, 5, formatDate(date), "", 2, "R")

	if p.GetY() > bottom {
		bottom = p.GetY()
	}
	p.SetXY(15, bottom+2)
	p.SetDrawColor(180, 180, 180)
	p.Line(15, p.GetY(), 200.9, p.GetY())
	p.SetDrawColor(0, 0, 0)
	p.Ln(3)
}

func (p *page) customerBlock(title string, c model.Customer) {
	p.SetFont(p.font, "B", 11)
	p.text(0, 6, title, "", 1, "L")
	p.SetFont(p.font, "", 10)
	lines := []string{
		c.Name,
		c.Company,
		c.Address,
		joinNonEmpty(" | ", c.Phone, c.Email),
	}
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			p.paragraph(5, line)
		}
	}
}

func (p *page) projectBlock(project model.ProjectDescription, est model.EstimateResult) {
	rows := [][2]string{
		{"Project", safeValue(project.ProjectName)},
		{"Site", safeValue(project.SiteAddress)},
		{"Type", fmt.Sprintf("%s, %s", titleCase(string(project.ProjectType)), stageLabel(project.CleaningType))},
		{"Area", fmt.Sprintf("%s sq ft", formatArea(project.SquareFootage))},
		{"Schedule", fmt.Sprintf("%.1f labor hours, crew of %d, %d day(s)", est.EstimatedHours, est.CrewSize, est.EstimatedDays)},
	}
	for _, row := range rows {
		p.SetFont(p.font, "B", 10)
		p.text(30, 5.5, row[0], "", 0, "L")
		p.SetFont(p.font, "", 10)
		p.MultiCell(0, 5.5, row[1], "", "L", false)
	}
}

func (p *page) tableRow(cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
		p.SetFillColor(235, 235, 235)
	}
	p.SetFont(p.font, style, 9.5)
	for i, col := range cols {
		align := "L"
		if i > 0 {
			align = "R"
		}
		p.CellFormat(widths[i], 7, col, "1", 0, align, header, 0, "")
	}
	p.Ln(-1)
}

func (p *page) totalRow(label, value string, widths []float64) {
	labelWidth := 0.0
	for _, w := range widths[:len(widths)-1] {
		labelWidth += w
	}
	p.SetFont(p.font, "B", 10.5)
	p.CellFormat(labelWidth, 8, label, "1", 0, "R", false, 0, "")
	p.CellFormat(widths[len(widths)-1], 8, value, "1", 1, "R", false, 0, "")
}

func (p *page) signatureBlock(label, name string) {
	p.SetFont(p.font, "", 10)
	p.Ln(6)
	p.text(0, 6, fmt.Sprintf("%s: ______________________________  Date: ____________", label), "", 1, "L")
	if strings.TrimSpace(name) != "" {
		p.SetFont(p.font, "", 8.5)
		p.text(0, 4, "    "+name, "", 1, "L")
	}
}

func (p *page) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := p.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func adjustmentColumns(adj model.Adjustment) (string, string) {
	hours := ""
	if adj.Hours > 0 {
		hours = fmt.Sprintf("%.1f", adj.Hours)
	}
	if adj.Kind == model.AdjustmentMultiplier {
		return fmt.Sprintf("x%.2f", adj.Factor), money.Format(adj.Amount)
	}
	return hours, money.Format(adj.Amount)
}

func stageLabel(stage model.CleaningType) string {
	switch stage {
	case model.CleaningTypeRough:
		return "rough clean"
	case model.CleaningTypeFinal:
		return "final clean"
	case model.CleaningTypeTouchUp:
		return "touch-up clean"
	case model.CleaningTypeComplete:
		return "complete clean (rough, final, touch-up)"
	}
	return string(stage)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, sep)
}

func safeValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func formatArea(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.1f", v), "0"), ".")
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("January 2, 2006")
}
