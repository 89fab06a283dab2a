package pdf

import (
	"fmt"
	"strconv"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/nurpe/cleaning-estimator/internal/model"
	"github.com/nurpe/cleaning-estimator/internal/money"
)

var (
	poDark  = &props.Color{Red: 33, Green: 37, Blue: 41}
	poGrey  = &props.Color{Red: 100, Green: 100, Blue: 100}
	poWhite = &props.Color{Red: 255, Green: 255, Blue: 255}
	poAlt   = &props.Color{Red: 248, Green: 249, Blue: 250}
	poLight = &props.Color{Red: 245, Green: 245, Blue: 245}
)

// GeneratePurchaseOrder renders the supply order with maroto. The grid layout
// suits the tabular PO better than the free-flow gofpdf pages.
func (g *Generator) GeneratePurchaseOrder(doc model.PurchaseOrderDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.Letter).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addPOHeader(m, doc)
	addPOParties(m, doc)
	addPOLines(m, doc.Lines)
	addPOTotals(m, doc.Totals)
	addPONotes(m, doc.Notes)
	addPOSignatures(m)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate purchase order pdf: %w", err)
	}
	return out.GetBytes(), nil
}

func addPOHeader(m core.Maroto, doc model.PurchaseOrderDocument) {
	m.AddRows(
		row.New(10).Add(
			col.New(7).Add(text.New(safeValue(doc.Company.Name), props.Text{Size: 14, Style: fontstyle.Bold, Align: align.Left})),
			col.New(5).Add(text.New("PURCHASE ORDER", props.Text{Size: 14, Style: fontstyle.Bold, Align: align.Right, Color: poDark})),
		),
		row.New(6).Add(
			col.New(7).Add(text.New(joinNonEmpty(" | ", doc.Company.Address, doc.Company.Phone, doc.Company.Email), props.Text{Size: 8, Align: align.Left, Color: poGrey})),
			col.New(5).Add(text.New("PO #: "+doc.Number, props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right})),
		),
		row.New(6).Add(
			col.New(7),
			col.New(5).Add(text.New(formatDate(doc.Date), props.Text{Size: 9, Align: align.Right})),
		),
	)
	m.AddRows(row.New(4))
}

func addPOParties(m core.Maroto, doc model.PurchaseOrderDocument) {
	label := props.Text{Size: 7, Style: fontstyle.Bold, Align: align.Left, Color: poGrey}
	bold := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Left}
	value := props.Text{Size: 8, Align: align.Left}
	headerCell := &props.Cell{BackgroundColor: poLight}

	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New("VENDOR", label)).WithStyle(headerCell),
			col.New(6).Add(text.New("SHIP TO", label)).WithStyle(headerCell),
		),
		row.New(7).Add(
			col.New(6).Add(text.New(safeValue(doc.Vendor.Name), bold)),
			col.New(6).Add(text.New(safeValue(doc.ProjectName), bold)),
		),
		row.New(7).Add(
			col.New(6).Add(text.New(doc.Vendor.Address, value)),
			col.New(6).Add(text.New(doc.ShipTo, value)),
		),
	)

	contact := joinNonEmpty(" | ", doc.Vendor.ContactName, doc.Vendor.Phone, doc.Vendor.Email)
	if contact != "" {
		m.AddRows(row.New(7).Add(col.New(12).Add(text.New("Contact: "+contact, value))))
	}
	m.AddRows(row.New(4))
}

func addPOLines(m core.Maroto, lines []model.SupplyLine) {
	header := props.Text{Size: 7, Style: fontstyle.Bold, Align: align.Center, Color: poWhite}
	headerLeft := header
	headerLeft.Align = align.Left
	headerCell := &props.Cell{BackgroundColor: poDark}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("#", header)).WithStyle(headerCell),
			col.New(2).Add(text.New("SKU", headerLeft)).WithStyle(headerCell),
			col.New(4).Add(text.New("Description", headerLeft)).WithStyle(headerCell),
			col.New(1).Add(text.New("Qty", header)).WithStyle(headerCell),
			col.New(1).Add(text.New("Unit", header)).WithStyle(headerCell),
			col.New(1).Add(text.New("Price", header)).WithStyle(headerCell),
			col.New(2).Add(text.New("Amount", header)).WithStyle(headerCell),
		),
	)

	center := props.Text{Size: 7.5, Align: align.Center}
	left := props.Text{Size: 7.5, Align: align.Left}
	right := props.Text{Size: 7.5, Align: align.Right}

	for i, line := range lines {
		cols := []core.Col{
			col.New(1).Add(text.New(strconv.Itoa(line.LineNo), center)),
			col.New(2).Add(text.New(line.SKU, left)),
			col.New(4).Add(text.New(line.Description, left)),
			col.New(1).Add(text.New(strconv.FormatFloat(line.Qty, 'f', -1, 64), right)),
			col.New(1).Add(text.New(line.Unit, center)),
			col.New(1).Add(text.New(money.Format(line.UnitPrice), right)),
			col.New(2).Add(text.New(money.Format(line.Amount), right)),
		}
		if i%2 == 1 {
			for j := range cols {
				cols[j] = cols[j].WithStyle(&props.Cell{BackgroundColor: poAlt})
			}
		}
		m.AddRows(row.New(7).Add(cols...))
	}
	m.AddRows(row.New(2))
}

func addPOTotals(m core.Maroto, totals model.SupplyTotals) {
	cell := &props.Cell{BackgroundColor: poLight}
	label := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right}
	value := props.Text{Size: 8, Align: align.Right}

	rows := []struct {
		label string
		value float64
	}{
		{"Subtotal", totals.Subtotal},
		{fmt.Sprintf("Sales tax %s%%", strconv.FormatFloat(totals.TaxPercent, 'f', -1, 64)), totals.TaxAmount},
		{"Round off", totals.RoundOff},
	}
	for _, r := range rows {
		m.AddRows(row.New(7).Add(
			col.New(9).Add(text.New(r.label, label)).WithStyle(cell),
			col.New(3).Add(text.New(money.Format(r.value), value)).WithStyle(cell),
		))
	}

	grand := &props.Cell{BackgroundColor: poDark}
	grandText := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right, Color: poWhite}
	m.AddRows(row.New(8).Add(
		col.New(9).Add(text.New("Grand Total", grandText)).WithStyle(grand),
		col.New(3).Add(text.New(money.Format(totals.GrandTotal), grandText)).WithStyle(grand),
	))
	m.AddRows(row.New(4))
}

func addPONotes(m core.Maroto, notes string) {
	if notes == "" {
		return
	}
	m.AddRows(
		row.New(6).Add(col.New(12).Add(text.New("NOTES", props.Text{Size: 7, Style: fontstyle.Bold, Align: align.Left, Color: poGrey}))),
		row.New(8).Add(col.New(12).Add(text.New(notes, props.Text{Size: 8, Align: align.Left}))),
	)
	m.AddRows(row.New(4))
}

func addPOSignatures(m core.Maroto) {
	line := props.Text{Size: 8, Align: align.Left}
	m.AddRows(
		row.New(14),
		row.New(6).Add(
			col.New(6).Add(text.New("Ordered by: ________________________", line)),
			col.New(6).Add(text.New("Approved by: ________________________", line)),
		),
	)
}
