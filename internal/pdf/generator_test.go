package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/cleaning-estimator/internal/model"
)

var testDate = time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)

func sampleEstimate() model.EstimateResult {
	return model.EstimateResult{
		TotalPrice:     2750,
		BasePrice:      2200,
		AddOnsTotal:    0,
		Subtotal:       2200,
		PricePerSqFt:   0.275,
		EstimatedHours: 40,
		CrewSize:       2,
		EstimatedDays:  3,
		Adjustments: []model.Adjustment{
			{Code: "base", Label: "Office final clean, 10000 sq ft", Kind: model.AdjustmentAmount, Amount: 2200, Hours: 40},
			{Code: "urgency", Label: "Urgency level 8", Kind: model.AdjustmentMultiplier, Factor: 1.25, Amount: 550},
		},
	}
}

func sampleCompany() model.Company {
	return model.Company{Name: "Sparkle Commercial Cleaning", Address: "12 Main St, Austin TX", Phone: "512-555-0100", Email: "office@sparkle.test"}
}

func sampleCustomer() model.Customer {
	return model.Customer{Name: "Jordan Reyes", Company: "Reyes Builders", Email: "jordan@reyes.test", Phone: "512-555-0199"}
}

func sampleProject() model.ProjectDescription {
	return model.ProjectDescription{
		ProjectName:   "Tower B fit-out",
		SiteAddress:   "400 Congress Ave",
		SquareFootage: 10000,
		ProjectType:   model.ProjectTypeOffice,
		CleaningType:  model.CleaningTypeFinal,
		Notes:         "Loading dock access after 6 pm – use the east gate.",
	}
}

func assertPDF(t *testing.T, out []byte, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "output is not a pdf")
}

func TestGenerateQuote(t *testing.T) {
	g := NewGenerator()
	out, err := g.GenerateQuote(model.QuoteDocument{
		Number:          "Q-20260309-3F2A9C",
		Date:            testDate,
		ValidUntil:      testDate.AddDate(0, 0, 30),
		Company:         sampleCompany(),
		Customer:        sampleCustomer(),
		Project:         sampleProject(),
		Estimate:        sampleEstimate(),
		Scope:           model.ScopeOfWork{Title: "Office Post-Construction Cleaning", Intro: "Final clean of the office suite.", Tasks: []string{"Dust all surfaces", "Clean restrooms"}},
		Recommendations: []string{"Schedule a touch-up clean before move-in."},
		Summary:         "A two-person crew will complete the work in three days.",
	})
	assertPDF(t, out, err)
}

func TestGenerateWorkOrder_NonLatinNames(t *testing.T) {
	customer := sampleCustomer()
	customer.Name = "Алия Нурпеисова"
	customer.Company = "Ελληνικά Καθαριστήρια"
	project := sampleProject()
	project.SiteAddress = "ул. Абая 10, Алматы"

	out, err := NewGenerator().GenerateWorkOrder(model.WorkOrderDocument{
		Number:   "WO-20260309-3F2A9C",
		Date:     testDate,
		Company:  sampleCompany(),
		Customer: customer,
		Project:  project,
		Estimate: sampleEstimate(),
	})
	assertPDF(t, out, err)
	assert.Contains(t, string(out), "FontFile2")
}

func TestGenerateQuoteWithEmptyFields(t *testing.T) {
	out, err := NewGenerator().GenerateQuote(model.QuoteDocument{Number: "Q-1"})
	assertPDF(t, out, err)
}

func TestGenerateWorkOrder(t *testing.T) {
	out, err := NewGenerator().GenerateWorkOrder(model.WorkOrderDocument{
		Number:       "WO-20260309-3F2A9C",
		Date:         testDate,
		StartDate:    testDate.AddDate(0, 0, 7),
		Company:      sampleCompany(),
		Customer:     sampleCustomer(),
		Project:      sampleProject(),
		Estimate:     sampleEstimate(),
		Scope:        model.ScopeOfWork{Title: "Office", Tasks: []string{"Vacuum carpets", "Wipe glass"}},
		Instructions: "Badge in at the security desk.",
	})
	assertPDF(t, out, err)
}

func TestTaskLabel_DropsPrices(t *testing.T) {
	tests := []struct {
		in     string
		expect string
	}{
		{"Final clean, Office (10000 sq ft @ $0.22)", "Final clean, Office (10000 sq ft)"},
		{"Window cleaning (120 windows @ $12.00), volume rate x0.90", "Window cleaning (120 windows)"},
		{"VCT strip and wax (2500 sq ft @ $0.45)", "VCT strip and wax (2500 sq ft)"},
		{"Office final clean, 10000 sq ft", "Office final clean, 10000 sq ft"},
	}
	for _, tt := range tests {
		got := taskLabel(tt.in)
		assert.Equal(t, tt.expect, got)
		assert.NotContains(t, got, "$")
	}
}

func TestGenerateChangeOrder(t *testing.T) {
	original := sampleEstimate()
	revised := sampleEstimate()
	revised.TotalPrice = 3150
	revised.Adjustments = append([]model.Adjustment{}, original.Adjustments[0],
		model.Adjustment{Code: "windows", Label: "Window cleaning, 40 windows", Kind: model.AdjustmentAmount, Amount: 480, Hours: 10})

	out, err := NewGenerator().GenerateChangeOrder(model.ChangeOrderDocument{
		Number:      "CO-20260309-3F2A9C",
		Date:        testDate,
		QuoteNumber: "Q-20260301-000001",
		Company:     sampleCompany(),
		Customer:    sampleCustomer(),
		Project:     sampleProject(),
		Original:    original,
		Revised:     revised,
		Reason:      "Customer added exterior windows.",
	})
	assertPDF(t, out, err)
}

func TestChangeLines(t *testing.T) {
	original := sampleEstimate()
	revised := model.EstimateResult{Adjustments: []model.Adjustment{
		{Code: "base", Label: "Base", Amount: 2500},
		{Code: "windows", Label: "Windows", Amount: 480},
	}}

	lines := ChangeLines(original, revised)
	require.Len(t, lines, 3)

	assert.Equal(t, "base", lines[0].Code)
	assert.Equal(t, 2200.0, lines[0].Original)
	assert.Equal(t, 300.0, lines[0].Delta())

	assert.Equal(t, "windows", lines[1].Code)
	assert.Equal(t, 0.0, lines[1].Original)
	assert.Equal(t, 480.0, lines[1].Delta())

	assert.Equal(t, "urgency", lines[2].Code)
	assert.Equal(t, "Urgency level 8 (removed)", lines[2].Label)
	assert.Equal(t, -550.0, lines[2].Delta())
}

func TestGeneratePurchaseOrder(t *testing.T) {
	out, err := NewGenerator().GeneratePurchaseOrder(model.PurchaseOrderDocument{
		Number:      "PO-20260309-3F2A9C",
		Date:        testDate,
		Company:     sampleCompany(),
		Vendor:      model.Vendor{Name: "Janitorial Supply Co", ContactName: "Pat", Phone: "512-555-0142"},
		ProjectName: "Tower B fit-out",
		ShipTo:      "400 Congress Ave",
		Lines: []model.SupplyLine{
			{LineNo: 1, SKU: "CHM-APC-1G", Description: "All-purpose cleaner concentrate", Unit: "gal", Qty: 2, UnitPrice: 18, Amount: 36},
			{LineNo: 2, SKU: "MF-CLOTH-24", Description: "Microfiber cloths, 24 pack", Unit: "pack", Qty: 4, UnitPrice: 12, Amount: 48},
		},
		Totals: model.SupplyTotals{Subtotal: 84, TaxPercent: 8.25, TaxAmount: 6.93, RoundOff: 0.07, GrandTotal: 91},
		Notes:  "Deliver before 9 am.",
	})
	assertPDF(t, out, err)
}

func TestFormatArea(t *testing.T) {
	assert.Equal(t, "10000", formatArea(10000))
	assert.Equal(t, "1234.5", formatArea(1234.5))
	assert.Equal(t, "0", formatArea(0))
}

func TestAdjustmentColumns(t *testing.T) {
	middle, amount := adjustmentColumns(model.Adjustment{Kind: model.AdjustmentMultiplier, Factor: 1.25, Amount: 550})
	assert.Equal(t, "x1.25", middle)
	assert.Equal(t, "$550.00", amount)

	middle, amount = adjustmentColumns(model.Adjustment{Kind: model.AdjustmentAmount, Hours: 12.5, Amount: 300})
	assert.Equal(t, "12.5", middle)
	assert.Equal(t, "$300.00", amount)
}
