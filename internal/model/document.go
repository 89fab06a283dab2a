package model

import "time"

type Company struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

type Vendor struct {
	Name        string `json:"name"`
	ContactName string `json:"contact_name,omitempty"`
	Address     string `json:"address,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
}

type ScopeOfWork struct {
	Title string   `json:"title"`
	Intro string   `json:"intro"`
	Tasks []string `json:"tasks"`
}

type QuoteDocument struct {
	Number          string
	Date            time.Time
	ValidUntil      time.Time
	Company         Company
	Customer        Customer
	Project         ProjectDescription
	Estimate        EstimateResult
	Scope           ScopeOfWork
	Recommendations []string
	Summary         string
}

type WorkOrderDocument struct {
	Number       string
	Date         time.Time
	StartDate    time.Time
	Company      Company
	Customer     Customer
	Project      ProjectDescription
	Estimate     EstimateResult
	Scope        ScopeOfWork
	Instructions string
}

type ChangeOrderDocument struct {
	Number      string
	Date        time.Time
	QuoteNumber string
	Company     Company
	Customer    Customer
	Project     ProjectDescription
	Original    EstimateResult
	Revised     EstimateResult
	Reason      string
}

type SupplyLine struct {
	LineNo      int     `json:"line_no"`
	SKU         string  `json:"sku"`
	Description string  `json:"description"`
	Unit        string  `json:"unit"`
	Qty         float64 `json:"qty"`
	UnitPrice   float64 `json:"unit_price"`
	Amount      float64 `json:"amount"`
}

type SupplyTotals struct {
	Subtotal   float64 `json:"subtotal"`
	TaxPercent float64 `json:"tax_percent"`
	TaxAmount  float64 `json:"tax_amount"`
	RoundOff   float64 `json:"round_off"`
	GrandTotal float64 `json:"grand_total"`
}

type PurchaseOrderDocument struct {
	Number      string
	Date        time.Time
	Company     Company
	Vendor      Vendor
	ProjectName string
	ShipTo      string
	Lines       []SupplyLine
	Totals      SupplyTotals
	Notes       string
}
