package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/nurpe/cleaning-estimator/internal/docnumber"
	"github.com/nurpe/cleaning-estimator/internal/excel"
	"github.com/nurpe/cleaning-estimator/internal/model"
	"github.com/nurpe/cleaning-estimator/internal/procurement"
	"github.com/nurpe/cleaning-estimator/internal/scope"
)

const (
	ContentTypePDF  = "application/pdf"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	quoteValidityDays = 30
)

type PDFRenderer interface {
	GenerateQuote(doc model.QuoteDocument) ([]byte, error)
	GenerateWorkOrder(doc model.WorkOrderDocument) ([]byte, error)
	GenerateChangeOrder(doc model.ChangeOrderDocument) ([]byte, error)
	GeneratePurchaseOrder(doc model.PurchaseOrderDocument) ([]byte, error)
}

type WorkbookRenderer interface {
	GenerateEstimate(wb excel.EstimateWorkbook) ([]byte, error)
	GenerateQuoteRegister(quotes []model.Quote) ([]byte, error)
}

type DocumentService struct {
	estimates  *EstimateService
	pdf        PDFRenderer
	xlsx       WorkbookRenderer
	company    model.Company
	taxPercent float64
	now        func() time.Time
}

type FileResult struct {
	FileName    string
	ContentType string
	Content     []byte
}

type QuoteDocumentInput struct {
	Mode     model.FormMode
	Customer model.Customer
	Project  model.ProjectDescription
}

type WorkOrderInput struct {
	Principal    model.Principal
	Mode         model.FormMode
	Customer     model.Customer
	Project      model.ProjectDescription
	StartDate    time.Time
	Instructions string
}

type PurchaseOrderInput struct {
	Principal model.Principal
	Mode      model.FormMode
	Project   model.ProjectDescription
	Vendor    model.Vendor
	ShipTo    string
	Notes     string
}

type ChangeOrderInput struct {
	Principal   model.Principal
	QuoteNumber string
	Customer    model.Customer
	Original    model.ProjectDescription
	Revised     model.ProjectDescription
	Reason      string
}

func NewDocumentService(estimates *EstimateService, pdf PDFRenderer, xlsx WorkbookRenderer, company model.Company, taxPercent float64) *DocumentService {
	return &DocumentService{
		estimates:  estimates,
		pdf:        pdf,
		xlsx:       xlsx,
		company:    company,
		taxPercent: taxPercent,
		now:        time.Now,
	}
}

// QuotePDF prices the project and renders an unsaved quote.
func (s *DocumentService) QuotePDF(ctx context.Context, input QuoteDocumentInput) (*FileResult, error) {
	out, err := s.estimates.Estimate(ctx, EstimateInput{Mode: input.Mode, Project: input.Project})
	if err != nil {
		return nil, err
	}

	now := s.now()
	return s.renderQuote(model.Quote{
		QuoteNumber:     docnumber.New(docnumber.Quote, now),
		Customer:        input.Customer,
		Project:         out.Project,
		Estimate:        out.Estimate,
		Recommendations: out.Recommendations,
		CreatedAt:       now,
	}, out.Summary)
}

// RenderQuote renders a stored quote. The summary is rebuilt from the template
// since narratives are not persisted.
func (s *DocumentService) RenderQuote(quote model.Quote) (*FileResult, error) {
	return s.renderQuote(quote, TemplateSummary(quote.Project, quote.Estimate))
}

func (s *DocumentService) renderQuote(quote model.Quote, summary string) (*FileResult, error) {
	sow, err := scope.ForProject(quote.Project)
	if err != nil {
		return nil, err
	}

	date := quote.CreatedAt
	if date.IsZero() {
		date = s.now()
	}

	content, err := s.pdf.GenerateQuote(model.QuoteDocument{
		Number:          quote.QuoteNumber,
		Date:            date,
		ValidUntil:      dateOnly(date).AddDate(0, 0, quoteValidityDays),
		Company:         s.company,
		Customer:        quote.Customer,
		Project:         quote.Project,
		Estimate:        quote.Estimate,
		Scope:           sow,
		Recommendations: quote.Recommendations,
		Summary:         summary,
	})
	if err != nil {
		return nil, fmt.Errorf("render quote: %w", err)
	}

	return &FileResult{
		FileName:    buildFileName("quote", quote.QuoteNumber, quote.Project.ProjectName, "pdf"),
		ContentType: ContentTypePDF,
		Content:     content,
	}, nil
}

func (s *DocumentService) WorkOrder(ctx context.Context, input WorkOrderInput) (*FileResult, error) {
	if !input.Principal.IsStaff() {
		return nil, ErrPermissionDenied
	}

	project, est, err := s.estimates.Calculate(input.Mode, input.Project)
	if err != nil {
		return nil, err
	}
	sow, err := scope.ForProject(project)
	if err != nil {
		return nil, err
	}

	now := s.now()
	number := docnumber.New(docnumber.WorkOrder, now)
	content, err := s.pdf.GenerateWorkOrder(model.WorkOrderDocument{
		Number:       number,
		Date:         now,
		StartDate:    dateOnly(input.StartDate),
		Company:      s.company,
		Customer:     input.Customer,
		Project:      project,
		Estimate:     est,
		Scope:        sow,
		Instructions: strings.TrimSpace(input.Instructions),
	})
	if err != nil {
		return nil, fmt.Errorf("render work order: %w", err)
	}

	return &FileResult{
		FileName:    buildFileName("work-order", number, project.ProjectName, "pdf"),
		ContentType: ContentTypePDF,
		Content:     content,
	}, nil
}

func (s *DocumentService) PurchaseOrder(ctx context.Context, input PurchaseOrderInput) (*FileResult, error) {
	if !input.Principal.IsStaff() {
		return nil, ErrPermissionDenied
	}
	if strings.TrimSpace(input.Vendor.Name) == "" {
		return nil, fmt.Errorf("%w: vendor name is required", ErrInvalidInput)
	}

	project, est, err := s.estimates.Calculate(input.Mode, input.Project)
	if err != nil {
		return nil, err
	}

	order := procurement.BuildPurchaseOrder(project, est, s.taxPercent)
	shipTo := strings.TrimSpace(input.ShipTo)
	if shipTo == "" {
		shipTo = project.SiteAddress
	}

	now := s.now()
	number := docnumber.New(docnumber.PurchaseOrder, now)
	content, err := s.pdf.GeneratePurchaseOrder(model.PurchaseOrderDocument{
		Number:      number,
		Date:        now,
		Company:     s.company,
		Vendor:      input.Vendor,
		ProjectName: project.ProjectName,
		ShipTo:      shipTo,
		Lines:       order.Lines,
		Totals:      order.Totals,
		Notes:       strings.TrimSpace(input.Notes),
	})
	if err != nil {
		return nil, fmt.Errorf("render purchase order: %w", err)
	}

	return &FileResult{
		FileName:    buildFileName("purchase-order", number, project.ProjectName, "pdf"),
		ContentType: ContentTypePDF,
		Content:     content,
	}, nil
}

// ChangeOrder prices both versions of the project in detailed mode and
// renders the difference.
func (s *DocumentService) ChangeOrder(ctx context.Context, input ChangeOrderInput) (*FileResult, error) {
	if !input.Principal.IsStaff() {
		return nil, ErrPermissionDenied
	}
	if strings.TrimSpace(input.Reason) == "" {
		return nil, fmt.Errorf("%w: reason is required", ErrInvalidInput)
	}

	_, original, err := s.estimates.Calculate(model.FormModeDetailed, input.Original)
	if err != nil {
		return nil, fmt.Errorf("original project: %w", err)
	}
	revisedProject, revised, err := s.estimates.Calculate(model.FormModeDetailed, input.Revised)
	if err != nil {
		return nil, fmt.Errorf("revised project: %w", err)
	}

	now := s.now()
	number := docnumber.New(docnumber.ChangeOrder, now)
	content, err := s.pdf.GenerateChangeOrder(model.ChangeOrderDocument{
		Number:      number,
		Date:        now,
		QuoteNumber: strings.TrimSpace(input.QuoteNumber),
		Company:     s.company,
		Customer:    input.Customer,
		Project:     revisedProject,
		Original:    original,
		Revised:     revised,
		Reason:      strings.TrimSpace(input.Reason),
	})
	if err != nil {
		return nil, fmt.Errorf("render change order: %w", err)
	}

	return &FileResult{
		FileName:    buildFileName("change-order", number, revisedProject.ProjectName, "pdf"),
		ContentType: ContentTypePDF,
		Content:     content,
	}, nil
}

func (s *DocumentService) EstimateWorkbook(ctx context.Context, input EstimateInput) (*FileResult, error) {
	out, err := s.estimates.Estimate(ctx, input)
	if err != nil {
		return nil, err
	}

	now := s.now()
	content, err := s.xlsx.GenerateEstimate(excel.EstimateWorkbook{
		Project:         out.Project,
		Estimate:        out.Estimate,
		Recommendations: out.Recommendations,
		Summary:         out.Summary,
		GeneratedAt:     now,
	})
	if err != nil {
		return nil, fmt.Errorf("render estimate workbook: %w", err)
	}

	return &FileResult{
		FileName:    buildFileName("estimate", now.Format("20060102"), out.Project.ProjectName, "xlsx"),
		ContentType: ContentTypeXLSX,
		Content:     content,
	}, nil
}

func (s *DocumentService) QuoteRegister(quotes []model.Quote) (*FileResult, error) {
	content, err := s.xlsx.GenerateQuoteRegister(quotes)
	if err != nil {
		return nil, fmt.Errorf("render quote register: %w", err)
	}
	return &FileResult{
		FileName:    fmt.Sprintf("quotes-%s.xlsx", s.now().Format("20060102")),
		ContentType: ContentTypeXLSX,
		Content:     content,
	}, nil
}

func buildFileName(kind, number, projectName, ext string) string {
	parts := []string{kind, sanitizeFileName(number)}
	if name := strings.ToLower(sanitizeFileName(projectName)); name != "" {
		parts = append(parts, name)
	}
	return strings.Join(parts, "-") + "." + ext
}

func dateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sanitizeFileName(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z':
			result = append(result, r)
		case r >= 'A' && r <= 'Z':
			result = append(result, r)
		case r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	return strings.Trim(string(result), "-")
}

func titleWord(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func formatArea(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
