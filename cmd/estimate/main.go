// Command estimate prices a project file offline and renders its quote or
// workbook without the service, database or integrations.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nurpe/cleaning-estimator/internal/excel"
	"github.com/nurpe/cleaning-estimator/internal/logger"
	"github.com/nurpe/cleaning-estimator/internal/model"
	"github.com/nurpe/cleaning-estimator/internal/money"
	"github.com/nurpe/cleaning-estimator/internal/pdf"
	"github.com/nurpe/cleaning-estimator/internal/pricing"
	"github.com/nurpe/cleaning-estimator/internal/recommend"
	"github.com/nurpe/cleaning-estimator/internal/service"
)

// request is the project file layout. The customer block is only used by quote.
type request struct {
	Mode     string                   `json:"mode"`
	Customer model.Customer           `json:"customer"`
	Project  model.ProjectDescription `json:"project"`
}

type options struct {
	file          string
	output        string
	mode          string
	minimumCharge float64
	company       string
	asJSON        bool
}

func main() {
	if err := newRootCmd(os.Stdout, logger.New("development")).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer, log zerolog.Logger) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "estimate",
		Short:        "Price commercial cleaning projects from the command line",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "project file (JSON)")
	root.PersistentFlags().StringVar(&opts.mode, "mode", "", "form mode override: quick or detailed")
	root.PersistentFlags().Float64Var(&opts.minimumCharge, "minimum-charge", pricing.DefaultRateCard().MinimumCharge, "minimum job charge")
	_ = root.MarkPersistentFlagRequired("file")

	calc := &cobra.Command{
		Use:   "calc",
		Short: "Print the estimate for a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(cmd.Context(), out, log, opts)
		},
	}
	calc.Flags().BoolVar(&opts.asJSON, "json", false, "print the full estimate as JSON")

	quote := &cobra.Command{
		Use:   "quote",
		Short: "Render the customer quote PDF for a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDocument(cmd.Context(), out, log, opts, "quote")
		},
	}
	quote.Flags().StringVarP(&opts.output, "output", "o", "", "output path (defaults to the generated file name)")
	quote.Flags().StringVar(&opts.company, "company", "Commercial Cleaning Co.", "company name printed on the quote")

	workbook := &cobra.Command{
		Use:   "workbook",
		Short: "Export the estimate as an XLSX workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDocument(cmd.Context(), out, log, opts, "workbook")
		},
	}
	workbook.Flags().StringVarP(&opts.output, "output", "o", "", "output path (defaults to the generated file name)")

	root.AddCommand(calc, quote, workbook)
	return root
}

func loadRequest(opts *options) (request, model.FormMode, error) {
	var req request
	raw, err := os.ReadFile(opts.file)
	if err != nil {
		return req, "", fmt.Errorf("read project file: %w", err)
	}
	if err := json.Unmarshal(raw, &req); err != nil {
		return req, "", fmt.Errorf("parse project file: %w", err)
	}

	modeRaw := req.Mode
	if opts.mode != "" {
		modeRaw = opts.mode
	}
	mode, ok := pricing.ParseFormMode(strings.ToLower(strings.TrimSpace(modeRaw)))
	if !ok {
		return req, "", fmt.Errorf("unknown mode %q", modeRaw)
	}
	return req, mode, nil
}

func newServices(log zerolog.Logger, opts *options) (*service.EstimateService, *service.DocumentService) {
	rates := pricing.DefaultRateCard()
	rates.MinimumCharge = opts.minimumCharge
	estimates := service.NewEstimateService(pricing.NewCalculator(rates), recommend.NewGenerator(), nil, log)
	documents := service.NewDocumentService(estimates, pdf.NewGenerator(), excel.NewGenerator(), model.Company{Name: opts.company}, 0)
	return estimates, documents
}

func runCalc(ctx context.Context, out io.Writer, log zerolog.Logger, opts *options) error {
	req, mode, err := loadRequest(opts)
	if err != nil {
		return err
	}
	estimates, _ := newServices(log, opts)

	result, err := estimates.Estimate(contextOrBackground(ctx), service.EstimateInput{Mode: mode, Project: req.Project})
	if err != nil {
		return err
	}

	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	est := result.Estimate
	fmt.Fprintf(out, "%-32s %14s\n", "Line", "Amount")
	for _, adj := range est.Adjustments {
		fmt.Fprintf(out, "%-32s %14s\n", adj.Label, money.Signed(adj.Amount))
	}
	fmt.Fprintf(out, "%-32s %14s\n", "Total", money.Format(est.TotalPrice))
	fmt.Fprintf(out, "\n%.1f hours, crew of %d, %d day(s)\n", est.EstimatedHours, est.CrewSize, est.EstimatedDays)
	if est.MinimumApplied {
		fmt.Fprintln(out, "Minimum charge applied.")
	}
	for _, rec := range result.Recommendations {
		fmt.Fprintf(out, "- %s\n", rec)
	}
	return nil
}

func runDocument(ctx context.Context, out io.Writer, log zerolog.Logger, opts *options, kind string) error {
	req, mode, err := loadRequest(opts)
	if err != nil {
		return err
	}
	_, documents := newServices(log, opts)
	ctx = contextOrBackground(ctx)

	var file *service.FileResult
	switch kind {
	case "quote":
		file, err = documents.QuotePDF(ctx, service.QuoteDocumentInput{Mode: mode, Customer: req.Customer, Project: req.Project})
	default:
		file, err = documents.EstimateWorkbook(ctx, service.EstimateInput{Mode: mode, Project: req.Project})
	}
	if err != nil {
		return err
	}

	path := opts.output
	if path == "" {
		path = file.FileName
	}
	if err := os.WriteFile(path, file.Content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(out, "wrote %s (%d bytes)\n", path, len(file.Content))
	return nil
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
