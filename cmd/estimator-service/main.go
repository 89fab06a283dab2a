package main

import (
	"context"
	"fmt"
	"os"

	"github.com/nurpe/cleaning-estimator/internal/auth"
	"github.com/nurpe/cleaning-estimator/internal/config"
	"github.com/nurpe/cleaning-estimator/internal/db"
	"github.com/nurpe/cleaning-estimator/internal/drafts"
	"github.com/nurpe/cleaning-estimator/internal/email"
	"github.com/nurpe/cleaning-estimator/internal/excel"
	"github.com/nurpe/cleaning-estimator/internal/ghl"
	httphandler "github.com/nurpe/cleaning-estimator/internal/http"
	"github.com/nurpe/cleaning-estimator/internal/http/middleware"
	"github.com/nurpe/cleaning-estimator/internal/logger"
	"github.com/nurpe/cleaning-estimator/internal/model"
	"github.com/nurpe/cleaning-estimator/internal/pdf"
	"github.com/nurpe/cleaning-estimator/internal/pricing"
	"github.com/nurpe/cleaning-estimator/internal/recommend"
	"github.com/nurpe/cleaning-estimator/internal/repository"
	"github.com/nurpe/cleaning-estimator/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)
	ctx := context.Background()

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}
	rdb, err := db.NewRedis(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect redis")
	}

	rates := pricing.DefaultRateCard()
	rates.MinimumCharge = cfg.Pricing.MinimumCharge

	var narrator recommend.Narrator
	gemini, err := recommend.NewGeminiNarrator(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		log.Warn().Err(err).Msg("summary narrator unavailable, using template summaries")
	} else if gemini != nil {
		narrator = gemini
	}

	mailer, err := email.NewSESSender(ctx, email.Config{
		Enabled:  cfg.Email.Enabled,
		From:     cfg.Email.From,
		FromName: cfg.Email.FromName,
		Region:   cfg.Email.AWSRegion,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init email sender")
	}

	crm := ghl.NewClient(ghl.Config{
		APIKey:          cfg.GHL.APIKey,
		LocationID:      cfg.GHL.LocationID,
		PipelineID:      cfg.GHL.PipelineID,
		PipelineStageID: cfg.GHL.PipelineStageID,
		BaseURL:         cfg.GHL.BaseURL,
		Logger:          log,
	})

	company := model.Company{
		Name:    cfg.Company.Name,
		Address: cfg.Company.Address,
		Phone:   cfg.Company.Phone,
		Email:   cfg.Company.Email,
	}

	estimateService := service.NewEstimateService(pricing.NewCalculator(rates), recommend.NewGenerator(), narrator, log)
	documentService := service.NewDocumentService(estimateService, pdf.NewGenerator(), excel.NewGenerator(), company, cfg.Pricing.POTaxPercent)
	quoteService := service.NewQuoteService(
		repository.NewQuoteRepository(database),
		estimateService,
		documentService,
		mailer,
		crm,
		company,
		log,
	)
	draftService := service.NewDraftService(drafts.NewStore(rdb, cfg.Redis.DraftTTL))

	log.Info().
		Bool("email", mailer.Enabled()).
		Bool("crm", crm.Enabled()).
		Bool("narrator", narrator != nil).
		Msg("integrations configured")

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(estimateService, documentService, quoteService, draftService, log)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment, cfg.HTTP.CORSAllowedOrigins, log)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting estimator service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
