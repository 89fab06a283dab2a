package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nurpe/cleaning-estimator/internal/http/middleware"
	"github.com/nurpe/cleaning-estimator/internal/model"
	"github.com/nurpe/cleaning-estimator/internal/pricing"
	"github.com/nurpe/cleaning-estimator/internal/service"
)

type Handler struct {
	estimates *service.EstimateService
	documents *service.DocumentService
	quotes    *service.QuoteService
	drafts    *service.DraftService
	log       zerolog.Logger
}

func NewHandler(
	estimates *service.EstimateService,
	documents *service.DocumentService,
	quotes *service.QuoteService,
	drafts *service.DraftService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		estimates: estimates,
		documents: documents,
		quotes:    quotes,
		drafts:    drafts,
		log:       log,
	}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	api := router.Group("/api/v1")

	api.GET("/catalog", h.catalog)
	api.POST("/estimates", h.estimate)
	api.POST("/estimates/export", h.exportEstimate)
	api.POST("/documents/quote", h.quotePDF)
	api.POST("/quotes", h.submitQuote)

	api.POST("/drafts", h.createDraft)
	api.GET("/drafts/:id", h.getDraft)
	api.PUT("/drafts/:id", h.saveDraft)
	api.DELETE("/drafts/:id", h.deleteDraft)

	staff := api.Group("/")
	staff.Use(authMiddleware, middleware.RequireRoles(model.UserRoleAdmin, model.UserRoleEstimator))
	staff.GET("/quotes", h.listQuotes)
	staff.GET("/quotes/export", h.exportQuotes)
	staff.GET("/quotes/:id", h.getQuote)
	staff.GET("/quotes/:id/pdf", h.getQuotePDF)
	staff.PATCH("/quotes/:id/status", h.updateQuoteStatus)
	staff.POST("/documents/work-order", h.workOrder)
	staff.POST("/documents/purchase-order", h.purchaseOrder)
	staff.POST("/documents/change-order", h.changeOrder)
}

func (h *Handler) principal(c *gin.Context) (model.Principal, bool) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
	}
	return principal, ok
}

func (h *Handler) sendFile(c *gin.Context, file *service.FileResult) {
	c.Header("Content-Disposition", "attachment; filename=\""+file.FileName+"\"")
	c.Data(http.StatusOK, file.ContentType, file.Content)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	var fieldErrs pricing.ValidationErrors
	switch {
	case errors.As(err, &fieldErrs):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project", "fields": fieldErrs})
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func parseFormMode(raw string) (model.FormMode, error) {
	mode, ok := pricing.ParseFormMode(strings.ToLower(strings.TrimSpace(raw)))
	if !ok {
		return "", service.ErrInvalidInput
	}
	return mode, nil
}

// parseDate accepts an empty value as the zero time.
func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, service.ErrInvalidInput
}
