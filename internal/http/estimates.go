package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nurpe/cleaning-estimator/internal/model"
	"github.com/nurpe/cleaning-estimator/internal/service"
)

type estimateRequest struct {
	Mode    string                   `json:"mode"`
	Project model.ProjectDescription `json:"project"`
}

type quoteRequest struct {
	Mode     string                   `json:"mode"`
	Customer model.Customer           `json:"customer"`
	Project  model.ProjectDescription `json:"project"`
}

func (h *Handler) catalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.estimates.Catalog())
}

func (h *Handler) bindEstimate(c *gin.Context) (service.EstimateInput, bool) {
	var req estimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return service.EstimateInput{}, false
	}
	mode, err := parseFormMode(req.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mode"})
		return service.EstimateInput{}, false
	}
	return service.EstimateInput{Mode: mode, Project: req.Project}, true
}

func (h *Handler) estimate(c *gin.Context) {
	input, ok := h.bindEstimate(c)
	if !ok {
		return
	}

	out, err := h.estimates.Estimate(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) exportEstimate(c *gin.Context) {
	input, ok := h.bindEstimate(c)
	if !ok {
		return
	}

	file, err := h.documents.EstimateWorkbook(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.sendFile(c, file)
}

func (h *Handler) bindQuote(c *gin.Context) (quoteRequest, model.FormMode, bool) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return req, "", false
	}
	mode, err := parseFormMode(req.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mode"})
		return req, "", false
	}
	return req, mode, true
}

func (h *Handler) quotePDF(c *gin.Context) {
	req, mode, ok := h.bindQuote(c)
	if !ok {
		return
	}

	file, err := h.documents.QuotePDF(c.Request.Context(), service.QuoteDocumentInput{
		Mode:     mode,
		Customer: req.Customer,
		Project:  req.Project,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.sendFile(c, file)
}

func (h *Handler) submitQuote(c *gin.Context) {
	req, mode, ok := h.bindQuote(c)
	if !ok {
		return
	}

	result, err := h.quotes.Submit(c.Request.Context(), service.SubmitQuoteInput{
		Mode:     mode,
		Customer: req.Customer,
		Project:  req.Project,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}
