package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nurpe/cleaning-estimator/internal/model"
	"github.com/nurpe/cleaning-estimator/internal/service"
)

type workOrderRequest struct {
	Mode         string                   `json:"mode"`
	Customer     model.Customer           `json:"customer"`
	Project      model.ProjectDescription `json:"project"`
	StartDate    string                   `json:"start_date"`
	Instructions string                   `json:"instructions"`
}

type purchaseOrderRequest struct {
	Mode    string                   `json:"mode"`
	Project model.ProjectDescription `json:"project"`
	Vendor  model.Vendor             `json:"vendor"`
	ShipTo  string                   `json:"ship_to"`
	Notes   string                   `json:"notes"`
}

type changeOrderRequest struct {
	QuoteNumber string                   `json:"quote_number"`
	Customer    model.Customer           `json:"customer"`
	Original    model.ProjectDescription `json:"original"`
	Revised     model.ProjectDescription `json:"revised"`
	Reason      string                   `json:"reason" binding:"required"`
}

func (h *Handler) workOrder(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	var req workOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	mode, err := parseFormMode(req.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mode"})
		return
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date"})
		return
	}

	file, err := h.documents.WorkOrder(c.Request.Context(), service.WorkOrderInput{
		Principal:    principal,
		Mode:         mode,
		Customer:     req.Customer,
		Project:      req.Project,
		StartDate:    start,
		Instructions: req.Instructions,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.sendFile(c, file)
}

func (h *Handler) purchaseOrder(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	var req purchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	mode, err := parseFormMode(req.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mode"})
		return
	}

	file, err := h.documents.PurchaseOrder(c.Request.Context(), service.PurchaseOrderInput{
		Principal: principal,
		Mode:      mode,
		Project:   req.Project,
		Vendor:    req.Vendor,
		ShipTo:    req.ShipTo,
		Notes:     req.Notes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.sendFile(c, file)
}

func (h *Handler) changeOrder(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	var req changeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, err := h.documents.ChangeOrder(c.Request.Context(), service.ChangeOrderInput{
		Principal:   principal,
		QuoteNumber: req.QuoteNumber,
		Customer:    req.Customer,
		Original:    req.Original,
		Revised:     req.Revised,
		Reason:      req.Reason,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.sendFile(c, file)
}
