package handler

import (
	"github.com/gin-gonic/gin"
	appbilling "github.com/orderdesk/backend/internal/application/billing"
	"github.com/orderdesk/backend/internal/domain/billing"
)

// DashboardHandler serves the reconciliation dashboard endpoints
type DashboardHandler struct {
	BaseHandler
	service *appbilling.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(service *appbilling.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Summary returns the aggregate metrics for a date window.
// GET /api/v1/dashboard/summary?from=&to=
func (h *DashboardHandler) Summary(c *gin.Context) {
	var req appbilling.DashboardRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}
	req.Tab = string(billing.TabAll)

	resp, err := h.service.Dashboard(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp.Summary)
}

// Orders returns the visible order rows for a filter state.
// GET /api/v1/dashboard/orders?from=&to=&tab=&query=
func (h *DashboardHandler) Orders(c *gin.Context) {
	var req appbilling.DashboardRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	resp, err := h.service.Dashboard(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Payments returns the visible payment rows for a date window.
// GET /api/v1/dashboard/payments?from=&to=&query=
func (h *DashboardHandler) Payments(c *gin.Context) {
	var req appbilling.DashboardRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}
	req.Tab = string(billing.TabAllPayments)

	resp, err := h.service.Dashboard(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
