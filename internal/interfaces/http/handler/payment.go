package handler

import (
	"github.com/gin-gonic/gin"
	appbilling "github.com/orderdesk/backend/internal/application/billing"
)

// PaymentHandler serves payment intake endpoints
type PaymentHandler struct {
	BaseHandler
	service *appbilling.PaymentIntakeService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(service *appbilling.PaymentIntakeService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

type recordPaymentBody struct {
	Amount string `json:"amount"`
	Method string `json:"method"`
	Remark string `json:"remark"`
}

// Record records a payment against an order.
// POST /api/v1/orders/:number/payments
func (h *PaymentHandler) Record(c *gin.Context) {
	var body recordPaymentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.service.RecordPayment(c.Request.Context(), appbilling.RecordPaymentRequest{
		OrderNumber: c.Param("number"),
		Amount:      body.Amount,
		Method:      body.Method,
		Remark:      body.Remark,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Delete removes a recorded payment.
// DELETE /api/v1/payments/:number
func (h *PaymentHandler) Delete(c *gin.Context) {
	if err := h.service.DeletePayment(c.Request.Context(), c.Param("number")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
