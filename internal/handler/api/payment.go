package api

import (
	"net/http"

	reqdto "travel-booking/internal/handler/dto/request"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/handler/httperr"
	"travel-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PaymentMetrics interface {
	PaymentVerified(status string, changed bool)
}

type PaymentHandler struct {
	cmds    commands.PaymentCommands
	metrics PaymentMetrics
}

func NewPaymentHandler(cmds commands.PaymentCommands, metrics PaymentMetrics) *PaymentHandler {
	return &PaymentHandler{cmds: cmds, metrics: metrics}
}

// @Summary Initialize payment
// @Description Opens a Chapa checkout for a pending booking and records a pending payment
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.InitializePaymentRequest true "Payment"
// @Success 200 {object} resdto.InitializePaymentResponse
// @Failure 400 {object} httperr.Response "validation error or gateway rejection (detail carries the gateway payload)"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /payments/initialize-payment/ [post]
func (h *PaymentHandler) Initialize(c *gin.Context) {
	var req reqdto.InitializePaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.Initialize(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInitializeResult(result))
}

// @Summary Verify payment
// @Description Callback target. Reconciles the payment and its booking with the gateway; safe to repeat.
// @Tags payments
// @Produce json
// @Param tx_ref path string true "Transaction reference"
// @Success 200 {object} resdto.VerifyPaymentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /payments/verify-payment/{tx_ref}/ [get]
func (h *PaymentHandler) Verify(c *gin.Context) {
	result, err := h.cmds.Verify(c.Request.Context(), c.Param("tx_ref"))
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	h.metrics.PaymentVerified(result.PaymentStatus.String(), result.Changed)
	c.JSON(http.StatusOK, resdto.FromVerifyResult(result))
}
