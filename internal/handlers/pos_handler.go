package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/fadehouse/barberpos/internal/httperr"
	"github.com/fadehouse/barberpos/internal/httpresp"
	"github.com/fadehouse/barberpos/internal/middleware"
	ucSale "github.com/fadehouse/barberpos/internal/usecase/sale"
)

// ======================================================
// HANDLER
// ======================================================

type PosHandler struct {
	checkout *ucSale.Checkout
}

func NewPosHandler(checkout *ucSale.Checkout) *PosHandler {
	return &PosHandler{checkout: checkout}
}

// ======================================================
// REQUESTS
// ======================================================

type CheckoutRequest struct {
	CustomerID    uint    `json:"customer_id"`
	ServiceIDs    []uint  `json:"service_ids"`
	BarberID      *uint   `json:"barber_id"`
	PaymentMethod string  `json:"payment_method" binding:"required"`
	TipAmount     float64 `json:"tip_amount"`
	Notes         string  `json:"notes"`
}

// ======================================================
// CHECKOUT
// ======================================================

func (h *PosHandler) Checkout(c *gin.Context) {
	cashierID := c.MustGet(middleware.ContextUserID).(uint)

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid checkout data.")
		return
	}

	receipt, err := h.checkout.Execute(c.Request.Context(), ucSale.CheckoutInput{
		CashierID:     cashierID,
		BarberID:      req.BarberID,
		CustomerID:    req.CustomerID,
		ServiceIDs:    req.ServiceIDs,
		PaymentMethod: req.PaymentMethod,
		TipAmount:     req.TipAmount,
		Notes:         req.Notes,
	})

	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.BadRequest(c, code, checkoutMessage(code))
			return
		}

		// A failed step leaves earlier writes in place; name the step so the
		// cashier knows what landed and what did not.
		var stepErr *ucSale.StepError
		if errors.As(err, &stepErr) {
			switch stepErr.Step {
			case ucSale.StepCreateTransaction:
				httperr.Internal(c, "failed_to_create_transaction", "Payment could not be processed.")
			case ucSale.StepSaveLineItems:
				httperr.Internal(c, "failed_to_save_line_items", "Transaction saved but services were not recorded.")
			case ucSale.StepUpdateVisitCount:
				httperr.Internal(c, "failed_to_update_visit_count", "Transaction saved but the visit count was not updated.")
			default:
				httperr.Internal(c, "checkout_failed", "Payment could not be processed.")
			}
			return
		}

		httperr.Internal(c, "checkout_failed", "Payment could not be processed.")
		return
	}

	httpresp.Created(c, receipt)
}

func checkoutMessage(code string) string {
	switch code {
	case "no_customer_selected":
		return "Please select a customer."
	case "empty_cart":
		return "Please add at least one service."
	case "invalid_payment_method":
		return "Payment method must be cash, qr or ewallet."
	case "invalid_tip_amount":
		return "Tip must be zero or positive."
	case "customer_not_found":
		return "Customer not found."
	case "service_not_found":
		return "One of the selected services no longer exists."
	}
	return "Checkout was rejected."
}
