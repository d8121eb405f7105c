package handlers

import (
	"errors"
	"log"
	"net/http"

	request "flashlink/internal/adapter/http/dto/request"
	response "flashlink/internal/adapter/http/dto/response"
	"flashlink/internal/domain/entities"
	"flashlink/internal/usecase"
	"flashlink/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid payment payload", http.StatusBadRequest)

// PaymentHandler handles HTTP requests for the payment lifecycle:
// opening an intent with the gateway and confirming it afterwards.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreateIntent opens a charge with the gateway and returns the opaque
// client token the browser needs to complete it.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var payload request.PaymentIntentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create-intent start amount=%v type=%s", payload.Amount, payload.ShippingType)

	result, err := h.usecase.CreateIntent(c.Request.Context(), usecase.CreateIntentInput{
		Amount:        payload.Amount,
		Weight:        payload.Weight,
		ShippingType:  entities.ShippingType(payload.ShippingType),
		CustomerName:  payload.CustomerName,
		CustomerEmail: payload.CustomerEmail,
		CustomerPhone: payload.CustomerPhone,
	})
	if err != nil {
		log.Printf("[payment][handler] create-intent failed err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create-intent success order_number=%s intent_id=%s", result.OrderNumber, result.IntentID)

	c.JSON(http.StatusCreated, response.FromIntentResult(result))
}

// Confirm reconciles the client's success claim against the gateway and
// returns the order's shipment. Safe to retry; duplicate confirms return
// the same shipment.
func (h *PaymentHandler) Confirm(c *gin.Context) {
	var payload request.PaymentConfirmRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] confirm start intent_id=%s order_number=%s", payload.IntentID, payload.OrderNumber)

	result, err := h.usecase.Confirm(c.Request.Context(), usecase.ConfirmInput{
		IntentID:      payload.IntentID,
		OrderNumber:   payload.OrderNumber,
		CustomerName:  payload.CustomerName,
		CustomerEmail: payload.CustomerEmail,
		CustomerPhone: payload.CustomerPhone,
		Weight:        payload.Weight,
		ShippingType:  entities.ShippingType(payload.ShippingType),
		Amount:        payload.Amount,
	})
	if err != nil {
		log.Printf("[payment][handler] confirm failed intent_id=%s err=%v", payload.IntentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] confirm success order_number=%s", result.OrderNumber)

	c.JSON(http.StatusOK, response.FromConfirmResult(result))
}

// GetPaymentByOrderNumber returns the payment record for an order.
func (h *PaymentHandler) GetPaymentByOrderNumber(c *gin.Context) {
	orderNumber := c.Param("orderNumber")

	rec, err := h.usecase.GetByOrderNumber(c.Request.Context(), orderNumber)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentRecord(rec))
}

func (h *PaymentHandler) ListPayments(c *gin.Context) {
	records, err := h.usecase.ListPayments(c.Request.Context())
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentRecords(records))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentAmount), errors.Is(err, usecase.ErrMissingCustomerInfo), errors.Is(err, usecase.ErrInvalidIntentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotCompleted):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_COMPLETED", "Payment has not been completed with the gateway", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentClaimMismatch):
		return pkg.NewDomainErrorSimple("PAYMENT_CLAIM_MISMATCH", "Confirmation does not match the recorded payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrIntentAlreadyExists):
		return pkg.NewDomainErrorSimple("INTENT_ALREADY_EXISTS", "Payment intent already recorded", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentStateConflict):
		return pkg.NewDomainErrorSimple("PAYMENT_STATE_CONFLICT", "Payment record is in a conflicting terminal state", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGateway):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_ERROR", "Payment gateway failure", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
