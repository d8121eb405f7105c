package handlers

import (
	"errors"
	"net/http"

	request "flashlink/internal/adapter/http/dto/request"
	response "flashlink/internal/adapter/http/dto/response"
	"flashlink/internal/domain/entities"
	"flashlink/internal/usecase"
	"flashlink/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidShipmentPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid shipment payload", http.StatusBadRequest)

// ShipmentHandler handles HTTP requests for shipments: manual booking,
// public tracking and admin status updates.

type ShipmentHandler struct {
	usecase usecase.IShipmentUseCase
}

func NewShipmentHandler(uc usecase.IShipmentUseCase) *ShipmentHandler {
	return &ShipmentHandler{usecase: uc}
}

// CreateShipment books a shipment directly, without the payment flow.
func (h *ShipmentHandler) CreateShipment(c *gin.Context) {
	var payload request.ShipmentCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidShipmentPayload.HTTPStatus, errInvalidShipmentPayload.ToHTTPError())
		return
	}

	shipment, err := h.usecase.Create(c.Request.Context(), usecase.CreateShipmentInput{
		CustomerName:  payload.CustomerName,
		CustomerEmail: payload.CustomerEmail,
		CustomerPhone: payload.CustomerPhone,
		Weight:        payload.Weight,
		ShippingType:  entities.ShippingType(payload.ShippingType),
		Cost:          payload.Cost,
	})
	if err != nil {
		appErr := mapShipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromShipment(shipment))
}

// Track is the public tracking lookup.
func (h *ShipmentHandler) Track(c *gin.Context) {
	orderNumber := c.Param("orderNumber")

	shipment, err := h.usecase.TrackByOrderNumber(c.Request.Context(), orderNumber)
	if err != nil {
		appErr := mapShipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromShipment(shipment))
}

// UpdateStatus appends one tracking entry and moves the snapshot status
// forward when a new status is given.
func (h *ShipmentHandler) UpdateStatus(c *gin.Context) {
	orderNumber := c.Param("orderNumber")

	var payload request.ShipmentStatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidShipmentPayload.HTTPStatus, errInvalidShipmentPayload.ToHTTPError())
		return
	}

	shipment, err := h.usecase.UpdateStatus(c.Request.Context(), usecase.UpdateStatusInput{
		OrderNumber: orderNumber,
		Status:      entities.ShipmentStatus(payload.Status),
		Location:    payload.Location,
		Note:        payload.Note,
	})
	if err != nil {
		appErr := mapShipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromShipment(shipment))
}

func (h *ShipmentHandler) ListShipments(c *gin.Context) {
	shipments, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapShipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromShipments(shipments))
}

func mapShipmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidShipmentInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidShipmentStatus):
		return pkg.NewDomainErrorSimple("INVALID_SHIPMENT_STATUS", "Unknown shipment status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrShipmentNotFound):
		return pkg.NewDomainErrorSimple("SHIPMENT_NOT_FOUND", "Shipment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrShipmentAlreadyExists):
		return pkg.NewDomainErrorSimple("SHIPMENT_ALREADY_EXISTS", "Shipment already exists for this order", http.StatusConflict)
	case errors.Is(err, usecase.ErrStatusTransitionNotAllowed):
		return pkg.NewDomainErrorSimple("STATUS_TRANSITION_NOT_ALLOWED", "Shipment status cannot move backwards", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
