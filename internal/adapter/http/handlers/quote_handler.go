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

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles HTTP requests for shipping quotes.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote computes the cost for the requested weight/type and saves
// the quote. The cost in the response is always server-computed.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.CreateQuote(c.Request.Context(), usecase.CreateQuoteInput{
		Weight:        payload.Weight,
		ShippingType:  entities.ShippingType(payload.ShippingType),
		CustomerName:  payload.CustomerName,
		CustomerEmail: payload.CustomerEmail,
		CustomerPhone: payload.CustomerPhone,
	})
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.ListQuotes(c.Request.Context())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWeight):
		return pkg.NewDomainErrorSimple("INVALID_WEIGHT", "Weight must be a positive number", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidShippingType):
		return pkg.NewDomainErrorSimple("INVALID_SHIPPING_TYPE", "Shipping type must be sea, air or express", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
