package routes

import (
	"flashlink/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes    = "/quotes"
	PathPayments  = "/payments"
	PathShipments = "/shipments"
	PathTrack     = "/track"
)

func addShippingRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, paymentHandler *handlers.PaymentHandler, shipmentHandler *handlers.ShipmentHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("", quoteHandler.ListQuotes)
	}

	// Intent and confirm are top-level; the order number only exists
	// after the intent is opened.
	rg.POST("/payment-intent", paymentHandler.CreateIntent)
	rg.POST("/payment-confirm", paymentHandler.Confirm)

	payments := rg.Group(PathPayments)
	{
		payments.GET("", paymentHandler.ListPayments)
		payments.GET("/:orderNumber", paymentHandler.GetPaymentByOrderNumber)
	}

	shipments := rg.Group(PathShipments)
	{
		shipments.POST("", shipmentHandler.CreateShipment)
		shipments.GET("", shipmentHandler.ListShipments)
		shipments.PATCH("/:orderNumber", shipmentHandler.UpdateStatus)
	}

	// Public tracking lookup.
	rg.GET(PathTrack+"/:orderNumber", shipmentHandler.Track)
}
