package routes

import (
	"log"
	"os"
	"strconv"
	"strings"

	_ "flashlink/docs" // This will be auto-generated
	"flashlink/internal/adapter/http/handlers"
	repository2 "flashlink/internal/adapter/persistence/repository"
	"flashlink/internal/infrastructure/database"
	"flashlink/internal/infrastructure/notifications"
	"flashlink/internal/infrastructure/payments"
	"flashlink/internal/usecase"
	"flashlink/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	shipmentRepo := repository2.NewShipmentDynamoRepository(ddb)

	tariffs := usecase.DefaultTariffs()

	var paymentGateway interfaces.IPaymentGateway
	stripeGateway, err := payments.NewStripeGateway(os.Getenv("STRIPE_SECRET_KEY"))
	if err != nil {
		log.Printf("Stripe gateway not configured: %v", err)
	} else {
		paymentGateway = stripeGateway
	}

	notifier := notifications.NewLogNotifier()

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, tariffs)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, shipmentRepo, paymentGateway, notifier, tariffs)
	shipmentUseCase := usecase.NewShipmentUseCase(shipmentRepo, tariffs, usecase.ShipmentUseCaseOptions{
		AllowStatusRollback: isStatusRollbackEnabled(),
	})

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	shipmentHandler := handlers.NewShipmentHandler(shipmentUseCase)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addShippingRoutes(v1, quoteHandler, paymentHandler, shipmentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

// isStatusRollbackEnabled gates the operator correction path that lets a
// shipment status move backwards.
func isStatusRollbackEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("SHIPMENT_ALLOW_ROLLBACK")))
	switch v {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
