package routes

import (
	"log"
	"os"
	"strings"

	_ "drywall_estimator/docs" // This will be auto-generated
	"drywall_estimator/internal/adapter/http/handlers"
	"drywall_estimator/internal/adapter/persistence/repository"
	"drywall_estimator/internal/infrastructure/database"
	"drywall_estimator/internal/infrastructure/metrics"
	"drywall_estimator/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if metricsEnabled() {
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	estimationRepo := repository.NewEstimationDynamoRepository(ddb)
	catalogRepo := repository.NewCatalogDynamoRepository(ddb)
	draftRepo := repository.NewDraftInvoiceDynamoRepository(ddb)

	estimationUseCase := usecase.NewEstimationUseCase(estimationRepo, catalogRepo, draftRepo)

	calculatorHandler := handlers.NewCalculatorHandler(estimationUseCase)
	estimationHandler := handlers.NewEstimationHandler(estimationUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimationRoutes(v1, calculatorHandler, estimationHandler)
}

func setMiddlewares(r *gin.Engine) {
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	r.Use(requestMetrics())
}

// METRICS_ENABLED defaults to true; only an explicit "false" turns it off.
func metricsEnabled() bool {
	return !strings.EqualFold(strings.TrimSpace(os.Getenv("METRICS_ENABLED")), "false")
}
