package routes

import (
	"drywall_estimator/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCalculators   = "/calculators"
	PathSessions      = "/sessions/:session_id"
	PathDraftInvoices = "/draft-invoices"
)

func addEstimationRoutes(rg *gin.RouterGroup, calculatorHandler *handlers.CalculatorHandler, estimationHandler *handlers.EstimationHandler) {
	calculators := rg.Group(PathCalculators)
	{
		calculators.GET("", calculatorHandler.ListKinds)
		calculators.POST("/:kind", calculatorHandler.Calculate)
	}

	sessions := rg.Group(PathSessions)
	{
		sessions.GET("/estimations", estimationHandler.ListEstimations)
		sessions.POST("/estimations", estimationHandler.AddEstimation)
		sessions.DELETE("/estimations", estimationHandler.ClearEstimations)
		sessions.DELETE("/estimations/:estimation_id", estimationHandler.RemoveEstimation)
		sessions.GET("/aggregate", estimationHandler.Aggregate)
		sessions.POST("/draft-invoice", estimationHandler.BuildDraftInvoice)
	}

	drafts := rg.Group(PathDraftInvoices)
	{
		drafts.GET("/:id", estimationHandler.GetDraftInvoice)
	}
}
