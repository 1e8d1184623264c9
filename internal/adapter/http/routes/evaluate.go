package routes

import (
	"github.com/gin-gonic/gin"

	"lotwise/internal/adapter/http/handlers"
)

const (
	PathEvaluate = "/evaluate"
	PathHealth   = "/health"
)

func addEvaluateRoutes(rg *gin.RouterGroup, evaluateHandler *handlers.EvaluateHandler, healthHandler *handlers.HealthHandler) {
	rg.POST(PathEvaluate, evaluateHandler.Evaluate)
	rg.GET(PathHealth, healthHandler.Health)
}
