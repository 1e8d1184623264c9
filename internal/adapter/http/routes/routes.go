package routes

import (
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "lotwise/docs" // swag-generated API docs
	"lotwise/internal/adapter/http/handlers"
	"lotwise/internal/infrastructure/catalog"
	"lotwise/internal/usecase"
)

var router = gin.New()

const PORT = 8080

// Run will start the server
func Run() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	setMiddlewares(logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(logger)

	if err := router.Run(":" + strconv.Itoa(PORT)); err != nil {
		logger.Fatal("Failed to startup the application", zap.Error(err))
	}
}

func getRoutes(logger *zap.Logger) {
	catalogDir := getenvDefault("CATALOG_DIR", "data/catalogs")

	loader := catalog.NewLoader(catalogDir, logger)
	store := catalog.NewStore(loader, logger)

	evaluateUseCase := usecase.NewEvaluateUseCase(store)

	evaluateHandler := handlers.NewEvaluateHandler(evaluateUseCase)
	healthHandler := handlers.NewHealthHandler(catalogDir)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEvaluateRoutes(v1, evaluateHandler, healthHandler)
}

func setMiddlewares(logger *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(requestID())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}

// requestID echoes or assigns an X-Request-ID so a request can be correlated
// between the gin access log and downstream logs.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
