package main

import (
	_ "lotwise/docs"
	"lotwise/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Subdivision Evaluator API
// @version         0.0.1
// @description     Estimates the financial feasibility of subdividing a residential property into multiple lots.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
