package main

import (
	_ "gadget_garage/docs"
	"gadget_garage/internal/adapter/http/routes"
	"gadget_garage/internal/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Gadget Garage API
// @version         1.0
// @description     Quotes, appointments, admin dashboard, messaging and local payments for the Gadget Garage PC shop.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin session token.

func main() {
	routes.Run(config.Load())
}
