package main

import (
	"fmt"
	"os"

	_ "academy_payments/docs"
	"academy_payments/internal/adapter/http/routes"
	"academy_payments/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Academy Payments API
// @version         1.0
// @description     Course payments (M-Pesa STK push, Mercado Pago checkout, paybill transfers), status tracking and storefront activity, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	if err := logger.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := routes.Run(); err != nil {
		logger.Error("[http][server] failed to start the application", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
