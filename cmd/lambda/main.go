package main

import (
	"context"
	"os"

	"pet-clinic-rowstore/internal/app"
	"pet-clinic-rowstore/internal/platform/config"
	"pet-clinic-rowstore/internal/platform/logger"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
)

// Mismo router que cmd/api detrás de API Gateway (HTTP API, payload v2).
// La sesión se abre una vez por contenedor y se reusa entre invocaciones.
func main() {
	// Antes de tener config el logger sale de LOG_LEVEL/LOG_FORMAT/APP_NAME.
	boot := logger.NewFromEnv()

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		boot.Error("config", map[string]any{"err": err})
		os.Exit(1)
	}

	a, err := app.New(context.Background(), cfg)
	if err != nil {
		boot.Error("startup", map[string]any{"err": err, "backend": cfg.Store.Backend})
		os.Exit(1)
	}

	adapter := chiadapter.NewV2(a.Router)
	lambda.Start(func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		return adapter.ProxyWithContextV2(ctx, req)
	})
}
