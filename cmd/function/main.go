// The function binary serves the same API as cmd/server from an on-demand
// AWS Lambda behind a function URL or API Gateway. The router, coordinator,
// and stores are identical; only the transport adapter differs.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/tendant/simple-gallery/pkg/mediagallery/api"
	"github.com/tendant/simple-gallery/pkg/mediagallery/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "err", err)
		os.Exit(1)
	}

	// The service outlives a single invocation: Lambda reuses the process
	// across warm starts, so the pgx pool and S3 client are built once.
	svc, err := cfg.BuildService(context.Background())
	if err != nil {
		slog.Error("Failed to build service", "err", err)
		os.Exit(1)
	}

	adapter := httpadapter.NewV2(api.NewRouter(svc, cfg.BuildAuthorizer()))
	lambda.Start(adapter.ProxyWithContext)
}
