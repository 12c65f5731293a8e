package main

import (
	"context"
	"log"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/cinq-ua/monopay-bridge/internal/bridge"
	"github.com/cinq-ua/monopay-bridge/internal/config"
	"github.com/cinq-ua/monopay-bridge/internal/httpx"
	"github.com/cinq-ua/monopay-bridge/internal/mono"
	"github.com/cinq-ua/monopay-bridge/internal/pkg/cache"
	"github.com/cinq-ua/monopay-bridge/internal/pkg/telemetry"
	"github.com/cinq-ua/monopay-bridge/internal/reference"
	"github.com/cinq-ua/monopay-bridge/internal/shopify"
)

const serviceName = "monopay-bridge"

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration: %v", err)
	}

	telemetry.InitLogger(serviceName)
	shutdown, err := telemetry.SetupTracer(ctx, serviceName)
	if err != nil {
		log.Fatalf("telemetry: %v", err)
	}
	defer shutdown(context.Background())

	store := shopify.NewClient(cfg.ShopifyStoreDomain, cfg.ShopifyAccessToken, cfg.ShopifyAPIVersion, cfg.UpstreamTimeout)
	gateway := mono.NewClient(cfg.MonoAPIBaseURL, cfg.MonoToken, cfg.UpstreamTimeout)
	codec := reference.NewCodec()

	// The guard is optional: with no redis configured the bridge runs fully
	// stateless and duplicate webhook deliveries post duplicate transactions.
	var seen cache.SeenStore
	if cfg.RedisAddr != "" {
		seen = cache.NewRedisSeenStore(cfg.RedisAddr, serviceName)
	}

	initiator := bridge.NewInitiator(store, gateway, codec, cfg)
	reconciler := bridge.NewReconciler(store, codec, seen, cfg)

	handler := httpx.NewHandler(initiator, reconciler, cfg.ShopifyStoreDomain)
	router := otelhttp.NewHandler(httpx.NewRouter(handler), "http.server")

	log.Printf("%s listening on %s", serviceName, cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, router); err != nil {
		log.Fatalf("http server failed: %v", err)
	}
}
