package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	catalogHTTP "github.com/tair/storefront/internal/catalog/delivery/http"
	"github.com/tair/storefront/internal/catalog/repository"
	"github.com/tair/storefront/internal/notify"
	shopHTTP "github.com/tair/storefront/internal/shop/delivery/http"
	shopDomain "github.com/tair/storefront/internal/shop/domain"
	shopRepository "github.com/tair/storefront/internal/shop/repository"
	"github.com/tair/storefront/internal/shop/usecase/command"
	shopQuery "github.com/tair/storefront/internal/shop/usecase/query"
	"github.com/tair/storefront/kafka"
	"github.com/tair/storefront/pkg/kv"
	"github.com/tair/storefront/pkg/logger"
	"github.com/tair/storefront/pkg/tracing"
)

func main() {
	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "storefront-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting storefront service")

	// Initialize tracer
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Session store: Redis when reachable, in-memory otherwise. The shop
	// state is authoritative in memory either way, so a Redis outage only
	// costs persistence across restarts.
	store := newSessionKV()

	// Static catalog with traced lookups
	catalog := repository.NewStaticCatalogWithTracing(repository.NewSampleCatalog())

	logger.Logger.Info().
		Int("products", catalog.Count()).
		Msg("Catalog loaded")

	// Notifier: structured log always, Kafka when brokers are configured
	notifier := newNotifier()

	// Optional consumer group replaying shop events to the log
	consumerCtx, cancelConsumer := context.WithCancel(context.Background())
	defer cancelConsumer()
	startConsumer(consumerCtx)

	shopStore := shopRepository.NewSessionStore(store)

	catalogHandler := catalogHTTP.NewCatalogHandler(catalog)
	shopHandler := shopHTTP.NewShopHandlerWithDI(
		command.NewAddToCartHandler(shopStore, catalog, notifier),
		command.NewRemoveFromCartHandler(shopStore, notifier),
		command.NewUpdateQuantityHandler(shopStore, notifier),
		command.NewClearCartHandler(shopStore, notifier),
		command.NewToggleWishlistHandler(shopStore, catalog, notifier),
		command.NewRemoveFromWishlistHandler(shopStore, notifier),
		command.NewClearWishlistHandler(shopStore, notifier),
		shopQuery.NewGetCartHandler(shopStore, catalog),
		shopQuery.NewGetWishlistHandler(shopStore, catalog),
		shopQuery.NewProductStatusHandler(shopStore),
	)

	// Start HTTP server
	httpPort := getEnv("HTTP_PORT", "8080")
	go startHTTPServer(catalogHandler, shopHandler, httpPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
}

func startHTTPServer(catalogHandler *catalogHTTP.CatalogHandler, shopHandler *shopHTTP.ShopHandler, port string) {
	// Setup router
	router := mux.NewRouter()

	// Shop routes register first so /api/products/{id}/status wins over
	// the catalog's /api/products/{id} route.
	shopHandler.RegisterRoutes(router)
	catalogHandler.RegisterRoutes(router)
	catalogHandler.RegisterHealthCheck(router)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	// Trace every inbound request, with CORS on the outside
	traced := otelhttp.NewHandler(router, "storefront-http")

	logger.Logger.Info().
		Str("port", port).
		Msg("HTTP server starting")

	if err := http.ListenAndServe(":"+port, c.Handler(traced)); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

// newSessionKV connects to Redis, falling back to the in-memory store
// when the connection fails.
func newSessionKV() kv.Store {
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	store, err := kv.NewRedisStore(kv.RedisConfig{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       redisDB,
	})
	if err != nil {
		logger.Logger.Warn().
			Err(err).
			Msg("Redis unavailable, sessions will not survive restarts")
		return kv.NewMemoryStore()
	}
	return store
}

// newNotifier builds the event fan-out. Kafka publishing is optional and
// controlled by KAFKA_BROKERS.
func newNotifier() notify.Notifier {
	notifiers := notify.Multi{notify.NewLogNotifier()}

	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		publisher, err := kafka.NewPublisher(strings.Split(brokers, ","))
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to connect to Kafka, events stay local")
		} else {
			notifiers = append(notifiers, notify.NewKafkaNotifier(publisher))
		}
	}

	if len(notifiers) == 1 {
		return notifiers[0]
	}
	return notifiers
}

// startConsumer joins the shop-events consumer group when enabled. It
// logs every event it sees, which doubles as a liveness check for the
// publishing side.
func startConsumer(ctx context.Context) {
	brokers := getEnv("KAFKA_BROKERS", "")
	if brokers == "" || getEnv("KAFKA_CONSUMER_ENABLED", "false") != "true" {
		return
	}

	consumer, err := kafka.NewConsumer(
		strings.Split(brokers, ","),
		getEnv("KAFKA_CONSUMER_GROUP", "storefront-events"),
		[]string{kafka.TopicShopEvents},
	)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create Kafka consumer")
		return
	}

	logEvent := func(ctx context.Context, event kafka.ShopEvent) error {
		logger.Info(ctx).
			Str("event_id", event.EventID).
			Str("event_type", event.EventType).
			Str("session_id", event.SessionID).
			Uint("product_id", event.ProductID).
			Msg(event.Description)
		return nil
	}

	for _, eventType := range []shopDomain.EventType{
		shopDomain.EventCartItemAdded,
		shopDomain.EventCartItemRemoved,
		shopDomain.EventCartCleared,
		shopDomain.EventWishlistItemAdded,
		shopDomain.EventWishlistItemRemoved,
		shopDomain.EventWishlistCleared,
	} {
		consumer.RegisterHandler(string(eventType), logEvent)
	}

	if err := consumer.Start(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to start Kafka consumer")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
