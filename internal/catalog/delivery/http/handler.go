package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/catalog/usecase/query"
	"github.com/tair/storefront/pkg/logger"
)

// CatalogHandler handles HTTP requests for the catalog using CQRS pattern
type CatalogHandler struct {
	// Query handlers
	listHandler       *query.ListProductsHandler
	getHandler        *query.GetProductHandler
	searchHandler     *query.SearchProductsHandler
	categoryHandler   *query.CategoryProductsHandler
	collectionHandler *query.GetCollectionHandler
	categoriesHandler *query.ListCategoriesHandler

	catalog        domain.Catalog
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
	totalProducts  prometheus.Gauge
}

// NewCatalogHandler creates a new catalog handler (manual DI)
func NewCatalogHandler(catalog domain.Catalog) *CatalogHandler {
	return NewCatalogHandlerWithDI(
		query.NewListProductsHandler(catalog),
		query.NewGetProductHandler(catalog),
		query.NewSearchProductsHandler(catalog),
		query.NewCategoryProductsHandler(catalog),
		query.NewGetCollectionHandler(catalog),
		query.NewListCategoriesHandler(catalog),
		catalog,
	)
}

// NewCatalogHandlerWithDI creates a new catalog handler using dependency
// injection; Wire uses this constructor.
func NewCatalogHandlerWithDI(
	listHandler *query.ListProductsHandler,
	getHandler *query.GetProductHandler,
	searchHandler *query.SearchProductsHandler,
	categoryHandler *query.CategoryProductsHandler,
	collectionHandler *query.GetCollectionHandler,
	categoriesHandler *query.ListCategoriesHandler,
	catalog domain.Catalog,
) *CatalogHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_requests_total",
			Help: "Total number of requests to the catalog endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_request_duration_seconds",
			Help:    "Duration of catalog requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Summary metric for percentile calculation (p50, p90, p95, p99)
	requestSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "catalog_request_duration_summary",
			Help: "Summary of catalog request durations with percentiles",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.01,
				0.99: 0.001,
			},
			MaxAge: 10 * time.Minute,
		},
		[]string{"method", "endpoint"},
	)

	totalProducts := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_total_products",
			Help: "Number of products in the catalog",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(requestSummary)
	prometheus.MustRegister(totalProducts)

	totalProducts.Set(float64(catalog.Count()))

	return &CatalogHandler{
		listHandler:       listHandler,
		getHandler:        getHandler,
		searchHandler:     searchHandler,
		categoryHandler:   categoryHandler,
		collectionHandler: collectionHandler,
		categoriesHandler: categoriesHandler,
		catalog:           catalog,
		requestCounter:    requestCounter,
		requestLatency:    requestLatency,
		requestSummary:    requestSummary,
		totalProducts:     totalProducts,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *CatalogHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/products", h.metricsMiddleware("/api/products", h.ListProducts)).Methods("GET")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", h.GetProduct)).Methods("GET")
	router.HandleFunc("/api/search", h.metricsMiddleware("/api/search", h.SearchProducts)).Methods("GET")
	router.HandleFunc("/api/categories", h.metricsMiddleware("/api/categories", h.ListCategories)).Methods("GET")
	router.HandleFunc("/api/categories/{slug}/products", h.metricsMiddleware("/api/categories/{slug}/products", h.CategoryProducts)).Methods("GET")
	router.HandleFunc("/api/collections/{name}", h.metricsMiddleware("/api/collections/{name}", h.GetCollection)).Methods("GET")
}

// ListProducts handles GET /api/products. All filter criteria arrive as
// URL query parameters, so any filtered or searched listing can be
// deep-linked.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	q := query.ListProductsQuery{
		Search:     params.Get("search"),
		Categories: params["category"],
		MinPrice:   parseFloatParam(params.Get("min_price")),
		MaxPrice:   parseFloatParam(params.Get("max_price")),
		MinRating:  parseFloatParam(params.Get("min_rating")),
		OnSaleOnly: params.Get("on_sale") == "true",
		NewOnly:    params.Get("new") == "true",
		Sort:       query.SortOption(params.Get("sort")),
	}

	products, err := h.listHandler.Handle(q)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list products")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list products",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"products": products,
			"total":    len(products),
		},
	})
}

// GetProduct handles GET /api/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	product, err := h.getHandler.Handle(query.GetProductQuery{ID: uint(id)})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Product not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"product": product,
			"related": h.getHandler.Related(product),
		},
	})
}

// SearchProducts handles GET /api/search
func (h *CatalogHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	products, err := h.searchHandler.Handle(query.SearchProductsQuery{Query: q})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to search products")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to search products",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"query":    q,
			"products": products,
			"total":    len(products),
		},
	})
}

// ListCategories handles GET /api/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoriesHandler.Handle(query.ListCategoriesQuery{})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list categories")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list categories",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    categories,
	})
}

// CategoryProducts handles GET /api/categories/{slug}/products. An
// optional "sub" query parameter narrows to a subcategory.
func (h *CatalogHandler) CategoryProducts(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	q := query.CategoryProductsQuery{
		CategorySlug:    vars["slug"],
		SubcategorySlug: r.URL.Query().Get("sub"),
	}

	products, err := h.categoryHandler.Handle(q)
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Category not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"products": products,
			"total":    len(products),
		},
	})
}

// GetCollection handles GET /api/collections/{name}
func (h *CatalogHandler) GetCollection(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	products, err := h.collectionHandler.Handle(query.GetCollectionQuery{
		Collection: query.Collection(vars["name"]),
	})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Unknown collection",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"products": products,
			"total":    len(products),
		},
	})
}

// RegisterHealthCheck registers the health endpoint
func (h *CatalogHandler) RegisterHealthCheck(router *mux.Router) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Storefront service is healthy",
		})
	}).Methods("GET")
}

func parseFloatParam(value string) *float64 {
	if value == "" {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &f
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
