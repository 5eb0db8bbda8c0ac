package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/storefront/internal/shop/domain"
	"github.com/tair/storefront/internal/shop/usecase/command"
	"github.com/tair/storefront/internal/shop/usecase/query"
	"github.com/tair/storefront/pkg/logger"
)

// ShopHandler handles HTTP requests for the cart and wishlist using CQRS pattern
type ShopHandler struct {
	// Command handlers
	addToCartHandler          *command.AddToCartHandler
	removeFromCartHandler     *command.RemoveFromCartHandler
	updateQuantityHandler     *command.UpdateQuantityHandler
	clearCartHandler          *command.ClearCartHandler
	toggleWishlistHandler     *command.ToggleWishlistHandler
	removeFromWishlistHandler *command.RemoveFromWishlistHandler
	clearWishlistHandler      *command.ClearWishlistHandler

	// Query handlers
	getCartHandler       *query.GetCartHandler
	getWishlistHandler   *query.GetWishlistHandler
	productStatusHandler *query.ProductStatusHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	cartMutations  *prometheus.CounterVec
}

// NewShopHandlerWithDI creates a new shop handler using dependency
// injection; Wire uses this constructor.
func NewShopHandlerWithDI(
	addToCartHandler *command.AddToCartHandler,
	removeFromCartHandler *command.RemoveFromCartHandler,
	updateQuantityHandler *command.UpdateQuantityHandler,
	clearCartHandler *command.ClearCartHandler,
	toggleWishlistHandler *command.ToggleWishlistHandler,
	removeFromWishlistHandler *command.RemoveFromWishlistHandler,
	clearWishlistHandler *command.ClearWishlistHandler,
	getCartHandler *query.GetCartHandler,
	getWishlistHandler *query.GetWishlistHandler,
	productStatusHandler *query.ProductStatusHandler,
) *ShopHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shop_requests_total",
			Help: "Total number of requests to the shop endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shop_request_duration_seconds",
			Help:    "Duration of shop requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	cartMutations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shop_mutations_total",
			Help: "Total number of cart and wishlist mutations by event type",
		},
		[]string{"event_type"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(cartMutations)

	return &ShopHandler{
		addToCartHandler:          addToCartHandler,
		removeFromCartHandler:     removeFromCartHandler,
		updateQuantityHandler:     updateQuantityHandler,
		clearCartHandler:          clearCartHandler,
		toggleWishlistHandler:     toggleWishlistHandler,
		removeFromWishlistHandler: removeFromWishlistHandler,
		clearWishlistHandler:      clearWishlistHandler,
		getCartHandler:            getCartHandler,
		getWishlistHandler:        getWishlistHandler,
		productStatusHandler:      productStatusHandler,
		requestCounter:            requestCounter,
		requestLatency:            requestLatency,
		cartMutations:             cartMutations,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Notification mirrors a shop event for the client to surface as a toast.
type Notification struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type cartItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
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
func (h *ShopHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}

func (h *ShopHandler) RegisterRoutes(router *mux.Router) {
	sub := router.PathPrefix("/api").Subrouter()
	sub.Use(SessionMiddleware)

	sub.HandleFunc("/cart", h.metricsMiddleware("/api/cart", h.GetCart)).Methods("GET")
	sub.HandleFunc("/cart/items", h.metricsMiddleware("/api/cart/items", h.AddToCart)).Methods("POST")
	sub.HandleFunc("/cart/items/{id}", h.metricsMiddleware("/api/cart/items/{id}", h.UpdateQuantity)).Methods("PUT")
	sub.HandleFunc("/cart/items/{id}", h.metricsMiddleware("/api/cart/items/{id}", h.RemoveFromCart)).Methods("DELETE")
	sub.HandleFunc("/cart", h.metricsMiddleware("/api/cart", h.ClearCart)).Methods("DELETE")

	sub.HandleFunc("/wishlist", h.metricsMiddleware("/api/wishlist", h.GetWishlist)).Methods("GET")
	sub.HandleFunc("/wishlist/toggle", h.metricsMiddleware("/api/wishlist/toggle", h.ToggleWishlist)).Methods("POST")
	sub.HandleFunc("/wishlist/items/{id}", h.metricsMiddleware("/api/wishlist/items/{id}", h.RemoveFromWishlist)).Methods("DELETE")
	sub.HandleFunc("/wishlist", h.metricsMiddleware("/api/wishlist", h.ClearWishlist)).Methods("DELETE")

	sub.HandleFunc("/products/{id}/status", h.metricsMiddleware("/api/products/{id}/status", h.ProductStatus)).Methods("GET")
}

// GetCart handles GET /api/cart
func (h *ShopHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.getCartHandler.Handle(r.Context(), query.GetCartQuery{
		SessionID: SessionID(r.Context()),
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to get cart")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to get cart",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: view})
}

// AddToCart handles POST /api/cart/items
func (h *ShopHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	event, err := h.addToCartHandler.Handle(r.Context(), command.AddToCartCommand{
		SessionID: SessionID(r.Context()),
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.respondWithEvent(w, http.StatusOK, event)
}

// UpdateQuantity handles PUT /api/cart/items/{id}. A quantity of zero or
// below removes the line.
func (h *ShopHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID, ok := productIDFromPath(w, r)
	if !ok {
		return
	}

	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	event, err := h.updateQuantityHandler.Handle(r.Context(), command.UpdateQuantityCommand{
		SessionID: SessionID(r.Context()),
		ProductID: productID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to update quantity")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to update quantity",
		})
		return
	}

	h.respondWithEvent(w, http.StatusOK, event)
}

// RemoveFromCart handles DELETE /api/cart/items/{id}
func (h *ShopHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	productID, ok := productIDFromPath(w, r)
	if !ok {
		return
	}

	event, err := h.removeFromCartHandler.Handle(r.Context(), command.RemoveFromCartCommand{
		SessionID: SessionID(r.Context()),
		ProductID: productID,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to remove from cart")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to remove from cart",
		})
		return
	}

	h.respondWithEvent(w, http.StatusOK, event)
}

// ClearCart handles DELETE /api/cart
func (h *ShopHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	event, err := h.clearCartHandler.Handle(r.Context(), command.ClearCartCommand{
		SessionID: SessionID(r.Context()),
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to clear cart")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to clear cart",
		})
		return
	}

	h.respondWithEvent(w, http.StatusOK, event)
}

// GetWishlist handles GET /api/wishlist
func (h *ShopHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	view, err := h.getWishlistHandler.Handle(r.Context(), query.GetWishlistQuery{
		SessionID: SessionID(r.Context()),
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to get wishlist")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to get wishlist",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: view})
}

// ToggleWishlist handles POST /api/wishlist/toggle. The same call adds an
// absent product and removes a present one.
func (h *ShopHandler) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	event, err := h.toggleWishlistHandler.Handle(r.Context(), command.ToggleWishlistCommand{
		SessionID: SessionID(r.Context()),
		ProductID: req.ProductID,
	})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.respondWithEvent(w, http.StatusOK, event)
}

// RemoveFromWishlist handles DELETE /api/wishlist/items/{id}
func (h *ShopHandler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	productID, ok := productIDFromPath(w, r)
	if !ok {
		return
	}

	event, err := h.removeFromWishlistHandler.Handle(r.Context(), command.RemoveFromWishlistCommand{
		SessionID: SessionID(r.Context()),
		ProductID: productID,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to remove from wishlist")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to remove from wishlist",
		})
		return
	}

	h.respondWithEvent(w, http.StatusOK, event)
}

// ClearWishlist handles DELETE /api/wishlist
func (h *ShopHandler) ClearWishlist(w http.ResponseWriter, r *http.Request) {
	event, err := h.clearWishlistHandler.Handle(r.Context(), command.ClearWishlistCommand{
		SessionID: SessionID(r.Context()),
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to clear wishlist")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to clear wishlist",
		})
		return
	}

	h.respondWithEvent(w, http.StatusOK, event)
}

// ProductStatus handles GET /api/products/{id}/status
func (h *ShopHandler) ProductStatus(w http.ResponseWriter, r *http.Request) {
	productID, ok := productIDFromPath(w, r)
	if !ok {
		return
	}

	status, err := h.productStatusHandler.Handle(r.Context(), query.ProductStatusQuery{
		SessionID: SessionID(r.Context()),
		ProductID: productID,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to get product status")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to get product status",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: status})
}

// respondWithEvent writes the mutation response. A nil event means the
// mutation succeeded silently, so no notification is attached.
func (h *ShopHandler) respondWithEvent(w http.ResponseWriter, status int, event *domain.Event) {
	resp := Response{Success: true}
	if event != nil {
		h.cartMutations.WithLabelValues(string(event.Type)).Inc()
		resp.Data = map[string]interface{}{
			"notification": Notification{
				Type:        string(event.Type),
				Title:       event.Title,
				Description: event.Description,
			},
		}
	}
	respondJSON(w, status, resp)
}

func productIDFromPath(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return 0, false
	}
	return uint(id), true
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
