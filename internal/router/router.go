package router

import (
	"net/http"

	"robomart/internal/handler"
	"robomart/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
// The robot API key guards only the delivery-plan route; catalogue and
// order listings are fronted by the session layer, which lives outside this
// service.
func New(
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	robotHandler *handler.RobotHandler,
	robotAPIKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Listing endpoints
	mux.HandleFunc("/api/v1/product", productHandler.Search)
	mux.HandleFunc("/api/v1/orders", orderHandler.Search)

	// Legacy catalogue endpoints
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products" && r.URL.Path != "/api/products/" {
			productHandler.GetByID(w, r)
			return
		}
		productHandler.List(w, r)
	}
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	// Robot delivery planning, behind the robot API key
	robotAuth := middleware.RobotAPIKey(robotAPIKey, logger)
	mux.Handle("/api/robot/delivery-plan", robotAuth(http.HandlerFunc(robotHandler.DeliveryPlan)))

	// Apply middleware in order: Recovery -> Logging -> CORS
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
