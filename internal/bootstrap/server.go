package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/airlink/api"
	"github.com/Domenick1991/airlink/config"
	"github.com/Domenick1991/airlink/internal/ratelimit"
	"github.com/Domenick1991/airlink/internal/service/auth"
	"github.com/Domenick1991/airlink/internal/service/catalog"
	"github.com/Domenick1991/airlink/internal/service/flights"
	"github.com/Domenick1991/airlink/internal/service/orders"
	"github.com/Domenick1991/airlink/internal/service/tickets"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Services struct {
	Auth    auth.AuthUseCase
	Catalog catalog.CatalogUseCase
	Flights flights.FlightUseCase
	Orders  orders.OrderUseCase
	Tickets tickets.TicketUseCase
}

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, svcs Services) error {
	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: newRouter(cfg, svcs),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newRouter(cfg *config.Config, svcs Services) *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	limiter := ratelimit.NewClientLimiter(ratelimit.Config{
		RequestsPerSecond: cfg.API.RequestsPerSecond,
		BurstSize:         cfg.API.Burst,
	})

	v1 := router.Group("/api/v1")
	v1.Use(api.RateLimit(limiter))

	api.NewAuthHandler(svcs.Auth).Register(v1.Group("/auth"))

	authed := v1.Group("")
	authed.Use(api.Authenticate(cfg.Auth.Secret))
	staffOnly := api.StaffOnly()

	api.NewAirplaneTypeHandler(svcs.Catalog).Register(authed.Group("/airplane-types"), staffOnly)
	api.NewAirplaneHandler(svcs.Catalog).Register(authed.Group("/airplanes"), staffOnly)
	api.NewAirportHandler(svcs.Catalog).Register(authed.Group("/airports"), staffOnly)
	api.NewCrewHandler(svcs.Catalog).Register(authed.Group("/crews"), staffOnly)
	api.NewRouteHandler(svcs.Catalog).Register(authed.Group("/routes"), staffOnly)
	api.NewFlightHandler(svcs.Flights).Register(authed.Group("/flights"), staffOnly)
	api.NewOrderHandler(svcs.Orders).Register(authed.Group("/orders"))

	// The cross-order ticket view is administrative.
	ticketsGroup := authed.Group("/tickets")
	ticketsGroup.Use(staffOnly)
	api.NewTicketHandler(svcs.Tickets).Register(ticketsGroup)

	if cfg.HTTP.SwaggerDir != "" {
		router.StaticFS("/swagger", http.Dir(cfg.HTTP.SwaggerDir))
		router.GET("/docs", func(c *gin.Context) {
			renderSwaggerUI(c.Writer, "/swagger/airlink.swagger.json")
		})
	}

	return router
}

func renderSwaggerUI(w http.ResponseWriter, jsonURL string) {
	html := fmt.Sprintf(`<!DOCTYPE html>
    <html>
    <head>
        <title>API Docs</title>
        <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@latest/swagger-ui.css">
    </head>
    <body>
        <div id="swagger-ui"></div>
        <script src="https://unpkg.com/swagger-ui-dist@latest/swagger-ui-bundle.js"></script>
        <script>
            window.onload = function() {
                window.ui = SwaggerUIBundle({
                    url: "%s",
                    dom_id: '#swagger-ui'
                });
            };
        </script>
    </body>
    </html>`, jsonURL)

	w.Header().Set("Content-Type", "text/html")
	w.Write([]byte(html))
}
