package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	catalogsvc "github.com/muerroui/gsm-ma-achat-simple/internal/service/catalog"
	customersvc "github.com/muerroui/gsm-ma-achat-simple/internal/service/customer"
	ordersvc "github.com/muerroui/gsm-ma-achat-simple/internal/service/order"
	"github.com/muerroui/gsm-ma-achat-simple/internal/service/session"
)

// Deps are the collaborators the API needs.
type Deps struct {
	Sessions  *session.Manager
	Customers *customersvc.Service
	Catalog   *catalogsvc.Service
	Orders    *ordersvc.Service
	// DB is nil when running on the memory backend; readiness then skips
	// the ping.
	DB *pgxpool.Pool
}

// Server wraps the HTTP server setup.
type Server struct {
	httpServer *http.Server
}

// New builds a Server with all storefront routes.
func New(addr string, deps Deps) *Server {
	router := buildRouter(deps)

	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func readyHandler(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			// Memory backend has nothing to wait for.
			c.JSON(http.StatusOK, gin.H{"status": "ready"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "db not reachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
