// Package rest exposes the recipe search API over HTTP using gin.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/recipesearch/recipesearch/internal/logging"
	"github.com/recipesearch/recipesearch/internal/server/config"
)

const shutdownTimeout = 5 * time.Second

type HTTPServer struct {
	address        string
	svc            Services
	logger         logging.Logger
	metrics        *Metrics
	engine         *gin.Engine
	cookieName     string
	cookieSecure   bool
	allowedOrigins []string
}

// NewHTTPServer builds the API server. Its collectors are registered with
// reg and served on /metrics.
func NewHTTPServer(cfg *config.Config, l logging.Logger, svc Services, reg *prometheus.Registry) *HTTPServer {
	s := &HTTPServer{
		address:        cfg.EndpointAddrHTTP,
		svc:            svc,
		logger:         l.With("module", "http_server"),
		metrics:        NewMetrics(reg),
		cookieName:     cfg.CookieName,
		cookieSecure:   cfg.CookieSecure,
		allowedOrigins: cfg.Origins(),
	}
	s.engine = s.routes(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	return s
}

func (s *HTTPServer) routes(metricsHandler http.Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(s.recovery(), requestIDMiddleware(), s.accessLog(), s.metrics.middleware(), s.cors())

	r.GET("/metrics", gin.WrapH(metricsHandler))

	api := r.Group("/api")
	api.GET("/health", s.wrap(s.health))
	api.POST("/register", s.wrap(s.register))
	api.POST("/login", s.wrap(s.login))
	api.POST("/logout", s.wrap(s.logout))

	read := api.Group("", s.requireSession(false))
	read.GET("/me", s.wrap(s.me))
	read.POST("/search", s.wrap(s.search))
	read.POST("/get_recipe", s.wrap(s.getRecipe))

	write := api.Group("", s.requireSession(true))
	write.POST("/add_favourite", s.wrap(s.addFavourite))
	write.POST("/remove_favourite", s.wrap(s.removeFavourite))
	write.POST("/share_recipe", s.wrap(s.shareRecipe))

	return r
}

// Handler returns the root HTTP handler.
func (s *HTTPServer) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
