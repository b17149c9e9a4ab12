package api

import (
	"context"
	"net/http"
	"time"

	"areaprop/internal"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with all routes registered
func NewRouter(handler *PropagateHandler, ginMode string) *gin.Engine {
	if ginMode != "" {
		gin.SetMode(ginMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/v1")
	{
		v1.POST("/propagate", handler.Propagate)
		v1.GET("/propagate/figure.png", handler.Figure)
	}
	return router
}

// Serve runs the HTTP server until ctx is cancelled, then shuts down gracefully
func Serve(ctx context.Context, addr string, router http.Handler, logger *internal.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
