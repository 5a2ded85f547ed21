package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/luggio/console/internal/middleware"
	"github.com/luggio/console/internal/pkg"
)

// RouteDeps holds all dependencies needed to register routes.
type RouteDeps struct {
	PublicModules    []Module // mounted without authentication (login)
	ProtectedModules []Module // mounted behind the bearer token check
	Verifier         middleware.TokenVerifier
	DB               *gorm.DB
	UploadDir        string
}

// RegisterRoutes registers all application routes on the given gin.Engine.
// Everything under /api/v1 except the public modules requires a valid token.
func RegisterRoutes(r *gin.Engine, deps *RouteDeps) error {
	if r == nil {
		return errors.New("router is nil")
	}
	if deps == nil {
		return errors.New("route dependencies are nil")
	}
	if len(deps.ProtectedModules) == 0 {
		return errors.New("at least one protected module is required")
	}
	if deps.Verifier == nil {
		return errors.New("token verifier is required")
	}

	r.GET("/health", healthHandler(deps.DB))

	// Uploaded images are served back at the path the upload endpoint returned.
	if deps.UploadDir != "" {
		r.Static("/uploads", deps.UploadDir)
	}

	public := r.Group("/api/v1")
	for i, m := range deps.PublicModules {
		if m == nil {
			return fmt.Errorf("public module at index %d is nil", i)
		}
		m.RegisterRoutes(public)
	}

	api := r.Group("/api/v1")
	api.Use(middleware.Auth(deps.Verifier))
	for i, m := range deps.ProtectedModules {
		if m == nil {
			return fmt.Errorf("protected module at index %d is nil", i)
		}
		m.RegisterRoutes(api)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, pkg.Response{Code: http.StatusNotFound, Message: "not found"})
	})

	return nil
}

// healthHandler returns a handler that pings the database and reports status.
func healthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbStatus := "ok"
		status := "ok"
		code := http.StatusOK

		check := func() error {
			if db == nil {
				return errors.New("no database")
			}
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
			defer cancel()
			return sqlDB.PingContext(ctx)
		}

		if err := check(); err != nil {
			dbStatus = "error"
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		c.JSON(code, gin.H{
			"status": status,
			"components": gin.H{
				"database": dbStatus,
			},
		})
	}
}
