package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/logger"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/luggio/console/internal/config"
	"github.com/luggio/console/internal/domain"
	"github.com/luggio/console/internal/middleware"
	"github.com/luggio/console/internal/module/auth"
	"github.com/luggio/console/internal/module/hotel"
	"github.com/luggio/console/internal/module/notice"
	"github.com/luggio/console/internal/module/order"
	"github.com/luggio/console/internal/module/partner"
	"github.com/luggio/console/internal/module/qna"
	"github.com/luggio/console/internal/module/rider"
	"github.com/luggio/console/internal/module/settlement"
	"github.com/luggio/console/internal/module/upload"
	"github.com/luggio/console/internal/pkg"
)

// App holds the core application dependencies and the HTTP server.
type App struct {
	engine *gin.Engine
	db     *gorm.DB
	logger *logger.Logger
	cfg    *config.Config
}

type httpServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

var newHTTPServer = func(addr string, handler http.Handler) httpServer {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

var notifyContext = func(parent context.Context, signals ...os.Signal) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, signals...)
}

// New creates and wires a fully configured App from the given Config.
//
// It sets up logging, the database, every business module with its
// repository, service, and handler, the middleware chain, and the routes.
func New(cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	success := false

	log, err := config.SetupLogger(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}
	defer func() {
		if success {
			return
		}
		if err := log.Close(); err != nil {
			slog.Error("logger close error", slog.Any("error", err))
		}
	}()

	db, err := config.SetupDatabase(&cfg.Database, log.Logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}
	defer func() {
		if success {
			return
		}
		sqlDB, err := db.DB()
		if err != nil {
			return
		}
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", slog.Any("error", err))
		}
	}()

	// AutoMigrate in debug mode only. Production schemas are managed with
	// explicit migrations.
	if cfg.Server.Mode == gin.DebugMode {
		if err := db.AutoMigrate(
			&domain.Staff{},
			&domain.Hotel{},
			&domain.Partner{},
			&domain.Rider{},
			&domain.Order{},
			&domain.Notice{},
			&domain.QnA{},
			&domain.Settlement{},
		); err != nil {
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
		log.Info("auto migration completed")

		if err := seedStaff(db, log); err != nil {
			return nil, fmt.Errorf("seed staff: %w", err)
		}
	}

	// Manual dependency injection: repository → service → handler → module.
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.TokenExpiryDuration())
	authModule := auth.NewModule(auth.NewHandler(
		auth.NewService(tokens, auth.NewStaffRepository(db))))

	protected := []Module{
		hotel.NewModule(hotel.NewHandler(hotel.NewService(hotel.NewRepository(db)))),
		partner.NewModule(partner.NewHandler(partner.NewService(partner.NewRepository(db)))),
		rider.NewModule(rider.NewHandler(rider.NewService(rider.NewRepository(db)))),
		order.NewModule(order.NewHandler(order.NewService(order.NewRepository(db)))),
		notice.NewModule(notice.NewHandler(notice.NewService(notice.NewRepository(db)))),
		qna.NewModule(qna.NewHandler(qna.NewService(qna.NewRepository(db)))),
		settlement.NewModule(settlement.NewHandler(settlement.NewService(settlement.NewRepository(db)))),
		upload.NewModule(upload.NewHandler(cfg.Upload.Dir, cfg.Upload.MaxSizeMB)),
	}

	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()

	corsConfig := resolveCORSConfig(cfg.Server.Mode, cfg.Server.CORS.AllowOrigins)
	engine.Use(
		middleware.Recovery(log.Logger),
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			TrustUpstream: false,
		}),
		middleware.Logger(log.Logger),
		middleware.CORSWithConfig(corsConfig),
	)

	if err := RegisterRoutes(engine, &RouteDeps{
		PublicModules:    []Module{authModule},
		ProtectedModules: protected,
		Verifier:         tokens,
		DB:               db,
		UploadDir:        cfg.Upload.Dir,
	}); err != nil {
		return nil, fmt.Errorf("register routes: %w", err)
	}

	success = true
	return &App{
		engine: engine,
		db:     db,
		logger: log,
		cfg:    cfg,
	}, nil
}

// seedStaff creates a development login when the staff table is empty.
// Never runs outside debug mode.
func seedStaff(db *gorm.DB, log *logger.Logger) error {
	password := os.Getenv("APP__SEED_STAFF_PASSWORD")
	if password == "" {
		password = "luggio-dev"
	}

	var seeded bool
	err := pkg.WithTx(db, func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.Staff{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		seeded = true
		return tx.Create(&domain.Staff{
			Name:         "Dev Admin",
			Email:        "admin@luggio.local",
			PasswordHash: string(hash),
		}).Error
	})
	if err != nil {
		return err
	}

	if seeded {
		log.Warn("seeded development staff account",
			slog.String("email", "admin@luggio.local"))
	}
	return nil
}

func resolveCORSConfig(mode string, configuredAllowOrigins []string) middleware.CORSConfig {
	corsConfig := middleware.DefaultCORSConfig()

	if len(configuredAllowOrigins) > 0 {
		corsConfig.AllowOrigins = configuredAllowOrigins
		return corsConfig
	}

	// Release mode with no allowlist denies cross-origin requests.
	if mode == gin.ReleaseMode {
		corsConfig.AllowOrigins = []string{}
	}

	return corsConfig
}

// Run starts the HTTP server and blocks until a shutdown signal is received.
// It performs graceful shutdown with a 5-second timeout and closes the
// database connection.
func (a *App) Run() error {
	if a == nil {
		return errors.New("app is nil")
	}
	if a.cfg == nil {
		return errors.New("app config is nil")
	}
	if a.engine == nil {
		return errors.New("app engine is nil")
	}

	addr := fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port)
	srv := newHTTPServer(addr, a.engine)

	ctx, stop := notifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server started", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		runErr = fmt.Errorf("server error: %w", err)
	}

	if runErr == nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("server shutdown error", slog.Any("error", err))
		}
	}

	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				a.logger.Error("database close error", slog.Any("error", err))
			}
		}
	}

	a.logger.Info("server stopped")
	if err := a.logger.Close(); err != nil {
		slog.Error("logger close error", slog.Any("error", err))
	}

	return runErr
}
