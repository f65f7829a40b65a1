// @title        Health Reports API
// @version      1.0
// @description  使用者註冊登入與醫療報告數位化的後端 API
// @host         localhost:5000
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"health-reports/internal/cache"
	"health-reports/internal/config"
	"health-reports/internal/database"
	"health-reports/internal/events"
	"health-reports/internal/handler"
	"health-reports/internal/logging"
	"health-reports/internal/router"
	"health-reports/internal/service"
	"health-reports/internal/storage"
	"health-reports/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "health-reports/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

const (
	serviceName     = "health-reports"
	shutdownTimeout = 10 * time.Second
	// multipart framing and text fields on top of the image itself
	formOverheadBytes = 1 << 20
)

var (
	loadConfig      = config.Load
	newLogger       = logging.New
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	newImageStore   = buildImageStore
	newPublisher    = buildPublisher
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	newWorkerPool   = worker.NewPool
	exitFunc        = os.Exit
)

// buildImageStore returns the configured store and, for the local driver,
// the directory to serve statically.
func buildImageStore(ctx context.Context, st config.Storage) (storage.ImageStore, string, error) {
	switch st.Driver {
	case config.StorageS3:
		s, err := storage.NewS3Store(ctx, storage.S3Options{
			Bucket:    st.S3Bucket,
			Region:    st.S3Region,
			Endpoint:  st.S3Endpoint,
			AccessKey: st.S3AccessKey,
			SecretKey: st.S3SecretKey,
			PublicURL: st.S3PublicURL,
		})
		return s, "", err
	default:
		s, err := storage.NewLocalStore(st.UploadDir, router.UploadsPrefix)
		if err != nil {
			return nil, "", err
		}
		return s, s.Dir(), nil
	}
}

func buildPublisher(c config.AMQP) events.Publisher {
	if c.URL == "" {
		return events.NopPublisher{}
	}
	return events.NewAMQPPublisher(c.URL, c.Queue)
}

func newEcho(cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(strconv.FormatInt(cfg.Storage.MaxUploadBytes+formOverheadBytes, 10)))
	return e
}

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}

	log := newLogger(serviceName, cfg.LogLevel)
	slog.SetDefault(log)

	db, err := newPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	if cfg.MigrateOnStart {
		if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("Migration 執行失敗: %w", err)
		}
		log.Info("migrations applied")
	}

	rdb, err := newRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %w", err)
	}
	defer rdb.Close()

	images, uploadDir, err := newImageStore(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("影像儲存初始化失敗: %w", err)
	}

	tokens, err := service.NewTokenManager(cfg.JWTSecret)
	if err != nil {
		return err
	}

	wp := newWorkerPool(cfg.WorkerCount, log)
	defer wp.Stop()

	authSvc := service.NewAuthService(db, tokens)
	reportSvc := service.NewReportService(db, service.ReportOptions{
		Images:   images,
		Cache:    rdb,
		CacheTTL: cfg.ReportCacheTTL,
		Events:   newPublisher(cfg.AMQP),
		Pool:     wp,
		Logger:   log,
	})

	e := newEcho(cfg)
	router.Setup(e, router.Deps{
		DB:            db,
		Cache:         rdb,
		Tokens:        tokens,
		Auth:          authSvc,
		Reports:       reportSvc,
		MaxImageBytes: cfg.Storage.MaxUploadBytes,
		UploadDir:     uploadDir,
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	log.Info("listening", "addr", cfg.HTTPAddr, "storage", cfg.Storage.Driver)
	return serve(ctx, e, cfg.HTTPAddr, log)
}

// serve runs the server until it fails or ctx is cancelled, then shuts it down.
func serve(ctx context.Context, e *echo.Echo, addr string, log *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() { errCh <- startServer(e, addr) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	}
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n%s\n", os.Args[0], config.Usage())
	}
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("service exited", "error", err)
		stop()
		exitFunc(1)
	}
}
