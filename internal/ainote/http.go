// Пакет ainote предоставляет основные компоненты сервиса статей с редактором: HTTP API для работы со статьями, вложениями и embed-ресурсами.
//
// Основные возможности:
//   - CRUD статей с markdown-проекцией и структурированным деревом документа.
//   - Загрузка вложений в файловое хранилище.
//   - Резолвинг embed-ссылок для браузерного редактора.
//   - Метрики Prometheus.
package ainote

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"github.com/aisa-it/ainote/ainote.go/internal/ainote/config"
	"github.com/aisa-it/ainote/ainote.go/internal/ainote/dao"
	filestorage "github.com/aisa-it/ainote/ainote.go/internal/ainote/file-storage"
)

//go:generate go run ../../cmd/docsgen/main.go -src apierrors/apierrors.go -out ../../docs/api_errors.md

type Services struct {
	db      *gorm.DB
	storage filestorage.FileStorage
}

var cfg *config.Config
var appVersion string

// NewStorage выбирает реализацию хранилища вложений по конфигурации:
// Minio при заданном AWS_S3_ENDPOINT_URL, иначе локальная директория.
func NewStorage(c *config.Config) (filestorage.FileStorage, error) {
	if c.AWSEndpoint != "" {
		return filestorage.NewMinioStorage(c.AWSEndpoint, c.AWSRegion, c.AWSAccessKey, c.AWSSecretKey, false, c.AWSBucketName)
	}
	return filestorage.NewLocalStorage(c.LocalFilesPath)
}

// attachmentBodyLimit ограничивает тело запроса загрузки вложений,
// выведенных из-под общего лимита.
func attachmentBodyLimit(maxMB int) echo.MiddlewareFunc {
	return middleware.BodyLimit(fmt.Sprintf("%dM", maxMB))
}

// ServerHeader middleware adds a `Server` header to the response.
func ServerHeader(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set(echo.HeaderServer, "AINote")
		return next(c)
	}
}

func Server(db *gorm.DB, c *config.Config, version string) {
	cfg = c
	appVersion = version

	e := echo.New()
	e.HideBanner = true
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
		}

		// Ignore 404
		if code == http.StatusNotFound {
			c.NoContent(http.StatusNotFound)
			return
		}
		slog.Error("Unhandled error in endpoint", "url", c.Request().URL, "err", err)
		EErrorMsgStatus(c, nil, code)
	}

	storage, err := NewStorage(cfg)
	if err != nil {
		slog.Error("Fail init file storage", "err", err)
		os.Exit(1)
	}

	dao.Config = cfg
	dao.FileStorage = storage

	s := &Services{
		db:      db,
		storage: storage,
	}

	// Global middlewares
	e.Use(ServerHeader)
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowCredentials: true,
	}))
	e.Use(middleware.BodyLimitWithConfig(middleware.BodyLimitConfig{
		Limit: "5M",
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/api/articles/:articleId/attachments"
		},
	}))
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level:     9,
		MinLength: 2048,
	}))
	e.Use(echoprometheus.NewMiddleware("ainote"))

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/api/version", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"version": appVersion})
	})

	api := e.Group("/api")
	s.AddArticleServices(api)
	s.AddEditorServices(api)

	if cfg.FrontFilesPath != "" {
		e.Static("/", cfg.FrontFilesPath)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		slog.Info("Shutting down gracefully, press Ctrl+C again to force")
		e.Shutdown(context.Background())
		os.Exit(0)
	}()

	if err := e.Start(":8080"); err != nil && err != http.ErrServerClosed {
		slog.Error("Server stopped", "err", err)
		os.Exit(1)
	}
}
