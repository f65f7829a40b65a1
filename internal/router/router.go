// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"health-reports/internal/cache"
	"health-reports/internal/database"
	"health-reports/internal/handler"
	"health-reports/internal/handler/auth"
	"health-reports/internal/handler/reports"
	"health-reports/internal/middleware"
)

// UploadsPrefix is where locally stored report images are served.
const UploadsPrefix = "/uploads"

type Deps struct {
	DB            database.DB
	Cache         cache.Cache
	Tokens        middleware.TokenVerifier
	Auth          auth.Service
	Reports       reports.Service
	MaxImageBytes int64
	// UploadDir is served under UploadsPrefix when non-empty.
	UploadDir string
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	api := e.Group("/api")

	// 健康檢查
	api.GET("/ping", handler.PingHandler(d.DB, d.Cache))

	// 註冊與登入
	apiAuth := api.Group("/auth")
	apiAuth.POST("/register", auth.RegisterHandler(d.Auth))
	apiAuth.POST("/login", auth.LoginHandler(d.Auth))

	// 需登入的路由
	requireAuth := middleware.RequireAuth(d.Tokens)
	apiAuth.GET("/me", auth.MeHandler(d.Auth), requireAuth)
	apiAuth.POST("/add-report", reports.AddReportHandler(d.Reports, d.MaxImageBytes), requireAuth)
	apiAuth.GET("/reports/:userId", reports.ListReportsHandler(d.Reports), requireAuth, middleware.RequireOwner("userId"))

	if d.UploadDir != "" {
		e.Static(UploadsPrefix, d.UploadDir)
	}
}
