package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"lionreport/internal/config"
	"lionreport/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	logHandler *handler.LogHandler,
	entryHandler *handler.EntryHandler,
	reportHandler *handler.ReportHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWT.Secret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	// Daily log routes
	secured.POST("/logs", logHandler.Submit)
	secured.GET("/logs", logHandler.List)
	secured.PUT("/logs/:id", logHandler.Update)
	secured.GET("/logs/export", logHandler.Export)

	// L.I.O.N. entry routes
	secured.POST("/entries", entryHandler.Create)
	secured.GET("/entries", entryHandler.List)
	secured.GET("/entries/:id", entryHandler.Get)
	secured.PUT("/entries/:id", entryHandler.Update)
	secured.DELETE("/entries/:id", entryHandler.Delete)

	// Report routes
	secured.GET("/reports", reportHandler.History)
	secured.GET("/reports/preview", reportHandler.Preview)
	secured.POST("/reports/send", reportHandler.Send)
	secured.POST("/reports/send-all", reportHandler.SendAll)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
