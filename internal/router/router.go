package router

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"promocards/internal/config"
	"promocards/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	cardHandler *handler.CardHandler,
	polishHandler *handler.PolishHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Unset allow-list means unrestricted cross-origin access.
	origins := cfg.FrontendOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType},
	}))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	e.POST("/polish", polishHandler.Polish)

	e.GET("/cards", cardHandler.ListCards)
	e.POST("/cards", cardHandler.CreateCard)
	e.DELETE("/cards/:id", cardHandler.DeleteCard)
	e.DELETE("/cards/cleanup/expired", cardHandler.CleanupExpired)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
