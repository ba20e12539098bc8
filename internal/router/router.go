package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"eventhub/internal/config"
	"eventhub/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	eventHandler *handler.EventHandler,
	registrationHandler *handler.RegistrationHandler,
	ratingHandler *handler.RatingHandler,
	reminderHandler *handler.ReminderHandler,
	categoryHandler *handler.CategoryHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
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

	// Anonymous browsing and guest registration; an optional bearer token
	// on these routes only personalizes the response.
	api.GET("/events", eventHandler.List)
	api.GET("/events/:id", eventHandler.Get)
	api.POST("/events/:id/registrations", registrationHandler.Register)
	api.GET("/categories", categoryHandler.List)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	secured.GET("/me", userHandler.Me)
	secured.DELETE("/me", userHandler.DeleteMe)
	secured.GET("/dashboard", userHandler.Dashboard)

	secured.POST("/events", eventHandler.Create)
	secured.PUT("/events/:id", eventHandler.Update)
	secured.DELETE("/events/:id", eventHandler.Delete)

	secured.POST("/events/:id/ratings", ratingHandler.Rate)
	secured.POST("/events/:id/reminders", reminderHandler.Set)
	secured.GET("/reminders", reminderHandler.ListMine)

	secured.POST("/categories", categoryHandler.Create)
	secured.DELETE("/categories/:id", categoryHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
