package router

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/openbid/auctiond/internal/auth"
	apperrors "github.com/openbid/auctiond/internal/errors"
	"github.com/openbid/auctiond/internal/handler"
	"github.com/openbid/auctiond/internal/logger"
)

// maxBodySize caps request bodies; auction images may arrive embedded as
// data URIs.
const maxBodySize = "16M"

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	auctionHandler *handler.AuctionHandler,
	userHandler *handler.UserHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit(maxBodySize))

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = HTTPErrorHandler

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/auctions", auctionHandler.List)
	api.GET("/auctions/:id", auctionHandler.Get)

	// Secured routes (require a bearer token)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey: jwtService.Secret(),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}))

	secured.POST("/auctions", auctionHandler.Create)
	secured.POST("/auctions/:id/bid", auctionHandler.PlaceBid)
	secured.GET("/users/:id/auctions", userHandler.Auctions)
	secured.GET("/users/:id/bids", userHandler.Bids)
}

// HTTPErrorHandler renders every error as {"error": message}. Domain
// errors keep their status and message; anything unexpected becomes a
// generic 500 so internal detail never leaks.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "internal server error"

	switch t := err.(type) {
	case *apperrors.APIError:
		status = t.Status
		message = t.Message
	case *echo.HTTPError:
		status = t.Code
		message = fmt.Sprintf("%v", t.Message)
	default:
		logger.Error("unhandled error", map[string]any{
			"method": c.Request().Method,
			"path":   c.Request().URL.Path,
			"error":  err.Error(),
		})
	}

	if err := c.JSON(status, apperrors.ErrorResponse{Error: message}); err != nil {
		logger.Error("write error response", map[string]any{"error": err.Error()})
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
