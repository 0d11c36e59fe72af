package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/alisha-attire/storefront/internal/catalog"
	"github.com/alisha-attire/storefront/internal/checkout"
	"github.com/alisha-attire/storefront/internal/mykafka"
	"github.com/alisha-attire/storefront/internal/session"
)

type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func errorResponse(c echo.Context, code int, err error) error {
	return c.JSON(code, Response{
		Status:  "error",
		Message: err.Error(),
	})
}

// domainError maps domain rejections onto HTTP statuses. Invalid
// transitions leave the flow untouched, so they are client errors.
func domainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, checkout.ErrValidation):
		return errorResponse(c, http.StatusBadRequest, err)
	case errors.Is(err, checkout.ErrEmptyCart):
		return errorResponse(c, http.StatusBadRequest, err)
	case errors.Is(err, checkout.ErrInvalidStep):
		return errorResponse(c, http.StatusConflict, err)
	case errors.Is(err, checkout.ErrOrderPlaced):
		return errorResponse(c, http.StatusConflict, err)
	case errors.Is(err, catalog.ErrNotFound):
		return errorResponse(c, http.StatusNotFound, err)
	default:
		return errorResponse(c, http.StatusInternalServerError, err)
	}
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

// currentSession pulls the guest session installed by the session
// middleware; routes using it are always registered behind that middleware.
func currentSession(c echo.Context) (*session.Session, error) {
	s := session.FromContext(c)
	if s == nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "no session in context")
	}
	return s, nil
}

func publish(c echo.Context, p *mykafka.Producer, topic, key string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := p.PublishEvent(ctx, topic, key, event); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}
}
