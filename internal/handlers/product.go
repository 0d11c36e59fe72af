package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/alisha-attire/storefront/internal/catalog"
	"github.com/alisha-attire/storefront/internal/util"
)

type ProductHandler struct {
	Repo *catalog.Repo
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id := c.Param("id")
	product, err := h.Repo.Get(c.Request().Context(), id)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) GetProducts(c echo.Context) error {
	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), util.DefaultPageSize)

	offset, limit := util.Calculate(page, size)

	total, items, err := h.Repo.List(c.Request().Context(), offset, limit)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"data": items,
		"meta": map[string]any{
			"page":        page,
			"size":        limit,
			"total":       total,
			"total_pages": (total + int64(limit) - 1) / int64(limit),
			"has_prev":    page > 1,
			"has_next":    int64(offset+limit) < total,
		},
	})
}
