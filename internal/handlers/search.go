package handlers

import (
	"net/http"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/alisha-attire/storefront/internal/catalog"
	"github.com/alisha-attire/storefront/internal/service/search"
	"github.com/alisha-attire/storefront/internal/util"
)

type SearchHandler struct {
	ES    *elasticsearch.Client
	Index string
	Repo  *catalog.Repo
}

func NewSearchHandler(es *elasticsearch.Client, index string, repo *catalog.Repo) *SearchHandler {
	return &SearchHandler{
		ES:    es,
		Index: index,
		Repo:  repo,
	}
}

func (h *SearchHandler) Handler(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query error")
	}

	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	from, size := util.Calculate(page, size)

	ctx := c.Request().Context()

	if h.ES != nil {
		total, products, err := search.Search(ctx, h.ES, h.Index, q, from, size)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"total": total, "products": products})
	}

	all, err := h.Repo.All(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}
	total, products := search.Filter(all, q, from, size)
	return c.JSON(http.StatusOK, echo.Map{"total": total, "products": products})
}
