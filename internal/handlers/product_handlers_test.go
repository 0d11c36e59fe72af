package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alisha-attire/storefront/internal/models"
)

func TestGetProduct(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/products/saree-silk", nil)
	c.SetParamNames("id")
	c.SetParamValues("saree-silk")
	require.NoError(t, env.P.GetProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var p models.Product
	decodeJSON(t, rec, &p)
	require.Equal(t, "Crimson Katan Silk Saree", p.Name)
}

func TestGetProductNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/products/missing", nil)
	c.SetParamNames("id")
	c.SetParamValues("missing")
	require.NoError(t, env.P.GetProduct(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetProductsPagination(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/products?page=1&size=2", nil)
	c.QueryParams().Set("page", "1")
	c.QueryParams().Set("size", "2")
	require.NoError(t, env.P.GetProducts(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []models.Product `json:"data"`
		Meta struct {
			Page       int   `json:"page"`
			Size       int   `json:"size"`
			Total      int64 `json:"total"`
			TotalPages int64 `json:"total_pages"`
			HasNext    bool  `json:"has_next"`
			HasPrev    bool  `json:"has_prev"`
		} `json:"meta"`
	}
	decodeJSON(t, rec, &resp)
	require.Len(t, resp.Data, 2)
	require.Equal(t, int64(3), resp.Meta.Total)
	require.Equal(t, int64(2), resp.Meta.TotalPages)
	require.True(t, resp.Meta.HasNext)
	require.False(t, resp.Meta.HasPrev)
}

func TestSearchFallbackFiltersNameAndCategory(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/search?q=jamdani", nil)
	c.QueryParams().Set("q", "jamdani")
	require.NoError(t, env.S.Handler(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Total    int64            `json:"total"`
		Products []models.Product `json:"products"`
	}
	decodeJSON(t, rec, &resp)
	require.Equal(t, int64(1), resp.Total)
	require.Equal(t, "saree-jamdani", resp.Products[0].ID)
}

func TestSearchRequiresQuery(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodGet, "/api/v1/search", nil)
	err := env.S.Handler(c)
	require.Error(t, err)
}
