package handlers

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/alisha-attire/storefront/internal/cart"
)

func TestGetCartEmpty(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/cart", nil)
	require.NoError(t, env.C.GetCart(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var snap cart.Snapshot
	decodeJSON(t, rec, &snap)
	require.Empty(t, snap.Items)
	require.Equal(t, 0, snap.TotalItems)
	require.False(t, snap.Open)
}

func TestAddToCartMergesLines(t *testing.T) {
	env := newTestEnv(t)

	addToCart(t, env, "saree-silk", 1)
	addToCart(t, env, "saree-silk", 1)

	snap := env.Sess.Cart.Snapshot()
	require.Len(t, snap.Items, 1)
	require.Equal(t, 2, snap.Items[0].Quantity)
	require.True(t, snap.TotalPrice.Equal(decimal.NewFromInt(2400)))
}

func TestAddToCartUnknownProduct(t *testing.T) {
	env := newTestEnv(t)

	load := map[string]any{"product_id": "missing", "quantity": 1}
	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/cart", load)
	require.NoError(t, env.C.AddToCart(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Empty(t, env.Sess.Cart.Items())
}

func TestAddToCartClampsQuantity(t *testing.T) {
	env := newTestEnv(t)

	addToCart(t, env, "saree-cotton", -5)

	items := env.Sess.Cart.Items()
	require.Len(t, items, 1)
	require.Equal(t, 1, items[0].Quantity)
}

func TestUpdateQuantityToZeroRemoves(t *testing.T) {
	env := newTestEnv(t)
	addToCart(t, env, "saree-silk", 2)

	rec, c := env.doJSONRequest(http.MethodPatch, "/api/v1/cart/saree-silk", map[string]int{"quantity": 0})
	c.SetParamNames("id")
	c.SetParamValues("saree-silk")
	require.NoError(t, env.C.UpdateQuantity(c))
	require.Equal(t, http.StatusOK, rec.Code)

	require.Empty(t, env.Sess.Cart.Items())
}

func TestRemoveFromCartIdempotent(t *testing.T) {
	env := newTestEnv(t)
	addToCart(t, env, "saree-silk", 1)

	for i := 0; i < 2; i++ {
		rec, c := env.doJSONRequest(http.MethodDelete, "/api/v1/cart/saree-silk", nil)
		c.SetParamNames("id")
		c.SetParamValues("saree-silk")
		require.NoError(t, env.C.RemoveFromCart(c))
		require.Equal(t, http.StatusOK, rec.Code)
	}
	require.Empty(t, env.Sess.Cart.Items())
}

func TestClearCartKeepsOpenFlag(t *testing.T) {
	env := newTestEnv(t)
	addToCart(t, env, "saree-silk", 3)
	env.Sess.Cart.SetOpen(true)

	rec, c := env.doJSONRequest(http.MethodDelete, "/api/v1/cart", nil)
	require.NoError(t, env.C.ClearCart(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var snap cart.Snapshot
	decodeJSON(t, rec, &snap)
	require.Empty(t, snap.Items)
	require.True(t, snap.Open)
}

func TestSetOpenExplicitAndToggle(t *testing.T) {
	env := newTestEnv(t)

	open := true
	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/cart/open", map[string]any{"open": open})
	require.NoError(t, env.C.SetOpen(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Sess.Cart.IsOpen())

	// empty body toggles
	rec, c = env.doJSONRequest(http.MethodPost, "/api/v1/cart/open", map[string]any{})
	require.NoError(t, env.C.SetOpen(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.False(t, env.Sess.Cart.IsOpen())
}
