package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/alisha-attire/storefront/internal/cart"
	"github.com/alisha-attire/storefront/internal/catalog"
	"github.com/alisha-attire/storefront/internal/checkout"
	"github.com/alisha-attire/storefront/internal/models"
	"github.com/alisha-attire/storefront/internal/session"
)

type testEnv struct {
	T    *testing.T
	E    *echo.Echo
	Repo *catalog.Repo
	Sess *session.Session
	C    *CartHandler
	CO   *CheckoutHandler
	P    *ProductHandler
	S    *SearchHandler
}

func newTestEnv(t *testing.T) *testEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}))

	products := []models.Product{
		{ID: "saree-silk", Name: "Crimson Katan Silk Saree", Price: decimal.NewFromInt(1200), Category: "Silk"},
		{ID: "saree-jamdani", Name: "Ivory Dhakai Jamdani", Price: decimal.NewFromInt(5400), Category: "Jamdani"},
		{ID: "saree-cotton", Name: "Indigo Tant Cotton Saree", Price: decimal.NewFromInt(1850), Category: "Cotton"},
	}
	require.NoError(t, db.Create(&products).Error)

	repo := catalog.NewRepo(db)
	store := cart.NewStore()
	sess := &session.Session{
		ID:       uuid.New(),
		Cart:     store,
		Checkout: checkout.NewFlow(store),
	}

	return &testEnv{
		T:    t,
		E:    echo.New(),
		Repo: repo,
		Sess: sess,
		C:    &CartHandler{Repo: repo},
		CO:   &CheckoutHandler{},
		P:    &ProductHandler{Repo: repo},
		S:    NewSearchHandler(nil, "products", repo),
	}
}

func (env *testEnv) doJSONRequest(method, path string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	c.Set(session.ContextKey, env.Sess)
	return rec, c
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func validShippingForm() map[string]string {
	return map[string]string{
		"first_name": "Ayesha",
		"last_name":  "Rahman",
		"email":      "ayesha@example.com",
		"phone":      "01700000000",
		"address":    "12 Lake Road",
		"city":       "Dhaka",
		"district":   "Dhaka",
	}
}

func addToCart(t *testing.T, env *testEnv, productID string, quantity int) {
	t.Helper()
	load := map[string]any{"product_id": productID, "quantity": quantity}
	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/cart", load)
	require.NoError(t, env.C.AddToCart(c))
	require.Equal(t, http.StatusOK, rec.Code)
}
