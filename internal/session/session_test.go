package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/alisha-attire/storefront/internal/models"
	"github.com/shopspring/decimal"
)

func newTestManager(ttl time.Duration) *Manager {
	return NewManager([]byte("test-secret"), ttl)
}

func doRequest(t *testing.T, m *Manager, cookies ...*http.Cookie) (*httptest.ResponseRecorder, *Session) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var got *Session
	handler := m.Middleware()(func(c echo.Context) error {
		got = FromContext(c)
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec, got
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == CookieName {
			return ck
		}
	}
	t.Fatalf("no %s cookie issued", CookieName)
	return nil
}

func TestMiddlewareIssuesCookie(t *testing.T) {
	m := newTestManager(time.Hour)

	rec, sess := doRequest(t, m)
	require.NotNil(t, sess)
	require.NotNil(t, sess.Cart)
	require.NotNil(t, sess.Checkout)
	require.Empty(t, sess.Cart.Items())

	ck := sessionCookie(t, rec)
	require.NotEmpty(t, ck.Value)
	require.True(t, ck.HttpOnly)
}

func TestSameTokenSameCart(t *testing.T) {
	m := newTestManager(time.Hour)

	rec, first := doRequest(t, m)
	ck := sessionCookie(t, rec)

	first.Cart.AddItem(models.Product{ID: "p1", Price: decimal.NewFromInt(100)}, 2, "")

	_, second := doRequest(t, m, ck)
	require.Equal(t, first.ID, second.ID)
	require.Same(t, first.Cart, second.Cart)
	require.Equal(t, 2, second.Cart.TotalItems())
}

func TestGarbageTokenGetsFreshSession(t *testing.T) {
	m := newTestManager(time.Hour)

	rec, sess := doRequest(t, m, &http.Cookie{Name: CookieName, Value: "not-a-token"})
	require.NotNil(t, sess)
	require.Empty(t, sess.Cart.Items())

	// a replacement cookie is issued
	sessionCookie(t, rec)
}

func TestSweepExpiresIdleSessions(t *testing.T) {
	m := newTestManager(time.Minute)

	now := time.Now()
	m.now = func() time.Time { return now }

	_, sess := doRequest(t, m)
	sess.Cart.AddItem(models.Product{ID: "p1", Price: decimal.NewFromInt(100)}, 1, "")
	require.Equal(t, 1, m.Len())

	now = now.Add(2 * time.Minute)
	require.Equal(t, 1, m.Sweep())
	require.Equal(t, 0, m.Len())

	// a restarted session starts with an empty cart
	fresh := m.lookup(sess.ID)
	require.Empty(t, fresh.Cart.Items())
}
