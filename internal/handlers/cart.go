package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/alisha-attire/storefront/internal/catalog"
	"github.com/alisha-attire/storefront/internal/mykafka"
)

type CartHandler struct {
	Repo     *catalog.Repo
	Producer *mykafka.Producer
}

func (h *CartHandler) publish(c echo.Context, sessionID string, event map[string]any) {
	publish(c, h.Producer, "cart_events", sessionID, event)
}

func (h *CartHandler) GetCart(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sess.Cart.Snapshot())
}

func (h *CartHandler) AddToCart(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	var req struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
		Size      string `json:"size"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	product, err := h.Repo.Get(c.Request().Context(), req.ProductID)
	if err != nil {
		return domainError(c, err)
	}

	sess.Cart.AddItem(*product, req.Quantity, req.Size)

	h.publish(c, sess.ID.String(), map[string]any{
		"type":       "cart_item_added",
		"session_id": sess.ID.String(),
		"product_id": product.ID,
		"quantity":   req.Quantity,
	})
	return c.JSON(http.StatusOK, sess.Cart.Snapshot())
}

func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	productID := c.Param("id")
	sess.Cart.UpdateQuantity(productID, req.Quantity)

	h.publish(c, sess.ID.String(), map[string]any{
		"type":       "cart_quantity_updated",
		"session_id": sess.ID.String(),
		"product_id": productID,
		"quantity":   req.Quantity,
	})
	return c.JSON(http.StatusOK, sess.Cart.Snapshot())
}

func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	productID := c.Param("id")
	sess.Cart.RemoveItem(productID)

	h.publish(c, sess.ID.String(), map[string]any{
		"type":       "cart_item_removed",
		"session_id": sess.ID.String(),
		"product_id": productID,
	})
	return c.JSON(http.StatusOK, sess.Cart.Snapshot())
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	sess.Cart.Clear()

	h.publish(c, sess.ID.String(), map[string]any{
		"type":       "cart_cleared",
		"session_id": sess.ID.String(),
	})
	return c.JSON(http.StatusOK, sess.Cart.Snapshot())
}

// SetOpen drives the sidebar visibility flag. A body without "open" toggles.
func (h *CartHandler) SetOpen(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	var req struct {
		Open *bool `json:"open"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	if req.Open == nil {
		sess.Cart.ToggleOpen()
	} else {
		sess.Cart.SetOpen(*req.Open)
	}
	return c.JSON(http.StatusOK, sess.Cart.Snapshot())
}
