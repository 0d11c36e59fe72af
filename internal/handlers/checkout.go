package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/alisha-attire/storefront/internal/checkout"
	"github.com/alisha-attire/storefront/internal/mykafka"
	"github.com/alisha-attire/storefront/internal/util"
)

type CheckoutHandler struct {
	Producer *mykafka.Producer
}

func (h *CheckoutHandler) publish(c echo.Context, sessionID string, event map[string]any) {
	publish(c, h.Producer, "order_events", sessionID, event)
}

// GetState reports the current step with live totals quoted from the cart.
func (h *CheckoutHandler) GetState(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	flow := sess.Checkout
	subtotal, fee, total := flow.Totals()

	resp := map[string]any{
		"step":           flow.Step(),
		"payment_method": flow.Method(),
		"shipping":       flow.Shipping(),
		"summary": map[string]any{
			"subtotal":     subtotal,
			"shipping_fee": fee,
			"total":        total,
		},
	}
	if order := flow.Order(); order != nil {
		resp["order"] = order
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *CheckoutHandler) SubmitShipping(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	var form checkout.ShippingInfo
	if err := c.Bind(&form); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	if err := sess.Checkout.SubmitShipping(form); err != nil {
		return domainError(c, err)
	}
	return h.GetState(c)
}

func (h *CheckoutHandler) ReturnToShipping(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	if err := sess.Checkout.ReturnToShipping(); err != nil {
		return domainError(c, err)
	}
	return h.GetState(c)
}

func (h *CheckoutHandler) SelectPayment(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	var req struct {
		Method checkout.PaymentMethod `json:"method"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	if err := sess.Checkout.SelectPaymentMethod(req.Method); err != nil {
		return domainError(c, err)
	}
	return h.GetState(c)
}

// PlaceOrder runs the terminal transition and returns the confirmation
// snapshot. The snapshot is taken before the cart clears, so the totals
// shown here never read the emptied cart.
func (h *CheckoutHandler) PlaceOrder(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	order, err := sess.Checkout.PlaceOrder()
	if err != nil {
		return domainError(c, err)
	}

	h.publish(c, sess.ID.String(), map[string]any{
		"type":         "order_placed",
		"session_id":   sess.ID.String(),
		"order_number": order.Number,
		"total":        order.Total,
	})

	lines := make([]map[string]any, 0, len(order.Lines))
	for _, l := range order.Lines {
		lines = append(lines, map[string]any{
			"product_id": l.ProductID,
			"name":       l.Name,
			"quantity":   l.Quantity,
			"size":       l.Size,
			"unit_price": l.UnitPrice,
			"line_total": l.LineTotal,
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"order_number":       order.Number,
		"placed_at":          order.PlacedAt,
		"estimated_delivery": order.EstimatedDelivery,
		"payment_method":     order.PaymentMethod,
		"shipping":           order.Shipping,
		"items":              lines,
		"subtotal":           order.Subtotal,
		"shipping_fee":       order.ShippingFee,
		"total":              order.Total,
		"total_formatted":    util.FormatBDT(order.Total),
	})
}
