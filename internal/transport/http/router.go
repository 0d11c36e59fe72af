package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/alisha-attire/storefront/internal/handlers"
	"github.com/alisha-attire/storefront/internal/session"
)

type Deps struct {
	Sessions        *session.Manager
	ProductHandler  *handlers.ProductHandler
	CartHandler     *handlers.CartHandler
	CheckoutHandler *handlers.CheckoutHandler
	SearchHandler   *handlers.SearchHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	v1 := e.Group("/api/v1")

	v1.GET("/search", d.SearchHandler.Handler)

	products := v1.Group("/products")

	products.GET("/:id", d.ProductHandler.GetProduct)
	products.GET("", d.ProductHandler.GetProducts)

	cart := v1.Group("/cart", d.Sessions.Middleware())

	cart.GET("", d.CartHandler.GetCart)
	cart.POST("", d.CartHandler.AddToCart)
	cart.PATCH("/:id", d.CartHandler.UpdateQuantity)
	cart.DELETE("/:id", d.CartHandler.RemoveFromCart)
	cart.DELETE("", d.CartHandler.ClearCart)
	cart.POST("/open", d.CartHandler.SetOpen)

	co := v1.Group("/checkout", d.Sessions.Middleware())

	co.GET("", d.CheckoutHandler.GetState)
	co.POST("/shipping", d.CheckoutHandler.SubmitShipping)
	co.POST("/back", d.CheckoutHandler.ReturnToShipping)
	co.POST("/payment", d.CheckoutHandler.SelectPayment)
	co.POST("/place", d.CheckoutHandler.PlaceOrder)
}
