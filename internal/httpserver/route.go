package httpserver

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/shop_api/internal/logging"
)

type Deps struct {
	UserHandler  *UserHTTP
	ItemHandler  *ItemHTTP
	CartHandler  *CartHTTP
	OrderHandler *OrderHTTP
	// Ready reports whether backing stores answer; nil means always ready.
	Ready func(ctx context.Context) error
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		if d.Ready == nil {
			return c.NoContent(http.StatusOK)
		}
		if err := d.Ready(c.Request().Context()); err != nil {
			logging.FromContext(c.Request().Context()).Warn("not_ready", "error", err)
			return c.NoContent(http.StatusServiceUnavailable)
		}
		return c.NoContent(http.StatusOK)
	})

	api := e.Group("/api")

	users := api.Group("/user")
	users.GET("/id/:id", d.UserHandler.GetByID)
	users.GET("/:username", d.UserHandler.GetByUsername)
	users.POST("/create", d.UserHandler.Create)

	items := api.Group("/item")
	items.GET("", d.ItemHandler.List)
	items.GET("/search", d.ItemHandler.Search)
	items.GET("/name/:name", d.ItemHandler.GetByName)
	items.GET("/:id", d.ItemHandler.GetByID)

	carts := api.Group("/cart")
	carts.GET("/:username", d.CartHandler.Get)
	carts.POST("/addToCart", d.CartHandler.Add)
	carts.POST("/removeFromCart", d.CartHandler.Remove)

	orders := api.Group("/order")
	orders.POST("/submit/:username", d.OrderHandler.Submit)
	orders.GET("/history/:username", d.OrderHandler.History)
}
