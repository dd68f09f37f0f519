package httpserver

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/shop_api/internal/logging"
	"github.com/Skotchmaster/shop_api/internal/models"
	"github.com/Skotchmaster/shop_api/internal/service"
	"github.com/Skotchmaster/shop_api/internal/transport"
)

type CartHTTP struct {
	Svc *service.CartService
}

func (h *CartHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get")

	cart, err := h.Svc.GetCart(ctx, c.Param("username"))
	if err != nil {
		return writeError(c, l, "get_cart_error", err)
	}
	return c.JSON(http.StatusOK, cart)
}

func (h *CartHTTP) Add(c echo.Context) error {
	return h.modify(c, "cart.add", h.Svc.AddToCart)
}

func (h *CartHTTP) Remove(c echo.Context) error {
	return h.modify(c, "cart.remove", h.Svc.RemoveFromCart)
}

type cartOp func(ctx context.Context, username string, itemID uint, quantity int) (*models.Cart, error)

func (h *CartHTTP) modify(c echo.Context, handler string, op cartOp) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", handler)

	var req transport.ModifyCartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("modify_cart_error", "status", 400, "reason", "invalid body", "error", err)
		return c.NoContent(http.StatusBadRequest)
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("modify_cart_error", "status", 400, "reason", "invalid body", "error", err)
		return c.NoContent(http.StatusBadRequest)
	}

	cart, err := op(ctx, req.Username, req.ItemID, req.Quantity)
	if err != nil {
		return writeError(c, l, "modify_cart_error", err)
	}
	return c.JSON(http.StatusOK, cart)
}
