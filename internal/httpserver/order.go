package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/shop_api/internal/logging"
	"github.com/Skotchmaster/shop_api/internal/service"
)

type OrderHTTP struct {
	Svc *service.OrderService
}

func (h *OrderHTTP) Submit(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.submit")

	order, err := h.Svc.Submit(ctx, c.Param("username"))
	if err != nil {
		return writeError(c, l, "submit_order_error", err)
	}

	l.Info("submit_order_success", "order_id", order.ID)
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHTTP) History(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.history")

	orders, err := h.Svc.History(ctx, c.Param("username"))
	if err != nil {
		return writeError(c, l, "order_history_error", err)
	}
	return c.JSON(http.StatusOK, orders)
}
