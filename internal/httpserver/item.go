package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/shop_api/internal/logging"
	"github.com/Skotchmaster/shop_api/internal/service"
	"github.com/Skotchmaster/shop_api/internal/util"
)

type ItemHTTP struct {
	Svc *service.ItemService
}

func (h *ItemHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "item.list")

	items, err := h.Svc.ListItems(ctx)
	if err != nil {
		return writeError(c, l, "list_items_error", err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ItemHTTP) GetByID(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "item.get_by_id")

	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil {
		l.Warn("get_item_error", "status", 400, "reason", "id is not an integer", "error", err)
		return c.NoContent(http.StatusBadRequest)
	}

	item, err := h.Svc.GetItem(ctx, uint(id))
	if err != nil {
		return writeError(c, l, "get_item_error", err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *ItemHTTP) GetByName(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "item.get_by_name")

	items, err := h.Svc.ItemsByName(ctx, c.Param("name"))
	if err != nil {
		return writeError(c, l, "get_items_error", err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ItemHTTP) Search(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "item.search")

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)

	res, err := h.Svc.Search(ctx, c.QueryParam("q"), page, size)
	if err != nil {
		return writeError(c, l, "search_error", err)
	}

	l.Info("search_success", "total", res.Total)
	return c.JSON(http.StatusOK, res)
}
