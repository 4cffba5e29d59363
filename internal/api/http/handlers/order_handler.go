package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Spencer4792/jwt-pizza-service/internal/api/dto"
	"github.com/Spencer4792/jwt-pizza-service/internal/auth"
	"github.com/Spencer4792/jwt-pizza-service/internal/domain"
	"github.com/Spencer4792/jwt-pizza-service/internal/service"
)

// OrderHandler exposes menu and order endpoints.
type OrderHandler struct {
	orders *service.OrderService
}

// NewOrderHandler constructs handler.
func NewOrderHandler(orders *service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Menu handles GET /api/order/menu. Public.
func (h *OrderHandler) Menu(c *fiber.Ctx) error {
	items, err := h.orders.Menu(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewMenuResponse(items))
}

// AddMenuItem handles PUT /api/order/menu. Admin only (route-gated).
func (h *OrderHandler) AddMenuItem(c *fiber.Ctx) error {
	var req dto.AddMenuItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	items, err := h.orders.AddMenuItem(c.UserContext(), &domain.MenuItem{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Price:       req.Price,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewMenuResponse(items))
}

// ListOrders handles GET /api/order for the authenticated diner.
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))

	orders, err := h.orders.OrdersFor(c.UserContext(), auth.PrincipalFromContext(c), page)
	if err != nil {
		return err
	}

	out := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, dto.NewOrderResponse(&orders[i]))
	}
	return c.JSON(fiber.Map{"orders": out, "page": page})
}

// SubmitOrder handles POST /api/order: persist, then forward to the factory.
func (h *OrderHandler) SubmitOrder(c *fiber.Ctx) error {
	var req dto.SubmitOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	order := &domain.Order{
		FranchiseID: req.FranchiseID,
		StoreID:     req.StoreID,
	}
	for _, item := range req.Items {
		order.Items = append(order.Items, domain.OrderItem{MenuID: item.MenuID})
	}

	placed, fulfilled, err := h.orders.Submit(c.UserContext(), auth.PrincipalFromContext(c), order)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"order":     dto.NewOrderResponse(placed),
		"jwt":       fulfilled.JWT,
		"reportUrl": fulfilled.ReportURL,
	})
}
