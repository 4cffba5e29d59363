package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Spencer4792/jwt-pizza-service/internal/api/dto"
	"github.com/Spencer4792/jwt-pizza-service/internal/auth"
	"github.com/Spencer4792/jwt-pizza-service/internal/service"
)

// FranchiseHandler exposes franchise and store endpoints.
type FranchiseHandler struct {
	franchises *service.FranchiseService
}

// NewFranchiseHandler constructs handler.
func NewFranchiseHandler(franchises *service.FranchiseService) *FranchiseHandler {
	return &FranchiseHandler{franchises: franchises}
}

// List handles GET /api/franchise. Public; admin sees admin details.
func (h *FranchiseHandler) List(c *fiber.Ctx) error {
	franchises, err := h.franchises.List(c.UserContext(), auth.PrincipalFromContext(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewFranchiseListResponse(franchises))
}

// ListForUser handles GET /api/franchise/:userId. Self or admin.
func (h *FranchiseHandler) ListForUser(c *fiber.Ctx) error {
	franchises, err := h.franchises.ListForUser(c.UserContext(), auth.PrincipalFromContext(c), c.Params("userId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewFranchiseListResponse(franchises))
}

// Create handles POST /api/franchise. Admin only (route-gated).
func (h *FranchiseHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateFranchiseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	franchise, err := h.franchises.Create(c.UserContext(), req.Name, req.Admins)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewFranchiseResponse(franchise))
}

// Delete handles DELETE /api/franchise/:franchiseId. Admin only (route-gated).
func (h *FranchiseHandler) Delete(c *fiber.Ctx) error {
	if err := h.franchises.Delete(c.UserContext(), c.Params("franchiseId")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "franchise deleted"})
}

// CreateStore handles POST /api/franchise/:franchiseId/store.
func (h *FranchiseHandler) CreateStore(c *fiber.Ctx) error {
	var req dto.CreateStoreRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	store, err := h.franchises.CreateStore(c.UserContext(), auth.PrincipalFromContext(c), c.Params("franchiseId"), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(dto.StoreResponse{ID: store.ID, Name: store.Name, TotalRevenue: store.TotalRevenue})
}

// DeleteStore handles DELETE /api/franchise/:franchiseId/store/:storeId.
func (h *FranchiseHandler) DeleteStore(c *fiber.Ctx) error {
	err := h.franchises.DeleteStore(c.UserContext(), auth.PrincipalFromContext(c), c.Params("franchiseId"), c.Params("storeId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "store deleted"})
}
