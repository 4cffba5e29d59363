package handlers

import "github.com/gofiber/fiber/v2"

// Endpoint documents one API operation.
type Endpoint struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

// DocsHandler serves the welcome message and the endpoint catalog.
type DocsHandler struct {
	serviceName string
	version     string
	endpoints   []Endpoint
}

// NewDocsHandler returns a new handler instance.
func NewDocsHandler(serviceName, version string) *DocsHandler {
	return &DocsHandler{
		serviceName: serviceName,
		version:     version,
		endpoints: []Endpoint{
			{"POST", "/api/auth", "Register a new user"},
			{"PUT", "/api/auth", "Login existing user"},
			{"PUT", "/api/auth/:userId", "Update user email or password"},
			{"DELETE", "/api/auth", "Logout a user"},
			{"GET", "/api/order/menu", "Get the pizza menu"},
			{"PUT", "/api/order/menu", "Add an item to the menu"},
			{"GET", "/api/order", "Get the orders for the authenticated user"},
			{"POST", "/api/order", "Create an order for the authenticated user"},
			{"GET", "/api/franchise", "List all franchises"},
			{"GET", "/api/franchise/:userId", "List a user's franchises"},
			{"POST", "/api/franchise", "Create a new franchise"},
			{"DELETE", "/api/franchise/:franchiseId", "Delete a franchise"},
			{"POST", "/api/franchise/:franchiseId/store", "Create a new store"},
			{"DELETE", "/api/franchise/:franchiseId/store/:storeId", "Delete a store"},
		},
	}
}

// Welcome handles GET /.
func (h *DocsHandler) Welcome(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "welcome to JWT Pizza",
		"version": h.version,
	})
}

// Docs handles GET /api/docs.
func (h *DocsHandler) Docs(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"version":   h.version,
		"endpoints": h.endpoints,
	})
}

// NotFound is the JSON fallback for unknown endpoints.
func (h *DocsHandler) NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"message": "unknown endpoint",
	})
}
