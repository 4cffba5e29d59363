package dto

import "github.com/Spencer4792/jwt-pizza-service/internal/domain"

// AddMenuItemRequest payload for extending the menu.
type AddMenuItemRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
}

// MenuItemResponse is one menu entry.
type MenuItemResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
}

// SubmitOrderRequest payload for placing an order.
type SubmitOrderRequest struct {
	FranchiseID string             `json:"franchiseId"`
	StoreID     string             `json:"storeId"`
	Items       []OrderItemRequest `json:"items"`
}

// OrderItemRequest references one menu item.
type OrderItemRequest struct {
	MenuID string `json:"menuId"`
}

// OrderItemResponse is one priced order line.
type OrderItemResponse struct {
	MenuID      string  `json:"menuId"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// OrderResponse is the submitted order view.
type OrderResponse struct {
	ID          string              `json:"id"`
	FranchiseID string              `json:"franchiseId"`
	StoreID     string              `json:"storeId"`
	Date        string              `json:"date"`
	Items       []OrderItemResponse `json:"items"`
}

// NewMenuResponse converts menu items.
func NewMenuResponse(items []domain.MenuItem) []MenuItemResponse {
	out := make([]MenuItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, MenuItemResponse{
			ID:          item.ID,
			Title:       item.Title,
			Description: item.Description,
			Image:       item.Image,
			Price:       item.Price,
		})
	}
	return out
}

// NewOrderResponse converts the domain order.
func NewOrderResponse(order *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			MenuID:      item.MenuID,
			Description: item.Description,
			Price:       item.Price,
		})
	}
	return OrderResponse{
		ID:          order.ID,
		FranchiseID: order.FranchiseID,
		StoreID:     order.StoreID,
		Date:        order.Date.Format("2006-01-02T15:04:05Z07:00"),
		Items:       items,
	}
}
