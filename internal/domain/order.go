package domain

import "time"

// MenuItem is a purchasable pizza on the shared menu.
type MenuItem struct {
	ID          string
	Title       string
	Description string
	Image       string
	Price       float64
}

// OrderItem is one line of an order, priced at order time.
type OrderItem struct {
	MenuID      string
	Description string
	Price       float64
}

// Order is a diner's submitted order against one store.
type Order struct {
	ID          string
	DinerID     string
	FranchiseID string
	StoreID     string
	Items       []OrderItem
	Date        time.Time
}

// Total sums the line item prices.
func (o *Order) Total() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Price
	}
	return total
}
