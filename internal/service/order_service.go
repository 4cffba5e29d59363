package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Spencer4792/jwt-pizza-service/internal/auth"
	"github.com/Spencer4792/jwt-pizza-service/internal/domain"
	"github.com/Spencer4792/jwt-pizza-service/internal/events"
	"github.com/Spencer4792/jwt-pizza-service/internal/factory"
	"github.com/Spencer4792/jwt-pizza-service/internal/repository"
	apperrors "github.com/Spencer4792/jwt-pizza-service/pkg/util"
)

// OrderService handles menu reads and order submission including the
// outbound factory fulfillment call.
type OrderService struct {
	menu       repository.MenuRepository
	orders     repository.OrderRepository
	factory    *factory.Client
	dispatcher events.Dispatcher
	perPage    int
}

// OrderDependencies encapsulates requirements for the order service.
type OrderDependencies struct {
	MenuRepo   repository.MenuRepository
	OrderRepo  repository.OrderRepository
	Factory    *factory.Client
	Dispatcher events.Dispatcher
	ListPer    int
}

// NewOrderService builds the service.
func NewOrderService(deps OrderDependencies) *OrderService {
	perPage := deps.ListPer
	if perPage <= 0 {
		perPage = 10
	}
	return &OrderService{
		menu:       deps.MenuRepo,
		orders:     deps.OrderRepo,
		factory:    deps.Factory,
		dispatcher: deps.Dispatcher,
		perPage:    perPage,
	}
}

// Menu returns the shared pizza menu.
func (s *OrderService) Menu(ctx context.Context) ([]domain.MenuItem, error) {
	return s.menu.List(ctx)
}

// AddMenuItem inserts a new item; callers gate this on the admin role.
func (s *OrderService) AddMenuItem(ctx context.Context, item *domain.MenuItem) ([]domain.MenuItem, error) {
	if item.Title == "" || item.Price <= 0 {
		return nil, apperrors.NewValidationError("title and a positive price are required", nil)
	}
	if err := s.menu.Add(ctx, item); err != nil {
		return nil, err
	}
	return s.menu.List(ctx)
}

// OrdersFor lists the caller's own orders, paginated.
func (s *OrderService) OrdersFor(ctx context.Context, principal *auth.Principal, page int) ([]domain.Order, error) {
	if err := auth.RequireAuthenticated(principal); err != nil {
		return nil, err
	}
	return s.orders.ListByDiner(ctx, principal.ID, page, s.perPage)
}

// Submit persists the order and forwards it to the factory. The factory
// response JWT is handed back to the diner as proof of fulfillment.
func (s *OrderService) Submit(ctx context.Context, principal *auth.Principal, order *domain.Order) (*domain.Order, *factory.FulfillResponse, error) {
	if err := auth.RequireAuthenticated(principal); err != nil {
		return nil, nil, err
	}
	if order.FranchiseID == "" || order.StoreID == "" || len(order.Items) == 0 {
		return nil, nil, apperrors.NewValidationError("franchiseId, storeId and items are required", nil)
	}

	// Price each line from the current menu; client-supplied prices are
	// not trusted.
	for i := range order.Items {
		item, err := s.menu.GetByID(ctx, order.Items[i].MenuID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, nil, apperrors.NewValidationError("unknown menu item", map[string]any{"menuId": order.Items[i].MenuID})
			}
			return nil, nil, err
		}
		order.Items[i].Description = item.Description
		order.Items[i].Price = item.Price
	}

	order.DinerID = principal.ID
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, nil, err
	}

	s.publish(ctx, events.EventOrderPlaced, principal.ID, events.OrderPlacedPayload{
		OrderID:     order.ID,
		FranchiseID: order.FranchiseID,
		StoreID:     order.StoreID,
		Items:       len(order.Items),
		Total:       order.Total(),
	})

	diner := factory.DinerInfo{ID: principal.ID, Name: principal.Name, Email: principal.Email}
	fulfilled, err := s.factory.SendOrder(ctx, diner, order)
	if err != nil {
		var rejection *factory.FulfillmentError
		details := map[string]any{}
		reason := err.Error()
		if errors.As(err, &rejection) && rejection.ReportURL != "" {
			details["reportUrl"] = rejection.ReportURL
		}
		s.publish(ctx, events.EventOrderFulfillFailed, principal.ID, events.OrderFulfillFailedPayload{
			OrderID: order.ID,
			Reason:  reason,
		})
		return nil, nil, apperrors.NewDomainError("FACTORY_FAILED", "failed to fulfill order at factory", http.StatusInternalServerError, details)
	}

	s.publish(ctx, events.EventOrderFulfilled, principal.ID, nil)
	return order, fulfilled, nil
}

func (s *OrderService) publish(ctx context.Context, eventType events.EventType, userID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
