package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Spencer4792/jwt-pizza-service/internal/auth"
	"github.com/Spencer4792/jwt-pizza-service/internal/config"
	"github.com/Spencer4792/jwt-pizza-service/internal/domain"
	"github.com/Spencer4792/jwt-pizza-service/internal/factory"
	"github.com/Spencer4792/jwt-pizza-service/internal/service"
	apperrors "github.com/Spencer4792/jwt-pizza-service/pkg/util"
)

func newOrderService(t *testing.T, menu *memMenuRepo, orders *memOrderRepo, factoryURL string) *service.OrderService {
	t.Helper()
	client := factory.NewClient(config.FactoryConfig{URL: factoryURL, APIKey: "test-key"}, zap.NewNop())
	return service.NewOrderService(service.OrderDependencies{
		MenuRepo:  menu,
		OrderRepo: orders,
		Factory:   client,
	})
}

func seedMenu(t *testing.T, menu *memMenuRepo) domain.MenuItem {
	t.Helper()
	item := domain.MenuItem{Title: "Veggie", Description: "A garden of delight", Price: 0.05}
	require.NoError(t, menu.Add(context.Background(), &item))
	return item
}

func TestSubmitOrder(t *testing.T) {
	menu := &memMenuRepo{}
	item := seedMenu(t, menu)

	var gotAPIKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("x-api-key")
		_ = json.NewEncoder(w).Encode(map[string]string{"jwt": "factory-jwt", "reportUrl": ""})
	}))
	defer server.Close()

	svc := newOrderService(t, menu, &memOrderRepo{}, server.URL)
	principal := &auth.Principal{ID: "diner-1", Name: "A", Email: "a@x.com", Roles: []domain.Role{domain.RoleDiner}}

	order := &domain.Order{
		FranchiseID: "f1",
		StoreID:     "s1",
		Items:       []domain.OrderItem{{MenuID: item.ID}},
	}
	placed, fulfilled, err := svc.Submit(context.Background(), principal, order)
	require.NoError(t, err)

	assert.Equal(t, "factory-jwt", fulfilled.JWT)
	assert.Equal(t, "test-key", gotAPIKey)
	assert.Equal(t, "diner-1", placed.DinerID)
	// Line items are priced from the menu, not from the client.
	assert.Equal(t, item.Price, placed.Items[0].Price)
	assert.Equal(t, item.Description, placed.Items[0].Description)
}

func TestSubmitOrderFactoryFailure(t *testing.T) {
	menu := &memMenuRepo{}
	item := seedMenu(t, menu)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "no dough", "reportUrl": "https://factory/report/1"})
	}))
	defer server.Close()

	orders := &memOrderRepo{}
	svc := newOrderService(t, menu, orders, server.URL)
	principal := &auth.Principal{ID: "diner-1"}

	order := &domain.Order{FranchiseID: "f1", StoreID: "s1", Items: []domain.OrderItem{{MenuID: item.ID}}}
	_, _, err := svc.Submit(context.Background(), principal, order)

	de := apperrors.ToDomainError(err)
	require.NotNil(t, de)
	assert.Equal(t, http.StatusInternalServerError, de.HTTPStatus)
	assert.Equal(t, "failed to fulfill order at factory", de.Message)
	assert.Equal(t, "https://factory/report/1", de.Details["reportUrl"])
}

func TestSubmitOrderRequiresAuthentication(t *testing.T) {
	menu := &memMenuRepo{}
	svc := newOrderService(t, menu, &memOrderRepo{}, "http://unused")

	_, _, err := svc.Submit(context.Background(), nil, &domain.Order{FranchiseID: "f1", StoreID: "s1"})
	assert.Equal(t, http.StatusUnauthorized, errStatus(t, err))
}

func TestSubmitOrderUnknownMenuItem(t *testing.T) {
	svc := newOrderService(t, &memMenuRepo{}, &memOrderRepo{}, "http://unused")
	principal := &auth.Principal{ID: "diner-1"}

	order := &domain.Order{FranchiseID: "f1", StoreID: "s1", Items: []domain.OrderItem{{MenuID: "ghost"}}}
	_, _, err := svc.Submit(context.Background(), principal, order)
	assert.Equal(t, http.StatusBadRequest, errStatus(t, err))
}

func TestSubmitOrderValidation(t *testing.T) {
	svc := newOrderService(t, &memMenuRepo{}, &memOrderRepo{}, "http://unused")
	principal := &auth.Principal{ID: "diner-1"}

	_, _, err := svc.Submit(context.Background(), principal, &domain.Order{})
	assert.Equal(t, http.StatusBadRequest, errStatus(t, err))
}

func TestOrdersForListsOwnOrdersOnly(t *testing.T) {
	orders := &memOrderRepo{}
	require.NoError(t, orders.Create(context.Background(), &domain.Order{DinerID: "diner-1"}))
	require.NoError(t, orders.Create(context.Background(), &domain.Order{DinerID: "diner-2"}))

	svc := newOrderService(t, &memMenuRepo{}, orders, "http://unused")

	list, err := svc.OrdersFor(context.Background(), &auth.Principal{ID: "diner-1"}, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "diner-1", list[0].DinerID)

	_, err = svc.OrdersFor(context.Background(), nil, 1)
	assert.Equal(t, http.StatusUnauthorized, errStatus(t, err))
}

func TestAddMenuItem(t *testing.T) {
	svc := newOrderService(t, &memMenuRepo{}, &memOrderRepo{}, "http://unused")

	items, err := svc.AddMenuItem(context.Background(), &domain.MenuItem{Title: "Pepperoni", Price: 0.1})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Pepperoni", items[0].Title)

	_, err = svc.AddMenuItem(context.Background(), &domain.MenuItem{Title: "", Price: 0.1})
	assert.Equal(t, http.StatusBadRequest, errStatus(t, err))
}
