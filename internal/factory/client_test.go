package factory_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Spencer4792/jwt-pizza-service/internal/config"
	"github.com/Spencer4792/jwt-pizza-service/internal/domain"
	"github.com/Spencer4792/jwt-pizza-service/internal/factory"
)

func TestSendOrder(t *testing.T) {
	var gotPath, gotAPIKey string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAPIKey = r.Header.Get("x-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]string{"jwt": "factory-jwt"})
	}))
	defer server.Close()

	client := factory.NewClient(config.FactoryConfig{URL: server.URL, APIKey: "key-123"}, zap.NewNop())

	order := &domain.Order{ID: "o1", Items: []domain.OrderItem{{MenuID: "m1", Price: 0.05}}}
	diner := factory.DinerInfo{ID: "d1", Name: "A", Email: "a@x.com"}

	resp, err := client.SendOrder(context.Background(), diner, order)
	require.NoError(t, err)

	assert.Equal(t, "factory-jwt", resp.JWT)
	assert.Equal(t, "/orders", gotPath)
	assert.Equal(t, "key-123", gotAPIKey)
	assert.Equal(t, "d1", gotBody["diner"].(map[string]any)["id"])
}

func TestSendOrderRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"message":   "ovens cold",
			"reportUrl": "https://factory/report/9",
		})
	}))
	defer server.Close()

	client := factory.NewClient(config.FactoryConfig{URL: server.URL}, zap.NewNop())

	_, err := client.SendOrder(context.Background(), factory.DinerInfo{}, &domain.Order{})
	require.Error(t, err)

	var rejection *factory.FulfillmentError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, http.StatusBadGateway, rejection.Status)
	assert.Equal(t, "ovens cold", rejection.Message)
	assert.Equal(t, "https://factory/report/9", rejection.ReportURL)
}

func TestSendOrderUnreachable(t *testing.T) {
	client := factory.NewClient(config.FactoryConfig{URL: "http://127.0.0.1:1"}, zap.NewNop())

	_, err := client.SendOrder(context.Background(), factory.DinerInfo{}, &domain.Order{})
	assert.Error(t, err)
}
