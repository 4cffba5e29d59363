package factory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/Spencer4792/jwt-pizza-service/internal/config"
	"github.com/Spencer4792/jwt-pizza-service/internal/domain"
)

// Client talks to the remote pizza factory fulfillment service. The factory
// is an external collaborator: no retry or compensation logic lives here.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient builds a factory client from configuration.
func NewClient(cfg config.FactoryConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    cfg.URL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		logger:     logger,
	}
}

// DinerInfo identifies the ordering diner to the factory.
type DinerInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// FulfillResponse is the factory's acknowledgment of an order.
type FulfillResponse struct {
	JWT       string `json:"jwt"`
	ReportURL string `json:"reportUrl"`
}

type fulfillRequest struct {
	Diner DinerInfo     `json:"diner"`
	Order *domain.Order `json:"order"`
}

type fulfillError struct {
	Message   string `json:"message"`
	ReportURL string `json:"reportUrl"`
}

// FulfillmentError reports a factory rejection, carrying the factory's
// problem report URL when one was returned.
type FulfillmentError struct {
	Status    int
	Message   string
	ReportURL string
}

func (e *FulfillmentError) Error() string {
	return fmt.Sprintf("factory rejected order (status %d): %s", e.Status, e.Message)
}

// SendOrder submits the order for fulfillment.
func (c *Client) SendOrder(ctx context.Context, diner DinerInfo, order *domain.Order) (*FulfillResponse, error) {
	body, err := json.Marshal(fulfillRequest{Diner: diner, Order: order})
	if err != nil {
		return nil, err
	}

	url := c.baseURL + "/orders"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("factory request failed", zap.String("url", url), zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var failure fulfillError
		_ = json.NewDecoder(resp.Body).Decode(&failure)
		c.logger.Warn("factory rejected order",
			zap.Int("status", resp.StatusCode),
			zap.String("report_url", failure.ReportURL))
		return nil, &FulfillmentError{
			Status:    resp.StatusCode,
			Message:   failure.Message,
			ReportURL: failure.ReportURL,
		}
	}

	var fulfilled FulfillResponse
	if err := json.NewDecoder(resp.Body).Decode(&fulfilled); err != nil {
		return nil, err
	}

	c.logger.Info("order fulfilled by factory", zap.String("order_id", order.ID))
	return &fulfilled, nil
}
