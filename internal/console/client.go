// Package console is the consumer side of the coordinator: a typed HTTP
// client, a wholesale-refresh read model and the unassigned-order badge
// poller. It never sees the domain layer; everything goes over the wire.
package console

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// APIError is a non-2xx response from the coordinator.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Client is a bearer-authenticated wrapper over the coordinator API.
// Call Login before any other method; all methods are safe for concurrent
// use once the token is set.
type Client struct {
	baseURL string
	httpc   *http.Client
	token   string
}

// NewClient creates a client for the coordinator at baseURL, e.g.
// "http://localhost:8080".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Login exchanges operator credentials for a bearer token and stores it for
// subsequent requests.
func (c *Client) Login(ctx context.Context, username, password string) error {
	var resp struct {
		Token string `json:"token"`
	}

	payload := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", nil, payload, &resp); err != nil {
		return err
	}

	c.token = resp.Token
	return nil
}

// Orders returns all orders, newest first.
func (c *Client) Orders(ctx context.Context) ([]Order, error) {
	var orders []Order
	err := c.do(ctx, http.MethodGet, "/api/v1/orders", nil, nil, &orders)
	return orders, err
}

// OrdersByStatus returns the orders currently in the given status.
func (c *Client) OrdersByStatus(ctx context.Context, status string) ([]Order, error) {
	var orders []Order
	err := c.do(ctx, http.MethodGet, "/api/v1/orders/status/"+url.PathEscape(status), nil, nil, &orders)
	return orders, err
}

// SearchOrders returns orders whose client name contains the given fragment.
func (c *Client) SearchOrders(ctx context.Context, clientName string) ([]Order, error) {
	var orders []Order
	query := url.Values{"clientName": {clientName}}
	err := c.do(ctx, http.MethodGet, "/api/v1/orders/search", query, nil, &orders)
	return orders, err
}

// CreateOrder creates an order and returns it as stored.
func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) (Order, error) {
	var created Order
	err := c.do(ctx, http.MethodPost, "/api/v1/orders", nil, req, &created)
	return created, err
}

// UpdateOrder replaces an order's details.
func (c *Client) UpdateOrder(ctx context.Context, id uuid.UUID, req OrderRequest) (Order, error) {
	var updated Order
	err := c.do(ctx, http.MethodPut, "/api/v1/orders/"+id.String(), nil, req, &updated)
	return updated, err
}

// DeleteOrder deletes an order.
func (c *Client) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/orders/"+id.String(), nil, nil, nil)
}

// DeliveryPersons returns all registered couriers.
func (c *Client) DeliveryPersons(ctx context.Context) ([]DeliveryPerson, error) {
	var persons []DeliveryPerson
	err := c.do(ctx, http.MethodGet, "/api/v1/delivery-persons", nil, nil, &persons)
	return persons, err
}

// AvailableDeliveryPersons returns the couriers free to take an assignment.
func (c *Client) AvailableDeliveryPersons(ctx context.Context) ([]DeliveryPerson, error) {
	var persons []DeliveryPerson
	err := c.do(ctx, http.MethodGet, "/api/v1/delivery-persons/available", nil, nil, &persons)
	return persons, err
}

// CreateDeliveryPerson registers a courier.
func (c *Client) CreateDeliveryPerson(ctx context.Context, req DeliveryPersonRequest) (DeliveryPerson, error) {
	var created DeliveryPerson
	err := c.do(ctx, http.MethodPost, "/api/v1/delivery-persons", nil, req, &created)
	return created, err
}

// UpdateDeliveryPerson updates a courier's details.
func (c *Client) UpdateDeliveryPerson(ctx context.Context, id uuid.UUID, req DeliveryPersonRequest) (DeliveryPerson, error) {
	var updated DeliveryPerson
	err := c.do(ctx, http.MethodPut, "/api/v1/delivery-persons/"+id.String(), nil, req, &updated)
	return updated, err
}

// DeleteDeliveryPerson deletes a courier.
func (c *Client) DeleteDeliveryPerson(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/delivery-persons/"+id.String(), nil, nil, nil)
}

// Assignments returns all assignments joined with their order and courier.
func (c *Client) Assignments(ctx context.Context) ([]Assignment, error) {
	var assignments []Assignment
	err := c.do(ctx, http.MethodGet, "/api/v1/assignments", nil, nil, &assignments)
	return assignments, err
}

// CreateAssignment pairs an order with a courier.
func (c *Client) CreateAssignment(ctx context.Context, orderID, deliveryPersonID uuid.UUID) error {
	query := url.Values{
		"orderId":          {orderID.String()},
		"deliveryPersonId": {deliveryPersonID.String()},
	}
	return c.do(ctx, http.MethodPost, "/api/v1/assignments", query, nil, nil)
}

// UpdateAssignmentStatus moves an assignment to the given status.
func (c *Client) UpdateAssignmentStatus(ctx context.Context, id uuid.UUID, status string) error {
	payload := map[string]string{"status": status}
	return c.do(ctx, http.MethodPatch, "/api/v1/assignments/"+id.String()+"/status", nil, payload, nil)
}

// DeleteAssignment deletes an assignment.
func (c *Client) DeleteAssignment(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/assignments/"+id.String(), nil, nil, nil)
}

// UnassignedOrderCount returns the number of orders waiting for a courier.
// It backs the console's badge.
func (c *Client) UnassignedOrderCount(ctx context.Context) (int64, error) {
	orders, err := c.OrdersByStatus(ctx, "UnAssigned")
	if err != nil {
		return 0, err
	}
	return int64(len(orders)), nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		apiErr.Message = body.Message
	} else {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}

	return apiErr
}
