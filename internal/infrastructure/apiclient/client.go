// Package apiclient implements the storefront API over the backend's JSON
// HTTP interface.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fashionstop/storefront/internal/application/storefront"
	"github.com/fashionstop/storefront/internal/domain/catalog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"
)

// DefaultTimeout bounds a single request when none is configured
const DefaultTimeout = 10 * time.Second

// maxResponseSize caps how much of a response body is read
const maxResponseSize = 4 << 20

// Client talks to the storefront backend
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

var _ storefront.API = (*Client)(nil)

// New creates a client for the backend at baseURL
func New(baseURL string, timeout time.Duration, logger *zap.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("apiclient: invalid base URL %q", baseURL)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

// ListProducts fetches GET /api/products
func (c *Client) ListProducts(ctx context.Context, query storefront.ProductQuery) ([]catalog.Product, error) {
	params := url.Values{}
	if query.Brand != "" {
		params.Set("brand", query.Brand)
	}
	if query.Featured != nil {
		params.Set("featured", strconv.FormatBool(*query.Featured))
	}
	if query.Category != "" {
		params.Set("category", query.Category)
	}
	path := "/api/products"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var resp productsResponse
	if err := c.do(ctx, "list products", http.MethodGet, path, nil, &resp, nil); err != nil {
		return nil, err
	}

	products := make([]catalog.Product, 0, len(resp.Products))
	for _, p := range resp.Products {
		products = append(products, p.toDomain())
	}
	return products, nil
}

// CreateProduct posts a product to POST /api/admin/products
func (c *Client) CreateProduct(ctx context.Context, draft storefront.ProductDraft) (*storefront.CreatedProduct, error) {
	var resp productResponse
	if err := c.do(ctx, "create product", http.MethodPost, "/api/admin/products", draft, &resp, nil); err != nil {
		return nil, err
	}
	return &storefront.CreatedProduct{Product: resp.Product.toDomain(), Message: resp.Message}, nil
}

// DeleteProduct calls DELETE /api/admin/products/:id
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	notFound := &storefront.NotFoundError{Resource: "product", ID: id}
	var resp envelope
	return c.do(ctx, "delete product", http.MethodDelete, "/api/admin/products/"+url.PathEscape(id), nil, &resp, notFound)
}

// PlaceOrder posts the cart and customer details to POST /api/orders
func (c *Client) PlaceOrder(ctx context.Context, submission storefront.OrderSubmission) (*storefront.PlacedOrder, error) {
	f := submission.Customer
	req := orderRequest{
		CustomerName: f.CustomerName,
		Email:        f.Email,
		Phone:        f.Phone,
		Address:      f.Address,
		City:         f.City,
		Pincode:      f.Pincode,
		Items:        make([]wireOrderItem, 0, len(submission.Items)),
		Total:        submission.Total,
	}
	for _, e := range submission.Items {
		req.Items = append(req.Items, wireOrderItem{
			ProductID: e.ProductID,
			Name:      e.Name,
			Brand:     e.Brand,
			Price:     e.Price,
			Quantity:  e.Quantity,
		})
	}

	var resp orderResponse
	if err := c.do(ctx, "place order", http.MethodPost, "/api/orders", req, &resp, nil); err != nil {
		return nil, err
	}
	return &storefront.PlacedOrder{ID: resp.Order.ID, Total: resp.Order.Total, Message: resp.Message}, nil
}

// Login checks admin credentials with POST /api/admin/login
func (c *Client) Login(ctx context.Context, username, password string) (*storefront.AdminRef, error) {
	var resp loginResponse
	req := loginRequest{Username: username, Password: password}
	if err := c.do(ctx, "login", http.MethodPost, "/api/admin/login", req, &resp, nil); err != nil {
		return nil, err
	}
	return &storefront.AdminRef{Username: resp.Admin.Username, Role: resp.Admin.Role}, nil
}

// Stats fetches GET /api/admin/stats
func (c *Client) Stats(ctx context.Context) (*storefront.DashboardStats, error) {
	var resp statsResponse
	if err := c.do(ctx, "stats", http.MethodGet, "/api/admin/stats", nil, &resp, nil); err != nil {
		return nil, err
	}
	s := resp.Stats
	return &storefront.DashboardStats{
		TotalProducts: s.TotalProducts,
		TotalOrders:   s.TotalOrders,
		PendingOrders: s.PendingOrders,
		TotalRevenue:  s.TotalRevenue,
	}, nil
}

// RecentOrders fetches GET /api/admin/orders
func (c *Client) RecentOrders(ctx context.Context) ([]storefront.OrderSummary, error) {
	var resp ordersResponse
	if err := c.do(ctx, "list orders", http.MethodGet, "/api/admin/orders", nil, &resp, nil); err != nil {
		return nil, err
	}

	orders := make([]storefront.OrderSummary, 0, len(resp.Orders))
	for _, o := range resp.Orders {
		orders = append(orders, o.toSummary())
	}
	return orders, nil
}

// UpdateOrderStatus calls PUT /api/admin/orders/:orderId
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID, status string) error {
	notFound := &storefront.NotFoundError{Resource: "order", ID: orderID}
	var resp orderResponse
	path := "/api/admin/orders/" + url.PathEscape(orderID)
	return c.do(ctx, "update order status", http.MethodPut, path, statusRequest{Status: status}, &resp, notFound)
}

// do sends one request and decodes the JSON response into out. A 404 is
// reported as notFound when given.
func (c *Client) do(ctx context.Context, op, method, path string, body, out any, notFound *storefront.NotFoundError) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return &storefront.TransportError{Op: op, Err: fmt.Errorf("marshal request: %w", err)}
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &storefront.TransportError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("Backend request failed",
			zap.String("op", op),
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return &storefront.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return &storefront.TransportError{Op: op, Err: fmt.Errorf("read response: %w", err)}
	}

	c.logger.Debug("Backend request",
		zap.String("op", op),
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return &storefront.TransportError{
			Op:  op,
			Err: fmt.Errorf("invalid response (HTTP %d): %w", resp.StatusCode, err),
		}
	}

	if resp.StatusCode == http.StatusNotFound && notFound != nil {
		return notFound
	}
	if !env.Success || resp.StatusCode >= http.StatusBadRequest {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &storefront.ApplicationError{Status: resp.StatusCode, Message: msg}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &storefront.TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// IsUnavailable reports whether err means the backend could not be reached
func IsUnavailable(err error) bool {
	var te *storefront.TransportError
	return errors.As(err, &te)
}

func (p wireProduct) toDomain() catalog.Product {
	product := catalog.Product{
		Name:          p.Name,
		Brand:         p.Brand,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Image:         p.Image,
		Category:      p.Category,
		Badge:         p.Badge,
		Description:   p.Description,
		Sizes:         p.Sizes,
		Colors:        p.Colors,
		InStock:       p.InStock,
		Featured:      p.Featured,
	}
	product.ID = p.ID
	product.CreatedAt = p.CreatedAt
	product.UpdatedAt = p.UpdatedAt
	return product
}

func (o wireOrder) toSummary() storefront.OrderSummary {
	lines := make([]storefront.OrderLine, 0, len(o.Items))
	for _, it := range o.Items {
		lines = append(lines, storefront.OrderLine{
			ProductID: it.ProductID,
			Name:      it.Name,
			Brand:     it.Brand,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Size:      it.Size,
			Color:     it.Color,
		})
	}
	return storefront.OrderSummary{
		ID:           o.ID,
		CustomerName: o.CustomerName,
		Email:        o.Email,
		Phone:        o.Phone,
		Address:      o.Address,
		City:         o.City,
		Pincode:      o.Pincode,
		Total:        o.Total,
		Status:       o.Status,
		CreatedAt:    o.CreatedAt,
		Items:        lines,
	}
}
