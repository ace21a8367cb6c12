package dto

import (
	"time"

	catalogapp "github.com/fashionstop/storefront/internal/application/catalog"
	identityapp "github.com/fashionstop/storefront/internal/application/identity"
	orderapp "github.com/fashionstop/storefront/internal/application/order"
	"github.com/shopspring/decimal"
)

// DemoModeSuffix is appended to write messages of the ephemeral backend
const DemoModeSuffix = " (Demo Mode)"

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

// NewErrorResponse creates an error response
func NewErrorResponse(code, message, requestID string) ErrorResponse {
	return ErrorResponse{
		Success:   false,
		Message:   message,
		Code:      code,
		RequestID: requestID,
	}
}

// MessageResponse acknowledges a write without a payload
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Product is the wire form of a product. Money is sent as JSON numbers.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Brand         string    `json:"brand"`
	Price         float64   `json:"price"`
	OriginalPrice *float64  `json:"originalPrice,omitempty"`
	Image         string    `json:"image"`
	Category      string    `json:"category"`
	Badge         string    `json:"badge,omitempty"`
	Description   string    `json:"description,omitempty"`
	Sizes         []string  `json:"sizes"`
	Colors        []string  `json:"colors"`
	InStock       bool      `json:"inStock"`
	Featured      bool      `json:"featured"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ProductsResponse is the body of GET /api/products
type ProductsResponse struct {
	Success  bool      `json:"success"`
	Products []Product `json:"products"`
}

// ProductResponse is the body of product writes
type ProductResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Product Product `json:"product"`
}

// OrderItem is the wire form of an order line
type OrderItem struct {
	ProductID string  `json:"productId,omitempty"`
	Name      string  `json:"name"`
	Brand     string  `json:"brand,omitempty"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size,omitempty"`
	Color     string  `json:"color,omitempty"`
}

// Order is the wire form of an order
type Order struct {
	ID            string      `json:"id"`
	CustomerName  string      `json:"customerName"`
	Email         string      `json:"email"`
	Phone         string      `json:"phone"`
	Address       string      `json:"address"`
	City          string      `json:"city"`
	Pincode       string      `json:"pincode"`
	Items         []OrderItem `json:"items"`
	Total         float64     `json:"total"`
	Status        string      `json:"status"`
	PaymentMethod string      `json:"paymentMethod"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// OrderResponse is the body of order writes
type OrderResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Order   Order  `json:"order"`
}

// OrdersResponse is the body of GET /api/admin/orders
type OrdersResponse struct {
	Success bool    `json:"success"`
	Orders  []Order `json:"orders"`
}

// Stats is the wire form of the dashboard figures
type Stats struct {
	TotalProducts int64   `json:"totalProducts"`
	TotalOrders   int64   `json:"totalOrders"`
	PendingOrders int64   `json:"pendingOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

// StatsResponse is the body of GET /api/admin/stats
type StatsResponse struct {
	Success bool  `json:"success"`
	Stats   Stats `json:"stats"`
}

// LoginResponse is the body of a successful admin login
type LoginResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Admin   identityapp.AdminInfo `json:"admin"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// StatusResponse is the body of GET /api/status
type StatusResponse struct {
	Status    string `json:"status"`
	DemoMode  bool   `json:"demoMode"`
	Timestamp string `json:"timestamp"`
}

// FromProduct converts a service product to its wire form
func FromProduct(p catalogapp.ProductResponse) Product {
	return Product{
		ID:            p.ID,
		Name:          p.Name,
		Brand:         p.Brand,
		Price:         p.Price.InexactFloat64(),
		OriginalPrice: floatPtr(p.OriginalPrice),
		Image:         p.Image,
		Category:      p.Category,
		Badge:         p.Badge,
		Description:   p.Description,
		Sizes:         p.Sizes,
		Colors:        p.Colors,
		InStock:       p.InStock,
		Featured:      p.Featured,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// FromProducts converts a list of service products
func FromProducts(products []catalogapp.ProductResponse) []Product {
	out := make([]Product, len(products))
	for i := range products {
		out[i] = FromProduct(products[i])
	}
	return out
}

// FromOrder converts a service order to its wire form
func FromOrder(o orderapp.OrderResponse) Order {
	items := make([]OrderItem, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Brand:     item.Brand,
			Price:     item.Price.InexactFloat64(),
			Quantity:  item.Quantity,
			Size:      item.Size,
			Color:     item.Color,
		}
	}
	return Order{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		Email:         o.Email,
		Phone:         o.Phone,
		Address:       o.Address,
		City:          o.City,
		Pincode:       o.Pincode,
		Items:         items,
		Total:         o.Total.InexactFloat64(),
		Status:        o.Status,
		PaymentMethod: o.PaymentMethod,
		CreatedAt:     o.CreatedAt,
	}
}

// FromOrders converts a list of service orders
func FromOrders(orders []orderapp.OrderResponse) []Order {
	out := make([]Order, len(orders))
	for i := range orders {
		out[i] = FromOrder(orders[i])
	}
	return out
}

// FromStats converts the dashboard figures
func FromStats(s orderapp.StatsResponse) Stats {
	return Stats{
		TotalProducts: s.TotalProducts,
		TotalOrders:   s.TotalOrders,
		PendingOrders: s.PendingOrders,
		TotalRevenue:  s.TotalRevenue.InexactFloat64(),
	}
}

func floatPtr(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	f := d.InexactFloat64()
	return &f
}
