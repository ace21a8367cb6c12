package order

import (
	"time"

	"github.com/fashionstop/storefront/internal/domain/order"
	"github.com/shopspring/decimal"
)

// PlaceOrderRequest represents a checkout submission. Customer fields are
// checked by the domain so that every missing field is reported at once.
type PlaceOrderRequest struct {
	CustomerName string             `json:"customerName"`
	Email        string             `json:"email"`
	Phone        string             `json:"phone"`
	Address      string             `json:"address"`
	City         string             `json:"city"`
	Pincode      string             `json:"pincode"`
	Items        []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	// Total is the amount the client computed; the stored total is derived
	// from the items.
	Total *decimal.Decimal `json:"total"`
}

// OrderItemRequest is one cart line of a checkout submission
type OrderItemRequest struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name" binding:"required"`
	Brand     string          `json:"brand"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
	Size      string          `json:"size"`
	Color     string          `json:"color"`
}

// UpdateStatusRequest represents an operator status change
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderResponse represents an order returned by the service
type OrderResponse struct {
	ID            string
	CustomerName  string
	Email         string
	Phone         string
	Address       string
	City          string
	Pincode       string
	Items         []OrderItemResponse
	Total         decimal.Decimal
	Status        string
	PaymentMethod string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderItemResponse is one line of an order
type OrderItemResponse struct {
	ProductID string
	Name      string
	Brand     string
	Price     decimal.Decimal
	Quantity  int
	Size      string
	Color     string
}

// StatsResponse holds the admin dashboard figures
type StatsResponse struct {
	TotalProducts int64
	TotalOrders   int64
	PendingOrders int64
	TotalRevenue  decimal.Decimal
}

// ToOrderResponse converts a domain Order to OrderResponse
func ToOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemResponse(item)
	}
	return OrderResponse{
		ID:            o.ID,
		CustomerName:  o.Customer.Name,
		Email:         o.Customer.Email,
		Phone:         o.Customer.Phone,
		Address:       o.Customer.Address,
		City:          o.Customer.City,
		Pincode:       o.Customer.Pincode,
		Items:         items,
		Total:         o.Total,
		Status:        string(o.Status),
		PaymentMethod: o.PaymentMethod,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func (r PlaceOrderRequest) customer() order.Customer {
	return order.Customer{
		Name:    r.CustomerName,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
		City:    r.City,
		Pincode: r.Pincode,
	}
}

func (r PlaceOrderRequest) items() []order.Item {
	items := make([]order.Item, len(r.Items))
	for i, item := range r.Items {
		items[i] = order.Item(item)
	}
	return items
}
