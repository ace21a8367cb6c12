package storefront

import (
	"context"
	"time"

	"github.com/fashionstop/storefront/internal/domain/cart"
	"github.com/fashionstop/storefront/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// API is the backend as seen by the storefront client. Implementations
// return *TransportError, *ApplicationError or *NotFoundError.
type API interface {
	ListProducts(ctx context.Context, query ProductQuery) ([]catalog.Product, error)
	CreateProduct(ctx context.Context, draft ProductDraft) (*CreatedProduct, error)
	DeleteProduct(ctx context.Context, id string) error
	PlaceOrder(ctx context.Context, submission OrderSubmission) (*PlacedOrder, error)
	Login(ctx context.Context, username, password string) (*AdminRef, error)
	Stats(ctx context.Context) (*DashboardStats, error)
	RecentOrders(ctx context.Context) ([]OrderSummary, error)
	UpdateOrderStatus(ctx context.Context, orderID, status string) error
}

// ProductQuery filters the product listing
type ProductQuery struct {
	Brand    string
	Featured *bool
	Category string
}

// ProductDraft is a validated product about to be created
type ProductDraft struct {
	Name          string           `json:"name"`
	Brand         string           `json:"brand"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"originalPrice,omitempty"`
	Image         string           `json:"image"`
	Category      string           `json:"category,omitempty"`
	Badge         string           `json:"badge,omitempty"`
	Description   string           `json:"description,omitempty"`
	Sizes         []string         `json:"sizes,omitempty"`
	Colors        []string         `json:"colors,omitempty"`
	Featured      bool             `json:"featured"`
}

// CreatedProduct is the backend's answer to CreateProduct
type CreatedProduct struct {
	Product catalog.Product
	Message string
}

// CustomerForm holds the checkout form fields
type CustomerForm struct {
	CustomerName string `json:"customerName" validate:"required"`
	Email        string `json:"email" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Address      string `json:"address" validate:"required"`
	City         string `json:"city" validate:"required"`
	Pincode      string `json:"pincode" validate:"required"`
}

// OrderSubmission is the payload of PlaceOrder
type OrderSubmission struct {
	Customer CustomerForm
	Items    []cart.Entry
	Total    decimal.Decimal
}

// PlacedOrder is the backend's answer to PlaceOrder
type PlacedOrder struct {
	ID      string
	Total   decimal.Decimal
	Message string
}

// AdminRef identifies the logged-in admin
type AdminRef struct {
	Username string
	Role     string
}

// DashboardStats are the admin dashboard figures
type DashboardStats struct {
	TotalProducts int64
	TotalOrders   int64
	PendingOrders int64
	TotalRevenue  decimal.Decimal
}

// OrderSummary is one row of the admin order list
type OrderSummary struct {
	ID           string
	CustomerName string
	Email        string
	Phone        string
	Address      string
	City         string
	Pincode      string
	Total        decimal.Decimal
	Status       string
	CreatedAt    time.Time
	Items        []OrderLine
}

// OrderLine is one item of an order summary
type OrderLine struct {
	ProductID string
	Name      string
	Brand     string
	Price     decimal.Decimal
	Quantity  int
	Size      string
	Color     string
}
