package apiclient

import (
	"time"

	"github.com/shopspring/decimal"
)

// envelope holds the fields every response carries
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type wireProduct struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Brand         string           `json:"brand"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"originalPrice"`
	Image         string           `json:"image"`
	Category      string           `json:"category"`
	Badge         string           `json:"badge"`
	Description   string           `json:"description"`
	Sizes         []string         `json:"sizes"`
	Colors        []string         `json:"colors"`
	InStock       bool             `json:"inStock"`
	Featured      bool             `json:"featured"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

type productsResponse struct {
	envelope
	Products []wireProduct `json:"products"`
}

type productResponse struct {
	envelope
	Product wireProduct `json:"product"`
}

type wireOrderItem struct {
	ProductID string          `json:"productId,omitempty"`
	Name      string          `json:"name"`
	Brand     string          `json:"brand,omitempty"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Size      string          `json:"size,omitempty"`
	Color     string          `json:"color,omitempty"`
}

type orderRequest struct {
	CustomerName string          `json:"customerName"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Address      string          `json:"address"`
	City         string          `json:"city"`
	Pincode      string          `json:"pincode"`
	Items        []wireOrderItem `json:"items"`
	Total        decimal.Decimal `json:"total"`
}

type wireOrder struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customerName"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Address      string          `json:"address"`
	City         string          `json:"city"`
	Pincode      string          `json:"pincode"`
	Items        []wireOrderItem `json:"items"`
	Total        decimal.Decimal `json:"total"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
}

type orderResponse struct {
	envelope
	Order wireOrder `json:"order"`
}

type ordersResponse struct {
	envelope
	Orders []wireOrder `json:"orders"`
}

type statsResponse struct {
	envelope
	Stats struct {
		TotalProducts int64           `json:"totalProducts"`
		TotalOrders   int64           `json:"totalOrders"`
		PendingOrders int64           `json:"pendingOrders"`
		TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	} `json:"stats"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	envelope
	Admin struct {
		Username string `json:"username"`
		Role     string `json:"role"`
	} `json:"admin"`
}

type statusRequest struct {
	Status string `json:"status"`
}
