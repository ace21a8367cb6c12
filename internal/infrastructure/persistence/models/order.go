package models

import (
	"github.com/fashionstop/storefront/internal/domain/order"
	"github.com/fashionstop/storefront/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// OrderModel is the persistence model for the Order aggregate root.
type OrderModel struct {
	BaseModel
	CustomerName  string           `gorm:"type:varchar(200);not null"`
	Email         string           `gorm:"type:varchar(200);not null"`
	Phone         string           `gorm:"type:varchar(50);not null"`
	Address       string           `gorm:"type:text;not null"`
	City          string           `gorm:"type:varchar(100);not null"`
	Pincode       string           `gorm:"type:varchar(20);not null"`
	Total         decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	Status        string           `gorm:"type:varchar(20);not null;index"`
	PaymentMethod string           `gorm:"type:varchar(20);not null"`
	Items         []OrderItemModel `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the persistence model for an order item snapshot.
type OrderItemModel struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"`
	OrderID   string          `gorm:"type:varchar(32);not null;index"`
	Position  int             `gorm:"not null"`
	ProductID string          `gorm:"type:varchar(32);not null"`
	Name      string          `gorm:"type:varchar(200);not null"`
	Brand     string          `gorm:"type:varchar(100)"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Quantity  int             `gorm:"not null"`
	Size      string          `gorm:"type:varchar(20)"`
	Color     string          `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts the persistence model to a domain Order aggregate.
// No domain events are raised for a loaded order.
func (m *OrderModel) ToDomain() *order.Order {
	o := &order.Order{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
		},
		Customer: order.Customer{
			Name:    m.CustomerName,
			Email:   m.Email,
			Phone:   m.Phone,
			Address: m.Address,
			City:    m.City,
			Pincode: m.Pincode,
		},
		Items:         make([]order.Item, len(m.Items)),
		Total:         m.Total,
		Status:        order.Status(m.Status),
		PaymentMethod: m.PaymentMethod,
	}
	for i, item := range m.Items {
		o.Items[i] = order.Item{
			ProductID: item.ProductID,
			Name:      item.Name,
			Brand:     item.Brand,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Size:      item.Size,
			Color:     item.Color,
		}
	}
	return o
}

// FromDomain populates the persistence model from a domain Order aggregate.
func (m *OrderModel) FromDomain(o *order.Order) {
	m.FromDomainBaseEntity(o.BaseEntity)
	m.CustomerName = o.Customer.Name
	m.Email = o.Customer.Email
	m.Phone = o.Customer.Phone
	m.Address = o.Customer.Address
	m.City = o.Customer.City
	m.Pincode = o.Customer.Pincode
	m.Total = o.Total
	m.Status = string(o.Status)
	m.PaymentMethod = o.PaymentMethod
	m.Items = make([]OrderItemModel, len(o.Items))
	for i, item := range o.Items {
		m.Items[i] = OrderItemModel{
			OrderID:   o.ID,
			Position:  i,
			ProductID: item.ProductID,
			Name:      item.Name,
			Brand:     item.Brand,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Size:      item.Size,
			Color:     item.Color,
		}
	}
}

// OrderModelFromDomain creates a new persistence model from a domain Order aggregate.
func OrderModelFromDomain(o *order.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(o)
	return m
}
