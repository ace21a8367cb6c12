package storefront

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/fashionstop/storefront/internal/domain/cart"
	"github.com/fashionstop/storefront/internal/domain/catalog"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// demoModeMarker tags write responses of a backend without durable storage
const demoModeMarker = "Demo Mode"

// Tab is a page of the admin panel
type Tab string

const (
	TabDashboard Tab = "dashboard"
	TabProducts  Tab = "products"
	TabOrders    Tab = "orders"
)

// Dashboard is the data of one admin tab; only the field of the opened tab
// is filled.
type Dashboard struct {
	Tab      Tab
	Stats    *DashboardStats
	Products []catalog.Product
	Orders   []OrderSummary
}

// ProductForm is the raw admin "add product" form
type ProductForm struct {
	Name          string `json:"name" validate:"required"`
	Brand         string `json:"brand" validate:"required"`
	Price         string `json:"price" validate:"required"`
	OriginalPrice string `json:"originalPrice"`
	Image         string `json:"image" validate:"required"`
	Category      string `json:"category"`
	Badge         string `json:"badge"`
	Description   string `json:"description"`
	Sizes         []string
	Colors        []string
	Featured      bool
}

// AdminConsole drives the login-gated admin panel
type AdminConsole struct {
	api      API
	session  *SessionStore
	catalog  *CatalogView
	validate *validator.Validate
	logger   *zap.Logger
}

// NewAdminConsole creates a new AdminConsole
func NewAdminConsole(api API, session *SessionStore, view *CatalogView, logger *zap.Logger) *AdminConsole {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name
	})
	return &AdminConsole{
		api:      api,
		session:  session,
		catalog:  view,
		validate: v,
		logger:   logger,
	}
}

// Login checks the credentials with the backend and opens the session.
// A failed login leaves the session logged out.
func (a *AdminConsole) Login(ctx context.Context, username, password string) (*AdminRef, error) {
	admin, err := a.api.Login(ctx, username, password)
	if err != nil {
		a.session.LogOut()
		return nil, err
	}
	a.session.LogIn(*admin)
	a.logger.Info("Admin session opened", zap.String("username", admin.Username))
	return admin, nil
}

// Logout closes the session
func (a *AdminConsole) Logout() {
	a.session.LogOut()
}

// Open fetches the data of tab. Nothing is cached between activations.
func (a *AdminConsole) Open(ctx context.Context, tab Tab) (*Dashboard, error) {
	if !a.session.IsLoggedIn() {
		return nil, ErrNotLoggedIn
	}

	d := &Dashboard{Tab: tab}
	switch tab {
	case TabDashboard:
		stats, err := a.api.Stats(ctx)
		if err != nil {
			return nil, err
		}
		d.Stats = stats
	case TabProducts:
		products, err := a.api.ListProducts(ctx, ProductQuery{})
		if err != nil {
			return nil, err
		}
		d.Products = a.catalog.Merge(products)
	case TabOrders:
		orders, err := a.api.RecentOrders(ctx)
		if err != nil {
			return nil, err
		}
		d.Orders = orders
	default:
		return nil, &ValidationError{Fields: []string{"tab"}, Message: "unknown admin tab: " + string(tab)}
	}
	return d, nil
}

// AddProduct creates a product and reloads the catalog. A product accepted
// by a demo-mode backend that does not list it afterwards is kept locally.
func (a *AdminConsole) AddProduct(ctx context.Context, form ProductForm) (*catalog.Product, error) {
	if !a.session.IsLoggedIn() {
		return nil, ErrNotLoggedIn
	}

	draft, err := a.draft(form)
	if err != nil {
		return nil, err
	}

	created, err := a.api.CreateProduct(ctx, *draft)
	if err != nil {
		return nil, err
	}

	if err := a.catalog.Refresh(ctx); err != nil {
		a.logger.Warn("Product created but catalog refresh failed", zap.Error(err))
	}
	if strings.Contains(created.Message, demoModeMarker) && a.catalog.AddDemo(created.Product) {
		a.logger.Info("Product kept as demo product", zap.String("product_id", created.Product.ID))
	}

	p := created.Product.Clone()
	return &p, nil
}

// DeleteProduct deletes a product where it lives: products held only by
// this client are removed locally, everything else through the backend.
func (a *AdminConsole) DeleteProduct(ctx context.Context, id string) error {
	if !a.session.IsLoggedIn() {
		return ErrNotLoggedIn
	}

	if a.catalog.HasDemo(id) && a.catalog.RemoveDemo(id) {
		return nil
	}

	if err := a.api.DeleteProduct(ctx, id); err != nil {
		return err
	}
	if err := a.catalog.Refresh(ctx); err != nil {
		a.logger.Warn("Product deleted but catalog refresh failed", zap.Error(err))
	}
	return nil
}

// UpdateOrderStatus changes the status of an order
func (a *AdminConsole) UpdateOrderStatus(ctx context.Context, orderID, status string) error {
	if !a.session.IsLoggedIn() {
		return ErrNotLoggedIn
	}
	return a.api.UpdateOrderStatus(ctx, orderID, status)
}

func (a *AdminConsole) draft(form ProductForm) (*ProductDraft, error) {
	form.Name = strings.TrimSpace(form.Name)
	form.Brand = strings.TrimSpace(form.Brand)
	form.Image = strings.TrimSpace(form.Image)
	form.Price = strings.TrimSpace(form.Price)
	form.OriginalPrice = strings.TrimSpace(form.OriginalPrice)

	if err := a.validate.Struct(form); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
			return nil, newMissingFieldsError(fields)
		}
		return nil, &ValidationError{Message: err.Error()}
	}

	price, err := cart.ParsePrice(form.Price)
	if err != nil {
		return nil, &ValidationError{Fields: []string{"price"}, Message: err.Error()}
	}
	var original *decimal.Decimal
	if form.OriginalPrice != "" {
		op, err := cart.ParsePrice(form.OriginalPrice)
		if err != nil {
			return nil, &ValidationError{Fields: []string{"originalPrice"}, Message: err.Error()}
		}
		original = &op
	}

	return &ProductDraft{
		Name:          form.Name,
		Brand:         form.Brand,
		Price:         price,
		OriginalPrice: original,
		Image:         form.Image,
		Category:      strings.TrimSpace(form.Category),
		Badge:         strings.TrimSpace(form.Badge),
		Description:   form.Description,
		Sizes:         form.Sizes,
		Colors:        form.Colors,
		Featured:      form.Featured,
	}, nil
}
