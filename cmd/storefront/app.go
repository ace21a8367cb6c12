package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/fashionstop/storefront/internal/application/storefront"
	"go.uber.org/zap"
)

// app holds the client services of one invocation
type app struct {
	api      storefront.API
	cart     *storefront.CartService
	checkout *storefront.Checkout
	catalog  *storefront.CatalogView
	session  *storefront.SessionStore
	console  *storefront.AdminConsole
	out      io.Writer
	logger   *zap.Logger
}

func newApp(api storefront.API, cartSvc *storefront.CartService, checkout *storefront.Checkout, out io.Writer, logger *zap.Logger) *app {
	view := storefront.NewCatalogView(api, logger)
	session := storefront.NewSessionStore()
	return &app{
		api:      api,
		cart:     cartSvc,
		checkout: checkout,
		catalog:  view,
		session:  session,
		console:  storefront.NewAdminConsole(api, session, view, logger),
		out:      out,
		logger:   logger,
	}
}

// errUsage marks a malformed command line
var errUsage = errors.New("usage")

func usageErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, args...))
}

// run dispatches one command
func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageErr("missing command")
	}
	switch args[0] {
	case "products":
		return a.products(ctx, args[1:])
	case "cart":
		return a.cartCmd(ctx, args[1:])
	case "checkout":
		return a.checkoutCmd(ctx, args[1:])
	case "admin":
		return a.admin(ctx, args[1:])
	default:
		return usageErr("unknown command %q", args[0])
	}
}

func (a *app) products(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("products", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	brand := fs.String("brand", "", "brand substring")
	featured := fs.Bool("featured", false, "featured products only")
	category := fs.String("category", "", "exact category")
	if err := fs.Parse(args); err != nil {
		return usageErr("products: %v", err)
	}

	if *brand == "" && !*featured && *category == "" {
		if err := a.catalog.Refresh(ctx); err != nil {
			return err
		}
		renderCatalog(a.out, a.catalog.Sections(), a.catalog.NewArrivals())
		return nil
	}

	query := storefront.ProductQuery{Brand: *brand, Category: *category}
	if *featured {
		query.Featured = featured
	}
	list, err := a.api.ListProducts(ctx, query)
	if err != nil {
		return err
	}
	renderProducts(a.out, list)
	return nil
}

func (a *app) cartCmd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"show"}
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "show":
	case "add":
		if len(rest) != 1 {
			return usageErr("cart add <product-id>")
		}
		if err := a.addToCart(ctx, rest[0]); err != nil {
			return err
		}
	case "remove":
		if len(rest) != 1 {
			return usageErr("cart remove <product-id>")
		}
		if err := a.cart.RemoveItem(ctx, rest[0]); err != nil {
			return err
		}
	case "inc", "dec":
		if len(rest) != 1 {
			return usageErr("cart %s <product-id>", sub)
		}
		delta := 1
		if sub == "dec" {
			delta = -1
		}
		if err := a.cart.AdjustQuantity(ctx, rest[0], delta); err != nil {
			return err
		}
	case "clear":
		if err := a.cart.Clear(ctx); err != nil {
			return err
		}
	default:
		return usageErr("unknown cart command %q", sub)
	}

	renderCart(a.out, a.cart.Snapshot(), a.cart.ItemCount(), a.cart.Total())
	return nil
}

func (a *app) addToCart(ctx context.Context, productID string) error {
	if err := a.catalog.Refresh(ctx); err != nil {
		return err
	}
	for _, p := range a.catalog.Products() {
		if p.ID == productID {
			if err := a.cart.AddProduct(ctx, p.ID, p.Name, p.Price.String(), p.Image, p.Brand); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Added %s to cart\n", p.Name)
			return nil
		}
	}
	return &storefront.NotFoundError{Resource: "product", ID: productID}
}

func (a *app) checkoutCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("checkout", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var form storefront.CustomerForm
	fs.StringVar(&form.CustomerName, "name", "", "customer name")
	fs.StringVar(&form.Email, "email", "", "email")
	fs.StringVar(&form.Phone, "phone", "", "phone")
	fs.StringVar(&form.Address, "address", "", "street address")
	fs.StringVar(&form.City, "city", "", "city")
	fs.StringVar(&form.Pincode, "pincode", "", "pincode")
	if err := fs.Parse(args); err != nil {
		return usageErr("checkout: %v", err)
	}

	conf, err := a.checkout.Submit(ctx, form)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s\nOrder ID: %s\nTotal: ₹%s\n", conf.Message, conf.OrderID, conf.Total.StringFixed(2))
	return nil
}

func (a *app) admin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	username := fs.String("u", "", "admin username")
	password := fs.String("p", "", "admin password")
	if err := fs.Parse(args); err != nil {
		return usageErr("admin: %v", err)
	}
	rest := fs.Args()
	if len(rest) == 0 {
		rest = []string{"dashboard"}
	}

	if _, err := a.console.Login(ctx, *username, *password); err != nil {
		return err
	}
	defer a.console.Logout()

	switch sub := rest[0]; sub {
	case "dashboard", "products", "orders":
		d, err := a.console.Open(ctx, storefront.Tab(sub))
		if err != nil {
			return err
		}
		renderDashboard(a.out, d)
		return nil
	case "add-product":
		return a.addProduct(ctx, rest[1:])
	case "delete-product":
		if len(rest) != 2 {
			return usageErr("admin delete-product <product-id>")
		}
		if err := a.console.DeleteProduct(ctx, rest[1]); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Product deleted")
		return nil
	case "set-status":
		if len(rest) != 3 {
			return usageErr("admin set-status <order-id> <status>")
		}
		if err := a.console.UpdateOrderStatus(ctx, rest[1], rest[2]); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Order %s is now %s\n", rest[1], rest[2])
		return nil
	default:
		return usageErr("unknown admin command %q", sub)
	}
}

func (a *app) addProduct(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add-product", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var form storefront.ProductForm
	var sizes, colors string
	fs.StringVar(&form.Name, "name", "", "product name")
	fs.StringVar(&form.Brand, "brand", "", "brand")
	fs.StringVar(&form.Price, "price", "", "price")
	fs.StringVar(&form.OriginalPrice, "original-price", "", "price before discount")
	fs.StringVar(&form.Image, "image", "", "image URL")
	fs.StringVar(&form.Category, "category", "", "category")
	fs.StringVar(&form.Badge, "badge", "", "badge text")
	fs.StringVar(&form.Description, "description", "", "description")
	fs.StringVar(&sizes, "sizes", "", "comma separated sizes")
	fs.StringVar(&colors, "colors", "", "comma separated colors")
	fs.BoolVar(&form.Featured, "featured", false, "show in new arrivals")
	if err := fs.Parse(args); err != nil {
		return usageErr("add-product: %v", err)
	}
	form.Sizes = splitList(sizes)
	form.Colors = splitList(colors)

	p, err := a.console.AddProduct(ctx, form)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Product added: %s (%s)\n", p.Name, p.ID)
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
