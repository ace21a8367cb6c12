package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fashionstop/storefront/internal/application/storefront"
	"github.com/fashionstop/storefront/internal/domain/cart"
	"github.com/fashionstop/storefront/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func price(d decimal.Decimal) string {
	return "₹" + d.StringFixed(2)
}

func renderCatalog(w io.Writer, sections []catalog.Section, arrivals []catalog.Product) {
	if len(arrivals) > 0 {
		fmt.Fprintln(w, "== New Arrivals ==")
		renderProducts(w, arrivals)
		fmt.Fprintln(w)
	}
	for _, s := range sections {
		if len(s.Cards) == 0 {
			continue
		}
		fmt.Fprintf(w, "== %s ==\n", s.Title)
		products := make([]catalog.Product, 0, len(s.Cards))
		for _, c := range s.Cards {
			products = append(products, c.Product)
		}
		renderProducts(w, products)
		fmt.Fprintln(w)
	}
}

func renderProducts(w io.Writer, products []catalog.Product) {
	if len(products) == 0 {
		fmt.Fprintln(w, "No products found")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tBRAND\tPRICE\tSIZES\tBADGE")
	for _, p := range products {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.Name, p.Brand, price(p.Price), strings.Join(p.Sizes, ","), p.Badge)
	}
	_ = tw.Flush()
}

func renderCart(w io.Writer, entries []cart.Entry, count int, total decimal.Decimal) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "Your cart is empty")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tQTY\tSUBTOTAL")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", e.ProductID, e.Name, price(e.Price), e.Quantity, price(e.Subtotal()))
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "Items: %d  Total: %s\n", count, price(total))
}

func renderDashboard(w io.Writer, d *storefront.Dashboard) {
	switch d.Tab {
	case storefront.TabDashboard:
		s := d.Stats
		if s == nil {
			return
		}
		fmt.Fprintf(w, "Total products: %d\nTotal orders:   %d\nPending orders: %d\nTotal revenue:  %s\n",
			s.TotalProducts, s.TotalOrders, s.PendingOrders, price(s.TotalRevenue))
	case storefront.TabProducts:
		renderProducts(w, d.Products)
	case storefront.TabOrders:
		renderOrders(w, d.Orders)
	}
}

func renderOrders(w io.Writer, orders []storefront.OrderSummary) {
	if len(orders) == 0 {
		fmt.Fprintln(w, "No orders yet")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tCUSTOMER\tPHONE\tCITY\tITEMS\tTOTAL\tSTATUS\tDATE")
	for _, o := range orders {
		items := 0
		for _, l := range o.Items {
			items += l.Quantity
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
			o.ID, o.CustomerName, o.Phone, o.City, items, price(o.Total), o.Status, o.CreatedAt.Format("02/01/2006"))
	}
	_ = tw.Flush()
}
