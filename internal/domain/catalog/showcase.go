package catalog

import (
	"net/url"
	"strings"

	"golang.org/x/text/cases"
)

// PlaceholderLogoURL is used for brands without a known logo
const PlaceholderLogoURL = "https://via.placeholder.com/100x50?text="

// KnownBrandLogos holds logos for brands that get a section on demand
var KnownBrandLogos = map[string]string{
	"reebok":   "https://logos-world.net/wp-content/uploads/2020/04/Reebok-Logo.png",
	"converse": "https://logos-world.net/wp-content/uploads/2020/04/Converse-Logo.png",
}

// featuredBrands always match their own section even when the section title
// is decorated, e.g. "Nike Air Collection".
var featuredBrands = map[string]bool{
	"nike":   true,
	"adidas": true,
	"puma":   true,
}

// Card is a product placed in a section. Dynamic cards come from a Render
// call; static cards are part of the page itself and survive re-renders.
type Card struct {
	Product Product
	Dynamic bool
}

// Section groups the cards of one brand
type Section struct {
	Key     string
	Title   string
	Logo    string
	Dynamic bool
	Cards   []Card
}

// StaticSection describes a brand section that exists before any render
type StaticSection struct {
	Brand string
	Logo  string
	Cards []Product
}

// Showcase is the display state of the catalog: brand sections plus the
// "new arrivals" strip of featured products. It holds no I/O.
type Showcase struct {
	sections    []*Section
	newArrivals []Product
	fold        cases.Caser
}

// DefaultSections are the brand sections the storefront page ships with
func DefaultSections() []StaticSection {
	return []StaticSection{
		{Brand: "Nike", Logo: "https://logos-world.net/wp-content/uploads/2020/04/Nike-Logo.png"},
		{Brand: "Adidas", Logo: "https://logos-world.net/wp-content/uploads/2020/04/Adidas-Logo.png"},
		{Brand: "Puma", Logo: "https://logos-world.net/wp-content/uploads/2020/04/Puma-Logo.png"},
	}
}

// NewShowcase creates a showcase with the given static sections
func NewShowcase(static ...StaticSection) *Showcase {
	s := &Showcase{fold: cases.Fold()}
	for _, st := range static {
		section := &Section{
			Key:   s.key(st.Brand),
			Title: SectionTitle(st.Brand),
			Logo:  st.Logo,
		}
		for _, p := range st.Cards {
			section.Cards = append(section.Cards, Card{Product: p.Clone()})
		}
		s.sections = append(s.sections, section)
	}
	return s
}

// Render replaces every dynamic card with the given products. Sections
// created by a previous render are dropped first, so rendering the same
// input twice yields the same state.
func (s *Showcase) Render(products []Product) {
	s.clearDynamic()
	s.Append(products...)
}

// Append adds products without clearing previous dynamic cards. It is used
// when a single product must show up immediately, before the next full
// render.
func (s *Showcase) Append(products ...Product) {
	for _, p := range products {
		if p.Featured {
			s.newArrivals = append(s.newArrivals, p.Clone())
		}
		section := s.findSection(p.Brand)
		if section == nil {
			section = s.addSection(p.Brand)
		}
		section.Cards = append(section.Cards, Card{Product: p.Clone(), Dynamic: true})
	}
}

// Sections returns a copy of the current sections
func (s *Showcase) Sections() []Section {
	out := make([]Section, len(s.sections))
	for i, sec := range s.sections {
		out[i] = sec.copy()
	}
	return out
}

// Section returns the section products of brand would be placed in
func (s *Showcase) Section(brand string) (Section, bool) {
	sec := s.findSection(brand)
	if sec == nil {
		return Section{}, false
	}
	return sec.copy(), true
}

func (sec *Section) copy() Section {
	out := *sec
	out.Cards = make([]Card, len(sec.Cards))
	for j, c := range sec.Cards {
		out.Cards[j] = Card{Product: c.Product.Clone(), Dynamic: c.Dynamic}
	}
	return out
}

// NewArrivals returns copies of the featured products of the last render
func (s *Showcase) NewArrivals() []Product {
	out := make([]Product, len(s.newArrivals))
	for i, p := range s.newArrivals {
		out[i] = p.Clone()
	}
	return out
}

// DynamicCount returns the number of dynamic cards across all sections
func (s *Showcase) DynamicCount() int {
	n := 0
	for _, sec := range s.sections {
		for _, c := range sec.Cards {
			if c.Dynamic {
				n++
			}
		}
	}
	return n
}

func (s *Showcase) clearDynamic() {
	s.newArrivals = nil
	kept := s.sections[:0]
	for _, sec := range s.sections {
		if sec.Dynamic {
			continue
		}
		cards := sec.Cards[:0]
		for _, c := range sec.Cards {
			if !c.Dynamic {
				cards = append(cards, c)
			}
		}
		sec.Cards = cards
		kept = append(kept, sec)
	}
	s.sections = kept
}

// findSection returns the first section whose title contains the brand,
// compared case-insensitively.
func (s *Showcase) findSection(brand string) *Section {
	b := s.key(brand)
	for _, sec := range s.sections {
		title := s.fold.String(sec.Title)
		if strings.Contains(title, b) {
			return sec
		}
		if featuredBrands[b] && sec.Key == b {
			return sec
		}
	}
	return nil
}

func (s *Showcase) addSection(brand string) *Section {
	display := strings.TrimSpace(brand)
	if display == "" {
		display = "Other"
	}
	section := &Section{
		Key:     s.key(display),
		Title:   SectionTitle(display),
		Logo:    BrandLogo(display),
		Dynamic: true,
	}
	s.sections = append(s.sections, section)
	return section
}

func (s *Showcase) key(brand string) string {
	b := strings.TrimSpace(brand)
	if b == "" {
		b = "Other"
	}
	return s.fold.String(b)
}

// SectionTitle returns the heading of a brand section
func SectionTitle(brand string) string {
	return strings.TrimSpace(brand) + " Collection"
}

// BrandLogo returns the known logo of a brand or a placeholder image
func BrandLogo(brand string) string {
	if logo, ok := KnownBrandLogos[strings.ToLower(strings.TrimSpace(brand))]; ok {
		return logo
	}
	return PlaceholderLogoURL + url.QueryEscape(strings.TrimSpace(brand))
}

// Merge concatenates backend products and locally held demo products.
// The two sources never share ids, so no deduplication happens.
func Merge(backend, demo []Product) []Product {
	out := make([]Product, 0, len(backend)+len(demo))
	for _, p := range backend {
		out = append(out, p.Clone())
	}
	for _, p := range demo {
		out = append(out, p.Clone())
	}
	return out
}
