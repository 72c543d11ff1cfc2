package main

import (
	"errors"
	"strings"

	"phonekart/internal/api"
	"phonekart/internal/order"
	"phonekart/internal/product"
	"phonekart/internal/storefront"
	"phonekart/internal/user"
	"phonekart/internal/utils"

	"github.com/shopspring/decimal"
)

func rupees(v float64) string { return utils.FormatRupees(decimal.NewFromFloat(v)) }

func (s *shell) renderView() {
	v := s.app.Browser.View()
	if v.Loading {
		s.printf("Loading products...\n")
		return
	}
	if v.Err != nil {
		s.printf("Could not load products.\n")
		return
	}

	s.printf("\nShowing %d of %d phones", v.Filtered, v.Total)
	if v.TotalPages > 0 {
		s.printf(" (page %d/%d)", v.Page, v.TotalPages)
	}
	s.printf("\n")
	if len(v.Chips) > 0 {
		chips := make([]string, 0, len(v.Chips))
		for _, c := range v.Chips {
			chips = append(chips, string(c.Kind)+":"+c.Value)
		}
		s.printf("Filters: %s\n", strings.Join(chips, ", "))
	}
	if len(v.Items) == 0 {
		s.printf("No phones match these filters. Try 'reset'.\n")
		return
	}
	for _, p := range v.Items {
		s.renderRow(p)
	}

	var nav []string
	if v.HasPrev {
		nav = append(nav, "prev")
	}
	if v.HasNext {
		nav = append(nav, "next")
	}
	if len(nav) > 0 {
		s.printf("More: %s\n", strings.Join(nav, " | "))
	}
}

func (s *shell) renderRow(p product.Product) {
	var badges []string
	if product.HasDealBadge(p) {
		badges = append(badges, "DEAL")
	}
	if product.IsBestseller(p) {
		badges = append(badges, "BESTSELLER")
	}
	tag := ""
	if len(badges) > 0 {
		tag = " [" + strings.Join(badges, ",") + "]"
	}
	heart := " "
	if s.app.Wishlist.Contains(p.ID) {
		heart = "♥"
	}

	s.printf(" %s %-24s %-28s %10s  %3d%% off  %s%s\n",
		heart, p.ID, p.Name, rupees(p.Price), product.Discount(p), stars(p), tag)
}

func stars(p product.Product) string {
	n := product.StarCount(p)
	return strings.Repeat("★", n) + strings.Repeat("☆", product.MaxStars-n)
}

func (s *shell) renderProduct(p product.Product) {
	s.printf("\n%s by %s\n", p.Name, p.Brand)
	s.printf("  Price   %s (MRP %s, %d%% off, save %s)\n",
		rupees(p.Price), rupees(p.MRP), product.Discount(p), utils.FormatRupees(product.Savings(p)))
	s.printf("  Memory  %d GB RAM / %d GB\n", p.RAM, p.Storage)
	s.printf("  Display %s\n  Camera  %s\n  Battery %s\n  Color   %s\n", p.Display, p.Camera, p.Battery, p.Color)
	s.printf("  Rating  %s %.1f (%d reviews)\n", stars(p), product.Rating(p), p.NumOfReviews)
	if p.Description != "" {
		s.printf("  %s\n", p.Description)
	}
}

func (s *shell) renderCompare(rows []product.CompareRow) {
	for _, r := range rows {
		mark := "  "
		switch r.Better {
		case 1:
			mark = "< "
		case 2:
			mark = " >"
		}
		s.printf("  %-12s %-24s %s %-24s\n", r.Label, r.Left, mark, r.Right)
	}
}

func (s *shell) renderCart() {
	items := s.app.Cart.Items()
	if len(items) == 0 {
		s.printf("Your cart is empty.\n")
		return
	}
	for _, it := range items {
		s.printf("  %-24s %-28s x%-3d %12s\n", it.Product.ID, it.Product.Name, it.Quantity, utils.FormatRupees(it.LineTotal()))
	}
	s.printf("  %d item(s), %d unit(s), subtotal %s\n", s.app.Cart.Count(), s.app.Cart.Units(), utils.FormatRupees(s.app.Cart.Subtotal()))
}

func (s *shell) renderWishlist() {
	items := s.app.Wishlist.Items()
	if len(items) == 0 {
		s.printf("Your wishlist is empty.\n")
		return
	}
	for _, p := range items {
		s.renderRow(p)
	}
}

func (s *shell) renderProfile(p user.Profile) {
	s.printf("\n%s <%s>\n", p.Name, p.Email)
	if p.Avatar != "" {
		s.printf("  avatar set\n")
	}
	if !p.Address.IsZero() {
		a := p.Address
		s.printf("  %s, %s, %s %s, phone %s\n", a.Street, a.City, a.State, a.Zip, a.Phone)
	}
}

func (s *shell) renderOrders(orders []order.Order, admin bool) {
	if len(orders) == 0 {
		s.printf("No orders yet.\n")
		return
	}
	for _, o := range orders {
		who := ""
		if admin {
			who = " user " + o.UserID
		}
		date := ""
		if !o.CreatedAt.IsZero() {
			date = o.CreatedAt.Format("02 Jan 2006")
		}
		s.printf("  #%s %s %12s  %-10s%s\n", o.ID, date, utils.FormatRupees(o.Amount), o.Status, who)
		for _, it := range o.Items {
			s.printf("      %s x%d\n", it.Name, it.Quantity)
		}
	}
}

func (s *shell) renderTracking(o order.Order) {
	s.printf("\nOrder #%s  %s\n", o.ID, utils.FormatRupees(o.Amount))
	steps := make([]string, 0, 3)
	for _, r := range order.Steps(o.Status) {
		mark := "( )"
		if r.Completed {
			mark = "(x)"
		}
		if r.Current {
			mark = "[x]"
		}
		steps = append(steps, mark+" "+string(r.Status))
	}
	s.printf("  %s  %d%%\n", strings.Join(steps, " -> "), order.Progress(o.Status))
	if o.Shipping.City != "" {
		s.printf("  Ship to %s, %s\n", o.Shipping.Address, o.Shipping.City)
	}
}

// storefrontMessage is the notification text for App level errors.
func storefrontMessage(err error, fallback string) string {
	switch {
	case errors.Is(err, storefront.ErrAdminOnly):
		return "Admin access required"
	case errors.Is(err, storefront.ErrNotLoggedIn):
		return "Please login first"
	case errors.Is(err, storefront.ErrInvalidReview), errors.Is(err, product.ErrInvalidInput):
		if _, msg, ok := strings.Cut(err.Error(), ": "); ok {
			return msg
		}
	}
	return api.Message(err, fallback)
}
