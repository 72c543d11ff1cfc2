package storefront

import (
	"context"
	"fmt"
	"strings"
	"time"

	"phonekart/internal/api"
	"phonekart/internal/cart"
	"phonekart/internal/catalog"
	"phonekart/internal/logger"
	"phonekart/internal/notify"
	"phonekart/internal/order"
	"phonekart/internal/product"
	"phonekart/internal/session"
	"phonekart/internal/user"

	"go.uber.org/zap"
)

// LatestArrivals is how many phones the home screen features.
const LatestArrivals = 4

// Backend is everything the storefront asks of the REST backend.
type Backend interface {
	catalog.Source
	order.Backend
	user.Backend
	CreateProduct(ctx context.Context, in product.NewProductInput) (*product.Product, error)
	AddReview(ctx context.Context, in api.Review) error
}

// App is the application state shared by every screen. Browser, Cart and
// Wishlist belong to the event loop; Catalog and Session are safe to touch
// from fetch goroutines.
type App struct {
	Catalog  *catalog.Store
	Browser  *catalog.Browser
	Cart     *cart.Cart
	Wishlist *cart.Wishlist
	Session  *session.Gate
	Orders   *order.Service
	Users    user.Service
	Notifier notify.Notifier

	backend Backend
}

func New(backend Backend, gate *session.Gate, catalogTTL time.Duration, n notify.Notifier) *App {
	n = notify.OrDiscard(n)
	return &App{
		Catalog:  catalog.NewStore(backend, catalogTTL),
		Browser:  catalog.NewBrowser(),
		Cart:     cart.New(n),
		Wishlist: cart.NewWishlist(n),
		Session:  gate,
		Orders:   order.NewService(backend, gate, n),
		Users:    user.NewService(backend, gate, n),
		Notifier: n,
		backend:  backend,
	}
}

// SetSearch is the navbar search box; it drives the catalog filter.
func (a *App) SetSearch(q string) {
	a.Browser.SetSearch(q)
}

type Badges struct {
	Cart     int
	Wishlist int
}

// Badges are the header counters.
func (a *App) Badges() Badges {
	return Badges{Cart: a.Cart.Count(), Wishlist: a.Wishlist.Count()}
}

// AddProduct publishes a new phone and drops the cached catalog so the next
// mount shows it.
func (a *App) AddProduct(ctx context.Context, in product.NewProductInput) (*product.Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "storefront"),
		zap.String("method", "AddProduct"),
	)

	if !a.Session.IsAdmin() {
		return nil, ErrAdminOnly
	}
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	created, err := a.backend.CreateProduct(ctx, in)
	if err != nil {
		log.Error("failed to add product", zap.String("name", in.Name), zap.Error(err))
		return nil, err
	}
	a.Catalog.Invalidate()

	log.Info("product added", zap.String("product_id", created.ID), zap.String("name", created.Name))
	a.Notifier.Notify(notify.KindSuccess, "Product Added Successfully!")
	return created, nil
}

// Review rates a product from 1 to 5 stars.
func (a *App) Review(ctx context.Context, productID string, rating float64, comment string) error {
	if !a.Session.LoggedIn() {
		return ErrNotLoggedIn
	}
	if productID == "" || rating < 1 || rating > product.MaxStars {
		return fmt.Errorf("%w: rating must be between 1 and %d", ErrInvalidReview, product.MaxStars)
	}

	if err := a.backend.AddReview(ctx, api.Review{
		ProductID: productID,
		Rating:    rating,
		Comment:   strings.TrimSpace(comment),
	}); err != nil {
		logger.FromCtx(ctx).Error("failed to add review",
			zap.String("layer", "storefront"),
			zap.String("product_id", productID),
			zap.Error(err),
		)
		return err
	}
	a.Catalog.Invalidate()
	a.Notifier.Notify(notify.KindSuccess, "Review submitted")
	return nil
}

// Latest returns the first LatestArrivals phones of the catalog for the home
// screen. It goes through the catalog cache and leaves the browser alone.
func (a *App) Latest(ctx context.Context) ([]product.Product, error) {
	products, err := a.Catalog.Load(ctx)
	if err != nil {
		return nil, err
	}
	return products[:min(len(products), LatestArrivals)], nil
}

// Product finds a loaded product by id.
func (a *App) Product(id string) (product.Product, error) {
	p, ok := product.Find(a.Browser.Products(), id)
	if !ok {
		return product.Product{}, fmt.Errorf("%w: %s", ErrUnknownProduct, id)
	}
	return p, nil
}

// Compare lines up two loaded products side by side.
func (a *App) Compare(leftID, rightID string) ([]product.CompareRow, error) {
	left, err := a.Product(leftID)
	if err != nil {
		return nil, err
	}
	right, err := a.Product(rightID)
	if err != nil {
		return nil, err
	}
	return product.Compare(left, right)
}

// Recommend runs the phone finder over the loaded catalog.
func (a *App) Recommend(prefs catalog.Preferences) []product.Product {
	return catalog.Recommend(a.Browser.Products(), prefs)
}
