package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"phonekart/internal/catalog"
	"phonekart/internal/logger"
	"phonekart/internal/metrics"
	"phonekart/internal/notify"
	"phonekart/internal/order"
	"phonekart/internal/product"
	"phonekart/internal/storefront"
	"phonekart/internal/user"

	"go.uber.org/zap"
)

var errQuit = errors.New("quit")

// shell is the terminal front end. All screen state is owned by the loop
// goroutine; network calls run elsewhere and hand a closure back through
// results.
type shell struct {
	ctx   context.Context
	app   *storefront.App
	rec   *notify.Recorder
	stats *metrics.BackendStats
	out   io.Writer

	results  chan func()
	inflight int

	// checkoutPending stays set until the order result is applied on the loop.
	checkoutPending bool

	adminOrders []order.Order
}

func newShell(ctx context.Context, app *storefront.App, rec *notify.Recorder, stats *metrics.BackendStats, out io.Writer) *shell {
	return &shell{
		ctx:     ctx,
		app:     app,
		rec:     rec,
		stats:   stats,
		out:     out,
		results: make(chan func(), 16),
	}
}

// run is the event loop. It ends on quit, end of input or context
// cancellation, after outstanding calls have reported back.
func (s *shell) run(in io.Reader) error {
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-s.ctx.Done():
				return
			}
		}
	}()

	s.printf("PhoneKart. Type 'help' for commands.\n")
	s.prompt()

	for {
		select {
		case <-s.ctx.Done():
			return s.ctx.Err()
		case fn := <-s.results:
			s.apply(fn)
			s.flush()
			s.prompt()
		case line, ok := <-lines:
			if !ok {
				s.waitIdle()
				s.flush()
				return nil
			}
			if err := s.handle(line); errors.Is(err, errQuit) {
				s.waitIdle()
				s.flush()
				s.printf("Bye!\n")
				return nil
			}
			s.flush()
			s.prompt()
		}
	}
}

// apply runs a result on the loop. Printing queued notifications is left
// to the caller.
func (s *shell) apply(fn func()) {
	s.inflight--
	fn()
}

// waitIdle applies results until no call is outstanding.
func (s *shell) waitIdle() {
	for s.inflight > 0 {
		select {
		case fn := <-s.results:
			s.apply(fn)
		case <-s.ctx.Done():
			return
		}
	}
}

// async runs work off the loop; the closure it returns is applied on the loop.
func (s *shell) async(work func(ctx context.Context) func()) {
	s.inflight++
	ctx, _ := logger.EnsureRequestID(s.ctx)
	go func() {
		s.results <- work(ctx)
	}()
}

func (s *shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *shell) prompt() {
	b := s.app.Badges()
	who := "guest"
	if cur, ok := s.app.Session.Current(); ok {
		who = cur.Name
	}
	s.printf("[%s | cart %d | wish %d] > ", who, b.Cart, b.Wishlist)
}

// flush prints queued notifications.
func (s *shell) flush() {
	for _, n := range s.rec.Drain() {
		mark := "i"
		switch n.Kind {
		case notify.KindSuccess:
			mark = "+"
		case notify.KindError:
			mark = "!"
		}
		s.printf("\n(%s) %s", mark, n.Message)
	}
	s.printf("\n")
}

func (s *shell) fail(msg string) {
	s.app.Notifier.Notify(notify.KindError, msg)
}

func (s *shell) handle(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)
	args := strings.Fields(rest)

	logger.L().Debug("command", zap.String("cmd", cmd))

	switch strings.ToLower(cmd) {
	case "help":
		s.help()
	case "quit", "exit":
		return errQuit
	case "nav":
		for _, l := range s.app.Session.NavLinks() {
			s.printf("  %-16s %s\n", l.Label, l.Path)
		}
	case "stats":
		snap := s.stats.Snapshot()
		s.printf("backend calls %d, failed %d, throttled %d\n", snap.Requests, snap.Failures, snap.Throttled)

	case "home":
		s.home()
	case "products":
		s.loadProducts()
	case "search", "brand", "ram", "storage", "color", "camera", "battery",
		"rating", "discount", "price", "clear", "reset", "page", "next", "prev":
		s.filterCommand(strings.ToLower(cmd), rest, args)
	case "view":
		s.renderView()
	case "show":
		s.showProduct(args)
	case "compare":
		s.compare(args)
	case "finder":
		s.finder(args)

	case "add", "remove", "qty", "cart", "wish", "wishlist", "move":
		s.cartCommand(strings.ToLower(cmd), args)
	case "checkout":
		s.checkout(rest)

	case "login", "logout", "signup", "forgot", "password", "profile", "avatar":
		s.accountCommand(strings.ToLower(cmd), rest, args)
	case "review":
		s.review(args)

	case "orders":
		s.myOrders()
	case "track":
		s.track(rest)
	case "admin":
		s.adminCommand(args, rest)

	default:
		s.fail(fmt.Sprintf("Unknown command %q. Type 'help'.", cmd))
	}
	return nil
}

func (s *shell) help() {
	s.printf(`Catalog:   home | products | view | show <id> | search <text> | brand <name> | ram <gb> | storage <gb>
           color <name> | camera <spec> | battery <spec> | rating <min> | discount <pct>
           price <max> | price <min> <max> | clear <kind> [value] | reset
           page <n> | next | prev | compare <id> <id> | finder <budget> <use> [brand]
Cart:      add <id> | remove <id> | qty <id> <n> | cart | wish <id> | wishlist | move <id>
           checkout <address>|<city>|<state>|<zip>|<phone>
Account:   login <email> <password> | logout | signup <name>|<email>|<password>|<confirm>
           forgot <email> <new password> | password <old> <new> <confirm>
           profile | profile set <field>=<value> ... | avatar <image file> | nav
Orders:    orders | track <order id> | review <id> <stars> [comment]
Admin:     admin orders | admin status <order id> <status> | admin add <k>=<v>;...
Other:     stats | help | quit
`)
}

// --- catalog ---

func (s *shell) loadProducts() {
	gen := s.app.Browser.Mount()
	s.printf("Loading products...")

	s.async(func(ctx context.Context) func() {
		products, err := s.app.Catalog.Load(ctx)
		return func() {
			if !s.app.Browser.Loaded(gen, products, err) {
				logger.FromCtx(ctx).Debug("dropped stale catalog load", zap.Uint64("gen", gen))
				return
			}
			if err != nil {
				s.fail("Failed to load products")
				return
			}
			s.renderView()
		}
	})
}

// home shows the latest arrivals without opening the catalog view.
func (s *shell) home() {
	s.printf("Loading latest arrivals...")
	s.async(func(ctx context.Context) func() {
		latest, err := s.app.Latest(ctx)
		return func() {
			if err != nil {
				s.fail("Failed to load products")
				return
			}
			if len(latest) == 0 {
				s.printf("\nNo products yet.\n")
				return
			}
			s.printf("\nTrending Now\n")
			for _, p := range latest {
				s.renderRow(p)
			}
		}
	})
}

func (s *shell) requireMounted() bool {
	if !s.app.Browser.Mounted() {
		s.fail("Open the catalog first with 'products'")
		return false
	}
	return true
}

func (s *shell) filterCommand(cmd, rest string, args []string) {
	b := s.app.Browser
	if cmd != "search" && !s.requireMounted() {
		return
	}

	var err error
	switch cmd {
	case "search":
		s.app.SetSearch(rest)
	case "brand":
		b.ToggleBrand(rest)
	case "color":
		b.ToggleColor(rest)
	case "camera":
		b.ToggleCamera(rest)
	case "battery":
		b.ToggleBattery(rest)
	case "ram", "storage":
		var gb int
		if gb, err = intArg(args, 0); err == nil {
			if cmd == "ram" {
				b.ToggleRAM(gb)
			} else {
				b.ToggleStorage(gb)
			}
		}
	case "rating":
		var r float64
		if r, err = floatArg(args, 0); err == nil {
			b.SetMinRating(r)
		}
	case "discount":
		var pct int
		if pct, err = intArg(args, 0); err == nil {
			b.SetMinDiscount(pct)
		}
	case "price":
		err = s.price(args)
	case "clear":
		if len(args) == 0 {
			err = errors.New("usage: clear <kind> [value]")
			break
		}
		err = b.ClearFilter(catalog.FilterKind(strings.ToLower(args[0])), strings.Join(args[1:], " "))
	case "reset":
		b.Reset()
	case "page":
		var n int
		if n, err = intArg(args, 0); err == nil {
			err = b.GoTo(n)
		}
	case "next":
		if !b.Next() {
			err = errors.New("already on the last page")
		}
	case "prev":
		if !b.Prev() {
			err = errors.New("already on the first page")
		}
	}

	if err != nil {
		s.fail(err.Error())
		return
	}
	if b.Mounted() {
		s.renderView()
	}
}

func (s *shell) price(args []string) error {
	switch len(args) {
	case 1:
		hi, err := floatArg(args, 0)
		if err != nil {
			return err
		}
		return s.app.Browser.SetPriceMax(hi)
	case 2:
		lo, err := floatArg(args, 0)
		if err != nil {
			return err
		}
		hi, err := floatArg(args, 1)
		if err != nil {
			return err
		}
		return s.app.Browser.SetPriceRange(lo, hi)
	}
	return errors.New("usage: price <max> | price <min> <max>")
}

func (s *shell) showProduct(args []string) {
	if len(args) != 1 {
		s.fail("usage: show <id>")
		return
	}
	p, err := s.app.Product(args[0])
	if err != nil {
		s.fail("Product not found")
		return
	}
	s.renderProduct(p)
}

func (s *shell) compare(args []string) {
	if len(args) != 2 {
		s.fail("usage: compare <id> <id>")
		return
	}
	rows, err := s.app.Compare(args[0], args[1])
	if err != nil {
		if errors.Is(err, product.ErrSameProduct) {
			s.fail("Pick two different phones")
			return
		}
		s.fail("Load the catalog and pick two phones to compare")
		return
	}
	s.renderCompare(rows)
}

func (s *shell) finder(args []string) {
	if len(args) < 2 {
		s.fail("usage: finder <any|low|mid|high> <all|gaming|camera|battery> [brand]")
		return
	}
	budget, err := catalog.ParseBudget(args[0])
	if err != nil {
		s.fail(err.Error())
		return
	}
	use, err := catalog.ParseUseCase(args[1])
	if err != nil {
		s.fail(err.Error())
		return
	}
	brand := catalog.AnyBrand
	if len(args) > 2 {
		brand = strings.Join(args[2:], " ")
	}

	picks := s.app.Recommend(catalog.Preferences{Budget: budget, UseCase: use, Brand: brand})
	if len(picks) == 0 {
		s.printf("No phones match. Try widening the budget or brand.\n")
		return
	}
	s.printf("Top picks:\n")
	for _, p := range picks {
		s.renderRow(p)
	}
}

// --- cart ---

func (s *shell) cartCommand(cmd string, args []string) {
	switch cmd {
	case "cart":
		s.renderCart()
		return
	case "wishlist":
		s.renderWishlist()
		return
	}

	if len(args) == 0 {
		s.fail("usage: " + cmd + " <id>")
		return
	}
	id := args[0]

	switch cmd {
	case "remove":
		s.app.Cart.Remove(id)
	case "qty":
		q, err := intArg(args, 1)
		if err != nil {
			s.fail(err.Error())
			return
		}
		s.app.Cart.UpdateQuantity(id, q)
		s.renderCart()
	case "move":
		if !s.app.Wishlist.MoveToCart(id, s.app.Cart) {
			s.fail("Not in your wishlist")
		}
	case "add", "wish":
		p, err := s.app.Product(id)
		if err != nil {
			s.fail("Product not found")
			return
		}
		if cmd == "add" {
			s.app.Cart.Add(p)
		} else {
			s.app.Wishlist.Toggle(p)
		}
	}
}

func (s *shell) checkout(rest string) {
	parts := splitPipe(rest)
	if len(parts) != 5 {
		s.fail("usage: checkout <address>|<city>|<state>|<zip>|<phone>")
		return
	}
	shipping := order.ShippingInfo{Address: parts[0], City: parts[1], State: parts[2], Zip: parts[3], Phone: parts[4]}
	items := s.app.Cart.Items()

	if s.checkoutPending || s.app.Orders.CheckoutInProgress() {
		s.fail(order.UserMessage(order.ErrCheckoutInProgress))
		return
	}
	s.checkoutPending = true
	s.printf("Placing order...")

	s.async(func(ctx context.Context) func() {
		placed, err := s.app.Orders.PlaceOrder(ctx, items, shipping)
		return func() {
			s.checkoutPending = false
			if err != nil {
				s.fail(order.UserMessage(err))
				return
			}
			s.app.Orders.Complete(s.app.Cart, items, placed)
		}
	})
}

// --- account ---

func (s *shell) accountCommand(cmd, rest string, args []string) {
	switch cmd {
	case "login":
		if len(args) != 2 {
			s.fail("usage: login <email> <password>")
			return
		}
		in := user.LoginInput{Email: args[0], Password: args[1]}
		s.call(user.FlowLogin, func(ctx context.Context) error {
			_, err := s.app.Users.Login(ctx, in)
			return err
		})
	case "logout":
		s.call(user.FlowLogin, s.app.Users.Logout)
	case "signup":
		p := splitPipe(rest)
		if len(p) != 4 {
			s.fail("usage: signup <name>|<email>|<password>|<confirm>")
			return
		}
		in := user.RegisterInput{Name: p[0], Email: p[1], Password: p[2], ConfirmPassword: p[3]}
		s.call(user.FlowRegister, func(ctx context.Context) error {
			return s.app.Users.Register(ctx, in)
		})
	case "forgot":
		if len(args) != 2 {
			s.fail("usage: forgot <email> <new password>")
			return
		}
		in := user.ResetPasswordInput{Email: args[0], NewPassword: args[1]}
		s.call(user.FlowForgotPassword, func(ctx context.Context) error {
			return s.app.Users.ForgotPassword(ctx, in)
		})
	case "password":
		if len(args) != 3 {
			s.fail("usage: password <old> <new> <confirm>")
			return
		}
		in := user.PasswordChangeInput{OldPassword: args[0], NewPassword: args[1], ConfirmPassword: args[2]}
		s.call(user.FlowPassword, func(ctx context.Context) error {
			return s.app.Users.ChangePassword(ctx, in)
		})
	case "profile":
		if len(args) > 0 && args[0] == "set" {
			s.updateProfile(args[1:], "")
			return
		}
		s.showProfile()
	case "avatar":
		avatar, err := user.AvatarFromFile(rest)
		if err != nil {
			s.fail(user.UserMessage(user.FlowProfile, err))
			return
		}
		s.updateProfile(nil, avatar)
	}
}

// call runs an account action off the loop and reports its error.
func (s *shell) call(flow user.Flow, fn func(ctx context.Context) error) {
	s.async(func(ctx context.Context) func() {
		err := fn(ctx)
		return func() {
			if err != nil {
				s.fail(user.UserMessage(flow, err))
			}
		}
	})
}

func (s *shell) showProfile() {
	s.async(func(ctx context.Context) func() {
		p, err := s.app.Users.Profile(ctx)
		return func() {
			if err != nil {
				s.fail(user.UserMessage(user.FlowProfile, err))
				return
			}
			s.renderProfile(p)
		}
	})
}

func (s *shell) updateProfile(pairs []string, avatar string) {
	s.async(func(ctx context.Context) func() {
		p, err := s.app.Users.Profile(ctx)
		if err == nil {
			if err = applyProfileFields(&p, pairs); err == nil {
				if avatar != "" {
					p.Avatar = avatar
				}
				_, err = s.app.Users.UpdateProfile(ctx, p)
			}
		}
		return func() {
			if err != nil {
				s.fail(user.UserMessage(user.FlowProfile, err))
			}
		}
	})
}

func applyProfileFields(p *user.Profile, pairs []string) error {
	for _, kv := range pairs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("%w: expected field=value, got %q", user.ErrInvalidInput, kv)
		}
		v = strings.ReplaceAll(v, "_", " ")
		switch strings.ToLower(k) {
		case "name":
			p.Name = v
		case "email":
			p.Email = v
		case "street":
			p.Address.Street = v
		case "city":
			p.Address.City = v
		case "state":
			p.Address.State = v
		case "zip":
			p.Address.Zip = v
		case "phone":
			p.Address.Phone = v
		default:
			return fmt.Errorf("%w: unknown field %q", user.ErrInvalidInput, k)
		}
	}
	return nil
}

func (s *shell) review(args []string) {
	if len(args) < 2 {
		s.fail("usage: review <id> <stars> [comment]")
		return
	}
	stars, err := floatArg(args, 1)
	if err != nil {
		s.fail(err.Error())
		return
	}
	id, comment := args[0], strings.Join(args[2:], " ")
	s.async(func(ctx context.Context) func() {
		err := s.app.Review(ctx, id, stars, comment)
		return func() {
			if err != nil {
				s.fail(storefrontMessage(err, "Failed to submit review"))
			}
		}
	})
}

// --- orders ---

func (s *shell) myOrders() {
	s.printf("Loading orders...")
	s.async(func(ctx context.Context) func() {
		orders, err := s.app.Orders.MyOrders(ctx)
		return func() {
			if err != nil {
				s.fail(order.UserMessage(err))
				return
			}
			s.renderOrders(orders, false)
		}
	})
}

func (s *shell) track(raw string) {
	if _, err := order.NormalizeTrackingID(raw); err != nil {
		s.fail(order.UserMessage(err))
		return
	}
	s.printf("Tracking...")
	s.async(func(ctx context.Context) func() {
		o, err := s.app.Orders.Track(ctx, raw)
		return func() {
			if err != nil {
				s.fail(order.UserMessage(err))
				return
			}
			s.app.Notifier.Notify(notify.KindSuccess, "Order Found!")
			s.renderTracking(*o)
		}
	})
}

func (s *shell) adminCommand(args []string, rest string) {
	if !s.app.Session.IsAdmin() {
		s.fail("Admin access required")
		return
	}
	if len(args) == 0 {
		s.fail("usage: admin orders | admin status <order id> <status> | admin add ...")
		return
	}

	switch strings.ToLower(args[0]) {
	case "orders":
		s.adminOrdersCmd()
	case "status":
		if len(args) != 3 {
			s.fail("usage: admin status <order id> <status>")
			return
		}
		s.adminStatus(args[1], args[2])
	case "add":
		_, spec, _ := strings.Cut(rest, " ")
		s.adminAdd(spec)
	default:
		s.fail("Unknown admin command")
	}
}

func (s *shell) adminOrdersCmd() {
	s.async(func(ctx context.Context) func() {
		orders, err := s.app.Orders.AdminOrders(ctx)
		return func() {
			if err != nil {
				s.fail(order.UserMessage(err))
				return
			}
			s.adminOrders = orders
			s.renderOrders(orders, true)
		}
	})
}

func (s *shell) adminStatus(id, status string) {
	id = strings.TrimPrefix(id, "#")
	var target *order.Order
	for i := range s.adminOrders {
		if s.adminOrders[i].ID == id {
			target = &s.adminOrders[i]
			break
		}
	}
	if target == nil {
		s.fail("Run 'admin orders' and pick an order from the list")
		return
	}
	if order.Terminal(target.Status) {
		s.fail("Order already delivered")
		return
	}

	o := *target
	s.async(func(ctx context.Context) func() {
		err := s.app.Orders.UpdateStatus(ctx, o, status)
		return func() {
			if err != nil {
				s.fail(order.UserMessage(err))
				return
			}
			s.app.Notifier.Notify(notify.KindSuccess, "Status updated")
			s.adminOrdersCmd()
		}
	})
}

func (s *shell) adminAdd(spec string) {
	in, err := parseProductInput(spec)
	if err != nil {
		s.fail(err.Error())
		return
	}
	s.async(func(ctx context.Context) func() {
		_, err := s.app.AddProduct(ctx, in)
		return func() {
			if err != nil {
				s.fail(storefrontMessage(err, "Failed to add product."))
			}
		}
	})
}

// --- parsing helpers ---

func splitPipe(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func intArg(args []string, i int) (int, error) {
	if i >= len(args) {
		return 0, errors.New("missing number")
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", args[i])
	}
	return n, nil
}

func floatArg(args []string, i int) (float64, error) {
	if i >= len(args) {
		return 0, errors.New("missing number")
	}
	f, err := strconv.ParseFloat(args[i], 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", args[i])
	}
	return f, nil
}

// parseProductInput reads "key=value; key=value" pairs of the add form.
func parseProductInput(spec string) (product.NewProductInput, error) {
	var in product.NewProductInput
	for _, pair := range strings.Split(spec, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			return in, fmt.Errorf("expected key=value, got %q", pair)
		}
		v = strings.TrimSpace(v)

		var err error
		switch strings.ToLower(strings.TrimSpace(k)) {
		case "name":
			in.Name = v
		case "brand":
			in.Brand = v
		case "price":
			in.Price, err = strconv.ParseFloat(v, 64)
		case "mrp":
			in.MRP, err = strconv.ParseFloat(v, 64)
		case "ram":
			in.RAM, err = strconv.Atoi(v)
		case "storage":
			in.Storage, err = strconv.Atoi(v)
		case "camera":
			in.Camera = v
		case "battery":
			in.Battery = v
		case "image":
			in.Image = v
		case "description":
			in.Description = v
		case "color":
			in.Color = v
		case "display":
			in.Display = v
		default:
			return in, fmt.Errorf("unknown field %q", k)
		}
		if err != nil {
			return in, fmt.Errorf("%s: not a number: %q", k, v)
		}
	}
	return in, nil
}
