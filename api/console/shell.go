/*
Package console - 交互式文本菜单

职责:
 1. 读取并校验用户输入，无法解析的值替换为默认值（价格 5，周期 Monthly）
 2. 调用应用服务处理业务逻辑
 3. 打印目录、订单描述和下单确认
*/
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	catalogapp "bookshop/application/catalog"
	orderapp "bookshop/application/order"
	"bookshop/domain/catalog"
	"bookshop/domain/order"
	"bookshop/domain/shared"
	"bookshop/pkg/errors"
	"bookshop/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Config Shell dependencies
type Config struct {
	Catalog  *catalogapp.ApplicationService
	Orders   *orderapp.ApplicationService
	Currency string
	In       io.Reader
	Out      io.Writer
}

// Shell Interactive menu over the catalog and order services
type Shell struct {
	catalog   *catalogapp.ApplicationService
	orders    *orderapp.ApplicationService
	currency  string
	in        *bufio.Scanner
	out       io.Writer
	sessionID string
	log       *zap.Logger
}

// NewShell Create a shell with a fresh session id
func NewShell(cfg Config) *Shell {
	sessionID := uuid.NewString()
	return &Shell{
		catalog:   cfg.Catalog,
		orders:    cfg.Orders,
		currency:  cfg.Currency,
		in:        bufio.NewScanner(cfg.In),
		out:       cfg.Out,
		sessionID: sessionID,
		log:       logger.WithSessionID(sessionID).With(zap.String("module", "console")),
	}
}

// SessionID Identifier attached to every log line of this shell
func (s *Shell) SessionID() string {
	return s.sessionID
}

// Run Serve the menu until the user quits, the input ends or ctx is done
func (s *Shell) Run(ctx context.Context) error {
	ctx = logger.ContextWithSessionID(ctx, s.sessionID)
	s.println("===== Bookshop Ordering System =====")
	s.log.Info("session started")
	defer s.log.Info("session ended")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printMenu()
		choice, ok := s.prompt("\nYour choice: ")
		if !ok {
			break
		}

		s.log.Debug("menu command", zap.String("choice", choice))
		switch choice {
		case "1":
			s.showCatalog(ctx)
		case "2":
			ok = s.addPublication(ctx)
		case "3":
			ok = s.addPeriodical(ctx)
		case "4":
			ok = s.placeOrder(ctx)
		case "5":
			s.showOrders(ctx)
		case "0":
			s.println("\nThank you for using our ordering system. Goodbye!")
			return nil
		default:
			s.println("Invalid option, please try again.")
		}
		if !ok {
			break
		}
	}

	if err := s.in.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	s.println("\nThank you for using our ordering system. Goodbye!")
	return nil
}

func (s *Shell) printMenu() {
	s.println("\nMain menu:")
	s.println("1. Show catalog")
	s.println("2. Add new book")
	s.println("3. Add new periodical")
	s.println("4. Place order")
	s.println("5. Show orders")
	s.println("0. Quit")
}

func (s *Shell) showCatalog(ctx context.Context) {
	items, err := s.catalog.ListItems(ctx)
	if err != nil {
		s.println(s.renderError("show_catalog", err))
		return
	}

	s.println("\n=== CATALOG ===")
	for i, item := range items {
		s.printf("%d. %s\n", i+1, item.Description)
	}
}

// readPublication Prompts shared by books and periodicals; ok is false on end of input
func (s *Shell) readPublication() (req catalogapp.AddPublicationRequest, ok bool) {
	if req.ISBN, ok = s.prompt("ISBN: "); !ok {
		return req, false
	}
	if req.Title, ok = s.prompt("Title: "); !ok {
		return req, false
	}
	if req.Publisher, ok = s.prompt("Publisher: "); !ok {
		return req, false
	}
	text, ok := s.prompt("Price: ")
	if !ok {
		return req, false
	}

	price, err := shared.ParseMoney(text, s.currency)
	if err != nil {
		price = shared.NewMoney(catalog.MinPrice, s.currency)
	}
	req.Price = price.Amount()
	return req, true
}

func (s *Shell) addPublication(ctx context.Context) bool {
	s.println("\nEnter the details of the new book:")
	req, ok := s.readPublication()
	if !ok {
		return false
	}

	if _, err := s.catalog.AddPublication(ctx, req); err != nil {
		s.println(s.renderError("add_publication", err))
		return true
	}
	s.println("Book added successfully!")
	return true
}

func (s *Shell) addPeriodical(ctx context.Context) bool {
	s.println("\nEnter the details of the new periodical:")
	base, ok := s.readPublication()
	if !ok {
		return false
	}
	periodicity, ok := s.prompt("Periodicity (0=Daily, 1=Weekly, 2=Monthly): ")
	if !ok {
		return false
	}

	req := catalogapp.AddPeriodicalRequest{AddPublicationRequest: base, Periodicity: periodicity}
	if _, err := s.catalog.AddPeriodical(ctx, req); err != nil {
		s.println(s.renderError("add_periodical", err))
		return true
	}
	s.println("Periodical added successfully!")
	return true
}

func (s *Shell) placeOrder(ctx context.Context) bool {
	items, err := s.catalog.ListItems(ctx)
	if err != nil {
		s.println(s.renderError("place_order", err))
		return true
	}

	s.println("\n=== NEW ORDER ===")
	s.println("Choose a product from the catalog (number):")
	for i, item := range items {
		s.printf("%d. %s - %s\n", i+1, item.Title, shared.NewMoney(item.Price, item.Currency))
	}

	text, ok := s.prompt("")
	if !ok {
		return false
	}
	index, err := strconv.Atoi(text)
	if err != nil || index < 1 || index > len(items) {
		s.println("Invalid selection.")
		return true
	}
	selected := items[index-1]

	text, ok = s.prompt("Quantity: ")
	if !ok {
		return false
	}
	quantity, err := strconv.Atoi(text)
	if err != nil || quantity <= 0 {
		s.println("Invalid quantity.")
		return true
	}

	req := orderapp.PlaceOrderRequest{ISBN: selected.ISBN, Quantity: quantity}
	if selected.Kind == string(catalog.KindPeriodical) {
		months, ok := s.readSubscription()
		if !ok {
			return false
		}
		req.SubscriptionMonths = months
	}

	resp, err := s.orders.PlaceOrder(ctx, req, s.printConfirmation)
	if err != nil {
		s.println(s.renderError("place_order", err))
		if !errors.Is(err, errors.CodeNotificationFailed) {
			return true
		}
	}
	s.log.Info("order command completed", zap.Int64("order_id", resp.ID))
	return true
}

// readSubscription Returns nil months unless the user confirms a positive length
func (s *Shell) readSubscription() (*int, bool) {
	answer, ok := s.prompt("Is this a subscription? (Y/N): ")
	if !ok {
		return nil, false
	}
	if strings.ToUpper(answer) != "Y" {
		return nil, true
	}

	text, ok := s.prompt("Subscription length in months: ")
	if !ok {
		return nil, false
	}
	months, err := strconv.Atoi(text)
	if err != nil || months <= 0 {
		return nil, true
	}
	return &months, true
}

func (s *Shell) printConfirmation(event *order.PlacedEvent) {
	s.println("\n=== ORDER CONFIRMATION ===")
	s.printf("Product: %s\n", event.ItemTitle())
	s.printf("Quantity: %d\n", event.Quantity())
	s.printf("Total price: %s\n", event.Total())
	s.println("=============================")
}

func (s *Shell) showOrders(ctx context.Context) {
	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		s.println(s.renderError("show_orders", err))
		return
	}

	s.println("\n=== PLACED ORDERS ===")
	if len(orders) == 0 {
		s.println("No orders have been placed yet.")
		return
	}
	for _, o := range orders {
		s.println(o.Description)
		s.println("-------------------------")
	}
}

// prompt Write label and read one trimmed line; false at end of input
func (s *Shell) prompt(label string) (string, bool) {
	if label != "" {
		fmt.Fprint(s.out, label)
	}
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Shell) println(line string) {
	fmt.Fprintln(s.out, line)
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
