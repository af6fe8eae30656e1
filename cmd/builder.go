package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"bookshop/api/console"
	catalogapp "bookshop/application/catalog"
	"bookshop/application/notification"
	orderapp "bookshop/application/order"
	"bookshop/config"
	"bookshop/domain/catalog"
	"bookshop/domain/order"
	"bookshop/domain/shared"
	"bookshop/infrastructure/persistence/memory"
	"bookshop/pkg/logger"

	"go.uber.org/zap"
)

// AppBuilder builds an App with customizable components
type AppBuilder struct {
	cfg        *config.Config
	in         io.Reader
	out        io.Writer
	skipLogger bool
	handlers   map[string][]shared.EventHandler
}

// NewBuilder creates a new AppBuilder reading from stdin and writing to stdout
func NewBuilder(cfg *config.Config) *AppBuilder {
	return &AppBuilder{
		cfg:      cfg,
		in:       os.Stdin,
		out:      os.Stdout,
		handlers: make(map[string][]shared.EventHandler),
	}
}

// WithIO replaces the shell's input and output
func (b *AppBuilder) WithIO(in io.Reader, out io.Writer) *AppBuilder {
	b.in = in
	b.out = out
	return b
}

// WithEventHandler subscribes an extra handler to the event bus
func (b *AppBuilder) WithEventHandler(eventName string, h shared.EventHandler) *AppBuilder {
	b.handlers[eventName] = append(b.handlers[eventName], h)
	return b
}

// SkipLoggerInit keeps the logger already installed, e.g. by tests
func (b *AppBuilder) SkipLoggerInit() *AppBuilder {
	b.skipLogger = true
	return b
}

// Build creates the App instance
func (b *AppBuilder) Build() (*App, error) {
	if !b.skipLogger {
		if err := logger.Init(&b.cfg.Log, b.cfg.App.Env); err != nil {
			return nil, fmt.Errorf("failed to initialize logger: %w", err)
		}
	}

	logger.Info("Starting application",
		zap.String("app", b.cfg.App.Name),
		zap.String("version", b.cfg.App.Version),
		zap.String("env", b.cfg.App.Env))

	policy, err := order.ParsePricingPolicy(b.cfg.Pricing.SubscriptionQuantity)
	if err != nil {
		return nil, err
	}

	bus := shared.NewEventBus()
	notifier, err := notification.Register(bus, logger.Get())
	if err != nil {
		return nil, err
	}
	for eventName, handlers := range b.handlers {
		for _, h := range handlers {
			if err := bus.Subscribe(eventName, h); err != nil {
				return nil, fmt.Errorf("subscribe %s to %s: %w", h.Name(), eventName, err)
			}
		}
	}

	catalogRepo, err := b.initCatalog()
	if err != nil {
		return nil, err
	}
	orderRepo := memory.NewOrderRepository()
	ids := order.NewSequence(b.cfg.Orders.FirstID - 1)

	catalogService := catalogapp.NewApplicationService(catalogRepo, bus, b.cfg.Catalog.Currency)
	orderService := orderapp.NewApplicationService(catalogRepo, orderRepo, ids, bus, policy)

	shell := console.NewShell(console.Config{
		Catalog:  catalogService,
		Orders:   orderService,
		Currency: b.cfg.Catalog.Currency,
		In:       b.in,
		Out:      b.out,
	})

	return &App{
		config:   b.cfg,
		bus:      bus,
		notifier: notifier,
		catalog:  catalogService,
		orders:   orderService,
		shell:    shell,
		in:       b.in,
	}, nil
}

func (b *AppBuilder) initCatalog() (*memory.CatalogRepository, error) {
	repo := memory.NewCatalogRepository()
	if !b.cfg.Catalog.SeedDemo {
		return repo, nil
	}

	for _, item := range catalog.DemoItems(b.cfg.Catalog.Currency) {
		if err := repo.Add(context.Background(), item); err != nil {
			return nil, fmt.Errorf("seed catalog: %w", err)
		}
	}
	count, _ := repo.Count(context.Background())
	logger.Info("Catalog seeded with demo items", zap.Int("items", count))
	return repo, nil
}
