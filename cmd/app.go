package cmd

import (
	"context"
	"errors"
	"io"

	"bookshop/api/console"
	catalogapp "bookshop/application/catalog"
	"bookshop/application/notification"
	orderapp "bookshop/application/order"
	"bookshop/config"
	"bookshop/domain/shared"
	"bookshop/pkg/logger"

	"go.uber.org/zap"
)

// App wired bookshop application
type App struct {
	config   *config.Config
	bus      *shared.EventBus
	notifier *notification.OrderPlacedHandler
	catalog  *catalogapp.ApplicationService
	orders   *orderapp.ApplicationService
	shell    *console.Shell
	in       io.Reader
}

// Run serves the shell until the user quits, the input ends or ctx is cancelled.
// On cancel the input is closed when it is an io.Closer so the pending read
// unblocks; otherwise the shell goroutine stays parked in that read and Run
// returns without it, which is only safe when the process exits right after.
func (a *App) Run(ctx context.Context) error {
	defer func() { _ = logger.Sync() }()

	done := make(chan error, 1)
	go func() {
		done <- a.shell.Run(ctx)
	}()

	var err error
	select {
	case err = <-done:
	case <-ctx.Done():
		err = ctx.Err()
	}
	if ctx.Err() != nil {
		logger.Warn("Shell interrupted", zap.Error(context.Cause(ctx)))
		if c, ok := a.in.(io.Closer); ok {
			_ = c.Close()
		}
	}

	logger.Info("Application stopped",
		zap.Int64("notifications_delivered", a.notifier.Delivered()),
		zap.Int("events_published", len(a.bus.GetPublishHistory())),
	)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		logger.Error("Shell stopped with error", zap.Error(err))
	}
	return err
}

func (a *App) Config() *config.Config                     { return a.config }
func (a *App) Catalog() *catalogapp.ApplicationService    { return a.catalog }
func (a *App) Orders() *orderapp.ApplicationService       { return a.orders }
func (a *App) Notifier() *notification.OrderPlacedHandler { return a.notifier }
