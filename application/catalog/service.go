// Package catalog Application Layer - catalog maintenance
package catalog

import (
	"context"

	"bookshop/domain/catalog"
	"bookshop/domain/shared"
	"bookshop/pkg/logger"

	"go.uber.org/zap"
)

// ApplicationService Catalog application service
type ApplicationService struct {
	repo     catalog.Repository
	bus      shared.DomainEventPublisher
	currency string
}

// NewApplicationService Create catalog application service; bus may be nil
func NewApplicationService(repo catalog.Repository, bus shared.DomainEventPublisher, currency string) *ApplicationService {
	return &ApplicationService{
		repo:     repo,
		bus:      bus,
		currency: currency,
	}
}

// AddPublication Add a book to the catalog
func (s *ApplicationService) AddPublication(ctx context.Context, req AddPublicationRequest) (*ItemResponse, error) {
	price := shared.NewMoney(req.Price, s.currency)
	item := catalog.NewPublication(req.ISBN, req.Title, req.Publisher, price)
	if err := s.add(ctx, item, price); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// AddPeriodical Add a periodical to the catalog.
// An unrecognised periodicity falls back to catalog.DefaultPeriodicity.
func (s *ApplicationService) AddPeriodical(ctx context.Context, req AddPeriodicalRequest) (*ItemResponse, error) {
	periodicity, ok := catalog.ParsePeriodicity(req.Periodicity)
	if !ok {
		logger.FromContext(ctx).Debug("unknown periodicity, using default",
			zap.String("periodicity", req.Periodicity),
			zap.Stringer("default", catalog.DefaultPeriodicity),
		)
	}

	price := shared.NewMoney(req.Price, s.currency)
	item := catalog.NewPeriodical(req.ISBN, req.Title, req.Publisher, price, periodicity)
	if err := s.add(ctx, item, price); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

func (s *ApplicationService) add(ctx context.Context, item catalog.Item, requested shared.Money) error {
	if err := s.repo.Add(ctx, item); err != nil {
		return err
	}

	log := logger.FromContext(ctx)
	if !item.Price().Equals(requested) {
		log.Info("price adjusted into allowed range",
			zap.String("isbn", item.ISBN()),
			zap.String("requested", requested.String()),
			zap.String("stored", item.Price().String()),
		)
	}
	log.Info("catalog item added",
		zap.String("isbn", item.ISBN()),
		zap.String("kind", string(item.Kind())),
		zap.String("price", item.Price().String()),
	)

	if s.bus == nil {
		return nil
	}
	// 事件处理失败不影响目录写入
	if err := s.bus.Publish(catalog.NewItemAddedEvent(item)); err != nil {
		log.Warn("catalog item added event not delivered",
			zap.String("isbn", item.ISBN()),
			zap.Error(err),
		)
	}
	return nil
}

// GetItem Get a catalog item by ISBN
func (s *ApplicationService) GetItem(ctx context.Context, isbn string) (*ItemResponse, error) {
	item, err := s.repo.FindByISBN(ctx, isbn)
	if err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// ListItems Get all catalog items in insertion order
func (s *ApplicationService) ListItems(ctx context.Context) ([]*ItemResponse, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*ItemResponse, len(items))
	for i, item := range items {
		responses[i] = toItemResponse(item)
	}
	return responses, nil
}

func toItemResponse(item catalog.Item) *ItemResponse {
	resp := &ItemResponse{
		ISBN:        item.ISBN(),
		Title:       item.Title(),
		Publisher:   item.Publisher(),
		Kind:        string(item.Kind()),
		Price:       item.Price().Amount(),
		Currency:    item.Price().Currency(),
		Description: item.Describe(),
	}
	if p, ok := item.(*catalog.Periodical); ok {
		resp.Periodicity = p.Periodicity().String()
	}
	return resp
}
