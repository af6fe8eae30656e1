package memory

import (
	"context"

	"bookshop/domain/catalog"
)

// CatalogRepository In-memory implementation of catalog.Repository
type CatalogRepository struct {
	items *ledger[string, catalog.Item]
}

// NewCatalogRepository Create catalog repository, optionally pre-filled
func NewCatalogRepository(seed ...catalog.Item) *CatalogRepository {
	repo := &CatalogRepository{items: newLedger[string, catalog.Item]()}
	for _, item := range seed {
		repo.items.insert(item)
	}
	return repo
}

func (r *CatalogRepository) Add(ctx context.Context, item catalog.Item) error {
	if catalog.IsNil(item) {
		return catalog.ErrNilItem
	}
	if !r.items.insert(item) {
		return catalog.NewDuplicateISBNError(item.ISBN())
	}
	return nil
}

func (r *CatalogRepository) FindByISBN(ctx context.Context, isbn string) (catalog.Item, error) {
	item, ok := r.items.get(isbn)
	if !ok {
		return nil, catalog.NewItemNotFoundError(isbn)
	}
	return item, nil
}

func (r *CatalogRepository) List(ctx context.Context) ([]catalog.Item, error) {
	return r.items.all(), nil
}

func (r *CatalogRepository) Count(ctx context.Context) (int, error) {
	return r.items.len(), nil
}

// Compile-time interface implementation check
var _ catalog.Repository = (*CatalogRepository)(nil)
