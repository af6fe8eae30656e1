package catalog

import "context"

// Repository Catalog collection
// Items are kept in insertion order; the ISBN is the identity
type Repository interface {
	// Add Append an item; returns ErrDuplicateISBN if the ISBN is taken
	Add(ctx context.Context, item Item) error

	// FindByISBN Returns ErrItemNotFound when absent
	FindByISBN(ctx context.Context, isbn string) (Item, error)

	// List All items in insertion order
	List(ctx context.Context) ([]Item, error)

	Count(ctx context.Context) (int, error)
}
