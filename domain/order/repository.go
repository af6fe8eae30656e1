package order

import "context"

// Repository Order ledger interface
// Orders of any item type are stored through their Placed view
type Repository interface {
	// Save Store a placed order; saving the same id again replaces it
	Save(ctx context.Context, order Placed) error

	// FindByID Returns ErrOrderNotFound when absent
	FindByID(ctx context.Context, id int64) (Placed, error)

	// List All orders in the order they were first saved
	List(ctx context.Context) ([]Placed, error)
}
