package memory

import (
	"context"
	"fmt"
	"testing"

	"bookshop/domain/catalog"
	"bookshop/domain/order"
	"bookshop/domain/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestCatalogRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogRepository(catalog.DemoItems("EUR")...)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	extra := catalog.NewPublication("978-9", "Extra", "Pub", shared.NewMoney(900, "EUR"))
	require.NoError(t, repo.Add(ctx, extra))

	err = repo.Add(ctx, catalog.NewPublication("978-9", "Other", "Pub", shared.NewMoney(900, "EUR")))
	assert.ErrorIs(t, err, catalog.ErrDuplicateISBN)

	var nilItem *catalog.Periodical
	assert.ErrorIs(t, repo.Add(ctx, nilItem), catalog.ErrNilItem)

	found, err := repo.FindByISBN(ctx, "978-9")
	require.NoError(t, err)
	assert.Same(t, extra, found)

	_, err = repo.FindByISBN(ctx, "missing")
	assert.ErrorIs(t, err, catalog.ErrItemNotFound)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 5)
	assert.Equal(t, "De Kleine Prins", items[0].Title())
	assert.Equal(t, "Extra", items[4].Title(), "insertion order")
}

func TestCatalogRepositoryConcurrentAdd(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogRepository()

	var g errgroup.Group
	for i := 0; i < 50; i++ {
		i := i
		g.Go(func() error {
			// every ISBN is attempted twice; exactly one attempt wins
			isbn := fmt.Sprintf("isbn-%d", i%25)
			_ = repo.Add(ctx, catalog.NewPublication(isbn, "t", "p", shared.NewMoney(600, "EUR")))
			return nil
		})
	}
	require.NoError(t, g.Wait())

	count, _ := repo.Count(ctx)
	assert.Equal(t, 25, count)
}

func TestOrderRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository()
	ids := order.NewSequence(0)

	book := catalog.NewPublication("978-1", "Book", "Pub", shared.NewMoney(1000, "EUR"))
	magazine := catalog.NewPeriodical("977-1", "Mag", "Pub", shared.NewMoney(600, "EUR"), catalog.Weekly)

	first, err := order.New(ids, order.PostOptions[*catalog.Publication]{Item: book, Quantity: 1})
	require.NoError(t, err)
	second, err := order.New(ids, order.PostOptions[*catalog.Periodical]{Item: magazine, Quantity: 2, Subscription: order.SubscriptionFor(3)})
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))
	require.NoError(t, repo.Save(ctx, first), "saving again replaces in place")
	assert.Error(t, repo.Save(ctx, nil))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(1), list[0].ID())
	assert.Equal(t, int64(2), list[1].ID())

	found, err := repo.FindByID(ctx, 2)
	require.NoError(t, err)
	months, ok := found.Subscription().Months()
	assert.True(t, ok)
	assert.Equal(t, 3, months)
	assert.IsType(t, &catalog.Periodical{}, found.CatalogItem())

	_, err = repo.FindByID(ctx, 99)
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
}
