package catalog

import (
	"errors"
	"testing"

	"bookshop/domain/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func eur(amount int64) shared.Money {
	return shared.NewMoney(amount, "EUR")
}

func TestSetPriceClamps(t *testing.T) {
	tests := []struct {
		name  string
		price int64
		want  int64
	}{
		{"below minimum", 250, 500},
		{"zero", 0, 500},
		{"negative", -1000, 500},
		{"minimum", 500, 500},
		{"in range", 1299, 1299},
		{"maximum", 5000, 5000},
		{"above maximum", 5001, 5000},
		{"far above maximum", 100000, 5000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPublication("isbn", "title", "publisher", eur(tt.price))
			assert.Equal(t, tt.want, p.Price().Amount())

			p.SetPrice(eur(tt.price))
			assert.Equal(t, tt.want, p.Price().Amount())
		})
	}
}

func TestSetPriceProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		price := rapid.Int64().Draw(t, "price")
		periodicity := Periodicity(rapid.IntRange(-1, 5).Draw(t, "periodicity"))

		items := []Item{
			NewPublication("isbn", "t", "p", eur(price)),
			NewPeriodical("isbn", "t", "p", eur(price), periodicity),
		}
		for _, item := range items {
			got := item.Price().Amount()
			if got < MinPrice || got > MaxPrice {
				t.Fatalf("%T price %d out of range for input %d", item, got, price)
			}
			if price >= MinPrice && price <= MaxPrice && got != price {
				t.Fatalf("%T in-range price %d changed to %d", item, price, got)
			}
		}
	})
}

func TestIssuesPerMonth(t *testing.T) {
	tests := []struct {
		periodicity Periodicity
		want        int64
	}{
		{Daily, 30},
		{Weekly, 4},
		{Monthly, 1},
		{Periodicity(7), 1},
		{Periodicity(-1), 1},
	}

	for _, tt := range tests {
		p := NewPeriodical("isbn", "t", "p", eur(1000), tt.periodicity)
		if got := p.IssuesPerMonth(); got != tt.want {
			t.Errorf("%v.IssuesPerMonth() = %d, want %d", tt.periodicity, got, tt.want)
		}
	}
	t.Log("✓ Issues per month mapping passed")
}

func TestParsePeriodicity(t *testing.T) {
	tests := []struct {
		text   string
		want   Periodicity
		wantOK bool
	}{
		{"0", Daily, true},
		{"1", Weekly, true},
		{"2", Monthly, true},
		{"daily", Daily, true},
		{" Weekly ", Weekly, true},
		{"MONTHLY", Monthly, true},
		{"", Monthly, false},
		{"3", Monthly, false},
		{"fortnightly", Monthly, false},
	}

	for _, tt := range tests {
		got, ok := ParsePeriodicity(tt.text)
		assert.Equal(t, tt.want, got, "ParsePeriodicity(%q)", tt.text)
		assert.Equal(t, tt.wantOK, ok, "ParsePeriodicity(%q) ok", tt.text)
	}
}

func TestDescribe(t *testing.T) {
	book := NewPublication("978-0-306-40615-7", "De Kleine Prins", "Uitgeverij J.M. Meulenhoff", eur(1299))
	assert.Equal(t,
		"ISBN: 978-0-306-40615-7, Title: De Kleine Prins, Publisher: Uitgeverij J.M. Meulenhoff, Price: €12.99",
		book.Describe())

	magazine := NewPeriodical("977-1234-56789", "Wetenschap & Leven", "Sanoma Media", eur(695), Weekly)
	assert.Equal(t,
		"ISBN: 977-1234-56789, Title: Wetenschap & Leven, Publisher: Sanoma Media, Price: €6.95, Periodicity: Weekly",
		magazine.Describe())

	assert.Equal(t, "Periodicity(9)", Periodicity(9).String())
}

func TestItemVariants(t *testing.T) {
	items := DemoItems("EUR")
	require.Len(t, items, 4)

	kinds := map[Kind]int{}
	for _, item := range items {
		kinds[item.Kind()]++
		assert.Equal(t, item.ISBN(), item.Identity())
	}
	assert.Equal(t, 2, kinds[KindPublication])
	assert.Equal(t, 2, kinds[KindPeriodical])

	// The demo daily newspaper is listed below the minimum price
	volkskrant, ok := items[3].(*Periodical)
	require.True(t, ok)
	assert.Equal(t, int64(MinPrice), volkskrant.Price().Amount())
	assert.Equal(t, Daily, volkskrant.Periodicity())
}

func TestItemsAreShared(t *testing.T) {
	p := NewPeriodical("isbn", "title", "publisher", eur(1000), Monthly)
	var held Item = p

	p.SetPrice(eur(2000))
	p.SetPeriodicity(Daily)
	p.SetTitle("renamed")

	assert.Equal(t, int64(2000), held.Price().Amount())
	assert.Equal(t, "renamed", held.Title())
	assert.Equal(t, int64(30), held.(*Periodical).IssuesPerMonth())
}

func TestIsNil(t *testing.T) {
	var pub *Publication
	var per *Periodical

	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(pub))
	assert.True(t, IsNil(per))
	assert.False(t, IsNil(NewPublication("", "", "", eur(0))))
}

func TestCatalogErrors(t *testing.T) {
	err := NewItemNotFoundError("123")
	assert.True(t, errors.Is(err, ErrItemNotFound))
	assert.True(t, errors.Is(err, shared.ErrNotFound))
	assert.Contains(t, err.Error(), "123")

	var stacker shared.Stacker
	require.True(t, errors.As(err, &stacker))
	assert.NotEmpty(t, stacker.Stack())

	err = NewDuplicateISBNError("123")
	assert.True(t, errors.Is(err, ErrDuplicateISBN))
	assert.True(t, errors.Is(err, shared.ErrConflict))
	assert.False(t, errors.Is(err, shared.ErrNotFound))
}

func TestItemAddedEvent(t *testing.T) {
	item := NewPeriodical("977-1", "Title", "Pub", eur(700), Weekly)
	event := NewItemAddedEvent(item)

	require.NoError(t, shared.ValidateEvent(event))
	assert.Equal(t, EventItemAdded, event.EventName())
	assert.Equal(t, "977-1", event.GetAggregateID())
	assert.Equal(t, KindPeriodical, event.Kind())
	assert.NotEmpty(t, event.EventID())
}
