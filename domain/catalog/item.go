/*
Package catalog Catalog subdomain - sellable publications

The catalog holds exactly two kinds of items: plain publications (books) and
periodicals. They form a closed set: Item is sealed by an unexported method, so
every type switch over Item only needs the *Publication and *Periodical cases.

Invariants:
 1. The price of every item lies in [MinPrice, MaxPrice] after construction and after
    every SetPrice call; out-of-range input is repaired, never rejected
 2. Items are handled by pointer; orders keep a reference, not a copy
*/
package catalog

import (
	"fmt"

	"bookshop/domain/shared"
)

// Price bounds in minor currency units (5.00 and 50.00)
const (
	MinPrice int64 = 500
	MaxPrice int64 = 5000
)

// Kind Item variant tag, used where the concrete type is not at hand (DTOs, logs)
type Kind string

const (
	KindPublication Kind = "PUBLICATION"
	KindPeriodical  Kind = "PERIODICAL"
)

// Item A sellable catalog entry: *Publication or *Periodical
type Item interface {
	shared.Entity[string]

	ISBN() string
	Title() string
	Publisher() string
	Price() shared.Money
	SetPrice(price shared.Money)
	Kind() Kind
	Describe() string

	sealed()
}

// Publication Plain publication (book)
type Publication struct {
	isbn      string
	title     string
	publisher string
	price     shared.Money
}

// NewPublication Create a publication; the price is clamped into [MinPrice, MaxPrice]
func NewPublication(isbn, title, publisher string, price shared.Money) *Publication {
	p := &Publication{
		isbn:      isbn,
		title:     title,
		publisher: publisher,
	}
	p.SetPrice(price)
	return p
}

// SetPrice Store the price clamped into [MinPrice, MaxPrice]
func (p *Publication) SetPrice(price shared.Money) {
	p.price = price.Clamp(MinPrice, MaxPrice)
}

func (p *Publication) SetTitle(title string)         { p.title = title }
func (p *Publication) SetPublisher(publisher string) { p.publisher = publisher }

func (p *Publication) Identity() string    { return p.isbn }
func (p *Publication) ISBN() string        { return p.isbn }
func (p *Publication) Title() string       { return p.title }
func (p *Publication) Publisher() string   { return p.publisher }
func (p *Publication) Price() shared.Money { return p.price }
func (p *Publication) Kind() Kind          { return KindPublication }
func (p *Publication) sealed()             {}

// Describe One-line human readable summary
func (p *Publication) Describe() string {
	return fmt.Sprintf("ISBN: %s, Title: %s, Publisher: %s, Price: %s",
		p.isbn, p.title, p.publisher, p.price)
}

// Compile-time check that *Publication is a catalog item
var _ Item = (*Publication)(nil)

// IsNil Reports whether item is nil or a typed nil pointer
func IsNil(item Item) bool {
	switch it := item.(type) {
	case nil:
		return true
	case *Publication:
		return it == nil
	case *Periodical:
		return it == nil
	default:
		return false
	}
}
