package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"bookshop/domain/shared"
)

// Periodicity How often a periodical is issued
type Periodicity int

const (
	Daily Periodicity = iota
	Weekly
	Monthly
)

// DefaultPeriodicity is used when no (valid) periodicity is supplied
const DefaultPeriodicity = Monthly

// IssuesPerMonth Number of issues a subscriber receives per month.
// Unknown values count as one issue per month.
func (p Periodicity) IssuesPerMonth() int64 {
	switch p {
	case Daily:
		return 30
	case Weekly:
		return 4
	case Monthly:
		return 1
	default:
		return 1
	}
}

func (p Periodicity) String() string {
	switch p {
	case Daily:
		return "Daily"
	case Weekly:
		return "Weekly"
	case Monthly:
		return "Monthly"
	default:
		return "Periodicity(" + strconv.Itoa(int(p)) + ")"
	}
}

// ParsePeriodicity Accepts the menu numbers 0/1/2 or the names daily/weekly/monthly
// (case-insensitive). ok is false for anything else.
func ParsePeriodicity(text string) (p Periodicity, ok bool) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "0", "daily":
		return Daily, true
	case "1", "weekly":
		return Weekly, true
	case "2", "monthly":
		return Monthly, true
	default:
		return DefaultPeriodicity, false
	}
}

// Periodical A publication issued on a recurring schedule; can be subscribed to
type Periodical struct {
	Publication
	periodicity Periodicity
}

// NewPeriodical Create a periodical; the price is clamped like any other item
func NewPeriodical(isbn, title, publisher string, price shared.Money, periodicity Periodicity) *Periodical {
	p := &Periodical{
		Publication: Publication{
			isbn:      isbn,
			title:     title,
			publisher: publisher,
		},
		periodicity: periodicity,
	}
	p.SetPrice(price)
	return p
}

func (p *Periodical) Periodicity() Periodicity               { return p.periodicity }
func (p *Periodical) SetPeriodicity(periodicity Periodicity) { p.periodicity = periodicity }
func (p *Periodical) Kind() Kind                             { return KindPeriodical }

// IssuesPerMonth Shortcut for Periodicity().IssuesPerMonth()
func (p *Periodical) IssuesPerMonth() int64 {
	return p.periodicity.IssuesPerMonth()
}

// Describe Publication summary followed by the periodicity
func (p *Periodical) Describe() string {
	return fmt.Sprintf("%s, Periodicity: %s", p.Publication.Describe(), p.periodicity)
}

var _ Item = (*Periodical)(nil)
