package catalog

import "bookshop/domain/shared"

// DemoItems The starter catalog: two books and two periodicals
func DemoItems(currency string) []Item {
	return []Item{
		NewPublication("978-0-306-40615-7", "De Kleine Prins", "Uitgeverij J.M. Meulenhoff", shared.NewMoney(1299, currency)),
		NewPublication("978-3-16-148410-0", "Honderd jaar eenzaamheid", "De Geus", shared.NewMoney(1850, currency)),
		NewPeriodical("977-1234-56789", "Wetenschap & Leven", "Sanoma Media", shared.NewMoney(695, currency), Monthly),
		NewPeriodical("977-9876-54321", "De Volkskrant", "DPG Media", shared.NewMoney(250, currency), Daily),
	}
}
