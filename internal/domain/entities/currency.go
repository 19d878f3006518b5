package entities

import "strings"

// Currency describes how USD prices are shown to customers of one country.
//
// Rate is the number of local units per 1 USD.
type Currency struct {
	Code   string  `json:"code" koanf:"code"`
	Symbol string  `json:"symbol" koanf:"symbol"`
	Rate   float64 `json:"rate" koanf:"rate"`
}

// CurrencyTable maps an ISO 3166 alpha-2 country code to its currency.
//
// It is read-only configuration; callers pass it explicitly.
type CurrencyTable map[string]Currency

// Lookup returns the currency for a country code, ignoring case and padding.
func (t CurrencyTable) Lookup(country string) (Currency, bool) {
	if t == nil {
		return Currency{}, false
	}
	c, ok := t[strings.ToUpper(strings.TrimSpace(country))]
	return c, ok
}
