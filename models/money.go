package models

import "github.com/shopspring/decimal"

// Amounts travel as JSON numbers, e.g. "monthlyRent":1450.75, as the Colten API sends them.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}
