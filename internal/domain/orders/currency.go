package orders

import (
	"tracker_orders/internal/domain/entities"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const usdCode = "USD"

// LocalizedAmount is a USD price rendered for display, with its local-currency
// equivalent. LocalText equals USDText when no conversion applies.
type LocalizedAmount struct {
	USDText   string `json:"usdText"`
	LocalText string `json:"localText"`
}

var amountPrinter = message.NewPrinter(language.English)

// FormatWithLocalCurrency converts a USD amount with the rate of the country's
// currency, rounded to whole local units. Countries that use USD, and countries
// missing from the table, get the USD amount unconverted.
func FormatWithLocalCurrency(table entities.CurrencyTable, usdAmount float64, countryCode string) LocalizedAmount {
	usd := decimal.NewFromFloat(usdAmount)
	usdText := amountPrinter.Sprintf("$%.2f %s", usd.Round(2).InexactFloat64(), usdCode)

	cur, ok := table.Lookup(countryCode)
	if !ok || cur.Code == "" || cur.Code == usdCode || cur.Rate <= 0 {
		return LocalizedAmount{USDText: usdText, LocalText: usdText}
	}

	local := usd.Mul(decimal.NewFromFloat(cur.Rate)).Round(0).IntPart()
	return LocalizedAmount{
		USDText:   usdText,
		LocalText: amountPrinter.Sprintf("%s%d %s", cur.Symbol, local, cur.Code),
	}
}
