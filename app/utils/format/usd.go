package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var usd = accounting.Accounting{Symbol: "$", Precision: 2}

func FormatUSD(amount decimal.Decimal) string {
	return usd.FormatMoneyDecimal(amount)
}
