package calc

import "github.com/shopspring/decimal"

// DiscountPercent reports the saving between the original and current price
// as a whole percentage, rounded. Zero original price yields 0.
func DiscountPercent(price, originalPrice decimal.Decimal) int64 {
	if originalPrice.IsZero() {
		return 0
	}
	return originalPrice.Sub(price).
		Div(originalPrice).
		Mul(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}
