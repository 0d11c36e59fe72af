package checkout

import "github.com/shopspring/decimal"

var (
	freeShippingOver = decimal.NewFromInt(5000)
	flatShippingFee  = decimal.NewFromInt(100)
)

// Quote applies the shipping rule to a subtotal: delivery is free above
// 5000, otherwise a flat 100 applies.
func Quote(subtotal decimal.Decimal) (fee, total decimal.Decimal) {
	fee = flatShippingFee
	if subtotal.GreaterThan(freeShippingOver) {
		fee = decimal.Zero
	}
	return fee, subtotal.Add(fee)
}
