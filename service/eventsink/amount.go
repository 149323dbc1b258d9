package eventsink

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// displayAmount scales a raw currency amount by the currency decimals.
func displayAmount(v *big.Int, decimals int32) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(v, -decimals)
}
