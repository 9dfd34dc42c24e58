package repository

import "github.com/shopspring/decimal"

// currencyPlaces is the precision every persisted money amount is rounded to.
const currencyPlaces = 2

// unitPriceAfterDiscount applies the item's discount percentage to its base
// price and rounds to currency precision. A zero (or negative) discount
// leaves the base price untouched apart from rounding.
func unitPriceAfterDiscount(price, discountPct float64) float64 {
	p := decimal.NewFromFloat(price)
	if discountPct > 0 {
		factor := decimal.NewFromInt(1).Sub(
			decimal.NewFromFloat(discountPct).Div(decimal.NewFromInt(100)))
		p = p.Mul(factor)
	}
	f, _ := p.Round(currencyPlaces).Float64()
	return f
}

// lineTotal multiplies a rounded unit price by quantity, keeping currency
// precision.
func lineTotal(unitPrice float64, quantity int) float64 {
	t := decimal.NewFromFloat(unitPrice).Mul(decimal.NewFromInt(int64(quantity)))
	f, _ := t.Round(currencyPlaces).Float64()
	return f
}

// sumTotals adds line totals without accumulating float drift.
func sumTotals(totals []float64) float64 {
	sum := decimal.Zero
	for _, t := range totals {
		sum = sum.Add(decimal.NewFromFloat(t))
	}
	f, _ := sum.Round(currencyPlaces).Float64()
	return f
}
