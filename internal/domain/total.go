package domain

import "github.com/shopspring/decimal"

// LineTotal computes (price - price*discount/100) * quantity for one item.
func LineTotal(price, discount float64, quantity int) decimal.Decimal {
	p := decimal.NewFromFloat(price)
	d := decimal.NewFromFloat(discount)
	unit := p.Sub(p.Mul(d).Div(decimal.NewFromInt(100)))
	return unit.Mul(decimal.NewFromInt(int64(quantity)))
}

// BookingTotal sums the line totals and rounds to 2 places. This is the
// authoritative total; the caller-declared figure is only sanity-checked.
func BookingTotal(items []BookingItem) float64 {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(LineTotal(it.Price, it.Discount, it.Quantity))
	}
	f, _ := sum.Round(2).Float64()
	return f
}
