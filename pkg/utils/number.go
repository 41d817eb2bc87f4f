package utils

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Round arredonda d e converte para float64
func Round(d decimal.Decimal, places int32) float64 {
	return d.Round(places).InexactFloat64()
}

// SafeDiv retorna zero quando o divisor é zero
func SafeDiv(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}

	return num.Div(den)
}

// Percent retorna part/total*100 com as casas informadas; zero quando total é zero
func Percent(part, total decimal.Decimal, places int32) float64 {
	return Round(SafeDiv(part, total).Mul(hundred), places)
}
