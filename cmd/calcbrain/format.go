package main

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// format renders a result. Values without a decimal form, NaN and the
// infinities, use strconv.
func format(v float64, ok bool, none string, places int) string {
	if !ok {
		return none
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	d := decimal.NewFromFloat(v)
	if places >= 0 {
		return d.StringFixed(int32(places))
	}
	return d.String()
}
