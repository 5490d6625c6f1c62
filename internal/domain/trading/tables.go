// Package trading holds the pure buy/sell/hold decision rules the automated
// trader follows. Nothing here rolls dice or touches state; decisions are
// deterministic functions of their inputs.
package trading

// DistanceBonus returns the sale modifier for the distance a cargo has been
// carried. Monotone non-decreasing in distance.
func DistanceBonus(miles int) int {
	switch {
	case miles > 500:
		return 4
	case miles > 250:
		return 2
	case miles > 80:
		return 0
	default:
		return -1
	}
}

// DistanceCategory names the bracket a carried distance falls in.
type DistanceCategory string

const (
	DistanceShort         DistanceCategory = "SHORT"
	DistanceMedium        DistanceCategory = "MEDIUM"
	DistanceLong          DistanceCategory = "LONG"
	DistanceExtraordinary DistanceCategory = "EXTRAORDINARY"
)

// Bonus returns the sale modifier for the category.
func (c DistanceCategory) Bonus() int {
	switch c {
	case DistanceExtraordinary:
		return 4
	case DistanceLong:
		return 2
	case DistanceShort:
		return -1
	default:
		return 0
	}
}

// PerishThresholdMiles is the carried distance beyond which cargo sold under
// this category risks spoilage. Extraordinary never spoils by distance.
func (c DistanceCategory) PerishThresholdMiles() int {
	switch c {
	case DistanceShort:
		return 80
	case DistanceMedium:
		return 250
	case DistanceLong:
		return 500
	default:
		return 1 << 30
	}
}

// Next returns the following category, saturating at Extraordinary.
func (c DistanceCategory) Next() DistanceCategory {
	switch c {
	case DistanceShort:
		return DistanceMedium
	case DistanceMedium:
		return DistanceLong
	default:
		return DistanceExtraordinary
	}
}

// saleAdjustmentTable maps an SA roll of 3..20 to a percent of base value.
var saleAdjustmentTable = map[int]int{
	3: 30, 4: 40, 5: 50, 6: 60, 7: 70, 8: 80, 9: 90,
	10: 100, 11: 110, 12: 120, 13: 130, 14: 140, 15: 150, 16: 160,
	17: 180, 18: 200, 19: 300, 20: 400,
}

// SaleAdjustmentPercent looks up the Sale-Adjustment table. Rolls below 3
// clamp to 30%, above 20 to 400%.
func SaleAdjustmentPercent(saRoll int) int {
	if saRoll < 3 {
		return 30
	}
	if saRoll > 20 {
		return 400
	}
	return saleAdjustmentTable[saRoll]
}

// mean3d6 is the expected 3d6 determination roll, rounded down.
const mean3d6 = 10

// ExpectedSalePercent estimates the sale percent of base value for cargo
// carried the given distance, assuming average dice and neutral demand.
func ExpectedSalePercent(miles int) int {
	return SaleAdjustmentPercent(mean3d6 + DistanceBonus(miles))
}

// ExpectedProfitPerLoad estimates profit per load when buying at the given
// price and selling after carrying the cargo the given distance.
func ExpectedProfitPerLoad(baseValue, pricePerLoad, saleDistanceMiles int) int {
	return baseValue*ExpectedSalePercent(saleDistanceMiles)/100 - pricePerLoad
}
