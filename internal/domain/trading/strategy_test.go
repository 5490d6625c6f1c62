package trading_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brinevale/voyager-go/internal/domain/trading"
)

func TestDistanceBonus(t *testing.T) {
	assert.Equal(t, -1, trading.DistanceBonus(80))
	assert.Equal(t, 0, trading.DistanceBonus(81))
	assert.Equal(t, 0, trading.DistanceBonus(250))
	assert.Equal(t, 2, trading.DistanceBonus(251))
	assert.Equal(t, 2, trading.DistanceBonus(500))
	assert.Equal(t, 4, trading.DistanceBonus(501))
}

func TestDistanceBonus_Monotone(t *testing.T) {
	previous := trading.DistanceBonus(0)
	for miles := 1; miles <= 1000; miles++ {
		current := trading.DistanceBonus(miles)
		assert.GreaterOrEqual(t, current, previous, "miles %d", miles)
		previous = current
	}
}

func TestSaleAdjustmentPercent(t *testing.T) {
	assert.Equal(t, 30, trading.SaleAdjustmentPercent(3))
	assert.Equal(t, 100, trading.SaleAdjustmentPercent(10))
	assert.Equal(t, 140, trading.SaleAdjustmentPercent(14))
	assert.Equal(t, 180, trading.SaleAdjustmentPercent(17))
	assert.Equal(t, 400, trading.SaleAdjustmentPercent(20))

	// Clamps beyond the table.
	assert.Equal(t, 30, trading.SaleAdjustmentPercent(1))
	assert.Equal(t, 400, trading.SaleAdjustmentPercent(25))
}

func TestSaleAdjustmentPercent_Monotone(t *testing.T) {
	previous := trading.SaleAdjustmentPercent(2)
	for roll := 3; roll <= 21; roll++ {
		current := trading.SaleAdjustmentPercent(roll)
		assert.GreaterOrEqual(t, current, previous, "roll %d", roll)
		previous = current
	}
}

func TestDistanceCategory(t *testing.T) {
	assert.Equal(t, 80, trading.DistanceShort.PerishThresholdMiles())
	assert.Equal(t, 250, trading.DistanceMedium.PerishThresholdMiles())
	assert.Equal(t, 500, trading.DistanceLong.PerishThresholdMiles())
	assert.Equal(t, trading.DistanceMedium, trading.DistanceShort.Next())
	assert.Equal(t, trading.DistanceExtraordinary, trading.DistanceLong.Next())
	assert.Equal(t, trading.DistanceExtraordinary, trading.DistanceExtraordinary.Next())
	assert.Equal(t, 4, trading.DistanceExtraordinary.Bonus())
}

func TestDecideBuy_FinalPortRefuses(t *testing.T) {
	decision := trading.DecideBuy(trading.BuyContext{
		Offer:        trading.BuyOffer{PricePerLoad: 100, BaseValue: 150, LoadsAvailable: 10},
		ShipCapacity: 20,
		Treasury:     5000,
	})

	assert.False(t, decision.Accept)
}

func TestDecideBuy_ExtraordinaryDistance(t *testing.T) {
	decision := trading.DecideBuy(trading.BuyContext{
		Offer:               trading.BuyOffer{PricePerLoad: 140, BaseValue: 150, LoadsAvailable: 30},
		ShipCapacity:        20,
		Treasury:            3500,
		DownstreamDistances: []int{180, 520},
	})

	assert.True(t, decision.Accept)
	// 80% of 3500 = 2800; 2800/140 = 20 loads, capped by capacity anyway.
	assert.Equal(t, 20, decision.MaxLoads)
	assert.Contains(t, decision.Reason, "Extraordinary")
}

func TestDecideBuy_OverpricedRefused(t *testing.T) {
	decision := trading.DecideBuy(trading.BuyContext{
		Offer:               trading.BuyOffer{PricePerLoad: 180, BaseValue: 150, LoadsAvailable: 10},
		ShipCapacity:        20,
		Treasury:            10000,
		DownstreamDistances: []int{120},
	})

	// 120% of base with an expected loss on a short haul.
	assert.False(t, decision.Accept)
}

func TestDecideBuy_ShortHaulNeedsBargain(t *testing.T) {
	ctx := trading.BuyContext{
		Offer:               trading.BuyOffer{PricePerLoad: 130, BaseValue: 150, LoadsAvailable: 10},
		ShipCapacity:        20,
		Treasury:            10000,
		DownstreamDistances: []int{200},
	}

	// 86% of base: not cheap enough for a short haul.
	assert.False(t, trading.DecideBuy(ctx).Accept)

	ctx.Offer.PricePerLoad = 127 // 84%
	decision := trading.DecideBuy(ctx)
	assert.True(t, decision.Accept)
	// 50% reserve: 5000/127 = 39, capped at available 10.
	assert.Equal(t, 10, decision.MaxLoads)
}

func TestDecideBuy_MediumHaul(t *testing.T) {
	decision := trading.DecideBuy(trading.BuyContext{
		Offer:               trading.BuyOffer{PricePerLoad: 150, BaseValue: 150, LoadsAvailable: 40},
		ShipCapacity:        25,
		Treasury:            3000,
		DownstreamDistances: []int{300},
	})

	assert.True(t, decision.Accept)
	// 70% of 3000 = 2100; 2100/150 = 14 loads.
	assert.Equal(t, 14, decision.MaxLoads)
}

func TestDecideBuy_CannotAffordReserve(t *testing.T) {
	decision := trading.DecideBuy(trading.BuyContext{
		Offer:               trading.BuyOffer{PricePerLoad: 600, BaseValue: 1000, LoadsAvailable: 5},
		ShipCapacity:        20,
		Treasury:            700,
		DownstreamDistances: []int{600},
	})

	// 80% of 700 = 560, under one load's price.
	assert.False(t, decision.Accept)
}

func TestDecideSell_FinalPortAlwaysSells(t *testing.T) {
	decision := trading.DecideSell(trading.SellContext{AtFinalPort: true, DistanceTraveled: 40})
	assert.True(t, decision.Sell)
}

func TestDecideSell_HoldsForExtraordinary(t *testing.T) {
	decision := trading.DecideSell(trading.SellContext{
		DistanceTraveled:   400,
		DistanceToNextPort: 150,
	})

	// +2 now, +4 after the next leg.
	assert.False(t, decision.Sell)
}

func TestDecideSell_HoldsForTwoStepImprovement(t *testing.T) {
	decision := trading.DecideSell(trading.SellContext{
		DistanceTraveled:   100, // bonus 0
		DistanceToNextPort: 200, // bonus +2 after
	})

	assert.False(t, decision.Sell)
}

func TestDecideSell_SellsOnGoodBonus(t *testing.T) {
	decision := trading.DecideSell(trading.SellContext{
		DistanceTraveled:   300,
		DistanceToNextPort: 100, // stays +2
	})

	assert.True(t, decision.Sell)
}

func TestDecideSell_FreesHoldWhenNothingComing(t *testing.T) {
	decision := trading.DecideSell(trading.SellContext{
		DistanceTraveled:   60, // bonus -1
		DistanceToNextPort: 10, // still -1
	})

	assert.True(t, decision.Sell)
}

func TestDecideWait(t *testing.T) {
	// 15% of 4000 = 600 against 1.5 * 300 = 450: wait.
	assert.True(t, trading.DecideWait(4000, 300))
	// 15% of 1000 = 150 against 450: sail.
	assert.False(t, trading.DecideWait(1000, 300))
}

func TestExpectedProfitPerLoad(t *testing.T) {
	// Carried 520 miles: SA 10+4 = 14 -> 140% of 150 = 210.
	assert.Equal(t, 70, trading.ExpectedProfitPerLoad(150, 140, 520))
	// Short haul: SA 10-1 = 9 -> 90% of 150 = 135.
	assert.Equal(t, -5, trading.ExpectedProfitPerLoad(150, 140, 80))
}
