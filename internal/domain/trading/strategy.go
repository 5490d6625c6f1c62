package trading

import "fmt"

// BuyOffer is a merchant's offer under consideration.
type BuyOffer struct {
	PricePerLoad   int
	BaseValue      int
	LoadsAvailable int
}

// BuyContext is everything the buy rule needs: the offer, the ship's room,
// the treasury, and the cumulative distances to every downstream port.
type BuyContext struct {
	Offer               BuyOffer
	ShipCapacity        int
	Treasury            int
	DownstreamDistances []int // cumulative miles to each remaining port
}

// BuyDecision is the strategy's answer to an offer.
type BuyDecision struct {
	Accept   bool
	MaxLoads int
	Reason   string
}

// bestSaleDistance is the greatest cumulative distance to any downstream
// port, capped once it clears the extraordinary threshold.
func bestSaleDistance(distances []int) int {
	best := 0
	for _, d := range distances {
		if d > best {
			best = d
		}
	}
	if best > 500 {
		return 501
	}
	return best
}

// affordableLoads caps a purchase so that reservePercent of the treasury
// stays untouched.
func affordableLoads(treasury, price, reservePercent int) int {
	if price <= 0 {
		return 0
	}
	spendable := treasury * (100 - reservePercent) / 100
	return spendable / price
}

// DecideBuy applies the speculation buy rules over the remaining legs.
func DecideBuy(ctx BuyContext) BuyDecision {
	if len(ctx.DownstreamDistances) == 0 {
		return BuyDecision{Reason: "Final port; no market left to sell in"}
	}
	if ctx.Offer.BaseValue <= 0 || ctx.Offer.PricePerLoad <= 0 {
		return BuyDecision{Reason: "Offer priced at nothing"}
	}

	best := bestSaleDistance(ctx.DownstreamDistances)
	priceRatio := float64(ctx.Offer.PricePerLoad) / float64(ctx.Offer.BaseValue)
	expectedProfit := ExpectedProfitPerLoad(ctx.Offer.BaseValue, ctx.Offer.PricePerLoad, best)

	if priceRatio > 1.10 && expectedProfit < 0 {
		return BuyDecision{Reason: fmt.Sprintf(
			"Overpriced at %d%% of base with no expected profit", int(priceRatio*100))}
	}

	accept := func(reservePercent int, reason string) BuyDecision {
		max := ctx.ShipCapacity
		if ctx.Offer.LoadsAvailable < max {
			max = ctx.Offer.LoadsAvailable
		}
		if affordable := affordableLoads(ctx.Treasury, ctx.Offer.PricePerLoad, reservePercent); affordable < max {
			max = affordable
		}
		if max <= 0 {
			return BuyDecision{Reason: "Cannot afford a single load at the reserve"}
		}
		return BuyDecision{Accept: true, MaxLoads: max, Reason: reason}
	}

	switch {
	case best > 500:
		return accept(20, "Extraordinary distance, guaranteed +4")
	case best < 250:
		if priceRatio <= 0.85 {
			return accept(50, "Cheap enough to carry a short haul")
		}
		return BuyDecision{Reason: "Short haul; price not low enough"}
	default:
		if priceRatio <= 1.0 || expectedProfit > 0 {
			return accept(30, "Fair price for a medium haul")
		}
		return BuyDecision{Reason: "Medium haul; no expected profit"}
	}
}

// SellContext describes cargo held at a port call.
type SellContext struct {
	AtFinalPort        bool
	DistanceTraveled   int // miles carried since purchase
	DistanceToNextPort int // miles to the next port on the route, 0 at final
}

// SellDecision is the strategy's answer for held cargo.
type SellDecision struct {
	Sell   bool
	Reason string
}

// DecideSell applies the hold/sell rules for cargo in the hold.
func DecideSell(ctx SellContext) SellDecision {
	if ctx.AtFinalPort {
		return SellDecision{Sell: true, Reason: "Final port; everything goes ashore"}
	}

	current := DistanceBonus(ctx.DistanceTraveled)
	future := DistanceBonus(ctx.DistanceTraveled + ctx.DistanceToNextPort)

	// Waiting is worth it when the next leg promises the extraordinary
	// bonus, or at least a two-step improvement.
	if current < 4 && future >= 4 {
		return SellDecision{Reason: "Holding for the extraordinary distance bonus"}
	}
	if future >= current+2 {
		return SellDecision{Reason: "Holding; the next leg improves the distance bonus"}
	}

	if current >= 2 {
		return SellDecision{Sell: true, Reason: "Good distance bonus in hand"}
	}
	return SellDecision{Sell: true, Reason: "No improvement coming; freeing the hold"}
}

// DecideWait says whether to sit in port for a better market week: waiting
// pays when a fifteen-percent saving on a full hold beats one and a half
// weeks of wait costs.
func DecideWait(fullHoldValue, weeklyWaitCost int) bool {
	return fullHoldValue*15/100 > weeklyWaitCost*3/2
}
