package market

import (
	"github.com/brinevale/voyager-go/internal/domain/dice"
	"github.com/brinevale/voyager-go/internal/domain/proficiency"
	"github.com/brinevale/voyager-go/internal/domain/world"
)

// CharismaReactionAdjustment maps a captain's CHA to the merchant reaction
// modifier.
func CharismaReactionAdjustment(charisma int) int {
	switch {
	case charisma <= 5:
		return -2
	case charisma <= 8:
		return -1
	case charisma <= 13:
		return 0
	case charisma <= 15:
		return 1
	case charisma <= 17:
		return 2
	default:
		return 3
	}
}

// MerchantCount rolls how many merchants will deal with the ship this
// visit: 1d6 plus the port-size modifier plus the CHA reaction adjustment,
// floored at one.
func MerchantCount(roller *dice.Roller, size world.PortSize, charisma int) int {
	count := roller.Die(6) + size.MerchantModifier() + CharismaReactionAdjustment(charisma)
	if count < 1 {
		count = 1
	}
	return count
}

// MerchantsAvailableThroughWeek returns how many of the visit's merchants
// have shown up by the end of the given week (1-based). Half come the first
// week, a quarter the second, then one more each later week, capped at the
// total.
func MerchantsAvailableThroughWeek(total, week int) int {
	if week < 1 || total < 1 {
		return 0
	}
	available := (total + 1) / 2
	if week >= 2 {
		available += (total + 3) / 4
	}
	if week > 2 {
		available += week - 2
	}
	if available > total {
		available = total
	}
	return available
}

// Offer is one merchant's cargo on the table.
type Offer struct {
	Category world.CargoCategory `json:"category"`
	Loads    int                 `json:"loads"`
	RawRoll  int                 `json:"raw_roll"` // unadjusted 3d6 determination roll
}

// RollOffer determines what a merchant has: a 3d6 determination roll,
// shifted by the port-size modifier and an appraisal read of the market
// (success +1, odd failure -1), clamped to [3,20] and mapped to a category.
// Quantity is 3d8 less the raw roll, floored at one load.
func RollOffer(
	roller *dice.Roller,
	checker *proficiency.Checker,
	size world.PortSize,
	categories []world.CargoCategory,
) (Offer, error) {
	raw := roller.RollN(3, 6)

	appraisal := checker.Check(roller, proficiency.SkillAppraisal, 0)
	adjust := 0
	switch {
	case appraisal.Success:
		adjust = 1
	case appraisal.OddFailure():
		adjust = -1
	}

	adjusted := raw + size.MerchantModifier() + adjust
	if adjusted < 3 {
		adjusted = 3
	}
	if adjusted > 20 {
		adjusted = 20
	}

	category, err := world.CategoryForRoll(categories, adjusted)
	if err != nil {
		return Offer{}, err
	}

	loads := roller.RollN(3, 8) - raw
	if loads < 1 {
		loads = 1
	}
	return Offer{Category: category, Loads: loads, RawRoll: raw}, nil
}

// PurchaseQuote is an offer priced after bargaining.
type PurchaseQuote struct {
	Offer        Offer                   `json:"offer"`
	PricePerLoad int                     `json:"price_per_load"`
	BargainPct   int                     `json:"bargain_pct"` // signed percent applied to base value
	Bargain      proficiency.CheckResult `json:"bargain"`
}

// QuotePurchase prices an offer. Bargaining success discounts five percent
// per point of margin up to five; failure marks the price up the same way;
// no bargaining skill leaves the base price untouched.
func QuotePurchase(roller *dice.Roller, checker *proficiency.Checker, offer Offer) PurchaseQuote {
	bargain := checker.Check(roller, proficiency.SkillBargaining, 0)

	pct := 0
	if bargain.Attempted {
		if bargain.Success {
			margin := bargain.SuccessMargin
			if margin > 5 {
				margin = 5
			}
			pct = -5 * margin
		} else {
			margin := bargain.MissMargin
			if margin > 5 {
				margin = 5
			}
			pct = 5 * margin
		}
	}

	price := offer.Category.BaseValue * (100 + pct) / 100
	if price < 1 {
		price = 1
	}
	return PurchaseQuote{Offer: offer, PricePerLoad: price, BargainPct: pct, Bargain: bargain}
}
