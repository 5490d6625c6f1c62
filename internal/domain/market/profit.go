package market

// ProfitSplit is how a completed sale's proceeds divide between the
// owner's treasury and the crew's trade earnings.
type ProfitSplit struct {
	Owner int `json:"owner"`
	Crew  int `json:"crew"`
	Gross int `json:"gross"` // sale less purchase and agent fee; may be negative
}

// SplitSpeculation divides a speculation sale. A profitable run returns the
// owner's stake plus half the profit, with the rest going to the crew; a
// loss leaves the crew with nothing and the owner with whatever came back.
func SplitSpeculation(saleTotal, purchaseTotal, agentFee int) ProfitSplit {
	gross := saleTotal - purchaseTotal - agentFee
	if gross <= 0 {
		return ProfitSplit{Owner: saleTotal - agentFee, Gross: gross}
	}
	owner := purchaseTotal + gross/2
	return ProfitSplit{Owner: owner, Crew: saleTotal - agentFee - owner, Gross: gross}
}

// ConsignmentSettlement is the payout of a delivered consignment.
type ConsignmentSettlement struct {
	Commission   int `json:"commission"`    // crew's cut of the sale
	Consignor    int `json:"consignor"`     // remainder owed to the consignor
	TransportFee int `json:"transport_fee"` // full fee for the carriage
	OwnerPayment int `json:"owner_payment"` // second half, paid on delivery
}

// TransportFee prices carrying consigned freight: 40 gp per 500 miles
// (rounded up) per half-load, never under 100.
func TransportFee(distanceMiles, loads int) int {
	fee := (distanceMiles + 499) / 500 * 40 * loads / 2
	if fee < 100 {
		fee = 100
	}
	return fee
}

// SettleConsignment closes out a consignment on delivery. The crew takes
// its commission off the sale, the consignor the rest; the owner collects
// the back half of the transport fee (the front half was advanced at
// origin).
func SettleConsignment(saleTotal, commissionRate, distanceMiles, loads int) ConsignmentSettlement {
	commission := saleTotal * commissionRate / 100
	fee := TransportFee(distanceMiles, loads)
	return ConsignmentSettlement{
		Commission:   commission,
		Consignor:    saleTotal - commission,
		TransportFee: fee,
		OwnerPayment: fee - fee/2,
	}
}
