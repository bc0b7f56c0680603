package planner

import (
	"github.com/shopspring/decimal"
)

// Reservation-aware shipping math shared by the transport, production,
// purchase and ingredient transport planners. A source location always keeps
// enough of its own material to satisfy its own contracts before anything
// counts as shippable.

// shippableFrom returns the surplus of a material at one location beyond
// that location's own contract reservation. Never negative.
func shippableFrom(stock StockIndex, agg map[DemandKey]int64, material, location string) decimal.Decimal {
	have := stock.At(material, location)
	reserve := fromInt(requiredAt(agg, material, location))
	return maxZero(have.Sub(reserve))
}

// shippableTo sums the reservation-aware surplus of every location other
// than the destination.
func shippableTo(stock StockIndex, agg map[DemandKey]int64, material, dest string) decimal.Decimal {
	total := decimal.Zero
	for _, loc := range stock.Locations(material) {
		if loc == dest {
			continue
		}
		total = total.Add(shippableFrom(stock, agg, material, loc))
	}
	return total
}

// bestSource picks the non-destination location with the largest
// reservation-aware surplus. Locations are scanned name ascending and only a
// strictly larger surplus displaces the incumbent, so equal surpluses
// resolve to the lowest location name.
func bestSource(stock StockIndex, agg map[DemandKey]int64, material, dest string) (string, decimal.Decimal) {
	bestLoc := ""
	bestShip := decimal.Zero
	for _, loc := range stock.Locations(material) {
		if loc == dest {
			continue
		}
		ship := shippableFrom(stock, agg, material, loc)
		if ship.GreaterThan(bestShip) {
			bestShip = ship
			bestLoc = loc
		}
	}
	return bestLoc, bestShip
}
