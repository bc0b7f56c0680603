package entities

import "github.com/shopspring/decimal"

// LocationKind identifies what holds a stock observation.
type LocationKind int

const (
	LocationBase LocationKind = iota
	LocationShip
	LocationMarket
)

// String returns the human-readable kind name.
func (k LocationKind) String() string {
	switch k {
	case LocationBase:
		return "Base"
	case LocationShip:
		return "Ship"
	case LocationMarket:
		return "Market"
	default:
		return "Unknown"
	}
}

// StockObservation is a single (location, material, amount) reading from a
// stock snapshot. Snapshots are rebuilt wholesale on every refresh and
// superseded entirely, never merged incrementally.
type StockObservation struct {
	Kind     LocationKind
	Location string
	Material string
	Amount   decimal.Decimal
}
