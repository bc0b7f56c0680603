package entities

import "github.com/shopspring/decimal"

// Contract status values.
const (
	StatusOK    = "OK"
	StatusShort = "SHORT"
)

// ContractStatusRow reports how well one contract is covered by stock already
// at its destination, after allocating that stock across every contract
// competing for it.
type ContractStatusRow struct {
	ID                 string
	Client             string
	Product            string
	Destination        string
	UnitsPerDay        int64
	AvailAtDestination decimal.Decimal // destination stock allocated to this contract
	Missing            decimal.Decimal // allocated shortage for this contract
	DaysCovered        decimal.Decimal // allocated / units per day
	Status             string
}

// TransportRow is a suggested inter-location move of finished product to
// cover a destination shortfall.
type TransportRow struct {
	Material string
	Units    int64
	From     string
	To       string
	Notes    string
}

// ProductionRow is a suggested manufacturing order for a locally makeable
// material, with an input-readiness verdict at the producing base.
type ProductionRow struct {
	Product      string
	UnitsPerDay  int64
	ProduceAt    string
	InputsStatus string
	Notes        string
}

// BuyRow is a suggested market purchase.
type BuyRow struct {
	Material    string
	UnitsPerDay int64
	Notes       string
}

// IngredientTransportRow is a suggested move of a recipe input toward the
// base that needs it to start production.
type IngredientTransportRow struct {
	Ingredient string
	Units      int64
	From       string
	To         string
	Notes      string
}

// PlanResult is the complete output of one planning pass. Rows are derived,
// immutable, and recomputed wholesale every pass.
type PlanResult struct {
	ContractStatus      []ContractStatusRow
	Transport           []TransportRow
	Production          []ProductionRow
	Buy                 []BuyRow
	IngredientTransport []IngredientTransportRow
}
