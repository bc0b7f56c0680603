package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Contract represents a recurring delivery obligation: so many units of a
// product delivered to a destination location every day.
type Contract struct {
	ID              string
	Product         string
	Destination     string
	Client          string
	UnitsPerDay     decimal.Decimal
	Fulfilled       bool
	LastFulfilledAt time.Time // zero when never fulfilled
}

// NewContract creates a contract with a fresh id. Free-text fields are stored
// as entered; partially filled rows are legal and simply ignored by the
// planner until they validate.
func NewContract(product, destination, client string, unitsPerDay decimal.Decimal) *Contract {
	return &Contract{
		ID:          uuid.NewString(),
		Product:     product,
		Destination: destination,
		Client:      client,
		UnitsPerDay: unitsPerDay,
	}
}

// DailyUnits returns the contract's demand rate rounded up to whole units.
func (c *Contract) DailyUnits() int64 {
	return c.UnitsPerDay.Ceil().IntPart()
}

// MarkFulfilled records a fulfillment at the given time.
func (c *Contract) MarkFulfilled(at time.Time) {
	c.Fulfilled = true
	c.LastFulfilledAt = at
}
