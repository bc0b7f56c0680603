package planner

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tycoontools/gtplan/pkg/domain/entities"
)

// StockIndex is a queryable snapshot of on-hand quantities: material ->
// location -> amount. Absent pairs read as zero, never as an error.
type StockIndex struct {
	byMaterial map[string]map[string]decimal.Decimal
}

// BuildStockIndex folds flat stock observations into an index, summing
// duplicate (material, location) pairs. Observations with a blank location,
// blank material or zero amount are skipped.
func BuildStockIndex(observations []entities.StockObservation) StockIndex {
	idx := StockIndex{byMaterial: make(map[string]map[string]decimal.Decimal)}
	for _, o := range observations {
		loc := norm(o.Location)
		mat := norm(o.Material)
		if loc == "" || mat == "" || o.Amount.IsZero() {
			continue
		}
		locs := idx.byMaterial[mat]
		if locs == nil {
			locs = make(map[string]decimal.Decimal)
			idx.byMaterial[mat] = locs
		}
		locs[loc] = locs[loc].Add(o.Amount)
	}
	return idx
}

// At returns the on-hand amount of a material at a location.
func (s StockIndex) At(material, location string) decimal.Decimal {
	return s.byMaterial[material][location]
}

// TotalOf returns the total stock of a material across all locations.
func (s StockIndex) TotalOf(material string) decimal.Decimal {
	total := decimal.Zero
	for _, amt := range s.byMaterial[material] {
		total = total.Add(amt)
	}
	return total
}

// Locations returns the locations holding a material, name ascending. The
// fixed scan order keeps source selection deterministic.
func (s StockIndex) Locations(material string) []string {
	locs := make([]string, 0, len(s.byMaterial[material]))
	for loc := range s.byMaterial[material] {
		locs = append(locs, loc)
	}
	sort.Strings(locs)
	return locs
}
