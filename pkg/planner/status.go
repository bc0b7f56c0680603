package planner

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tycoontools/gtplan/pkg/domain/entities"
)

// ComputeContractStatus reports per-contract coverage from stock already at
// each contract's destination. Contracts competing for the same (product,
// destination) stock are allocated greedily in ascending id order, so
// results do not jump around between refreshes. Rows come back most-missing
// first, then by product name.
func ComputeContractStatus(contracts []*entities.Contract, stock StockIndex) []entities.ContractStatusRow {
	groups := make(map[DemandKey][]*entities.Contract)
	for _, c := range contracts {
		product := norm(c.Product)
		dest := norm(c.Destination)
		if product == "" || dest == "" || c.UnitsPerDay.Ceil().IntPart() <= 0 {
			continue
		}
		k := DemandKey{Product: product, Destination: dest}
		groups[k] = append(groups[k], c)
	}

	keys := make([]DemandKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sortDemandKeys(keys)

	out := make([]entities.ContractStatusRow, 0, len(contracts))

	for _, k := range keys {
		group := append([]*entities.Contract(nil), groups[k]...)
		sort.Slice(group, func(i, j int) bool { return group[i].ID < group[j].ID })

		remaining := stock.At(k.Product, k.Destination)

		for _, c := range group {
			perDay := c.UnitsPerDay.Ceil().IntPart()
			need := fromInt(perDay)

			allocated := maxZero(decimal.Min(remaining, need))
			remaining = maxZero(remaining.Sub(allocated))

			missing := maxZero(need.Sub(allocated))
			daysCovered := decimal.Zero
			if perDay > 0 {
				daysCovered = allocated.Div(need)
			}

			status := entities.StatusOK
			if !missing.IsZero() {
				status = entities.StatusShort
			}

			out = append(out, entities.ContractStatusRow{
				ID:                 c.ID,
				Client:             norm(c.Client),
				Product:            k.Product,
				Destination:        k.Destination,
				UnitsPerDay:        perDay,
				AvailAtDestination: allocated,
				Missing:            missing,
				DaysCovered:        daysCovered,
				Status:             status,
			})
		}
	}

	// Most missing first, then product. The fixed emission order above
	// settles any remaining ties.
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Missing.Equal(out[j].Missing) {
			return out[i].Missing.GreaterThan(out[j].Missing)
		}
		return lessFold(out[i].Product, out[j].Product)
	})
	return out
}
