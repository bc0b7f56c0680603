package planner

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tycoontools/gtplan/pkg/domain/entities"
)

// ComputeProduction suggests manufacturing orders for locally makeable
// materials. Demand that cannot be covered by moving existing stock becomes
// primary production; makeable recipe inputs of that production cascade one
// level into secondary production; each merged order is then checked for
// input readiness at its producing base.
func ComputeProduction(
	contracts []*entities.Contract,
	stock StockIndex,
	makeTable MakeTable,
	recipes RecipeGraph,
) []entities.ProductionRow {
	agg := AggregateDemand(contracts)

	primary := make(map[string]int64)
	reason := make(map[string]string)

	for _, k := range demandKeys(agg) {
		perDay := fromInt(agg[k])
		missing := maxZero(perDay.Sub(stock.At(k.Product, k.Destination)))
		if missing.IsZero() {
			continue
		}
		ship := shippableTo(stock, agg, k.Product, k.Destination)
		need := missing.Sub(ship).Ceil().IntPart()
		if need <= 0 {
			continue
		}
		if !makeTable.IsMakeable(k.Product) {
			continue // the purchase planner claims non-makeable demand
		}
		primary[k.Product] += need
		reason[k.Product] = "Final product for contracts"
	}

	// One cascade level: makeable inputs of the planned production.
	secondary := make(map[string]int64)
	for _, product := range sortedNames(primary) {
		recipe, ok := recipes[product]
		if !ok {
			continue
		}
		qty := primary[product]
		for _, in := range recipe.Inputs {
			if !makeTable.IsMakeable(in.Name) {
				continue
			}
			secondary[in.Name] += ceilDiv(qty, in.Qty, recipe.OutputQty)
			reason[in.Name] = fmt.Sprintf("Ingredient for %s", product)
		}
	}

	plan := make(map[string]int64, len(primary)+len(secondary))
	for mat, qty := range primary {
		plan[mat] = qty
	}
	for mat, qty := range secondary {
		plan[mat] += qty
	}

	rows := make([]entities.ProductionRow, 0, len(plan))
	for _, product := range sortedNames(plan) {
		qty := plan[product]
		base := makeTable.BaseFor(product)
		recipe, hasRecipe := recipes[product]

		var status string
		switch {
		case base == "":
			status = "NO BASE (check Make)"
		case !hasRecipe:
			status = "NO RECIPE (cannot verify inputs)"
		default:
			var short []string
			for _, in := range recipe.Inputs {
				need := ceilDiv(qty, in.Qty, recipe.OutputQty)
				have := stock.At(in.Name, base)
				if have.LessThan(fromInt(need)) {
					short = append(short, fmt.Sprintf("%s (%s/%d)", in.Name, have.String(), need))
				}
			}
			if len(short) == 0 {
				status = "READY"
			} else {
				status = "NEEDS INPUTS: " + strings.Join(short, ", ")
			}
		}

		rows = append(rows, entities.ProductionRow{
			Product:      product,
			UnitsPerDay:  qty,
			ProduceAt:    base,
			InputsStatus: status,
			Notes:        reason[product],
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].UnitsPerDay != rows[j].UnitsPerDay {
			return rows[i].UnitsPerDay > rows[j].UnitsPerDay
		}
		return lessFold(rows[i].Product, rows[j].Product)
	})
	return rows
}
