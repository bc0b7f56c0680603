package planner

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tycoontools/gtplan/pkg/domain/entities"
)

// ComputeBuy suggests market purchases from two accumulators: demand-derived
// buys (contract demand for products nobody makes, plus non-makeable recipe
// inputs of planned production), netted against total global stock; and firm
// production-unblocking buys for inputs short at a producing base that
// cannot be shipped in, added on top without netting.
func ComputeBuy(
	contracts []*entities.Contract,
	stock StockIndex,
	makeTable MakeTable,
	recipes RecipeGraph,
	production []entities.ProductionRow,
) []entities.BuyRow {
	agg := AggregateDemand(contracts)

	demand := make(map[string]int64)   // netted against global stock below
	blocking := make(map[string]int64) // kept firm
	notes := make(map[string][]string)
	addNote := func(mat, note string) {
		for _, n := range notes[mat] {
			if n == note {
				return
			}
		}
		notes[mat] = append(notes[mat], note)
	}

	// Contract demand for products nobody makes, beyond what transport can
	// fully cover.
	for _, k := range demandKeys(agg) {
		if makeTable.IsMakeable(k.Product) {
			continue
		}
		perDay := fromInt(agg[k])
		missing := maxZero(perDay.Sub(stock.At(k.Product, k.Destination)))
		if missing.IsZero() {
			continue
		}
		need := missing.Sub(shippableTo(stock, agg, k.Product, k.Destination)).Ceil().IntPart()
		if need <= 0 {
			continue
		}
		demand[k.Product] += need
		addNote(k.Product, "Final product for contracts")
	}

	// Non-makeable inputs of every planned production order.
	for _, p := range production {
		recipe, ok := recipes[p.Product]
		if !ok {
			continue
		}
		for _, in := range recipe.Inputs {
			if makeTable.IsMakeable(in.Name) {
				continue
			}
			demand[in.Name] += ceilDiv(p.UnitsPerDay, in.Qty, recipe.OutputQty)
			addNote(in.Name, fmt.Sprintf("Ingredient for %s", p.Product))
		}
	}

	// Firm buys that unblock production: an input short at the producing
	// base with too little stock elsewhere to ship in. The coverage check
	// here counts raw stock, with no contract reservations subtracted,
	// unlike the transport planner's.
	for _, p := range production {
		recipe, ok := recipes[p.Product]
		base := norm(p.ProduceAt)
		if !ok || base == "" {
			continue
		}
		for _, in := range recipe.Inputs {
			if makeTable.IsMakeable(in.Name) {
				continue
			}
			need := fromInt(ceilDiv(p.UnitsPerDay, in.Qty, recipe.OutputQty))
			missingAtBase := maxZero(need.Sub(stock.At(in.Name, base)))
			if missingAtBase.IsZero() {
				continue
			}
			if onHandElsewhere(stock, in.Name, base).GreaterThanOrEqual(missingAtBase) {
				continue
			}
			blocking[in.Name] += ceilUnits(missingAtBase)
			addNote(in.Name, fmt.Sprintf("Unblock %s at %s", p.Product, base))
		}
	}

	// Net demand-derived buys against global stock, then add the firm ones
	// on top.
	buy := make(map[string]int64)
	for mat, qty := range demand {
		remaining := fromInt(qty).Sub(stock.TotalOf(mat))
		if remaining.IsPositive() {
			buy[mat] = ceilUnits(remaining)
		}
	}
	for mat, qty := range blocking {
		buy[mat] += qty
	}

	rows := make([]entities.BuyRow, 0, len(buy))
	for _, mat := range sortedNames(buy) {
		rows = append(rows, entities.BuyRow{
			Material:    mat,
			UnitsPerDay: buy[mat],
			Notes:       strings.Join(notes[mat], "; "),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].UnitsPerDay != rows[j].UnitsPerDay {
			return rows[i].UnitsPerDay > rows[j].UnitsPerDay
		}
		return lessFold(rows[i].Material, rows[j].Material)
	})
	return rows
}

// onHandElsewhere sums raw on-hand stock at every location other than base,
// with no reservation subtracted.
func onHandElsewhere(stock StockIndex, material, base string) decimal.Decimal {
	total := decimal.Zero
	for _, loc := range stock.Locations(material) {
		if loc == base {
			continue
		}
		total = total.Add(maxZero(stock.At(material, loc)))
	}
	return total
}
