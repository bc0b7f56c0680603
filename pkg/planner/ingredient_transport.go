package planner

import (
	"fmt"
	"sort"

	"github.com/tycoontools/gtplan/pkg/domain/entities"
)

// ComputeIngredientTransport suggests moving recipe inputs toward the bases
// that need them to start planned production. A makeable input may only come
// from its own producing base, and only when that base's reservation-aware
// surplus covers the whole deficit right now. A buy input may come from the
// best single source under the same all-or-nothing rule as finished-product
// transport.
func ComputeIngredientTransport(
	stock StockIndex,
	contracts []*entities.Contract,
	makeTable MakeTable,
	recipes RecipeGraph,
	production []entities.ProductionRow,
) []entities.IngredientTransportRow {
	agg := AggregateDemand(contracts)

	var moves []move
	for _, p := range production {
		base := norm(p.ProduceAt)
		recipe, ok := recipes[p.Product]
		if base == "" || !ok || p.UnitsPerDay <= 0 {
			continue
		}
		for _, in := range recipe.Inputs {
			need := fromInt(ceilDiv(p.UnitsPerDay, in.Qty, recipe.OutputQty))
			missing := maxZero(need.Sub(stock.At(in.Name, base)))
			if missing.IsZero() {
				continue
			}
			note := fmt.Sprintf("Transport to unlock %s production", p.Product)

			if makeTable.IsMakeable(in.Name) {
				src := makeTable.BaseFor(in.Name)
				if src == "" || src == base {
					continue
				}
				if shippableFrom(stock, agg, in.Name, src).GreaterThanOrEqual(missing) {
					moves = append(moves, move{
						Material: in.Name,
						From:     src,
						To:       base,
						Units:    ceilUnits(missing),
						Notes:    note,
					})
				}
				continue
			}

			if shippableTo(stock, agg, in.Name, base).LessThan(missing) {
				continue
			}
			src, ship := bestSource(stock, agg, in.Name, base)
			if src == "" || !ship.IsPositive() {
				continue
			}
			moves = append(moves, move{
				Material: in.Name,
				From:     src,
				To:       base,
				Units:    ceilUnits(missing),
				Notes:    note,
			})
		}
	}

	netted := netOpposingMoves(moves)

	rows := make([]entities.IngredientTransportRow, 0, len(netted))
	for _, m := range netted {
		rows = append(rows, entities.IngredientTransportRow{
			Ingredient: m.Material,
			Units:      m.Units,
			From:       m.From,
			To:         m.To,
			Notes:      m.Notes,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Units != rows[j].Units {
			return rows[i].Units > rows[j].Units
		}
		return lessFold(rows[i].Ingredient, rows[j].Ingredient)
	})
	return rows
}
