// Package planner derives delivery status, transport, production and
// purchase plans from contracts and a stock snapshot. Every function is a
// pure, deterministic function of its inputs: fresh values in, fresh rows
// out, no I/O and no shared state. Malformed input degrades to "no plan for
// this item" rather than an error.
package planner

import (
	"github.com/tycoontools/gtplan/pkg/domain/entities"
)

// Plan runs the full planning pipeline over one snapshot and returns all
// five row lists. Re-running with identical inputs yields identical output.
func Plan(
	contracts []*entities.Contract,
	observations []entities.StockObservation,
	makeRows []entities.MakeRow,
	recipeLines []entities.RecipeLine,
) *entities.PlanResult {
	stock := BuildStockIndex(observations)
	makeTable := BuildMakeTable(makeRows)
	recipes := BuildRecipeGraph(recipeLines)

	production := ComputeProduction(contracts, stock, makeTable, recipes)

	return &entities.PlanResult{
		ContractStatus:      ComputeContractStatus(contracts, stock),
		Transport:           ComputeTransport(contracts, stock),
		Production:          production,
		Buy:                 ComputeBuy(contracts, stock, makeTable, recipes, production),
		IngredientTransport: ComputeIngredientTransport(stock, contracts, makeTable, recipes, production),
	}
}
