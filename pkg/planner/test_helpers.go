package planner

import (
	"github.com/shopspring/decimal"

	"github.com/tycoontools/gtplan/pkg/domain/entities"
)

// Test fixtures shared by the planner tests. Quantities are given as strings
// so fractional rates read the same way they are entered.

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testContract(id, product, destination, perDay string) *entities.Contract {
	return &entities.Contract{
		ID:          id,
		Product:     product,
		Destination: destination,
		Client:      "Test Client",
		UnitsPerDay: decimal.RequireFromString(perDay),
	}
}

func testStock(location, material, amount string) entities.StockObservation {
	return entities.StockObservation{
		Location: location,
		Material: material,
		Amount:   decimal.RequireFromString(amount),
	}
}

func testRecipe(output string, outputQty int64, inputs ...entities.RecipeInput) RecipeGraph {
	return RecipeGraph{
		output: entities.Recipe{Output: output, OutputQty: outputQty, Inputs: inputs},
	}
}

func input(name string, qty int64) entities.RecipeInput {
	return entities.RecipeInput{Name: name, Qty: qty}
}

func makeTableOf(pairs ...string) MakeTable {
	t := make(MakeTable)
	for i := 0; i+1 < len(pairs); i += 2 {
		t[pairs[i]] = pairs[i+1]
	}
	return t
}
