package main

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tycoontools/gtplan/pkg/domain/entities"
	"github.com/tycoontools/gtplan/pkg/planner"
)

func main() {
	// Two bases and a hauler. Base A owes clients Iron and Alloy; Alloy is
	// produced at Base B from Iron and Coal.
	contracts := []*entities.Contract{
		entities.NewContract("Iron", "Base A", "Acme Shipping", decimal.NewFromInt(100)),
		entities.NewContract("Alloy", "Base A", "Orbital Freight", decimal.NewFromInt(10)),
	}

	observations := []entities.StockObservation{
		{Kind: entities.LocationBase, Location: "Base A", Material: "Iron", Amount: decimal.NewFromInt(40)},
		{Kind: entities.LocationBase, Location: "Base B", Material: "Iron", Amount: decimal.NewFromInt(120)},
		{Kind: entities.LocationBase, Location: "Base B", Material: "Coal", Amount: decimal.NewFromInt(15)},
		{Kind: entities.LocationShip, Location: "Hauler One", Material: "Alloy", Amount: decimal.NewFromInt(4)},
	}

	makeRows := []entities.MakeRow{
		{Material: "Alloy", Base: "Base B"},
	}

	recipeLines := []entities.RecipeLine{
		{Output: "Alloy", OutputQty: 1, Input: "Iron", InputQty: 2},
		{Output: "Alloy", OutputQty: 1, Input: "Coal", InputQty: 3},
	}

	result := planner.Plan(contracts, observations, makeRows, recipeLines)

	fmt.Println("Contract status:")
	for _, row := range result.ContractStatus {
		fmt.Printf("  %s -> %s: %d/day, %s days covered, %s\n",
			row.Product, row.Destination, row.UnitsPerDay, row.DaysCovered.StringFixed(2), row.Status)
	}

	fmt.Println("\nTransport:")
	for _, row := range result.Transport {
		fmt.Printf("  %d %s from %s to %s\n", row.Units, row.Material, row.From, row.To)
	}

	fmt.Println("\nProduction:")
	for _, row := range result.Production {
		fmt.Printf("  %d %s at %s (%s)\n", row.UnitsPerDay, row.Product, row.ProduceAt, row.InputsStatus)
	}

	fmt.Println("\nBuy:")
	for _, row := range result.Buy {
		fmt.Printf("  %d %s (%s)\n", row.UnitsPerDay, row.Material, row.Notes)
	}

	fmt.Println("\nIngredient transport:")
	for _, row := range result.IngredientTransport {
		fmt.Printf("  %d %s from %s to %s\n", row.Units, row.Ingredient, row.From, row.To)
	}
}
