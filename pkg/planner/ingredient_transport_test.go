package planner

import (
	"testing"

	"github.com/tycoontools/gtplan/pkg/domain/entities"
)

func TestComputeIngredientTransport_MakeableInputFromItsOwnBase(t *testing.T) {
	production := []entities.ProductionRow{
		{Product: "Alloy", UnitsPerDay: 10, ProduceAt: "Base B"},
	}
	makeTable := makeTableOf("Alloy", "Base B", "Iron", "Base C")
	recipes := testRecipe("Alloy", 1, input("Iron", 2))
	stock := BuildStockIndex([]entities.StockObservation{
		testStock("Base C", "Iron", "50"),
		testStock("Base D", "Iron", "500"), // bigger, but not Iron's producing base
	})

	rows := ComputeIngredientTransport(stock, nil, makeTable, recipes, production)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}

	r := rows[0]
	if r.Ingredient != "Iron" || r.Units != 20 || r.From != "Base C" || r.To != "Base B" {
		t.Errorf("row = %+v, want 20 Iron from Base C to Base B", r)
	}
	if r.Notes != "Transport to unlock Alloy production" {
		t.Errorf("Notes = %q", r.Notes)
	}
}

func TestComputeIngredientTransport_MakeableInputAllOrNothing(t *testing.T) {
	// Iron's producing base holds only 15 against a deficit of 20: no
	// partial move, and no fallback to other locations.
	production := []entities.ProductionRow{
		{Product: "Alloy", UnitsPerDay: 10, ProduceAt: "Base B"},
	}
	makeTable := makeTableOf("Alloy", "Base B", "Iron", "Base C")
	recipes := testRecipe("Alloy", 1, input("Iron", 2))
	stock := BuildStockIndex([]entities.StockObservation{
		testStock("Base C", "Iron", "15"),
		testStock("Base D", "Iron", "500"),
	})

	if rows := ComputeIngredientTransport(stock, nil, makeTable, recipes, production); len(rows) != 0 {
		t.Errorf("got %d rows, want 0: %+v", len(rows), rows)
	}
}

func TestComputeIngredientTransport_MakeableInputSameBaseSkipped(t *testing.T) {
	// The ingredient is made where it is consumed: nothing to move.
	production := []entities.ProductionRow{
		{Product: "Alloy", UnitsPerDay: 10, ProduceAt: "Base B"},
	}
	makeTable := makeTableOf("Alloy", "Base B", "Iron", "Base B")
	recipes := testRecipe("Alloy", 1, input("Iron", 2))
	stock := BuildStockIndex([]entities.StockObservation{
		testStock("Base C", "Iron", "500"),
	})

	if rows := ComputeIngredientTransport(stock, nil, makeTable, recipes, production); len(rows) != 0 {
		t.Errorf("got %d rows, want 0: %+v", len(rows), rows)
	}
}

func TestComputeIngredientTransport_BuyInputFromBestSource(t *testing.T) {
	production := []entities.ProductionRow{
		{Product: "Alloy", UnitsPerDay: 10, ProduceAt: "Base B"},
	}
	makeTable := makeTableOf("Alloy", "Base B")
	recipes := testRecipe("Alloy", 1, input("Iron", 2))
	stock := BuildStockIndex([]entities.StockObservation{
		testStock("Base B", "Iron", "4"),
		testStock("Base C", "Iron", "30"),
		testStock("Base D", "Iron", "10"),
	})

	rows := ComputeIngredientTransport(stock, nil, makeTable, recipes, production)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}

	// Deficit is 16; Base C has the most shippable stock.
	r := rows[0]
	if r.Units != 16 || r.From != "Base C" || r.To != "Base B" {
		t.Errorf("row = %+v, want 16 from Base C to Base B", r)
	}
}

func TestComputeIngredientTransport_BuyInputRespectsReservations(t *testing.T) {
	// Base C holds 30 Iron but owes 25 to its own contract; total shippable
	// (5 + 10) cannot cover the deficit of 16.
	contracts := []*entities.Contract{
		testContract("c1", "Iron", "Base C", "25"),
	}
	production := []entities.ProductionRow{
		{Product: "Alloy", UnitsPerDay: 10, ProduceAt: "Base B"},
	}
	makeTable := makeTableOf("Alloy", "Base B")
	recipes := testRecipe("Alloy", 1, input("Iron", 2))
	stock := BuildStockIndex([]entities.StockObservation{
		testStock("Base B", "Iron", "4"),
		testStock("Base C", "Iron", "30"),
		testStock("Base D", "Iron", "10"),
	})

	if rows := ComputeIngredientTransport(stock, contracts, makeTable, recipes, production); len(rows) != 0 {
		t.Errorf("got %d rows, want 0: %+v", len(rows), rows)
	}
}

func TestComputeIngredientTransport_SkipsRowsWithoutBaseOrRecipe(t *testing.T) {
	production := []entities.ProductionRow{
		{Product: "Alloy", UnitsPerDay: 10, ProduceAt: ""},
		{Product: "Widget", UnitsPerDay: 10, ProduceAt: "Base B"}, // no recipe
		{Product: "Beams", UnitsPerDay: 0, ProduceAt: "Base B"},
	}
	recipes := testRecipe("Alloy", 1, input("Iron", 2))
	stock := BuildStockIndex([]entities.StockObservation{
		testStock("Base C", "Iron", "500"),
	})

	if rows := ComputeIngredientTransport(stock, nil, makeTableOf(), recipes, production); len(rows) != 0 {
		t.Errorf("got %d rows, want 0: %+v", len(rows), rows)
	}
}
