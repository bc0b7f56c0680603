package memory

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/tycoontools/gtplan/pkg/domain/entities"
)

func testContract(id, product, destination string, unitsPerDay string) *entities.Contract {
	return &entities.Contract{
		ID:          id,
		Product:     product,
		Destination: destination,
		Client:      "Acme Shipping",
		UnitsPerDay: decimal.RequireFromString(unitsPerDay),
	}
}

func TestContractRepository_SaveAndGet(t *testing.T) {
	repo := NewContractRepository(10)

	contract := testContract("c1", "Iron", "Base A", "12.5")

	err := repo.SaveContract(contract)
	if err != nil {
		t.Fatalf("Failed to save contract: %v", err)
	}

	retrieved, err := repo.GetContract("c1")
	if err != nil {
		t.Fatalf("Failed to get contract: %v", err)
	}

	if retrieved.Product != "Iron" {
		t.Errorf("Expected product Iron, got %s", retrieved.Product)
	}
	if retrieved.Destination != "Base A" {
		t.Errorf("Expected destination Base A, got %s", retrieved.Destination)
	}
	if !retrieved.UnitsPerDay.Equal(decimal.RequireFromString("12.5")) {
		t.Errorf("Expected units per day 12.5, got %s", retrieved.UnitsPerDay)
	}
}

func TestContractRepository_SaveContract_Update(t *testing.T) {
	repo := NewContractRepository(10)

	if err := repo.SaveContract(testContract("c1", "Iron", "Base A", "10")); err != nil {
		t.Fatalf("Failed to save contract: %v", err)
	}

	updated := testContract("c1", "Iron", "Base B", "25")
	if err := repo.SaveContract(updated); err != nil {
		t.Fatalf("Failed to update contract: %v", err)
	}

	retrieved, err := repo.GetContract("c1")
	if err != nil {
		t.Fatalf("Failed to get contract: %v", err)
	}
	if retrieved.Destination != "Base B" {
		t.Errorf("Expected updated destination Base B, got %s", retrieved.Destination)
	}

	all, err := repo.GetAllContracts()
	if err != nil {
		t.Fatalf("Failed to list contracts: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("Expected 1 contract after update, got %d", len(all))
	}
}

func TestContractRepository_SaveContract_EmptyID(t *testing.T) {
	repo := NewContractRepository(10)

	err := repo.SaveContract(&entities.Contract{Product: "Iron"})
	if err == nil {
		t.Error("Expected error when saving contract with empty id, got none")
	}
	if !strings.Contains(err.Error(), "empty id") {
		t.Errorf("Expected error message to contain 'empty id', got: %v", err)
	}
}

func TestContractRepository_GetAllContracts_InsertionOrder(t *testing.T) {
	repo := NewContractRepository(10)

	contracts := []*entities.Contract{
		testContract("c3", "Coal", "Base C", "5"),
		testContract("c1", "Iron", "Base A", "10"),
		testContract("c2", "Alloy", "Base B", "20"),
	}
	if err := repo.LoadContracts(contracts); err != nil {
		t.Fatalf("Failed to load contracts: %v", err)
	}

	all, err := repo.GetAllContracts()
	if err != nil {
		t.Fatalf("Failed to list contracts: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 contracts, got %d", len(all))
	}
	for i, want := range []string{"c3", "c1", "c2"} {
		if all[i].ID != want {
			t.Errorf("Expected contract %s at position %d, got %s", want, i, all[i].ID)
		}
	}
}

func TestContractRepository_DeleteContract(t *testing.T) {
	repo := NewContractRepository(10)

	if err := repo.LoadContracts([]*entities.Contract{
		testContract("c1", "Iron", "Base A", "10"),
		testContract("c2", "Alloy", "Base B", "20"),
		testContract("c3", "Coal", "Base C", "5"),
	}); err != nil {
		t.Fatalf("Failed to load contracts: %v", err)
	}

	if err := repo.DeleteContract("c2"); err != nil {
		t.Fatalf("Failed to delete contract: %v", err)
	}

	if _, err := repo.GetContract("c2"); err == nil {
		t.Error("Expected error for deleted contract, got none")
	}

	// The index must still resolve contracts that shifted position.
	retrieved, err := repo.GetContract("c3")
	if err != nil {
		t.Fatalf("Failed to get contract after delete: %v", err)
	}
	if retrieved.Product != "Coal" {
		t.Errorf("Expected product Coal, got %s", retrieved.Product)
	}
}

func TestContractRepository_GetContract_NotFound(t *testing.T) {
	repo := NewContractRepository(10)

	_, err := repo.GetContract("missing")
	if err == nil {
		t.Error("Expected error for nonexistent contract, got none")
	}
	if !strings.Contains(err.Error(), "contract not found") {
		t.Errorf("Expected error message to contain 'contract not found', got: %v", err)
	}
}
