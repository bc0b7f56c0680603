package sqlite

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tycoontools/gtplan/pkg/domain/entities"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "gtplan.db"))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_ContractRoundTrip(t *testing.T) {
	store := openTestStore(t)

	fulfilledAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	contract := &entities.Contract{
		ID:              "c1",
		Product:         "Iron",
		Destination:     "Base A",
		Client:          "Acme Shipping",
		UnitsPerDay:     decimal.RequireFromString("12.5"),
		Fulfilled:       true,
		LastFulfilledAt: fulfilledAt,
	}

	if err := store.SaveContract(contract); err != nil {
		t.Fatalf("Failed to save contract: %v", err)
	}

	retrieved, err := store.GetContract("c1")
	if err != nil {
		t.Fatalf("Failed to get contract: %v", err)
	}
	if retrieved.Product != "Iron" || retrieved.Destination != "Base A" {
		t.Errorf("Unexpected contract: %+v", retrieved)
	}
	if !retrieved.UnitsPerDay.Equal(decimal.RequireFromString("12.5")) {
		t.Errorf("Expected units per day 12.5, got %s", retrieved.UnitsPerDay)
	}
	if !retrieved.Fulfilled {
		t.Error("Expected fulfilled contract")
	}
	if !retrieved.LastFulfilledAt.Equal(fulfilledAt) {
		t.Errorf("Expected fulfilled at %v, got %v", fulfilledAt, retrieved.LastFulfilledAt)
	}
}

func TestStore_ContractUpsert(t *testing.T) {
	store := openTestStore(t)

	contract := &entities.Contract{
		ID:          "c1",
		Product:     "Iron",
		Destination: "Base A",
		UnitsPerDay: decimal.NewFromInt(10),
	}
	if err := store.SaveContract(contract); err != nil {
		t.Fatalf("Failed to save contract: %v", err)
	}

	contract.Destination = "Base B"
	if err := store.SaveContract(contract); err != nil {
		t.Fatalf("Failed to update contract: %v", err)
	}

	all, err := store.GetAllContracts()
	if err != nil {
		t.Fatalf("Failed to list contracts: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("Expected 1 contract after upsert, got %d", len(all))
	}
	if all[0].Destination != "Base B" {
		t.Errorf("Expected destination Base B, got %s", all[0].Destination)
	}
}

func TestStore_DeleteContract(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveContract(&entities.Contract{
		ID:          "c1",
		Product:     "Iron",
		UnitsPerDay: decimal.NewFromInt(10),
	}); err != nil {
		t.Fatalf("Failed to save contract: %v", err)
	}

	if err := store.DeleteContract("c1"); err != nil {
		t.Fatalf("Failed to delete contract: %v", err)
	}

	_, err := store.GetContract("c1")
	if err == nil {
		t.Error("Expected error for deleted contract, got none")
	}
	if !strings.Contains(err.Error(), "contract not found") {
		t.Errorf("Expected error message to contain 'contract not found', got: %v", err)
	}

	if err := store.DeleteContract("c1"); err == nil {
		t.Error("Expected error deleting a missing contract, got none")
	}
}

func TestStore_MakeRowLifecycle(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveMakeRow(&entities.MakeRow{Material: "Alloy", Base: "Base B"}); err != nil {
		t.Fatalf("Failed to save make row: %v", err)
	}
	if err := store.SaveMakeRow(&entities.MakeRow{Material: "Alloy", Base: "Base C"}); err != nil {
		t.Fatalf("Failed to rewrite make row: %v", err)
	}
	if err := store.SaveMakeRow(&entities.MakeRow{Material: "Glass", Base: "Base A"}); err != nil {
		t.Fatalf("Failed to save make row: %v", err)
	}

	row, err := store.GetMakeRow("Alloy")
	if err != nil {
		t.Fatalf("Failed to get make row: %v", err)
	}
	if row.Base != "Base C" {
		t.Errorf("Expected base Base C after rewrite, got %s", row.Base)
	}

	all, err := store.GetAllMakeRows()
	if err != nil {
		t.Fatalf("Failed to list make rows: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected 2 make rows, got %d", len(all))
	}
	if all[0].Material != "Alloy" || all[1].Material != "Glass" {
		t.Errorf("Expected rows sorted by material, got %s then %s", all[0].Material, all[1].Material)
	}

	if err := store.DeleteMakeRow("Glass"); err != nil {
		t.Fatalf("Failed to delete make row: %v", err)
	}
	if _, err := store.GetMakeRow("Glass"); err == nil {
		t.Error("Expected error for deleted make row, got none")
	}
}

func TestStore_ReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gtplan.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	if err := store.SaveContract(&entities.Contract{
		ID:          "c1",
		Product:     "Iron",
		Destination: "Base A",
		UnitsPerDay: decimal.NewFromInt(10),
	}); err != nil {
		t.Fatalf("Failed to save contract: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Failed to close store: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer reopened.Close()

	contract, err := reopened.GetContract("c1")
	if err != nil {
		t.Fatalf("Failed to get contract after reopen: %v", err)
	}
	if contract.Product != "Iron" {
		t.Errorf("Expected product Iron, got %s", contract.Product)
	}
}
