package planner

import (
	"testing"

	"github.com/tycoontools/gtplan/pkg/domain/entities"
)

func TestComputeContractStatus_FullyCovered(t *testing.T) {
	contracts := []*entities.Contract{
		testContract("c1", "Iron", "Base A", "100"),
	}
	stock := BuildStockIndex([]entities.StockObservation{
		testStock("Base A", "Iron", "100"),
	})

	rows := ComputeContractStatus(contracts, stock)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}

	r := rows[0]
	if !r.AvailAtDestination.Equal(dec("100")) {
		t.Errorf("AvailAtDestination = %s, want 100", r.AvailAtDestination)
	}
	if !r.Missing.IsZero() {
		t.Errorf("Missing = %s, want 0", r.Missing)
	}
	if r.Status != entities.StatusOK {
		t.Errorf("Status = %s, want %s", r.Status, entities.StatusOK)
	}
	if !r.DaysCovered.Equal(dec("1")) {
		t.Errorf("DaysCovered = %s, want 1", r.DaysCovered)
	}
}

func TestComputeContractStatus_AllocatesByIDOrder(t *testing.T) {
	// Two contracts compete for 100 units at Base A. The id-ascending order
	// gives c1 its full 80 and leaves c2 with 20.
	contracts := []*entities.Contract{
		testContract("c2", "Iron", "Base A", "60"),
		testContract("c1", "Iron", "Base A", "80"),
	}
	stock := BuildStockIndex([]entities.StockObservation{
		testStock("Base A", "Iron", "100"),
	})

	rows := ComputeContractStatus(contracts, stock)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	byID := make(map[string]entities.ContractStatusRow)
	for _, r := range rows {
		byID[r.ID] = r
	}

	if got := byID["c1"].AvailAtDestination; !got.Equal(dec("80")) {
		t.Errorf("c1 allocated = %s, want 80", got)
	}
	if got := byID["c2"].AvailAtDestination; !got.Equal(dec("20")) {
		t.Errorf("c2 allocated = %s, want 20", got)
	}
	if got := byID["c2"].Missing; !got.Equal(dec("40")) {
		t.Errorf("c2 missing = %s, want 40", got)
	}
	if byID["c1"].Status != entities.StatusOK || byID["c2"].Status != entities.StatusShort {
		t.Errorf("statuses = %s/%s, want OK/SHORT", byID["c1"].Status, byID["c2"].Status)
	}

	// The SHORT row sorts first (most missing on top).
	if rows[0].ID != "c2" {
		t.Errorf("first row is %s, want c2", rows[0].ID)
	}
}

func TestComputeContractStatus_StableUnderInputReordering(t *testing.T) {
	forward := []*entities.Contract{
		testContract("a", "Iron", "Base A", "50"),
		testContract("b", "Iron", "Base A", "50"),
		testContract("c", "Copper", "Base B", "30"),
	}
	reversed := []*entities.Contract{forward[2], forward[1], forward[0]}

	stock := BuildStockIndex([]entities.StockObservation{
		testStock("Base A", "Iron", "70"),
		testStock("Base B", "Copper", "10"),
	})

	got := ComputeContractStatus(forward, stock)
	want := ComputeContractStatus(reversed, stock)

	if len(got) != len(want) {
		t.Fatalf("row counts differ: %d vs %d", len(got), len(want))
	}
	for i := range got {
		if got[i].ID != want[i].ID || !got[i].AvailAtDestination.Equal(want[i].AvailAtDestination) {
			t.Errorf("row %d differs under reordering: %+v vs %+v", i, got[i], want[i])
		}
	}
}

func TestComputeContractStatus_AllocationNeverExceedsStockOrDemand(t *testing.T) {
	contracts := []*entities.Contract{
		testContract("c1", "Iron", "Base A", "40"),
		testContract("c2", "Iron", "Base A", "40"),
		testContract("c3", "Iron", "Base A", "40"),
	}
	stock := BuildStockIndex([]entities.StockObservation{
		testStock("Base A", "Iron", "65"),
	})

	rows := ComputeContractStatus(contracts, stock)

	totalAllocated := dec("0")
	for _, r := range rows {
		if r.AvailAtDestination.GreaterThan(fromInt(r.UnitsPerDay)) {
			t.Errorf("contract %s allocated %s beyond its need %d", r.ID, r.AvailAtDestination, r.UnitsPerDay)
		}
		totalAllocated = totalAllocated.Add(r.AvailAtDestination)
	}
	if totalAllocated.GreaterThan(dec("65")) {
		t.Errorf("total allocated %s exceeds destination stock 65", totalAllocated)
	}
}

func TestComputeContractStatus_DropsDraftRows(t *testing.T) {
	contracts := []*entities.Contract{
		testContract("c1", "", "Base A", "10"),
		testContract("c2", "Iron", "Base A", "0"),
	}
	stock := BuildStockIndex(nil)

	if rows := ComputeContractStatus(contracts, stock); len(rows) != 0 {
		t.Errorf("got %d rows, want 0", len(rows))
	}
}

func TestComputeContractStatus_FractionalCoverage(t *testing.T) {
	contracts := []*entities.Contract{
		testContract("c1", "Iron", "Base A", "100"),
	}
	stock := BuildStockIndex([]entities.StockObservation{
		testStock("Base A", "Iron", "25"),
	})

	rows := ComputeContractStatus(contracts, stock)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if !rows[0].DaysCovered.Equal(dec("0.25")) {
		t.Errorf("DaysCovered = %s, want 0.25", rows[0].DaysCovered)
	}
	if rows[0].Status != entities.StatusShort {
		t.Errorf("Status = %s, want SHORT", rows[0].Status)
	}
}
