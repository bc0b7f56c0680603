package entities

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNewContract_AssignsID(t *testing.T) {
	a := NewContract("Iron", "Base A", "Acme Shipping", decimal.NewFromInt(10))
	b := NewContract("Iron", "Base A", "Acme Shipping", decimal.NewFromInt(10))

	if a.ID == "" {
		t.Error("Expected a generated id, got empty string")
	}
	if a.ID == b.ID {
		t.Errorf("Expected distinct ids, both got %s", a.ID)
	}
	if a.Fulfilled {
		t.Error("Expected new contract to be unfulfilled")
	}
}

func TestContract_DailyUnits_CeilsFractionalRates(t *testing.T) {
	tests := []struct {
		rate string
		want int64
	}{
		{"10", 10},
		{"12.5", 13},
		{"0.1", 1},
		{"0", 0},
	}

	for _, tt := range tests {
		c := Contract{UnitsPerDay: decimal.RequireFromString(tt.rate)}
		if got := c.DailyUnits(); got != tt.want {
			t.Errorf("DailyUnits(%s) = %d, want %d", tt.rate, got, tt.want)
		}
	}
}

func TestContract_MarkFulfilled(t *testing.T) {
	c := NewContract("Iron", "Base A", "Acme Shipping", decimal.NewFromInt(10))
	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	c.MarkFulfilled(at)

	if !c.Fulfilled {
		t.Error("Expected contract to be fulfilled")
	}
	if !c.LastFulfilledAt.Equal(at) {
		t.Errorf("Expected fulfilled at %v, got %v", at, c.LastFulfilledAt)
	}
}

func TestNewMakeRow_Validation(t *testing.T) {
	if _, err := NewMakeRow("", "Base A"); err == nil {
		t.Error("Expected error for empty material, got none")
	}
	if _, err := NewMakeRow("Alloy", ""); err == nil {
		t.Error("Expected error for empty base, got none")
	}

	row, err := NewMakeRow("Alloy", "Base B")
	if err != nil {
		t.Fatalf("Failed to create make row: %v", err)
	}
	if row.Material != "Alloy" || row.Base != "Base B" {
		t.Errorf("Unexpected make row: %+v", row)
	}
}

func TestLocationKind_String(t *testing.T) {
	tests := []struct {
		kind LocationKind
		want string
	}{
		{LocationBase, "Base"},
		{LocationShip, "Ship"},
		{LocationMarket, "Market"},
		{LocationKind(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("String(%d) = %s, want %s", int(tt.kind), got, tt.want)
		}
	}
}
