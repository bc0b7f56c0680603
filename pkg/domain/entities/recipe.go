package entities

import "fmt"

// RecipeInput is one ingredient of a recipe: consuming Qty units of Name per
// batch.
type RecipeInput struct {
	Name string
	Qty  int64
}

// Recipe describes how a material is manufactured: one batch yields OutputQty
// units of Output and consumes the listed inputs.
type Recipe struct {
	Output    string
	OutputQty int64
	Inputs    []RecipeInput
}

// RecipeLine is the flat load format for recipes: one (output, input) pair
// per line. A recipe with three inputs arrives as three lines sharing the
// same output.
type RecipeLine struct {
	Output    string
	OutputQty int64
	Input     string
	InputQty  int64
}

// MakeRow marks a material as locally manufactured at a base. A material has
// at most one producing base; the last row loaded for a material wins.
type MakeRow struct {
	Material string
	Base     string
}

// NewMakeRow creates a validated MakeRow.
func NewMakeRow(material, base string) (*MakeRow, error) {
	if material == "" {
		return nil, fmt.Errorf("material cannot be empty")
	}
	if base == "" {
		return nil, fmt.Errorf("base cannot be empty")
	}
	return &MakeRow{Material: material, Base: base}, nil
}
