package planner

import (
	"github.com/tycoontools/gtplan/pkg/domain/entities"
)

// RecipeGraph maps an output material to its recipe. A material without an
// entry is treated as non-manufacturable within the graph.
type RecipeGraph map[string]entities.Recipe

// BuildRecipeGraph folds flat recipe lines into per-output recipes. Lines
// missing a name or quantity are skipped, and the first output quantity seen
// for a material wins. Every recipe in the result has a positive output
// quantity, so consumers can divide by it without guarding.
func BuildRecipeGraph(lines []entities.RecipeLine) RecipeGraph {
	g := make(RecipeGraph)
	for _, l := range lines {
		output := norm(l.Output)
		input := norm(l.Input)
		if output == "" || input == "" || l.OutputQty <= 0 || l.InputQty <= 0 {
			continue
		}
		r, ok := g[output]
		if !ok {
			r = entities.Recipe{Output: output, OutputQty: l.OutputQty}
		}
		r.Inputs = append(r.Inputs, entities.RecipeInput{Name: input, Qty: l.InputQty})
		g[output] = r
	}
	return g
}
