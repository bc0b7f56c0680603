package planner

import (
	"github.com/tycoontools/gtplan/pkg/domain/entities"
)

// MakeTable maps a locally makeable material to the single base that
// manufactures it. Presence in the table is what routes a material's demand
// to the production planner instead of the purchase planner.
type MakeTable map[string]string

// BuildMakeTable folds make rows into a table. Rows with a blank material or
// base are skipped; when a material appears more than once the last row
// wins.
func BuildMakeTable(rows []entities.MakeRow) MakeTable {
	t := make(MakeTable, len(rows))
	for _, r := range rows {
		mat := norm(r.Material)
		base := norm(r.Base)
		if mat == "" || base == "" {
			continue
		}
		t[mat] = base
	}
	return t
}

// BaseFor returns the producing base for a material, or "" when none is
// mapped.
func (t MakeTable) BaseFor(material string) string { return t[material] }

// IsMakeable reports whether a material has a producing base.
func (t MakeTable) IsMakeable(material string) bool {
	_, ok := t[material]
	return ok
}
