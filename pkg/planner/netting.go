package planner

import "strings"

// move is a directional shipment of one material between two locations.
// Transport and ingredient transport rows are netted through this neutral
// shape.
type move struct {
	Material string
	From     string
	To       string
	Units    int64
	Notes    string
}

type moveKey struct {
	material string
	from     string
	to       string
}

// netOpposingMoves aggregates exact-duplicate moves and then cancels
// opposing ones, keeping only the net move in the direction of the larger
// quantity; equal quantities cancel completely. The result never ships the
// same material both ways between the same two locations, and netting an
// already netted list is a no-op.
func netOpposingMoves(moves []move) []move {
	agg := make(map[moveKey]*move)
	var order []moveKey

	for _, m := range moves {
		mat := norm(m.Material)
		from := norm(m.From)
		to := norm(m.To)
		if mat == "" || from == "" || to == "" || m.Units <= 0 {
			continue
		}
		k := moveKey{material: mat, from: from, to: to}
		if cur, ok := agg[k]; ok {
			cur.Units += m.Units
			cur.Notes = mergeNotes(cur.Notes, m.Notes)
		} else {
			agg[k] = &move{Material: mat, From: from, To: to, Units: m.Units, Notes: m.Notes}
			order = append(order, k)
		}
	}

	kept := make(map[moveKey]*move)
	var keptOrder []moveKey

	for _, k := range order {
		v := agg[k]
		oppKey := moveKey{material: k.material, from: k.to, to: k.from}
		opp, ok := kept[oppKey]
		if !ok {
			cp := *v
			kept[k] = &cp
			keptOrder = append(keptOrder, k)
			continue
		}
		switch {
		case opp.Units > v.Units:
			opp.Units -= v.Units
		case opp.Units < v.Units:
			delete(kept, oppKey)
			cp := *v
			cp.Units -= opp.Units
			kept[k] = &cp
			keptOrder = append(keptOrder, k)
		default:
			delete(kept, oppKey)
		}
	}

	out := make([]move, 0, len(kept))
	for _, k := range keptOrder {
		if v, ok := kept[k]; ok {
			out = append(out, *v)
		}
	}
	return out
}

// mergeNotes appends a note unless it is empty or already present.
func mergeNotes(cur, add string) string {
	switch {
	case add == "":
		return cur
	case cur == "":
		return add
	case strings.Contains(cur, add):
		return cur
	default:
		return cur + "; " + add
	}
}
