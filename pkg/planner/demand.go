package planner

import (
	"sort"

	"github.com/tycoontools/gtplan/pkg/domain/entities"
)

// DemandKey identifies one (product, destination) demand lane.
type DemandKey struct {
	Product     string
	Destination string
}

// AggregateDemand collapses contracts into required units/day per lane.
// Fractional rates are rounded up per contract before summing. Contracts
// with a blank product or destination, or a non-positive rate, are dropped
// silently: draft rows are legal input, not errors.
func AggregateDemand(contracts []*entities.Contract) map[DemandKey]int64 {
	agg := make(map[DemandKey]int64)
	for _, c := range contracts {
		product := norm(c.Product)
		dest := norm(c.Destination)
		perDay := c.UnitsPerDay.Ceil().IntPart()
		if product == "" || dest == "" || perDay <= 0 {
			continue
		}
		agg[DemandKey{Product: product, Destination: dest}] += perDay
	}
	return agg
}

// demandKeys returns the aggregate's keys in a fixed order so planning
// passes walk demand deterministically.
func demandKeys(agg map[DemandKey]int64) []DemandKey {
	keys := make([]DemandKey, 0, len(agg))
	for k := range agg {
		keys = append(keys, k)
	}
	sortDemandKeys(keys)
	return keys
}

func sortDemandKeys(keys []DemandKey) {
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Product != keys[j].Product {
			return keys[i].Product < keys[j].Product
		}
		return keys[i].Destination < keys[j].Destination
	})
}

// requiredAt returns the demand a location must reserve for its own
// contracts of a material.
func requiredAt(agg map[DemandKey]int64, material, location string) int64 {
	return agg[DemandKey{Product: material, Destination: location}]
}
