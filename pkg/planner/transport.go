package planner

import (
	"sort"

	"github.com/tycoontools/gtplan/pkg/domain/entities"
)

// ComputeTransport suggests inter-location moves of finished product to
// cover destination shortfalls. A move is only suggested when total stock of
// the material covers total demand (anything less is production's problem)
// and the full shortfall fits in reservation-aware surplus elsewhere;
// partial moves are never suggested. Each shortfall ships from the single
// source with the most surplus, and opposing moves are netted out.
func ComputeTransport(contracts []*entities.Contract, stock StockIndex) []entities.TransportRow {
	agg := AggregateDemand(contracts)

	var moves []move
	for _, k := range demandKeys(agg) {
		perDay := fromInt(agg[k])

		missing := maxZero(perDay.Sub(stock.At(k.Product, k.Destination)))
		if missing.IsZero() {
			continue
		}
		if stock.TotalOf(k.Product).LessThan(perDay) {
			continue
		}
		if shippableTo(stock, agg, k.Product, k.Destination).LessThan(missing) {
			continue
		}
		src, ship := bestSource(stock, agg, k.Product, k.Destination)
		if src == "" || !ship.IsPositive() {
			continue
		}
		moves = append(moves, move{
			Material: k.Product,
			From:     src,
			To:       k.Destination,
			Units:    ceilUnits(missing),
			Notes:    "Move to cover destination shortage (overall stock sufficient)",
		})
	}

	netted := netOpposingMoves(moves)

	rows := make([]entities.TransportRow, 0, len(netted))
	for _, m := range netted {
		rows = append(rows, entities.TransportRow{
			Material: m.Material,
			Units:    m.Units,
			From:     m.From,
			To:       m.To,
			Notes:    m.Notes,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Units != rows[j].Units {
			return rows[i].Units > rows[j].Units
		}
		return lessFold(rows[i].Material, rows[j].Material)
	})
	return rows
}
