// Package engine implements the valuation and projection calculations for
// the dashboard. Every function is pure: it consumes snapshots already
// loaded into memory and returns new structures, performing no I/O. This is
// what allows the service layer to call it once per request without any
// locking.
package engine

import "github.com/ycwang-tw/etf-dashboard-backend/internal/model"

// Merge applies the per-symbol ledger aggregate to the base holdings and
// returns the effective positions, preserving the input order.
//
// For each holding with base shares S0 and average cost C0 and a ledger
// aggregate of dS shares / dA cash:
//   - an all-zero aggregate leaves the base position unchanged;
//   - otherwise the new position is S0+dS shares at a weighted average cost
//     of (S0*C0 + dA) / (S0+dS).
//
// If the recomputed share count or cost total would not be positive, the
// base position is kept as-is instead of producing a degenerate position.
// Aggregate entries for symbols that have no base holding are ignored: the
// ledger cannot create instruments, only the holdings table can.
func Merge(holdings []model.Holding, ledger map[string]model.LedgerAggregate) []model.Holding {
	positions := make([]model.Holding, 0, len(holdings))

	for _, h := range holdings {
		agg := ledger[h.Symbol]
		if agg.Shares == 0 && agg.Amount == 0 {
			positions = append(positions, h)
			continue
		}

		newShares := h.Shares + agg.Shares
		newCostTotal := float64(h.Shares)*h.AvgCost + agg.Amount

		if newShares > 0 && newCostTotal > 0 {
			h.Shares = newShares
			h.AvgCost = newCostTotal / float64(newShares)
		}
		positions = append(positions, h)
	}

	return positions
}
