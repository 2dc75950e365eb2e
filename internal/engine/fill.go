package engine

import "github.com/ycwang-tw/etf-dashboard-backend/internal/model"

// EstimateFill estimates how much of the most recent dividend the market
// price has recovered since the ex-date, under the model that a
// distribution mechanically reduces the price by the per-share amount.
//
// preExClose is the last close strictly before the dividend's ex-date. The
// theoretical ex-dividend reference price is preExClose minus the per-share
// dividend; the fill ratio is the recovered fraction of that per-share
// amount, in percent.
//
// The per-share dividend divides the event's cash by the current effective
// share count. When shares changed between the ex-date and now this is an
// approximation; it is kept deliberately (changing it would change every
// reported fill figure).
//
// Returns false when the position holds no shares; fill data is advisory,
// so callers skip the instrument rather than reporting an error.
func EstimateFill(pos model.Holding, currentPrice float64, last model.DividendEvent, preExClose float64) (model.FillInfo, bool) {
	if pos.Shares <= 0 {
		return model.FillInfo{}, false
	}

	divPerShare := last.Cash / float64(pos.Shares)
	exRef := preExClose - divPerShare
	filled := currentPrice - exRef

	ratio := 0.0
	if divPerShare > 0 {
		ratio = filled / divPerShare * 100
	}

	gap := preExClose - currentPrice
	if gap < 0 {
		gap = 0
	}

	return model.FillInfo{
		Symbol:           pos.Symbol,
		Name:             pos.Name,
		DividendDate:     last.Date,
		DividendCash:     last.Cash,
		DividendPerShare: divPerShare,
		PreExClose:       preExClose,
		ExReference:      exRef,
		CurrentPrice:     currentPrice,
		FilledAmount:     filled,
		FillRatioPct:     ratio,
		GapToFill:        gap,
	}, true
}
