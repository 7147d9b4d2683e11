// Package rank projects raw filings into ranked records and selects the
// top-scoring ones by reported income.
package rank

import (
	"sort"
	"strconv"
	"strings"

	"lobbyrank/internal/model"
)

// ParseIncome parses the registry's income field. The field may be absent,
// empty, or non-numeric; any of those yields ok=false and the filing is
// dropped rather than treated as a fault.
func ParseIncome(value string) (float64, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, false
	}
	amount, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, false
	}
	return amount, true
}

// Qualify projects a filing into a ranked record. Filings without a parseable
// income do not qualify. The posting date keeps only its date portion (first
// 10 bytes, a truncation rather than a parse), a missing registrant name
// becomes "?", and nameless lobbyist entries are skipped.
func Qualify(entity model.Entity, filing model.Filing) (model.RankedFiling, bool) {
	amount, ok := ParseIncome(filing.Income)
	if !ok {
		return model.RankedFiling{}, false
	}

	firm := filing.Registrant.Name
	if firm == "" {
		firm = "?"
	}

	date := filing.DtPosted
	if len(date) > 10 {
		date = date[:10]
	}

	lobbyists := make([]string, 0, len(filing.Lobbyists))
	for _, lobbyist := range filing.Lobbyists {
		if lobbyist.Name == "" {
			continue
		}
		lobbyists = append(lobbyists, lobbyist.Name)
	}

	return model.RankedFiling{
		Ticker:    entity.Ticker,
		Client:    entity.Name,
		Firm:      firm,
		Amount:    amount,
		Date:      date,
		Lobbyists: lobbyists,
	}, true
}

// Top sorts records by amount descending and keeps every record whose amount
// matches one of the n highest distinct amounts. Ties are therefore always
// included, so the result may hold more than n records. The sort is stable,
// so records with equal amounts keep their accumulation order.
func Top(records []model.RankedFiling, n int) []model.RankedFiling {
	if n <= 0 {
		return []model.RankedFiling{}
	}

	sorted := make([]model.RankedFiling, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount > sorted[j].Amount
	})

	cutoff := make(map[float64]struct{}, n)
	for _, record := range sorted {
		if _, seen := cutoff[record.Amount]; seen {
			continue
		}
		if len(cutoff) == n {
			break
		}
		cutoff[record.Amount] = struct{}{}
	}

	top := make([]model.RankedFiling, 0, len(sorted))
	for _, record := range sorted {
		if _, ok := cutoff[record.Amount]; ok {
			top = append(top, record)
		}
	}
	return top
}
