// Package report implements the aggregation engine: it turns the flat
// budget-input, expense, and transfer rows into allocated/spent/remaining
// figures per budget line and per budget code, with a status
// classification for each. The package is pure: no I/O, no mutation of
// inputs, and deterministic output (iteration helpers follow catalog
// order, not map order).
package report

import (
	"math"
	"sort"

	"pondo/internal/catalog"
)

// Status classifies a budget line or code after reconciliation.
type Status string

const (
	// StatusNone means the line has no allocation and no spend; it gets
	// no badge rather than a misleading "Budget Met".
	StatusNone         Status = ""
	StatusOverBudget   Status = "Over Budget"
	StatusBudgetMet    Status = "Budget Met"
	StatusWithinBudget Status = "Within Budget"
)

// Classify applies the status precedence rules to an (allocated, spent)
// pair. The zero/zero check must come first.
func Classify(allocated, spent float64) Status {
	remaining := allocated - spent
	switch {
	case allocated == 0 && spent == 0:
		return StatusNone
	case remaining < 0:
		return StatusOverBudget
	case remaining == 0:
		return StatusBudgetMet
	default:
		return StatusWithinBudget
	}
}

// Summary holds the aggregation result. Allocated values are the raw
// proposed amounts; transfers are tracked separately so effective
// allocations can be derived without touching what was persisted.
type Summary struct {
	AllocatedByCode map[string]float64
	SpentByCode     map[string]float64

	AllocatedByLine map[LineKey]float64
	SpentByLine     map[LineKey]float64

	TransferInByLine  map[LineKey]float64
	TransferOutByLine map[LineKey]float64
	TransferInByCode  map[string]float64
	TransferOutByCode map[string]float64
}

// Aggregate computes a Summary from the given row collections. Draft rows
// never contribute. Non-finite amounts contribute zero without dropping
// the row's other effects. Every known budget code appears in the by-code
// maps even with no activity.
func Aggregate(inputs []BudgetInputRow, expenses []ExpenseRow, transfers []TransferRow) *Summary {
	s := &Summary{
		AllocatedByCode:   make(map[string]float64, catalog.BudgetCodes.Len()),
		SpentByCode:       make(map[string]float64, catalog.BudgetCodes.Len()),
		AllocatedByLine:   make(map[LineKey]float64),
		SpentByLine:       make(map[LineKey]float64),
		TransferInByLine:  make(map[LineKey]float64),
		TransferOutByLine: make(map[LineKey]float64),
		TransferInByCode:  make(map[string]float64),
		TransferOutByCode: make(map[string]float64),
	}

	for _, code := range catalog.BudgetCodes.Values() {
		s.AllocatedByCode[code] = 0
		s.SpentByCode[code] = 0
	}

	for _, bi := range inputs {
		if bi.Draft {
			continue
		}
		amt := amountOrZero(bi.ProposedAmount)
		s.AllocatedByLine[bi.Key()] += amt
		s.AllocatedByCode[bi.BudgetCode] += amt
	}

	for _, exp := range expenses {
		if exp.Draft {
			continue
		}
		amt := amountOrZero(exp.ExpenseAmount)
		s.SpentByLine[exp.Key()] += amt
		s.SpentByCode[exp.BudgetCode] += amt
	}

	for _, tr := range transfers {
		amt := amountOrZero(tr.Amount)
		s.TransferOutByLine[tr.From] += amt
		s.TransferOutByCode[tr.From.BudgetCode] += amt
		s.TransferInByLine[tr.To] += amt
		s.TransferInByCode[tr.To.BudgetCode] += amt
	}

	return s
}

// EffectiveAllocatedLine is the allocation used for remaining-amount math:
// raw proposed amount plus net transfers into the line.
func (s *Summary) EffectiveAllocatedLine(k LineKey) float64 {
	return s.AllocatedByLine[k] + s.TransferInByLine[k] - s.TransferOutByLine[k]
}

// EffectiveAllocatedCode is the per-code counterpart of EffectiveAllocatedLine.
func (s *Summary) EffectiveAllocatedCode(code string) float64 {
	return s.AllocatedByCode[code] + s.TransferInByCode[code] - s.TransferOutByCode[code]
}

// RemainingLine is effective allocation minus spend for the line.
func (s *Summary) RemainingLine(k LineKey) float64 {
	return s.EffectiveAllocatedLine(k) - s.SpentByLine[k]
}

// RemainingCode is effective allocation minus spend for the budget code.
func (s *Summary) RemainingCode(code string) float64 {
	return s.EffectiveAllocatedCode(code) - s.SpentByCode[code]
}

// LineStatus classifies the line from its effective allocation and spend.
func (s *Summary) LineStatus(k LineKey) Status {
	return Classify(s.EffectiveAllocatedLine(k), s.SpentByLine[k])
}

// CodeStatus classifies the budget code.
func (s *Summary) CodeStatus(code string) Status {
	return Classify(s.EffectiveAllocatedCode(code), s.SpentByCode[code])
}

// Codes returns all known budget codes in catalog order.
func (s *Summary) Codes() []string {
	return catalog.BudgetCodes.Values()
}

// Lines returns every budget line touched by any input, expense, or
// transfer, ordered by catalog position (object, then province, then
// code). Values outside the catalogs sort after known ones so repeated
// renders stay visually stable even with dirty data.
func (s *Summary) Lines() []LineKey {
	seen := make(map[LineKey]struct{})
	for k := range s.AllocatedByLine {
		seen[k] = struct{}{}
	}
	for k := range s.SpentByLine {
		seen[k] = struct{}{}
	}
	for k := range s.TransferInByLine {
		seen[k] = struct{}{}
	}
	for k := range s.TransferOutByLine {
		seen[k] = struct{}{}
	}

	lines := make([]LineKey, 0, len(seen))
	for k := range seen {
		lines = append(lines, k)
	}
	sort.Slice(lines, func(i, j int) bool {
		a, b := lines[i], lines[j]
		if oa, ob := catalogRank(catalog.ObjectsOfExpenditure, a.ObjectOfExpenditure), catalogRank(catalog.ObjectsOfExpenditure, b.ObjectOfExpenditure); oa != ob {
			return oa < ob
		}
		if pa, pb := catalogRank(catalog.Provinces, a.Province), catalogRank(catalog.Provinces, b.Province); pa != pb {
			return pa < pb
		}
		if ca, cb := catalogRank(catalog.BudgetCodes, a.BudgetCode), catalogRank(catalog.BudgetCodes, b.BudgetCode); ca != cb {
			return ca < cb
		}
		// Off-catalog values tie on rank; fall back to lexicographic.
		return a.Display("|") < b.Display("|")
	})
	return lines
}

// catalogRank orders values by catalog position with unknowns last.
func catalogRank(c catalog.Catalog, v string) int {
	if i := c.Index(v); i >= 0 {
		return i
	}
	return c.Len()
}

// amountOrZero implements the "numeric or zero" coercion rule.
func amountOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
