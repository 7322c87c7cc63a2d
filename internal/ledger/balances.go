// Package ledger holds the pure computation core of Mates: per-roommate
// balances, the settlement plan that zeroes them out, and expense
// statistics. Nothing here touches storage or does I/O; callers fetch
// the roster and expenses, call in, and render the result. Every
// function recomputes from scratch, so results only ever reflect the
// inputs of the current call.
package ledger

import "github.com/mateshq/mates/internal/models"

// Balance is one roommate's accumulated position across all expenses.
type Balance struct {
	// Paid is the sum of expense amounts this roommate paid.
	Paid float64 `json:"paid"`
	// Owed is the sum of this roommate's shares across all expenses.
	Owed float64 `json:"owed"`
	// Net is Paid - Owed. Positive = is owed money, negative = owes.
	Net float64 `json:"net"`
}

// ComputeBalances derives a Balance for every name in roster from the
// given expenses. The result always contains exactly one entry per
// roster member, whether or not they appear in any expense.
//
// Rules:
//   - An expense with an empty split set is divided across the entire
//     current roster.
//   - Payer or split names not in the roster contribute nothing (a
//     removed roommate's history is dropped, not reallocated).
//   - An expense with an empty split set AND an empty roster is skipped
//     entirely; there is nobody to divide it among.
//
// No rounding is applied; amounts flow through as float64. The caller
// is expected to have coerced malformed amounts to zero upstream.
func ComputeBalances(roster []string, expenses []models.Expense) map[string]Balance {
	balances := make(map[string]Balance, len(roster))
	for _, name := range roster {
		balances[name] = Balance{}
	}

	for _, exp := range expenses {
		splitWith := exp.SplitWith
		if len(splitWith) == 0 {
			splitWith = roster
		}
		if len(splitWith) == 0 {
			continue
		}
		share := exp.Amount / float64(len(splitWith))

		if b, ok := balances[exp.Payer]; ok {
			b.Paid += exp.Amount
			balances[exp.Payer] = b
		}
		for _, name := range splitWith {
			if b, ok := balances[name]; ok {
				b.Owed += share
				balances[name] = b
			}
		}
	}

	for name, b := range balances {
		b.Net = b.Paid - b.Owed
		balances[name] = b
	}
	return balances
}
