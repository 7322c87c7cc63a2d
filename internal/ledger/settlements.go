package ledger

import (
	"math"
	"sort"
)

// Plan statuses. A plan carries exactly one.
const (
	// StatusRecommended means the plan contains transfers to make.
	StatusRecommended = "settlements recommended"
	// StatusSettled means all balances are already within a cent of zero.
	StatusSettled = "no settlements needed"
)

// Transfer is one suggested payment: From pays To the given amount.
type Transfer struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

// Plan is an ordered list of transfers that settles all balances,
// preceded by a status marker.
type Plan struct {
	Status    string     `json:"status"`
	Transfers []Transfer `json:"transfers"`
}

// party is a creditor or debtor with its remaining unsettled amount.
type party struct {
	name   string
	amount float64
}

// PlanSettlements matches the largest debts against the largest credits
// until every balance is within a cent of zero. The greedy pairing is a
// standard minimum-transaction heuristic: deterministic and simple, not
// guaranteed globally minimal.
//
// roster supplies the iteration order, which makes the output fully
// deterministic: ties between equal amounts keep roster order (the sort
// is stable, with no secondary key).
//
// Transfer amounts are rounded half-up at the cent for output, but the
// running remainders are decremented by the unrounded value so the walk
// terminates exactly where the real numbers do. Residue below 0.01 is
// treated as settled and silently dropped.
func PlanSettlements(roster []string, balances map[string]Balance) Plan {
	var creditors, debtors []party
	for _, name := range roster {
		b, ok := balances[name]
		if !ok {
			continue
		}
		switch {
		case b.Net > 0:
			creditors = append(creditors, party{name: name, amount: b.Net})
		case b.Net < 0:
			debtors = append(debtors, party{name: name, amount: -b.Net})
		}
	}
	sort.SliceStable(creditors, func(i, j int) bool { return creditors[i].amount > creditors[j].amount })
	sort.SliceStable(debtors, func(i, j int) bool { return debtors[i].amount > debtors[j].amount })

	plan := Plan{Status: StatusSettled}
	if len(creditors) > 0 && len(debtors) > 0 {
		plan.Status = StatusRecommended
	}

	ci, di := 0, 0
	for ci < len(creditors) && di < len(debtors) {
		creditor := &creditors[ci]
		debtor := &debtors[di]

		amount := math.Min(creditor.amount, debtor.amount)
		rounded := math.Round(amount*100) / 100
		if rounded > 0 {
			plan.Transfers = append(plan.Transfers, Transfer{
				From:   debtor.name,
				To:     creditor.name,
				Amount: rounded,
			})
		}

		creditor.amount -= amount
		debtor.amount -= amount
		if creditor.amount < 0.01 {
			ci++
		}
		if debtor.amount < 0.01 {
			di++
		}
	}
	return plan
}
