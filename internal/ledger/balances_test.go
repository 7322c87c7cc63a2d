package ledger

import (
	"math"
	"testing"

	"github.com/mateshq/mates/internal/models"
)

func TestComputeBalances(t *testing.T) {
	tests := []struct {
		name         string
		roster       []string
		expenses     []models.Expense
		validateFunc func(t *testing.T, balances map[string]Balance)
	}{
		{
			name:     "empty roster and no expenses",
			roster:   nil,
			expenses: nil,
			validateFunc: func(t *testing.T, balances map[string]Balance) {
				if len(balances) != 0 {
					t.Errorf("expected empty balances, got %d entries", len(balances))
				}
			},
		},
		{
			name:     "roster without expenses gets zero entries",
			roster:   []string{"Alice", "Bob"},
			expenses: nil,
			validateFunc: func(t *testing.T, balances map[string]Balance) {
				if len(balances) != 2 {
					t.Fatalf("expected 2 entries, got %d", len(balances))
				}
				for name, b := range balances {
					if b.Paid != 0 || b.Owed != 0 || b.Net != 0 {
						t.Errorf("%s = %+v, want all zeros", name, b)
					}
				}
			},
		},
		{
			name:   "two-party even split",
			roster: []string{"Alice", "Bob"},
			expenses: []models.Expense{
				{Description: "Dinner", Amount: 100, Payer: "Alice", SplitWith: []string{"Alice", "Bob"}},
			},
			validateFunc: func(t *testing.T, balances map[string]Balance) {
				alice := balances["Alice"]
				if math.Abs(alice.Paid-100) > 0.001 {
					t.Errorf("Alice paid = %v, want 100", alice.Paid)
				}
				if math.Abs(alice.Owed-50) > 0.001 {
					t.Errorf("Alice owed = %v, want 50", alice.Owed)
				}
				if math.Abs(alice.Net-50) > 0.001 {
					t.Errorf("Alice net = %v, want 50", alice.Net)
				}
				bob := balances["Bob"]
				if math.Abs(bob.Net+50) > 0.001 {
					t.Errorf("Bob net = %v, want -50", bob.Net)
				}
			},
		},
		{
			name:   "empty split set falls back to full roster",
			roster: []string{"Alice", "Bob", "Charlie"},
			expenses: []models.Expense{
				{Description: "Groceries", Amount: 30, Payer: "Alice"},
			},
			validateFunc: func(t *testing.T, balances map[string]Balance) {
				for _, name := range []string{"Alice", "Bob", "Charlie"} {
					if math.Abs(balances[name].Owed-10) > 0.001 {
						t.Errorf("%s owed = %v, want 10", name, balances[name].Owed)
					}
				}
				if math.Abs(balances["Alice"].Net-20) > 0.001 {
					t.Errorf("Alice net = %v, want 20", balances["Alice"].Net)
				}
			},
		},
		{
			name:   "removed payer loses credit but debts remain",
			roster: []string{"Bob", "Charlie"},
			expenses: []models.Expense{
				{Description: "Rent", Amount: 90, Payer: "Alice", SplitWith: []string{"Alice", "Bob", "Charlie"}},
			},
			validateFunc: func(t *testing.T, balances map[string]Balance) {
				if _, ok := balances["Alice"]; ok {
					t.Error("Alice should not appear in balances after removal")
				}
				for _, name := range []string{"Bob", "Charlie"} {
					if math.Abs(balances[name].Owed-30) > 0.001 {
						t.Errorf("%s owed = %v, want 30", name, balances[name].Owed)
					}
					if balances[name].Paid != 0 {
						t.Errorf("%s paid = %v, want 0", name, balances[name].Paid)
					}
				}
			},
		},
		{
			name:   "empty roster with empty split contributes nothing",
			roster: nil,
			expenses: []models.Expense{
				{Description: "Orphaned", Amount: 40, Payer: "Alice"},
			},
			validateFunc: func(t *testing.T, balances map[string]Balance) {
				if len(balances) != 0 {
					t.Errorf("expected no entries, got %d", len(balances))
				}
			},
		},
		{
			name:   "multiple expenses accumulate",
			roster: []string{"Alice", "Bob"},
			expenses: []models.Expense{
				{Description: "Rent", Amount: 100, Payer: "Alice", SplitWith: []string{"Alice", "Bob"}},
				{Description: "Internet", Amount: 40, Payer: "Bob", SplitWith: []string{"Alice", "Bob"}},
			},
			validateFunc: func(t *testing.T, balances map[string]Balance) {
				alice := balances["Alice"]
				if math.Abs(alice.Paid-100) > 0.001 || math.Abs(alice.Owed-70) > 0.001 {
					t.Errorf("Alice = %+v, want paid 100 owed 70", alice)
				}
				if math.Abs(alice.Net-30) > 0.001 {
					t.Errorf("Alice net = %v, want 30", alice.Net)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balances := ComputeBalances(tt.roster, tt.expenses)
			tt.validateFunc(t, balances)
		})
	}
}

// When every payer and every split member is on the roster, each expense
// credits and debits the same amount, so the nets must cancel out.
func TestComputeBalancesZeroSum(t *testing.T) {
	roster := []string{"Alice", "Bob", "Charlie", "Diana"}
	expenses := []models.Expense{
		{Amount: 120.50, Payer: "Alice", SplitWith: []string{"Alice", "Bob", "Charlie"}},
		{Amount: 33.33, Payer: "Bob"}, // full-roster split
		{Amount: 7.25, Payer: "Diana", SplitWith: []string{"Charlie"}},
		{Amount: 0, Payer: "Charlie", SplitWith: []string{"Alice"}},
	}

	balances := ComputeBalances(roster, expenses)

	var sum float64
	for _, b := range balances {
		sum += b.Net
	}
	if math.Abs(sum) > 1e-9 {
		t.Errorf("sum of nets = %v, want 0", sum)
	}
}

func TestComputeBalancesIdempotent(t *testing.T) {
	roster := []string{"Alice", "Bob"}
	expenses := []models.Expense{
		{Amount: 99.99, Payer: "Alice", SplitWith: []string{"Alice", "Bob"}},
	}

	first := ComputeBalances(roster, expenses)
	second := ComputeBalances(roster, expenses)

	for name, b := range first {
		if second[name] != b {
			t.Errorf("%s differs between runs: %+v vs %+v", name, b, second[name])
		}
	}
}
