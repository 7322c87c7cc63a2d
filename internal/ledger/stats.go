package ledger

import "github.com/mateshq/mates/internal/models"

// HighestExpense identifies the single largest expense.
type HighestExpense struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// Stats summarizes spending across all expenses.
type Stats struct {
	Total              float64            `json:"total"`
	ByCategory         map[string]float64 `json:"by_category"`
	Highest            HighestExpense     `json:"highest"`
	AveragePerRoommate float64            `json:"average_per_roommate"`
}

// ComputeStats aggregates total spend, per-category totals, the highest
// single expense, and the average spend per roster member.
func ComputeStats(roster []string, expenses []models.Expense) Stats {
	stats := Stats{ByCategory: make(map[string]float64)}
	if len(expenses) == 0 {
		return stats
	}

	for _, exp := range expenses {
		stats.Total += exp.Amount
		stats.ByCategory[exp.Category] += exp.Amount
		if exp.Amount > stats.Highest.Amount {
			stats.Highest = HighestExpense{Amount: exp.Amount, Description: exp.Description}
		}
	}
	if len(roster) > 0 {
		stats.AveragePerRoommate = stats.Total / float64(len(roster))
	}
	return stats
}
