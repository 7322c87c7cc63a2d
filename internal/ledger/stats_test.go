package ledger

import (
	"math"
	"testing"

	"github.com/mateshq/mates/internal/models"
)

func TestComputeStats(t *testing.T) {
	roster := []string{"Alice", "Bob"}
	expenses := []models.Expense{
		{Description: "Rent", Amount: 500, Category: "Rent"},
		{Description: "Groceries run", Amount: 80.50, Category: "Groceries"},
		{Description: "More groceries", Amount: 19.50, Category: "Groceries"},
	}

	stats := ComputeStats(roster, expenses)

	if math.Abs(stats.Total-600) > 0.001 {
		t.Errorf("total = %v, want 600", stats.Total)
	}
	if math.Abs(stats.ByCategory["Groceries"]-100) > 0.001 {
		t.Errorf("groceries = %v, want 100", stats.ByCategory["Groceries"])
	}
	if stats.Highest.Description != "Rent" || stats.Highest.Amount != 500 {
		t.Errorf("highest = %+v, want Rent/500", stats.Highest)
	}
	if math.Abs(stats.AveragePerRoommate-300) > 0.001 {
		t.Errorf("average = %v, want 300", stats.AveragePerRoommate)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats([]string{"Alice"}, nil)
	if stats.Total != 0 || stats.AveragePerRoommate != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
	if stats.ByCategory == nil {
		t.Error("ByCategory should be initialized")
	}
}
