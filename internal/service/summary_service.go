package service

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mateshq/mates/internal/ledger"
	"github.com/mateshq/mates/internal/middleware"
	"github.com/mateshq/mates/internal/models"
	"github.com/mateshq/mates/internal/storage"
)

// SummaryService exposes the derived views: per-roommate balances, the
// settlement plan, and spending statistics. Results are recomputed from
// the stored roster and expenses on every request; nothing derived is
// ever persisted.
type SummaryService struct {
	store storage.Store
}

// NewSummaryService creates a new SummaryService with the given storage backend.
func NewSummaryService(store storage.Store) *SummaryService {
	return &SummaryService{store: store}
}

// RegisterRoutes attaches summary endpoints to the authenticated group.
func (s *SummaryService) RegisterRoutes(g *echo.Group) {
	g.GET("/summary", s.summary)
	g.GET("/settlements", s.settlements)
	g.GET("/stats", s.stats)
}

// memberBalance pairs a roster name with its balance for ordered output.
type memberBalance struct {
	Name string `json:"name"`
	ledger.Balance
}

// loadInputs fetches the roster and full expense list for the ledger.
func (s *SummaryService) loadInputs(c echo.Context) ([]string, []models.Expense, error) {
	userID := middleware.GetUserID(c)
	ctx := c.Request().Context()

	roster, err := s.store.GetRoster(ctx, userID)
	if err != nil {
		slog.Error("Failed to get roster", "user_id", userID, "error", err)
		return nil, nil, echo.NewHTTPError(http.StatusInternalServerError, "failed to get roster")
	}
	expenses, err := s.store.ListExpenses(ctx, userID, storage.ExpenseFilter{})
	if err != nil {
		slog.Error("Failed to list expenses", "user_id", userID, "error", err)
		return nil, nil, echo.NewHTTPError(http.StatusInternalServerError, "failed to list expenses")
	}
	return roster, expenses, nil
}

func (s *SummaryService) summary(c echo.Context) error {
	roster, expenses, err := s.loadInputs(c)
	if err != nil {
		return err
	}

	balances := ledger.ComputeBalances(roster, expenses)

	// Emit in roster order so clients get a stable listing.
	resp := make([]memberBalance, 0, len(roster))
	for _, name := range roster {
		resp = append(resp, memberBalance{Name: name, Balance: balances[name]})
	}
	return c.JSON(http.StatusOK, map[string][]memberBalance{"balances": resp})
}

func (s *SummaryService) settlements(c echo.Context) error {
	roster, expenses, err := s.loadInputs(c)
	if err != nil {
		return err
	}

	balances := ledger.ComputeBalances(roster, expenses)
	plan := ledger.PlanSettlements(roster, balances)
	if plan.Transfers == nil {
		plan.Transfers = []ledger.Transfer{}
	}
	return c.JSON(http.StatusOK, plan)
}

func (s *SummaryService) stats(c echo.Context) error {
	roster, expenses, err := s.loadInputs(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ledger.ComputeStats(roster, expenses))
}
