package service

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mateshq/mates/internal/middleware"
	"github.com/mateshq/mates/internal/models"
	"github.com/mateshq/mates/internal/storage"
)

// ExpenseService manages recording, listing, and deleting expenses.
type ExpenseService struct {
	store storage.Store
}

// NewExpenseService creates a new ExpenseService with the given storage backend.
func NewExpenseService(store storage.Store) *ExpenseService {
	return &ExpenseService{store: store}
}

// RegisterRoutes attaches expense endpoints to the authenticated group.
func (s *ExpenseService) RegisterRoutes(g *echo.Group) {
	g.GET("/expenses", s.list)
	g.POST("/expenses", s.create)
	g.DELETE("/expenses/:id", s.delete)
}

type createExpenseRequest struct {
	Description string   `json:"description"`
	Amount      float64  `json:"amount"`
	Payer       string   `json:"payer"`
	SplitWith   []string `json:"split_with"`
	Category    string   `json:"category"`
	Date        string   `json:"date"`
}

type expenseResponse struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Amount      float64  `json:"amount"`
	Payer       string   `json:"payer"`
	SplitWith   []string `json:"split_with"`
	Category    string   `json:"category"`
	Date        string   `json:"date"`
	CreatedAt   int64    `json:"created_at"`
}

func toExpenseResponse(e *models.Expense) expenseResponse {
	splitWith := e.SplitWith
	if splitWith == nil {
		splitWith = []string{}
	}
	return expenseResponse{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		Payer:       e.Payer,
		SplitWith:   splitWith,
		Category:    e.Category,
		Date:        e.Date,
		CreatedAt:   e.CreatedAt,
	}
}

// isRosterMember checks if name is on the roster.
func isRosterMember(name string, roster []string) bool {
	for _, member := range roster {
		if member == name {
			return true
		}
	}
	return false
}

func (s *ExpenseService) create(c echo.Context) error {
	var req createExpenseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if strings.TrimSpace(req.Description) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "description is required")
	}
	if req.Amount <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "amount must be positive")
	}
	if req.Payer == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "payer is required")
	}
	if req.Date != "" {
		if _, err := time.Parse("2006-01-02", req.Date); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD")
		}
	}

	userID := middleware.GetUserID(c)
	ctx := c.Request().Context()

	// Payer and split members must be on the roster at entry time.
	// They are not re-validated afterwards.
	roster, err := s.store.GetRoster(ctx, userID)
	if err != nil {
		slog.Error("Failed to get roster", "user_id", userID, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get roster")
	}
	if !isRosterMember(req.Payer, roster) {
		return echo.NewHTTPError(http.StatusBadRequest, "payer must be on the roster")
	}
	for _, name := range req.SplitWith {
		if !isRosterMember(name, roster) {
			return echo.NewHTTPError(http.StatusBadRequest, "split_with names must be on the roster")
		}
	}

	expense := &models.Expense{
		UserID:      userID,
		Description: req.Description,
		Amount:      req.Amount,
		Payer:       req.Payer,
		SplitWith:   req.SplitWith,
		Category:    req.Category,
		Date:        req.Date,
	}
	if err := s.store.CreateExpense(ctx, expense); err != nil {
		slog.Error("Failed to create expense", "user_id", userID, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create expense")
	}

	slog.Info("Expense created", "user_id", userID, "expense_id", expense.ID, "amount", expense.Amount)
	return c.JSON(http.StatusCreated, toExpenseResponse(expense))
}

func (s *ExpenseService) list(c echo.Context) error {
	filter := storage.ExpenseFilter{
		Category: c.QueryParam("category"),
		From:     c.QueryParam("from"),
		To:       c.QueryParam("to"),
	}
	for _, date := range []string{filter.From, filter.To} {
		if date != "" {
			if _, err := time.Parse("2006-01-02", date); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "from/to must be YYYY-MM-DD")
			}
		}
	}

	userID := middleware.GetUserID(c)
	expenses, err := s.store.ListExpenses(c.Request().Context(), userID, filter)
	if err != nil {
		slog.Error("Failed to list expenses", "user_id", userID, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list expenses")
	}

	resp := make([]expenseResponse, len(expenses))
	for i := range expenses {
		resp[i] = toExpenseResponse(&expenses[i])
	}
	return c.JSON(http.StatusOK, map[string][]expenseResponse{"expenses": resp})
}

func (s *ExpenseService) delete(c echo.Context) error {
	expenseID := c.Param("id")
	userID := middleware.GetUserID(c)

	if err := s.store.DeleteExpense(c.Request().Context(), userID, expenseID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "expense not found")
		}
		slog.Error("Failed to delete expense", "user_id", userID, "expense_id", expenseID, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete expense")
	}

	slog.Info("Expense deleted", "user_id", userID, "expense_id", expenseID)
	return c.NoContent(http.StatusNoContent)
}
