package service

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mateshq/mates/internal/middleware"
	"github.com/mateshq/mates/internal/storage"
)

// RosterService manages the per-user roommate roster and category list.
type RosterService struct {
	store storage.Store
}

// NewRosterService creates a new RosterService with the given storage backend.
func NewRosterService(store storage.Store) *RosterService {
	return &RosterService{store: store}
}

// RegisterRoutes attaches roster and category endpoints to the
// authenticated group.
func (s *RosterService) RegisterRoutes(g *echo.Group) {
	g.GET("/roommates", s.listRoommates)
	g.POST("/roommates", s.addRoommate)
	g.DELETE("/roommates/:name", s.removeRoommate)
	g.GET("/categories", s.listCategories)
	g.POST("/categories", s.addCategory)
}

type nameRequest struct {
	Name string `json:"name"`
}

func (s *RosterService) listRoommates(c echo.Context) error {
	roster, err := s.store.GetRoster(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		slog.Error("Failed to list roommates", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list roommates")
	}
	if roster == nil {
		roster = []string{}
	}
	return c.JSON(http.StatusOK, map[string][]string{"roommates": roster})
}

func (s *RosterService) addRoommate(c echo.Context) error {
	var req nameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	userID := middleware.GetUserID(c)
	if err := s.store.AddRoommate(c.Request().Context(), userID, name); err != nil {
		if errors.Is(err, storage.ErrDuplicateRoommate) {
			return echo.NewHTTPError(http.StatusConflict, "roommate already exists")
		}
		slog.Error("Failed to add roommate", "user_id", userID, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to add roommate")
	}

	slog.Info("Roommate added", "user_id", userID, "name", name)
	return c.NoContent(http.StatusCreated)
}

func (s *RosterService) removeRoommate(c echo.Context) error {
	name := c.Param("name")
	userID := middleware.GetUserID(c)

	if err := s.store.RemoveRoommate(c.Request().Context(), userID, name); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "roommate not found")
		}
		slog.Error("Failed to remove roommate", "user_id", userID, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to remove roommate")
	}

	// Historical expenses referencing the name are left as-is; the
	// ledger drops their contributions from future balance runs.
	slog.Info("Roommate removed", "user_id", userID, "name", name)
	return c.NoContent(http.StatusNoContent)
}

func (s *RosterService) listCategories(c echo.Context) error {
	categories, err := s.store.ListCategories(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		slog.Error("Failed to list categories", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list categories")
	}
	if categories == nil {
		categories = []string{}
	}
	return c.JSON(http.StatusOK, map[string][]string{"categories": categories})
}

func (s *RosterService) addCategory(c echo.Context) error {
	var req nameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	userID := middleware.GetUserID(c)
	if err := s.store.AddCategory(c.Request().Context(), userID, name); err != nil {
		if errors.Is(err, storage.ErrDuplicateCategory) {
			return echo.NewHTTPError(http.StatusConflict, "category already exists")
		}
		slog.Error("Failed to add category", "user_id", userID, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to add category")
	}

	slog.Info("Category added", "user_id", userID, "name", name)
	return c.NoContent(http.StatusCreated)
}
