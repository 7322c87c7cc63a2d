// Package service implements the HTTP handlers that wire the storage
// layer and the ledger core to the JSON API.
package service

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mateshq/mates/internal/auth"
	"github.com/mateshq/mates/internal/middleware"
	"github.com/mateshq/mates/internal/models"
)

// AuthService handles registration, login, and the current-user endpoint.
type AuthService struct {
	authenticator auth.Authenticator
	users         auth.UserStorage
	jwtManager    *auth.JWTManager
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, users auth.UserStorage, jwtManager *auth.JWTManager) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		users:         users,
		jwtManager:    jwtManager,
	}
}

// RegisterRoutes attaches auth endpoints. register/login go on the public
// group, me on the authenticated group.
func (s *AuthService) RegisterRoutes(public, private *echo.Group) {
	public.POST("/auth/register", s.register)
	public.POST("/auth/login", s.login)
	private.GET("/auth/me", s.me)
}

type registerRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Password    string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	CreatedAt   int64  `json:"created_at"`
}

type sessionResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

func toUserResponse(user *models.User) userResponse {
	return userResponse{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		CreatedAt:   user.CreatedAt,
	}
}

func (s *AuthService) register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Email == "" || req.DisplayName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email and display_name are required")
	}

	user, err := s.authenticator.Register(c.Request().Context(), req.Email, req.DisplayName, req.Password)
	if err != nil {
		slog.Warn("Registration failed", "email", req.Email, "error", err)
		switch {
		case errors.Is(err, auth.ErrEmailExists):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		case errors.Is(err, auth.ErrWeakPassword):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "registration failed")
		}
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		slog.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "token generation failed")
	}

	slog.Info("User registered", "user_id", user.ID, "email", user.Email)
	return c.JSON(http.StatusCreated, sessionResponse{User: toUserResponse(user), Token: token})
}

func (s *AuthService) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email and password are required")
	}

	user, err := s.authenticator.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("Login failed", "email", req.Email)
		return echo.NewHTTPError(http.StatusUnauthorized, auth.ErrInvalidCredentials.Error())
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		slog.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "token generation failed")
	}

	slog.Info("User logged in", "user_id", user.ID)
	return c.JSON(http.StatusOK, sessionResponse{User: toUserResponse(user), Token: token})
}

func (s *AuthService) me(c echo.Context) error {
	userID := middleware.GetUserID(c)

	user, err := s.users.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		slog.Error("Failed to fetch current user", "user_id", userID, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch user")
	}
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, auth.ErrInvalidToken.Error())
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}
