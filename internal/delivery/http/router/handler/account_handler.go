// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"markethub/internal/delivery/http/middleware"
	"markethub/internal/delivery/http/response"
	"markethub/internal/domain/entity"
	"markethub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerRequest struct {
	Email           string  `json:"email" validate:"required"`
	Role            string  `json:"role" validate:"required"`
	FirstName       string  `json:"first_name" validate:"required"`
	LastName        string  `json:"last_name" validate:"required"`
	Password        string  `json:"password" validate:"required"`
	ConfirmPassword string  `json:"confirm_password" validate:"required"`
	Phone           *string `json:"phone"`
	Website         *string `json:"website"`
	BusinessName    *string `json:"business_name"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	FirstName       *string `json:"first_name"`
	LastName        *string `json:"last_name"`
	Phone           *string `json:"phone"`
	Website         *string `json:"website"`
	BusinessName    *string `json:"business_name"`
	NewPassword     string  `json:"new_password"`
	ConfirmPassword string  `json:"confirm_password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type logoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// accountResponse is the public view of an account, without the password hash.
type accountResponse struct {
	Email        string     `json:"email"`
	Role         string     `json:"role"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Phone        *string    `json:"phone,omitempty"`
	Website      *string    `json:"website,omitempty"`
	BusinessName *string    `json:"business_name,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

func toAccountResponse(account *entity.Account) *accountResponse {
	return &accountResponse{
		Email:        account.Email,
		Role:         account.Role.String(),
		FirstName:    account.FirstName,
		LastName:     account.LastName,
		Phone:        account.Phone,
		Website:      account.Website,
		BusinessName: account.BusinessName,
		Status:       account.Status.String(),
		CreatedAt:    account.CreatedAt,
		LastLogin:    account.LastLogin,
	}
}

// Register handles the account registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:           req.Email,
		Role:            req.Role,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Phone:           req.Phone,
		Website:         req.Website,
		BusinessName:    req.BusinessName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAccountResponse(output.Account), "Account registered successfully")
}

// Login handles the login request.
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"access_token":  output.AccessToken,
		"refresh_token": output.RefreshToken,
		"account":       toAccountResponse(output.Account),
	}, "Login successful")
}

// Refresh exchanges a refresh token for a rotated token pair.
func (h *AccountHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Refresh(c.Request().Context(), &usecase.RefreshInput{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"access_token":  output.AccessToken,
		"refresh_token": output.RefreshToken,
	}, "Token refreshed")
}

// GetProfile returns the authenticated account's profile.
func (h *AccountHandler) GetProfile(c echo.Context) error {
	account, err := h.uc.GetProfile(c.Request().Context(), middleware.AccountEmail(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account), "")
}

// UpdateProfile applies a partial profile update.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	output, err := h.uc.UpdateProfile(c.Request().Context(), middleware.AccountEmail(c), &usecase.UpdateProfileInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Phone:           req.Phone,
		Website:         req.Website,
		BusinessName:    req.BusinessName,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Profile updated"
	if !output.Updated {
		message = "No changes submitted"
	}

	return response.Success(c, http.StatusOK, map[string]bool{"updated": output.Updated}, message)
}

// Deactivate soft-deletes the authenticated account.
func (h *AccountHandler) Deactivate(c echo.Context) error {
	if err := h.uc.Deactivate(c.Request().Context(), middleware.AccountEmail(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account deactivated")
}

// Logout invalidates the presented session.
func (h *AccountHandler) Logout(c echo.Context) error {
	var req logoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid logout input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := h.uc.Logout(c.Request().Context(), middleware.AccountEmail(c), &usecase.LogoutInput{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Successfully logged out")
}
