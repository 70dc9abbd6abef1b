package public

import (
	"errors"

	"github.com/seaside-kitchen/storefront/internal/http/response"
	"github.com/seaside-kitchen/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type updateProfileRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// Register creates a customer account and returns a session token.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	customer, err := h.CustomerAuthService.Register(service.RegisterCustomerInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			respondError(c, response.CodeConflict, "email already registered", nil)
		case errors.Is(err, service.ErrInvalidCredentials):
			respondError(c, response.CodeBadRequest, "name, email and password are required", nil)
		default:
			respondError(c, response.CodeInternal, "registration failed", err)
		}
		return
	}
	token, expiresAt, err := h.CustomerAuthService.GenerateJWT(customer)
	if err != nil {
		respondError(c, response.CodeInternal, "registration failed", err)
		return
	}
	requestLog(c).Infow("customer_registered", "customer_id", customer.ID, "email", customer.Email)
	response.SuccessWithMsg(c, "registered", gin.H{
		"customer":   customer,
		"token":      token,
		"expires_at": expiresAt,
	})
}

// Login authenticates a customer and returns a session token.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	customer, token, expiresAt, err := h.CustomerAuthService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, response.CodeUnauthorized, "invalid email or password", nil)
			return
		}
		respondError(c, response.CodeInternal, "login failed", err)
		return
	}
	response.Success(c, gin.H{
		"customer":   customer,
		"token":      token,
		"expires_at": expiresAt,
	})
}

// GetMe returns the authenticated customer's profile.
func (h *Handler) GetMe(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	customer, err := h.CustomerAuthService.GetProfile(customerID)
	if err != nil {
		if errors.Is(err, service.ErrNotAuthenticated) {
			respondError(c, response.CodeUnauthorized, "not authenticated", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to load profile", err)
		return
	}
	response.Success(c, customer)
}

// UpdateProfile edits the customer's name, phone and delivery address.
func (h *Handler) UpdateProfile(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	customer, err := h.CustomerAuthService.UpdateProfile(customerID, service.UpdateCustomerProfileInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotAuthenticated) {
			respondError(c, response.CodeUnauthorized, "not authenticated", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to update profile", err)
		return
	}
	response.SuccessWithMsg(c, "profile updated", customer)
}

// ChangePassword updates the authenticated customer's password.
func (h *Handler) ChangePassword(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	if err := h.CustomerAuthService.ChangePassword(customerID, req.OldPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrNotAuthenticated):
			respondError(c, response.CodeUnauthorized, "not authenticated", nil)
		case errors.Is(err, service.ErrInvalidCredentials):
			respondError(c, response.CodeBadRequest, "current password is incorrect", nil)
		default:
			respondError(c, response.CodeInternal, "failed to change password", err)
		}
		return
	}
	requestLog(c).Infow("customer_password_changed", "customer_id", customerID)
	response.SuccessWithMsg(c, "password changed", nil)
}
