package service

import (
	"errors"
	"strings"
	"time"

	"github.com/seaside-kitchen/storefront/internal/config"
	"github.com/seaside-kitchen/storefront/internal/models"
	"github.com/seaside-kitchen/storefront/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// RegisterCustomerInput carries a signup request.
type RegisterCustomerInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Address  string
}

// UpdateCustomerProfileInput carries profile edits.
type UpdateCustomerProfileInput struct {
	Name    string
	Phone   string
	Address string
}

// CustomerClaims are the customer token claims.
type CustomerClaims struct {
	CustomerID uint   `json:"customer_id"`
	Email      string `json:"email"`
	jwt.RegisteredClaims
}

// CustomerAuthService handles customer signup, login and profile.
type CustomerAuthService struct {
	cfg          *config.Config
	customerRepo repository.CustomerRepository
}

// NewCustomerAuthService creates a customer auth service.
func NewCustomerAuthService(cfg *config.Config, customerRepo repository.CustomerRepository) *CustomerAuthService {
	return &CustomerAuthService{
		cfg:          cfg,
		customerRepo: customerRepo,
	}
}

// Register creates a customer account.
func (s *CustomerAuthService) Register(input RegisterCustomerInput) (*models.Customer, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	name := strings.TrimSpace(input.Name)
	if email == "" || name == "" || input.Password == "" {
		return nil, ErrInvalidCredentials
	}
	existing, err := s.customerRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	customer := &models.Customer{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Phone:        strings.TrimSpace(input.Phone),
		Address:      strings.TrimSpace(input.Address),
	}
	if err := s.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Login authenticates a customer and issues a token.
func (s *CustomerAuthService) Login(email, password string) (*models.Customer, string, time.Time, error) {
	customer, err := s.customerRepo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if customer == nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(password)); err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	token, expiresAt, err := s.GenerateJWT(customer)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return customer, token, expiresAt, nil
}

// GenerateJWT signs a customer token.
func (s *CustomerAuthService) GenerateJWT(customer *models.Customer) (string, time.Time, error) {
	expiresAt := time.Now().Add(time.Duration(s.cfg.CustomerJWT.ExpireHours) * time.Hour)

	claims := CustomerClaims{
		CustomerID: customer.ID,
		Email:      customer.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.CustomerJWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseJWT validates and decodes a customer token.
func (s *CustomerAuthService) ParseJWT(tokenString string) (*CustomerClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, &CustomerClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.CustomerJWT.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*CustomerClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// GetProfile fetches a customer account.
func (s *CustomerAuthService) GetProfile(customerID uint) (*models.Customer, error) {
	if customerID == 0 {
		return nil, ErrNotAuthenticated
	}
	customer, err := s.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrNotAuthenticated
	}
	return customer, nil
}

// ChangePassword rotates a customer's password.
func (s *CustomerAuthService) ChangePassword(customerID uint, oldPassword, newPassword string) error {
	customer, err := s.GetProfile(customerID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(oldPassword)); err != nil {
		return ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	customer.PasswordHash = string(hash)
	return s.customerRepo.Update(customer)
}

// ListCustomers returns customer accounts for the staff view.
func (s *CustomerAuthService) ListCustomers(filter repository.CustomerListFilter) ([]models.Customer, int64, error) {
	return s.customerRepo.List(filter)
}

// UpdateProfile edits the customer's delivery details.
func (s *CustomerAuthService) UpdateProfile(customerID uint, input UpdateCustomerProfileInput) (*models.Customer, error) {
	customer, err := s.GetProfile(customerID)
	if err != nil {
		return nil, err
	}
	if name := strings.TrimSpace(input.Name); name != "" {
		customer.Name = name
	}
	customer.Phone = strings.TrimSpace(input.Phone)
	customer.Address = strings.TrimSpace(input.Address)
	if err := s.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}
