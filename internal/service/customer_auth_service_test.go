package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/seaside-kitchen/storefront/internal/config"
	"github.com/seaside-kitchen/storefront/internal/repository"
)

func newCustomerAuthFixture(t *testing.T) *CustomerAuthService {
	t.Helper()

	cfg := &config.Config{}
	cfg.CustomerJWT.SecretKey = "test-secret"
	cfg.CustomerJWT.ExpireHours = 1
	return NewCustomerAuthService(cfg, repository.NewCustomerRepository(newTestDB(t)))
}

func TestCustomerChangePassword(t *testing.T) {
	auth := newCustomerAuthFixture(t)

	customer, err := auth.Register(RegisterCustomerInput{
		Name:     "Meera",
		Email:    "meera@example.com",
		Password: "original-pass",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := auth.ChangePassword(customer.ID, "wrong-pass", "new-pass-123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong old password, got %v", err)
	}
	if err := auth.ChangePassword(customer.ID, "original-pass", "new-pass-123"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}

	if _, _, _, err := auth.Login("meera@example.com", "new-pass-123"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
	if _, _, _, err := auth.Login("meera@example.com", "original-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("old password must stop working, got %v", err)
	}
}

func TestCustomerChangePasswordUnknownAccount(t *testing.T) {
	auth := newCustomerAuthFixture(t)

	if err := auth.ChangePassword(999, "whatever", "new-pass-123"); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestListCustomersKeywordAndPaging(t *testing.T) {
	auth := newCustomerAuthFixture(t)

	for i := 0; i < 3; i++ {
		if _, err := auth.Register(RegisterCustomerInput{
			Name:     fmt.Sprintf("Regular %d", i),
			Email:    fmt.Sprintf("regular%d@example.com", i),
			Password: "password",
		}); err != nil {
			t.Fatalf("register failed: %v", err)
		}
	}
	if _, err := auth.Register(RegisterCustomerInput{
		Name:     "Meera",
		Email:    "meera@example.com",
		Password: "password",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	customers, total, err := auth.ListCustomers(repository.CustomerListFilter{Page: 1, PageSize: 10, Keyword: "meera"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(customers) != 1 || customers[0].Email != "meera@example.com" {
		t.Fatalf("keyword filter: total=%d customers=%+v", total, customers)
	}

	customers, total, err = auth.ListCustomers(repository.CustomerListFilter{Page: 2, PageSize: 3})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 4 || len(customers) != 1 {
		t.Fatalf("paging: total=%d page_len=%d, want 4/1", total, len(customers))
	}
}
