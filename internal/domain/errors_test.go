package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/tranndt/purchaseportal/internal/domain"
)

func TestInsufficientStockError_Is(t *testing.T) {
	err := &domain.InsufficientStockError{ProductID: "product-1", Requested: 6, Available: 4}

	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatal("InsufficientStockError must match ErrInsufficientStock")
	}
	if !domain.IsInsufficientStock(fmt.Errorf("checkout: %w", err)) {
		t.Fatal("wrapped InsufficientStockError must still match")
	}

	var stockErr *domain.InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatal("errors.As must extract InsufficientStockError")
	}
	if stockErr.ProductID != "product-1" || stockErr.Available != 4 {
		t.Fatalf("unexpected error context: %+v", stockErr)
	}
}

func TestIsNotFound(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{domain.ErrOrderNotFound, true},
		{domain.ErrCartItemNotFound, true},
		{domain.ErrProductNotFound, true},
		{fmt.Errorf("load: %w", domain.ErrOrderNotFound), true},
		{domain.ErrForbidden, false},
		{domain.ErrEmptyCart, false},
	}

	for _, tc := range cases {
		if got := domain.IsNotFound(tc.err); got != tc.want {
			t.Fatalf("IsNotFound(%v): expected %v, got %v", tc.err, tc.want, got)
		}
	}
}

func TestRoleCanManageOrders(t *testing.T) {
	cases := []struct {
		role domain.Role
		want bool
	}{
		{domain.RoleManager, true},
		{domain.RoleAdmin, true},
		{domain.RoleCustomer, false},
		{domain.RoleSupport, false},
	}

	for _, tc := range cases {
		if got := tc.role.CanManageOrders(); got != tc.want {
			t.Fatalf("%s.CanManageOrders(): expected %v, got %v", tc.role, tc.want, got)
		}
	}
}
