package memory_test

import (
	"time"

	"github.com/tranndt/purchaseportal/internal/domain"
)

// helpers для наполнения in-memory хранилища в тестах.

func newProduct(id string, stock int32) domain.Product {
	now := time.Now().UTC()
	return domain.Product{
		ID:            id,
		Name:          "Laptop",
		Category:      "Electronics",
		PriceMinor:    2000,
		StockQuantity: stock,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func newCartItem(id, customerID, productID string, qty int32) domain.CartItem {
	now := time.Now().UTC()
	return domain.CartItem{
		ID:         id,
		CustomerID: customerID,
		ProductID:  productID,
		Quantity:   qty,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func newOrder(id, customerID, productID string, qty int32) domain.Order {
	now := time.Now().UTC()
	return domain.Order{
		ID:             id,
		CustomerID:     customerID,
		ProductID:      productID,
		Quantity:       qty,
		UnitPriceMinor: 2000,
		TotalMinor:     int64(qty) * 2000,
		TransactionID:  "TXN-20260101120000-" + customerID + "-abcd1234",
		Status:         domain.OrderStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
