package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrDuplicateSaleNumber is returned when a generated sale number collides
// with an existing one. Callers regenerate the number and retry.
var ErrDuplicateSaleNumber = errors.New("sale number already exists")

// StockConflictError is returned when a conditional stock decrement affects
// zero rows. It carries the current available quantity read inside the same
// transaction so callers can build a precise error message.
type StockConflictError struct {
	ProductID   uuid.UUID
	ProductName string
	Available   int
}

func (e *StockConflictError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: %d available", e.ProductName, e.Available)
}
