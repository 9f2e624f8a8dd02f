package repository

import (
	"context"

	"github.com/appdotbuilder/pos-system-9aa7/internal/domain/entity"
	"github.com/google/uuid"
)

// IdempotencyRepository defines idempotency key data access operations
type IdempotencyRepository interface {
	GetByKey(ctx context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error)
	Create(ctx context.Context, ikey *entity.IdempotencyKey) error
	DeleteExpired(ctx context.Context) error
}
