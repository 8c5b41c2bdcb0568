package memory

import (
	"context"

	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/database"
)

type transactorImpl struct{}

// NewTransactor returns a pass-through: every repository call on the memory
// store is already atomic under the store mutex.
func NewTransactor() database.Transactor {
	return &transactorImpl{}
}

func (t *transactorImpl) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
