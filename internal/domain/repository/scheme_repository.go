package repository

import (
	"context"

	"scheme-directory/internal/domain/entity"
)

// SchemeRepository executes scheme statements built by the schemequery package.
type SchemeRepository interface {
	Count(ctx context.Context, query string, args []interface{}) (int64, error)
	Find(ctx context.Context, query string, args []interface{}) ([]entity.Scheme, error)
	FindAll(ctx context.Context) ([]entity.Scheme, error)
}
