package repository

import (
	"context"

	"github.com/Antivenom-Brazil/antivenom-app/internal/domain/entity"
	"github.com/Antivenom-Brazil/antivenom-app/internal/pkg/pagination"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/repository_mocks.go -package=mocks

// CenterRepository is the read-only port over the antivenom center
// store. Implementations must return records in a stable order so that
// equal-distance ranking ties stay reproducible.
type CenterRepository interface {
	ListAll(ctx context.Context) ([]entity.Center, error)
	GetByID(ctx context.Context, id string) (*entity.Center, error)
	List(ctx context.Context, params CenterListParams) ([]entity.Center, *pagination.Info, error)

	// Distinct values feeding the filter endpoints, sorted ascending.
	ListUFs(ctx context.Context) ([]string, error)
	ListSerumTypes(ctx context.Context) ([]string, error)
}

type CenterListParams struct {
	Pagination pagination.Params
	UF         string
}
