package handler

import (
	"context"

	"github.com/Antivenom-Brazil/antivenom-app/internal/domain/entity"
	"github.com/Antivenom-Brazil/antivenom-app/internal/pkg/pagination"
	"github.com/Antivenom-Brazil/antivenom-app/internal/usecase/center"
	"github.com/Antivenom-Brazil/antivenom-app/internal/usecase/search"
	"github.com/Antivenom-Brazil/antivenom-app/internal/usecase/stats"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type SearchService interface {
	Search(ctx context.Context, input search.Input) ([]search.RankedCenter, error)
}

type CenterService interface {
	List(ctx context.Context, input center.ListInput) ([]entity.Center, *pagination.Info, error)
	GetByID(ctx context.Context, id string) (*entity.Center, error)
	Filters(ctx context.Context) (*center.Filters, error)
}

type StatsService interface {
	Summary(ctx context.Context) (*stats.Summary, error)
}
