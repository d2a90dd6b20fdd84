package center

import (
	"context"
	"fmt"

	"github.com/Antivenom-Brazil/antivenom-app/internal/adapter/repository"
	"github.com/Antivenom-Brazil/antivenom-app/internal/domain/entity"
	"github.com/Antivenom-Brazil/antivenom-app/internal/pkg/pagination"
)

type Service struct {
	centerRepo repository.CenterRepository
}

func NewService(centerRepo repository.CenterRepository) *Service {
	return &Service{centerRepo: centerRepo}
}

type ListInput struct {
	Page    int
	PerPage int
	UF      string
}

func (s *Service) List(ctx context.Context, input ListInput) ([]entity.Center, *pagination.Info, error) {
	params := repository.CenterListParams{
		Pagination: pagination.NewParams(input.Page, input.PerPage),
		UF:         input.UF,
	}

	centers, pageInfo, err := s.centerRepo.List(ctx, params)
	if err != nil {
		return nil, nil, fmt.Errorf("listing centers: %w", err)
	}
	return centers, pageInfo, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*entity.Center, error) {
	return s.centerRepo.GetByID(ctx, id)
}

// Filters holds the distinct values a client can filter searches by.
type Filters struct {
	UFs        []string
	SerumTypes []string
}

func (s *Service) Filters(ctx context.Context) (*Filters, error) {
	ufs, err := s.centerRepo.ListUFs(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing ufs: %w", err)
	}
	serumTypes, err := s.centerRepo.ListSerumTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing serum types: %w", err)
	}
	return &Filters{UFs: ufs, SerumTypes: serumTypes}, nil
}
