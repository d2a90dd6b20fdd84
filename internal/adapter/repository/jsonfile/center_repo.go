// Package jsonfile serves the center dataset from the centros.json
// artifact shipped with the application. The file is decoded once and
// cached for the life of the process; the dataset is static between
// releases.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/Antivenom-Brazil/antivenom-app/internal/adapter/repository"
	"github.com/Antivenom-Brazil/antivenom-app/internal/domain"
	"github.com/Antivenom-Brazil/antivenom-app/internal/domain/entity"
	"github.com/Antivenom-Brazil/antivenom-app/internal/domain/valueobject"
	"github.com/Antivenom-Brazil/antivenom-app/internal/pkg/pagination"
)

type CenterRepo struct {
	path   string
	logger *zap.Logger

	mu      sync.Mutex
	centers []entity.Center
	loaded  bool
}

func NewCenterRepo(path string, logger *zap.Logger) *CenterRepo {
	return &CenterRepo{path: path, logger: logger}
}

// centerRecord mirrors the centros.json schema. Optional fields are
// nullable in the dataset.
type centerRecord struct {
	ID              string   `json:"id"`
	Nome            string   `json:"nome"`
	Municipio       string   `json:"municipio"`
	UF              string   `json:"uf"`
	Regiao          string   `json:"regiao"`
	Latitude        float64  `json:"latitude"`
	Longitude       float64  `json:"longitude"`
	TiposSoro       []string `json:"tiposSoro"`
	Endereco        *string  `json:"endereco"`
	Telefone        *string  `json:"telefone"`
	CNES            *string  `json:"cnes"`
	AtendimentoTipo *string  `json:"atendimentoTipo"`
	AtendimentoInfo *string  `json:"atendimentoInfo"`
}

// load decodes the dataset on first use and keeps it cached. Records
// with an invalid coordinate are skipped, not fatal: the rest of the
// dataset is still useful and the search core assumes stored records
// are well-formed.
func (r *CenterRepo) load() ([]entity.Center, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.loaded {
		return r.centers, nil
	}

	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("reading center dataset: %w", err)
	}

	var records []centerRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decoding center dataset: %w", err)
	}

	centers := make([]entity.Center, 0, len(records))
	for _, rec := range records {
		coord, err := valueobject.NewCoordinate(rec.Latitude, rec.Longitude)
		if err != nil {
			r.logger.Warn("skipping center with invalid coordinate",
				zap.String("id", rec.ID),
				zap.Float64("latitude", rec.Latitude),
				zap.Float64("longitude", rec.Longitude),
			)
			continue
		}
		centers = append(centers, entity.Center{
			ID:           rec.ID,
			Name:         rec.Nome,
			Municipality: rec.Municipio,
			UF:           rec.UF,
			Region:       rec.Regiao,
			Coordinate:   coord,
			SerumTypes:   rec.TiposSoro,
			Address:      deref(rec.Endereco),
			Phone:        deref(rec.Telefone),
			CNES:         deref(rec.CNES),
			CareType:     deref(rec.AtendimentoTipo),
			CareInfo:     deref(rec.AtendimentoInfo),
		})
	}

	r.centers = centers
	r.loaded = true
	r.logger.Info("center dataset loaded",
		zap.String("path", r.path),
		zap.Int("centers", len(centers)),
		zap.Int("skipped", len(records)-len(centers)),
	)
	return r.centers, nil
}

// ListAll returns a copy of the cached dataset so callers can never
// mutate the shared slice.
func (r *CenterRepo) ListAll(_ context.Context) ([]entity.Center, error) {
	centers, err := r.load()
	if err != nil {
		return nil, err
	}
	out := make([]entity.Center, len(centers))
	copy(out, centers)
	return out, nil
}

func (r *CenterRepo) GetByID(_ context.Context, id string) (*entity.Center, error) {
	centers, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range centers {
		if centers[i].ID == id {
			c := centers[i]
			return &c, nil
		}
	}
	return nil, domain.ErrCenterNotFound
}

func (r *CenterRepo) List(_ context.Context, params repository.CenterListParams) ([]entity.Center, *pagination.Info, error) {
	centers, err := r.load()
	if err != nil {
		return nil, nil, err
	}

	filtered := centers
	if params.UF != "" {
		filtered = make([]entity.Center, 0)
		for i := range centers {
			if centers[i].UF == params.UF {
				filtered = append(filtered, centers[i])
			}
		}
	}

	total := len(filtered)
	start := params.Pagination.Offset()
	if start > total {
		start = total
	}
	end := start + params.Pagination.Limit()
	if end > total {
		end = total
	}

	page := make([]entity.Center, end-start)
	copy(page, filtered[start:end])

	return page, pagination.NewInfo(params.Pagination.Page, params.Pagination.PerPage, total), nil
}

func (r *CenterRepo) ListUFs(_ context.Context) ([]string, error) {
	centers, err := r.load()
	if err != nil {
		return nil, err
	}
	return distinct(centers, func(c *entity.Center) []string {
		if c.UF == "" {
			return nil
		}
		return []string{c.UF}
	}), nil
}

func (r *CenterRepo) ListSerumTypes(_ context.Context) ([]string, error) {
	centers, err := r.load()
	if err != nil {
		return nil, err
	}
	return distinct(centers, func(c *entity.Center) []string {
		return c.SerumTypes
	}), nil
}

func distinct(centers []entity.Center, values func(*entity.Center) []string) []string {
	seen := make(map[string]struct{})
	for i := range centers {
		for _, v := range values(&centers[i]) {
			seen[v] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
