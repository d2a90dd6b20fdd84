package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Antivenom-Brazil/antivenom-app/internal/adapter/repository"
	"github.com/Antivenom-Brazil/antivenom-app/internal/domain"
	"github.com/Antivenom-Brazil/antivenom-app/internal/domain/entity"
	"github.com/Antivenom-Brazil/antivenom-app/internal/domain/valueobject"
	"github.com/Antivenom-Brazil/antivenom-app/internal/pkg/pagination"
)

type CenterRepo struct {
	pool *pgxpool.Pool
}

func NewCenterRepo(pool *pgxpool.Pool) *CenterRepo {
	return &CenterRepo{pool: pool}
}

const centerColumns = `id, name, municipality, uf, region, latitude, longitude,
	   serum_types, address, phone, cnes, care_type, care_info`

func (r *CenterRepo) ListAll(ctx context.Context) ([]entity.Center, error) {
	// Ordered by id so equal-distance ranking ties are reproducible.
	query := `SELECT ` + centerColumns + ` FROM centers ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying centers: %w", err)
	}
	defer rows.Close()

	return scanCenters(rows)
}

func (r *CenterRepo) GetByID(ctx context.Context, id string) (*entity.Center, error) {
	query := `SELECT ` + centerColumns + ` FROM centers WHERE id = $1`

	row := r.pool.QueryRow(ctx, query, id)
	c, err := scanCenter(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCenterNotFound
		}
		return nil, fmt.Errorf("querying center: %w", err)
	}
	return c, nil
}

func (r *CenterRepo) List(ctx context.Context, params repository.CenterListParams) ([]entity.Center, *pagination.Info, error) {
	where := ""
	args := []any{}
	if params.UF != "" {
		where = " WHERE uf = $1"
		args = append(args, params.UF)
	}

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM centers"+where, args...).Scan(&total); err != nil {
		return nil, nil, fmt.Errorf("counting centers: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT "+centerColumns+" FROM centers%s ORDER BY id LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2,
	)
	args = append(args, params.Pagination.Limit(), params.Pagination.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("querying centers: %w", err)
	}
	defer rows.Close()

	centers, err := scanCenters(rows)
	if err != nil {
		return nil, nil, err
	}

	return centers, pagination.NewInfo(params.Pagination.Page, params.Pagination.PerPage, total), nil
}

func (r *CenterRepo) ListUFs(ctx context.Context) ([]string, error) {
	return r.queryStrings(ctx, `SELECT DISTINCT uf FROM centers WHERE uf <> '' ORDER BY uf`)
}

func (r *CenterRepo) ListSerumTypes(ctx context.Context) ([]string, error) {
	return r.queryStrings(ctx, `SELECT DISTINCT unnest(serum_types) AS serum_type FROM centers ORDER BY serum_type`)
}

// Create inserts a center. It exists for dataset seeding and tests;
// the API surface itself is read-only.
func (r *CenterRepo) Create(ctx context.Context, c *entity.Center) error {
	query := `
		INSERT INTO centers (id, name, municipality, uf, region, latitude, longitude,
							 serum_types, address, phone, cnes, care_type, care_info)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.pool.Exec(ctx, query,
		c.ID, c.Name, c.Municipality, c.UF, c.Region,
		c.Coordinate.Latitude, c.Coordinate.Longitude,
		c.SerumTypes,
		nullableString(c.Address), nullableString(c.Phone), nullableString(c.CNES),
		nullableString(c.CareType), nullableString(c.CareInfo),
	)
	if err != nil {
		return fmt.Errorf("inserting center: %w", err)
	}
	return nil
}

func (r *CenterRepo) queryStrings(ctx context.Context, query string) ([]string, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying distinct values: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scanning value: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func scanCenters(rows pgx.Rows) ([]entity.Center, error) {
	var centers []entity.Center
	for rows.Next() {
		c, err := scanCenter(rows)
		if err != nil {
			return nil, err
		}
		centers = append(centers, *c)
	}
	return centers, rows.Err()
}

func scanCenter(row pgx.Row) (*entity.Center, error) {
	var c entity.Center
	var lat, lng float64
	var address, phone, cnes, careType, careInfo *string

	err := row.Scan(
		&c.ID, &c.Name, &c.Municipality, &c.UF, &c.Region,
		&lat, &lng, &c.SerumTypes,
		&address, &phone, &cnes, &careType, &careInfo,
	)
	if err != nil {
		return nil, err
	}

	coord, err := valueobject.NewCoordinate(lat, lng)
	if err != nil {
		return nil, fmt.Errorf("center %s: %w", c.ID, err)
	}
	c.Coordinate = coord

	c.Address = deref(address)
	c.Phone = deref(phone)
	c.CNES = deref(cnes)
	c.CareType = deref(careType)
	c.CareInfo = deref(careInfo)
	return &c, nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
