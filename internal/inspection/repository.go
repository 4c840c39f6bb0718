package inspection

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const PerPage = 10

type Pagination struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	LastPage    int   `json:"last_page"`
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const inspectionColumns = `
id, user_id, order_code, vehicle_type, brand, model, year, mileage, condition,
COALESCE(notes, ''), inspection_date, inspection_time, province, city, address,
contact_phone, price::text, status, created_at, updated_at`

func (r *Repository) Insert(ctx context.Context, ins *Inspection) error {
	const q = `
INSERT INTO inspections (
  id, user_id, order_code, vehicle_type, brand, model, year, mileage, condition,
  notes, inspection_date, inspection_time, province, city, address,
  contact_phone, price, status
)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,NULLIF($10,''),$11,$12,$13,$14,$15,$16,$17,$18)
RETURNING created_at, updated_at
`
	err := r.db.QueryRow(ctx, q,
		ins.ID, ins.UserID, ins.OrderCode, ins.VehicleType, ins.Brand, ins.Model,
		ins.Year, ins.Mileage, ins.Condition, ins.Notes, ins.InspectionDate,
		ins.InspectionTime, ins.Province, ins.City, ins.Address,
		ins.ContactPhone, ins.Price.String(), ins.Status,
	).Scan(&ins.CreatedAt, &ins.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, "order_code") {
			return ErrDuplicateCode
		}
		return err
	}
	return nil
}

// ListByUser returns one page of the user's own orders, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID string, page int) ([]Inspection, Pagination, error) {
	if page < 1 {
		page = 1
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM inspections WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, Pagination{}, err
	}

	const q = `
SELECT ` + inspectionColumns + `
FROM inspections
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`
	rows, err := r.db.Query(ctx, q, userID, PerPage, (page-1)*PerPage)
	if err != nil {
		return nil, Pagination{}, err
	}
	defer rows.Close()

	items := []Inspection{}
	for rows.Next() {
		var ins Inspection
		if err := scanInspection(rows.Scan, &ins); err != nil {
			return nil, Pagination{}, err
		}
		items = append(items, ins)
	}
	if err := rows.Err(); err != nil {
		return nil, Pagination{}, err
	}

	lastPage := int((total + PerPage - 1) / PerPage)
	if lastPage < 1 {
		lastPage = 1
	}
	return items, Pagination{
		CurrentPage: page,
		PerPage:     PerPage,
		Total:       total,
		LastPage:    lastPage,
	}, nil
}

// GetByUser scopes the lookup to the owner; other users' orders are not
// visible, not even by id.
func (r *Repository) GetByUser(ctx context.Context, userID, id string) (*Inspection, error) {
	const q = `
SELECT ` + inspectionColumns + `
FROM inspections
WHERE user_id = $1 AND id = $2
`
	var ins Inspection
	if err := scanInspection(r.db.QueryRow(ctx, q, userID, id).Scan, &ins); err != nil {
		return nil, err
	}
	return &ins, nil
}

func scanInspection(scan func(dest ...any) error, ins *Inspection) error {
	var price string
	if err := scan(
		&ins.ID, &ins.UserID, &ins.OrderCode, &ins.VehicleType, &ins.Brand,
		&ins.Model, &ins.Year, &ins.Mileage, &ins.Condition, &ins.Notes,
		&ins.InspectionDate, &ins.InspectionTime, &ins.Province, &ins.City,
		&ins.Address, &ins.ContactPhone, &price, &ins.Status,
		&ins.CreatedAt, &ins.UpdatedAt,
	); err != nil {
		return err
	}

	p, err := decimal.NewFromString(price)
	if err != nil {
		return err
	}
	ins.Price = p
	return nil
}
