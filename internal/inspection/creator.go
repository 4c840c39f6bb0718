package inspection

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"otoman/internal/validate"
)

// ErrDuplicateCode is returned by a Store when an insert loses the race on
// the order_code unique constraint.
var ErrDuplicateCode = errors.New("order code already exists")

type Store interface {
	Insert(ctx context.Context, ins *Inspection) error
}

// DefaultMaxAttempts bounds order-code regeneration. At low order volumes a
// single attempt almost always succeeds; repeated collisions mean something
// is wrong with the store and should surface instead of looping.
const DefaultMaxAttempts = 5

// Creator assigns an order code and persists a new booking. The existence of
// a colliding code is detected at write time, not checked beforehand: the
// unique constraint is the source of truth and a violation regenerates the
// code and retries the whole insert.
type Creator struct {
	Store       Store
	Price       decimal.Decimal
	MaxAttempts int
}

func (c Creator) Create(ctx context.Context, userID string, req CreateRequest, now time.Time) (*Inspection, error) {
	attempts := c.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}

	date, err := time.ParseInLocation("2006-01-02", req.InspectionDate, now.Location())
	if err != nil {
		return nil, fmt.Errorf("parse inspection date: %w", err)
	}

	for i := 0; i < attempts; i++ {
		code, err := GenerateOrderCode()
		if err != nil {
			return nil, err
		}

		ins := &Inspection{
			ID:             uuid.NewString(),
			UserID:         userID,
			OrderCode:      code,
			VehicleType:    VehicleType(req.VehicleType),
			Brand:          req.Brand,
			Model:          req.Model,
			Year:           req.Year,
			Mileage:        req.Mileage,
			Condition:      Condition(req.Condition),
			Notes:          req.Notes,
			InspectionDate: date,
			InspectionTime: req.InspectionTime,
			Province:       req.Province,
			City:           req.City,
			Address:        req.Address,
			ContactPhone:   validate.NormalizePhone(req.ContactPhone),
			Price:          c.Price,
			Status:         StatusPending,
		}

		err = c.Store.Insert(ctx, ins)
		if errors.Is(err, ErrDuplicateCode) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return ins, nil
	}

	return nil, fmt.Errorf("order code collision persisted after %d attempts", attempts)
}
