package inspection

import (
	"time"

	"github.com/shopspring/decimal"
)

type VehicleType string

const (
	VehicleCar        VehicleType = "car"
	VehicleMotorcycle VehicleType = "motorcycle"
)

func ValidVehicleType(s string) bool {
	switch VehicleType(s) {
	case VehicleCar, VehicleMotorcycle:
		return true
	default:
		return false
	}
}

type Condition string

const (
	ConditionExcellent Condition = "excellent"
	ConditionGood      Condition = "good"
	ConditionFair      Condition = "fair"
	ConditionPoor      Condition = "poor"
)

func ValidCondition(s string) bool {
	switch Condition(s) {
	case ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor:
		return true
	default:
		return false
	}
}

// Inspection is one booking record. The order code is assigned exactly once
// at creation and never changes; status transitions are performed by the
// back office.
type Inspection struct {
	ID             string          `json:"id"`
	UserID         string          `json:"user_id"`
	OrderCode      string          `json:"order_code"`
	VehicleType    VehicleType     `json:"vehicle_type"`
	Brand          string          `json:"brand"`
	Model          string          `json:"model"`
	Year           int             `json:"year"`
	Mileage        int             `json:"mileage"`
	Condition      Condition       `json:"condition"`
	Notes          string          `json:"notes,omitempty"`
	InspectionDate time.Time       `json:"inspection_date"`
	InspectionTime string          `json:"inspection_time"`
	Province       string          `json:"province"`
	City           string          `json:"city"`
	Address        string          `json:"address"`
	ContactPhone   string          `json:"contact_phone"`
	Price          decimal.Decimal `json:"price"`
	Status         Status          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
