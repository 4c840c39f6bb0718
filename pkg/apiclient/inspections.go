package apiclient

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// InspectionRequest is the booking submission body.
type InspectionRequest struct {
	VehicleType    string `json:"vehicle_type"`
	Brand          string `json:"brand"`
	Model          string `json:"model"`
	Year           int    `json:"year"`
	Mileage        int    `json:"mileage"`
	Condition      string `json:"condition"`
	Notes          string `json:"notes,omitempty"`
	InspectionDate string `json:"inspection_date"`
	InspectionTime string `json:"inspection_time"`
	Province       string `json:"province"`
	City           string `json:"city"`
	Address        string `json:"address"`
	ContactPhone   string `json:"contact_phone"`
}

// Inspection is the server's view of a booking.
type Inspection struct {
	ID             string          `json:"id"`
	OrderCode      string          `json:"order_code"`
	VehicleType    string          `json:"vehicle_type"`
	Brand          string          `json:"brand"`
	Model          string          `json:"model"`
	Year           int             `json:"year"`
	Mileage        int             `json:"mileage"`
	Condition      string          `json:"condition"`
	Notes          string          `json:"notes"`
	InspectionDate time.Time       `json:"inspection_date"`
	InspectionTime string          `json:"inspection_time"`
	Province       string          `json:"province"`
	City           string          `json:"city"`
	Address        string          `json:"address"`
	ContactPhone   string          `json:"contact_phone"`
	Price          decimal.Decimal `json:"price"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
}

type InspectionPage struct {
	Items       []Inspection
	CurrentPage int
	PerPage     int
	Total       int64
	LastPage    int
}

func (c *Client) CreateInspection(ctx context.Context, req InspectionRequest) (*Inspection, error) {
	var out struct {
		Message string     `json:"message"`
		Data    Inspection `json:"data"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/inspections", req, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) ListInspections(ctx context.Context, page int) (*InspectionPage, error) {
	if page < 1 {
		page = 1
	}
	var out struct {
		Message string `json:"message"`
		Data    struct {
			Data        []Inspection `json:"data"`
			CurrentPage int          `json:"current_page"`
			PerPage     int          `json:"per_page"`
			Total       int64        `json:"total"`
			LastPage    int          `json:"last_page"`
		} `json:"data"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/inspections?page="+strconv.Itoa(page), nil, &out); err != nil {
		return nil, err
	}
	return &InspectionPage{
		Items:       out.Data.Data,
		CurrentPage: out.Data.CurrentPage,
		PerPage:     out.Data.PerPage,
		Total:       out.Data.Total,
		LastPage:    out.Data.LastPage,
	}, nil
}

func (c *Client) GetInspection(ctx context.Context, id string) (*Inspection, error) {
	var out struct {
		Message string     `json:"message"`
		Data    Inspection `json:"data"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/inspections/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}
