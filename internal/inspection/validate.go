package inspection

import (
	"time"

	"otoman/internal/validate"
)

// MinLeadDays is the minimum number of calendar days between submission and
// the requested inspection date.
const MinLeadDays = 2

// CreateRequest is the booking submission body. Field names follow the wire
// format the frontend sends.
type CreateRequest struct {
	VehicleType    string `json:"vehicle_type"`
	Brand          string `json:"brand"`
	Model          string `json:"model"`
	Year           int    `json:"year"`
	Mileage        int    `json:"mileage"`
	Condition      string `json:"condition"`
	Notes          string `json:"notes"`
	InspectionDate string `json:"inspection_date"`
	InspectionTime string `json:"inspection_time"`
	Province       string `json:"province"`
	City           string `json:"city"`
	Address        string `json:"address"`
	ContactPhone   string `json:"contact_phone"`
}

// Validate checks every field and returns per-field messages. An empty result
// means the request may be persisted as-is (after phone normalization).
func (req CreateRequest) Validate(now time.Time) validate.Errors {
	errs := validate.Errors{}

	if !ValidVehicleType(req.VehicleType) {
		errs.Add("vehicle_type", "Jenis kendaraan harus car atau motorcycle")
	}
	if validate.Blank(req.Brand) {
		errs.Add("brand", "Merek kendaraan wajib diisi")
	} else if len(req.Brand) > 50 {
		errs.Add("brand", "Merek kendaraan maksimal 50 karakter")
	}
	if validate.Blank(req.Model) {
		errs.Add("model", "Model kendaraan wajib diisi")
	} else if len(req.Model) > 100 {
		errs.Add("model", "Model kendaraan maksimal 100 karakter")
	}
	if req.Year < 1990 || req.Year > now.Year() {
		errs.Add("year", "Tahun kendaraan harus antara 1990 dan tahun sekarang")
	}
	if req.Mileage < 0 {
		errs.Add("mileage", "Kilometer tidak boleh negatif")
	}
	if !ValidCondition(req.Condition) {
		errs.Add("condition", "Kondisi kendaraan tidak valid")
	}

	if validate.Blank(req.InspectionDate) {
		errs.Add("inspection_date", "Tanggal inspeksi wajib diisi")
	} else if date, err := time.ParseInLocation("2006-01-02", req.InspectionDate, now.Location()); err != nil {
		errs.Add("inspection_date", "Format tanggal tidak valid (YYYY-MM-DD)")
	} else if date.Before(minInspectionDate(now)) {
		errs.Add("inspection_date", "Tanggal inspeksi minimal 2 hari dari sekarang")
	}
	if validate.Blank(req.InspectionTime) {
		errs.Add("inspection_time", "Waktu inspeksi wajib diisi")
	} else if len(req.InspectionTime) > 20 {
		errs.Add("inspection_time", "Waktu inspeksi maksimal 20 karakter")
	}

	if validate.Blank(req.Province) {
		errs.Add("province", "Provinsi wajib diisi")
	} else if len(req.Province) > 50 {
		errs.Add("province", "Provinsi maksimal 50 karakter")
	}
	if validate.Blank(req.City) {
		errs.Add("city", "Kota wajib diisi")
	} else if len(req.City) > 80 {
		errs.Add("city", "Kota maksimal 80 karakter")
	}
	if validate.Blank(req.Address) {
		errs.Add("address", "Alamat wajib diisi")
	} else if len(req.Address) > 500 {
		errs.Add("address", "Alamat maksimal 500 karakter")
	}
	if !validate.Phone(req.ContactPhone) {
		errs.Add("contact_phone", "Format no. telepon tidak valid")
	}

	return errs
}

// minInspectionDate is midnight MinLeadDays calendar days after now.
// Comparing at day granularity makes today+2 acceptable regardless of the
// submission's time of day.
func minInspectionDate(now time.Time) time.Time {
	y, m, d := now.AddDate(0, 0, MinLeadDays).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}
