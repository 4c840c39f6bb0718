package wizard

import (
	"strconv"
	"strings"
	"time"

	"otoman/internal/inspection"
)

// Summary is the read-only projection shown on the confirmation step. It is
// derived from the accumulated fields and computing it mutates nothing.
type Summary struct {
	TypeLabel      string
	Vehicle        string
	Year           string
	MileageLabel   string
	ConditionLabel string
	DateLabel      string
	TimeLabel      string
	Location       string
}

var conditionLabels = map[inspection.Condition]string{
	inspection.ConditionExcellent: "Sangat Baik",
	inspection.ConditionGood:      "Baik",
	inspection.ConditionFair:      "Cukup",
	inspection.ConditionPoor:      "Kurang",
}

func Summarize(f Fields) Summary {
	s := Summary{
		TypeLabel:      "-",
		Vehicle:        "-",
		Year:           orDash(f[FieldYear]),
		MileageLabel:   "-",
		ConditionLabel: "-",
		DateLabel:      "-",
		TimeLabel:      orDash(f[FieldInspectionTime]),
		Location:       orDash(f[FieldCity]),
	}

	switch inspection.VehicleType(f[FieldVehicleType]) {
	case inspection.VehicleCar:
		s.TypeLabel = "Mobil"
	case inspection.VehicleMotorcycle:
		s.TypeLabel = "Motor"
	}

	if v := strings.TrimSpace(f[FieldBrand] + " " + f[FieldModel]); v != "" {
		s.Vehicle = v
	}

	if km, err := strconv.ParseInt(f[FieldMileage], 10, 64); err == nil {
		s.MileageLabel = FormatNumberID(km) + " km"
	}

	if label, ok := conditionLabels[inspection.Condition(f[FieldCondition])]; ok {
		s.ConditionLabel = label
	}

	if date, err := time.Parse("2006-01-02", f[FieldInspectionDate]); err == nil {
		s.DateLabel = FormatDateID(date)
	}

	if f[FieldProvince] != "" && f[FieldCity] != "" {
		s.Location = f[FieldCity] + ", " + f[FieldProvince]
	}

	return s
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// FormatNumberID renders a number with Indonesian thousands separators:
// 25000 -> "25.000".
func FormatNumberID(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}

	s := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

var (
	weekdaysID = [...]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}
	monthsID   = [...]string{"Januari", "Februari", "Maret", "April", "Mei", "Juni",
		"Juli", "Agustus", "September", "Oktober", "November", "Desember"}
)

// FormatDateID renders a date the way the frontend shows it:
// "Sabtu, 1 Maret 2025".
func FormatDateID(t time.Time) string {
	return weekdaysID[t.Weekday()] + ", " +
		strconv.Itoa(t.Day()) + " " +
		monthsID[t.Month()-1] + " " +
		strconv.Itoa(t.Year())
}
