// Package wizard models the three-step booking form as an explicit state
// machine. State is a value passed through transition functions; nothing is
// kept in ambient globals, so two wizards never share accumulated fields.
package wizard

import (
	"context"
	"errors"
	"strconv"
	"time"

	"otoman/internal/inspection"
	"otoman/internal/validate"
	"otoman/pkg/apiclient"
)

type Step int

const (
	StepVehicle  Step = 1
	StepSchedule Step = 2
	StepSummary  Step = 3
	StepSuccess  Step = 4
)

// Form field names, matching the wire format.
const (
	FieldVehicleType    = "vehicle_type"
	FieldBrand          = "brand"
	FieldModel          = "model"
	FieldYear           = "year"
	FieldMileage        = "mileage"
	FieldCondition      = "condition"
	FieldNotes          = "notes"
	FieldInspectionDate = "inspection_date"
	FieldInspectionTime = "inspection_time"
	FieldProvince       = "province"
	FieldCity           = "city"
	FieldAddress        = "address"
	FieldContactPhone   = "contact_phone"
)

type Fields map[string]string

type State struct {
	Step   Step
	Fields Fields

	// FieldErrors marks the offending fields of the last failed transition.
	FieldErrors validate.Errors

	TermsAccepted bool

	// Summary is recomputed when entering StepSummary; it is a projection of
	// Fields and never feeds back into them.
	Summary *Summary

	// SubmitDisabled mirrors the submit control: disabled while a submission
	// is in flight and permanently once the machine reaches StepSuccess.
	SubmitDisabled bool
	SubmitError    string

	OrderCode  string
	PriceLabel string
}

func New() State {
	return State{Step: StepVehicle, Fields: Fields{}}
}

// Set accumulates a field value. Values survive back-navigation; they are
// only ever overwritten by another Set.
func (s State) Set(field, value string) State {
	next := make(Fields, len(s.Fields)+1)
	for k, v := range s.Fields {
		next[k] = v
	}
	next[field] = value
	s.Fields = next
	return s
}

func (s State) AcceptTerms(accepted bool) State {
	s.TermsAccepted = accepted
	return s
}

// Next advances to the following step if every required field of the current
// step is valid. On failure the step does not change and FieldErrors marks
// all offending fields; the machine never advances partially.
func Next(s State, now time.Time) State {
	switch s.Step {
	case StepVehicle:
		if errs := validateVehicleStep(s.Fields, now); errs.Any() {
			s.FieldErrors = errs
			return s
		}
		s.FieldErrors = nil
		s.Step = StepSchedule
	case StepSchedule:
		if errs := validateScheduleStep(s.Fields, now); errs.Any() {
			s.FieldErrors = errs
			return s
		}
		s.FieldErrors = nil
		s.Step = StepSummary
		sum := Summarize(s.Fields)
		s.Summary = &sum
	}
	return s
}

// Back moves one step down without validation. Success is terminal.
func Back(s State) State {
	if s.Step == StepSchedule || s.Step == StepSummary {
		s.Step--
		s.FieldErrors = nil
	}
	return s
}

type Submitter interface {
	CreateInspection(ctx context.Context, req apiclient.InspectionRequest) (*apiclient.Inspection, error)
}

// Submit performs the booking-creation call from the summary step. The terms
// checkbox gates submission regardless of prior step validity. On failure the
// machine stays on the summary step with the error surfaced and the submit
// control re-enabled; on success it reaches the terminal StepSuccess and the
// control stays disabled.
func Submit(ctx context.Context, s State, svc Submitter) State {
	if s.Step != StepSummary {
		return s
	}
	if !s.TermsAccepted {
		s.SubmitError = "Anda harus menyetujui syarat & ketentuan"
		return s
	}

	s.SubmitDisabled = true
	s.SubmitError = ""

	ins, err := svc.CreateInspection(ctx, buildRequest(s.Fields))
	if err != nil {
		s.SubmitDisabled = false
		s.SubmitError = submitErrorMessage(err)

		var apiErr *apiclient.APIError
		if errors.As(err, &apiErr) && len(apiErr.Errors) > 0 {
			s.FieldErrors = validate.Errors(apiErr.Errors)
		}
		return s
	}

	s.Step = StepSuccess
	s.OrderCode = ins.OrderCode
	s.PriceLabel = "Rp " + FormatNumberID(ins.Price.IntPart())
	return s
}

func submitErrorMessage(err error) string {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "Gagal membuat pesanan. Silakan coba lagi."
}

func buildRequest(f Fields) apiclient.InspectionRequest {
	year, _ := strconv.Atoi(f[FieldYear])
	mileage, _ := strconv.Atoi(f[FieldMileage])
	return apiclient.InspectionRequest{
		VehicleType:    f[FieldVehicleType],
		Brand:          f[FieldBrand],
		Model:          f[FieldModel],
		Year:           year,
		Mileage:        mileage,
		Condition:      f[FieldCondition],
		Notes:          f[FieldNotes],
		InspectionDate: f[FieldInspectionDate],
		InspectionTime: f[FieldInspectionTime],
		Province:       f[FieldProvince],
		City:           f[FieldCity],
		Address:        f[FieldAddress],
		ContactPhone:   f[FieldContactPhone],
	}
}

func validateVehicleStep(f Fields, now time.Time) validate.Errors {
	errs := validate.Errors{}

	// Radio groups: an unset value means no option is checked.
	if !inspection.ValidVehicleType(f[FieldVehicleType]) {
		errs.Add(FieldVehicleType, "Silakan pilih jenis kendaraan")
	}
	if !inspection.ValidCondition(f[FieldCondition]) {
		errs.Add(FieldCondition, "Silakan pilih kondisi kendaraan")
	}

	if validate.Blank(f[FieldBrand]) {
		errs.Add(FieldBrand, "Merek kendaraan wajib diisi")
	}
	if validate.Blank(f[FieldModel]) {
		errs.Add(FieldModel, "Model kendaraan wajib diisi")
	}

	if validate.Blank(f[FieldYear]) {
		errs.Add(FieldYear, "Tahun kendaraan wajib diisi")
	} else if year, err := strconv.Atoi(f[FieldYear]); err != nil || year < 1990 || year > now.Year() {
		errs.Add(FieldYear, "Tahun kendaraan tidak valid")
	}

	if validate.Blank(f[FieldMileage]) {
		errs.Add(FieldMileage, "Kilometer wajib diisi")
	} else if mileage, err := strconv.Atoi(f[FieldMileage]); err != nil || mileage < 0 {
		errs.Add(FieldMileage, "Kilometer tidak boleh negatif")
	}

	return errs
}

func validateScheduleStep(f Fields, now time.Time) validate.Errors {
	errs := validate.Errors{}

	if validate.Blank(f[FieldInspectionDate]) {
		errs.Add(FieldInspectionDate, "Tanggal inspeksi wajib diisi")
	} else if date, err := time.ParseInLocation("2006-01-02", f[FieldInspectionDate], now.Location()); err != nil {
		errs.Add(FieldInspectionDate, "Format tanggal tidak valid")
	} else {
		y, m, d := now.AddDate(0, 0, inspection.MinLeadDays).Date()
		min := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
		if date.Before(min) {
			errs.Add(FieldInspectionDate, "Tanggal inspeksi minimal 2 hari dari sekarang")
		}
	}

	if validate.Blank(f[FieldInspectionTime]) {
		errs.Add(FieldInspectionTime, "Waktu inspeksi wajib diisi")
	}
	if validate.Blank(f[FieldProvince]) {
		errs.Add(FieldProvince, "Provinsi wajib diisi")
	}
	if validate.Blank(f[FieldCity]) {
		errs.Add(FieldCity, "Kota wajib diisi")
	}
	if validate.Blank(f[FieldAddress]) {
		errs.Add(FieldAddress, "Alamat wajib diisi")
	}
	if !validate.Phone(f[FieldContactPhone]) {
		errs.Add(FieldContactPhone, "Format no. telepon tidak valid")
	}

	return errs
}
