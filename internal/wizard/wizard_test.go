package wizard

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"otoman/pkg/apiclient"
)

var testNow = time.Date(2025, 2, 27, 12, 0, 0, 0, time.UTC)

func filledVehicleStep(s State) State {
	s = s.Set(FieldVehicleType, "car")
	s = s.Set(FieldBrand, "Honda")
	s = s.Set(FieldModel, "Jazz RS")
	s = s.Set(FieldYear, "2021")
	s = s.Set(FieldMileage, "25000")
	s = s.Set(FieldCondition, "good")
	return s
}

func filledScheduleStep(s State) State {
	s = s.Set(FieldInspectionDate, "2025-03-01")
	s = s.Set(FieldInspectionTime, "10:00-12:00")
	s = s.Set(FieldProvince, "DKI Jakarta")
	s = s.Set(FieldCity, "Jakarta Selatan")
	s = s.Set(FieldAddress, "Jl. Contoh No.1")
	s = s.Set(FieldContactPhone, "081234567890")
	return s
}

type fakeSubmitter struct {
	err   error
	calls int
	got   apiclient.InspectionRequest
}

func (f *fakeSubmitter) CreateInspection(ctx context.Context, req apiclient.InspectionRequest) (*apiclient.Inspection, error) {
	f.calls++
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &apiclient.Inspection{
		OrderCode: "INS-A1B2C3",
		Price:     decimal.NewFromInt(350000),
		Status:    "pending",
	}, nil
}

func TestNext_BlocksOnUnselectedRadioGroup(t *testing.T) {
	s := New()
	s = s.Set(FieldBrand, "Honda")
	s = s.Set(FieldModel, "Jazz RS")
	s = s.Set(FieldYear, "2021")
	s = s.Set(FieldMileage, "25000")
	// vehicle_type and condition radios left unselected.

	s = Next(s, testNow)
	assert.Equal(t, StepVehicle, s.Step)
	assert.NotEmpty(t, s.FieldErrors[FieldVehicleType])
	assert.NotEmpty(t, s.FieldErrors[FieldCondition])

	// Even with a valid schedule, step 3 is unreachable.
	s = filledScheduleStep(s)
	s = Next(s, testNow)
	s = Next(s, testNow)
	assert.Equal(t, StepVehicle, s.Step)
}

func TestNext_AllOrNothing(t *testing.T) {
	s := filledVehicleStep(New())
	s = s.Set(FieldBrand, "   ")

	s = Next(s, testNow)
	assert.Equal(t, StepVehicle, s.Step, "one invalid field blocks the whole step")
	assert.NotEmpty(t, s.FieldErrors[FieldBrand])
	assert.Empty(t, s.FieldErrors[FieldModel])
}

func TestNext_AdvancesThroughSteps(t *testing.T) {
	s := filledVehicleStep(New())
	s = Next(s, testNow)
	require.Equal(t, StepSchedule, s.Step)
	assert.Empty(t, s.FieldErrors)

	s = filledScheduleStep(s)
	s = Next(s, testNow)
	require.Equal(t, StepSummary, s.Step)
	require.NotNil(t, s.Summary)
}

func TestNext_ScheduleValidation(t *testing.T) {
	s := filledVehicleStep(New())
	s = Next(s, testNow)
	s = filledScheduleStep(s)

	for _, date := range []string{"2025-02-27", "2025-02-28"} {
		blocked := Next(s.Set(FieldInspectionDate, date), testNow)
		assert.Equal(t, StepSchedule, blocked.Step, "date %s should be rejected", date)
		assert.NotEmpty(t, blocked.FieldErrors[FieldInspectionDate])
	}

	ok := Next(s.Set(FieldInspectionDate, "2025-03-01"), testNow)
	assert.Equal(t, StepSummary, ok.Step)

	bad := Next(s.Set(FieldContactPhone, "1234567"), testNow)
	assert.Equal(t, StepSchedule, bad.Step)
	assert.NotEmpty(t, bad.FieldErrors[FieldContactPhone])
}

func TestBack_FreeNavigationKeepsFields(t *testing.T) {
	s := filledVehicleStep(New())
	s = Next(s, testNow)
	s = filledScheduleStep(s)
	s = Next(s, testNow)
	require.Equal(t, StepSummary, s.Step)

	s = Back(s)
	assert.Equal(t, StepSchedule, s.Step)
	s = Back(s)
	assert.Equal(t, StepVehicle, s.Step)
	s = Back(s)
	assert.Equal(t, StepVehicle, s.Step, "already at the first step")

	// Fields survive the round trip.
	assert.Equal(t, "Honda", s.Fields[FieldBrand])
	assert.Equal(t, "081234567890", s.Fields[FieldContactPhone])
}

func TestSummaryProjection(t *testing.T) {
	s := filledVehicleStep(New())
	s = Next(s, testNow)
	s = filledScheduleStep(s)
	fieldsBefore := len(s.Fields)

	s = Next(s, testNow)
	require.NotNil(t, s.Summary)

	assert.Equal(t, "Mobil", s.Summary.TypeLabel)
	assert.Equal(t, "Honda Jazz RS", s.Summary.Vehicle)
	assert.Equal(t, "25.000 km", s.Summary.MileageLabel)
	assert.Equal(t, "Baik", s.Summary.ConditionLabel)
	assert.Equal(t, "Sabtu, 1 Maret 2025", s.Summary.DateLabel)
	assert.Equal(t, "Jakarta Selatan, DKI Jakarta", s.Summary.Location)

	assert.Len(t, s.Fields, fieldsBefore, "projection must not mutate fields")
}

func TestSubmit_RequiresTerms(t *testing.T) {
	svc := &fakeSubmitter{}
	s := filledScheduleStep(filledVehicleStep(New()))
	s = Next(s, testNow)
	s = Next(s, testNow)
	require.Equal(t, StepSummary, s.Step)

	s = Submit(context.Background(), s, svc)
	assert.Equal(t, StepSummary, s.Step)
	assert.Equal(t, "Anda harus menyetujui syarat & ketentuan", s.SubmitError)
	assert.Zero(t, svc.calls, "no network call without terms acceptance")
}

func TestSubmit_Success(t *testing.T) {
	svc := &fakeSubmitter{}
	s := filledScheduleStep(filledVehicleStep(New()))
	s = Next(s, testNow)
	s = Next(s, testNow)
	s = s.AcceptTerms(true)

	s = Submit(context.Background(), s, svc)
	assert.Equal(t, StepSuccess, s.Step)
	assert.Equal(t, "INS-A1B2C3", s.OrderCode)
	assert.Equal(t, "Rp 350.000", s.PriceLabel)
	assert.True(t, s.SubmitDisabled, "terminal state never re-enables submit")

	require.Equal(t, 1, svc.calls)
	assert.Equal(t, "car", svc.got.VehicleType)
	assert.Equal(t, 2021, svc.got.Year)
	assert.Equal(t, 25000, svc.got.Mileage)
	assert.Equal(t, "081234567890", svc.got.ContactPhone)
}

func TestSubmit_FailureStaysOnSummary(t *testing.T) {
	svc := &fakeSubmitter{err: &apiclient.APIError{
		Status:  422,
		Message: "Data pesanan tidak valid",
		Errors:  map[string][]string{"inspection_date": {"Tanggal inspeksi minimal 2 hari dari sekarang"}},
	}}
	s := filledScheduleStep(filledVehicleStep(New()))
	s = Next(s, testNow)
	s = Next(s, testNow)
	s = s.AcceptTerms(true)

	s = Submit(context.Background(), s, svc)
	assert.Equal(t, StepSummary, s.Step)
	assert.False(t, s.SubmitDisabled, "submit control re-enabled after failure")
	assert.Equal(t, "Data pesanan tidak valid", s.SubmitError)
	assert.NotEmpty(t, s.FieldErrors[FieldInspectionDate])

	// Resubmitting after a fix works.
	svc.err = nil
	s = Submit(context.Background(), s, svc)
	assert.Equal(t, StepSuccess, s.Step)
}

func TestSubmit_GenericNetworkError(t *testing.T) {
	svc := &fakeSubmitter{err: context.DeadlineExceeded}
	s := filledScheduleStep(filledVehicleStep(New()))
	s = Next(s, testNow)
	s = Next(s, testNow)
	s = s.AcceptTerms(true)

	s = Submit(context.Background(), s, svc)
	assert.Equal(t, StepSummary, s.Step)
	assert.Equal(t, "Gagal membuat pesanan. Silakan coba lagi.", s.SubmitError)
}

func TestSubmit_OnlyFromSummary(t *testing.T) {
	svc := &fakeSubmitter{}
	s := New().AcceptTerms(true)
	s = Submit(context.Background(), s, svc)
	assert.Equal(t, StepVehicle, s.Step)
	assert.Zero(t, svc.calls)
}
