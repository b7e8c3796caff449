package records_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityhospital/assistant/internal/app/records"
	"github.com/cityhospital/assistant/internal/app/store"
	"github.com/cityhospital/assistant/internal/domain"
)

func sp(s string) *string { return &s }

func newTestService(t *testing.T) *records.Service {
	t.Helper()
	st := store.New(context.Background(), nil)
	return records.NewService(st)
}

func TestCreateReportGeneratesSequentialIDs(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	first, err := svc.CreateReport(ctx, domain.Report{Type: "Blood Test"})
	require.NoError(t, err)
	assert.Equal(t, "REP001", first.ID)
	assert.Equal(t, domain.ReportStatusDraft, first.Status)

	second, err := svc.CreateReport(ctx, domain.Report{Type: "X-Ray"})
	require.NoError(t, err)
	assert.Equal(t, "REP002", second.ID)

	// Explicit ids are kept but duplicates are rejected.
	_, err = svc.CreateReport(ctx, domain.Report{ID: "REP002"})
	assert.Error(t, err)

	third, err := svc.CreateReport(ctx, domain.Report{ID: "REP010"})
	require.NoError(t, err)
	assert.Equal(t, "REP010", third.ID)

	fourth, err := svc.CreateReport(ctx, domain.Report{})
	require.NoError(t, err)
	assert.Equal(t, "REP011", fourth.ID)
}

func TestReportUpdateAndNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	created, err := svc.CreateReport(ctx, domain.Report{Type: "Blood Test", Summary: "all clear"})
	require.NoError(t, err)

	updated, err := svc.UpdateReport(ctx, created.ID, domain.ReportPatch{Summary: sp("follow up needed")})
	require.NoError(t, err)
	assert.Equal(t, "follow up needed", updated.Summary)
	assert.Equal(t, "Blood Test", updated.Type)

	_, err = svc.UpdateReport(ctx, "REP999", domain.ReportPatch{Summary: sp("x")})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = svc.GetReport(ctx, "REP999")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestDeleteReportIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	created, err := svc.CreateReport(ctx, domain.Report{})
	require.NoError(t, err)

	svc.DeleteReport(ctx, created.ID)
	svc.DeleteReport(ctx, created.ID)
	assert.Empty(t, svc.ListReports(ctx))
}

func TestAddVitalDerivesLevelAndID(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	st := store.New(ctx, nil).WithClock(func() time.Time { return fixed })
	svc := records.NewService(st).WithClock(func() time.Time { return fixed })

	v, err := svc.AddVital(ctx, domain.Vital{Type: "Blood Pressure", Value: "150/95", Unit: "mmHg"})
	require.NoError(t, err)
	assert.Equal(t, "VIT1749981600", v.ID)
	assert.Equal(t, domain.VitalLevelHigh, v.Level)
	assert.Equal(t, "2025-06-15", v.Date)

	// Caller-supplied levels are ignored; the store derives its own.
	v2, err := svc.AddVital(ctx, domain.Vital{ID: "VIT9", Type: "Heart Rate", Value: "55", Level: domain.VitalLevelHigh})
	require.NoError(t, err)
	assert.Equal(t, domain.VitalLevelLow, v2.Level)
}

func TestAppointmentDefaultsAndOrdering(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	a1, err := svc.CreateAppointment(ctx, domain.Appointment{Doctor: "Dr. Lane"})
	require.NoError(t, err)
	assert.Equal(t, "APP001", a1.ID)
	assert.Equal(t, domain.AppointmentStatusPending, a1.Status)

	a2, err := svc.CreateAppointment(ctx, domain.Appointment{Doctor: "Dr. Chen", Status: domain.AppointmentStatusConfirmed})
	require.NoError(t, err)

	list := svc.ListAppointments(ctx)
	require.Len(t, list, 2)
	assert.Equal(t, a1.ID, list[0].ID)
	assert.Equal(t, a2.ID, list[1].ID)
}

func TestPregnancyLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.GetPregnancy(ctx)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = svc.PatchPregnancy(ctx, domain.PregnancyPatch{BloodGroup: sp("A+")})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	lmp := time.Now().AddDate(0, 0, -140).Format("2006-01-02")
	created := svc.PutPregnancy(ctx, domain.PregnancyRecord{LMPDate: lmp, Gravidity: 2, BloodGroup: "O+"})
	assert.Equal(t, 20, created.CurrentWeek)
	assert.Equal(t, 2, created.Trimester)

	patched, err := svc.PatchPregnancy(ctx, domain.PregnancyPatch{BloodGroup: sp("A+")})
	require.NoError(t, err)
	assert.Equal(t, "A+", patched.BloodGroup)
	assert.Equal(t, 2, patched.Gravidity)

	svc.DeletePregnancy(ctx)
	_, err = svc.GetPregnancy(ctx)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
