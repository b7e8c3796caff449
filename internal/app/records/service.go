// Package records is the CRUD application service the form-driven side of
// the UI talks to. It generates record ids, fills defaults, and surfaces
// not-found errors on the direct path. The chat path is different: there the
// reducer's silent no-op policy applies.
package records

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cityhospital/assistant/internal/app/reducer"
	"github.com/cityhospital/assistant/internal/app/store"
	"github.com/cityhospital/assistant/internal/domain"
	"github.com/cityhospital/assistant/internal/observability"
)

type Service struct {
	store *store.Store
	now   func() time.Time
}

func NewService(st *store.Store) *Service {
	return &Service{store: st, now: time.Now}
}

// WithClock overrides the time source, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// ─── Reports ───

func (s *Service) ListReports(ctx context.Context) []domain.Report {
	return s.store.State().Reports
}

func (s *Service) GetReport(ctx context.Context, id string) (domain.Report, error) {
	r, ok := s.store.FindReport(id)
	if !ok {
		return domain.Report{}, fmt.Errorf("report %s: %w", id, domain.ErrNotFound)
	}
	return r, nil
}

func (s *Service) CreateReport(ctx context.Context, r domain.Report) (domain.Report, error) {
	if r.ID == "" {
		r.ID = nextSequentialID("REP", reportIDs(s.store.State().Reports))
	} else if _, exists := s.store.FindReport(r.ID); exists {
		return domain.Report{}, fmt.Errorf("report %s already exists", r.ID)
	}
	if r.Status == "" {
		r.Status = domain.ReportStatusDraft
	}
	if r.Date == "" {
		r.Date = s.now().Format("2006-01-02")
	}

	st := s.store.Dispatch(ctx, reducer.CreateReport{Report: r})
	observability.LoggerFromContext(ctx).Info("report created", "report_id", r.ID, "total", len(st.Reports))
	return r, nil
}

func (s *Service) UpdateReport(ctx context.Context, id string, patch domain.ReportPatch) (domain.Report, error) {
	if _, ok := s.store.FindReport(id); !ok {
		return domain.Report{}, fmt.Errorf("report %s: %w", id, domain.ErrNotFound)
	}
	s.store.Dispatch(ctx, reducer.UpdateReport{ID: id, Patch: patch})
	r, _ := s.store.FindReport(id)
	return r, nil
}

// DeleteReport is idempotent: deleting a missing id is not an error.
func (s *Service) DeleteReport(ctx context.Context, id string) {
	s.store.Dispatch(ctx, reducer.DeleteReport{ID: id})
}

// ─── Appointments ───

func (s *Service) ListAppointments(ctx context.Context) []domain.Appointment {
	return s.store.State().Appointments
}

func (s *Service) GetAppointment(ctx context.Context, id string) (domain.Appointment, error) {
	a, ok := s.store.FindAppointment(id)
	if !ok {
		return domain.Appointment{}, fmt.Errorf("appointment %s: %w", id, domain.ErrNotFound)
	}
	return a, nil
}

func (s *Service) CreateAppointment(ctx context.Context, a domain.Appointment) (domain.Appointment, error) {
	if a.ID == "" {
		a.ID = nextSequentialID("APP", appointmentIDs(s.store.State().Appointments))
	} else if _, exists := s.store.FindAppointment(a.ID); exists {
		return domain.Appointment{}, fmt.Errorf("appointment %s already exists", a.ID)
	}
	if a.Status == "" {
		a.Status = domain.AppointmentStatusPending
	}

	s.store.Dispatch(ctx, reducer.CreateAppointment{Appointment: a})
	observability.LoggerFromContext(ctx).Info("appointment created", "appointment_id", a.ID)
	return a, nil
}

func (s *Service) UpdateAppointment(ctx context.Context, id string, patch domain.AppointmentPatch) (domain.Appointment, error) {
	if _, ok := s.store.FindAppointment(id); !ok {
		return domain.Appointment{}, fmt.Errorf("appointment %s: %w", id, domain.ErrNotFound)
	}
	s.store.Dispatch(ctx, reducer.UpdateAppointment{ID: id, Patch: patch})
	a, _ := s.store.FindAppointment(id)
	return a, nil
}

func (s *Service) DeleteAppointment(ctx context.Context, id string) {
	s.store.Dispatch(ctx, reducer.DeleteAppointment{ID: id})
}

// ─── Vitals ───

func (s *Service) ListVitals(ctx context.Context) []domain.Vital {
	return s.store.State().Vitals
}

func (s *Service) GetVital(ctx context.Context, id string) (domain.Vital, error) {
	v, ok := s.store.FindVital(id)
	if !ok {
		return domain.Vital{}, fmt.Errorf("vital %s: %w", id, domain.ErrNotFound)
	}
	return v, nil
}

func (s *Service) AddVital(ctx context.Context, v domain.Vital) (domain.Vital, error) {
	if v.ID == "" {
		// Vitals are logged far more often than reports, so their ids are
		// timestamps rather than a sequence.
		v.ID = "VIT" + strconv.FormatInt(s.now().Unix(), 10)
	} else if _, exists := s.store.FindVital(v.ID); exists {
		return domain.Vital{}, fmt.Errorf("vital %s already exists", v.ID)
	}

	s.store.Dispatch(ctx, reducer.AddVital{Vital: v})
	added, _ := s.store.FindVital(v.ID)
	return added, nil
}

func (s *Service) UpdateVital(ctx context.Context, id string, patch domain.VitalPatch) (domain.Vital, error) {
	if _, ok := s.store.FindVital(id); !ok {
		return domain.Vital{}, fmt.Errorf("vital %s: %w", id, domain.ErrNotFound)
	}
	s.store.Dispatch(ctx, reducer.UpdateVital{ID: id, Patch: patch})
	v, _ := s.store.FindVital(id)
	return v, nil
}

func (s *Service) DeleteVital(ctx context.Context, id string) {
	s.store.Dispatch(ctx, reducer.DeleteVital{ID: id})
}

// ─── Pregnancy ───

func (s *Service) GetPregnancy(ctx context.Context) (domain.PregnancyRecord, error) {
	p, ok := s.store.Pregnancy()
	if !ok {
		return domain.PregnancyRecord{}, fmt.Errorf("pregnancy record: %w", domain.ErrNotFound)
	}
	return p, nil
}

// PutPregnancy replaces the singleton wholesale.
func (s *Service) PutPregnancy(ctx context.Context, rec domain.PregnancyRecord) domain.PregnancyRecord {
	s.store.Dispatch(ctx, reducer.CreatePregnancyRecord{Record: rec})
	p, _ := s.store.Pregnancy()
	return p
}

func (s *Service) PatchPregnancy(ctx context.Context, patch domain.PregnancyPatch) (domain.PregnancyRecord, error) {
	if _, ok := s.store.Pregnancy(); !ok {
		return domain.PregnancyRecord{}, fmt.Errorf("pregnancy record: %w", domain.ErrNotFound)
	}
	s.store.Dispatch(ctx, reducer.UpdatePregnancyRecord{Patch: patch})
	p, _ := s.store.Pregnancy()
	return p, nil
}

func (s *Service) DeletePregnancy(ctx context.Context) {
	s.store.Dispatch(ctx, reducer.DeletePregnancyRecord{})
}

// nextSequentialID returns prefix + the lowest zero-padded number greater
// than every existing one, e.g. REP004 after REP001..REP003.
func nextSequentialID(prefix string, existing []string) string {
	max := 0
	for _, id := range existing {
		n, err := strconv.Atoi(strings.TrimPrefix(strings.ToUpper(id), prefix))
		if err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%03d", prefix, max+1)
}

func reportIDs(rs []domain.Report) []string {
	ids := make([]string, len(rs))
	for i, r := range rs {
		ids[i] = r.ID
	}
	return ids
}

func appointmentIDs(as []domain.Appointment) []string {
	ids := make([]string, len(as))
	for i, a := range as {
		ids[i] = a.ID
	}
	return ids
}
