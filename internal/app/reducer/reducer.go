// Package reducer holds the pure state-transition core: Apply maps the
// current conversation aggregate and an action to the next aggregate.
// Persistence and I/O live with the caller, never here.
package reducer

import (
	"time"

	"github.com/cityhospital/assistant/internal/domain"
)

// Apply returns the next state for the given action. It is total: malformed
// payloads and unknown ids degrade to returning the state unchanged. The
// input state is never mutated; now is injected so message timestamps and
// derived pregnancy weeks stay testable.
func Apply(state *domain.ConversationState, action Action, now time.Time) *domain.ConversationState {
	if state == nil {
		state = domain.DefaultState(now)
	}

	switch a := action.(type) {
	case ResetConversation:
		return domain.DefaultState(now)

	case AddMessage:
		next := state.Clone()
		next.Messages = append(next.Messages, domain.Message{
			ID:        nextMessageID(next.Messages),
			Sender:    a.Sender,
			Text:      a.Text,
			Timestamp: now,
			Intent:    a.Intent,
			Entities:  a.Entities,
		})
		return next

	case SetTyping:
		next := state.Clone()
		next.IsTyping = a.Typing
		return next

	case CreateReport:
		next := state.Clone()
		// Newest first.
		next.Reports = append([]domain.Report{a.Report}, next.Reports...)
		return next

	case UpdateReport:
		next := state.Clone()
		for i := range next.Reports {
			if next.Reports[i].ID == a.ID {
				mergeReport(&next.Reports[i], a.Patch)
				break
			}
		}
		return next

	case DeleteReport:
		next := state.Clone()
		next.Reports = deleteReportByID(next.Reports, a.ID)
		return next

	case CreateAppointment:
		next := state.Clone()
		// Oldest first, unlike reports and vitals.
		next.Appointments = append(next.Appointments, a.Appointment)
		return next

	case UpdateAppointment:
		next := state.Clone()
		for i := range next.Appointments {
			if next.Appointments[i].ID == a.ID {
				mergeAppointment(&next.Appointments[i], a.Patch)
				break
			}
		}
		return next

	case DeleteAppointment:
		next := state.Clone()
		next.Appointments = deleteAppointmentByID(next.Appointments, a.ID)
		return next

	case AddVital:
		next := state.Clone()
		v := a.Vital
		v.Level = VitalRisk(v.Type, v.Value)
		if v.Date == "" {
			v.Date = now.Format(dateLayout)
		}
		next.Vitals = append([]domain.Vital{v}, next.Vitals...)
		return next

	case UpdateVital:
		next := state.Clone()
		for i := range next.Vitals {
			if next.Vitals[i].ID == a.ID {
				mergeVital(&next.Vitals[i], a.Patch)
				next.Vitals[i].Level = VitalRisk(next.Vitals[i].Type, next.Vitals[i].Value)
				break
			}
		}
		return next

	case DeleteVital:
		next := state.Clone()
		next.Vitals = deleteVitalByID(next.Vitals, a.ID)
		return next

	case CreatePregnancyRecord:
		next := state.Clone()
		rec := a.Record
		derivePregnancy(&rec, now)
		next.Pregnancy = &rec
		return next

	case UpdatePregnancyRecord:
		if state.Pregnancy == nil {
			return state
		}
		next := state.Clone()
		mergePregnancy(next.Pregnancy, a.Patch)
		derivePregnancy(next.Pregnancy, now)
		return next

	case DeletePregnancyRecord:
		next := state.Clone()
		next.Pregnancy = nil
		return next

	default:
		return state
	}
}

// nextMessageID keeps ids strictly increasing even if a restored snapshot
// carries unordered history.
func nextMessageID(messages []domain.Message) int64 {
	var max int64
	for _, m := range messages {
		if m.ID > max {
			max = m.ID
		}
	}
	return max + 1
}

func mergeReport(r *domain.Report, p domain.ReportPatch) {
	if p.Type != nil {
		r.Type = *p.Type
	}
	if p.Date != nil {
		r.Date = *p.Date
	}
	if p.PatientName != nil {
		r.PatientName = *p.PatientName
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.Summary != nil {
		r.Summary = *p.Summary
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
}

func mergeAppointment(a *domain.Appointment, p domain.AppointmentPatch) {
	if p.Doctor != nil {
		a.Doctor = *p.Doctor
	}
	if p.Specialty != nil {
		a.Specialty = *p.Specialty
	}
	if p.Date != nil {
		a.Date = *p.Date
	}
	if p.Time != nil {
		a.Time = *p.Time
	}
	if p.Notes != nil {
		a.Notes = *p.Notes
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
}

func mergeVital(v *domain.Vital, p domain.VitalPatch) {
	if p.Type != nil {
		v.Type = *p.Type
	}
	if p.Value != nil {
		v.Value = *p.Value
	}
	if p.Unit != nil {
		v.Unit = *p.Unit
	}
	if p.Date != nil {
		v.Date = *p.Date
	}
}

func mergePregnancy(rec *domain.PregnancyRecord, p domain.PregnancyPatch) {
	if p.LMPDate != nil {
		rec.LMPDate = *p.LMPDate
	}
	if p.EDDate != nil {
		rec.EDDate = *p.EDDate
	}
	if p.CurrentWeek != nil {
		rec.CurrentWeek = *p.CurrentWeek
	}
	if p.Gravidity != nil {
		rec.Gravidity = *p.Gravidity
	}
	if p.Parity != nil {
		rec.Parity = *p.Parity
	}
	if p.MotherAge != nil {
		rec.MotherAge = *p.MotherAge
	}
	if p.BloodGroup != nil {
		rec.BloodGroup = *p.BloodGroup
	}
	if p.Timeline != nil {
		rec.Timeline = append([]domain.Milestone(nil), (*p.Timeline)...)
	}
}

func deleteReportByID(rs []domain.Report, id string) []domain.Report {
	out := rs[:0:0]
	for _, r := range rs {
		if r.ID != id {
			out = append(out, r)
		}
	}
	return out
}

func deleteAppointmentByID(as []domain.Appointment, id string) []domain.Appointment {
	out := as[:0:0]
	for _, a := range as {
		if a.ID != id {
			out = append(out, a)
		}
	}
	return out
}

func deleteVitalByID(vs []domain.Vital, id string) []domain.Vital {
	out := vs[:0:0]
	for _, v := range vs {
		if v.ID != id {
			out = append(out, v)
		}
	}
	return out
}
