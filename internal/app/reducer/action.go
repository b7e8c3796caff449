package reducer

import "github.com/cityhospital/assistant/internal/domain"

// Action is the entire mutation surface of the conversation aggregate.
// Apply ignores any concrete type it does not recognize, so adding a new
// action here without teaching the reducer about it is a silent no-op by
// contract, never an error.
type Action interface {
	isAction()
}

type AddMessage struct {
	Sender   domain.Sender
	Text     string
	Intent   domain.Intent
	Entities *domain.Entities
}

type SetTyping struct {
	Typing bool
}

type CreateReport struct {
	Report domain.Report
}

type UpdateReport struct {
	ID    string
	Patch domain.ReportPatch
}

type DeleteReport struct {
	ID string
}

type CreateAppointment struct {
	Appointment domain.Appointment
}

type UpdateAppointment struct {
	ID    string
	Patch domain.AppointmentPatch
}

type DeleteAppointment struct {
	ID string
}

type AddVital struct {
	Vital domain.Vital
}

type UpdateVital struct {
	ID    string
	Patch domain.VitalPatch
}

type DeleteVital struct {
	ID string
}

type CreatePregnancyRecord struct {
	Record domain.PregnancyRecord
}

type UpdatePregnancyRecord struct {
	Patch domain.PregnancyPatch
}

type DeletePregnancyRecord struct{}

type ResetConversation struct{}

func (AddMessage) isAction()            {}
func (SetTyping) isAction()             {}
func (CreateReport) isAction()          {}
func (UpdateReport) isAction()          {}
func (DeleteReport) isAction()          {}
func (CreateAppointment) isAction()     {}
func (UpdateAppointment) isAction()     {}
func (DeleteAppointment) isAction()     {}
func (AddVital) isAction()              {}
func (UpdateVital) isAction()           {}
func (DeleteVital) isAction()           {}
func (CreatePregnancyRecord) isAction() {}
func (UpdatePregnancyRecord) isAction() {}
func (DeletePregnancyRecord) isAction() {}
func (ResetConversation) isAction()     {}
