package domain

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Intent is a classified user goal. The set below is exhaustive: the
// classifier never emits anything outside it.
type Intent string

const (
	IntentShowReports    Intent = "SHOW_REPORTS"
	IntentShowReportByID Intent = "SHOW_REPORT_BY_ID"
	IntentCreateReport   Intent = "CREATE_REPORT"
	IntentUpdateReport   Intent = "UPDATE_REPORT"
	IntentDeleteReport   Intent = "DELETE_REPORT"

	IntentShowAppointments  Intent = "SHOW_APPOINTMENTS"
	IntentCreateAppointment Intent = "CREATE_APPOINTMENT"
	IntentUpdateAppointment Intent = "UPDATE_APPOINTMENT"
	IntentDeleteAppointment Intent = "DELETE_APPOINTMENT"

	IntentShowPregnancyDetails  Intent = "SHOW_PREGNANCY_DETAILS"
	IntentCreatePregnancyRecord Intent = "CREATE_PREGNANCY_RECORD"
	IntentUpdatePregnancyRecord Intent = "UPDATE_PREGNANCY_RECORD"
	IntentDeletePregnancyRecord Intent = "DELETE_PREGNANCY_RECORD"

	IntentShowVitals  Intent = "SHOW_VITALS"
	IntentAddVital    Intent = "ADD_VITAL"
	IntentUpdateVital Intent = "UPDATE_VITAL"
	IntentDeleteVital Intent = "DELETE_VITAL"

	IntentHelp     Intent = "HELP"
	IntentGreeting Intent = "GREETING"
)

var supportedIntents = map[Intent]struct{}{
	IntentShowReports: {}, IntentShowReportByID: {}, IntentCreateReport: {},
	IntentUpdateReport: {}, IntentDeleteReport: {},
	IntentShowAppointments: {}, IntentCreateAppointment: {},
	IntentUpdateAppointment: {}, IntentDeleteAppointment: {},
	IntentShowPregnancyDetails: {}, IntentCreatePregnancyRecord: {},
	IntentUpdatePregnancyRecord: {}, IntentDeletePregnancyRecord: {},
	IntentShowVitals: {}, IntentAddVital: {}, IntentUpdateVital: {},
	IntentDeleteVital: {}, IntentHelp: {}, IntentGreeting: {},
}

// Supported reports whether i belongs to the documented intent set.
func (i Intent) Supported() bool {
	_, ok := supportedIntents[i]
	return ok
}

// Entities carries the structured information extracted from a message.
// The wire contract is a flat object where every key is always present and
// an absent value is null, so no field uses omitempty. The json names match
// what the remote classifier returns.
type Entities struct {
	ReportID      *string `json:"reportId"`
	AppointmentID *string `json:"appointmentId"`
	VitalID       *string `json:"id"`
	Type          *string `json:"type"`
	Value         *string `json:"value"`
	Date          *string `json:"date"`
	DoctorName    *string `json:"doctor_name"`
	Description   *string `json:"description"`
}
