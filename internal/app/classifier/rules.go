package classifier

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cityhospital/assistant/internal/domain"
)

// The rule tier scans lower-cased text against fixed keyword tables. Domains
// are tried in a hard priority order (reports, appointments, vitals,
// pregnancy) and sub-intents within a domain in create, update, delete, show
// order; the first hit wins. The patterns are plain substring checks plus
// anchored id regexes, so classification cost is a constant number of linear
// scans.

var (
	reportIDPattern      = regexp.MustCompile(`(?i)rep[0-9]+`)
	appointmentIDPattern = regexp.MustCompile(`(?i)app[0-9]+`)
	vitalIDPattern       = regexp.MustCompile(`(?i)vit[0-9]+`)

	greetingPattern = regexp.MustCompile(`^(hi|hello|hey|greetings)`)
)

const (
	greetingReply = "Hello! I am your hospital assistant. I can help with Reports, Appointments, Vitals, and Pregnancy tracking."
	helpReply     = "You can ask me to show, create, update, or delete reports, appointments, vitals, and your pregnancy record. For example: \"show report REP001\" or \"book an appointment\"."
)

// extractID returns the first occurrence of pattern in text, upper-cased,
// or nil when absent.
func extractID(pattern *regexp.Regexp, text string) *string {
	m := pattern.FindString(text)
	if m == "" {
		return nil
	}
	id := strings.ToUpper(m)
	return &id
}

// classifyLocal runs the rule tier. placeholderIDs selects the offline
// behavior: missing record ids default to REP001/APP001/VIT001 so the UI
// stays demoable without a credential. With placeholderIDs false, missing
// ids stay nil and the second return is false when no rule fired, telling
// the caller to try the remote tier.
func classifyLocal(message string, placeholderIDs bool) (Result, bool) {
	lower := strings.ToLower(message)

	contains := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(lower, w) {
				return true
			}
		}
		return false
	}

	fill := func(id *string, placeholder string) *string {
		if id == nil && placeholderIDs {
			p := placeholder
			return &p
		}
		return id
	}

	// 1. Reports. The show-by-id branch tests the raw extraction: the
	// placeholder fill must not turn a bare "show my reports" into a
	// by-id lookup.
	if contains("report") {
		rawID := extractID(reportIDPattern, lower)
		reportID := fill(rawID, "REP001")

		switch {
		case contains("create", "add", "new"):
			return Result{Intent: domain.IntentCreateReport, Reply: "Opening new report form."}, true
		case contains("update", "edit"):
			return Result{
				Intent:   domain.IntentUpdateReport,
				Entities: domain.Entities{ReportID: reportID},
				Reply:    withID(reportID, "Editing report %s.", "Which report would you like to edit?"),
			}, true
		case contains("delete", "remove"):
			return Result{
				Intent:   domain.IntentDeleteReport,
				Entities: domain.Entities{ReportID: reportID},
				Reply:    withID(reportID, "Confirm deletion for %s.", "Please specify the report ID to delete."),
			}, true
		case contains("show") && (rawID != nil || contains("detail")):
			return Result{
				Intent:   domain.IntentShowReportByID,
				Entities: domain.Entities{ReportID: reportID},
				Reply:    withID(reportID, "Here is report %s.", "Please provide a report ID."),
			}, true
		default:
			return Result{Intent: domain.IntentShowReports, Reply: "Here are all your medical reports."}, true
		}
	}

	// 2. Appointments.
	if contains("appointment", "visit", "book") {
		appointmentID := fill(extractID(appointmentIDPattern, lower), "APP001")

		switch {
		case contains("create", "book", "new"):
			return Result{Intent: domain.IntentCreateAppointment, Reply: "Let's book a new appointment."}, true
		case contains("update", "change", "reschedule"):
			return Result{
				Intent:   domain.IntentUpdateAppointment,
				Entities: domain.Entities{AppointmentID: appointmentID},
				Reply:    withID(appointmentID, "Rescheduling appointment %s.", "Which appointment do you want to reschedule?"),
			}, true
		case contains("delete", "cancel"):
			return Result{
				Intent:   domain.IntentDeleteAppointment,
				Entities: domain.Entities{AppointmentID: appointmentID},
				Reply:    withID(appointmentID, "Confirm cancellation for %s.", "Please specify the appointment ID to cancel."),
			}, true
		default:
			return Result{Intent: domain.IntentShowAppointments, Reply: "Here are your upcoming appointments."}, true
		}
	}

	// 3. Vitals.
	if contains("vital", "bp", "pressure", "heart") {
		vitalID := fill(extractID(vitalIDPattern, lower), "VIT001")

		switch {
		case contains("add", "log", "record"):
			vitalType := "Blood Pressure"
			if contains("heart") {
				vitalType = "Heart Rate"
			}
			if contains("temp") {
				vitalType = "Temperature"
			}
			return Result{
				Intent:   domain.IntentAddVital,
				Entities: domain.Entities{Type: &vitalType},
				Reply:    "Logging new " + vitalType + " reading.",
			}, true
		case contains("update", "edit"):
			return Result{
				Intent:   domain.IntentUpdateVital,
				Entities: domain.Entities{VitalID: vitalID},
				Reply:    withID(vitalID, "Editing vital %s.", "Which vital would you like to edit?"),
			}, true
		case contains("delete", "remove"):
			return Result{
				Intent:   domain.IntentDeleteVital,
				Entities: domain.Entities{VitalID: vitalID},
				Reply:    "Removing vital record.",
			}, true
		default:
			return Result{Intent: domain.IntentShowVitals, Reply: "Here are your latest health vitals."}, true
		}
	}

	// 4. Pregnancy.
	if contains("pregnancy", "pregnant", "baby") {
		switch {
		case contains("create", "start"):
			return Result{Intent: domain.IntentCreatePregnancyRecord, Reply: "Starting a new pregnancy journey tracker."}, true
		case contains("update"):
			return Result{Intent: domain.IntentUpdatePregnancyRecord, Reply: "Update your pregnancy details."}, true
		case contains("delete"):
			return Result{Intent: domain.IntentDeletePregnancyRecord, Reply: "Deleting pregnancy record."}, true
		default:
			return Result{Intent: domain.IntentShowPregnancyDetails, Reply: "Here is your pregnancy timeline."}, true
		}
	}

	// 5. General.
	if contains("help") {
		return Result{Intent: domain.IntentHelp, Reply: helpReply}, true
	}
	if greetingPattern.MatchString(lower) {
		return Result{Intent: domain.IntentGreeting, Reply: greetingReply}, true
	}

	// No rule fired. Offline mode still has to answer something.
	if placeholderIDs {
		return Result{Intent: domain.IntentGreeting, Reply: greetingReply}, true
	}
	return Result{}, false
}

// withID formats matched when id is present and falls back to ask otherwise.
func withID(id *string, matched, ask string) string {
	if id == nil {
		return ask
	}
	return fmt.Sprintf(matched, *id)
}
