package domain

type ReportStatus string

const (
	ReportStatusDraft ReportStatus = "Draft"
	ReportStatusFinal ReportStatus = "Final"
)

// Report is a medical report. IDs look like "REP001" and are unique within
// the reports collection.
type Report struct {
	ID          string       `json:"id"`
	Type        string       `json:"type"`
	Date        string       `json:"date"`
	PatientName string       `json:"patientName"`
	Status      ReportStatus `json:"status"`
	Summary     string       `json:"summary"`
	Description string       `json:"description"`
}

// ReportPatch is a partial update: only non-nil fields override.
type ReportPatch struct {
	Type        *string       `json:"type"`
	Date        *string       `json:"date"`
	PatientName *string       `json:"patientName"`
	Status      *ReportStatus `json:"status"`
	Summary     *string       `json:"summary"`
	Description *string       `json:"description"`
}

type AppointmentStatus string

const (
	AppointmentStatusConfirmed AppointmentStatus = "Confirmed"
	AppointmentStatusPending   AppointmentStatus = "Pending"
)

// Appointment IDs look like "APP001".
type Appointment struct {
	ID        string            `json:"id"`
	Doctor    string            `json:"doctor"`
	Specialty string            `json:"specialty"`
	Date      string            `json:"date"`
	Time      string            `json:"time"`
	Notes     string            `json:"notes"`
	Status    AppointmentStatus `json:"status"`
}

type AppointmentPatch struct {
	Doctor    *string            `json:"doctor"`
	Specialty *string            `json:"specialty"`
	Date      *string            `json:"date"`
	Time      *string            `json:"time"`
	Notes     *string            `json:"notes"`
	Status    *AppointmentStatus `json:"status"`
}

type VitalLevel string

const (
	VitalLevelNormal VitalLevel = "NORMAL"
	VitalLevelHigh   VitalLevel = "HIGH"
	VitalLevelLow    VitalLevel = "LOW"
)

// Vital is a single measurement. Level is derived from Type and Value at
// write time and never trusted from caller input, so the patch type has no
// Level field.
type Vital struct {
	ID    string     `json:"id"`
	Type  string     `json:"type"`
	Value string     `json:"value"`
	Unit  string     `json:"unit"`
	Level VitalLevel `json:"level"`
	Date  string     `json:"date"`
}

type VitalPatch struct {
	Type  *string `json:"type"`
	Value *string `json:"value"`
	Unit  *string `json:"unit"`
	Date  *string `json:"date"`
}

type MilestoneStatus string

const (
	MilestoneCompleted  MilestoneStatus = "Completed"
	MilestoneInProgress MilestoneStatus = "In Progress"
	MilestoneUpcoming   MilestoneStatus = "Upcoming"
)

type Milestone struct {
	Week   int             `json:"week"`
	Event  string          `json:"event"`
	Status MilestoneStatus `json:"status"`
}

// PregnancyRecord is a singleton: a patient has zero or one active journey.
// CurrentWeek and Trimester are derived from LMPDate when it parses, and
// EDDate is filled in when absent.
type PregnancyRecord struct {
	LMPDate     string      `json:"lmpDate"`
	EDDate      string      `json:"edDate,omitempty"`
	CurrentWeek int         `json:"currentWeek"`
	Trimester   int         `json:"trimester"`
	Gravidity   int         `json:"gravidity"`
	Parity      int         `json:"parity"`
	MotherAge   int         `json:"motherAge"`
	BloodGroup  string      `json:"blood_group"`
	Timeline    []Milestone `json:"timeline,omitempty"`
}

type PregnancyPatch struct {
	LMPDate     *string      `json:"lmpDate"`
	EDDate      *string      `json:"edDate"`
	CurrentWeek *int         `json:"currentWeek"`
	Gravidity   *int         `json:"gravidity"`
	Parity      *int         `json:"parity"`
	MotherAge   *int         `json:"motherAge"`
	BloodGroup  *string      `json:"blood_group"`
	Timeline    *[]Milestone `json:"timeline"`
}
