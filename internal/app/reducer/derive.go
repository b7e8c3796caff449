package reducer

import (
	"strconv"
	"strings"
	"time"

	"github.com/cityhospital/assistant/internal/domain"
)

const dateLayout = "2006-01-02"

// gestationDays is the conventional 40-week term used to estimate the due
// date from the last menstrual period.
const gestationDays = 280

// VitalRisk derives the risk level from the vital type and raw value.
// Blood pressure readings are judged by the systolic component before the
// "/" separator, heart rate by the plain numeric value. Unknown types and
// unparseable values are NORMAL.
func VitalRisk(vitalType, value string) domain.VitalLevel {
	switch vitalType {
	case "Blood Pressure":
		systolic, err := strconv.Atoi(strings.TrimSpace(strings.SplitN(value, "/", 2)[0]))
		if err != nil {
			return domain.VitalLevelNormal
		}
		if systolic > 140 {
			return domain.VitalLevelHigh
		}
		if systolic < 90 {
			return domain.VitalLevelLow
		}
	case "Heart Rate":
		bpm, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return domain.VitalLevelNormal
		}
		if bpm > 100 {
			return domain.VitalLevelHigh
		}
		if bpm < 60 {
			return domain.VitalLevelLow
		}
	}
	return domain.VitalLevelNormal
}

// GestationalWeek computes floor(days since lmp / 7). The second return is
// false when lmp is empty or does not parse, in which case callers keep any
// week they were given.
func GestationalWeek(lmpDate string, now time.Time) (int, bool) {
	lmp, err := time.Parse(dateLayout, lmpDate)
	if err != nil {
		return 0, false
	}
	days := int(now.Sub(lmp).Hours() / 24)
	if days < 0 {
		return 0, true
	}
	return days / 7, true
}

// Trimester maps a gestational week to its band: 1 below week 13, 2 below
// week 27, otherwise 3.
func Trimester(week int) int {
	switch {
	case week < 13:
		return 1
	case week < 27:
		return 2
	default:
		return 3
	}
}

// derivePregnancy recomputes CurrentWeek and Trimester from LMPDate when it
// parses, overriding whatever the caller supplied, and fills EDDate when
// absent. Trimester always follows the resulting week.
func derivePregnancy(rec *domain.PregnancyRecord, now time.Time) {
	if week, ok := GestationalWeek(rec.LMPDate, now); ok {
		rec.CurrentWeek = week
		if rec.EDDate == "" {
			lmp, _ := time.Parse(dateLayout, rec.LMPDate)
			rec.EDDate = lmp.AddDate(0, 0, gestationDays).Format(dateLayout)
		}
	}
	rec.Trimester = Trimester(rec.CurrentWeek)
}
