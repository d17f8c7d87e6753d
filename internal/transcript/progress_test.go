package transcript

import (
	"testing"

	"github.com/taejinchoi-cbnu/gradescan-backend/internal/model"
)

func TestCompletionPercent(t *testing.T) {
	tests := []struct {
		name             string
		earned, required int
		want             int
	}{
		{"half way", 70, 140, 50},
		{"clamped at 100", 200, 140, 100},
		{"exactly complete", 140, 140, 100},
		{"zero requirement reports zero", 10, 0, 0},
		{"rounds to nearest", 1, 3, 33},
		{"rounds up", 2, 3, 67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := completionPercent(tt.earned, tt.required); got != tt.want {
				t.Errorf("completionPercent(%d, %d) = %d, want %d",
					tt.earned, tt.required, got, tt.want)
			}
		})
	}
}

func TestBuildReport(t *testing.T) {
	agg := Aggregates{
		TotalCredits:     70,
		GeneralEducation: 21,
		MajorRequired:    14,
		MajorElective:    25,
	}
	req := &model.GraduationRequirement{
		TotalCredits:     140,
		GeneralEducation: model.GeneralEducationRequirement{Total: 42},
		MajorCredits:     model.MajorCreditRequirement{Total: 78, Required: 28, Elective: 50},
	}

	report := BuildReport(agg, req)
	if report.TotalCredits.Percent != 50 {
		t.Errorf("TotalCredits.Percent = %d, want 50", report.TotalCredits.Percent)
	}
	if report.MajorRequired.Percent != 50 {
		t.Errorf("MajorRequired.Percent = %d, want 50", report.MajorRequired.Percent)
	}
	if report.MajorElective.Percent != 50 {
		t.Errorf("MajorElective.Percent = %d, want 50", report.MajorElective.Percent)
	}
	if report.GeneralEducation.Percent != 50 {
		t.Errorf("GeneralEducation.Percent = %d, want 50", report.GeneralEducation.Percent)
	}
	if !report.NeedsVerification {
		t.Error("general education sub-areas must be flagged for separate verification")
	}
}

func TestBuildReportAbsentRequirement(t *testing.T) {
	agg := Aggregates{TotalCredits: 70, MajorRequired: 14}

	report := BuildReport(agg, nil)
	for name, cat := range map[string]CategoryProgress{
		"total_credits":     report.TotalCredits,
		"major_required":    report.MajorRequired,
		"major_elective":    report.MajorElective,
		"general_education": report.GeneralEducation,
	} {
		if cat.Percent != 0 || cat.Required != 0 {
			t.Errorf("%s: absent requirement must report 0%% (got %+v)", name, cat)
		}
	}
	// Earned side stays intact so a best-effort view can still render.
	if report.TotalCredits.Earned != 70 {
		t.Errorf("TotalCredits.Earned = %d, want 70", report.TotalCredits.Earned)
	}
}
