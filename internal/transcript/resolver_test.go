package transcript

import (
	"testing"

	"github.com/taejinchoi-cbnu/gradescan-backend/internal/model"
)

func testTable() *RequirementTable {
	return NewRequirementTable([]model.GraduationRequirement{
		{
			Cohort:       2023,
			Major:        "소프트웨어전공",
			TotalCredits: 140,
			GeneralEducation: model.GeneralEducationRequirement{
				Total: 42, Basic: 18, General: 9, Extended: 3, BasicScience: 12,
			},
			MajorCredits: model.MajorCreditRequirement{Total: 78, Required: 28, Elective: 50},
		},
		{
			Cohort:       2023,
			Major:        "인공지능전공",
			TotalCredits: 140,
			GeneralEducation: model.GeneralEducationRequirement{
				Total: 42, Basic: 18, General: 9, Extended: 3, BasicScience: 12,
			},
			MajorCredits: model.MajorCreditRequirement{Total: 38, Required: 3, Elective: 35},
		},
	})
}

func TestResolveExactMatch(t *testing.T) {
	req, ok := testTable().Resolve(2023, "인공지능전공")
	if !ok {
		t.Fatal("expected a requirement row")
	}
	if req.MajorCredits.Required != 3 {
		t.Errorf("resolved wrong row: %+v", req)
	}
}

func TestResolveBaselineFallback(t *testing.T) {
	// 2025 has no row of its own; the 2023 baseline applies.
	req, ok := testTable().Resolve(2025, "소프트웨어전공")
	if !ok {
		t.Fatal("expected the baseline cohort row")
	}
	if req.Cohort != 2023 || req.TotalCredits != 140 {
		t.Errorf("fallback resolved wrong row: %+v", req)
	}
}

func TestResolveDefaultMajor(t *testing.T) {
	req, ok := testTable().Resolve(2023, "")
	if !ok {
		t.Fatal("expected the default-major row")
	}
	if req.Major != DefaultMajor {
		t.Errorf("Major = %q, want %q", req.Major, DefaultMajor)
	}
}

func TestResolveAbsent(t *testing.T) {
	if _, ok := testTable().Resolve(2023, "기계공학전공"); ok {
		t.Error("unknown major must resolve to absence, not a row")
	}
}

func TestAdmissionYear(t *testing.T) {
	tests := []struct {
		studentID string
		want      int
	}{
		{"2023000123", 2023},
		{"2019123456", 2019},
		{"", 2023},  // default identifier prefix
		{"ab", 0},   // too short
		{"abcd99", 0},
	}

	for _, tt := range tests {
		if got := AdmissionYear(tt.studentID); got != tt.want {
			t.Errorf("AdmissionYear(%q) = %d, want %d", tt.studentID, got, tt.want)
		}
	}
}
