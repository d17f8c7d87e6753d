package transcript

import (
	"testing"

	"github.com/taejinchoi-cbnu/gradescan-backend/internal/model"
)

// TestEngineEndToEnd walks the full pipeline once: raw payload through
// normalization, aggregation, requirement resolution and progress
// reporting.
func TestEngineEndToEnd(t *testing.T) {
	payload := &model.RawAnalysisPayload{
		StudentInfo: &model.RawStudentInfo{StudentID: "2023000123", Name: "홍길동"},
		SemesterHistory: []model.RawSemesterSummary{
			{Year: 2023, SemesterName: "1학기", AverageGPA: 3.8},
		},
		CourseHistory: []model.RawCourseEntry{
			{Year: 2023, Semester: "1학기", CourseName: "자료구조", Credits: 3, Category: "전공필수", Grade: "A+"},
			{Year: 2023, Semester: "1학기", CourseName: "글쓰기", Credits: 3, Category: "교양기초", Grade: "B+"},
		},
	}

	result, diag, err := Normalize(payload)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if diag.JoinMissCount() != 0 {
		t.Fatalf("unexpected join misses: %v", diag.JoinMisses)
	}

	agg := Aggregate(result)
	if agg.TotalCredits != 6 {
		t.Errorf("TotalCredits = %d, want 6", agg.TotalCredits)
	}
	if agg.MajorRequired != 3 {
		t.Errorf("MajorRequired = %d, want 3", agg.MajorRequired)
	}
	if agg.GeneralEducation != 3 {
		t.Errorf("GeneralEducation = %d, want 3", agg.GeneralEducation)
	}
	if FormatGPA(agg.AverageGPA) != "0.00" {
		// grade_summary absent, so the GPA defaults rather than failing
		t.Errorf("AverageGPA = %q, want 0.00", FormatGPA(agg.AverageGPA))
	}

	req, ok := testTable().Resolve(AdmissionYear(result.StudentID), DefaultMajor)
	if !ok {
		t.Fatal("requirement must resolve for the 2023 cohort")
	}

	report := BuildReport(agg, req)
	if report.TotalCredits.Percent != 4 { // round(6/140*100)
		t.Errorf("TotalCredits.Percent = %d, want 4", report.TotalCredits.Percent)
	}
	if report.MajorRequired.Earned != 3 || report.MajorRequired.Required != 28 {
		t.Errorf("MajorRequired pair = %+v", report.MajorRequired)
	}
}

// TestEngineReportedGPA mirrors the upstream-reported summary path.
func TestEngineReportedGPA(t *testing.T) {
	payload := &model.RawAnalysisPayload{
		GradeSummary: &model.RawGradeSummary{AverageGPA: 3.8, EarnedCredits: 6},
	}
	result, _, err := Normalize(payload)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	agg := Aggregate(result)
	if got := FormatGPA(agg.AverageGPA); got != "3.80" {
		t.Errorf("formatted GPA = %q, want 3.80", got)
	}
	if agg.TotalCredits != 6 {
		t.Errorf("TotalCredits = %d, want upstream 6", agg.TotalCredits)
	}
}
