package transcript

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/taejinchoi-cbnu/gradescan-backend/internal/model"
)

func samplePayload() *model.RawAnalysisPayload {
	return &model.RawAnalysisPayload{
		StudentInfo: &model.RawStudentInfo{StudentID: "2023000123", Name: "홍길동"},
		GradeSummary: &model.RawGradeSummary{
			EarnedCredits: 6,
			AverageGPA:    3.8,
		},
		SemesterHistory: []model.RawSemesterSummary{
			{Year: 2023, SemesterName: "1학기", AverageGPA: 3.8},
		},
		CourseHistory: []model.RawCourseEntry{
			{Year: 2023, Semester: "1학기", CourseName: "자료구조", Credits: 3, Category: "전공필수", Grade: "A+"},
			{Year: 2023, Semester: "1학기", CourseName: "글쓰기", Credits: 3, Category: "교양기초", Grade: "B+"},
		},
	}
}

func TestNormalizeJoinsCoursesToSemester(t *testing.T) {
	result, diag, err := Normalize(samplePayload())
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	if len(result.Semesters) != 1 {
		t.Fatalf("got %d semesters, want 1", len(result.Semesters))
	}
	sem := result.Semesters[0]
	if sem.Year != 2023 || sem.Semester != "1학기" {
		t.Errorf("unexpected semester key: %d %s", sem.Year, sem.Semester)
	}
	if len(sem.Subjects) != 2 {
		t.Fatalf("got %d subjects, want 2", len(sem.Subjects))
	}
	if sem.Subjects[0].SubjectName != "자료구조" || sem.Subjects[0].Category != model.CategoryMajorRequired {
		t.Errorf("first subject not normalized: %+v", sem.Subjects[0])
	}
	if diag.JoinMissCount() != 0 {
		t.Errorf("unexpected join misses: %v", diag.JoinMisses)
	}
}

func TestNormalizeJoinMissOnMismatchedTermLabel(t *testing.T) {
	payload := samplePayload()
	// Course stream reports the bare term number; summary says "1학기".
	for i := range payload.CourseHistory {
		payload.CourseHistory[i].Semester = "1"
	}

	result, diag, err := Normalize(payload)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	if got := len(result.Semesters[0].Subjects); got != 0 {
		t.Errorf("subject list should be empty on a join miss, got %d", got)
	}
	if diag.JoinMissCount() != 1 {
		t.Fatalf("join miss counter = %d, want 1", diag.JoinMissCount())
	}
	miss := diag.JoinMisses[0]
	if miss.Year != 2023 || miss.Semester != "1학기" {
		t.Errorf("join miss recorded wrong key: %+v", miss)
	}
}

func TestNormalizeNilPayload(t *testing.T) {
	_, _, err := Normalize(nil)
	if !errors.Is(err, ErrEmptyAnalysisResult) {
		t.Errorf("want ErrEmptyAnalysisResult, got %v", err)
	}
}

func TestNormalizeMissingOptionalSections(t *testing.T) {
	result, diag, err := Normalize(&model.RawAnalysisPayload{})
	if err != nil {
		t.Fatalf("missing sections must default, not fail: %v", err)
	}
	if result.StudentName != "Unknown" {
		t.Errorf("StudentName = %q, want Unknown", result.StudentName)
	}
	if result.TotalCredits != 0 || result.AverageGPA != 0 {
		t.Errorf("summary fields should default to zero: %+v", result)
	}
	if len(result.Semesters) != 0 {
		t.Errorf("expected no semesters, got %d", len(result.Semesters))
	}
	if diag.JoinMissCount() != 0 {
		t.Errorf("unexpected join misses: %v", diag.JoinMisses)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	first, _, err := Normalize(samplePayload())
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	second, _, err := Normalize(samplePayload())
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Error("normalizing the same payload twice produced different records")
	}
}

func TestNormalizeRecordsAmbiguousLabels(t *testing.T) {
	payload := samplePayload()
	payload.CourseHistory[0].Category = "교양(전필대체)"

	_, diag, err := Normalize(payload)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if !reflect.DeepEqual(diag.AmbiguousLabels, []string{"교양(전필대체)"}) {
		t.Errorf("AmbiguousLabels = %v", diag.AmbiguousLabels)
	}
}

func TestDisplaySemestersChronologicalAndFiltered(t *testing.T) {
	payload := samplePayload()
	// Most recent first, as the upstream reports; the middle one will
	// have no courses and must disappear from the display list.
	payload.SemesterHistory = []model.RawSemesterSummary{
		{Year: 2024, SemesterName: "1학기", AverageGPA: 4.0},
		{Year: 2023, SemesterName: "2학기", AverageGPA: 3.5},
		{Year: 2023, SemesterName: "1학기", AverageGPA: 3.8},
	}
	payload.CourseHistory = append(payload.CourseHistory,
		model.RawCourseEntry{Year: 2024, Semester: "1학기", CourseName: "운영체제", Credits: 3, Category: "전공선택", Grade: "A0"},
	)

	result, _, err := Normalize(payload)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	display := result.DisplaySemesters()
	if len(display) != 2 {
		t.Fatalf("display list has %d semesters, want 2", len(display))
	}
	if display[0].Year != 2023 || display[0].Semester != "1학기" {
		t.Errorf("display order not chronological: first is %d %s", display[0].Year, display[0].Semester)
	}
	if display[1].Year != 2024 {
		t.Errorf("display order not chronological: last is %d", display[1].Year)
	}
}
