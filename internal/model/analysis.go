package model

// CourseCategory is the closed set of requirement categories a course can
// be classified into.
type CourseCategory string

const (
	CategoryGeneralEducation CourseCategory = "GENERAL_EDUCATION"
	CategoryMajorRequired    CourseCategory = "MAJOR_REQUIRED"
	CategoryMajorElective    CourseCategory = "MAJOR_ELECTIVE"
	CategoryOther            CourseCategory = "OTHER"
)

// ─── Raw upstream payload ────────────────────────────────────────────────
// Field names below are owned by the external analyzer service; the engine
// does not require bit-exact compatibility beyond these shapes.

// RawStudentInfo is the student block of the upstream payload.
type RawStudentInfo struct {
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
}

// RawGradeSummary is the transcript-level summary reported upstream.
// All fields are optional; zero means "not reported".
type RawGradeSummary struct {
	AppliedCredits int     `json:"applied_credits"`
	EarnedCredits  int     `json:"earned_credits"`
	TotalGPASum    float64 `json:"total_gpa_sum"`
	AverageGPA     float64 `json:"average_gpa"`
	Score100Scale  float64 `json:"score_100_scale"`
}

// RawSemesterSummary is one row of the upstream semester-level summary.
// The analyzer is not consistent about credit field spellings, so all
// observed variants are captured and kept distinct for the fallback chain.
type RawSemesterSummary struct {
	Year             int     `json:"year"`
	SemesterType     string  `json:"semester_type"`
	SemesterName     string  `json:"semester_name"`
	AverageGPA       float64 `json:"average_gpa"`
	AppliedCredits   *int    `json:"applied_credits"`
	Credits          *int    `json:"credits"`
	EarnedCredits    *int    `json:"earned_credits"`
	EarnedCreditsAlt *int    `json:"earnedCredits"`
}

// RawCourseEntry is one row of the upstream flat course history.
type RawCourseEntry struct {
	Year       int     `json:"year"`
	Semester   string  `json:"semester"`
	CourseCode string  `json:"course_code"`
	CourseName string  `json:"course_name"`
	Credits    int     `json:"credits"`
	Category   string  `json:"category"`
	Grade      string  `json:"grade"`
	GPA        float64 `json:"gpa"`
}

// RawAnalysisPayload is the full upstream analysis result.
type RawAnalysisPayload struct {
	StudentInfo     *RawStudentInfo      `json:"student_info"`
	GradeSummary    *RawGradeSummary     `json:"grade_summary"`
	SemesterHistory []RawSemesterSummary `json:"semester_history"`
	CourseHistory   []RawCourseEntry     `json:"course_history"`
}

// RawAnalysisResponse wraps the payload the way the analyzer reports it.
// A nil Result means the upstream produced no usable analysis.
type RawAnalysisResponse struct {
	Result *RawAnalysisPayload `json:"result"`
}

// ─── Canonical record ────────────────────────────────────────────────────

// NormalizedCourse is the canonical per-course record. Categories holds
// every rule that matched the raw label independently; Category is the
// first match and is what per-course views display. Malformed labels can
// legitimately match more than one rule, and each match counts.
type NormalizedCourse struct {
	SubjectName string           `json:"subject_name"`
	Credits     int              `json:"credits"`
	Grade       string           `json:"grade"`
	Category    CourseCategory   `json:"category"`
	Categories  []CourseCategory `json:"categories,omitempty"`
}

// SemesterRecord is the canonical per-term aggregate. The credit pointers
// carry the upstream summary's own (optionally reported) values so the
// aggregate calculator can apply its fallback chain; nil means absent.
type SemesterRecord struct {
	Year             int                `json:"year"`
	Semester         string             `json:"semester"`
	AverageGPA       float64            `json:"average_gpa"`
	Credits          *int               `json:"credits,omitempty"`
	EarnedCredits    *int               `json:"earned_credits,omitempty"`
	EarnedCreditsAlt *int               `json:"-"`
	Subjects         []NormalizedCourse `json:"subjects"`
}

// AnalysisResult is the full normalized output of one analysis request.
// Semesters keeps the upstream's own reporting order (most recent first);
// DisplaySemesters reverses it for chronological views. Immutable once
// built.
type AnalysisResult struct {
	StudentID    string           `json:"student_id"`
	StudentName  string           `json:"student_name"`
	TotalCredits int              `json:"total_credits"`
	AverageGPA   float64          `json:"average_gpa"`
	Semesters    []SemesterRecord `json:"semesters"`
}

// ProgressRequest is the payload for recomputing degree progress from
// already-known aggregates, typically against a different major.
type ProgressRequest struct {
	StudentID               string  `json:"student_id" binding:"required,min=4,max=20"`
	Major                   string  `json:"major" binding:"omitempty,max=50"`
	TotalCredits            int     `json:"total_credits" binding:"min=0"`
	MajorRequiredCredits    int     `json:"major_required_credits" binding:"min=0"`
	MajorElectiveCredits    int     `json:"major_elective_credits" binding:"min=0"`
	GeneralEducationCredits int     `json:"general_education_credits" binding:"min=0"`
	AverageGPA              float64 `json:"average_gpa" binding:"min=0,max=4.5"`
}

// DisplaySemesters returns the semesters in chronological order with
// zero-subject semesters filtered out. The underlying record is not
// modified.
func (r *AnalysisResult) DisplaySemesters() []SemesterRecord {
	out := make([]SemesterRecord, 0, len(r.Semesters))
	for i := len(r.Semesters) - 1; i >= 0; i-- {
		if len(r.Semesters[i].Subjects) == 0 {
			continue
		}
		out = append(out, r.Semesters[i])
	}
	return out
}
