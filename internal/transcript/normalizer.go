package transcript

import (
	"errors"
	"fmt"

	"github.com/taejinchoi-cbnu/gradescan-backend/internal/model"
)

// ErrEmptyAnalysisResult is returned when the upstream payload carries no
// result container at all. This is fatal to the calling request; no
// partial record is produced.
var ErrEmptyAnalysisResult = errors.New("analysis result is empty")

// JoinMiss records one semester-summary row whose (year, term) key matched
// no course rows. The upstream streams must use byte-identical term labels
// for the join to succeed; a miss produces an empty subject list and is a
// data-quality signal, not an error.
type JoinMiss struct {
	Year     int    `json:"year"`
	Semester string `json:"semester"`
}

// Diagnostics collects the data-quality signals observed while
// normalizing one payload.
type Diagnostics struct {
	JoinMisses      []JoinMiss `json:"join_misses"`
	AmbiguousLabels []string   `json:"ambiguous_labels"`
}

// JoinMissCount returns the number of summary rows that found no courses.
func (d *Diagnostics) JoinMissCount() int {
	return len(d.JoinMisses)
}

// semesterKey is the join key between the course stream and the semester
// summary stream: the year concatenated with the term label exactly as
// each stream reports it.
func semesterKey(year int, term string) string {
	return fmt.Sprintf("%d-%s", year, term)
}

// Normalize builds the canonical AnalysisResult from a raw upstream
// payload. Courses are grouped by (year, term) and classified as they are
// added; each semester-summary row then becomes a SemesterRecord whose
// subject list is looked up by the course stream's own key. Semesters
// keep the summary stream's reporting order. The transformation is pure:
// the same payload always yields the same record.
func Normalize(payload *model.RawAnalysisPayload) (*model.AnalysisResult, *Diagnostics, error) {
	if payload == nil {
		return nil, nil, ErrEmptyAnalysisResult
	}

	diag := &Diagnostics{}

	courses := make(map[string][]model.NormalizedCourse)
	for _, entry := range payload.CourseHistory {
		key := semesterKey(entry.Year, entry.Semester)
		courses[key] = append(courses[key], model.NormalizedCourse{
			SubjectName: entry.CourseName,
			Credits:     entry.Credits,
			Grade:       entry.Grade,
			Category:    Classify(entry.Category),
			Categories:  ClassifyAll(entry.Category),
		})
		if IsAmbiguous(entry.Category) {
			diag.AmbiguousLabels = append(diag.AmbiguousLabels, entry.Category)
		}
	}

	semesters := make([]model.SemesterRecord, 0, len(payload.SemesterHistory))
	for _, summary := range payload.SemesterHistory {
		key := semesterKey(summary.Year, summary.SemesterName)
		subjects, ok := courses[key]
		if !ok {
			diag.JoinMisses = append(diag.JoinMisses, JoinMiss{
				Year:     summary.Year,
				Semester: summary.SemesterName,
			})
			subjects = []model.NormalizedCourse{}
		}

		semesters = append(semesters, model.SemesterRecord{
			Year:             summary.Year,
			Semester:         summary.SemesterName,
			AverageGPA:       summary.AverageGPA,
			Credits:          summary.Credits,
			EarnedCredits:    summary.EarnedCredits,
			EarnedCreditsAlt: summary.EarnedCreditsAlt,
			Subjects:         subjects,
		})
	}

	result := &model.AnalysisResult{Semesters: semesters}

	if payload.StudentInfo != nil {
		result.StudentID = payload.StudentInfo.StudentID
		result.StudentName = payload.StudentInfo.Name
	}
	if result.StudentName == "" {
		result.StudentName = "Unknown"
	}
	if payload.GradeSummary != nil {
		result.TotalCredits = payload.GradeSummary.EarnedCredits
		result.AverageGPA = payload.GradeSummary.AverageGPA
	}

	return result, diag, nil
}
